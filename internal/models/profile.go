package models

// Profile is the singleton user record shown on share posters.
type Profile struct {
	Nickname     string `json:"nickname"`
	ShowOnPoster bool   `json:"show_on_poster"`
	AvatarPath   string `json:"avatar_path,omitempty"`
}

// DefaultProfile returns the profile used when nothing is stored yet.
func DefaultProfile() Profile {
	return Profile{
		Nickname:     "you",
		ShowOnPoster: true,
	}
}
