package cli

import "fmt"

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	profile := ctx.Tracker.Profile()
	fmt.Printf("Nickname:         %s\n", profile.Nickname)
	fmt.Printf("Show on posters:  %t\n", profile.ShowOnPoster)
	if profile.AvatarPath != "" {
		fmt.Printf("Avatar:           %s\n", profile.AvatarPath)
	}
	return nil
}

type ProfileSetCmd struct {
	Nickname     string `help:"Display name on posters."`
	ShowOnPoster *bool  `help:"Whether posters include the profile."`
	Avatar       string `help:"Path to an avatar image."`
}

func (c *ProfileSetCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.Reload(); err != nil {
		return err
	}

	// Whole-record replace: read, apply the provided fields, write back.
	profile := ctx.Tracker.Profile()
	if c.Nickname != "" {
		profile.Nickname = c.Nickname
	}
	if c.ShowOnPoster != nil {
		profile.ShowOnPoster = *c.ShowOnPoster
	}
	if c.Avatar != "" {
		profile.AvatarPath = c.Avatar
	}

	if err := warnPersist(ctx.Tracker.UpdateProfile(profile)); err != nil {
		return err
	}

	fmt.Println("Profile updated.")
	return nil
}
