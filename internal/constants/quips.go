package constants

// AchievedSubtitles rotate across views of the achieved list. The rotation
// index is persisted so the cycle continues across launches.
var AchievedSubtitles = []string{
	"You meant to lie down, and yet here you are standing.",
	"An isolated incident of effort.",
	"Temporary diligence is not a trend.",
	"You're acting out of character today.",
	"This one got done. Fine, you win.",
	"Being lazy is normal. You did it anyway.",
	"A tiny bit of effort. Look at you.",
	"Not hustle culture, just a brief moment of clarity.",
	"Gave up once, finished later. Funnier this way.",
	"You betrayed the lying-flat faction again.",
	"This diligence goes on your permanent record.",
	"We'll call this one a moment of lucidity.",
}

// DeleteQuips are printed when a record is removed.
var DeleteQuips = []string{
	"That effort never happened.",
	"Deleted. Back to lying down.",
	"Temporary diligence withdrawn.",
	"Wiping this one from the record.",
	"One fewer thing to have done.",
}
