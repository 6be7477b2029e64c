package levels

import "github.com/milk9111/modordie/prefabs"

// Spec is the data half of a level: everything a variant needs that is not
// code.
type Spec struct {
	Name    string  `yaml:"name"`
	Title   string  `yaml:"title"`
	Speed   float64 `yaml:"speed"`
	Gravity float64 `yaml:"gravity"`

	// Reward is the score granted on winning.
	Reward   int    `yaml:"reward"`
	WinSound string `yaml:"win_sound"`

	Platforms []PlatformSpec `yaml:"platforms"`
	Water     *WaterSpec     `yaml:"water"`
	Exit      *ExitSpec      `yaml:"exit"`
	Banner    BannerSpec     `yaml:"banner"`
}

// PlatformSpec is a cap-mid-cap strip of grass. X and Y place the left cap.
type PlatformSpec struct {
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Mids int     `yaml:"mids"`
}

// WaterSpec describes the rising water. From and To are in tile radii and
// bound the columns [From, To) laid at one tile pitch.
type WaterSpec struct {
	From   int     `yaml:"from"`
	To     int     `yaml:"to"`
	Depth  int     `yaml:"depth"`
	Rise   float64 `yaml:"rise"`
	Step   float64 `yaml:"step"`
	Offset float64 `yaml:"offset"`
	Top    string  `yaml:"top"`
	Fill   string  `yaml:"fill"`
}

type ExitSpec struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Texture string  `yaml:"texture"`
}

type BannerSpec struct {
	Text  string             `yaml:"text"`
	Color *prefabs.YAMLColor `yaml:"color"`
	Size  float64            `yaml:"size"`
}

func defaultSpec() Spec {
	return Spec{
		Speed:    5,
		Gravity:  1,
		Reward:   1000,
		WinSound: "gameover1",
		Banner:   BannerSpec{Text: "YOU WIN", Size: 32},
	}
}
