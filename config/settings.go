package config

// Resolution represents a window scale option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains viewer settings options
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	Difficulties           []BotDifficulty
	DefaultSeed            int64
}

// SettingsMenu is the global settings configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1200, Height: 600, Label: "1200 x 600"},
			{Width: 1800, Height: 900, Label: "1800 x 900"},
			{Width: 2400, Height: 1200, Label: "2400 x 1200"},
		},
		DefaultResolutionIndex: 0,
		Difficulties: []BotDifficulty{
			BotDifficultyEasy,
			BotDifficultyNormal,
			BotDifficultyHard,
		},
		DefaultSeed: 42,
	}
}
