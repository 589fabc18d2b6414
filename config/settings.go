package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsMenuConfig contains the options offered by the demo settings menu
type SettingsMenuConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	SafeZones              []float64
	DefaultSafeZoneIndex   int
	Widths                 []float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 1440, Height: 1080, Label: "1440 x 1080"},
			{Width: 2560, Height: 1080, Label: "2560 x 1080"},
		},
		DefaultResolutionIndex: 0,
		SafeZones:              []float64{0.9, 0.925, 0.95, 0.975, 1.0},
		DefaultSafeZoneIndex:   4,
		Widths:                 []float64{433, 500, 600},
	}
}
