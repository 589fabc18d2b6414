package components

import (
	"github.com/automoto/overlaymenu/menu"
	"github.com/yohamta/donburi"
)

// SettingsMenuData stores the demo preferences and the menus they style
type SettingsMenuData struct {
	// Current settings values
	SFXVolume       float64 // 0.0 - 1.0
	Muted           bool
	ResolutionIndex int
	SafeZoneIndex   int
	WidthIndex      int
	RightAligned    bool

	// Every menu of the demo, so width and alignment apply to all of them
	Menus []*menu.Menu
}

// SettingsMenu is the component type for the demo settings
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
