package systems

import (
	"fmt"
	"strconv"

	"github.com/automoto/overlaymenu/components"
	cfg "github.com/automoto/overlaymenu/config"
	"github.com/automoto/overlaymenu/core"
	"github.com/automoto/overlaymenu/menu"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// volumeSteps is the resolution of the volume slider
const volumeSteps = 10

// GetOrCreateSettingsMenu returns the singleton settings component, seeded
// from saved (or the defaults when nil).
func GetOrCreateSettingsMenu(e *ecs.ECS, saved *SavedSettings) *components.SettingsMenuData {
	entry, ok := components.SettingsMenu.First(e.World)
	if !ok {
		if saved == nil {
			def := DefaultSettings()
			saved = &def
		}
		entry = e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(entry, components.SettingsMenuData{
			SFXVolume:       saved.SFXVolume,
			Muted:           saved.Muted,
			ResolutionIndex: saved.ResolutionIndex,
			SafeZoneIndex:   saved.SafeZoneIndex,
			WidthIndex:      saved.WidthIndex,
			RightAligned:    saved.RightAligned,
		})
	}
	return components.SettingsMenu.Get(entry)
}

// NewSettingsMenu builds the settings submenu. Every change is applied at
// once and saved.
func NewSettingsMenu(e *ecs.ECS, env core.Environment, opts ...menu.Option) *menu.Menu {
	s := GetOrCreateSettingsMenu(e, nil)
	m := menu.New(env, cfg.C.Title, "SETTINGS", opts...)

	resolutions := make([]string, len(cfg.SettingsMenu.Resolutions))
	for i, r := range cfg.SettingsMenu.Resolutions {
		resolutions[i] = r.Label
	}
	resolution := menu.NewListItem("Resolution", "Window size. Menus are laid out again when it changes.", resolutions...)
	_ = resolution.SetSelectedIndex(s.ResolutionIndex)
	resolution.ItemChanged.Subscribe(func(_ any, args core.ItemChangedArgs[string]) {
		s.ResolutionIndex = args.Index
		r := cfg.SettingsMenu.Resolutions[args.Index]
		ebiten.SetWindowSize(r.Width, r.Height)
		SaveCurrentSettings(s)
	})

	zones := make([]string, len(cfg.SettingsMenu.SafeZones))
	for i, z := range cfg.SettingsMenu.SafeZones {
		zones[i] = fmt.Sprintf("%.1f%%", z*100)
	}
	safeZone := menu.NewListItem("Safe Zone", "Margin kept between the menus and the screen edges.", zones...)
	_ = safeZone.SetSelectedIndex(s.SafeZoneIndex)
	safeZone.ItemChanged.Subscribe(func(_ any, args core.ItemChangedArgs[string]) {
		s.SafeZoneIndex = args.Index
		SetSafeZone(e, cfg.SettingsMenu.SafeZones[args.Index])
		SaveCurrentSettings(s)
	})

	widths := make([]string, len(cfg.SettingsMenu.Widths))
	for i, w := range cfg.SettingsMenu.Widths {
		widths[i] = strconv.Itoa(int(w))
	}
	width := menu.NewListItem("Menu Width", "Width of every menu in reference units.", widths...)
	_ = width.SetSelectedIndex(s.WidthIndex)
	width.ItemChanged.Subscribe(func(_ any, args core.ItemChangedArgs[string]) {
		s.WidthIndex = args.Index
		ApplyMenuStyle(s)
		SaveCurrentSettings(s)
	})

	align := menu.NewCheckboxItem("Right Aligned", "Anchor the menus to the right side of the screen.", s.RightAligned)
	align.CheckboxChanged.Subscribe(func(_ any, checked bool) {
		s.RightAligned = checked
		ApplyMenuStyle(s)
		SaveCurrentSettings(s)
	})

	volume := menu.NewSliderItem("Volume", "Volume of the menu sounds.", volumeSteps, int(s.SFXVolume*volumeSteps+0.5))
	volume.ValueChanged.Subscribe(func(_ any, v int) {
		s.SFXVolume = float64(v) / volumeSteps
		if !s.Muted {
			SetSFXVolume(e, s.SFXVolume)
		}
		SaveCurrentSettings(s)
	})

	mute := menu.NewCheckboxItem("Mute", "Silence every menu sound.", s.Muted)
	mute.CheckboxChanged.Subscribe(func(_ any, checked bool) {
		s.Muted = checked
		if checked {
			SetSFXVolume(e, 0)
		} else {
			SetSFXVolume(e, s.SFXVolume)
		}
		SaveCurrentSettings(s)
	})

	for _, item := range []menu.Entry{resolution, safeZone, width, align, volume, mute} {
		_ = m.Add(item)
	}
	return m
}

// ApplyMenuStyle pushes the width and alignment settings to every menu
func ApplyMenuStyle(s *components.SettingsMenuData) {
	alignment := core.AlignLeft
	if s.RightAligned {
		alignment = core.AlignRight
	}
	for _, m := range s.Menus {
		m.SetWidth(cfg.SettingsMenu.Widths[s.WidthIndex])
		m.SetAlignment(alignment)
	}
}

// SaveCurrentSettings saves the current settings from the SettingsMenuData component
func SaveCurrentSettings(s *components.SettingsMenuData) {
	saved := &SavedSettings{
		SFXVolume:       s.SFXVolume,
		Muted:           s.Muted,
		ResolutionIndex: s.ResolutionIndex,
		SafeZoneIndex:   s.SafeZoneIndex,
		WidthIndex:      s.WidthIndex,
		RightAligned:    s.RightAligned,
	}
	_ = SaveSettings(saved)
}
