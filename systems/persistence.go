package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/overlaymenu/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the demo preferences stored on disk
type SavedSettings struct {
	SFXVolume       float64 `json:"sfxVolume"`
	Muted           bool    `json:"muted"`
	ResolutionIndex int     `json:"resolutionIndex"`
	SafeZoneIndex   int     `json:"safeZoneIndex"`
	WidthIndex      int     `json:"widthIndex"`
	RightAligned    bool    `json:"rightAligned"`
}

// DefaultSettings returns the preferences used before anything was saved
func DefaultSettings() SavedSettings {
	return SavedSettings{
		SFXVolume:       cfg.Audio.DefaultVol,
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
		SafeZoneIndex:   cfg.SettingsMenu.DefaultSafeZoneIndex,
	}
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "overlaymenu",
	})
	if err != nil {
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing was saved.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	return DecodeSettings(data)
}

// DecodeSettings parses saved settings, replacing out of range indices with
// their defaults.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	settings := DefaultSettings()
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	def := DefaultSettings()
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		settings.ResolutionIndex = def.ResolutionIndex
	}
	if settings.SafeZoneIndex < 0 || settings.SafeZoneIndex >= len(cfg.SettingsMenu.SafeZones) {
		settings.SafeZoneIndex = def.SafeZoneIndex
	}
	if settings.WidthIndex < 0 || settings.WidthIndex >= len(cfg.SettingsMenu.Widths) {
		settings.WidthIndex = def.WidthIndex
	}
	if settings.SFXVolume < 0 || settings.SFXVolume > 1 {
		settings.SFXVolume = def.SFXVolume
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings pushes saved preferences into the running systems. Menu
// specific values (width, alignment) are applied by the scene.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}

	volume := saved.SFXVolume
	if saved.Muted {
		volume = 0
	}
	SetSFXVolume(e, volume)
	SetSafeZone(e, cfg.SettingsMenu.SafeZones[saved.SafeZoneIndex])

	res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
	ebiten.SetWindowSize(res.Width, res.Height)
}
