package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/shinobi-duel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the viewer settings stored on disk. Match state
// is never saved.
type SavedSettings struct {
	Difficulty      string `json:"difficulty"`
	DebugHitboxes   bool   `json:"debugHitboxes"`
	Seed            int64  `json:"seed"`
	ResolutionIndex int    `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "shinobi-duel",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// DefaultSettings are used until something has been saved.
func DefaultSettings() *SavedSettings {
	return &SavedSettings{
		Difficulty:      cfg.BotDifficultyNormal.String(),
		DebugHitboxes:   cfg.Debug.ShowHitboxes,
		Seed:            cfg.SettingsMenu.DefaultSeed,
		ResolutionIndex: cfg.SettingsMenu.DefaultResolutionIndex,
	}
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing
// has been saved or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}
	return DecodeSettings(data)
}

// DecodeSettings parses stored settings, filling gaps with defaults.
func DecodeSettings(data []byte) (*SavedSettings, error) {
	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if _, ok := cfg.ParseBotDifficulty(settings.Difficulty); !ok {
		settings.Difficulty = cfg.BotDifficultyNormal.String()
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.SettingsMenu.Resolutions) {
		settings.ResolutionIndex = cfg.SettingsMenu.DefaultResolutionIndex
	}
	return settings, nil
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

// ApplySavedSettings applies loaded settings to the viewer window and the
// debug overlay.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.ShowHitboxes = saved.DebugHitboxes

	if saved.ResolutionIndex >= 0 && saved.ResolutionIndex < len(cfg.SettingsMenu.Resolutions) {
		res := cfg.SettingsMenu.Resolutions[saved.ResolutionIndex]
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
