package analemma

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Settings is the viewer-adjustable subset of the configuration, persisted
// across runs. The computed path is never persisted — it is rebuilt at
// startup — only the knobs a viewer might have changed.
type Settings struct {
	Speed      float64 `yaml:"speed"`
	Preset     string  `yaml:"preset"`
	ShowLabels bool    `yaml:"showLabels"`
	ShowDebug  bool    `yaml:"showDebug"`
}

// DefaultViewerSettings returns settings matching DefaultConfig.
func DefaultViewerSettings() Settings {
	cfg := DefaultConfig()
	return Settings{
		Speed:      cfg.Speed,
		Preset:     cfg.Preset,
		ShowLabels: cfg.ShowLabels,
		ShowDebug:  cfg.ShowDebug,
	}
}

// Apply overlays the persisted settings onto a config.
func (s Settings) Apply(cfg Config) Config {
	cfg.Speed = s.Speed
	cfg.Preset = s.Preset
	cfg.ShowLabels = s.ShowLabels
	cfg.ShowDebug = s.ShowDebug
	return cfg
}

// gdata storage keys.
const (
	settingsObject   = "settings"
	settingsProperty = "viewer"
)

// SettingsManager loads and saves viewer settings through a gdata manager.
// A nil manager is a supported degraded mode: settings live in memory only
// and Save is a no-op, so the program still runs where platform storage is
// unavailable.
type SettingsManager struct {
	store    *gdata.Manager
	settings Settings
	loaded   bool
}

// NewSettingsManager creates a manager and attempts to load previously
// saved settings. A load failure is not fatal; the defaults are kept and a
// warning is logged, matching the startup policy that only the window and
// font may abort the program.
func NewSettingsManager(store *gdata.Manager) *SettingsManager {
	sm := &SettingsManager{
		store:    store,
		settings: DefaultViewerSettings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("analemma: failed to load settings: %v (using defaults)", err)
	}
	return sm
}

// Settings returns the current in-memory settings.
func (sm *SettingsManager) Settings() Settings {
	return sm.settings
}

// Loaded reports whether the current settings were explicitly chosen: either
// read back from storage or set through Update. It is false on a first run
// (or after a discarded corrupt load), when the settings are merely the
// built-in defaults; callers overlaying settings onto a config should skip
// the overlay then, so config-file values are not clobbered by defaults
// nobody picked.
func (sm *SettingsManager) Loaded() bool {
	return sm.loaded
}

// Update replaces the in-memory settings and persists them.
func (sm *SettingsManager) Update(s Settings) error {
	sm.settings = s
	sm.loaded = true
	return sm.Save()
}

// Load reads settings from storage. Missing storage or a missing property
// leaves the defaults in place and returns nil.
func (sm *SettingsManager) Load() error {
	if sm.store == nil {
		return nil
	}
	if !sm.store.ObjectPropExists(settingsObject, settingsProperty) {
		return nil
	}

	data, err := sm.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	loaded := DefaultViewerSettings()
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}
	if _, ok := CoefficientsByName(loaded.Preset); !ok {
		return fmt.Errorf("parse settings: unknown preset %q", loaded.Preset)
	}
	sm.settings = loaded
	sm.loaded = true
	return nil
}

// Save writes the current settings to storage. No-op with a nil manager.
func (sm *SettingsManager) Save() error {
	if sm.store == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.settings)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := sm.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
