package analemma

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the run configuration: window geometry, projection scales, the
// coefficient preset, and animation parameters. Everything the drafts
// hard-coded as package globals lives here instead.
type Config struct {
	// Window geometry (logical pixels).
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Projection scales (display units per offset unit).
	HScale float64 `yaml:"hScale"`
	VScale float64 `yaml:"vScale"`

	// Preset selects the equation-of-time coefficient set:
	// "classic" or "revised". See Coefficients.
	Preset string `yaml:"preset"`

	// Speed is simulated days per real minute.
	Speed float64 `yaml:"speed"`

	// StartDay is the day-of-year the animation begins on.
	StartDay int `yaml:"startDay"`

	// ShowLabels toggles the solstice/equinox annotations.
	ShowLabels bool `yaml:"showLabels"`

	// ShowDebug toggles the FPS/day overlay.
	ShowDebug bool `yaml:"showDebug"`
}

// DefaultConfig returns the configuration the drafts shipped with: a
// 540×960 portrait viewport, 15/8 scales, the classic coefficient preset,
// one simulated day per real minute, starting at day 0.
func DefaultConfig() Config {
	return Config{
		Width:      540,
		Height:     960,
		HScale:     DefaultHScale,
		VScale:     DefaultVScale,
		Preset:     "classic",
		Speed:      1,
		StartDay:   0,
		ShowLabels: true,
		ShowDebug:  false,
	}
}

// Validation errors returned by Config.Validate.
var (
	ErrBadViewport = errors.New("analemma: viewport dimensions must be positive")
	ErrBadScale    = errors.New("analemma: projection scales must be positive")
	ErrBadPreset   = errors.New("analemma: unknown coefficient preset")
	ErrBadSpeed    = errors.New("analemma: speed must be non-negative")
	ErrBadStartDay = errors.New("analemma: startDay must be in [0, 365)")
)

// Validate reports the first configuration problem found, or nil.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrBadViewport, c.Width, c.Height)
	}
	if c.HScale <= 0 || c.VScale <= 0 {
		return fmt.Errorf("%w: h=%g v=%g", ErrBadScale, c.HScale, c.VScale)
	}
	if _, ok := CoefficientsByName(c.Preset); !ok {
		return fmt.Errorf("%w: %q", ErrBadPreset, c.Preset)
	}
	if c.Speed < 0 {
		return fmt.Errorf("%w: %g", ErrBadSpeed, c.Speed)
	}
	if c.StartDay < 0 || c.StartDay >= DaysPerYear {
		return fmt.Errorf("%w: %d", ErrBadStartDay, c.StartDay)
	}
	return nil
}

// Coefficients resolves the configured preset. Call Validate first; unknown
// presets fall back to CoefficientsClassic here so a renderer never gets a
// zero model.
func (c Config) Coefficients() Coefficients {
	if coeff, ok := CoefficientsByName(c.Preset); ok {
		return coeff
	}
	return CoefficientsClassic
}

// Viewport returns the configured drawable area.
func (c Config) Viewport() Viewport {
	return Viewport{Width: c.Width, Height: c.Height}
}

// Projector returns a projector built from the configured viewport and
// scales.
func (c Config) Projector() Projector {
	return Projector{Viewport: c.Viewport(), HScale: c.HScale, VScale: c.VScale}
}

// LoadConfig reads a YAML config file, layering it over DefaultConfig so
// omitted fields keep their defaults. A missing file is not an error: the
// defaults are returned unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("analemma: read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("analemma: parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("analemma: config %s: %w", path, err)
	}
	return cfg, nil
}
