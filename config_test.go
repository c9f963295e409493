package analemma

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// --- Defaults ---

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Width != 540 || cfg.Height != 960 {
		t.Errorf("default viewport = %gx%g, want 540x960", cfg.Width, cfg.Height)
	}
	if cfg.HScale != 15 || cfg.VScale != 8 {
		t.Errorf("default scales = %g/%g, want 15/8", cfg.HScale, cfg.VScale)
	}
	if cfg.Preset != "classic" {
		t.Errorf("default preset = %q, want \"classic\"", cfg.Preset)
	}
	if cfg.Speed != 1 || cfg.StartDay != 0 {
		t.Errorf("default animation = speed %g day %d, want 1 and 0", cfg.Speed, cfg.StartDay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

// --- Validate ---

func TestConfigValidate(t *testing.T) {
	valid := DefaultConfig()
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, ErrBadViewport},
		{"negative height", func(c *Config) { c.Height = -10 }, ErrBadViewport},
		{"zero hScale", func(c *Config) { c.HScale = 0 }, ErrBadScale},
		{"negative vScale", func(c *Config) { c.VScale = -8 }, ErrBadScale},
		{"unknown preset", func(c *Config) { c.Preset = "jpl" }, ErrBadPreset},
		{"negative speed", func(c *Config) { c.Speed = -1 }, ErrBadSpeed},
		{"startDay too large", func(c *Config) { c.StartDay = 365 }, ErrBadStartDay},
		{"startDay negative", func(c *Config) { c.StartDay = -1 }, ErrBadStartDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// --- Accessors ---

func TestConfigCoefficients(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Preset = "revised"
	if got := cfg.Coefficients(); got != CoefficientsRevised {
		t.Errorf("Coefficients() = %+v, want revised preset", got)
	}

	cfg.Preset = "nonsense"
	if got := cfg.Coefficients(); got != CoefficientsClassic {
		t.Errorf("Coefficients() fallback = %+v, want classic preset", got)
	}
}

func TestConfigProjector(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 800, 600
	cfg.HScale, cfg.VScale = 20, 10

	proj := cfg.Projector()
	if proj.Viewport != (Viewport{Width: 800, Height: 600}) {
		t.Errorf("Projector().Viewport = %+v", proj.Viewport)
	}
	if proj.HScale != 20 || proj.VScale != 10 {
		t.Errorf("Projector() scales = %g/%g, want 20/10", proj.HScale, proj.VScale)
	}
}

// --- LoadConfig ---

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig(missing) error = %v, want nil", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig(missing) = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analemma.yaml")
	doc := "width: 800\nheight: 600\npreset: revised\nspeed: 4\nstartDay: 136\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 600 {
		t.Errorf("viewport = %gx%g, want 800x600", cfg.Width, cfg.Height)
	}
	if cfg.Preset != "revised" || cfg.Speed != 4 || cfg.StartDay != 136 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	// Fields absent from the file keep their defaults.
	if cfg.HScale != DefaultHScale || cfg.VScale != DefaultVScale {
		t.Errorf("scales = %g/%g, want defaults %d/%d", cfg.HScale, cfg.VScale,
			DefaultHScale, DefaultVScale)
	}
	if !cfg.ShowLabels {
		t.Error("ShowLabels lost its default")
	}
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analemma.yaml")
	if err := os.WriteFile(path, []byte("width: [not a number\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig(bad yaml) = nil error, want parse error")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "analemma.yaml")
	if err := os.WriteFile(path, []byte("preset: jpl\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(path)
	if !errors.Is(err, ErrBadPreset) {
		t.Errorf("LoadConfig(bad preset) = %v, want ErrBadPreset", err)
	}
	// The error names the offending file, like the read and parse paths do.
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Errorf("LoadConfig(bad preset) error %v does not mention %q", err, path)
	}
}
