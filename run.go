package analemma

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Simulation owns the precomputed year path and the animation clock. It is
// the write side of the program: Update is the only place the clock and the
// marker pulse advance. The draw side consumes read-only Frame snapshots.
type Simulation struct {
	cfg   Config
	model SolarModel
	path  YearPath
	proj  Projector
	clock *Clock
	pulse *Pulse
}

// NewSimulation validates the config, overlays persisted viewer settings
// when a settings manager is supplied (nil is fine), and builds the year
// path once. Settings only overlay when something was actually persisted
// or chosen; on a first run the config file's values stand.
func NewSimulation(cfg Config, settings *SettingsManager) (*Simulation, error) {
	if settings != nil && settings.Loaded() {
		cfg = settings.Settings().Apply(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	model := NewSolarModel(cfg.Coefficients())
	return &Simulation{
		cfg:   cfg,
		model: model,
		path:  BuildYearPath(model),
		proj:  cfg.Projector(),
		clock: NewClock(cfg.StartDay, cfg.Speed),
		pulse: NewPulse(0.85, 1.15, 2),
	}, nil
}

// Update advances the clock and marker pulse by the given elapsed
// real-time seconds.
func (s *Simulation) Update(elapsedSeconds float64) {
	s.clock.Advance(elapsedSeconds)
	s.pulse.Update(float32(elapsedSeconds))
}

// Frame returns the read-only snapshot for the current tick.
func (s *Simulation) Frame() Frame {
	return Frame{
		Day:         s.clock.Day(),
		DayFraction: s.clock.DayFraction(),
		MarkerScale: s.pulse.Value(),
		Speed:       s.clock.Speed,
		ShowDebug:   s.cfg.ShowDebug,
	}
}

// Path returns the precomputed year path.
func (s *Simulation) Path() YearPath {
	return s.path
}

// Projector returns the configured projector.
func (s *Simulation) Projector() Projector {
	return s.proj
}

// Config returns the effective configuration after settings overlay.
func (s *Simulation) Config() Config {
	return s.cfg
}

// RunConfig configures the window created by Run. Zero Width/Height fall
// back to the simulation's viewport; non-zero values replace it, and the
// projection is re-centered to the effective size so the figure never
// letterboxes off-center.
type RunConfig struct {
	Title  string
	Width  int
	Height int
}

// runGeometry resolves the effective window size and the projector matching
// it. RunConfig overrides win; the projector keeps its scales but adopts
// the effective viewport.
func runGeometry(proj Projector, cfg RunConfig) (width, height int, eff Projector) {
	width = cfg.Width
	height = cfg.Height
	if width <= 0 {
		width = int(proj.Viewport.Width)
	}
	if height <= 0 {
		height = int(proj.Viewport.Height)
	}
	eff = proj
	eff.Viewport = Viewport{Width: float64(width), Height: float64(height)}
	return width, height, eff
}

// game adapts a Simulation and Renderer to the ebiten.Game interface. The
// renderer is only ever handed Frame values, so the draw path cannot
// mutate simulation state.
type game struct {
	sim      *Simulation
	renderer *Renderer
	width    int
	height   int
}

// Update advances the simulation by one tick of wall-clock time.
func (g *game) Update() error {
	g.sim.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

// Draw renders the current frame.
func (g *game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.sim.Frame())
}

// Layout reports the fixed logical screen size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens a window and drives the simulation until the window is closed.
// Renderer construction failures (font parsing) and windowing failures are
// returned; there is no degraded mode for a purely visual program, so
// callers should treat any error as fatal.
func Run(sim *Simulation, cfg RunConfig) error {
	width, height, proj := runGeometry(sim.proj, cfg)
	title := cfg.Title
	if title == "" {
		title = "Analemma"
	}

	renderer, err := NewRenderer(sim.path, proj, sim.cfg.ShowLabels)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)

	g := &game{sim: sim, renderer: renderer, width: width, height: height}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("analemma: run: %w", err)
	}
	return nil
}
