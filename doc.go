// Package analemma computes and renders the analemma — the figure-eight
// curve traced by the Sun's apparent position in the sky when observed at
// the same clock time every day for a year.
//
// The figure arises from two effects: Earth's orbital eccentricity (the
// orbit is an ellipse, so apparent solar time runs alternately fast and
// slow) and Earth's axial tilt (the Sun's declination swings ±23.44°
// through the seasons). The package models both with closed-form sinusoidal
// approximations — display-grade, not ephemeris-grade — and projects the
// resulting samples onto a 2D viewport for rendering with [Ebitengine].
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	cfg := analemma.DefaultConfig()
//	sim, _ := analemma.NewSimulation(cfg, nil)
//	analemma.Run(sim, analemma.RunConfig{
//		Title: "Analemma", Width: 540, Height: 960,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Simulation.Update] and [Renderer.Draw] directly. Update and draw are
// deliberately separate types: the renderer reads a [Frame] snapshot and
// has no way to advance the clock.
//
// # Core types
//
// [SolarModel] turns a day-of-year into the Sun's equation-of-time and
// declination offsets. [BuildYearPath] collects one sample per day into a
// [YearPath]. [Projector] maps samples to screen coordinates for a given
// [Viewport]. [Clock] is the single piece of mutable state: the current
// simulated day, advanced once per update tick.
//
// Physical constants are deliberately configurable: the source drafts of
// this program disagreed on the equation-of-time coefficients, so both
// pairings ship as named presets ([CoefficientsClassic],
// [CoefficientsRevised]) selectable through [Config].
//
// [Ebitengine]: https://ebitengine.org
package analemma
