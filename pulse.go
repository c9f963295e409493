package analemma

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Pulse is a looping scale oscillation for the current-sun marker. It eases
// between a minimum and maximum scale with a sine curve, reversing at each
// end. Call Update(dt) each frame and multiply the marker radius by Value.
//
// There is no global animation manager — callers drive Update themselves.
type Pulse struct {
	grow    *gween.Tween
	shrink  *gween.Tween
	growing bool
	value   float64
}

// NewPulse creates a pulse oscillating between min and max scale, taking
// period seconds for a full out-and-back cycle. min must be less than max;
// the zero period falls back to one second.
func NewPulse(min, max float64, period float32) *Pulse {
	if period <= 0 {
		period = 1
	}
	half := period / 2
	return &Pulse{
		grow:    gween.New(float32(min), float32(max), half, ease.InOutSine),
		shrink:  gween.New(float32(max), float32(min), half, ease.InOutSine),
		growing: true,
		value:   min,
	}
}

// Update advances the pulse by dt seconds and returns the current scale.
func (p *Pulse) Update(dt float32) float64 {
	var v float32
	var finished bool
	if p.growing {
		v, finished = p.grow.Update(dt)
	} else {
		v, finished = p.shrink.Update(dt)
	}
	p.value = float64(v)

	if finished {
		if p.growing {
			p.shrink.Reset()
		} else {
			p.grow.Reset()
		}
		p.growing = !p.growing
	}
	return p.value
}

// Value returns the scale from the most recent Update without advancing.
func (p *Pulse) Value() float64 {
	return p.value
}
