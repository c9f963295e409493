package analemma

import "math"

// SecondsPerDay is the real-time seconds one simulated day takes at
// Speed 1: one day per real-time minute.
const SecondsPerDay = 60

// Clock tracks the current simulated day of the year. It is the only
// mutable state in the package.
//
// The clock is advanced exclusively by Advance, which the host calls from
// its update tick. Rendering reads Day (or a Frame snapshot) and has no
// path to mutation; an earlier draft advanced the day from inside its draw
// call, and the read/write split here exists to make that impossible.
type Clock struct {
	day   float64 // fractional day accumulator, always in [0, DaysPerYear)
	Speed float64 // simulated days per real minute
}

// NewClock returns a clock starting at the given day with the given speed.
// The start day is wrapped into [0, DaysPerYear).
func NewClock(startDay int, speed float64) *Clock {
	c := &Clock{Speed: speed}
	c.day = wrapDay(float64(startDay))
	return c
}

// Advance moves the clock forward by the given elapsed real-time seconds,
// wrapping modulo the year length. At Speed 1 the year completes in 365
// real minutes. Negative elapsed time is ignored.
func (c *Clock) Advance(elapsedSeconds float64) {
	if elapsedSeconds < 0 {
		return
	}
	c.day = wrapDay(c.day + c.Speed*elapsedSeconds/SecondsPerDay)
}

// Day returns the current whole day-of-year in [0, DaysPerYear).
func (c *Clock) Day() int {
	return int(c.day)
}

// DayFraction returns the current fractional day-of-year. Useful for
// smooth marker interpolation between whole-day samples.
func (c *Clock) DayFraction() float64 {
	return c.day
}

// wrapDay reduces a fractional day into [0, DaysPerYear).
func wrapDay(d float64) float64 {
	d = math.Mod(d, DaysPerYear)
	if d < 0 {
		d += DaysPerYear
	}
	return d
}
