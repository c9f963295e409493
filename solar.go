package analemma

import "math"

// Calendar and orbital constants shared by the solar model.
const (
	// DaysPerYear is the number of whole days in the simulated calendar
	// year. Leap years are ignored.
	DaysPerYear = 365

	// OrbitalYear is the length of the orbital year in days, used for the
	// declination phase. One full revolution per OrbitalYear days.
	OrbitalYear = 365.25

	// AxialTilt is Earth's obliquity in degrees. It bounds the declination
	// swing: the vertical offset never leaves [-AxialTilt, AxialTilt].
	AxialTilt = 23.44

	// SummerSolsticeDay is the day-of-year the declination peak is
	// phase-aligned to (approximate June solstice).
	SummerSolsticeDay = 172
)

// Coefficients parameterizes the equation-of-time approximation. The two
// sinusoid amplitudes are in minutes of time; the model divides their sum
// by 4 to yield a display-friendly unit.
//
// The drafts this program descends from disagreed on the amplitude pairing
// and on the year divisor, and neither is authoritative; both ship as named
// presets so the choice is visible configuration rather than a buried
// constant. The pairing matters: it changes the asymmetry of the
// figure-eight's lobes.
type Coefficients struct {
	// Eccentricity is the amplitude of the orbital-eccentricity term,
	// which completes two cycles per year.
	Eccentricity float64

	// Obliquity is the amplitude of the axial-obliquity term, one cycle
	// per year.
	Obliquity float64

	// Phase is the obliquity term's phase offset in radians, aligning its
	// peak with the solstice.
	Phase float64

	// EOTYear is the year length in days used for the equation-of-time
	// day angle.
	EOTYear float64
}

// CoefficientsClassic matches the earliest surviving draft: eccentricity
// amplitude 7.655, obliquity amplitude 9.873, and the 365.35 year divisor
// that draft used (almost certainly a typo for 365.25, preserved because it
// is what the draft drew).
var CoefficientsClassic = Coefficients{
	Eccentricity: 7.655,
	Obliquity:    9.873,
	Phase:        3.588,
	EOTYear:      365.35,
}

// CoefficientsRevised matches the later drafts, which swapped the amplitude
// pairing and corrected the year divisor.
var CoefficientsRevised = Coefficients{
	Eccentricity: 9.655,
	Obliquity:    7.873,
	Phase:        3.588,
	EOTYear:      OrbitalYear,
}

// CoefficientsByName resolves a preset name ("classic" or "revised") to its
// coefficient set. The second return is false for unknown names.
func CoefficientsByName(name string) (Coefficients, bool) {
	switch name {
	case "classic":
		return CoefficientsClassic, true
	case "revised":
		return CoefficientsRevised, true
	}
	return Coefficients{}, false
}

// SolarModel approximates the Sun's apparent offsets for a day of the year.
// The zero value is not useful; construct with NewSolarModel or set
// Coefficients explicitly.
//
// Accuracy is display-grade only: both offsets are closed-form sinusoidal
// approximations, good enough to draw a recognizable analemma and nowhere
// near ephemeris quality.
type SolarModel struct {
	Coefficients Coefficients
}

// NewSolarModel returns a model using the given coefficient preset.
func NewSolarModel(c Coefficients) SolarModel {
	return SolarModel{Coefficients: c}
}

// EquationOfTime returns the horizontal analemma offset for the given
// day-of-year: the difference between apparent and mean solar time,
// approximated as the sum of an eccentricity sinusoid (two cycles per
// year) and an obliquity sinusoid (one cycle per year), scaled down by 4
// from minutes to a display unit.
//
// The function is periodic over Coefficients.EOTYear and defined for any
// real input.
func (m SolarModel) EquationOfTime(day float64) float64 {
	c := m.Coefficients
	dayAngle := day / c.EOTYear * 2 * math.Pi

	eccentricity := c.Eccentricity * math.Sin(2*dayAngle)
	obliquity := c.Obliquity * math.Sin(dayAngle+c.Phase)

	return (eccentricity + obliquity) / 4
}

// Declination returns the vertical analemma offset for the given
// day-of-year: the Sun's declination in degrees, a cosine phase-aligned so
// its maximum (+AxialTilt) lands on SummerSolsticeDay and its minimum near
// the December solstice.
//
// The result is always within [-AxialTilt, AxialTilt].
func (m SolarModel) Declination(day float64) float64 {
	dayAngle := day / OrbitalYear * 2 * math.Pi
	solsticeOffset := dayAngle - SummerSolsticeDay/OrbitalYear*2*math.Pi
	return AxialTilt * math.Cos(solsticeOffset)
}

// PositionForDay returns both offsets for the given day-of-year:
// horizontal (equation of time) and vertical (declination). Pure and total;
// every input yields a finite result.
func (m SolarModel) PositionForDay(day float64) (horizontal, vertical float64) {
	return m.EquationOfTime(day), m.Declination(day)
}
