package analemma

// SunSample is the Sun's apparent offset pair for one day of the year.
// Samples are immutable once built.
type SunSample struct {
	Horizontal float64 // equation of time, display units
	Vertical   float64 // declination, degrees
	Day        int     // day-of-year, 0..364
}

// YearPath is one sample per day of the year, in day order. It always holds
// exactly DaysPerYear entries with path[i].Day == i. The path is implicitly
// closed: rendering joins day 364 back to day 0 to close the figure-eight,
// which is a visual approximation rather than a physical fact (the year is
// not a whole number of days).
type YearPath []SunSample

// BuildYearPath samples the model once per whole day, in ascending order.
// Deterministic; safe to build once at startup and reuse.
func BuildYearPath(model SolarModel) YearPath {
	path := make(YearPath, 0, DaysPerYear)
	for day := 0; day < DaysPerYear; day++ {
		h, v := model.PositionForDay(float64(day))
		path = append(path, SunSample{Horizontal: h, Vertical: v, Day: day})
	}
	return path
}

// At returns the sample for the given day index, wrapping modulo the path
// length so At(DaysPerYear) is day 0. Negative indices wrap the same way.
func (p YearPath) At(i int) SunSample {
	n := len(p)
	i %= n
	if i < 0 {
		i += n
	}
	return p[i]
}

// --- Seasons ---

// Season identifies which quarter-year band a day falls in. The bands are
// display labels for path coloring, not astronomical definitions; each runs
// from one solstice/equinox marker day to the next.
type Season uint8

const (
	WinterToSpring Season = iota // days [0, 80)
	SpringToSummer               // days [80, 172)
	SummerToAutumn               // days [172, 266)
	AutumnToWinter               // days [266, 365)
)

// seasonStarts are the band boundaries, northern-hemisphere marker days.
var seasonStarts = [4]int{0, 80, 172, 266}

// SeasonForDay classifies a day-of-year into its season band. The day is
// wrapped modulo DaysPerYear first, so any integer is valid.
func SeasonForDay(day int) Season {
	day %= DaysPerYear
	if day < 0 {
		day += DaysPerYear
	}
	for s := AutumnToWinter; s > WinterToSpring; s-- {
		if day >= seasonStarts[s] {
			return s
		}
	}
	return WinterToSpring
}

// String returns the season's display name.
func (s Season) String() string {
	switch s {
	case WinterToSpring:
		return "Winter → Spring"
	case SpringToSummer:
		return "Spring → Summer"
	case SummerToAutumn:
		return "Summer → Autumn"
	case AutumnToWinter:
		return "Autumn → Winter"
	}
	return "unknown"
}

// Color returns the path color for this season band.
func (s Season) Color() Color {
	switch s {
	case WinterToSpring:
		return Color{R: 0.55, G: 0.78, B: 1, A: 1} // pale blue
	case SpringToSummer:
		return Color{R: 0.55, G: 1, B: 0.65, A: 1} // spring green
	case SummerToAutumn:
		return Color{R: 1, G: 0.88, B: 0.45, A: 1} // warm gold
	case AutumnToWinter:
		return Color{R: 1, G: 0.58, B: 0.4, A: 1} // ember orange
	}
	return ColorWhite
}

// --- Named days ---

// NamedDay is a fixed calendar day annotated on the figure.
type NamedDay struct {
	Day   int
	Label string
}

// NamedDays are the four solstice/equinox annotation days, in calendar
// order. Day numbers follow the non-leap-year convention used by the path.
var NamedDays = [4]NamedDay{
	{Day: 80, Label: "Spring Equinox"},
	{Day: 172, Label: "Summer Solstice"},
	{Day: 266, Label: "Autumn Equinox"},
	{Day: 355, Label: "Winter Solstice"},
}

// NamedDayPosition pairs a projected screen position with its label.
type NamedDayPosition struct {
	Point ScreenPoint
	Label string
}

// NamedDayPositions looks up each named day in the path and projects it.
// The result has one entry per NamedDays element, in the same order.
func NamedDayPositions(path YearPath, proj Projector) []NamedDayPosition {
	out := make([]NamedDayPosition, 0, len(NamedDays))
	for _, nd := range NamedDays {
		out = append(out, NamedDayPosition{
			Point: proj.Project(path.At(nd.Day)),
			Label: nd.Label,
		})
	}
	return out
}
