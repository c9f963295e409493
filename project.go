package analemma

// Default projection scales. Chosen empirically to fit the figure inside a
// 540×960 viewport; they are configuration, not physics.
const (
	DefaultHScale = 15
	DefaultVScale = 8
)

// Projector maps solar offset samples into screen space. It is a pure value
// type: projecting never mutates anything, and two projectors with equal
// fields are interchangeable.
//
// The transform is affine. The horizontal offset is scaled and added to the
// viewport center; the vertical offset is scaled and subtracted, so
// increasing declination moves the point up the screen.
type Projector struct {
	Viewport Viewport
	HScale   float64
	VScale   float64
}

// NewProjector returns a projector for the given viewport with the default
// scales.
func NewProjector(vp Viewport) Projector {
	return Projector{Viewport: vp, HScale: DefaultHScale, VScale: DefaultVScale}
}

// Project converts a sample to screen coordinates.
func (p Projector) Project(s SunSample) ScreenPoint {
	center := p.Viewport.Center()
	return ScreenPoint{
		X: center.X + s.Horizontal*p.HScale,
		Y: center.Y - s.Vertical*p.VScale,
	}
}

// ProjectPath projects every sample in the path, preserving order. The
// result is recomputed on demand and never cached by the projector.
func (p Projector) ProjectPath(path YearPath) []ScreenPoint {
	pts := make([]ScreenPoint, len(path))
	for i, s := range path {
		pts[i] = p.Project(s)
	}
	return pts
}
