package analemma

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

// Rendering constants. Stroke widths and radii are in logical pixels.
const (
	pathStrokeWidth  = 2
	markerRadius     = 6
	haloRadiusFactor = 2.2
	dateMarkerRadius = 3
	labelFontSize    = 14
	labelOffsetX     = 9
	labelOffsetY     = -5
	sunTintBlend     = 0.25 // how far the marker core leans toward the season color
)

// Sky gradient endpoints: near-black zenith fading to a faint horizon glow.
var (
	skyZenith  = Color{R: 0.01, G: 0.01, B: 0.05, A: 1}
	skyHorizon = Color{R: 0.06, G: 0.07, B: 0.18, A: 1}

	markerColor = Color{R: 1, G: 0.95, B: 0.6, A: 1}
	haloColor   = Color{R: 1, G: 0.95, B: 0.6, A: 0.22}
	dateColor   = Color{R: 0.8, G: 0.84, B: 1, A: 0.9}
	labelColor  = Color{R: 0.85, G: 0.88, B: 1, A: 1}
)

// Frame is the read-only snapshot the renderer draws from. It is a plain
// value: the renderer cannot reach the clock or any other mutable
// simulation state through it.
type Frame struct {
	Day         int     // current whole day-of-year, 0..364
	DayFraction float64 // fractional day-of-year, for smooth marker motion
	MarkerScale float64 // pulse scale applied to the sun marker
	Speed       float64 // current animation speed, for the overlay
	ShowDebug   bool
}

// Renderer draws the analemma scene: gradient sky, the season-colored
// figure-eight path, the four annotated calendar days, and the pulsing
// current-sun marker. All of its fields are fixed at construction; Draw
// only reads.
type Renderer struct {
	proj   Projector
	path   YearPath
	points []ScreenPoint // projected path, index = day
	named  []NamedDayPosition

	showLabels bool
	face       *text.GoTextFace

	skyVerts   []ebiten.Vertex
	skyIndices []uint16
}

// NewRenderer builds a renderer for the given path and projector. The label
// font is parsed from the bundled Go Regular TTF; a parse failure is
// returned so startup can abort with a clear message.
func NewRenderer(path YearPath, proj Projector, showLabels bool) (*Renderer, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("analemma: parse label font: %w", err)
	}
	face := &text.GoTextFace{Source: source, Size: labelFontSize}

	verts, indices := skyVertices(proj.Viewport, skyZenith, skyHorizon)

	return &Renderer{
		proj:       proj,
		path:       path,
		points:     proj.ProjectPath(path),
		named:      NamedDayPositions(path, proj),
		showLabels: showLabels,
		face:       face,
		skyVerts:   verts,
		skyIndices: indices,
	}, nil
}

// Draw renders one frame to dst.
func (r *Renderer) Draw(dst *ebiten.Image, frame Frame) {
	r.drawSky(dst)
	r.drawPath(dst)
	if r.showLabels {
		r.drawNamedDays(dst)
	}
	r.drawSun(dst, frame)
	if frame.ShowDebug {
		r.drawOverlay(dst, frame)
	}
}

// drawSky fills the viewport with the vertical gradient.
func (r *Renderer) drawSky(dst *ebiten.Image) {
	op := &ebiten.DrawTrianglesOptions{}
	dst.DrawTriangles(r.skyVerts, r.skyIndices, WhitePixel, op)
}

// drawPath strokes the 365 path segments, wrapping the final segment back
// to day 0 to close the figure. Each segment takes the color of its
// starting day's season band.
func (r *Renderer) drawPath(dst *ebiten.Image) {
	n := len(r.points)
	for i := 0; i < n; i++ {
		from := r.points[i]
		to := r.points[(i+1)%n]
		clr := SeasonForDay(i).Color()
		vector.StrokeLine(dst,
			float32(from.X), float32(from.Y),
			float32(to.X), float32(to.Y),
			pathStrokeWidth, clr.toRGBA(), true)
	}
}

// drawNamedDays marks the solstice/equinox days with a dot and label.
func (r *Renderer) drawNamedDays(dst *ebiten.Image) {
	for _, nd := range r.named {
		vector.DrawFilledCircle(dst,
			float32(nd.Point.X), float32(nd.Point.Y),
			dateMarkerRadius, dateColor.toRGBA(), true)

		op := &text.DrawOptions{}
		op.GeoM.Translate(nd.Point.X+labelOffsetX, nd.Point.Y+labelOffsetY)
		op.ColorScale.ScaleWithColor(labelColor.toRGBA())
		text.Draw(dst, nd.Label, r.face, op)
	}
}

// drawSun draws the current-day marker: a soft halo behind a solid core,
// both scaled by the frame's pulse value. The marker glides between whole-day
// samples using the frame's fractional day, and its core takes a hint of the
// current season's path color.
func (r *Renderer) drawSun(dst *ebiten.Image, frame Frame) {
	pos := markerPosition(r.points, frame.DayFraction)
	scale := frame.MarkerScale
	if scale <= 0 {
		scale = 1
	}
	core := markerColor.Lerp(SeasonForDay(frame.Day).Color(), sunTintBlend)

	vector.DrawFilledCircle(dst,
		float32(pos.X), float32(pos.Y),
		float32(markerRadius*haloRadiusFactor*scale), haloColor.toRGBA(), true)
	vector.DrawFilledCircle(dst,
		float32(pos.X), float32(pos.Y),
		float32(markerRadius*scale), core.toRGBA(), true)
}

// markerPosition interpolates linearly between the samples on either side of
// the fractional day, wrapping 364→0 like the path itself.
func markerPosition(points []ScreenPoint, dayFraction float64) ScreenPoint {
	n := len(points)
	whole := math.Floor(dayFraction)
	frac := dayFraction - whole

	i := int(whole) % n
	if i < 0 {
		i += n
	}
	from := points[i]
	to := points[(i+1)%n]
	return ScreenPoint{
		X: from.X + (to.X-from.X)*frac,
		Y: from.Y + (to.Y-from.Y)*frac,
	}
}

// drawOverlay prints frame diagnostics in the top-left corner.
func (r *Renderer) drawOverlay(dst *ebiten.Image, frame Frame) {
	ebitenutil.DebugPrint(dst, fmt.Sprintf(
		"FPS: %.1f  TPS: %.1f\nday %d  (%s)  speed %.2g",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		frame.Day, SeasonForDay(frame.Day), frame.Speed))
}

// skyVertices builds a full-viewport quad with the top edge colored zenith
// and the bottom edge horizon. Vertex colors are premultiplied at build
// time; the source texture is the shared white pixel.
func skyVertices(vp Viewport, zenith, horizon Color) ([]ebiten.Vertex, []uint16) {
	corner := func(x, y float64, c Color) ebiten.Vertex {
		return ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: float32(c.R * c.A),
			ColorG: float32(c.G * c.A),
			ColorB: float32(c.B * c.A),
			ColorA: float32(c.A),
		}
	}
	verts := []ebiten.Vertex{
		corner(0, 0, zenith),
		corner(vp.Width, 0, zenith),
		corner(0, vp.Height, horizon),
		corner(vp.Width, vp.Height, horizon),
	}
	indices := []uint16{0, 1, 2, 2, 1, 3}
	return verts, indices
}
