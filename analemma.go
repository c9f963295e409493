package analemma

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied 8-bit color for Ebitengine APIs.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R*c.A) * 255)),
		G: uint8(math.Round(clamp01(c.G*c.A) * 255)),
		B: uint8(math.Round(clamp01(c.B*c.A) * 255)),
		A: uint8(math.Round(clamp01(c.A) * 255)),
	}
}

// Lerp returns the component-wise linear interpolation between c and other.
// t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	t = clamp01(t)
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ScreenPoint is a position in screen space. The coordinate system has its
// origin at the top-left, with Y increasing downward.
type ScreenPoint struct {
	X, Y float64
}

// Viewport is the drawable area the analemma is projected into.
// It is explicit configuration, passed to the projector at construction;
// there are no package-level size constants.
type Viewport struct {
	Width, Height float64
}

// Center returns the midpoint of the viewport.
func (v Viewport) Center() ScreenPoint {
	return ScreenPoint{X: v.Width / 2, Y: v.Height / 2}
}

// WhitePixel is a 1x1 white image used as the texture source for
// solid-color and vertex-colored geometry.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}
