package scene

import (
	"math"

	"github.com/echoflaresat/eratosthenes/light"
	"github.com/echoflaresat/eratosthenes/projection"
	"github.com/echoflaresat/eratosthenes/vectors"
)

// MaxCanvasWidth caps the canvas width regardless of the window size.
const MaxCanvasWidth = 600.0

// CanvasForWindow returns the canvas size for a window of the given width:
// the window less a 40px margin, capped at MaxCanvasWidth. Height is 2/3 of it.
func CanvasForWindow(windowWidth float64) (width, height float64) {
	width = math.Min(MaxCanvasWidth, windowWidth-40)
	return width, width / 1.5
}

// Layout fixes where things go on a canvas of a given size. Both diagrams
// share the canvas size.
type Layout struct {
	Width, Height float64
}

// Globe returns the globe silhouette: centered horizontally, a tenth of the
// height below the middle, sized to fit both axes.
func (l Layout) Globe() projection.Globe {
	cx := l.Width / 2
	cy := l.Height/2 + l.Height*0.1
	return projection.Globe{
		Center: vectors.Vec2{X: cx, Y: cy},
		Radius: math.Min(cy*0.8, cx*0.4),
	}
}

// GroundY is the ground line of the flat diagram.
func (l Layout) GroundY() float64 {
	return l.Height * 0.7
}

// MarkerHeight is the height of both pillars of the flat diagram.
func (l Layout) MarkerHeight() float64 {
	return l.Height * 0.2
}

// Markers returns the baseline and offset pillars of the flat diagram.
func (l Layout) Markers() (baseline, offset light.Marker) {
	g, h := l.GroundY(), l.MarkerHeight()
	return light.Marker{X: l.Width * 0.3, GroundY: g, Height: h},
		light.Marker{X: l.Width * 0.7, GroundY: g, Height: h}
}

// NoonArcRadius is the radius of the shadow-angle arc drawn at the offset
// pillar around noon.
func (l Layout) NoonArcRadius() float64 {
	return math.Min(20, l.Width*0.033)
}
