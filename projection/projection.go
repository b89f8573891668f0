// Package projection places points of given latitude and rotation phase on
// the 2D silhouette of a sphere.
//
// The model is a flat analog, not a 3D camera: latitude shrinks the
// horizontal swing of a point and lifts it vertically, while the rotation
// phase sweeps it left and right along cos(phase).
package projection

import (
	"math"

	"github.com/echoflaresat/eratosthenes/vectors"
)

// Point is a projected surface point.
type Point struct {
	vectors.Vec2
	// OutwardAngle is the direction from the sphere center to the point, in radians.
	OutwardAngle float64 `json:"outward_angle"`
}

// Project maps (latitude, rotation) onto a sphere silhouette of the given
// center and radius. Latitude and rotation are in radians.
func Project(latitude, rotation float64, center vectors.Vec2, radius float64) Point {
	effectiveRadius := radius * math.Cos(latitude)
	verticalOffset := radius * math.Sin(latitude)

	x := center.X + effectiveRadius*math.Cos(rotation)
	y := center.Y - verticalOffset

	p := vectors.Vec2{X: x, Y: y}
	return Point{
		Vec2:         p,
		OutwardAngle: p.Sub(center).Angle(),
	}
}

// Globe is a sphere silhouette on the canvas.
type Globe struct {
	Center vectors.Vec2 `json:"center"`
	Radius float64      `json:"radius"`
}

// Project places a point on g. See Project.
func (g Globe) Project(latitude, rotation float64) Point {
	return Project(latitude, rotation, g.Center, g.Radius)
}

// Visible reports whether p should be drawn. Only the left edge is tested:
// any point right of center.X - radius counts as front-facing.
func (g Globe) Visible(p Point) bool {
	return p.X > g.Center.X-g.Radius
}

// Ellipse is an axis-aligned ellipse.
type Ellipse struct {
	Center  vectors.Vec2 `json:"center"`
	RadiusX float64      `json:"radius_x"`
	RadiusY float64      `json:"radius_y"`
}

// Equator returns the equator outline, flattened to a fifth of the radius.
func (g Globe) Equator() Ellipse {
	return Ellipse{Center: g.Center, RadiusX: g.Radius, RadiusY: g.Radius * 0.2}
}

// Curve is a cubic Bézier from Start to End.
type Curve struct {
	Start    vectors.Vec2 `json:"start"`
	Control1 vectors.Vec2 `json:"control1"`
	Control2 vectors.Vec2 `json:"control2"`
	End      vectors.Vec2 `json:"end"`
}

// MeridianCount is the number of longitude lines drawn on the globe.
const MeridianCount = 6

// Meridians returns the longitude lines of g at the given rotation. Each runs
// pole to pole and bulges by radius*sin(i*pi/3 + rotation).
func (g Globe) Meridians(rotation float64) []Curve {
	c, r := g.Center, g.Radius
	out := make([]Curve, 0, MeridianCount)
	for i := 0; i < MeridianCount; i++ {
		angle := float64(i)*math.Pi/3 + rotation
		bulge := c.X + r*math.Sin(angle)
		out = append(out, Curve{
			Start:    vectors.Vec2{X: c.X, Y: c.Y - r},
			Control1: vectors.Vec2{X: bulge, Y: c.Y - r*0.5},
			Control2: vectors.Vec2{X: bulge, Y: c.Y + r*0.5},
			End:      vectors.Vec2{X: c.X, Y: c.Y + r},
		})
	}
	return out
}
