package vectors

import "math"

// Vec2 is a point or direction in canvas space. Y grows downward.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Polar returns the point at distance r from the origin along angle theta.
func Polar(r, theta float64) Vec2 {
	return Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Norm returns the Euclidean length ||v||.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns atan2(v.Y, v.X).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Midpoint returns the point halfway between v and o.
func (v Vec2) Midpoint(o Vec2) Vec2 {
	return Vec2{(v.X + o.X) / 2, (v.Y + o.Y) / 2}
}

// Distance returns the length of the segment from v1 to v2.
func Distance(v1, v2 Vec2) float64 {
	return v1.Sub(v2).Norm()
}
