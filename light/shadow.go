package light

import (
	"encoding/json"
	"math"

	"github.com/echoflaresat/eratosthenes/vectors"
)

// Marker is a vertical pillar standing on the ground line.
type Marker struct {
	X       float64 `json:"x"`
	GroundY float64 `json:"ground_y"`
	Height  float64 `json:"height"`
}

// Base returns the foot of the marker.
func (m Marker) Base() vectors.Vec2 {
	return vectors.Vec2{X: m.X, Y: m.GroundY}
}

// Tip returns the top of the marker.
func (m Marker) Tip() vectors.Vec2 {
	return vectors.Vec2{X: m.X, Y: m.GroundY - m.Height}
}

// Shadow is the shadow a marker casts along the ground.
type Shadow struct {
	Marker Marker `json:"marker"`
	// SunAngle is the angle from the marker tip to the sun, in radians.
	SunAngle float64 `json:"sun_angle"`
	// Length is signed: positive extends right of the marker, negative left.
	Length float64 `json:"length"`
}

// End returns the far end of the shadow on the ground line.
func (s Shadow) End() vectors.Vec2 {
	return vectors.Vec2{X: s.Marker.X + s.Length, Y: s.Marker.GroundY}
}

// MarshalJSON writes an unbounded length, cast by a sun level with the
// marker tip, as null.
func (s Shadow) MarshalJSON() ([]byte, error) {
	type shadow Shadow
	out := struct {
		shadow
		Length *float64 `json:"length"`
	}{shadow: shadow(s)}
	if !math.IsInf(s.Length, 0) && !math.IsNaN(s.Length) {
		out.Length = &s.Length
	}
	return json.Marshal(out)
}

// CastShadow computes the shadow of m under a sun at the given position.
func CastShadow(m Marker, sun vectors.Vec2) Shadow {
	a := math.Atan2(sun.Y-(m.GroundY-m.Height), sun.X-m.X)
	return Shadow{
		Marker:   m,
		SunAngle: a,
		Length:   ShadowLength(a, m.Height),
	}
}

// ShadowLength returns height/tan(sunAngle) for sun angles strictly inside
// (-pi/2, pi/2), negated when the angle is negative. Any other angle gives a
// zero-length shadow. A sun angle of exactly zero gives +Inf.
func ShadowLength(sunAngle, height float64) float64 {
	if sunAngle >= math.Pi/2 || sunAngle <= -math.Pi/2 || math.IsNaN(sunAngle) {
		return 0
	}
	length := height / math.Tan(sunAngle)
	if sunAngle < 0 {
		length = -length
	}
	return length
}

// Ray is a sun ray drawn from the sun to the tip of a marker and down its face.
type Ray struct {
	From vectors.Vec2 `json:"from"`
	Tip  vectors.Vec2 `json:"tip"`
	Base vectors.Vec2 `json:"base"`
}

// SunRay returns the ray from sun to marker m.
func SunRay(sun vectors.Vec2, m Marker) Ray {
	return Ray{From: sun, Tip: m.Tip(), Base: m.Base()}
}
