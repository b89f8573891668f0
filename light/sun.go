// Package light holds the two light models of the experiment: the sun
// crossing the sky of the flat diagram, and the decorative rays of the globe.
// They serve different diagrams and are not derived from each other.
package light

import (
	"math"

	"github.com/echoflaresat/eratosthenes/vectors"
)

// SunPosition places the sun of the flat diagram for a time of day in
// [0, 100]. The sun rises at the left horizon, peaks at noon (50) and sets on
// the right. Values outside the range are not clamped.
func SunPosition(timeOfDay, width, height float64) vectors.Vec2 {
	return vectors.Vec2{
		X: timeOfDay / 100 * width,
		Y: 0.5*height - Elevation(timeOfDay)*0.4*height,
	}
}

// Elevation returns the height of the flat-diagram sun above its horizon
// line as a fraction of its peak, sin(pi*timeOfDay/100). The argument is
// folded about noon so sunrise and sunset both evaluate sin(0).
func Elevation(timeOfDay float64) float64 {
	f := timeOfDay / 100
	if 1-f < f {
		f = 1 - f
	}
	return math.Sin(math.Pi * f)
}

// FlatSunRadius is the drawn radius of the flat-diagram sun.
func FlatSunRadius(width float64) float64 {
	return math.Min(30, width*0.05)
}
