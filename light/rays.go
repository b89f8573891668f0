package light

import (
	"math"

	"github.com/echoflaresat/eratosthenes/vectors"
)

// GlobeRayCount is the number of decorative rays drawn toward the globe.
const GlobeRayCount = 8

// GlobeRays returns the directions of the globe's decorative rays: eight
// angles 45 degrees apart, turned by a tenth of the rotation phase.
func GlobeRays(rotation float64) [GlobeRayCount]float64 {
	var out [GlobeRayCount]float64
	for i := range out {
		out[i] = float64(i)*math.Pi/4 + rotation/10
	}
	return out
}

// GlobeSun is the sun disc beside the globe and the fan of rays it casts.
type GlobeSun struct {
	Center vectors.Vec2 `json:"center"`
	Radius float64      `json:"radius"`
	// RayOrigin is where every ray starts, just left of the disc.
	RayOrigin vectors.Vec2 `json:"ray_origin"`
	// RayTargets are the ray end points on the globe rim.
	RayTargets [GlobeRayCount]vectors.Vec2 `json:"ray_targets"`
}

// PlaceGlobeSun puts the sun at the right edge of a canvas of the given
// width, level with the globe center, and aims its rays at the globe rim.
func PlaceGlobeSun(width float64, globeCenter vectors.Vec2, globeRadius, rotation float64) GlobeSun {
	r := math.Min(20, width*0.033)
	s := GlobeSun{
		Center:    vectors.Vec2{X: width - r*2.5, Y: globeCenter.Y},
		Radius:    r,
		RayOrigin: vectors.Vec2{X: width - r*3.5, Y: globeCenter.Y},
	}
	for i, a := range GlobeRays(rotation) {
		s.RayTargets[i] = globeCenter.Add(vectors.Polar(globeRadius, a))
	}
	return s
}
