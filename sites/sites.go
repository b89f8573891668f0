// Package sites derives the two observation points of the experiment from
// the shadow angle and the surface distance.
package sites

import (
	"github.com/echoflaresat/eratosthenes/angles"
	"github.com/echoflaresat/eratosthenes/earth"
	"github.com/echoflaresat/eratosthenes/projection"
	"github.com/echoflaresat/eratosthenes/vectors"
)

const (
	BaselineName = "Syene"
	OffsetName   = "Alexandria"
)

// Site is an observation point projected onto the globe.
type Site struct {
	Name     string  `json:"name"`
	Latitude float64 `json:"latitude"` // radians
	projection.Point
	Visible bool `json:"visible"`
}

// Pair holds the baseline site at the tropic and the offset site north of it.
type Pair struct {
	Baseline Site `json:"baseline"`
	Offset   Site `json:"offset"`
}

// DistanceScale returns how far distance deviates from the reference distance.
func DistanceScale(distance float64) float64 {
	return distance / earth.ReferenceDistance
}

// OffsetLatitude returns the latitude of the offset site in radians. The
// shadow angle is stretched by the distance scale, so doubling the distance
// doubles the apparent separation of the sites.
func OffsetLatitude(shadowAngleDeg, distance float64) float64 {
	return earth.TropicLatitude + angles.ToRadians(shadowAngleDeg)*DistanceScale(distance)
}

// PlaceSites projects both sites at the same rotation phase. A zero angle or
// distance makes them coincide. Latitudes pushed past a pole are left as is;
// the globe's visibility rule decides whether they are drawn.
func PlaceSites(shadowAngleDeg, distance, rotation, radius float64, center vectors.Vec2) Pair {
	g := projection.Globe{Center: center, Radius: radius}
	return Pair{
		Baseline: place(g, BaselineName, earth.TropicLatitude, rotation),
		Offset:   place(g, OffsetName, OffsetLatitude(shadowAngleDeg, distance), rotation),
	}
}

func place(g projection.Globe, name string, lat, rotation float64) Site {
	p := g.Project(lat, rotation)
	return Site{
		Name:     name,
		Latitude: lat,
		Point:    p,
		Visible:  g.Visible(p),
	}
}
