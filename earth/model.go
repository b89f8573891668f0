package earth

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
)

const (
	// TropicLatitudeDeg is the latitude of the baseline site (Syene).
	TropicLatitudeDeg = 23.5

	// ReferenceDistance normalizes the surface distance when placing the
	// offset site: at this distance the angular offset equals the shadow angle.
	ReferenceDistance = 5000.0

	// AlexandriaLatitudeDeg is the historical latitude of the offset site.
	AlexandriaLatitudeDeg = 31.2
)

// TropicLatitude is TropicLatitudeDeg in radians.
const TropicLatitude = TropicLatitudeDeg * math.Pi / 180.0

// SubsolarLatitude returns the apparent declination of the Sun at t, in degrees.
// At local noon the Sun stands at the zenith of every point on this latitude.
func SubsolarLatitude(t time.Time) float64 {
	jd := julian.TimeToJD(t.UTC())
	_, dec := solar.ApparentEquatorial(jd)
	return dec.Deg()
}

// NoonShadowAngle returns the angle in degrees between a vertical gnomon at
// latitudeDeg and the Sun's rays at local noon on the date of t.
func NoonShadowAngle(t time.Time, latitudeDeg float64) float64 {
	return math.Abs(latitudeDeg - SubsolarLatitude(t))
}
