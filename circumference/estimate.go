// Package circumference extrapolates a planet's circumference from the
// shadow angle between two sites and the surface distance separating them.
package circumference

import (
	"math"

	"github.com/echoflaresat/eratosthenes/errors"
)

// Estimate returns round(distance * 360 / shadowAngleDeg). Halves round up,
// toward positive infinity. The angle must be a finite value above zero;
// anything else yields an ErrCodeDegenerateAngle error. Nothing is clamped:
// a result outside the int64 range is an ErrCodeInvalidDistance error.
func Estimate(shadowAngleDeg, distance float64) (int64, error) {
	if !(shadowAngleDeg > 0) || math.IsInf(shadowAngleDeg, 0) {
		return 0, errors.New(errors.ErrCodeDegenerateAngle, "shadow angle must be positive, got %v", shadowAngleDeg)
	}
	c := math.Floor(distance*360/shadowAngleDeg + 0.5)
	if math.IsNaN(c) || c >= math.MaxInt64 || c < math.MinInt64 {
		return 0, errors.New(errors.ErrCodeInvalidDistance, "circumference of %v stadia over %v° is not representable", distance, shadowAngleDeg)
	}
	return int64(c), nil
}

// Fraction returns the share of the full circle the shadow angle spans.
func Fraction(shadowAngleDeg float64) float64 {
	return shadowAngleDeg / 360
}
