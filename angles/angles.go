package angles

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ToRadians converts degrees to radians.
func ToRadians[T constraints.Float](deg T) T {
	return deg * math.Pi / 180.0
}

// ToDegrees converts radians to degrees.
func ToDegrees[T constraints.Float](rad T) T {
	return rad * 180.0 / math.Pi
}
