package scene

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dustin/go-humanize"
)

// NoonWindow is how close to 50 the time of day must be for the flat diagram
// to show the shadow angle at the offset pillar.
const NoonWindow = 2.0

// FormatAngle formats a shadow angle with one decimal and a degree sign.
func FormatAngle(deg float64) string {
	return FormatAngleValue(deg) + "°"
}

// FormatAngleValue formats a shadow angle with one decimal.
func FormatAngleValue(deg float64) string {
	return fmt.Sprintf("%.1f", deg)
}

// FormatDistance formats a surface distance as a whole number, truncating
// any fraction.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(math.Trunc(d), 'f', 0, 64)
}

// FormatCircumference groups the digits of c by thousands.
func FormatCircumference(c int64) string {
	return humanize.Comma(c)
}

// TimeLabel names a time of day in [0, 100].
func TimeLabel(timeOfDay float64) string {
	switch {
	case timeOfDay < 30:
		return "Morning"
	case timeOfDay > 70:
		return "Afternoon"
	case timeOfDay >= 45 && timeOfDay <= 55:
		return "Noon"
	case timeOfDay < 50:
		return "Late Morning"
	default:
		return "Early Afternoon"
	}
}

// IsNoon reports whether the time of day falls in the noon window.
func IsNoon(timeOfDay float64) bool {
	return math.Abs(timeOfDay-50) < NoonWindow
}

// TimeAnnouncement is read out when the time of day changes.
func TimeAnnouncement(timeOfDay float64) string {
	return "Time of day set to " + TimeLabel(timeOfDay)
}

// InputAnnouncement is read out when the angle or distance changes.
func InputAnnouncement(shadowAngle, distance float64) string {
	return fmt.Sprintf("Angle: %s, Distance: %s", FormatAngle(shadowAngle), FormatDistance(distance))
}
