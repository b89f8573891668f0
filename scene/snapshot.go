package scene

import (
	"math"

	"github.com/echoflaresat/eratosthenes/circumference"
	"github.com/echoflaresat/eratosthenes/errors"
)

// Defaults applied at the input boundary.
const (
	DefaultShadowAngle     = 7.2
	DefaultSurfaceDistance = 5000.0
	DefaultTimeOfDay       = 50.0
	DefaultWidth           = 600.0
	DefaultHeight          = DefaultWidth / 1.5
)

// Input is a raw, possibly incomplete set of inputs as they arrive from
// flags, config files or a UI. Nil means absent.
type Input struct {
	RotationPhase   *float64 `json:"rotation_phase,omitempty" yaml:"rotation_phase" toml:"rotation_phase"`
	ShadowAngle     *float64 `json:"shadow_angle,omitempty" yaml:"shadow_angle" toml:"shadow_angle"`
	SurfaceDistance *float64 `json:"surface_distance,omitempty" yaml:"surface_distance" toml:"surface_distance"`
	TimeOfDay       *float64 `json:"time_of_day,omitempty" yaml:"time_of_day" toml:"time_of_day"`
	ShowAngles      *bool    `json:"show_angles,omitempty" yaml:"show_angles" toml:"show_angles"`
	Width           *float64 `json:"width,omitempty" yaml:"width" toml:"width"`
	Height          *float64 `json:"height,omitempty" yaml:"height" toml:"height"`
}

// InputSnapshot is a complete, validated set of inputs for one frame.
// It is comparable and can be used as a map or cache key.
type InputSnapshot struct {
	RotationPhase   float64 `json:"rotation_phase"`   // radians
	ShadowAngle     float64 `json:"shadow_angle"`     // degrees
	SurfaceDistance float64 `json:"surface_distance"` // stadia
	TimeOfDay       float64 `json:"time_of_day"`      // 0..100
	ShowAngles      bool    `json:"show_angles"`
	Width           float64 `json:"width"`
	Height          float64 `json:"height"`
}

// DefaultSnapshot returns the snapshot of a freshly loaded page.
func DefaultSnapshot() InputSnapshot {
	return InputSnapshot{
		ShadowAngle:     DefaultShadowAngle,
		SurfaceDistance: DefaultSurfaceDistance,
		TimeOfDay:       DefaultTimeOfDay,
		ShowAngles:      true,
		Width:           DefaultWidth,
		Height:          DefaultHeight,
	}
}

// Resolve validates in and fills the gaps with defaults.
//
// Absent, NaN and zero angles or distances fall back to their defaults, as an
// empty or zeroed slider would. Everything else out of range is rejected:
// negative or over-90 angles with ErrCodeDegenerateAngle, negative or
// infinite distances with ErrCodeInvalidDistance, and times of day outside
// [0, 100] with ErrCodeOutOfRangeTime. A distance too large for the
// circumference to be represented is also ErrCodeInvalidDistance.
func Resolve(in Input) (InputSnapshot, error) {
	s := DefaultSnapshot()

	if v, ok := present(in.ShadowAngle); ok && v != 0 {
		if v < 0 || v > 90 || math.IsInf(v, 0) {
			return InputSnapshot{}, errors.New(errors.ErrCodeDegenerateAngle, "shadow angle %v outside (0, 90]", v)
		}
		s.ShadowAngle = v
	}

	if v, ok := present(in.SurfaceDistance); ok && v != 0 {
		if v < 0 || math.IsInf(v, 0) {
			return InputSnapshot{}, errors.New(errors.ErrCodeInvalidDistance, "surface distance %v must be positive and finite", v)
		}
		s.SurfaceDistance = v
	}

	if _, err := circumference.Estimate(s.ShadowAngle, s.SurfaceDistance); err != nil {
		return InputSnapshot{}, err
	}

	if v, ok := present(in.TimeOfDay); ok {
		if v < 0 || v > 100 {
			return InputSnapshot{}, errors.New(errors.ErrCodeOutOfRangeTime, "time of day %v outside [0, 100]", v)
		}
		s.TimeOfDay = v
	}

	if v, ok := present(in.RotationPhase); ok {
		if math.IsInf(v, 0) {
			return InputSnapshot{}, errors.New(errors.ErrCodeInvalidInput, "rotation phase must be finite")
		}
		s.RotationPhase = v
	}

	if in.ShowAngles != nil {
		s.ShowAngles = *in.ShowAngles
	}

	if v, ok := present(in.Width); ok {
		if v <= 0 || math.IsInf(v, 0) {
			return InputSnapshot{}, errors.New(errors.ErrCodeInvalidInput, "canvas width %v must be positive", v)
		}
		s.Width = v
		s.Height = v / 1.5
	}
	if v, ok := present(in.Height); ok {
		if v <= 0 || math.IsInf(v, 0) {
			return InputSnapshot{}, errors.New(errors.ErrCodeInvalidInput, "canvas height %v must be positive", v)
		}
		s.Height = v
	}

	return s, nil
}

// present reports a usable value; NaN counts as absent.
func present(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) {
		return 0, false
	}
	return *v, true
}

// Float returns a pointer to v, for building an Input.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for building an Input.
func Bool(v bool) *bool { return &v }
