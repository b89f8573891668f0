// Package frames drives the scene model over time and in bulk. It is the
// caller side of the model: it owns the rotation phase, the tick source and
// the descriptor cache, none of which the model itself keeps.
package frames

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/echoflaresat/eratosthenes/scene"
)

// DefaultStep is the rotation added per tick.
const DefaultStep = 0.01

// DefaultInterval paces ticks at roughly 60 frames per second.
const DefaultInterval = time.Second / 60

// Advance returns s with its rotation phase moved on by step.
func Advance(s scene.InputSnapshot, step float64) scene.InputSnapshot {
	s.RotationPhase += step
	return s
}

// FrameFunc receives each assembled frame. Returning an error stops the run.
type FrameFunc func(tick int, d scene.Descriptor) error

// Animator turns the globe by Step every Interval.
type Animator struct {
	Step     float64
	Interval time.Duration // zero runs ticks back to back
	Cache    *Cache        // optional
	Logger   *zap.Logger   // optional
}

// NewAnimator returns an animator with the default step and interval.
func NewAnimator(logger *zap.Logger) *Animator {
	return &Animator{Step: DefaultStep, Interval: DefaultInterval, Logger: logger}
}

// Run advances from start for n ticks (forever if n <= 0), handing each frame
// to fn. It returns the last snapshot so a stopped animation can be resumed.
// Cancelling ctx stops the run; that is not reported as an error.
func (a *Animator) Run(ctx context.Context, start scene.InputSnapshot, n int, fn FrameFunc) (scene.InputSnapshot, error) {
	log := a.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("session", uuid.NewString()))
	log.Info("animation started",
		zap.Float64("rotation", start.RotationPhase),
		zap.Float64("step", a.Step),
		zap.Duration("interval", a.Interval),
		zap.Int("ticks", n))

	var tick <-chan time.Time
	if a.Interval > 0 {
		t := time.NewTicker(a.Interval)
		defer t.Stop()
		tick = t.C
	}

	s := start
	for i := 0; n <= 0 || i < n; i++ {
		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
		if ctx.Err() != nil {
			log.Info("animation stopped", zap.Int("frames", i), zap.Float64("rotation", s.RotationPhase))
			return s, nil
		}

		s = Advance(s, a.Step)
		if err := fn(i, a.assemble(s)); err != nil {
			log.Warn("frame rejected", zap.Int("tick", i), zap.Error(err))
			return s, err
		}
		log.Debug("frame", zap.Int("tick", i), zap.Float64("rotation", s.RotationPhase))
	}

	log.Info("animation finished", zap.Float64("rotation", s.RotationPhase))
	return s, nil
}

func (a *Animator) assemble(s scene.InputSnapshot) scene.Descriptor {
	if a.Cache != nil {
		return a.Cache.Assemble(s)
	}
	return scene.Assemble(s)
}
