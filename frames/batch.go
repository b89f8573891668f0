package frames

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/echoflaresat/eratosthenes/scene"
)

// Batch assembles every snapshot using up to workers goroutines and returns
// the descriptors in input order. A workers value below 1 means GOMAXPROCS.
// It stops early, returning ctx.Err(), if ctx is cancelled.
func Batch(ctx context.Context, snapshots []scene.InputSnapshot, workers int) ([]scene.Descriptor, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]scene.Descriptor, len(snapshots))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, s := range snapshots {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = scene.Assemble(s)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Sweep returns snapshots that step base's rotation phase by step, n times,
// starting at base.RotationPhase.
func Sweep(base scene.InputSnapshot, step float64, n int) []scene.InputSnapshot {
	if n <= 0 {
		return nil
	}
	out := make([]scene.InputSnapshot, n)
	for i := range out {
		s := base
		s.RotationPhase = base.RotationPhase + float64(i)*step
		out[i] = s
	}
	return out
}
