package main

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echoflaresat/eratosthenes/earth"
	"github.com/echoflaresat/eratosthenes/errors"
	"github.com/echoflaresat/eratosthenes/logger"
	"github.com/echoflaresat/eratosthenes/scene"
)

// modelFlags are the model inputs a command accepts on its command line.
// Only flags given explicitly override the config file.
type modelFlags struct {
	angle      float64
	distance   float64
	timeOfDay  float64
	rotation   float64
	showAngles bool
	width      float64
	window     float64
	date       string
	latitude   float64
}

func addModelFlags(cmd *cobra.Command) *modelFlags {
	f := &modelFlags{}
	fs := cmd.Flags()
	fs.Float64VarP(&f.angle, "angle", "a", scene.DefaultShadowAngle, "shadow angle at the offset site, degrees")
	fs.Float64VarP(&f.distance, "distance", "d", scene.DefaultSurfaceDistance, "surface distance between the sites, stadia")
	fs.Float64VarP(&f.timeOfDay, "time", "t", scene.DefaultTimeOfDay, "time of day, 0 (sunrise) to 100 (sunset)")
	fs.Float64VarP(&f.rotation, "rotation", "r", 0, "globe rotation phase, radians")
	fs.BoolVar(&f.showAngles, "show-angles", true, "include the angle arc, chord and caption")
	fs.Float64Var(&f.width, "width", scene.DefaultWidth, "canvas width; height follows at 3:2")
	fs.Float64Var(&f.window, "window", 0, "derive the canvas from a window width instead of --width")
	fs.StringVar(&f.date, "date", "", "take the shadow angle from the real sun on this date (RFC3339 or YYYY-MM-DD)")
	fs.Float64Var(&f.latitude, "latitude", earth.AlexandriaLatitudeDeg, "latitude of the offset site for --date, degrees")
	return f
}

// input layers the explicitly set flags over base.
func (f *modelFlags) input(cmd *cobra.Command, base scene.Input) (scene.Input, error) {
	in := base
	changed := cmd.Flags().Changed

	set := func(name string, dst **float64, v float64) {
		if changed(name) {
			*dst = scene.Float(v)
		}
	}
	set("angle", &in.ShadowAngle, f.angle)
	set("distance", &in.SurfaceDistance, f.distance)
	set("time", &in.TimeOfDay, f.timeOfDay)
	set("rotation", &in.RotationPhase, f.rotation)
	if changed("width") {
		in.Width, in.Height = scene.Float(f.width), nil
	}

	if changed("show-angles") {
		in.ShowAngles = scene.Bool(f.showAngles)
	}
	if changed("window") {
		w, h := scene.CanvasForWindow(f.window)
		in.Width, in.Height = scene.Float(w), scene.Float(h)
	}
	if changed("date") {
		t, err := parseDate(f.date)
		if err != nil {
			return scene.Input{}, err
		}
		angle := earth.NoonShadowAngle(t, f.latitude)
		logger.Log.Debug("shadow angle from date",
			zap.Time("date", t),
			zap.Float64("latitude", f.latitude),
			zap.Float64("angle", angle))
		in.ShadowAngle = scene.Float(angle)
	}
	return in, nil
}

// snapshot resolves the config model with the flags on top.
func (f *modelFlags) snapshot(cmd *cobra.Command, opts *options) (scene.InputSnapshot, error) {
	in, err := f.input(cmd, opts.cfg.Model)
	if err != nil {
		return scene.InputSnapshot{}, err
	}
	return scene.Resolve(in)
}

// parseDate accepts RFC3339 timestamps and plain dates, which mean noon UTC.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "date %q is neither RFC3339 nor YYYY-MM-DD", s)
	}
	return t.Add(12 * time.Hour), nil
}
