package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echoflaresat/eratosthenes/angles"
	"github.com/echoflaresat/eratosthenes/circumference"
	"github.com/echoflaresat/eratosthenes/earth"
	"github.com/echoflaresat/eratosthenes/frames"
	"github.com/echoflaresat/eratosthenes/logger"
	"github.com/echoflaresat/eratosthenes/scene"
)

func newSceneCmd(opts *options) *cobra.Command {
	var compact bool
	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Print the descriptor of one frame as JSON",
		Args:  cobra.NoArgs,
	}
	model := addModelFlags(cmd)
	cmd.Flags().BoolVar(&compact, "compact", false, "single-line JSON")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := model.snapshot(cmd, opts)
		if err != nil {
			return err
		}
		d := scene.Assemble(s)
		logger.Log.Debug("frame assembled",
			zap.Float64("rotation_deg", angles.ToDegrees(s.RotationPhase)),
			zap.Bool("syene_visible", d.Globe.Sites.Baseline.Visible),
			zap.Bool("alexandria_visible", d.Globe.Sites.Offset.Visible))
		return writeJSON(cmd.OutOrStdout(), d, !compact)
	}
	return cmd
}

func newEstimateCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the Earth's circumference from a shadow angle and a distance",
		Args:  cobra.NoArgs,
	}
	model := addModelFlags(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := model.snapshot(cmd, opts)
		if err != nil {
			return err
		}
		c, err := circumference.Estimate(s.ShadowAngle, s.SurfaceDistance)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Angle: %s, Distance: %s stadia\n", scene.FormatAngle(s.ShadowAngle), scene.FormatDistance(s.SurfaceDistance))
		fmt.Fprintf(out, "The angle is %s of a full circle.\n", humanize.FtoaWithDigits(circumference.Fraction(s.ShadowAngle)*100, 2)+"%")
		fmt.Fprintf(out, "Circumference: %s stadia\n", scene.FormatCircumference(c))
		return nil
	}
	return cmd
}

func newSunCmd(opts *options) *cobra.Command {
	var date string
	var latitude float64
	cmd := &cobra.Command{
		Use:   "sun",
		Short: "Show the subsolar latitude and the noon shadow angle for a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now().UTC()
			if date != "" {
				var err error
				if t, err = parseDate(date); err != nil {
					return err
				}
			}
			subsolar := earth.SubsolarLatitude(t)
			angle := earth.NoonShadowAngle(t, latitude)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Date: %s\n", t.Format(time.RFC3339))
			fmt.Fprintf(out, "Subsolar latitude: %s\n", scene.FormatAngleValue(subsolar)+"°")
			fmt.Fprintf(out, "Noon shadow angle at %s: %s\n", scene.FormatAngleValue(latitude)+"°", scene.FormatAngle(angle))
			if c, err := circumference.Estimate(angle, earth.ReferenceDistance); err == nil {
				fmt.Fprintf(out, "Circumference over %s stadia: %s stadia\n", scene.FormatDistance(earth.ReferenceDistance), scene.FormatCircumference(c))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "date (RFC3339 or YYYY-MM-DD); defaults to now")
	cmd.Flags().Float64Var(&latitude, "latitude", earth.AlexandriaLatitudeDeg, "observer latitude, degrees")
	return cmd
}

func newAnimateCmd(opts *options) *cobra.Command {
	var ticks int
	var step float64
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Turn the globe and stream one JSON frame per tick",
		Long: `animate advances the rotation phase by --step every --interval and writes
each frame as a line of JSON. With --frames 0 it runs until interrupted.`,
		Args: cobra.NoArgs,
	}
	model := addModelFlags(cmd)
	cmd.Flags().IntVarP(&ticks, "frames", "n", 0, "number of frames, 0 for no limit")
	cmd.Flags().Float64Var(&step, "step", frames.DefaultStep, "rotation per tick, radians")
	cmd.Flags().DurationVar(&interval, "interval", frames.DefaultInterval, "time between ticks")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := model.snapshot(cmd, opts)
		if err != nil {
			return err
		}
		anim := opts.cfg.Animation
		if cmd.Flags().Changed("step") {
			anim.Step = step
		}
		a := frames.NewAnimator(logger.Named("animate"))
		a.Step = anim.Step
		a.Interval = anim.Interval
		if cmd.Flags().Changed("interval") {
			a.Interval = interval
		}
		if a.Cache, err = frames.NewCache(anim.CacheSize); err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		enc := json.NewEncoder(cmd.OutOrStdout())
		_, err = a.Run(ctx, s, ticks, func(tick int, d scene.Descriptor) error {
			return enc.Encode(d)
		})
		return err
	}
	return cmd
}

func newSweepCmd(opts *options) *cobra.Command {
	var count, workers int
	var step float64
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Assemble a rotation sweep in parallel and print one JSON frame per line",
		Args:  cobra.NoArgs,
	}
	model := addModelFlags(cmd)
	cmd.Flags().IntVarP(&count, "frames", "n", 628, "number of frames")
	cmd.Flags().Float64Var(&step, "step", frames.DefaultStep, "rotation between frames, radians")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "parallel workers, 0 for one per CPU")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		s, err := model.snapshot(cmd, opts)
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("workers") {
			workers = opts.cfg.Animation.Workers
		}

		start := time.Now()
		ds, err := frames.Batch(cmd.Context(), frames.Sweep(s, step, count), workers)
		if err != nil {
			return err
		}
		logger.Log.Info("sweep assembled",
			zap.Int("frames", len(ds)),
			zap.Int("workers", workers),
			zap.Duration("elapsed", time.Since(start)))

		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, d := range ds {
			if err := enc.Encode(d); err != nil {
				return err
			}
		}
		return nil
	}
	return cmd
}

func writeJSON(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
