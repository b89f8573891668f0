package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/echoflaresat/eratosthenes/config"
	"github.com/echoflaresat/eratosthenes/errors"
	"github.com/echoflaresat/eratosthenes/logger"
)

// options are shared by every command. cfg is filled in before any command runs.
type options struct {
	configPath string
	logLevel   string
	logFile    string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "eratosthenes",
		Short: "Geometry of Eratosthenes' measurement of the Earth",
		Long: `eratosthenes derives the drawable geometry of the classic experiment:
two sites on a rotating globe, the sun and pillar shadows of the flat diagram,
and the circumference estimated from a shadow angle and a surface distance.
Frames are written as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Logging.Level = opts.logLevel
			}
			if cmd.Flags().Changed("log-file") {
				cfg.Logging.LogFile = opts.logFile
			}
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return err
			}
			logger.Log.Debug("configuration loaded", zap.String("path", opts.configPath))
			opts.cfg = cfg
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "also write JSON logs to this file, rotated")

	root.AddCommand(newSceneCmd(opts))
	root.AddCommand(newEstimateCmd(opts))
	root.AddCommand(newSunCmd(opts))
	root.AddCommand(newAnimateCmd(opts))
	root.AddCommand(newSweepCmd(opts))

	return root
}

// report writes a failed command's error for the user: the code when it has
// one, then the message and its cause.
func report(w io.Writer, err error) {
	code := errors.GetCode(err)
	logger.Log.Debug("command failed", zap.String("code", string(code)), zap.Error(err))

	msg := errors.UserMessage(err)
	var e *errors.Error
	if stderrors.As(err, &e) && e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	if code != "" {
		fmt.Fprintf(w, "Error [%s]: %s\n", code, msg)
		return
	}
	fmt.Fprintf(w, "Error: %s\n", msg)
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		report(os.Stderr, err)
		logger.Sync()
		os.Exit(1)
	}
}
