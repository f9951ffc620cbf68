// Package cli wires the command surface to the resolution engine.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zsesh/zsesh/internal/config"
	"github.com/zsesh/zsesh/internal/engine"
	"github.com/zsesh/zsesh/internal/gitx"
	"github.com/zsesh/zsesh/internal/logger"
	"github.com/zsesh/zsesh/internal/model"
	"github.com/zsesh/zsesh/internal/runner"
	"github.com/zsesh/zsesh/internal/state"
	"github.com/zsesh/zsesh/internal/zellij"
	"github.com/zsesh/zsesh/internal/zoxide"
)

// Exit codes. Scripts key off these, so "not found" and "tool missing" stay
// distinguishable from plain failure.
const (
	exitOK          = 0
	exitError       = 1
	exitNotFound    = 3
	exitUnavailable = 4
)

var (
	cfgFile   string
	debugMode bool
	quietMode bool

	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:   "zsesh",
	Short: "Zellij session manager with zoxide integration",
	Long: `zsesh resolves project directories, git repositories and zoxide history
into zellij sessions with stable, repository-aware names.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/zsesh/config.json)")
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "log errors only")
}

// SetVersionInfo sets the version printed by --version from ldflags.
func SetVersionInfo(v string) {
	if v != "" {
		version = v
	}
	rootCmd.Version = version
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "zsesh: %v\n", err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, model.ErrTargetNotFound),
		errors.Is(err, model.ErrNoPreviousSession),
		errors.Is(err, model.ErrRootUnknown):
		return exitNotFound
	case errors.Is(err, model.ErrServiceUnavailable):
		return exitUnavailable
	default:
		return exitError
	}
}

// app bundles everything a command needs for one invocation.
type app struct {
	cfg    config.Config
	log    zerolog.Logger
	engine *engine.Engine
	close  func()
}

func newApp() (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	level := cfg.Logging.Level
	if quietMode {
		level = "error"
	} else if debugMode {
		level = "debug"
	}
	log, closeFn, err := logger.New(logger.Config{Level: level, File: cfg.Logging.File})
	if err != nil {
		return nil, err
	}

	run := runner.OSRunner{}
	eng := engine.New(
		zellij.NewClient(cfg.ZellijBin, run),
		zoxide.NewClient(cfg.ZoxideBin, run),
		gitx.NewClient(cfg.GitBin, run),
		state.NewStore(cfg.StatePath, cfg.LastHistoryCap),
		log,
	)

	return &app{cfg: cfg, log: log, engine: eng, close: closeFn}, nil
}

func (a *app) sessionOptions(layout string) model.SessionOptions {
	if layout == "" {
		layout = a.cfg.DefaultLayout
	}
	return model.SessionOptions{Layout: layout}
}
