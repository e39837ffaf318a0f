// Package main is the entry point for the lift CLI application.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gerunddev/lift/internal/app"
	"github.com/gerunddev/lift/internal/config"
	"github.com/gerunddev/lift/internal/log"
)

// appFactory is the function used to create and open an app.App.
// It can be replaced in tests to point at a temporary database.
var appFactory = defaultAppFactory

// defaultAppFactory is the production app factory implementation.
func defaultAppFactory(cmd *cobra.Command, configPath string) (*app.App, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := log.SetLevelName(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	a := app.New(cfg)
	if err := a.Open(cmd.Context()); err != nil {
		return nil, err
	}
	return a, nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return rootCmd().Execute()
}

// rootCmd builds the command tree.
func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "lift",
		Short: "Offline workout plans and session tracking",
		Long: `lift keeps a library of exercises, lets you compose workout plans
of exercises and sets, and records the workouts you perform against them.
Everything is stored in a single local SQLite file.

Examples:
  lift plan new                 # Compose a new plan
  lift plan list                # List saved plans
  lift session start 3          # Perform plan 3
  lift history --limit 10       # Show recent workouts`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default: ~/.config/lift/config.yaml)")

	open := func(cmd *cobra.Command) (*app.App, error) {
		return appFactory(cmd, configPath)
	}

	root.AddCommand(exercisesCmd(open))
	root.AddCommand(planCmd(open))
	root.AddCommand(sessionCmd(open))
	root.AddCommand(historyCmd(open))

	return root
}

// opener opens the app for a command. Callers must Close it.
type opener func(cmd *cobra.Command) (*app.App, error)

// withApp opens the app, runs fn and closes the app.
func withApp(cmd *cobra.Command, open opener, fn func(a *app.App) error) error {
	a, err := open(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := a.Close(); closeErr != nil {
			log.Warn("failed to close database", "error", closeErr)
		}
	}()
	return fn(a)
}

func parseID(kind, s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id: %s", kind, s)
	}
	return id, nil
}
