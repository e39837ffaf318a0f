// Package app provides the application orchestration for lift.
// It opens configuration and storage, loads the editing state and hands it
// to the TUI for the full lifecycle of a plan edit or a workout.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gerunddev/lift/internal/config"
	"github.com/gerunddev/lift/internal/db"
	"github.com/gerunddev/lift/internal/log"
	"github.com/gerunddev/lift/internal/tui"
	"github.com/gerunddev/lift/internal/workout"
)

// ProgramRunner runs a Bubble Tea model until it quits and returns the
// final model.
type ProgramRunner func(m tea.Model) (tea.Model, error)

func runProgram(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m, tea.WithAltScreen()).Run()
}

// App orchestrates storage, editing state and the TUI.
type App struct {
	cfg *config.Config
	db  *db.DB

	// For testing: allow replacing the terminal program
	runProgram ProgramRunner
}

// New creates a new App. Call Open before using it.
func New(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &App{
		cfg:        cfg,
		runProgram: runProgram,
	}
}

// Open opens the database and seeds the exercise library if configured.
func (a *App) Open(ctx context.Context) error {
	database, err := db.New(a.cfg.GetDatabasePath())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.db = database

	if a.cfg.SeedExercises {
		n, err := a.db.SeedExercises(ctx)
		if err != nil {
			log.Error("failed to seed exercises", "error", err)
			return fmt.Errorf("failed to seed exercises: %w", err)
		}
		if n > 0 {
			log.Debug("seeded exercise library", "count", n)
		}
	}
	return nil
}

// Close releases the database.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// DB returns the open database, or nil before Open.
func (a *App) DB() *db.DB {
	return a.db
}

// Config returns the application configuration.
func (a *App) Config() *config.Config {
	return a.cfg
}

// SetProgramRunner replaces the terminal program, for testing.
func (a *App) SetProgramRunner(r ProgramRunner) {
	a.runProgram = r
}

// LoadPlan fills a fresh composition state from a stored plan.
func (a *App) LoadPlan(ctx context.Context, planID int64) (*workout.Plan, error) {
	plan := workout.NewPlan()
	if err := a.loadInto(ctx, plan, planID); err != nil {
		return nil, err
	}
	return plan, nil
}

func (a *App) loadInto(ctx context.Context, plan *workout.Plan, planID int64) error {
	stored, err := a.db.GetWorkoutPlan(ctx, planID)
	if err != nil {
		return fmt.Errorf("failed to load plan %d: %w", planID, err)
	}
	rows, err := a.db.GetWorkoutPlanDetails(ctx, planID)
	if err != nil {
		return fmt.Errorf("failed to load plan %d: %w", planID, err)
	}
	if _, err := plan.LoadPlan(rows); err != nil {
		return fmt.Errorf("failed to load plan %d: %w", planID, err)
	}
	// A plan without exercise entries has no detail rows to take these from.
	plan.SetID(stored.ID)
	plan.SetName(stored.Name)
	return nil
}

// ComposePlan runs the TUI in composition mode. planID 0 starts a new plan.
func (a *App) ComposePlan(ctx context.Context, planID int64) (tui.Result, error) {
	plan := workout.NewPlan()
	if planID > 0 {
		if err := a.loadInto(ctx, plan, planID); err != nil {
			return tui.Result{}, err
		}
	}
	return a.run(ctx, tui.ModeCompose, plan, nil)
}

// RunSession runs the TUI in execution mode. planID 0 starts an ad hoc
// workout that is saved as a new plan.
func (a *App) RunSession(ctx context.Context, planID int64) (tui.Result, error) {
	session := workout.NewSession()
	defer session.Discard()

	if planID > 0 {
		if err := a.loadInto(ctx, &session.Plan, planID); err != nil {
			return tui.Result{}, err
		}
	}
	session.Begin()
	return a.run(ctx, tui.ModeExecute, nil, session)
}

func (a *App) run(ctx context.Context, mode tui.Mode, plan *workout.Plan, session *workout.Session) (tui.Result, error) {
	exercises, err := a.db.ListExercises(ctx, "")
	if err != nil {
		return tui.Result{}, fmt.Errorf("failed to list exercises: %w", err)
	}

	// The TUI owns the terminal until it quits.
	defer log.ToFile(a.cfg.GetLogFile())()
	log.Info("starting tui", "mode", mode, "database", a.cfg.GetDatabasePath())

	model := tui.NewModel(tui.Options{
		Mode:        mode,
		Plan:        plan,
		Session:     session,
		Exercises:   exercises,
		Store:       a.db,
		UserID:      a.cfg.UserID,
		RestPresets: a.cfg.RestPresets,
		Context:     ctx,
	})

	final, err := a.runProgram(model)
	if err != nil {
		return tui.Result{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(tui.Model)
	if !ok {
		return tui.Result{}, errors.New("tui returned an unexpected model")
	}
	return m.Result(), nil
}
