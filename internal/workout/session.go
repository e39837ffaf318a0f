package workout

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/gerunddev/lift/internal/db"
	"github.com/gerunddev/lift/internal/timer"
)

// SessionStore persists finished sessions. *db.DB implements it.
type SessionStore interface {
	SaveCompletedSession(ctx context.Context, planID int64, plan db.PlanInput, session db.SessionInput) (db.SessionSaveResult, error)
}

// Session is the state of a workout being performed: the plan editing
// state plus per-set completion, a stopwatch and a rest countdown.
type Session struct {
	Plan

	stopwatch *timer.Stopwatch
	rest      *timer.Countdown
	startedAt time.Time
	notes     string
	now       func() time.Time
}

// NewSession returns an empty session. opts apply to both timers.
func NewSession(opts ...timer.Option) *Session {
	return &Session{
		Plan:      Plan{exercises: []ExerciseEntry{}},
		stopwatch: timer.NewStopwatch(opts...),
		rest:      timer.NewCountdown(opts...),
		now:       time.Now,
	}
}

// Begin marks the start of the workout and starts the stopwatch.
func (s *Session) Begin() {
	if s.startedAt.IsZero() {
		s.startedAt = s.now()
	}
	s.stopwatch.Start()
}

// StartedAt returns when Begin was first called, or the zero time.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Stopwatch returns the session's elapsed-time clock.
func (s *Session) Stopwatch() *timer.Stopwatch { return s.stopwatch }

// RestTimer returns the session's rest countdown.
func (s *Session) RestTimer() *timer.Countdown { return s.rest }

// Notes returns the free-text notes recorded with the session.
func (s *Session) Notes() string { return s.notes }

// SetNotes replaces the session notes.
func (s *Session) SetNotes(notes string) { s.notes = notes }

// ToggleSetCompletion flips the completed flag of set j of exercise i.
func (s *Session) ToggleSetCompletion(i, j int) error {
	if err := s.checkSet(i, j); err != nil {
		return err
	}
	set := &s.exercises[i].Sets[j]
	set.IsCompleted = !set.IsCompleted
	return nil
}

// AllSetsCompleted reports whether every set of every exercise is completed.
func (s *Session) AllSetsCompleted() bool {
	for _, e := range s.exercises {
		for _, set := range e.Sets {
			if !set.IsCompleted {
				return false
			}
		}
	}
	return true
}

// CompletedCount returns the completed and total number of sets.
func (s *Session) CompletedCount() (done, total int) {
	for _, e := range s.exercises {
		for _, set := range e.Sets {
			total++
			if set.IsCompleted {
				done++
			}
		}
	}
	return done, total
}

// NeedsDiscardConfirmation reports whether leaving the session would lose
// unsaved state.
func (s *Session) NeedsDiscardConfirmation() bool {
	return s.IsDirty()
}

// Discard stops both timers and clears the session without saving.
func (s *Session) Discard() {
	s.stopTimers()
	s.reset()
}

// Save records the finished session. Every set must be completed. In one
// transaction the source plan is replaced with the current exercises (or a
// new plan is created) and the performance is added to history. On success
// the timers are stopped and the session cleared; on any error nothing is
// written and the session is left as it was.
func (s *Session) Save(ctx context.Context, store SessionStore, userID int64) (db.SessionSaveResult, error) {
	if !s.AllSetsCompleted() {
		return db.SessionSaveResult{}, ErrIncompleteSession
	}
	plan, err := s.input(userID)
	if err != nil {
		return db.SessionSaveResult{}, err
	}
	performed, err := FlattenSession(s.exercises)
	if err != nil {
		return db.SessionSaveResult{}, err
	}

	record := db.SessionInput{
		UserID:      userID,
		Date:        s.startedAt,
		DurationSec: sql.NullInt64{Int64: int64(s.stopwatch.Elapsed()), Valid: true},
		Exercises:   performed,
	}
	if record.Date.IsZero() {
		record.Date = s.now()
	}
	if notes := strings.TrimSpace(s.notes); notes != "" {
		record.Notes = sql.NullString{String: notes, Valid: true}
	}

	res, err := store.SaveCompletedSession(ctx, s.id, plan, record)
	if err != nil {
		return db.SessionSaveResult{}, fmt.Errorf("saving workout session: %w", err)
	}

	s.stopTimers()
	s.reset()
	return res, nil
}

func (s *Session) stopTimers() {
	s.stopwatch.Reset()
	s.rest.Reset()
}

func (s *Session) reset() {
	s.Clear()
	s.startedAt = time.Time{}
	s.notes = ""
}
