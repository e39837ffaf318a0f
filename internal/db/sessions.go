package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SaveCompletedSession persists a finished workout in one transaction:
// the plan is updated with a full child replace (planID > 0) or inserted
// (planID == 0), and the performance is recorded as a WorkoutSession linked
// to that plan.
func (d *DB) SaveCompletedSession(ctx context.Context, planID int64, plan PlanInput, session SessionInput) (SessionSaveResult, error) {
	var result SessionSaveResult
	err := d.WithTx(ctx, func(tx *sqlx.Tx) error {
		now := time.Now()
		if planID > 0 {
			if err := replacePlan(ctx, tx, planID, plan, now); err != nil {
				return err
			}
		} else {
			id, err := insertPlan(ctx, tx, plan, now)
			if err != nil {
				return err
			}
			if err := insertPlanExercises(ctx, tx, id, plan.Exercises); err != nil {
				return err
			}
			planID = id
		}

		sessionID, sessionUUID, err := insertSession(ctx, tx, planID, session)
		if err != nil {
			return err
		}
		result = SessionSaveResult{PlanID: planID, SessionID: sessionID, SessionUUID: sessionUUID}
		return nil
	})
	if err != nil {
		return SessionSaveResult{}, err
	}
	return result, nil
}

// RecordWorkoutSession records a performance without touching any plan.
// planID of 0 records an ad hoc session.
func (d *DB) RecordWorkoutSession(ctx context.Context, planID int64, session SessionInput) (SessionSaveResult, error) {
	var result SessionSaveResult
	err := d.WithTx(ctx, func(tx *sqlx.Tx) error {
		sessionID, sessionUUID, err := insertSession(ctx, tx, planID, session)
		if err != nil {
			return err
		}
		result = SessionSaveResult{PlanID: planID, SessionID: sessionID, SessionUUID: sessionUUID}
		return nil
	})
	if err != nil {
		return SessionSaveResult{}, err
	}
	return result, nil
}

// ListWorkoutSessions returns a user's recorded sessions, newest first.
// limit <= 0 returns all of them.
func (d *DB) ListWorkoutSessions(ctx context.Context, userID int64, limit int) ([]WorkoutSessionSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	return Fetch[WorkoutSessionSummary](ctx, d, `
		SELECT ws.workout_session_id, ws.session_uuid, ws.user_id, ws.workout_plan_id,
			wp.plan_name, ws.date, ws.notes, ws.duration,
			(SELECT COUNT(*) FROM WorkoutSessionExercises wse
				WHERE wse.workout_session_id = ws.workout_session_id) AS exercise_count,
			(SELECT COUNT(*) FROM WorkoutSessionSets wss
				JOIN WorkoutSessionExercises wse ON wss.workout_session_exercise_id = wse.workout_session_exercise_id
				WHERE wse.workout_session_id = ws.workout_session_id) AS set_count
		FROM WorkoutSessions ws
		LEFT JOIN WorkoutPlans wp ON ws.workout_plan_id = wp.workout_plan_id
		WHERE ws.user_id = ?
		ORDER BY ws.date DESC, ws.workout_session_id DESC
		LIMIT ?`, userID, limit)
}

// GetWorkoutSessionDetails returns the flattened performed sets of a session,
// ordered by exercise entry and set number.
func (d *DB) GetWorkoutSessionDetails(ctx context.Context, sessionID int64) ([]FlatSessionRow, error) {
	return Fetch[FlatSessionRow](ctx, d, `
		SELECT wse.workout_session_id, e.exercise_id, e.name AS exercise_name, wse.display_order,
			wss.set_number, wss.weight_used, wss.reps_completed, wss.type
		FROM WorkoutSessionExercises wse
		JOIN Exercises e ON wse.exercise_id = e.exercise_id
		LEFT JOIN WorkoutSessionSets wss ON wse.workout_session_exercise_id = wss.workout_session_exercise_id
		WHERE wse.workout_session_id = ?
		ORDER BY wse.display_order, wss.set_number`, sessionID)
}

func insertSession(ctx context.Context, q Querier, planID int64, session SessionInput) (int64, string, error) {
	var plan any
	if planID > 0 {
		plan = planID
	}
	date := session.Date
	if date.IsZero() {
		date = time.Now()
	}
	sessionUUID := uuid.NewString()

	res, err := Execute(ctx, q, `
		INSERT INTO WorkoutSessions (session_uuid, user_id, workout_plan_id, date, notes, duration)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sessionUUID, session.UserID, plan, date, session.Notes, session.DurationSec,
	)
	if err != nil {
		return 0, "", fmt.Errorf("inserting workout session: %w", err)
	}
	sessionID, err := insertID(res, "WorkoutSessions")
	if err != nil {
		return 0, "", err
	}

	for _, ex := range session.Exercises {
		res, err := Execute(ctx, q, `
			INSERT INTO WorkoutSessionExercises (workout_session_id, exercise_id, display_order)
			VALUES (?, ?, ?)`,
			sessionID, ex.ExerciseID, ex.DisplayOrder,
		)
		if err != nil {
			return 0, "", fmt.Errorf("inserting workout session exercise %d: %w", ex.DisplayOrder, err)
		}
		sessionExerciseID, err := insertID(res, "WorkoutSessionExercises")
		if err != nil {
			return 0, "", err
		}

		for _, set := range ex.Sets {
			if _, err := Execute(ctx, q, `
				INSERT INTO WorkoutSessionSets (workout_session_exercise_id, set_number, weight_used, reps_completed, type)
				VALUES (?, ?, ?, ?, ?)`,
				sessionExerciseID, set.SetNumber, set.WeightUsed, set.RepsCompleted, set.Type,
			); err != nil {
				return 0, "", fmt.Errorf("inserting workout session set %d of exercise %d: %w",
					set.SetNumber, ex.DisplayOrder, err)
			}
		}
	}

	return sessionID, sessionUUID, nil
}
