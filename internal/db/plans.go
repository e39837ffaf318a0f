package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// planDetailsQuery flattens a plan into one row per (exercise entry, set).
// LEFT JOIN keeps exercise entries that have no sets. Row order is not
// guaranteed; callers re-derive it from display_order and set_number.
const planDetailsQuery = `
	SELECT
		wp.workout_plan_id,
		wp.plan_name,
		e.exercise_id,
		e.name AS exercise_name,
		e.body_part,
		e.equipment,
		wps.set_number,
		wps.weight AS planned_weight,
		wps.reps AS planned_reps,
		wpe.display_order
	FROM WorkoutPlans wp
	JOIN WorkoutPlanExercises wpe ON wp.workout_plan_id = wpe.workout_plan_id
	JOIN Exercises e ON wpe.exercise_id = e.exercise_id
	LEFT JOIN WorkoutPlanSets wps ON wpe.workout_plan_exercise_id = wps.workout_plan_exercise_id
	WHERE wp.workout_plan_id = ?`

// ListWorkoutPlans returns a user's plans, most recently updated first.
func (d *DB) ListWorkoutPlans(ctx context.Context, userID int64) ([]WorkoutPlanSummary, error) {
	return Fetch[WorkoutPlanSummary](ctx, d, `
		SELECT wp.workout_plan_id, wp.user_id, wp.plan_name, wp.created_at, wp.updated_at,
			(SELECT COUNT(*) FROM WorkoutPlanExercises wpe WHERE wpe.workout_plan_id = wp.workout_plan_id) AS exercise_count
		FROM WorkoutPlans wp
		WHERE wp.user_id = ?
		ORDER BY wp.updated_at DESC, wp.workout_plan_id DESC`, userID)
}

// GetWorkoutPlan retrieves a plan row by ID.
func (d *DB) GetWorkoutPlan(ctx context.Context, id int64) (*WorkoutPlan, error) {
	plans, err := Fetch[WorkoutPlan](ctx, d, `
		SELECT workout_plan_id, user_id, plan_name, created_at, updated_at
		FROM WorkoutPlans WHERE workout_plan_id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(plans) == 0 {
		return nil, ErrNotFound
	}
	return &plans[0], nil
}

// GetWorkoutPlanDetails returns the flattened plan. A plan with no exercise
// entries, or an unknown plan id, yields an empty slice.
func (d *DB) GetWorkoutPlanDetails(ctx context.Context, planID int64) ([]FlatPlanRow, error) {
	rows, err := Fetch[FlatPlanRow](ctx, d, planDetailsQuery, planID)
	if err != nil {
		return nil, fmt.Errorf("fetching workout plan details: %w", err)
	}
	return rows, nil
}

// CreateWorkoutPlan writes a new plan with all of its exercise entries and
// sets in one transaction and returns the new plan id.
func (d *DB) CreateWorkoutPlan(ctx context.Context, plan PlanInput) (int64, error) {
	var planID int64
	err := d.WithTx(ctx, func(tx *sqlx.Tx) error {
		id, err := insertPlan(ctx, tx, plan, time.Now())
		if err != nil {
			return err
		}
		planID = id
		return insertPlanExercises(ctx, tx, planID, plan.Exercises)
	})
	if err != nil {
		return 0, err
	}
	return planID, nil
}

// ReplaceWorkoutPlan renames an existing plan and replaces its whole
// exercise/set hierarchy: every child row is deleted and the given
// hierarchy reinserted, so child ids change on every call.
func (d *DB) ReplaceWorkoutPlan(ctx context.Context, planID int64, plan PlanInput) error {
	return d.WithTx(ctx, func(tx *sqlx.Tx) error {
		return replacePlan(ctx, tx, planID, plan, time.Now())
	})
}

// DeleteWorkoutPlan removes a plan and its children. Recorded sessions of
// the plan are kept with their plan reference cleared.
func (d *DB) DeleteWorkoutPlan(ctx context.Context, planID int64) error {
	res, err := d.Execute(ctx, `DELETE FROM WorkoutPlans WHERE workout_plan_id = ?`, planID)
	if err != nil {
		return fmt.Errorf("deleting workout plan: %w", err)
	}
	return affectedOne(res)
}

func insertPlan(ctx context.Context, q Querier, plan PlanInput, now time.Time) (int64, error) {
	if strings.TrimSpace(plan.Name) == "" {
		return 0, fmt.Errorf("inserting workout plan: plan name must be non-empty")
	}
	res, err := Execute(ctx, q, `
		INSERT INTO WorkoutPlans (user_id, plan_name, created_at, updated_at)
		VALUES (?, ?, ?, ?)`,
		plan.UserID, plan.Name, now, now,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting workout plan: %w", err)
	}
	return insertID(res, "WorkoutPlans")
}

func replacePlan(ctx context.Context, q Querier, planID int64, plan PlanInput, now time.Time) error {
	res, err := Execute(ctx, q, `
		UPDATE WorkoutPlans SET plan_name = ?, updated_at = ? WHERE workout_plan_id = ?`,
		plan.Name, now, planID,
	)
	if err != nil {
		return fmt.Errorf("updating workout plan: %w", err)
	}
	if err := affectedOne(res); err != nil {
		return err
	}

	if _, err := Execute(ctx, q, `
		DELETE FROM WorkoutPlanSets
		WHERE workout_plan_exercise_id IN (
			SELECT workout_plan_exercise_id FROM WorkoutPlanExercises WHERE workout_plan_id = ?
		)`, planID); err != nil {
		return fmt.Errorf("deleting workout plan sets: %w", err)
	}
	if _, err := Execute(ctx, q, `
		DELETE FROM WorkoutPlanExercises WHERE workout_plan_id = ?`, planID); err != nil {
		return fmt.Errorf("deleting workout plan exercises: %w", err)
	}

	return insertPlanExercises(ctx, q, planID, plan.Exercises)
}

// insertPlanExercises writes each entry and then its sets; every set insert
// depends on the id returned by its entry insert.
func insertPlanExercises(ctx context.Context, q Querier, planID int64, exercises []PlanExerciseInput) error {
	for _, ex := range exercises {
		res, err := Execute(ctx, q, `
			INSERT INTO WorkoutPlanExercises (workout_plan_id, exercise_id, display_order)
			VALUES (?, ?, ?)`,
			planID, ex.ExerciseID, ex.DisplayOrder,
		)
		if err != nil {
			return fmt.Errorf("inserting workout plan exercise %d: %w", ex.DisplayOrder, err)
		}
		planExerciseID, err := insertID(res, "WorkoutPlanExercises")
		if err != nil {
			return err
		}

		for _, set := range ex.Sets {
			if _, err := Execute(ctx, q, `
				INSERT INTO WorkoutPlanSets (workout_plan_exercise_id, set_number, weight, reps, type)
				VALUES (?, ?, ?, ?, ?)`,
				planExerciseID, set.SetNumber, set.Weight, set.Reps, set.Type,
			); err != nil {
				return fmt.Errorf("inserting workout plan set %d of exercise %d: %w",
					set.SetNumber, ex.DisplayOrder, err)
			}
		}
	}
	return nil
}
