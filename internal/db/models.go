package db

import (
	"database/sql"
	"time"
)

// LocalUserID is the placeholder owner seeded by the migrations.
const LocalUserID int64 = 1

// SetType tags a set as something other than a regular working set.
type SetType string

const (
	SetWarmup  SetType = "warmup"
	SetDropset SetType = "dropset"
	SetFailure SetType = "failure"
)

// Exercise is immutable reference data from the exercise library.
type Exercise struct {
	ID             int64  `db:"exercise_id"`
	Name           string `db:"name"`
	BodyPart       string `db:"body_part"`
	Equipment      string `db:"equipment"`
	ProfilePicture string `db:"profile_picture"`
	FormPicture    string `db:"form_picture"`
	Instruction    string `db:"instruction"`
}

// WorkoutPlan is a named, reusable template of exercises and sets.
type WorkoutPlan struct {
	ID        int64     `db:"workout_plan_id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"plan_name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// WorkoutPlanSummary is a plan together with its exercise count, for listings.
type WorkoutPlanSummary struct {
	WorkoutPlan
	ExerciseCount int `db:"exercise_count"`
}

// FlatPlanRow is one row of the plan details join: one per
// (plan, exercise entry, set). Set columns are NULL for an exercise
// entry that has no sets.
type FlatPlanRow struct {
	WorkoutPlanID int64           `db:"workout_plan_id"`
	PlanName      string          `db:"plan_name"`
	ExerciseID    int64           `db:"exercise_id"`
	ExerciseName  string          `db:"exercise_name"`
	BodyPart      string          `db:"body_part"`
	Equipment     string          `db:"equipment"`
	SetNumber     sql.NullInt64   `db:"set_number"`
	PlannedWeight sql.NullFloat64 `db:"planned_weight"`
	PlannedReps   sql.NullInt64   `db:"planned_reps"`
	DisplayOrder  int             `db:"display_order"`
}

// PlanSetInput is a set to be written under a plan exercise.
type PlanSetInput struct {
	SetNumber int
	Weight    sql.NullFloat64
	Reps      sql.NullInt64
	Type      sql.NullString
}

// PlanExerciseInput is an exercise entry to be written under a plan.
type PlanExerciseInput struct {
	ExerciseID   int64
	DisplayOrder int
	Sets         []PlanSetInput
}

// PlanInput is the full hierarchy of a plan as it is written on save.
type PlanInput struct {
	UserID    int64
	Name      string
	Exercises []PlanExerciseInput
}

// SessionSetInput is a performed set to be recorded in history.
type SessionSetInput struct {
	SetNumber     int
	WeightUsed    float64
	RepsCompleted int
	Type          sql.NullString
}

// SessionExerciseInput is a performed exercise entry to be recorded in history.
type SessionExerciseInput struct {
	ExerciseID   int64
	DisplayOrder int
	Sets         []SessionSetInput
}

// SessionInput is one performance of a workout as it is recorded.
type SessionInput struct {
	UserID      int64
	Date        time.Time
	Notes       sql.NullString
	DurationSec sql.NullInt64
	Exercises   []SessionExerciseInput
}

// WorkoutSessionSummary is a recorded session with its plan name and totals.
type WorkoutSessionSummary struct {
	ID            int64          `db:"workout_session_id"`
	UUID          string         `db:"session_uuid"`
	UserID        int64          `db:"user_id"`
	PlanID        sql.NullInt64  `db:"workout_plan_id"`
	PlanName      sql.NullString `db:"plan_name"`
	Date          time.Time      `db:"date"`
	Notes         sql.NullString `db:"notes"`
	DurationSec   sql.NullInt64  `db:"duration"`
	ExerciseCount int            `db:"exercise_count"`
	SetCount      int            `db:"set_count"`
}

// FlatSessionRow is one row of the session details join.
type FlatSessionRow struct {
	WorkoutSessionID int64           `db:"workout_session_id"`
	ExerciseID       int64           `db:"exercise_id"`
	ExerciseName     string          `db:"exercise_name"`
	DisplayOrder     int             `db:"display_order"`
	SetNumber        sql.NullInt64   `db:"set_number"`
	WeightUsed       sql.NullFloat64 `db:"weight_used"`
	RepsCompleted    sql.NullInt64   `db:"reps_completed"`
	Type             sql.NullString  `db:"type"`
}

// SessionSaveResult identifies the rows written by SaveCompletedSession.
type SessionSaveResult struct {
	PlanID      int64
	SessionID   int64
	SessionUUID string
}
