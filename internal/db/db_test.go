package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

// newTestDB creates a new in-memory database for testing.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("failed to close test database: %v", err)
		}
	})
	return db
}

// seededDB returns a test database with the sample exercise library.
func seededDB(t *testing.T) *DB {
	t.Helper()
	db := newTestDB(t)
	if _, err := db.SeedExercises(context.Background()); err != nil {
		t.Fatalf("SeedExercises() returned error: %v", err)
	}
	return db
}

func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()
	var n int
	if err := db.conn.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("counting %s: %v", table, err)
	}
	return n
}

// =============================================================================
// Database Connection Tests
// =============================================================================

func TestNew(t *testing.T) {
	db, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			t.Errorf("Close() returned error: %v", err)
		}
	}()

	if db.conn == nil {
		t.Error("New() returned DB with nil connection")
	}
}

func TestNew_FileCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "lift.db")

	db, err := New(path)
	if err != nil {
		t.Fatalf("New(%q) returned error: %v", path, err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}

	// Reopening runs the migrations again without error.
	db, err = New(path)
	if err != nil {
		t.Fatalf("reopening returned error: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}
}

func TestNew_SeedsLocalUser(t *testing.T) {
	db := newTestDB(t)

	var username string
	if err := db.conn.Get(&username, "SELECT username FROM Users WHERE user_id = ?", LocalUserID); err != nil {
		t.Fatalf("local user missing: %v", err)
	}
	if username != "local" {
		t.Errorf("username = %q, want %q", username, "local")
	}
}

func TestClose(t *testing.T) {
	db, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if err := db.Close(); err != nil {
		t.Errorf("Close() returned error: %v", err)
	}

	// Double close should not panic or error
	if err := db.Close(); err != nil {
		t.Errorf("Double Close() returned error: %v", err)
	}
}

func TestUnavailable(t *testing.T) {
	ctx := context.Background()

	closed, err := New(MemoryPath)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if err := closed.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}

	var nilDB *DB

	for name, db := range map[string]*DB{"closed": closed, "nil": nilDB} {
		t.Run(name, func(t *testing.T) {
			if _, err := db.ListExercises(ctx, ""); !errors.Is(err, ErrUnavailable) {
				t.Errorf("ListExercises() error = %v, want ErrUnavailable", err)
			}
			if _, err := db.GetWorkoutPlanDetails(ctx, 1); !errors.Is(err, ErrUnavailable) {
				t.Errorf("GetWorkoutPlanDetails() error = %v, want ErrUnavailable", err)
			}
			if _, err := db.Execute(ctx, "DELETE FROM Exercises"); !errors.Is(err, ErrUnavailable) {
				t.Errorf("Execute() error = %v, want ErrUnavailable", err)
			}
			if _, err := db.CreateWorkoutPlan(ctx, PlanInput{UserID: LocalUserID, Name: "x"}); !errors.Is(err, ErrUnavailable) {
				t.Errorf("CreateWorkoutPlan() error = %v, want ErrUnavailable", err)
			}
		})
	}
}

// =============================================================================
// Query Layer Tests
// =============================================================================

func TestFetchAll_NoRowsReturnsEmptySlice(t *testing.T) {
	db := newTestDB(t)

	rows, err := Fetch[Exercise](context.Background(), db, "SELECT "+exerciseColumns+" FROM Exercises")
	if err != nil {
		t.Fatalf("Fetch() returned error: %v", err)
	}
	if rows == nil {
		t.Error("Fetch() returned nil slice, want empty non-nil slice")
	}
	if len(rows) != 0 {
		t.Errorf("Fetch() returned %d rows, want 0", len(rows))
	}
}

func TestFetchAll_QueryErrorPropagates(t *testing.T) {
	db := newTestDB(t)

	if _, err := Fetch[Exercise](context.Background(), db, "SELECT * FROM NoSuchTable"); err == nil {
		t.Error("Fetch() on missing table returned nil error")
	}
}

func TestExecute_InsertID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	res, err := db.Execute(ctx, `INSERT INTO Exercises (name, body_part, equipment) VALUES (?, ?, ?)`,
		"Row", "Back", "Cable")
	if err != nil {
		t.Fatalf("Execute(INSERT) returned error: %v", err)
	}
	if res.InsertID == nil || *res.InsertID <= 0 {
		t.Errorf("Execute(INSERT) InsertID = %v, want positive id", res.InsertID)
	}
	if res.RowsAffected == nil || *res.RowsAffected != 1 {
		t.Errorf("Execute(INSERT) RowsAffected = %v, want 1", res.RowsAffected)
	}

	res, err = db.Execute(ctx, `UPDATE Exercises SET equipment = ? WHERE name = ?`, "Machine", "Row")
	if err != nil {
		t.Fatalf("Execute(UPDATE) returned error: %v", err)
	}
	if res.InsertID != nil {
		t.Errorf("Execute(UPDATE) InsertID = %d, want nil", *res.InsertID)
	}
	if res.RowsAffected == nil || *res.RowsAffected != 1 {
		t.Errorf("Execute(UPDATE) RowsAffected = %v, want 1", res.RowsAffected)
	}
}

// =============================================================================
// Exercise Tests
// =============================================================================

func TestSeedExercises(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	n, err := db.SeedExercises(ctx)
	if err != nil {
		t.Fatalf("SeedExercises() returned error: %v", err)
	}
	if n != len(SampleExercises) {
		t.Errorf("SeedExercises() inserted %d, want %d", n, len(SampleExercises))
	}

	// Seeding a non-empty library is a no-op.
	n, err = db.SeedExercises(ctx)
	if err != nil {
		t.Fatalf("second SeedExercises() returned error: %v", err)
	}
	if n != 0 {
		t.Errorf("second SeedExercises() inserted %d, want 0", n)
	}
	if got := countRows(t, db, "Exercises"); got != len(SampleExercises) {
		t.Errorf("Exercises has %d rows, want %d", got, len(SampleExercises))
	}
}

func TestListExercises_FilterByBodyPart(t *testing.T) {
	db := seededDB(t)

	legs, err := db.ListExercises(context.Background(), "legs")
	if err != nil {
		t.Fatalf("ListExercises() returned error: %v", err)
	}
	if len(legs) != 3 {
		t.Fatalf("ListExercises(legs) returned %d exercises, want 3", len(legs))
	}
	for _, e := range legs {
		if e.BodyPart != "Legs" {
			t.Errorf("ListExercises(legs) returned %q with body part %q", e.Name, e.BodyPart)
		}
	}
	if legs[0].Name != "Calf Raises" {
		t.Errorf("first exercise = %q, want sorted by name", legs[0].Name)
	}
}

func TestGetExercise_NotFound(t *testing.T) {
	db := seededDB(t)

	_, err := db.GetExercise(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetExercise() error = %v, want ErrNotFound", err)
	}
}

func TestCreateExercise(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	e := &Exercise{Name: "Face Pull", BodyPart: "Shoulders", Equipment: "Cable"}
	if err := db.CreateExercise(ctx, e); err != nil {
		t.Fatalf("CreateExercise() returned error: %v", err)
	}
	if e.ID == 0 {
		t.Fatal("CreateExercise() did not set ID")
	}

	got, err := db.GetExercise(ctx, e.ID)
	if err != nil {
		t.Fatalf("GetExercise() returned error: %v", err)
	}
	if got.Name != "Face Pull" {
		t.Errorf("Name = %q, want %q", got.Name, "Face Pull")
	}

	if err := db.CreateExercise(ctx, &Exercise{Name: "  "}); err == nil {
		t.Error("CreateExercise() with blank name returned nil error")
	}
}

// =============================================================================
// Workout Plan Tests
// =============================================================================

func legDayInput() PlanInput {
	return PlanInput{
		UserID: LocalUserID,
		Name:   "Leg Day",
		Exercises: []PlanExerciseInput{
			{ExerciseID: 2, DisplayOrder: 1, Sets: []PlanSetInput{
				{SetNumber: 1, Reps: sql.NullInt64{Int64: 1, Valid: true}},
				{SetNumber: 2},
			}},
			{ExerciseID: 6, DisplayOrder: 2},
		},
	}
}

func TestCreateWorkoutPlan(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	planID, err := db.CreateWorkoutPlan(ctx, legDayInput())
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}
	if planID == 0 {
		t.Fatal("CreateWorkoutPlan() returned zero id")
	}

	if got := countRows(t, db, "WorkoutPlans"); got != 1 {
		t.Errorf("WorkoutPlans rows = %d, want 1", got)
	}
	if got := countRows(t, db, "WorkoutPlanExercises"); got != 2 {
		t.Errorf("WorkoutPlanExercises rows = %d, want 2", got)
	}
	if got := countRows(t, db, "WorkoutPlanSets"); got != 2 {
		t.Errorf("WorkoutPlanSets rows = %d, want 2", got)
	}

	plan, err := db.GetWorkoutPlan(ctx, planID)
	if err != nil {
		t.Fatalf("GetWorkoutPlan() returned error: %v", err)
	}
	if plan.Name != "Leg Day" || plan.UserID != LocalUserID {
		t.Errorf("GetWorkoutPlan() = %+v", plan)
	}
	if plan.CreatedAt.IsZero() || plan.UpdatedAt.IsZero() {
		t.Error("GetWorkoutPlan() returned zero timestamps")
	}
}

func TestGetWorkoutPlanDetails_LeftJoinKeepsSetlessExercise(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	planID, err := db.CreateWorkoutPlan(ctx, legDayInput())
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}

	rows, err := db.GetWorkoutPlanDetails(ctx, planID)
	if err != nil {
		t.Fatalf("GetWorkoutPlanDetails() returned error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("GetWorkoutPlanDetails() returned %d rows, want 3", len(rows))
	}

	var setless, withReps, empty int
	for _, r := range rows {
		if r.PlanName != "Leg Day" || r.WorkoutPlanID != planID {
			t.Errorf("row has plan %d/%q", r.WorkoutPlanID, r.PlanName)
		}
		switch {
		case r.ExerciseID == 6:
			setless++
			if r.SetNumber.Valid || r.PlannedReps.Valid || r.PlannedWeight.Valid {
				t.Errorf("setless exercise row has set columns: %+v", r)
			}
			if r.DisplayOrder != 2 || r.ExerciseName != "Lunges" || r.BodyPart != "Legs" {
				t.Errorf("setless exercise row = %+v", r)
			}
		case r.SetNumber.Int64 == 1:
			withReps++
			if r.PlannedReps.Int64 != 1 || r.PlannedWeight.Valid {
				t.Errorf("set 1 = reps %v weight %v", r.PlannedReps, r.PlannedWeight)
			}
		case r.SetNumber.Int64 == 2:
			empty++
			if r.PlannedReps.Valid || r.PlannedWeight.Valid {
				t.Errorf("set 2 should have NULL reps/weight: %+v", r)
			}
		}
	}
	if setless != 1 || withReps != 1 || empty != 1 {
		t.Errorf("row mix setless=%d withReps=%d empty=%d", setless, withReps, empty)
	}
}

func TestGetWorkoutPlanDetails_UnknownPlan(t *testing.T) {
	db := seededDB(t)

	rows, err := db.GetWorkoutPlanDetails(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetWorkoutPlanDetails() returned error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("GetWorkoutPlanDetails() returned %d rows, want 0", len(rows))
	}
}

func TestCreateWorkoutPlan_AtomicOnFailure(t *testing.T) {
	db := seededDB(t)

	input := legDayInput()
	// Second entry references an exercise that does not exist; the foreign
	// key rejects it after the plan and first entry were already written.
	input.Exercises[1].ExerciseID = 9999

	if _, err := db.CreateWorkoutPlan(context.Background(), input); err == nil {
		t.Fatal("CreateWorkoutPlan() with unknown exercise returned nil error")
	}

	for _, table := range []string{"WorkoutPlans", "WorkoutPlanExercises", "WorkoutPlanSets"} {
		if got := countRows(t, db, table); got != 0 {
			t.Errorf("%s has %d rows after failed save, want 0", table, got)
		}
	}
}

func TestReplaceWorkoutPlan(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	planID, err := db.CreateWorkoutPlan(ctx, legDayInput())
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}

	var oldChildIDs []int64
	if err := db.conn.Select(&oldChildIDs, `SELECT workout_plan_exercise_id FROM WorkoutPlanExercises`); err != nil {
		t.Fatalf("selecting child ids: %v", err)
	}

	replacement := PlanInput{
		UserID: LocalUserID,
		Name:   "Leg Day v2",
		Exercises: []PlanExerciseInput{
			{ExerciseID: 9, DisplayOrder: 1, Sets: []PlanSetInput{
				{SetNumber: 1, Weight: sql.NullFloat64{Float64: 20, Valid: true}, Reps: sql.NullInt64{Int64: 15, Valid: true}},
			}},
		},
	}
	if err := db.ReplaceWorkoutPlan(ctx, planID, replacement); err != nil {
		t.Fatalf("ReplaceWorkoutPlan() returned error: %v", err)
	}

	plan, err := db.GetWorkoutPlan(ctx, planID)
	if err != nil {
		t.Fatalf("GetWorkoutPlan() returned error: %v", err)
	}
	if plan.Name != "Leg Day v2" {
		t.Errorf("plan name = %q, want %q", plan.Name, "Leg Day v2")
	}
	if got := countRows(t, db, "WorkoutPlanExercises"); got != 1 {
		t.Errorf("WorkoutPlanExercises rows = %d, want 1", got)
	}
	if got := countRows(t, db, "WorkoutPlanSets"); got != 1 {
		t.Errorf("WorkoutPlanSets rows = %d, want 1", got)
	}

	var newChildIDs []int64
	if err := db.conn.Select(&newChildIDs, `SELECT workout_plan_exercise_id FROM WorkoutPlanExercises`); err != nil {
		t.Fatalf("selecting child ids: %v", err)
	}
	for _, old := range oldChildIDs {
		if old == newChildIDs[0] {
			t.Errorf("child id %d survived a full replace", old)
		}
	}
}

func TestReplaceWorkoutPlan_NotFound(t *testing.T) {
	db := seededDB(t)

	err := db.ReplaceWorkoutPlan(context.Background(), 404, legDayInput())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ReplaceWorkoutPlan() error = %v, want ErrNotFound", err)
	}
	if got := countRows(t, db, "WorkoutPlanExercises"); got != 0 {
		t.Errorf("WorkoutPlanExercises rows = %d after failed replace, want 0", got)
	}
}

func TestReplaceWorkoutPlan_RollsBackDeletes(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	planID, err := db.CreateWorkoutPlan(ctx, legDayInput())
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}

	bad := legDayInput()
	bad.Exercises[0].ExerciseID = 9999
	if err := db.ReplaceWorkoutPlan(ctx, planID, bad); err == nil {
		t.Fatal("ReplaceWorkoutPlan() with unknown exercise returned nil error")
	}

	if got := countRows(t, db, "WorkoutPlanExercises"); got != 2 {
		t.Errorf("WorkoutPlanExercises rows = %d after rolled back replace, want 2", got)
	}
	if got := countRows(t, db, "WorkoutPlanSets"); got != 2 {
		t.Errorf("WorkoutPlanSets rows = %d after rolled back replace, want 2", got)
	}
}

func TestListWorkoutPlans(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	first, err := db.CreateWorkoutPlan(ctx, legDayInput())
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := db.CreateWorkoutPlan(ctx, PlanInput{UserID: LocalUserID, Name: "Empty"})
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}

	plans, err := db.ListWorkoutPlans(ctx, LocalUserID)
	if err != nil {
		t.Fatalf("ListWorkoutPlans() returned error: %v", err)
	}
	if len(plans) != 2 {
		t.Fatalf("ListWorkoutPlans() returned %d plans, want 2", len(plans))
	}
	if plans[0].ID != second || plans[1].ID != first {
		t.Errorf("ListWorkoutPlans() order = [%d %d], want [%d %d]", plans[0].ID, plans[1].ID, second, first)
	}
	if plans[1].ExerciseCount != 2 || plans[0].ExerciseCount != 0 {
		t.Errorf("exercise counts = [%d %d], want [0 2]", plans[0].ExerciseCount, plans[1].ExerciseCount)
	}
}

func TestDeleteWorkoutPlan_KeepsHistory(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	res, err := db.SaveCompletedSession(ctx, 0, legDayInput(), SessionInput{
		UserID: LocalUserID,
		Exercises: []SessionExerciseInput{
			{ExerciseID: 2, DisplayOrder: 1, Sets: []SessionSetInput{{SetNumber: 1, RepsCompleted: 5}}},
		},
	})
	if err != nil {
		t.Fatalf("SaveCompletedSession() returned error: %v", err)
	}

	if err := db.DeleteWorkoutPlan(ctx, res.PlanID); err != nil {
		t.Fatalf("DeleteWorkoutPlan() returned error: %v", err)
	}
	for _, table := range []string{"WorkoutPlans", "WorkoutPlanExercises", "WorkoutPlanSets"} {
		if got := countRows(t, db, table); got != 0 {
			t.Errorf("%s has %d rows after delete, want 0", table, got)
		}
	}

	sessions, err := db.ListWorkoutSessions(ctx, LocalUserID, 0)
	if err != nil {
		t.Fatalf("ListWorkoutSessions() returned error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("ListWorkoutSessions() returned %d sessions, want 1", len(sessions))
	}
	if sessions[0].PlanID.Valid {
		t.Errorf("session plan id = %d, want NULL after plan delete", sessions[0].PlanID.Int64)
	}

	if err := db.DeleteWorkoutPlan(ctx, res.PlanID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second DeleteWorkoutPlan() error = %v, want ErrNotFound", err)
	}
}

// =============================================================================
// Workout Session Tests
// =============================================================================

func TestSaveCompletedSession_ExistingPlan(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	planID, err := db.CreateWorkoutPlan(ctx, legDayInput())
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}

	updated := legDayInput()
	updated.Name = "Heavy Legs"
	updated.Exercises = updated.Exercises[:1]

	res, err := db.SaveCompletedSession(ctx, planID, updated, SessionInput{
		UserID:      LocalUserID,
		DurationSec: sql.NullInt64{Int64: 1800, Valid: true},
		Exercises: []SessionExerciseInput{
			{ExerciseID: 2, DisplayOrder: 1, Sets: []SessionSetInput{
				{SetNumber: 1, WeightUsed: 100, RepsCompleted: 5},
				{SetNumber: 2, WeightUsed: 0, RepsCompleted: 0},
			}},
		},
	})
	if err != nil {
		t.Fatalf("SaveCompletedSession() returned error: %v", err)
	}
	if res.PlanID != planID {
		t.Errorf("PlanID = %d, want %d", res.PlanID, planID)
	}
	if res.SessionID == 0 || res.SessionUUID == "" {
		t.Errorf("SaveCompletedSession() result = %+v", res)
	}

	if got := countRows(t, db, "WorkoutPlans"); got != 1 {
		t.Errorf("WorkoutPlans rows = %d, want 1", got)
	}
	if got := countRows(t, db, "WorkoutPlanExercises"); got != 1 {
		t.Errorf("WorkoutPlanExercises rows = %d, want 1", got)
	}

	sessions, err := db.ListWorkoutSessions(ctx, LocalUserID, 10)
	if err != nil {
		t.Fatalf("ListWorkoutSessions() returned error: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("ListWorkoutSessions() returned %d sessions, want 1", len(sessions))
	}
	s := sessions[0]
	if s.PlanName.String != "Heavy Legs" || s.ExerciseCount != 1 || s.SetCount != 2 || s.DurationSec.Int64 != 1800 {
		t.Errorf("session summary = %+v", s)
	}
	if s.UUID != res.SessionUUID {
		t.Errorf("UUID = %q, want %q", s.UUID, res.SessionUUID)
	}

	details, err := db.GetWorkoutSessionDetails(ctx, res.SessionID)
	if err != nil {
		t.Fatalf("GetWorkoutSessionDetails() returned error: %v", err)
	}
	if len(details) != 2 {
		t.Fatalf("GetWorkoutSessionDetails() returned %d rows, want 2", len(details))
	}
	if details[0].SetNumber.Int64 != 1 || details[0].WeightUsed.Float64 != 100 || details[0].RepsCompleted.Int64 != 5 {
		t.Errorf("first performed set = %+v", details[0])
	}
}

func TestSaveCompletedSession_FailureWritesNothing(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	planID, err := db.CreateWorkoutPlan(ctx, legDayInput())
	if err != nil {
		t.Fatalf("CreateWorkoutPlan() returned error: %v", err)
	}

	_, err = db.SaveCompletedSession(ctx, planID, legDayInput(), SessionInput{
		UserID: LocalUserID,
		Exercises: []SessionExerciseInput{
			{ExerciseID: 9999, DisplayOrder: 1},
		},
	})
	if err == nil {
		t.Fatal("SaveCompletedSession() with unknown exercise returned nil error")
	}

	if got := countRows(t, db, "WorkoutSessions"); got != 0 {
		t.Errorf("WorkoutSessions rows = %d, want 0", got)
	}
	if got := countRows(t, db, "WorkoutPlanSets"); got != 2 {
		t.Errorf("WorkoutPlanSets rows = %d, want the original 2", got)
	}
}

func TestRecordWorkoutSession_AdHoc(t *testing.T) {
	db := seededDB(t)
	ctx := context.Background()

	res, err := db.RecordWorkoutSession(ctx, 0, SessionInput{
		UserID: LocalUserID,
		Notes:  sql.NullString{String: "hotel gym", Valid: true},
		Exercises: []SessionExerciseInput{
			{ExerciseID: 1, DisplayOrder: 1, Sets: []SessionSetInput{{SetNumber: 1, RepsCompleted: 20}}},
		},
	})
	if err != nil {
		t.Fatalf("RecordWorkoutSession() returned error: %v", err)
	}
	if res.PlanID != 0 {
		t.Errorf("PlanID = %d, want 0", res.PlanID)
	}

	sessions, err := db.ListWorkoutSessions(ctx, LocalUserID, 0)
	if err != nil {
		t.Fatalf("ListWorkoutSessions() returned error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].PlanID.Valid || sessions[0].Notes.String != "hotel gym" {
		t.Errorf("ListWorkoutSessions() = %+v", sessions)
	}
	if got := countRows(t, db, "WorkoutPlans"); got != 0 {
		t.Errorf("WorkoutPlans rows = %d, want 0", got)
	}
}
