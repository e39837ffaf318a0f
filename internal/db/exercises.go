package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/gerunddev/lift/internal/log"
)

const exerciseColumns = `exercise_id, name, body_part, equipment, profile_picture, form_picture, instruction`

// SampleExercises is the reference library seeded into an empty database.
var SampleExercises = []Exercise{
	{Name: "Push-Ups", BodyPart: "Chest", Equipment: "Bodyweight",
		Instruction: "Perform push-ups by lowering your body until your chest nearly touches the ground."},
	{Name: "Squats", BodyPart: "Legs", Equipment: "Bodyweight",
		Instruction: "Stand with feet shoulder-width apart and lower your hips back and down."},
	{Name: "Bicep Curls", BodyPart: "Arms", Equipment: "Dumbbell",
		Instruction: "Hold dumbbells and curl them toward your shoulders."},
	{Name: "Deadlifts", BodyPart: "Back", Equipment: "Barbell",
		Instruction: "Lift the barbell from the ground to hip level while keeping your back straight."},
	{Name: "Plank", BodyPart: "Core", Equipment: "Bodyweight",
		Instruction: "Hold a straight-body position with your forearms on the ground and core engaged."},
	{Name: "Lunges", BodyPart: "Legs", Equipment: "Bodyweight",
		Instruction: "Step forward with one leg and lower your hips until both knees are bent at 90 degrees."},
	{Name: "Shoulder Press", BodyPart: "Shoulders", Equipment: "Dumbbell",
		Instruction: "Press dumbbells overhead while keeping your core tight."},
	{Name: "Pull-Ups", BodyPart: "Back", Equipment: "Pull-Up Bar",
		Instruction: "Hang from the bar and pull yourself up until your chin is above the bar."},
	{Name: "Calf Raises", BodyPart: "Legs", Equipment: "Bodyweight",
		Instruction: "Stand on your toes and raise your heels as high as possible."},
	{Name: "Russian Twists", BodyPart: "Core", Equipment: "Medicine Ball",
		Instruction: "Sit on the ground, lean back slightly, and twist your torso side to side while holding a medicine ball."},
}

// SeedExercises inserts SampleExercises if the Exercises table is empty.
// It returns the number of exercises inserted.
func (d *DB) SeedExercises(ctx context.Context) (int, error) {
	inserted := 0
	err := d.WithTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM Exercises`); err != nil {
			return fmt.Errorf("counting exercises: %w", err)
		}
		if count > 0 {
			return nil
		}
		for _, e := range SampleExercises {
			if _, err := Execute(ctx, tx, `
				INSERT INTO Exercises (name, body_part, equipment, profile_picture, form_picture, instruction)
				VALUES (?, ?, ?, ?, ?, ?)`,
				e.Name, e.BodyPart, e.Equipment, e.ProfilePicture, e.FormPicture, e.Instruction,
			); err != nil {
				return fmt.Errorf("inserting exercise %q: %w", e.Name, err)
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if inserted > 0 {
		log.Info("seeded exercise library", "count", inserted)
	}
	return inserted, nil
}

// ListExercises returns the exercise library ordered by name.
// A non-empty bodyPart filters case-insensitively.
func (d *DB) ListExercises(ctx context.Context, bodyPart string) ([]Exercise, error) {
	if bodyPart = strings.TrimSpace(bodyPart); bodyPart != "" {
		return Fetch[Exercise](ctx, d, `
			SELECT `+exerciseColumns+`
			FROM Exercises WHERE body_part = ? COLLATE NOCASE ORDER BY name, exercise_id`, bodyPart)
	}
	return Fetch[Exercise](ctx, d, `
		SELECT `+exerciseColumns+`
		FROM Exercises ORDER BY name, exercise_id`)
}

// GetExercise retrieves an exercise by ID.
func (d *DB) GetExercise(ctx context.Context, id int64) (*Exercise, error) {
	exercises, err := Fetch[Exercise](ctx, d, `
		SELECT `+exerciseColumns+` FROM Exercises WHERE exercise_id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(exercises) == 0 {
		return nil, ErrNotFound
	}
	return &exercises[0], nil
}

// CreateExercise inserts a custom exercise into the library.
func (d *DB) CreateExercise(ctx context.Context, e *Exercise) error {
	if strings.TrimSpace(e.Name) == "" {
		return errors.New("exercise name must be non-empty")
	}
	res, err := d.Execute(ctx, `
		INSERT INTO Exercises (name, body_part, equipment, profile_picture, form_picture, instruction)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.Name, e.BodyPart, e.Equipment, e.ProfilePicture, e.FormPicture, e.Instruction,
	)
	if err != nil {
		return fmt.Errorf("inserting exercise: %w", err)
	}
	id, err := insertID(res, "Exercises")
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}
