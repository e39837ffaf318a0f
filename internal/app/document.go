package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gerunddev/lift/internal/log"
	"github.com/gerunddev/lift/internal/workout"
)

// PlanDocument is the portable YAML form of a plan used by export and import.
type PlanDocument struct {
	Name      string             `yaml:"name"`
	Exercises []ExerciseDocument `yaml:"exercises"`
}

// ExerciseDocument is one exercise entry of a PlanDocument.
type ExerciseDocument struct {
	ExerciseID int64         `yaml:"exercise_id"`
	Name       string        `yaml:"name,omitempty"`
	Sets       []SetDocument `yaml:"sets"`
}

// SetDocument holds a set's planned values as typed text.
type SetDocument struct {
	Reps string `yaml:"reps,omitempty"`
	Kg   string `yaml:"kg,omitempty"`
}

// ExportPlan builds the document of a stored plan.
func (a *App) ExportPlan(ctx context.Context, planID int64) (*PlanDocument, error) {
	stored, err := a.db.GetWorkoutPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan %d: %w", planID, err)
	}
	rows, err := a.db.GetWorkoutPlanDetails(ctx, planID)
	if err != nil {
		return nil, err
	}

	doc := &PlanDocument{Name: stored.Name, Exercises: []ExerciseDocument{}}
	for _, g := range workout.GroupRows(rows) {
		ex := ExerciseDocument{ExerciseID: g.ExerciseID, Name: g.Name, Sets: []SetDocument{}}
		for _, s := range g.Sets {
			ex.Sets = append(ex.Sets, SetDocument{Reps: s.Reps, Kg: s.Kg})
		}
		doc.Exercises = append(doc.Exercises, ex)
	}
	return doc, nil
}

// WritePlanDocument encodes doc as YAML.
func WritePlanDocument(w io.Writer, doc *PlanDocument) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}

// ReadPlanDocument decodes a YAML plan document.
func ReadPlanDocument(r io.Reader) (*PlanDocument, error) {
	var doc PlanDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode plan: %w", err)
	}
	return &doc, nil
}

// ImportPlan replays doc into a fresh composition state, typing every value
// the way the keypad would, and saves it as a new plan. A non-empty name
// overrides the document's.
func (a *App) ImportPlan(ctx context.Context, doc *PlanDocument, name string) (int64, error) {
	resolved := *doc
	resolved.Exercises = make([]ExerciseDocument, len(doc.Exercises))
	for i, ex := range doc.Exercises {
		e, err := a.db.GetExercise(ctx, ex.ExerciseID)
		if err != nil {
			return 0, fmt.Errorf("exercise %d: %w", ex.ExerciseID, err)
		}
		ex.Name = e.Name
		resolved.Exercises[i] = ex
	}

	plan, err := resolved.compose()
	if err != nil {
		return 0, err
	}
	if strings.TrimSpace(name) != "" {
		plan.SetName(name)
	}

	id, err := plan.Save(ctx, a.db, a.cfg.UserID)
	if err != nil {
		if !workout.IsValidation(err) {
			log.Error("failed to import plan", "error", err)
		}
		return 0, err
	}
	return id, nil
}

func (doc *PlanDocument) compose() (*workout.Plan, error) {
	plan := workout.NewPlan()
	plan.SetName(doc.Name)

	for i, ex := range doc.Exercises {
		// AddExercise starts the entry with one empty set.
		plan.AddExercise(ex.ExerciseID, ex.Name)
		if len(ex.Sets) == 0 {
			if err := plan.DeleteSet(i, 0); err != nil {
				return nil, err
			}
			continue
		}
		for j, set := range ex.Sets {
			if j > 0 {
				if err := plan.AddSet(i); err != nil {
					return nil, err
				}
			}
			if err := typeValue(plan, i, j, workout.FieldReps, set.Reps); err != nil {
				return nil, err
			}
			if err := typeValue(plan, i, j, workout.FieldKg, set.Kg); err != nil {
				return nil, err
			}
		}
	}
	return plan, nil
}

func typeValue(plan *workout.Plan, i, j int, f workout.Field, value string) error {
	for _, r := range strings.TrimSpace(value) {
		if err := plan.UpdateSetField(i, j, f, string(r)); err != nil {
			return err
		}
	}
	return nil
}
