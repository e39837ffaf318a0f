package workout

import (
	"context"
	"fmt"
	"strings"

	"github.com/gerunddev/lift/internal/db"
)

// PlanStore persists composed plans. *db.DB implements it.
type PlanStore interface {
	CreateWorkoutPlan(ctx context.Context, plan db.PlanInput) (int64, error)
	ReplaceWorkoutPlan(ctx context.Context, planID int64, plan db.PlanInput) error
}

// Plan is the editing state of a workout plan: a name and an ordered list
// of exercise entries, each with an ordered list of sets. A Plan is owned
// by a single caller and is not safe for concurrent use.
type Plan struct {
	id        int64
	name      string
	exercises []ExerciseEntry
}

// NewPlan returns an empty plan draft.
func NewPlan() *Plan {
	return &Plan{exercises: []ExerciseEntry{}}
}

// ID returns the id of the persisted plan being edited, or 0 for a new one.
func (p *Plan) ID() int64 { return p.id }

// SetID marks the draft as an edit of the persisted plan id.
func (p *Plan) SetID(id int64) { p.id = id }

// Name returns the plan name as typed.
func (p *Plan) Name() string { return p.name }

// SetName replaces the plan name. It is validated only on save.
func (p *Plan) SetName(name string) { p.name = name }

// Exercises returns a copy of the exercise entries.
func (p *Plan) Exercises() []ExerciseEntry {
	return cloneEntries(p.exercises)
}

// Len returns the number of exercise entries.
func (p *Plan) Len() int { return len(p.exercises) }

// SetCount returns the number of sets of exercise i, or 0 for a bad index.
func (p *Plan) SetCount(i int) int {
	if i < 0 || i >= len(p.exercises) {
		return 0
	}
	return len(p.exercises[i].Sets)
}

// AddExercise appends an exercise entry with one empty set.
func (p *Plan) AddExercise(exerciseID int64, name string) {
	p.exercises = append(p.exercises, ExerciseEntry{
		ExerciseID: exerciseID,
		Name:       name,
		Sets:       []WorkingSet{{}},
	})
}

// appendExercise appends an entry with no sets; loading replays the
// persisted sets onto it.
func (p *Plan) appendExercise(exerciseID int64, name string) {
	p.exercises = append(p.exercises, ExerciseEntry{
		ExerciseID: exerciseID,
		Name:       name,
		Sets:       []WorkingSet{},
	})
}

// RemoveExercise deletes the entry at index i.
func (p *Plan) RemoveExercise(i int) error {
	if err := p.checkExercise(i); err != nil {
		return err
	}
	p.exercises = append(p.exercises[:i:i], p.exercises[i+1:]...)
	return nil
}

// AddSet appends an empty set to exercise i.
func (p *Plan) AddSet(i int) error {
	if err := p.checkExercise(i); err != nil {
		return err
	}
	p.exercises[i].Sets = append(p.exercises[i].Sets, WorkingSet{})
	return nil
}

// DeleteSet removes set j of exercise i. Confirmation is the caller's job.
func (p *Plan) DeleteSet(i, j int) error {
	if err := p.checkSet(i, j); err != nil {
		return err
	}
	sets := p.exercises[i].Sets
	p.exercises[i].Sets = append(sets[:j:j], sets[j+1:]...)
	return nil
}

// UpdateSetField applies one keypad token to a field of set j of exercise
// i. DeleteToken drops the last character; any other token is appended.
func (p *Plan) UpdateSetField(i, j int, f Field, token string) error {
	if err := p.checkSet(i, j); err != nil {
		return err
	}
	v, err := p.exercises[i].Sets[j].field(f)
	if err != nil {
		return err
	}
	if token == DeleteToken {
		if *v != "" {
			*v = (*v)[:len(*v)-1]
		}
		return nil
	}
	*v += token
	return nil
}

// Clear resets the draft to an unnamed, empty plan.
func (p *Plan) Clear() {
	p.id = 0
	p.name = ""
	p.exercises = []ExerciseEntry{}
}

// IsDirty reports whether discarding the draft would lose anything.
func (p *Plan) IsDirty() bool {
	return p.name != "" || len(p.exercises) > 0
}

// LoadPlan fills an empty draft from the flat rows of a persisted plan and
// reports whether it did. When the draft already has exercises it is left
// untouched, so repeated loads never clobber edits in progress.
func (p *Plan) LoadPlan(rows []db.FlatPlanRow) (bool, error) {
	if len(p.exercises) > 0 || len(rows) == 0 {
		return false, nil
	}
	planID, planName := rows[0].WorkoutPlanID, rows[0].PlanName
	for _, r := range rows[1:] {
		if r.WorkoutPlanID != planID {
			return false, fmt.Errorf("%w: %d and %d", ErrMixedPlans, planID, r.WorkoutPlanID)
		}
	}

	grouped := GroupRows(rows)
	p.id = planID
	p.name = planName
	for _, g := range grouped {
		p.appendExercise(g.ExerciseID, g.Name)
		i := len(p.exercises) - 1
		for j, s := range g.Sets {
			if err := p.AddSet(i); err != nil {
				return false, err
			}
			if err := p.typeInto(i, j, FieldReps, s.Reps); err != nil {
				return false, err
			}
			if err := p.typeInto(i, j, FieldKg, s.Kg); err != nil {
				return false, err
			}
		}
	}
	return true, nil
}

func (p *Plan) typeInto(i, j int, f Field, value string) error {
	for _, r := range value {
		if err := p.UpdateSetField(i, j, f, string(r)); err != nil {
			return err
		}
	}
	return nil
}

// input validates the draft and converts it to storage rows.
func (p *Plan) input(userID int64) (db.PlanInput, error) {
	name := strings.TrimSpace(p.name)
	if name == "" {
		return db.PlanInput{}, ErrEmptyName
	}
	exercises, err := Flatten(p.exercises)
	if err != nil {
		return db.PlanInput{}, err
	}
	return db.PlanInput{UserID: userID, Name: name, Exercises: exercises}, nil
}

// Save writes the draft in one transaction: a new plan, or a full replace
// of the plan being edited. On success the draft is cleared and the plan
// id returned. On any error the draft is left as it was.
func (p *Plan) Save(ctx context.Context, store PlanStore, userID int64) (int64, error) {
	in, err := p.input(userID)
	if err != nil {
		return 0, err
	}

	planID := p.id
	if planID > 0 {
		if err := store.ReplaceWorkoutPlan(ctx, planID, in); err != nil {
			return 0, fmt.Errorf("saving workout plan %d: %w", planID, err)
		}
	} else {
		if planID, err = store.CreateWorkoutPlan(ctx, in); err != nil {
			return 0, fmt.Errorf("saving workout plan: %w", err)
		}
	}

	p.Clear()
	return planID, nil
}

func (p *Plan) checkExercise(i int) error {
	if i < 0 || i >= len(p.exercises) {
		return fmt.Errorf("exercise %d of %d: %w", i, len(p.exercises), ErrIndexOutOfRange)
	}
	return nil
}

func (p *Plan) checkSet(i, j int) error {
	if err := p.checkExercise(i); err != nil {
		return err
	}
	if n := len(p.exercises[i].Sets); j < 0 || j >= n {
		return fmt.Errorf("set %d of %d in exercise %d: %w", j, n, i, ErrIndexOutOfRange)
	}
	return nil
}
