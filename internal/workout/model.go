// Package workout holds the in-memory editing state of workout plans and
// sessions, and the mapping between that nested state and flat storage rows.
package workout

import (
	"errors"
	"fmt"
)

// DeleteToken removes the last character of a set field instead of being
// appended to it.
const DeleteToken = "delete"

var (
	// ErrEmptyName rejects saving a plan whose trimmed name is empty.
	ErrEmptyName = errors.New("plan name is required")
	// ErrIncompleteSession rejects saving a session with any set not completed.
	ErrIncompleteSession = errors.New("all sets must be completed before saving")
	// ErrIndexOutOfRange is returned by operations given a bad exercise or set index.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidNumber is returned when a set field does not parse as a number.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrMixedPlans is returned when loading rows that belong to more than one plan.
	ErrMixedPlans = errors.New("rows belong to more than one plan")
)

// IsValidation reports whether err is a user-correctable rejection rather
// than a failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrIncompleteSession) ||
		errors.Is(err, ErrInvalidNumber)
}

// Field selects which value of a working set is edited.
type Field int

const (
	FieldReps Field = iota
	FieldKg
)

func (f Field) String() string {
	switch f {
	case FieldReps:
		return "reps"
	case FieldKg:
		return "kg"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}

// WorkingSet is a set being edited. Reps and Kg are kept as typed text and
// only converted to numbers on save.
type WorkingSet struct {
	Reps        string
	Kg          string
	IsCompleted bool
}

func (s *WorkingSet) field(f Field) (*string, error) {
	switch f {
	case FieldReps:
		return &s.Reps, nil
	case FieldKg:
		return &s.Kg, nil
	default:
		return nil, fmt.Errorf("unknown set field %d", int(f))
	}
}

// ExerciseEntry is one occurrence of an exercise in a plan or session.
// Its position in the containing list is its order.
type ExerciseEntry struct {
	ExerciseID int64
	Name       string
	Sets       []WorkingSet
}

func cloneEntries(in []ExerciseEntry) []ExerciseEntry {
	out := make([]ExerciseEntry, len(in))
	for i, e := range in {
		out[i] = ExerciseEntry{
			ExerciseID: e.ExerciseID,
			Name:       e.Name,
			Sets:       append([]WorkingSet(nil), e.Sets...),
		}
	}
	return out
}
