package workout

import (
	"cmp"
	"database/sql"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/gerunddev/lift/internal/db"
)

// GroupedExercise is one exercise entry folded back out of flat plan rows.
type GroupedExercise struct {
	UniqueKey    string
	ExerciseID   int64
	Name         string
	DisplayOrder int
	BodyPart     string
	Equipment    string
	Sets         []WorkingSet

	setNumbers []int64
}

// groupKey identifies an exercise entry. The same exercise may appear more
// than once in a plan, so the display order is part of the key.
func groupKey(exerciseID int64, displayOrder int) string {
	return fmt.Sprintf("%d-%d", exerciseID, displayOrder)
}

// GroupRows folds flat plan rows into exercise entries ordered by display
// order, each with its sets ordered by set number. Rows without a set
// number contribute an entry but no set.
func GroupRows(rows []db.FlatPlanRow) []GroupedExercise {
	groups := []*GroupedExercise{}
	byKey := make(map[string]*GroupedExercise)

	for _, row := range rows {
		key := groupKey(row.ExerciseID, row.DisplayOrder)
		g, ok := byKey[key]
		if !ok {
			g = &GroupedExercise{
				UniqueKey:    key,
				ExerciseID:   row.ExerciseID,
				Name:         row.ExerciseName,
				DisplayOrder: row.DisplayOrder,
				BodyPart:     row.BodyPart,
				Equipment:    row.Equipment,
				Sets:         []WorkingSet{},
			}
			byKey[key] = g
			groups = append(groups, g)
		}
		if !row.SetNumber.Valid {
			continue
		}
		g.Sets = append(g.Sets, WorkingSet{
			Reps: formatInt(row.PlannedReps),
			Kg:   formatFloat(row.PlannedWeight),
		})
		g.setNumbers = append(g.setNumbers, row.SetNumber.Int64)
	}

	out := make([]GroupedExercise, 0, len(groups))
	for _, g := range groups {
		sortSets(g)
		out = append(out, *g)
	}
	slices.SortStableFunc(out, func(a, b GroupedExercise) int {
		return cmp.Compare(a.DisplayOrder, b.DisplayOrder)
	})
	return out
}

func sortSets(g *GroupedExercise) {
	idx := make([]int, len(g.Sets))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(g.setNumbers[a], g.setNumbers[b])
	})
	sets := make([]WorkingSet, len(idx))
	for i, j := range idx {
		sets[i] = g.Sets[j]
	}
	g.Sets = sets
	g.setNumbers = nil
}

func formatInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'f', -1, 64)
}

// Flatten converts exercise entries into the rows written for a plan.
// Display order and set number come from list position; an empty field is
// stored as NULL.
func Flatten(entries []ExerciseEntry) ([]db.PlanExerciseInput, error) {
	out := make([]db.PlanExerciseInput, 0, len(entries))
	for i, e := range entries {
		ex := db.PlanExerciseInput{
			ExerciseID:   e.ExerciseID,
			DisplayOrder: i + 1,
			Sets:         make([]db.PlanSetInput, 0, len(e.Sets)),
		}
		for j, s := range e.Sets {
			weight, err := parseWeight(s.Kg)
			if err != nil {
				return nil, fmt.Errorf("exercise %d set %d: %w", i+1, j+1, err)
			}
			reps, err := parseReps(s.Reps)
			if err != nil {
				return nil, fmt.Errorf("exercise %d set %d: %w", i+1, j+1, err)
			}
			ex.Sets = append(ex.Sets, db.PlanSetInput{SetNumber: j + 1, Weight: weight, Reps: reps})
		}
		out = append(out, ex)
	}
	return out, nil
}

// FlattenSession converts exercise entries into the rows recorded for a
// performed session. History columns are not nullable, so empty fields
// are recorded as zero.
func FlattenSession(entries []ExerciseEntry) ([]db.SessionExerciseInput, error) {
	planned, err := Flatten(entries)
	if err != nil {
		return nil, err
	}
	out := make([]db.SessionExerciseInput, 0, len(planned))
	for _, p := range planned {
		ex := db.SessionExerciseInput{
			ExerciseID:   p.ExerciseID,
			DisplayOrder: p.DisplayOrder,
			Sets:         make([]db.SessionSetInput, 0, len(p.Sets)),
		}
		for _, s := range p.Sets {
			ex.Sets = append(ex.Sets, db.SessionSetInput{
				SetNumber:     s.SetNumber,
				WeightUsed:    s.Weight.Float64,
				RepsCompleted: int(s.Reps.Int64),
			})
		}
		out = append(out, ex)
	}
	return out, nil
}

func parseWeight(s string) (sql.NullFloat64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullFloat64{}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}, fmt.Errorf("%w: kg %q", ErrInvalidNumber, s)
	}
	return sql.NullFloat64{Float64: f, Valid: true}, nil
}

func parseReps(s string) (sql.NullInt64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullInt64{}, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("%w: reps %q", ErrInvalidNumber, s)
	}
	return sql.NullInt64{Int64: n, Valid: true}, nil
}
