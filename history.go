package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gerunddev/lift/internal/app"
)

func historyCmd(open opener) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded workouts",
		Long: `List recorded workouts, newest first.

Examples:
  lift history             # Every workout
  lift history --limit 5   # The last five
  lift history show 12     # Sets performed in workout 12`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return fmt.Errorf("--limit cannot be negative")
			}
			return withApp(cmd, open, func(a *app.App) error {
				return runHistory(cmd, a, limit)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show at most this many workouts (0: all)")
	cmd.AddCommand(historyShowCmd(open))

	return cmd
}

func runHistory(cmd *cobra.Command, a *app.App, limit int) error {
	sessions, err := a.DB().ListWorkoutSessions(cmd.Context(), a.Config().UserID, limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No workouts recorded yet")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tPLAN\tDURATION\tEXERCISES\tSETS")
	for _, s := range sessions {
		plan := "(deleted)"
		if s.PlanName.Valid {
			plan = s.PlanName.String
		}
		duration := "-"
		if s.DurationSec.Valid {
			duration = formatDuration(s.DurationSec.Int64)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\n",
			s.ID, s.Date.Local().Format("2006-01-02 15:04"), plan, duration, s.ExerciseCount, s.SetCount)
	}
	return w.Flush()
}

func historyShowCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <session-id>",
		Short: "Show the sets performed in a workout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("session", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				return runHistoryShow(cmd, a, id)
			})
		},
	}
}

func runHistoryShow(cmd *cobra.Command, a *app.App, id int64) error {
	rows, err := a.DB().GetWorkoutSessionDetails(cmd.Context(), id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(rows) == 0 {
		return fmt.Errorf("workout not found: %d", id)
	}

	fmt.Fprintf(out, "Workout %d\n", id)
	entry := -1
	for _, r := range rows {
		if r.DisplayOrder != entry {
			entry = r.DisplayOrder
			fmt.Fprintf(out, "\n  %d. %s\n", entry, r.ExerciseName)
		}
		if !r.SetNumber.Valid {
			continue
		}
		fmt.Fprintf(out, "     set %d: %d reps x %s kg\n",
			r.SetNumber.Int64, r.RepsCompleted.Int64, formatKg(r.WeightUsed.Float64))
	}
	return nil
}

func formatDuration(secs int64) string {
	h, m, s := secs/3600, secs/60%60, secs%60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

func formatKg(kg float64) string {
	return fmt.Sprintf("%g", kg)
}
