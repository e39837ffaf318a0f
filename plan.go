package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gerunddev/lift/internal/app"
	"github.com/gerunddev/lift/internal/db"
	"github.com/gerunddev/lift/internal/tui"
	"github.com/gerunddev/lift/internal/workout"
)

// planCmd creates the plan subcommand group.
func planCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Workout plan commands",
		Long: `Workout plan commands for listing, composing, editing and sharing plans.

A plan is a named list of exercises, each with planned sets of reps and kg.`,
	}

	cmd.AddCommand(planListCmd(open))
	cmd.AddCommand(planShowCmd(open))
	cmd.AddCommand(planNewCmd(open))
	cmd.AddCommand(planEditCmd(open))
	cmd.AddCommand(planDeleteCmd(open))
	cmd.AddCommand(planExportCmd(open))
	cmd.AddCommand(planImportCmd(open))

	return cmd
}

func planListCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved plans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				return runPlanList(cmd, a)
			})
		},
	}
}

func runPlanList(cmd *cobra.Command, a *app.App) error {
	plans, err := a.DB().ListWorkoutPlans(cmd.Context(), a.Config().UserID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(plans) == 0 {
		fmt.Fprintln(out, "No plans yet. Create one with 'lift plan new'.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEXERCISES\tUPDATED")
	for _, p := range plans {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", p.ID, p.Name, p.ExerciseCount, p.UpdatedAt.Local().Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func planShowCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <plan-id>",
		Short: "Show a plan's exercises and sets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("plan", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				return runPlanShow(cmd, a, id)
			})
		},
	}
}

func runPlanShow(cmd *cobra.Command, a *app.App, id int64) error {
	ctx := cmd.Context()
	plan, err := a.DB().GetWorkoutPlan(ctx, id)
	if err != nil {
		return planError(id, err)
	}
	rows, err := a.DB().GetWorkoutPlanDetails(ctx, id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s (plan %d)\n", plan.Name, plan.ID)
	groups := workout.GroupRows(rows)
	if len(groups) == 0 {
		fmt.Fprintln(out, "\n  no exercises")
		return nil
	}
	for i, g := range groups {
		fmt.Fprintf(out, "\n  %d. %s (%s, %s)\n", i+1, g.Name, g.BodyPart, g.Equipment)
		if len(g.Sets) == 0 {
			fmt.Fprintln(out, "     no sets")
		}
		for j, s := range g.Sets {
			fmt.Fprintf(out, "     set %d: %s\n", j+1, describeSet(s))
		}
	}
	return nil
}

func describeSet(s workout.WorkingSet) string {
	reps, kg := s.Reps, s.Kg
	if reps == "" {
		reps = "-"
	}
	if kg == "" {
		kg = "-"
	}
	return reps + " reps x " + kg + " kg"
}

func planNewCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Compose a new plan",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				res, err := a.ComposePlan(cmd.Context(), 0)
				if err != nil {
					return err
				}
				reportCompose(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}
}

func planEditCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <plan-id>",
		Short: "Edit a saved plan",
		Long: `Edit a saved plan. Saving replaces the plan's exercises and sets
with the edited ones; recorded workouts are unaffected.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("plan", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				res, err := a.ComposePlan(cmd.Context(), id)
				if err != nil {
					return planError(id, err)
				}
				reportCompose(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}
}

func reportCompose(out io.Writer, res tui.Result) {
	switch {
	case res.Saved:
		fmt.Fprintf(out, "Plan %d saved\n", res.PlanID)
	case res.Discarded:
		fmt.Fprintln(out, "Changes discarded")
	}
}

func planDeleteCmd(open opener) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <plan-id>",
		Short: "Delete a plan",
		Long: `Delete a plan and its exercises and sets. Workouts already recorded
from the plan stay in the history.

Examples:
  lift plan delete 3      # Asks for confirmation
  lift plan delete 3 -f   # No confirmation`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("plan", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				return runPlanDelete(cmd, a, id, force)
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runPlanDelete(cmd *cobra.Command, a *app.App, id int64, force bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	plan, err := a.DB().GetWorkoutPlan(ctx, id)
	if err != nil {
		return planError(id, err)
	}

	if !force {
		fmt.Fprintf(out, "Delete plan %d (%s)? [y/N]: ", plan.ID, plan.Name)
		var response string
		if _, err := fmt.Fscanln(cmd.InOrStdin(), &response); err != nil || (response != "y" && response != "Y") {
			fmt.Fprintln(out, "Delete cancelled.")
			return nil
		}
	}

	if err := a.DB().DeleteWorkoutPlan(ctx, id); err != nil {
		return planError(id, err)
	}
	fmt.Fprintf(out, "Plan %d deleted\n", id)
	return nil
}

func planError(id int64, err error) error {
	if errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("plan not found: %d", id)
	}
	return err
}
