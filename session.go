package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/gerunddev/lift/internal/app"
	"github.com/gerunddev/lift/internal/tui"
)

// sessionCmd creates the session subcommand group.
func sessionCmd(open opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Workout session commands",
	}

	cmd.AddCommand(sessionStartCmd(open))

	return cmd
}

func sessionStartCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "start [plan-id]",
		Short: "Perform a workout",
		Long: `Perform a workout from a saved plan, or an ad hoc workout without one.

Mark each set done as you finish it. Saving records the workout in the
history and updates the plan with any changes made along the way; an
ad hoc workout is saved as a new plan.

Examples:
  lift session start 3   # Perform plan 3
  lift session start     # Ad hoc workout`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var planID int64
			if len(args) == 1 {
				id, err := parseID("plan", args[0])
				if err != nil {
					return err
				}
				planID = id
			}
			return withApp(cmd, open, func(a *app.App) error {
				res, err := a.RunSession(cmd.Context(), planID)
				if err != nil {
					return planError(planID, err)
				}
				reportSession(cmd.OutOrStdout(), res)
				return nil
			})
		},
	}
}

func reportSession(out io.Writer, res tui.Result) {
	switch {
	case res.Saved:
		fmt.Fprintf(out, "Workout %d recorded (plan %d)\n", res.Session.SessionID, res.Session.PlanID)
	case res.Discarded:
		fmt.Fprintln(out, "Workout discarded")
	}
}
