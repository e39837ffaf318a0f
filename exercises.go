package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gerunddev/lift/internal/app"
)

func exercisesCmd(open opener) *cobra.Command {
	var bodyPart string

	cmd := &cobra.Command{
		Use:   "exercises",
		Short: "List the exercise library",
		Long: `List the exercise library alphabetically.

Examples:
  lift exercises                   # Every exercise
  lift exercises --body-part legs  # Only leg exercises`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				return runExercises(cmd, a, bodyPart)
			})
		},
	}

	cmd.Flags().StringVarP(&bodyPart, "body-part", "b", "", "Only exercises for this body part")

	return cmd
}

func runExercises(cmd *cobra.Command, a *app.App, bodyPart string) error {
	exercises, err := a.DB().ListExercises(cmd.Context(), bodyPart)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(exercises) == 0 {
		fmt.Fprintln(out, "No exercises found")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tBODY PART\tEQUIPMENT")
	for _, e := range exercises {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.BodyPart, e.Equipment)
	}
	return w.Flush()
}
