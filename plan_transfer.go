package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gerunddev/lift/internal/app"
	"github.com/gerunddev/lift/internal/workout"
)

// filePermissions is the default permission for exported files.
const filePermissions = 0644

func planExportCmd(open opener) *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export <plan-id>",
		Short: "Export a plan as YAML",
		Long: `Export a plan's name, exercises and sets as YAML.

The exported file can be edited and loaded again with 'lift plan import'.

Examples:
  lift plan export 3               # Export plan 3 to stdout
  lift plan export 3 -o legs.yaml  # Export to file`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("plan", args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, open, func(a *app.App) error {
				return runPlanExport(cmd, a, id, outputFile)
			})
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")

	return cmd
}

func runPlanExport(cmd *cobra.Command, a *app.App, id int64, outputFile string) error {
	doc, err := a.ExportPlan(cmd.Context(), id)
	if err != nil {
		return planError(id, err)
	}

	if outputFile == "" {
		return app.WritePlanDocument(cmd.OutOrStdout(), doc)
	}

	var buf bytes.Buffer
	if err := app.WritePlanDocument(&buf, doc); err != nil {
		return err
	}
	if err := os.WriteFile(outputFile, buf.Bytes(), filePermissions); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Plan %d exported to %s\n", id, outputFile)
	return nil
}

func planImportCmd(open opener) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a plan from YAML",
		Long: `Import a plan from a YAML file or stdin and save it as a new plan.

Examples:
  lift plan import legs.yaml                     # Import from file
  lift plan import legs.yaml --name "Leg Day 2"  # Import under another name
  cat legs.yaml | lift plan import -             # Import from stdin`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, open, func(a *app.App) error {
				return runPlanImport(cmd, a, args[0], name)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Plan name (default: the name in the file)")

	return cmd
}

func runPlanImport(cmd *cobra.Command, a *app.App, inputFile, name string) error {
	var r io.Reader
	if inputFile == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(inputFile)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := app.ReadPlanDocument(r)
	if err != nil {
		return err
	}

	id, err := a.ImportPlan(cmd.Context(), doc, name)
	if err != nil {
		if workout.IsValidation(err) {
			return fmt.Errorf("invalid plan: %w", err)
		}
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Plan %d imported\n", id)
	return nil
}
