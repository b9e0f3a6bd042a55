// Validate command for the formsource CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldstudy/formsource/internal/asyncaction"
)

var validateCmd = &cobra.Command{
	Use:   "validate <taskfile>",
	Short: "Validate a task definition document",
	Long: `Validate checks a task definition document (JSON or YAML) against the
document schema and the semantic rules: unique identifiers, well-formed
questions, and async action windows that resolve against the step list.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := loadTask(args[0])

		// Task.Validate ran during loading; windows can still be
		// inverted (stop step before start step).
		windows, err := asyncaction.ResolveWindows(task)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid task definition %q: %v\n", args[0], err)
			os.Exit(exitUserError)
		}

		if flagJSON {
			return printJSON(map[string]any{
				"valid":         true,
				"task":          task.Identifier,
				"steps":         len(task.Steps),
				"questions":     countQuestions(task),
				"async_actions": len(windows),
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d steps, %d questions, %d async actions\n",
			task.Identifier, len(task.Steps), countQuestions(task), len(windows))
		return nil
	},
}
