// Inspect command for the formsource CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fieldstudy/formsource/internal/asyncaction"
	"github.com/fieldstudy/formsource/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <taskfile>",
	Short: "Display the structure of a task definition",
	Long: `Inspect prints a step-by-step summary of a task definition: step types,
questions with their answer types, and async action activation windows.
With --json the decoded task is emitted instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := loadTask(args[0])

		if flagJSON {
			return printJSON(task)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Task: %s (%d steps)\n", task.Identifier, len(task.Steps))
		for i, step := range task.Steps {
			fmt.Fprintf(out, "  %d. %s [%s]", i+1, step.Identifier, step.Type)
			if step.Optional {
				fmt.Fprintf(out, " (%s)", strTable.Lookup("step.optional"))
			}
			fmt.Fprintln(out)
			for _, q := range step.Questions() {
				printQuestion(out, q)
			}
		}

		windows, err := asyncaction.ResolveWindows(task)
		if err != nil {
			fmt.Fprintf(os.Stderr, "resolve async windows: %v\n", err)
			os.Exit(exitUserError)
		}
		if len(windows) > 0 {
			fmt.Fprintln(out, "Async actions:")
			for _, w := range windows {
				fmt.Fprintf(out, "  %s [%s] steps %d..%d\n",
					w.Config.Identifier, w.Config.Type, w.StartIndex+1, w.StopIndex+1)
				if desc := "permission." + w.Config.Type; strTable.Has(desc) {
					fmt.Fprintf(out, "      %s\n", strTable.Lookup(desc))
				}
			}
		}
		return nil
	},
}

// printQuestion writes one summary line per question, with choice values
// for choice questions.
func printQuestion(out io.Writer, q types.Question) {
	marker := ""
	if q.Optional {
		marker = " (" + strTable.Lookup("step.optional") + ")"
	}
	fmt.Fprintf(out, "      - %s: %s%s\n", q.Identifier, q.AnswerType, marker)
	for _, c := range q.Choices {
		fmt.Fprintf(out, "          * %s %q\n", c.Value, c.Text)
	}
}
