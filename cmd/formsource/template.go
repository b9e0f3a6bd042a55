// Template command for the formsource CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/fieldstudy/formsource/pkg/types"
)

var templateCmd = &cobra.Command{
	Use:   "template <taskfile>",
	Short: "Emit a blank task result skeleton",
	Long: `Template prints a JSON task result skeleton for the given task
definition: one step result per form step, one null-valued question result
per question. Integrators use it as the shape reference for submitted
results.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		task := loadTask(args[0])

		result := types.NewTaskResult(task.Identifier)
		for _, step := range task.Steps {
			if step.Type != types.StepTypeForm {
				continue
			}
			sr := types.StepResult{StepIdentifier: step.Identifier, Questions: []types.QuestionResult{}}
			for _, q := range step.Questions() {
				sr.Questions = append(sr.Questions, types.QuestionResult{
					Identifier: q.Identifier,
					AnswerType: q.AnswerType,
				})
			}
			result.AppendStepResult(sr)
		}

		return printJSON(result)
	},
}
