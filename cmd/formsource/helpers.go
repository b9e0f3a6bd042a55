// Shared helpers for formsource CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/fieldstudy/formsource/internal/taskfile"
	"github.com/fieldstudy/formsource/pkg/types"
)

// loadTask loads the task definition at path, exiting with the appropriate
// code on failure: user error for malformed documents, system error for
// everything else (unreadable files).
func loadTask(path string) types.Task {
	task, err := taskfile.Load(path)
	if err != nil {
		if errors.Is(err, types.ErrInvalidDocument) || errors.Is(err, types.ErrUnknownFormat) {
			fmt.Fprintf(os.Stderr, "invalid task definition %q: %v\n", path, err)
			os.Exit(exitUserError)
		}
		fmt.Fprintf(os.Stderr, "load task definition %q: %v\n", path, err)
		os.Exit(exitSysError)
	}
	logger.Debug("Loaded task definition",
		zap.String("path", path),
		zap.String("task", task.Identifier),
		zap.Int("steps", len(task.Steps)))
	return task
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// countQuestions returns the total number of questions across the task's
// form steps.
func countQuestions(task types.Task) int {
	n := 0
	for _, s := range task.Steps {
		n += len(s.Questions())
	}
	return n
}
