package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldstudy/formsource/internal/asyncaction"
	"github.com/fieldstudy/formsource/internal/taskfile"
	"github.com/fieldstudy/formsource/pkg/form"
	"github.com/fieldstudy/formsource/pkg/types"
)

// TestCheckinFlow drives a whole task run through the public surface: load
// the definition, fill in the form step, and assemble the task result.
func TestCheckinFlow(t *testing.T) {
	task, err := taskfile.Load(TaskFile(t, "task.json"))
	require.NoError(t, err)

	result := types.NewTaskResult(task.Identifier)

	step, err := task.StepWithIdentifier("questions")
	require.NoError(t, err)

	ds, err := form.New(step)
	require.NoError(t, err)
	assert.False(t, ds.IsComplete())

	// Answer the single-choice question through a row tap: "okay" is the
	// second row of the first section.
	require.NoError(t, ds.SelectItemAt(types.IndexPath{Section: 0, Row: 1}))

	// Answer the rest through the save helper.
	require.NoError(t, ds.SaveAnswer("symptoms", []string{"headache"}))
	require.NoError(t, ds.SaveAnswer("sleep", 7))
	require.True(t, ds.IsComplete(), "notes is optional")

	result.AppendStepResult(ds.Result())
	result.Finish()

	sr, err := result.StepResultFor("questions")
	require.NoError(t, err)
	require.Len(t, sr.Questions, 3)

	mood, ok := sr.QuestionResultFor("mood")
	require.True(t, ok)
	assert.Equal(t, "okay", mood.Value)

	sleep, ok := sr.QuestionResultFor("sleep")
	require.True(t, ok)
	assert.Equal(t, int64(7), sleep.Value)

	_, ok = sr.QuestionResultFor("notes")
	assert.False(t, ok, "unanswered optional questions stay out of the result")
}

// TestRevisitingAStepReplacesItsResult models a user going back to a form
// step: a new data source is built for the second visit and its result
// replaces the first one.
func TestRevisitingAStepReplacesItsResult(t *testing.T) {
	task, err := taskfile.Load(TaskFile(t, "task.json"))
	require.NoError(t, err)

	step, err := task.StepWithIdentifier("questions")
	require.NoError(t, err)
	result := types.NewTaskResult(task.Identifier)

	first, err := form.New(step)
	require.NoError(t, err)
	require.NoError(t, first.SaveAnswer("mood", "bad"))
	result.AppendStepResult(first.Result())

	second, err := form.New(step)
	require.NoError(t, err)
	require.NoError(t, second.SaveAnswer("mood", "good"))
	result.AppendStepResult(second.Result())

	require.Len(t, result.Steps, 1)
	sr, err := result.StepResultFor("questions")
	require.NoError(t, err)
	mood, ok := sr.QuestionResultFor("mood")
	require.True(t, ok)
	assert.Equal(t, "good", mood.Value)
}

// TestAsyncActionLifecycle checks that a runner can derive the recorder
// schedule for each step of the loaded task.
func TestAsyncActionLifecycle(t *testing.T) {
	task, err := taskfile.Load(TaskFile(t, "task.json"))
	require.NoError(t, err)

	registry, err := asyncaction.NewRegistry(task)
	require.NoError(t, err)
	assert.Len(t, registry.List(), 2)

	starting, err := asyncaction.StartingAt(task, "intro")
	require.NoError(t, err)
	require.Len(t, starting, 1)
	assert.Equal(t, "gps", starting[0].Identifier, "open-start actions begin with the first step")

	starting, err = asyncaction.StartingAt(task, "questions")
	require.NoError(t, err)
	require.Len(t, starting, 1)
	assert.Equal(t, "motion", starting[0].Identifier)

	stopping, err := asyncaction.StoppingAt(task, "done")
	require.NoError(t, err)
	require.Len(t, stopping, 1)
	assert.Equal(t, "gps", stopping[0].Identifier, "open-stop actions run until the task ends")

	active, err := asyncaction.ActiveAt(task, "questions")
	require.NoError(t, err)
	assert.Len(t, active, 2)
}
