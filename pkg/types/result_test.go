package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepResult(stepID string, questions ...QuestionResult) StepResult {
	return StepResult{
		RunID:          uuid.New(),
		StepIdentifier: stepID,
		StartedAt:      time.Now().Add(-time.Minute),
		EndedAt:        time.Now(),
		Questions:      questions,
	}
}

func TestTaskResultAppendStepResult(t *testing.T) {
	tr := NewTaskResult("daily-checkin")
	assert.NotEqual(t, uuid.Nil, tr.RunID)
	assert.False(t, tr.StartedAt.IsZero())

	first := stepResult("questions", QuestionResult{Identifier: "mood", AnswerType: AnswerTypeSingleChoice, Value: "good"})
	tr.AppendStepResult(first)
	tr.AppendStepResult(stepResult("intro"))
	require.Len(t, tr.Steps, 2)

	// Revisiting a step replaces the earlier result in place.
	second := stepResult("questions", QuestionResult{Identifier: "mood", AnswerType: AnswerTypeSingleChoice, Value: "bad"})
	tr.AppendStepResult(second)
	require.Len(t, tr.Steps, 2)
	assert.Equal(t, "questions", tr.Steps[0].StepIdentifier, "replacement keeps position")

	got, err := tr.StepResultFor("questions")
	require.NoError(t, err)
	assert.Equal(t, second.RunID, got.RunID)

	q, ok := got.QuestionResultFor("mood")
	require.True(t, ok)
	assert.Equal(t, "bad", q.Value)
}

func TestTaskResultStepResultForMissing(t *testing.T) {
	tr := NewTaskResult("daily-checkin")
	_, err := tr.StepResultFor("questions")
	assert.ErrorIs(t, err, ErrStepNotFound)
}

func TestStepResultQuestionResultForMissing(t *testing.T) {
	r := stepResult("questions")
	_, ok := r.QuestionResultFor("mood")
	assert.False(t, ok)
}

func TestTaskResultFinish(t *testing.T) {
	tr := NewTaskResult("daily-checkin")
	assert.True(t, tr.EndedAt.IsZero())
	tr.Finish()
	assert.False(t, tr.EndedAt.IsZero())
}
