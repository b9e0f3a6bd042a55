package types

import (
	"time"

	"github.com/google/uuid"
)

// QuestionResult records the answer to a single question. Value holds the
// validated answer: a string for text/date/choice values, a []string for
// multiple choice, an int64 for integer and scale, a float64 for decimal,
// and a bool for boolean answers.
type QuestionResult struct {
	Identifier string    `json:"identifier"`
	AnswerType string    `json:"answer_type"`
	Value      any       `json:"value"`
	AnsweredAt time.Time `json:"answered_at"`
}

// StepResult records one pass through a step: when it was shown, when its
// result was collected, and the answers given. RunID is generated fresh for
// every pass so repeated visits to the same step stay distinguishable.
type StepResult struct {
	RunID          uuid.UUID        `json:"run_id"`
	StepIdentifier string           `json:"step_identifier"`
	StartedAt      time.Time        `json:"started_at"`
	EndedAt        time.Time        `json:"ended_at"`
	Questions      []QuestionResult `json:"questions"`
}

// QuestionResultFor returns the result for the given question identifier,
// or false when the question was not answered.
func (r StepResult) QuestionResultFor(identifier string) (QuestionResult, bool) {
	for _, q := range r.Questions {
		if q.Identifier == identifier {
			return q, true
		}
	}
	return QuestionResult{}, false
}

// TaskResult aggregates the step results of one run through a task.
type TaskResult struct {
	RunID          uuid.UUID    `json:"run_id"`
	TaskIdentifier string       `json:"task_identifier"`
	StartedAt      time.Time    `json:"started_at"`
	EndedAt        time.Time    `json:"ended_at"`
	Steps          []StepResult `json:"steps"`
}

// NewTaskResult creates a TaskResult for the given task with a fresh run ID
// and StartedAt set to now.
func NewTaskResult(taskIdentifier string) *TaskResult {
	return &TaskResult{
		RunID:          uuid.New(),
		TaskIdentifier: taskIdentifier,
		StartedAt:      time.Now(),
	}
}

// AppendStepResult adds a step result to the task result. When a result for
// the same step identifier already exists it is replaced in place: revisiting
// a step overwrites the earlier answers, last write wins.
func (t *TaskResult) AppendStepResult(r StepResult) {
	for i, existing := range t.Steps {
		if existing.StepIdentifier == r.StepIdentifier {
			t.Steps[i] = r
			return
		}
	}
	t.Steps = append(t.Steps, r)
}

// StepResultFor returns the result for the given step identifier.
// Returns ErrStepNotFound if no result has been recorded for that step.
func (t *TaskResult) StepResultFor(identifier string) (StepResult, error) {
	for _, r := range t.Steps {
		if r.StepIdentifier == identifier {
			return r, nil
		}
	}
	return StepResult{}, ErrStepNotFound
}

// Finish sets EndedAt to now. Idempotent in effect: calling it again just
// moves the timestamp.
func (t *TaskResult) Finish() {
	t.EndedAt = time.Now()
}
