package types

import "errors"

// IndexPath addresses one row of the table backing a form step.
type IndexPath struct {
	Section int `json:"section"`
	Row     int `json:"row"`
}

// Table item kinds. Choice items toggle selection; entry items accept a
// typed value through SaveAnswer.
const (
	ItemKindChoice = "choice"
	ItemKindEntry  = "entry"
)

// TableItem is one row of a form step's table. Choice items carry the choice
// they stand for; entry items carry the question's placeholder text.
type TableItem struct {
	Kind               string `json:"kind"`
	QuestionIdentifier string `json:"question_identifier"`
	Text               string `json:"text"`
	Detail             string `json:"detail,omitempty"`
	Choice             Choice `json:"choice,omitempty"`
	Selected           bool   `json:"selected"`
}

// DataSource tracks the answers of one displayed form step. Implementations
// are created when the step comes on screen and discarded when it is
// dismissed; they hold UI-thread state and are not safe for concurrent use.
type DataSource interface {
	// NumSections returns the number of sections.
	NumSections() int

	// NumRows returns the number of rows in the given section.
	// Returns ErrIndexOutOfRange if the section index is invalid.
	NumRows(section int) (int, error)

	// ItemAt returns the table item at the given index path.
	// Returns ErrIndexOutOfRange if the path is invalid.
	ItemAt(ip IndexPath) (TableItem, error)

	// GroupForQuestion returns the question definition and the index paths
	// of its rows. Returns ErrQuestionNotFound for unknown identifiers.
	GroupForQuestion(identifier string) (Question, []IndexPath, error)

	// QuestionAt returns the question that owns the row at the given index
	// path. Returns ErrIndexOutOfRange if the path is invalid.
	QuestionAt(ip IndexPath) (Question, error)

	// SaveAnswer validates value against the question's answer type and
	// constraints and records it. Returns ErrQuestionNotFound for unknown
	// identifiers and ErrInvalidAnswer for values that fail validation.
	SaveAnswer(identifier string, value any) error

	// Answer returns the recorded answer for the question and whether one
	// has been recorded. Returns ErrQuestionNotFound for unknown identifiers.
	Answer(identifier string) (any, bool, error)

	// ClearAnswer removes the recorded answer for the question, including
	// any row selections. Returns ErrQuestionNotFound for unknown
	// identifiers. Idempotent.
	ClearAnswer(identifier string) error

	// SelectItemAt toggles selection of the choice row at the given index
	// path and updates the owning question's answer. Returns
	// ErrIndexOutOfRange for invalid paths and ErrInvalidSelection when the
	// row is not a choice row.
	SelectItemAt(ip IndexPath) error

	// SelectedIndexPaths returns the currently selected rows in index-path
	// order. Returns an empty slice (not nil) when nothing is selected.
	SelectedIndexPaths() []IndexPath

	// IsComplete reports whether every non-optional question has an answer.
	IsComplete() bool

	// MissingAnswers returns the identifiers of non-optional questions that
	// have no answer yet, in display order.
	MissingAnswers() []string

	// Validate returns nil when the step is complete. Otherwise it returns
	// ErrMissingAnswer wrapped with the identifier of the first non-optional
	// question that has no answer.
	Validate() error

	// Result assembles the step result from the recorded answers. A data
	// source with no answers yields a result with zero question results.
	Result() StepResult
}

// Data source operation errors.
var (
	ErrInvalidAnswer    = errors.New("invalid answer value")
	ErrInvalidSelection = errors.New("invalid selection")
	ErrIndexOutOfRange  = errors.New("index path out of range")
	ErrQuestionNotFound = errors.New("question not found")
	ErrMissingAnswer    = errors.New("required answer missing")
)

// Document decoding errors.
var (
	ErrInvalidDocument = errors.New("invalid task definition document")
	ErrUnknownFormat   = errors.New("unknown task definition format")
	ErrNotFormStep     = errors.New("step is not a form step")
)
