package types

import "errors"

// Answer types determine what values a question accepts and how the UI
// renders its rows.
const (
	AnswerTypeSingleChoice   = "single_choice"
	AnswerTypeMultipleChoice = "multiple_choice"
	AnswerTypeText           = "text"
	AnswerTypeInteger        = "integer"
	AnswerTypeDecimal        = "decimal"
	AnswerTypeBoolean        = "boolean"
	AnswerTypeDate           = "date"
	AnswerTypeScale          = "scale"
)

// validAnswerTypes is the set of recognized answer type values.
var validAnswerTypes = map[string]bool{
	AnswerTypeSingleChoice:   true,
	AnswerTypeMultipleChoice: true,
	AnswerTypeText:           true,
	AnswerTypeInteger:        true,
	AnswerTypeDecimal:        true,
	AnswerTypeBoolean:        true,
	AnswerTypeDate:           true,
	AnswerTypeScale:          true,
}

// IsValidAnswerType reports whether the given string is a recognized answer type.
func IsValidAnswerType(at string) bool {
	return validAnswerTypes[at]
}

// IsChoiceAnswerType reports whether the answer type is answered by selecting
// rows rather than entering a value.
func IsChoiceAnswerType(at string) bool {
	return at == AnswerTypeSingleChoice || at == AnswerTypeMultipleChoice
}

// Question validation errors.
var (
	ErrIdentifierEmpty     = errors.New("identifier must not be empty")
	ErrInvalidAnswerType   = errors.New("unknown answer type")
	ErrNoChoices           = errors.New("choice question requires at least one choice")
	ErrEmptyChoiceValue    = errors.New("choice value must not be empty")
	ErrUnexpectedChoices   = errors.New("non-choice question must not define choices")
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	ErrMissingScaleBounds  = errors.New("scale question requires minimum and maximum")
)

// Choice is one selectable option for a choice question. Selecting a choice
// whose Exclusive flag is set clears every other selection in the question;
// selecting any other choice clears a selected exclusive one.
type Choice struct {
	Value     string `json:"value" yaml:"value"`
	Text      string `json:"text" yaml:"text"`
	Detail    string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Exclusive bool   `json:"exclusive,omitempty" yaml:"exclusive,omitempty"`
}

// Question describes a single prompt within a form section. The answer value
// is held elsewhere (by the form data source); a Question is pure definition.
type Question struct {
	Identifier  string   `json:"identifier" yaml:"identifier"`
	Prompt      string   `json:"prompt" yaml:"prompt"`
	AnswerType  string   `json:"answer_type" yaml:"answer_type"`
	Optional    bool     `json:"optional,omitempty" yaml:"optional,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Choices     []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`

	// MaxLength bounds text answers; zero means unbounded.
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty"`

	// Minimum and Maximum bound integer, decimal, and scale answers.
	// Nil means unbounded on that side. Scale questions require both.
	Minimum *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	Maximum *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
}

// Validate checks that the question definition is well-formed. It returns a
// sentinel error from this package on failure.
func (q Question) Validate() error {
	if q.Identifier == "" {
		return ErrIdentifierEmpty
	}
	if !IsValidAnswerType(q.AnswerType) {
		return ErrInvalidAnswerType
	}
	if IsChoiceAnswerType(q.AnswerType) {
		if len(q.Choices) == 0 {
			return ErrNoChoices
		}
		seen := make(map[string]bool, len(q.Choices))
		for _, c := range q.Choices {
			if c.Value == "" {
				return ErrEmptyChoiceValue
			}
			if seen[c.Value] {
				return ErrDuplicateIdentifier
			}
			seen[c.Value] = true
		}
		return nil
	}
	if len(q.Choices) > 0 {
		return ErrUnexpectedChoices
	}
	if q.AnswerType == AnswerTypeScale && (q.Minimum == nil || q.Maximum == nil) {
		return ErrMissingScaleBounds
	}
	return nil
}

// ChoiceForValue returns the choice with the given value, or false when the
// value is not one of the question's choices.
func (q Question) ChoiceForValue(value string) (Choice, bool) {
	for _, c := range q.Choices {
		if c.Value == value {
			return c, true
		}
	}
	return Choice{}, false
}
