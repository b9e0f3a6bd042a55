package types

import "errors"

// Step types. Form steps carry sections of questions; the other types mark
// points in the task that the UI and async actions key off.
const (
	StepTypeInstruction = "instruction"
	StepTypeForm        = "form"
	StepTypeActive      = "active"
	StepTypeCompletion  = "completion"
)

// validStepTypes is the set of recognized step type values.
var validStepTypes = map[string]bool{
	StepTypeInstruction: true,
	StepTypeForm:        true,
	StepTypeActive:      true,
	StepTypeCompletion:  true,
}

// IsValidStepType reports whether the given string is a recognized step type.
func IsValidStepType(st string) bool {
	return validStepTypes[st]
}

// Step and task validation errors.
var (
	ErrInvalidStepType = errors.New("unknown step type")
	ErrStepNotFound    = errors.New("step not found")
	ErrNoSteps         = errors.New("task requires at least one step")
)

// Section groups questions that are displayed together under one heading.
type Section struct {
	Title     string     `json:"title,omitempty" yaml:"title,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Step is one screen of a task. Steps are supplied to this package fully
// formed (decoded from a task definition document); the data layer never
// mutates them.
type Step struct {
	Identifier string    `json:"identifier" yaml:"identifier"`
	Type       string    `json:"type" yaml:"type"`
	Title      string    `json:"title,omitempty" yaml:"title,omitempty"`
	Text       string    `json:"text,omitempty" yaml:"text,omitempty"`
	Optional   bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
	Sections   []Section `json:"sections,omitempty" yaml:"sections,omitempty"`
}

// Validate checks that the step definition is well-formed: non-empty
// identifier, known type, valid questions, and question identifiers unique
// across all sections of the step.
func (s Step) Validate() error {
	if s.Identifier == "" {
		return ErrIdentifierEmpty
	}
	if !IsValidStepType(s.Type) {
		return ErrInvalidStepType
	}
	seen := make(map[string]bool)
	for _, sec := range s.Sections {
		for _, q := range sec.Questions {
			if err := q.Validate(); err != nil {
				return err
			}
			if seen[q.Identifier] {
				return ErrDuplicateIdentifier
			}
			seen[q.Identifier] = true
		}
	}
	return nil
}

// Questions returns the step's questions flattened in section order.
// Returns an empty slice (not nil) for steps without sections.
func (s Step) Questions() []Question {
	out := []Question{}
	for _, sec := range s.Sections {
		out = append(out, sec.Questions...)
	}
	return out
}

// Task is an ordered list of steps plus the async action configurations
// whose activation windows reference those steps.
type Task struct {
	Identifier   string                     `json:"identifier" yaml:"identifier"`
	Steps        []Step                     `json:"steps" yaml:"steps"`
	AsyncActions []AsyncActionConfiguration `json:"async_actions,omitempty" yaml:"async_actions,omitempty"`
}

// Validate checks the whole task definition: non-empty identifier, at least
// one step, valid steps with unique identifiers, valid async action
// configurations with unique identifiers, and action step references that
// resolve against the step list.
func (t Task) Validate() error {
	if t.Identifier == "" {
		return ErrIdentifierEmpty
	}
	if len(t.Steps) == 0 {
		return ErrNoSteps
	}
	stepIDs := make(map[string]bool, len(t.Steps))
	for _, s := range t.Steps {
		if err := s.Validate(); err != nil {
			return err
		}
		if stepIDs[s.Identifier] {
			return ErrDuplicateIdentifier
		}
		stepIDs[s.Identifier] = true
	}
	actionIDs := make(map[string]bool, len(t.AsyncActions))
	for _, a := range t.AsyncActions {
		if err := a.Validate(); err != nil {
			return err
		}
		if actionIDs[a.Identifier] {
			return ErrDuplicateIdentifier
		}
		actionIDs[a.Identifier] = true
		if a.StartStepIdentifier != "" && !stepIDs[a.StartStepIdentifier] {
			return ErrStepNotFound
		}
		if a.StopStepIdentifier != "" && !stepIDs[a.StopStepIdentifier] {
			return ErrStepNotFound
		}
	}
	return nil
}

// StepIndex returns the position of the step with the given identifier.
// Returns ErrStepNotFound if no step has that identifier.
func (t Task) StepIndex(identifier string) (int, error) {
	for i, s := range t.Steps {
		if s.Identifier == identifier {
			return i, nil
		}
	}
	return 0, ErrStepNotFound
}

// StepWithIdentifier returns the step with the given identifier.
// Returns ErrStepNotFound if no step has that identifier.
func (t Task) StepWithIdentifier(identifier string) (Step, error) {
	i, err := t.StepIndex(identifier)
	if err != nil {
		return Step{}, err
	}
	return t.Steps[i], nil
}
