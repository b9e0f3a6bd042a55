package asyncaction

import "github.com/fieldstudy/formsource/pkg/types"

// Window is an async action configuration resolved onto a task's step list:
// the action records from when the step at StartIndex is displayed until the
// step at StopIndex is dismissed.
type Window struct {
	Config     types.AsyncActionConfiguration
	StartIndex int
	StopIndex  int
}

// ResolveWindows maps every configuration of the task onto its ordered step
// list. An empty start identifier resolves to the first step; an empty stop
// identifier resolves to the last step, so a configuration with neither
// spans the whole task.
//
// Returns types.ErrStepNotFound for references to unknown steps and
// types.ErrInvalidWindow when a stop step precedes its start step.
func ResolveWindows(task types.Task) ([]Window, error) {
	windows := make([]Window, 0, len(task.AsyncActions))
	for _, config := range task.AsyncActions {
		w := Window{Config: config, StartIndex: 0, StopIndex: len(task.Steps) - 1}

		if config.StartStepIdentifier != "" {
			i, err := task.StepIndex(config.StartStepIdentifier)
			if err != nil {
				return nil, err
			}
			w.StartIndex = i
		}
		if config.StopStepIdentifier != "" {
			i, err := task.StepIndex(config.StopStepIdentifier)
			if err != nil {
				return nil, err
			}
			w.StopIndex = i
		}
		if w.StopIndex < w.StartIndex {
			return nil, types.ErrInvalidWindow
		}
		windows = append(windows, w)
	}
	return windows, nil
}

// Contains reports whether the step at the given index falls inside the
// window.
func (w Window) Contains(stepIndex int) bool {
	return stepIndex >= w.StartIndex && stepIndex <= w.StopIndex
}

// StartingAt returns the configurations whose window starts at the step
// with the given identifier. Returns types.ErrStepNotFound for unknown
// step identifiers.
func StartingAt(task types.Task, stepIdentifier string) ([]types.AsyncActionConfiguration, error) {
	return filterWindows(task, stepIdentifier, func(w Window, i int) bool {
		return w.StartIndex == i
	})
}

// StoppingAt returns the configurations whose window stops at the step with
// the given identifier. Returns types.ErrStepNotFound for unknown step
// identifiers.
func StoppingAt(task types.Task, stepIdentifier string) ([]types.AsyncActionConfiguration, error) {
	return filterWindows(task, stepIdentifier, func(w Window, i int) bool {
		return w.StopIndex == i
	})
}

// ActiveAt returns the configurations whose window contains the step with
// the given identifier. Returns types.ErrStepNotFound for unknown step
// identifiers.
func ActiveAt(task types.Task, stepIdentifier string) ([]types.AsyncActionConfiguration, error) {
	return filterWindows(task, stepIdentifier, Window.Contains)
}

func filterWindows(task types.Task, stepIdentifier string, match func(Window, int) bool) ([]types.AsyncActionConfiguration, error) {
	stepIndex, err := task.StepIndex(stepIdentifier)
	if err != nil {
		return nil, err
	}
	windows, err := ResolveWindows(task)
	if err != nil {
		return nil, err
	}
	out := []types.AsyncActionConfiguration{}
	for _, w := range windows {
		if match(w, stepIndex) {
			out = append(out, w.Config)
		}
	}
	return out, nil
}
