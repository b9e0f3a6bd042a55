// Package form provides the public API for form step data sources. It
// exposes the factory function while keeping the table model implementation
// internal.
package form

import (
	"github.com/fieldstudy/formsource/internal/form"
	"github.com/fieldstudy/formsource/pkg/types"
)

// New creates a data source for the given form step. The data source is
// ready to use immediately and should live exactly as long as the step is
// on screen.
//
// Example:
//
//	ds, err := form.New(step)
//	if err != nil { ... }
//	ds.SaveAnswer("mood", "good")
//	result := ds.Result()
//
// Returns types.ErrNotFormStep when the step is not a form step.
func New(step types.Step) (types.DataSource, error) {
	return form.NewDataSource(step)
}
