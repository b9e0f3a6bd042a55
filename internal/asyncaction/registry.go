// Package asyncaction resolves declarative async action configurations
// against a task's ordered step list. Configurations describe when a
// background recorder should run; actually running one is the job of a
// runner outside this module.
package asyncaction

import (
	"sort"

	"github.com/fieldstudy/formsource/pkg/types"
)

// Registry holds the async action configurations of one task, keyed by
// identifier.
type Registry struct {
	byID  map[string]types.AsyncActionConfiguration
	order []string
}

// NewRegistry creates a registry holding the task's configurations.
// Duplicate identifiers return types.ErrDuplicateIdentifier even though a
// validated task cannot contain them.
func NewRegistry(task types.Task) (*Registry, error) {
	r := &Registry{byID: make(map[string]types.AsyncActionConfiguration)}
	for _, a := range task.AsyncActions {
		if err := r.Add(a); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add registers a configuration. Returns the configuration's own validation
// error for malformed values and types.ErrDuplicateIdentifier when the
// identifier is already registered.
func (r *Registry) Add(config types.AsyncActionConfiguration) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if _, ok := r.byID[config.Identifier]; ok {
		return types.ErrDuplicateIdentifier
	}
	r.byID[config.Identifier] = config
	r.order = append(r.order, config.Identifier)
	return nil
}

// Get returns the configuration with the given identifier.
// Returns types.ErrActionNotFound if none is registered.
func (r *Registry) Get(identifier string) (types.AsyncActionConfiguration, error) {
	config, ok := r.byID[identifier]
	if !ok {
		return types.AsyncActionConfiguration{}, types.ErrActionNotFound
	}
	return config, nil
}

// List returns all registered configurations sorted by identifier.
// Returns an empty slice (not nil) when the registry is empty.
func (r *Registry) List() []types.AsyncActionConfiguration {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	sort.Strings(ids)

	out := make([]types.AsyncActionConfiguration, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.byID[id])
	}
	return out
}
