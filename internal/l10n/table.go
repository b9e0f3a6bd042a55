// Package l10n provides the key/value string table backing user-facing
// text. A small English table is built in; callers layer overrides on top
// of it from flat YAML files.
package l10n

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// builtin is the default English table. Keys follow a dotted
// component.purpose convention.
var builtin = map[string]string{
	"form.answer_required":   "An answer is required",
	"form.answer_invalid":    "This answer is not valid",
	"form.selection_invalid": "This selection is not valid",
	"form.skip":              "Skip this question",
	"form.none_of_the_above": "None of the above",
	"form.other":             "Other",
	"step.next":              "Next",
	"step.back":              "Back",
	"step.done":              "Done",
	"step.cancel":            "Cancel",
	"step.optional":          "Optional",
	"task.completed":         "Activity completed",
	"permission.motion":      "Motion and fitness access is needed to record movement during this activity.",
	"permission.location":    "Location access is needed to record where this activity takes place.",
	"permission.microphone":  "Microphone access is needed to record audio during this activity.",
	"permission.camera":      "Camera access is needed during this activity.",
	"permission.heartrate":   "Heart rate access is needed to record your pulse during this activity.",
	"boolean.yes":            "Yes",
	"boolean.no":             "No",
}

// Table maps string keys to display text. Lookups fall back to the built-in
// table and finally to the key itself, so a missing entry never blanks the
// UI. Like the rest of the data layer, a Table is UI-thread state and not
// safe for concurrent mutation.
type Table struct {
	overrides map[string]string
}

// NewTable creates a table with no overrides.
func NewTable() *Table {
	return &Table{overrides: make(map[string]string)}
}

// Lookup returns the text for the given key: override first, builtin next,
// and the key itself when neither has an entry.
func (t *Table) Lookup(key string) string {
	if v, ok := t.overrides[key]; ok {
		return v
	}
	if v, ok := builtin[key]; ok {
		return v
	}
	return key
}

// Has reports whether the key resolves to an entry (override or builtin).
func (t *Table) Has(key string) bool {
	if _, ok := t.overrides[key]; ok {
		return true
	}
	_, ok := builtin[key]
	return ok
}

// Merge layers the given entries over the current overrides. Later merges
// win on key collisions.
func (t *Table) Merge(entries map[string]string) {
	for k, v := range entries {
		t.overrides[k] = v
	}
}

// LoadFile merges a flat YAML map of key/value pairs from path.
func (t *Table) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read strings file: %w", err)
	}

	entries := map[string]string{}
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse strings file: %w", err)
	}

	t.Merge(entries)
	return nil
}
