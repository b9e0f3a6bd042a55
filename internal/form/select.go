package form

import (
	"time"

	"github.com/fieldstudy/formsource/pkg/types"
)

// SelectItemAt toggles selection of the choice row at the given index path
// and updates the owning question's answer. Single-choice questions keep at
// most one selection; selecting an exclusive choice clears the question's
// other selections, and selecting a normal choice clears a selected
// exclusive one. Re-selecting a selected row deselects it, which can revert
// the question to unanswered.
//
// Returns types.ErrIndexOutOfRange for invalid paths and
// types.ErrInvalidSelection when the row is not a choice row.
func (ds *DataSource) SelectItemAt(ip types.IndexPath) error {
	g, row, err := ds.locate(ip)
	if err != nil {
		return err
	}
	if g.items[row].Kind != types.ItemKindChoice {
		return types.ErrInvalidSelection
	}

	if g.items[row].Selected {
		g.items[row].Selected = false
	} else {
		switch {
		case g.question.AnswerType == types.AnswerTypeSingleChoice:
			for i := range g.items {
				g.items[i].Selected = false
			}
		case g.items[row].Choice.Exclusive:
			for i := range g.items {
				g.items[i].Selected = false
			}
		default:
			// Selecting a normal choice drops any exclusive selection.
			for i := range g.items {
				if g.items[i].Choice.Exclusive {
					g.items[i].Selected = false
				}
			}
		}
		g.items[row].Selected = true
	}

	g.applySelection()
	return nil
}

// SelectedIndexPaths returns the currently selected rows in index-path
// order. Returns an empty slice (not nil) when nothing is selected.
func (ds *DataSource) SelectedIndexPaths() []types.IndexPath {
	selected := []types.IndexPath{}
	for si, sec := range ds.sections {
		row := 0
		for _, g := range sec.groups {
			for i, item := range g.items {
				if item.Selected {
					selected = append(selected, types.IndexPath{Section: si, Row: row + i})
				}
			}
			row += len(g.items)
		}
	}
	return selected
}

// applySelection derives the group's answer from its selection state.
// A choice question with no selected rows reverts to unanswered.
func (g *itemGroup) applySelection() {
	values := []string{}
	for _, item := range g.items {
		if item.Selected {
			values = append(values, item.Choice.Value)
		}
	}

	if len(values) == 0 {
		g.answer = nil
		g.answered = false
		g.answeredAt = time.Time{}
		return
	}

	if g.question.AnswerType == types.AnswerTypeSingleChoice {
		g.answer = values[0]
	} else {
		g.answer = values
	}
	g.answered = true
	g.answeredAt = time.Now()
}

// syncSelection marks the rows matching the group's saved answer as
// selected. Used when the answer arrives through SaveAnswer rather than
// row taps.
func (g *itemGroup) syncSelection() {
	selected := make(map[string]bool)
	switch v := g.answer.(type) {
	case string:
		selected[v] = true
	case []string:
		for _, s := range v {
			selected[s] = true
		}
	}
	for i := range g.items {
		g.items[i].Selected = selected[g.items[i].Choice.Value]
	}
}
