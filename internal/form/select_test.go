package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldstudy/formsource/pkg/types"
)

func TestSelectItemAtInvalidTargets(t *testing.T) {
	ds := newCheckin(t)

	assert.ErrorIs(t, ds.SelectItemAt(types.IndexPath{Section: 9, Row: 0}), types.ErrIndexOutOfRange)
	assert.ErrorIs(t, ds.SelectItemAt(types.IndexPath{Section: 0, Row: 6}), types.ErrIndexOutOfRange)
	assert.ErrorIs(t, ds.SelectItemAt(types.IndexPath{Section: 1, Row: 0}), types.ErrInvalidSelection,
		"entry rows cannot be selected")
}

func TestSelectItemToggleSingleChoice(t *testing.T) {
	ds := newCheckin(t)
	good := types.IndexPath{Section: 0, Row: 0}
	bad := types.IndexPath{Section: 0, Row: 2}

	require.NoError(t, ds.SelectItemAt(good))
	got, answered, err := ds.Answer("mood")
	require.NoError(t, err)
	assert.True(t, answered)
	assert.Equal(t, "good", got)

	// Selecting another row replaces the selection.
	require.NoError(t, ds.SelectItemAt(bad))
	got, _, _ = ds.Answer("mood")
	assert.Equal(t, "bad", got)
	assert.Equal(t, []types.IndexPath{bad}, ds.SelectedIndexPaths())

	// Re-selecting the selected row deselects and reverts to unanswered.
	require.NoError(t, ds.SelectItemAt(bad))
	_, answered, _ = ds.Answer("mood")
	assert.False(t, answered)
	assert.Empty(t, ds.SelectedIndexPaths())
}

func TestSelectItemToggleMultipleChoice(t *testing.T) {
	ds := newCheckin(t)
	headache := types.IndexPath{Section: 0, Row: 3}
	nausea := types.IndexPath{Section: 0, Row: 4}

	require.NoError(t, ds.SelectItemAt(headache))
	require.NoError(t, ds.SelectItemAt(nausea))
	got, answered, err := ds.Answer("symptoms")
	require.NoError(t, err)
	assert.True(t, answered)
	assert.Equal(t, []string{"headache", "nausea"}, got)

	// Deselecting one member shrinks the answer.
	require.NoError(t, ds.SelectItemAt(headache))
	got, _, _ = ds.Answer("symptoms")
	assert.Equal(t, []string{"nausea"}, got)

	// Deselecting the last member reverts the question to unanswered.
	require.NoError(t, ds.SelectItemAt(nausea))
	_, answered, _ = ds.Answer("symptoms")
	assert.False(t, answered)
}

func TestSelectExclusiveChoiceClearsOthers(t *testing.T) {
	ds := newCheckin(t)
	headache := types.IndexPath{Section: 0, Row: 3}
	nausea := types.IndexPath{Section: 0, Row: 4}
	none := types.IndexPath{Section: 0, Row: 5}

	require.NoError(t, ds.SelectItemAt(headache))
	require.NoError(t, ds.SelectItemAt(nausea))
	require.NoError(t, ds.SelectItemAt(none))

	got, _, err := ds.Answer("symptoms")
	require.NoError(t, err)
	assert.Equal(t, []string{"none"}, got)
	assert.Equal(t, []types.IndexPath{none}, ds.SelectedIndexPaths())

	// Picking a normal choice afterwards drops the exclusive one.
	require.NoError(t, ds.SelectItemAt(headache))
	got, _, _ = ds.Answer("symptoms")
	assert.Equal(t, []string{"headache"}, got)
}

func TestSelectionsDoNotCrossGroups(t *testing.T) {
	ds := newCheckin(t)

	require.NoError(t, ds.SelectItemAt(types.IndexPath{Section: 0, Row: 0}))
	require.NoError(t, ds.SelectItemAt(types.IndexPath{Section: 0, Row: 3}))

	// Mood keeps its selection when symptoms change.
	require.NoError(t, ds.SelectItemAt(types.IndexPath{Section: 0, Row: 5}))
	got, _, err := ds.Answer("mood")
	require.NoError(t, err)
	assert.Equal(t, "good", got)
}
