package appstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/taskpane/internal/state"
)

func TestNew_DefaultsToOneColumn(t *testing.T) {
	reg := state.NewRegistry()
	s, err := New(reg)
	require.NoError(t, err)

	assert.Equal(t, OneColumn, s.Layout())
	assert.Equal(t, Document{Layout: OneColumn}, s.State())
	_, ok := reg.Lookup(Key)
	assert.True(t, ok)
}

func TestNew_WithoutRegistry(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, state.ErrNoRegistry)
}

func TestSetLayout_PathSet(t *testing.T) {
	reg := state.NewRegistry()
	s, err := New(reg)
	require.NoError(t, err)

	var got []state.Change
	reg.Subscribe(func(c state.Change) { got = append(got, c) })

	require.NoError(t, s.SetLayout(TwoColumnsMidExpanded))

	assert.Equal(t, TwoColumnsMidExpanded, s.Layout())
	assert.Equal(t, []state.Change{{Key: Key, Kind: state.ChangePath, Path: LayoutPath}}, got)
}

func TestMergeSet_Layout(t *testing.T) {
	reg := state.NewRegistry()
	s, err := New(reg)
	require.NoError(t, err)

	var kinds []state.ChangeKind
	s.Watch(LayoutPath, func(c state.Change) { kinds = append(kinds, c.Kind) })

	require.NoError(t, s.MergeSet(state.Patch{"layout": "TwoColumnsBeginExpanded"}))
	assert.Equal(t, TwoColumnsBeginExpanded, s.Layout())
	assert.Equal(t, []state.ChangeKind{state.ChangeMerge}, kinds)

	require.NoError(t, s.MergeSet(state.Patch{"layout": MidColumnFullScreen}))
	assert.Equal(t, MidColumnFullScreen, s.Layout())

	err = s.MergeSet(state.Patch{"layout": 2})
	assert.ErrorIs(t, err, state.ErrTypeMismatch)
	assert.Equal(t, MidColumnFullScreen, s.Layout())
}

func TestState_IsDetached(t *testing.T) {
	s, err := New(state.NewRegistry())
	require.NoError(t, err)

	snap := s.State()
	snap.Layout = MidColumnFullScreen
	assert.Equal(t, OneColumn, s.Layout())
}

func TestLayout(t *testing.T) {
	cases := []struct {
		layout  Layout
		name    string
		columns int
		detail  bool
	}{
		{OneColumn, "OneColumn", 1, false},
		{TwoColumnsBeginExpanded, "TwoColumnsBeginExpanded", 2, true},
		{TwoColumnsMidExpanded, "TwoColumnsMidExpanded", 2, true},
		{MidColumnFullScreen, "MidColumnFullScreen", 1, true},
		{Layout("wide"), "wide", 1, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.layout.String())
		assert.Equal(t, tc.columns, tc.layout.Columns(), tc.name)
		assert.Equal(t, tc.detail, tc.layout.ShowsDetail(), tc.name)
	}
}
