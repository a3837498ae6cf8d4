package ui

import (
	"strconv"

	"github.com/five82/taskpane/internal/appstate"
	"github.com/five82/taskpane/internal/state"
	"github.com/five82/taskpane/internal/tasks"
)

// bindings is the view's cache of store data. It subscribes to the registry
// and records what each change invalidated; sync re-reads only that.
//
//	/items/{i}/...      row i
//	/selectedTask       editor inputs reload
//	/selectedTask/...   editor preview only (the inputs already hold the value)
//	coarse task change  every row and the editor
//	any app change      layout
type bindings struct {
	tasks *tasks.Store
	view  *appstate.Store

	rows     []tasks.Item
	selected *tasks.Item
	layout   appstate.Layout

	allRows     bool
	dirtyRows   map[int]struct{}
	reloadInput bool
	draft       bool
	layoutDirty bool

	// rowReads counts row re-evaluations.
	rowReads int

	cancel func()
}

func newBindings(reg *state.Registry, ts *tasks.Store, vs *appstate.Store) *bindings {
	b := &bindings{
		tasks:       ts,
		view:        vs,
		dirtyRows:   make(map[int]struct{}),
		allRows:     true,
		reloadInput: true,
		layoutDirty: true,
	}
	b.cancel = reg.Subscribe(b.invalidate)
	return b
}

func (b *bindings) invalidate(c state.Change) {
	switch c.Key {
	case tasks.Key:
		if c.Kind.Coarse() {
			b.allRows = true
			b.reloadInput = true
			return
		}
		segs := c.Segments()
		if len(segs) == 0 {
			return
		}
		switch segs[0] {
		case "items":
			if len(segs) < 2 {
				b.allRows = true
				return
			}
			i, err := strconv.Atoi(segs[1])
			if err != nil {
				b.allRows = true
				return
			}
			b.dirtyRows[i] = struct{}{}
		case "selectedTask":
			if len(segs) == 1 {
				b.reloadInput = true
			} else {
				b.draft = true
			}
		}
	case appstate.Key:
		b.layoutDirty = true
	}
}

// sync re-reads invalidated data. It reports whether the editor inputs must
// be reloaded from the selected task.
func (b *bindings) sync() (reloadInput bool) {
	switch {
	case b.allRows:
		doc := b.tasks.State()
		b.rows = doc.Items
		b.selected = doc.SelectedTask
		b.rowReads += len(doc.Items)
	case len(b.dirtyRows) > 0:
		for i := range b.dirtyRows {
			if item, ok := b.tasks.At(i); ok && i < len(b.rows) {
				b.rows[i] = item
				b.rowReads++
			}
		}
	}
	if !b.allRows && (b.reloadInput || b.draft) {
		b.selected = b.tasks.Selected()
	}
	if b.layoutDirty {
		b.layout = b.view.Layout()
	}

	reloadInput = b.reloadInput
	b.allRows, b.reloadInput, b.draft, b.layoutDirty = false, false, false, false
	clear(b.dirtyRows)
	return reloadInput
}

func (b *bindings) close() {
	if b.cancel != nil {
		b.cancel()
	}
}

// editorOpen reports whether the layout shows the editor and there is
// something to edit.
func (b *bindings) editorOpen() bool {
	return b.layout.ShowsDetail() && b.selected != nil
}
