// Package appstate holds view-level state that is not task data: the current
// pane layout.
package appstate

import "github.com/five82/taskpane/internal/state"

// Key is the registration key of the application view store.
const Key = "app"

// LayoutPath is the document path of the layout mode.
const LayoutPath = "/layout"

// Layout is the two-pane layout mode. Values are the mode names, so a patch
// can set them as plain strings.
type Layout string

const (
	OneColumn               Layout = "OneColumn"
	TwoColumnsBeginExpanded Layout = "TwoColumnsBeginExpanded"
	TwoColumnsMidExpanded   Layout = "TwoColumnsMidExpanded"
	MidColumnFullScreen     Layout = "MidColumnFullScreen"
)

func (l Layout) String() string {
	return string(l)
}

// Columns is the number of visible panes.
func (l Layout) Columns() int {
	switch l {
	case TwoColumnsBeginExpanded, TwoColumnsMidExpanded:
		return 2
	default:
		return 1
	}
}

// ShowsDetail reports whether the layout has room for the detail pane.
// Unknown modes fall back to the single list column.
func (l Layout) ShowsDetail() bool {
	switch l {
	case TwoColumnsBeginExpanded, TwoColumnsMidExpanded, MidColumnFullScreen:
		return true
	default:
		return false
	}
}

// Document is the application view document.
type Document struct {
	Layout Layout `json:"layout"`
}

// Store is the application view domain store.
type Store struct {
	st *state.Store[Document]
}

// New registers the view store with the one-column default.
func New(reg *state.Registry) (*Store, error) {
	st, err := state.New(Key, Document{Layout: OneColumn}, reg)
	if err != nil {
		return nil, err
	}
	return &Store{st: st}, nil
}

func (s *Store) Key() string { return s.st.Key() }

func (s *Store) State() Document { return s.st.State() }

// Layout returns the current layout mode.
func (s *Store) Layout() Layout {
	var l Layout
	s.st.Read(func(doc *Document) { l = doc.Layout })
	return l
}

// SetLayout path-sets the layout mode.
func (s *Store) SetLayout(mode Layout) error {
	return s.st.SetAt(LayoutPath, mode)
}

// MergeSet merges a partial document. See state.Store.MergeSet.
func (s *Store) MergeSet(patch state.Patch) error {
	return s.st.MergeSet(patch)
}

// Watch observes changes under path.
func (s *Store) Watch(path string, fn func(state.Change)) (cancel func()) {
	return s.st.Watch(path, fn)
}
