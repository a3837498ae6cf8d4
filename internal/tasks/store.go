package tasks

import (
	"cmp"
	"slices"

	"github.com/five82/taskpane/internal/state"
)

// Key is the registration key of the task store.
const Key = "task"

// Store is the task collection domain store. Every id-based operation locates
// its target by a linear scan over the current items, so an index is never
// reused after the collection changed shape.
type Store struct {
	st *state.Store[Document]
}

// New creates the task store with the seed collection and registers it.
func New(reg *state.Registry) (*Store, error) {
	return NewWith(reg, Seed())
}

// NewWith creates the task store with an explicit initial document.
func NewWith(reg *state.Registry, doc Document) (*Store, error) {
	st, err := state.New(Key, doc, reg)
	if err != nil {
		return nil, err
	}
	return &Store{st: st}, nil
}

// Key returns the registration key.
func (s *Store) Key() string { return s.st.Key() }

// State returns a detached snapshot of the collection.
func (s *Store) State() Document { return s.st.State() }

// Watch observes changes under path. See state.Store.Watch.
func (s *Store) Watch(path string, fn func(state.Change)) (cancel func()) {
	return s.st.Watch(path, fn)
}

// Find returns a copy of the item with id.
func (s *Store) Find(id string) (Item, bool) {
	var (
		item  Item
		found bool
	)
	s.st.Read(func(doc *Document) {
		if i := indexOf(doc.Items, id); i >= 0 {
			item, found = doc.Items[i], true
		}
	})
	return item, found
}

// At returns a copy of the item at index i.
func (s *Store) At(i int) (Item, bool) {
	var (
		item Item
		ok   bool
	)
	s.st.Read(func(doc *Document) {
		if i >= 0 && i < len(doc.Items) {
			item, ok = doc.Items[i], true
		}
	})
	return item, ok
}

// Len returns the number of items.
func (s *Store) Len() int {
	n := 0
	s.st.Read(func(doc *Document) { n = len(doc.Items) })
	return n
}

// Selected returns a copy of the selected task, or nil.
func (s *Store) Selected() *Item {
	var sel *Item
	s.st.Read(func(doc *Document) {
		if doc.SelectedTask != nil {
			c := *doc.SelectedTask
			sel = &c
		}
	})
	return sel
}

// pathOf resolves the path below the item with id. The lookup runs under the
// store's write lock so a concurrent remove cannot shift the index.
func pathOf(id string, path func(i int) string) func(doc *Document) (string, bool) {
	return func(doc *Document) (string, bool) {
		i := indexOf(doc.Items, id)
		if i < 0 {
			return "", false
		}
		return path(i), true
	}
}

// setField path-sets one field of the item with id. Unknown ids are a no-op.
func (s *Store) setField(id, field string, value any) error {
	return s.st.SetAtFunc(pathOf(id, func(i int) string {
		return itemFieldPath(i, field)
	}), value)
}

func (s *Store) SetTaskTitle(id, title string) error {
	return s.setField(id, "title", title)
}

func (s *Store) SetTaskDescription(id, description string) error {
	return s.setField(id, "description", description)
}

func (s *Store) SetTaskStatus(id string, status Status) error {
	return s.setField(id, "status", status)
}

// SetTaskPriority stores p as given. Callers reject negative values.
func (s *Store) SetTaskPriority(id string, p int) error {
	return s.setField(id, "priority", p)
}

// SetSelectedTask selects a detached copy of item, or clears the selection
// when item is nil. The copy never aliases an element of Items.
func (s *Store) SetSelectedTask(item *Item) error {
	if item == nil {
		return s.st.SetAt(SelectedPath, nil)
	}
	return s.st.SetAt(SelectedPath, *item)
}

// AddTask appends item. The caller guarantees a unique, non-empty id.
func (s *Store) AddTask(item Item) {
	s.st.Mutate(func(doc *Document) bool {
		doc.Items = append(doc.Items, item)
		return true
	})
}

// RemoveTask removes the item with id. Removing an unknown id changes nothing
// and notifies nobody.
func (s *Store) RemoveTask(id string) {
	s.st.Mutate(func(doc *Document) bool {
		i := indexOf(doc.Items, id)
		if i < 0 {
			return false
		}
		doc.Items = slices.Delete(doc.Items, i, i+1)
		return true
	})
}

// ReplaceItem commits every field of item onto the task with id in one
// assignment. The stored id is kept regardless of item.ID.
func (s *Store) ReplaceItem(id string, item Item) error {
	item.ID = id
	return s.st.SetAtFunc(pathOf(id, ItemPath), item)
}

func byPriority(a, b Item) int {
	if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortByPriority orders items by descending priority, then id. An already
// ordered collection is left alone without a notification.
func (s *Store) SortByPriority() {
	s.st.Mutate(func(doc *Document) bool {
		if slices.IsSortedFunc(doc.Items, byPriority) {
			return false
		}
		slices.SortStableFunc(doc.Items, byPriority)
		return true
	})
}

// Draft setters edit the selected task only. They fail with
// state.ErrPathNotFound when nothing is selected.

func (s *Store) SetDraftTitle(title string) error {
	return s.st.SetAt(selectedFieldPath("title"), title)
}

func (s *Store) SetDraftDescription(description string) error {
	return s.st.SetAt(selectedFieldPath("description"), description)
}

func (s *Store) SetDraftStatus(status Status) error {
	return s.st.SetAt(selectedFieldPath("status"), status)
}

func (s *Store) SetDraftPriority(p int) error {
	return s.st.SetAt(selectedFieldPath("priority"), p)
}
