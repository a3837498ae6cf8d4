package state

import (
	"reflect"
	"strings"
	"sync"
)

// Store owns one typed document. Reads hand out deep copies; writes go through
// MergeSet, SetAt or Mutate and notify watchers and the registry synchronously,
// after the write lock has been released.
type Store[T any] struct {
	key string
	reg *Registry

	mu  sync.RWMutex
	doc T

	watchMu  sync.Mutex
	watchers []watcher
	nextID   int
}

type watcher struct {
	id   int
	path string
	fn   func(Change)
}

// New registers a store for doc under key. The initial document is copied, so
// the caller's value stays detached from the store.
func New[T any](key string, doc T, reg *Registry) (*Store[T], error) {
	if reg == nil {
		return nil, ErrNoRegistry
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, ErrEmptyKey
	}

	s := &Store[T]{
		key: key,
		reg: reg,
		doc: deepCopy(doc),
	}
	reg.Register(key, s)
	return s, nil
}

// Key returns the registration key.
func (s *Store[T]) Key() string {
	return s.key
}

// State returns a deep copy of the current document. Writes to the returned
// value never reach the store.
func (s *Store[T]) State() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return deepCopy(s.doc)
}

// Document implements Model.
func (s *Store[T]) Document() any {
	return s.State()
}

// Read runs fn against the live document under the read lock. fn must not
// retain or modify doc; it exists for lookups that would otherwise copy the
// whole document.
func (s *Store[T]) Read(fn func(doc *T)) {
	if fn == nil {
		return
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(&s.doc)
}

// MergeSet deep-merges patch into the document and emits one coarse change.
// The merge runs on a copy: on error the document is left untouched.
func (s *Store[T]) MergeSet(patch Patch) error {
	s.mu.Lock()
	next := deepCopy(s.doc)
	if err := mergeInto(reflect.ValueOf(&next).Elem(), patch, ""); err != nil {
		s.mu.Unlock()
		return err
	}
	s.doc = next
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeMerge, Path: "/"})
	return nil
}

// SetAt assigns value to the single field addressed by path and emits a
// change scoped to that path. Every segment must already exist.
func (s *Store[T]) SetAt(path string, value any) error {
	segs, err := splitPath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return notFound(path, "")
	}

	s.mu.Lock()
	err = setPath(reflect.ValueOf(&s.doc).Elem(), segs, 0, value, path)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.emit(Change{Kind: ChangePath, Path: joinPath(segs)})
	return nil
}

// SetAtFunc is SetAt with the path chosen by resolve, which reads the live
// document under the same write lock as the assignment. When resolve reports
// false nothing is written and nobody is notified.
func (s *Store[T]) SetAtFunc(resolve func(doc *T) (path string, ok bool), value any) error {
	if resolve == nil {
		return nil
	}

	s.mu.Lock()
	path, ok := resolve(&s.doc)
	if !ok {
		s.mu.Unlock()
		return nil
	}
	segs, err := splitPath(path)
	if err == nil && len(segs) == 0 {
		err = notFound(path, "")
	}
	if err == nil {
		err = setPath(reflect.ValueOf(&s.doc).Elem(), segs, 0, value, path)
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.emit(Change{Kind: ChangePath, Path: joinPath(segs)})
	return nil
}

// Mutate edits the live document in place for changes a single path cannot
// express (insert, remove, reorder). fn reports whether it changed anything;
// only then is a coarse refresh emitted.
func (s *Store[T]) Mutate(fn func(doc *T) bool) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	changed := fn(&s.doc)
	s.mu.Unlock()

	if changed {
		s.emit(Change{Kind: ChangeRefresh, Path: "/"})
	}
}

// Watch registers fn for changes affecting path ("" or "/" for everything).
// The returned func removes the watcher and is safe to call more than once.
func (s *Store[T]) Watch(path string, fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	s.watchMu.Lock()
	id := s.nextID
	s.nextID++
	s.watchers = append(s.watchers, watcher{id: id, path: normalizePath(path), fn: fn})
	s.watchMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.watchMu.Lock()
			defer s.watchMu.Unlock()
			for i, w := range s.watchers {
				if w.id == id {
					s.watchers = append(s.watchers[:i], s.watchers[i+1:]...)
					return
				}
			}
		})
	}
}

func (s *Store[T]) emit(c Change) {
	c.Key = s.key
	s.reg.logger.Debug("store changed", "key", c.Key, "kind", c.Kind.String(), "path", c.Path)

	s.watchMu.Lock()
	matched := make([]func(Change), 0, len(s.watchers))
	for _, w := range s.watchers {
		if c.Affects(w.path) {
			matched = append(matched, w.fn)
		}
	}
	s.watchMu.Unlock()

	for _, fn := range matched {
		fn(c)
	}
	s.reg.publish(c)
}
