package state

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Model is what a store publishes to the registry.
type Model interface {
	Key() string
	Document() any
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger routes registry and store logging to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// Registry is the host-side sink stores register with and publish changes to.
// It is constructed once at startup and handed to each store explicitly.
type Registry struct {
	logger *slog.Logger

	mu        sync.RWMutex
	models    map[string]Model
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(Change)
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger: slog.New(slog.DiscardHandler),
		models: make(map[string]Model),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Register publishes m under key. The last registration for a key wins;
// duplicates are a caller error and are only logged.
func (r *Registry) Register(key string, m Model) {
	key = strings.TrimSpace(key)
	r.mu.Lock()
	_, dup := r.models[key]
	r.models[key] = m
	r.mu.Unlock()

	if dup {
		r.logger.Warn("duplicate store key, replacing previous registration", "key", key)
		return
	}
	r.logger.Debug("store registered", "key", key)
}

// Lookup returns the model registered under key.
func (r *Registry) Lookup(key string) (Model, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.models[strings.TrimSpace(key)]
	return m, ok
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.models))
	for k := range r.models {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Subscribe registers fn for every change of every registered store.
func (r *Registry) Subscribe(fn func(Change)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners = append(r.listeners, listener{id: id, fn: fn})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, l := range r.listeners {
				if l.id == id {
					r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (r *Registry) publish(c Change) {
	r.mu.RLock()
	fns := make([]func(Change), len(r.listeners))
	for i, l := range r.listeners {
		fns[i] = l.fn
	}
	r.mu.RUnlock()

	for _, fn := range fns {
		fn(c)
	}
}
