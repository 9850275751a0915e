package host

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/hasbyte1/go-macro-collections/collections"
)

// Factory creates a new, empty object of a registered type.
type Factory func() Object

// Registry is a thread-safe table of declarable types.
//
// Type names are case-insensitive. Cursor types are not registered: they
// are only produced by member calls on collections.
//
// # Thread safety
//
// All Registry methods are safe for concurrent use by multiple goroutines.
// A [sync.RWMutex] serialises writes (Register, Unregister) while allowing
// concurrent reads (New, Has, Types).
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// NewDefaultRegistry creates a Registry with the five collection types
// registered: list, map, set, stack and queue.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register("list", func() Object { return NewList(collections.NewList()) })
	_ = r.Register("map", func() Object { return NewMap(collections.NewMap()) })
	_ = r.Register("set", func() Object { return NewSet(collections.NewSet()) })
	_ = r.Register("stack", func() Object { return NewStack(collections.NewStack()) })
	_ = r.Register("queue", func() Object { return NewQueue(collections.NewQueue()) })
	return r
}

// Register adds or replaces the factory for name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return ErrEmptyTypeName
	}
	if f == nil {
		return ErrNilFactory
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[strings.ToLower(name)] = f
	return nil
}

// Unregister removes name and reports whether it was registered.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := strings.ToLower(name)
	if _, ok := r.factories[key]; !ok {
		return false
	}
	delete(r.factories, key)
	return true
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[strings.ToLower(name)]
	return ok
}

// New creates an object of the named type, or returns [ErrUnknownType].
func (r *Registry) New(name string) (Object, error) {
	r.mu.RLock()
	f, ok := r.factories[strings.ToLower(name)]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return f(), nil
}

// Types returns the registered type names in sorted order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
