package verifier

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Registry maps key type names to key types so verifiers can be built from a
// name alone. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]KeyType
}

// DefaultRegistry is used by NewFromName unless WithRegistry is given.
var DefaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]KeyType)}
}

// Register adds kt under its TypeName.
func (r *Registry) Register(kt KeyType) error {
	if kt == nil || kt.TypeName() == "" {
		return fmt.Errorf("%w: key type must have a name", ErrInvalidKeyType)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	name := kt.TypeName()
	if _, exists := r.types[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateKeyType, name)
	}
	r.types[name] = kt
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kt KeyType) {
	if err := r.Register(kt); err != nil {
		panic(err)
	}
}

// Lookup returns the key type registered under name.
func (r *Registry) Lookup(name string) (KeyType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kt, ok := r.types[name]
	return kt, ok
}

// Names returns the registered names in lexical order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.types))
}

// Register adds kt to DefaultRegistry.
func Register(kt KeyType) error { return DefaultRegistry.Register(kt) }

// MustRegister adds kt to DefaultRegistry and panics on error.
func MustRegister(kt KeyType) { DefaultRegistry.MustRegister(kt) }
