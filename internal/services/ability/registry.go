package ability

import (
	"sync"

	"github.com/xreatlabs/headsteal/internal/domain/head"
	apperrors "github.com/xreatlabs/headsteal/internal/errors"
)

// Registration pairs an ability implementation with its descriptor
type Registration struct {
	Descriptor head.AbilityDescriptor
	Impl       Ability
}

// Registry maps ability type ids to registered implementations.
// Registration happens once at startup; lookups are read-only after that.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Registration
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Registration),
	}
}

// Register adds an ability. A duplicate type id is a configuration bug and
// is rejected, never silently overwritten.
func (r *Registry) Register(desc head.AbilityDescriptor, impl Ability) error {
	if desc.Type == "" {
		return apperrors.InvalidArgument("ability type is required")
	}
	if impl == nil {
		return apperrors.InvalidArgument("ability implementation is required")
	}
	if impl.Key() != desc.Type {
		return apperrors.InvalidArgumentf("ability key '%s' does not match descriptor type '%s'", impl.Key(), desc.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[desc.Type]; exists {
		return apperrors.AlreadyExistsf("ability type '%s' is already registered", desc.Type)
	}

	r.entries[desc.Type] = Registration{Descriptor: desc, Impl: impl}
	return nil
}

// Lookup retrieves a registration by type id
func (r *Registry) Lookup(abilityType string) (Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, exists := r.entries[abilityType]
	return reg, exists
}

// Count returns the number of registered abilities
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// List returns all registered type ids
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	return keys
}
