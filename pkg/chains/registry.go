package chains

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sigweihq/walletlink/pkg/constants"
)

// Registry maps known chain names to chain identifiers.
// Lookups are case-insensitive: names are uppercased before matching,
// which mirrors how wallet identity hints are normalized.
type Registry struct {
	ids map[string]ChainID
	mu  sync.RWMutex
}

var (
	globalRegistry     *Registry
	globalRegistryOnce sync.Once
)

// NewRegistry creates an empty chain registry
func NewRegistry() *Registry {
	return &Registry{
		ids: make(map[string]ChainID),
	}
}

// InitGlobalRegistry initializes the global chain registry with the
// built-in chain table. Safe to call repeatedly and concurrently.
func InitGlobalRegistry() *Registry {
	globalRegistryOnce.Do(func() {
		globalRegistry = NewRegistry()
		for name, id := range constants.ChainNameToID {
			globalRegistry.Register(name, MustChainID(id))
		}
	})
	return globalRegistry
}

// GetGlobalRegistry returns the global chain registry (returns nil if not initialized)
func GetGlobalRegistry() *Registry {
	return globalRegistry
}

// Register registers a chain id under a name (uppercased).
// Registering an existing name replaces the previous entry (idempotent).
func (r *Registry) Register(name string, id ChainID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ids[strings.ToUpper(name)] = id
	return nil
}

// Get retrieves a chain id by name, uppercased before matching
func (r *Registry) Get(name string) (ChainID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.ids[strings.ToUpper(name)]
	if !exists {
		return ChainID{}, fmt.Errorf("no chain registered for name: %s", name)
	}

	return id, nil
}

// IsKnown checks if a chain name is registered
func (r *Registry) IsKnown(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.ids[strings.ToUpper(name)]
	return exists
}

// KnownChains returns a list of all registered chain names
func (r *Registry) KnownChains() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.ids))
	for name := range r.ids {
		names = append(names, name)
	}
	return names
}

// Unregister removes a chain entry (useful for testing)
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.ids, strings.ToUpper(name))
}

// ResetGlobalRegistry resets the global registry (useful for testing)
func ResetGlobalRegistry() {
	globalRegistry = nil
	globalRegistryOnce = sync.Once{}
}
