package provider

import (
	"fmt"
	"sync"
)

// Plugin registration is the only process-wide shared state the adapter
// touches. Registration is idempotent: repeat registrations of the same
// provider name are no-ops, so per-operation session establishment can
// register unconditionally without corrupting provider state.

var (
	pluginsMu sync.RWMutex
	plugins   = make(map[string]WalletProvider)
)

// RegisterPlugin registers a wallet provider under its name. The first
// registration wins; repeat registrations are ignored.
func RegisterPlugin(p WalletProvider) {
	pluginsMu.Lock()
	defer pluginsMu.Unlock()

	if _, exists := plugins[p.Name()]; exists {
		return
	}
	plugins[p.Name()] = p
}

// Plugin retrieves a registered provider by name
func Plugin(name string) (WalletProvider, error) {
	pluginsMu.RLock()
	defer pluginsMu.RUnlock()

	p, exists := plugins[name]
	if !exists {
		return nil, fmt.Errorf("no wallet provider registered for name: %s", name)
	}
	return p, nil
}

// RegisteredPlugins returns the names of all registered providers
func RegisteredPlugins() []string {
	pluginsMu.RLock()
	defer pluginsMu.RUnlock()

	names := make([]string, 0, len(plugins))
	for name := range plugins {
		names = append(names, name)
	}
	return names
}

// ResetPlugins clears the plugin table (useful for testing)
func ResetPlugins() {
	pluginsMu.Lock()
	defer pluginsMu.Unlock()

	plugins = make(map[string]WalletProvider)
}
