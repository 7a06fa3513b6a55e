// Package registry provides a global registry for environment presets.
// Environments register themselves in init() functions, allowing the game
// and the CLI to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/parallax-runner/internal/parallax"
)

// Environment is a named set of parallax layers.
type Environment interface {
	// ID returns a unique identifier (e.g., "forest").
	// Used by configuration, CLI flags and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Layers returns a fresh copy of the environment's layers.
	Layers() []parallax.Layer
}

// EnvironmentInfo contains metadata about a registered environment.
type EnvironmentInfo struct {
	ID     string
	Title  string
	Layers int
}

// Factory is a function that creates a new instance of an environment.
type Factory func() Environment

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]EnvironmentInfo)
	mu        sync.RWMutex
)

// Register adds an environment factory to the registry.
// Typically called from an init() function.
// Panics if an environment with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: environment %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	e := f()
	infos[id] = EnvironmentInfo{ID: id, Title: e.Title(), Layers: len(e.Layers())}
}

// List returns information about all registered environments, sorted by ID.
func List() []EnvironmentInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]EnvironmentInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates an environment by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Environment, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown environment %q", id)
	}

	return f(), nil
}

// Exists checks if an environment with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
