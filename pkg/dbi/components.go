package dbi

import "sync"

// DriverFunc constructs a Driver from zero or more implementation-defined
// configuration arguments. It is the callable binding a driver package
// exports under the resolver's naming convention.
type DriverFunc func(args ...interface{}) (Driver, error)

// Component is the exported namespace of a loaded driver package: an
// identity plus the callable bindings it exports. Driver packages register a
// Component from their init function, so importing the package is the
// loading step and resolution itself never loads anything.
type Component struct {
	// Name is the component identity, e.g., "RPostgres" or "MySQL".
	Name string

	// Exports maps exported binding names to driver constructors.
	Exports map[string]DriverFunc
}

// Export looks up a binding by name inside the component namespace.
func (c *Component) Export(name string) (DriverFunc, bool) {
	if c == nil {
		return nil, false
	}
	fn, ok := c.Exports[name]
	return fn, ok && fn != nil
}

// ComponentSet is a read-consistent registry of loaded components keyed by
// identity. Lookups are safe for concurrent use; registration is expected at
// load time, before concurrent resolution begins.
type ComponentSet struct {
	mu         sync.RWMutex
	components map[string]*Component
}

// NewComponentSet creates an empty component set.
func NewComponentSet() *ComponentSet {
	return &ComponentSet{
		components: make(map[string]*Component),
	}
}

// Register adds a component to the set. Registering a second component with
// the same identity replaces the first: the platform treats "a component
// with a given identity" as unambiguous, so the last load wins.
func (s *ComponentSet) Register(c *Component) {
	if c == nil || c.Name == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.components[c.Name] = c
}

// Lookup retrieves a component by identity.
func (s *ComponentSet) Lookup(name string) (*Component, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.components[name]
	return c, ok
}

// Unregister removes a component from the set.
func (s *ComponentSet) Unregister(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.components, name)
}

// Names returns the identities of all registered components.
func (s *ComponentSet) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.components))
	for name := range s.components {
		names = append(names, name)
	}
	return names
}

// loadedComponents is the process-wide set of loaded driver components.
var loadedComponents = NewComponentSet()

// RegisterComponent registers a component in the process-wide set. Driver
// packages call this from init.
func RegisterComponent(c *Component) {
	loadedComponents.Register(c)
}

// LoadedComponents returns the process-wide component set.
func LoadedComponents() *ComponentSet {
	return loadedComponents
}
