package dbi

import (
	"fmt"
	"sync"
)

// componentPrefix is prepended to a driver name to form the conventional
// component identity, e.g., "Postgres" -> "RPostgres". Vendors publish a
// component under the prefixed identity while exporting the bare name.
const componentPrefix = "R"

// Resolver turns a symbolic driver name into a live Driver instance. It
// searches, in order: its own ambient bindings, a loaded component whose
// identity equals the name, and a loaded component under the prefixed
// identity. First match wins, so explicit caller bindings beat ambient
// component conventions. Resolution is read-only: it never triggers loading
// of new components and is safe for concurrent use.
type Resolver struct {
	mu         sync.RWMutex
	bindings   map[string]DriverFunc
	components *ComponentSet
}

// NewResolver creates a resolver over the process-wide component set.
func NewResolver() *Resolver {
	return NewResolverFor(LoadedComponents())
}

// NewResolverFor creates a resolver over an explicit component set. Useful
// for tests that fake the set of loaded components.
func NewResolverFor(components *ComponentSet) *Resolver {
	return &Resolver{
		bindings:   make(map[string]DriverFunc),
		components: components,
	}
}

// Bind installs an ambient binding. A bound name shadows any loaded
// component during resolution.
func (r *Resolver) Bind(name string, fn DriverFunc) {
	if name == "" || fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bindings[name] = fn
}

// Unbind removes an ambient binding.
func (r *Resolver) Unbind(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bindings, name)
}

// binding looks up an ambient binding by name.
func (r *Resolver) binding(name string) (DriverFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.bindings[name]
	return fn, ok && fn != nil
}

// Resolve turns name into a Driver instance, invoking the first matching
// binding with extraArgs. It fails with *DriverNotFoundError listing the
// three searched locations when every stage misses.
func (r *Resolver) Resolve(name string, extraArgs ...interface{}) (Driver, error) {
	prefixed := componentPrefix + name

	// Stage 1: ambient binding in the resolver's own scope.
	if fn, ok := r.binding(name); ok {
		return fn(extraArgs...)
	}

	// Stage 2: loaded component whose identity equals the name, exporting
	// the name itself.
	if comp, ok := r.components.Lookup(name); ok {
		if fn, ok := comp.Export(name); ok {
			return fn(extraArgs...)
		}
	}

	// Stage 3: loaded component under the prefixed identity, still
	// exporting the bare name.
	if comp, ok := r.components.Lookup(prefixed); ok {
		if fn, ok := comp.Export(name); ok {
			return fn(extraArgs...)
		}
	}

	return nil, NewDriverNotFoundError(name, []string{
		fmt.Sprintf("ambient binding %q", name),
		fmt.Sprintf("loaded component %q", name),
		fmt.Sprintf("loaded component %q", prefixed),
	})
}

// defaultResolver backs the package-level convenience functions.
var defaultResolver = NewResolver()

// Bind installs an ambient binding in the default resolver.
func Bind(name string, fn DriverFunc) {
	defaultResolver.Bind(name, fn)
}

// Unbind removes an ambient binding from the default resolver.
func Unbind(name string) {
	defaultResolver.Unbind(name)
}

// Resolve resolves a driver by name using the default resolver.
func Resolve(name string, extraArgs ...interface{}) (Driver, error) {
	return defaultResolver.Resolve(name, extraArgs...)
}
