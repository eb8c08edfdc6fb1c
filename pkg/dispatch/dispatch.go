// Package dispatch provides a single-dispatch table for generic operations.
//
// Implementations are registered per operation name against a concrete or
// interface type; each operation additionally carries one default
// implementation that anchors the fallback. Lookup resolves the most specific
// implementation for the runtime type of the receiver: an exact concrete-type
// match wins, then registered interface/assignable types in registration
// order, then the default. Lookup never mutates the table, so concurrent
// dispatch is safe; registration is expected to happen at load time from
// driver package init functions.
package dispatch

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

// ErrOperationNotSupported is returned when no implementation and no default
// are registered for an operation.
var ErrOperationNotSupported = errors.New("operation not supported")

// UnsupportedOperationError is returned when dispatch finds no applicable
// implementation for a receiver and no default exists.
type UnsupportedOperationError struct {
	Operation    string
	ReceiverType reflect.Type
}

// Error implements the error interface.
func (e *UnsupportedOperationError) Error() string {
	if e.ReceiverType == nil {
		return fmt.Sprintf("no implementation of %q and no default registered", e.Operation)
	}
	return fmt.Sprintf("no implementation of %q for receiver type %s and no default registered", e.Operation, e.ReceiverType)
}

// Is checks if the error is ErrOperationNotSupported.
func (e *UnsupportedOperationError) Is(target error) bool {
	return errors.Is(target, ErrOperationNotSupported)
}

// NewUnsupportedOperationError creates a new UnsupportedOperationError.
func NewUnsupportedOperationError(operation string, receiverType reflect.Type) *UnsupportedOperationError {
	return &UnsupportedOperationError{
		Operation:    operation,
		ReceiverType: receiverType,
	}
}

// Func is a generic-operation implementation. The receiver is the value whose
// runtime type selected this implementation; args carry the remaining
// operation arguments.
type Func func(recv interface{}, args ...interface{}) (interface{}, error)

// operation holds the implementations registered for one operation name.
// order preserves registration order so that interface matches stay
// deterministic.
type operation struct {
	impls    map[reflect.Type]Func
	order    []reflect.Type
	fallback Func
}

// Table maps (operation name, receiver type) to implementations, with one
// default implementation per operation.
type Table struct {
	mu  sync.RWMutex
	ops map[string]*operation
}

// NewTable creates an empty dispatch table.
func NewTable() *Table {
	return &Table{
		ops: make(map[string]*operation),
	}
}

func (t *Table) op(name string) *operation {
	o, ok := t.ops[name]
	if !ok {
		o = &operation{impls: make(map[reflect.Type]Func)}
		t.ops[name] = o
	}
	return o
}

// Register registers an implementation of name for the given receiver type.
// typ may be a concrete type or an interface type obtained via reflect.
// Re-registering the same type replaces the implementation but keeps its
// position in the resolution order.
func (t *Table) Register(name string, typ reflect.Type, fn Func) {
	if typ == nil || fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	o := t.op(name)
	if _, exists := o.impls[typ]; !exists {
		o.order = append(o.order, typ)
	}
	o.impls[typ] = fn
}

// RegisterFor registers an implementation using a sample receiver value to
// derive the concrete type. Convenience wrapper around Register.
func (t *Table) RegisterFor(name string, sample interface{}, fn Func) {
	t.Register(name, reflect.TypeOf(sample), fn)
}

// RegisterDefault registers the default implementation of name, invoked when
// no type-specific implementation applies. The default is anchored at the
// capability-marker level: every participating value falls back to it.
func (t *Table) RegisterDefault(name string, fn Func) {
	if fn == nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.op(name).fallback = fn
}

// Implementation returns the implementation that Dispatch would select for
// recv, without invoking it. The boolean reports whether any implementation
// (including the default) was found.
func (t *Table) Implementation(name string, recv interface{}) (Func, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	o, ok := t.ops[name]
	if !ok {
		return nil, false
	}

	rt := reflect.TypeOf(recv)
	if rt != nil {
		// Exact concrete type first.
		if fn, ok := o.impls[rt]; ok {
			return fn, true
		}
		// Then assignable registered types (interfaces, embedded bases) in
		// registration order.
		for _, typ := range o.order {
			if typ == rt {
				continue
			}
			if assignableTo(rt, typ) {
				return o.impls[typ], true
			}
		}
	}

	if o.fallback != nil {
		return o.fallback, true
	}
	return nil, false
}

// Dispatch resolves and invokes the most specific implementation of name for
// the runtime type of recv, falling back to the operation default. It fails
// with *UnsupportedOperationError when neither exists. Lookup is read-only
// with respect to the table.
func (t *Table) Dispatch(name string, recv interface{}, args ...interface{}) (interface{}, error) {
	fn, ok := t.Implementation(name, recv)
	if !ok {
		return nil, NewUnsupportedOperationError(name, reflect.TypeOf(recv))
	}
	return fn(recv, args...)
}

// Operations returns the names of all operations with at least one
// registration.
func (t *Table) Operations() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.ops))
	for name := range t.ops {
		names = append(names, name)
	}
	return names
}

// assignableTo reports whether a value of runtime type rt matches a
// registered type typ, either by interface satisfaction or plain
// assignability.
func assignableTo(rt, typ reflect.Type) bool {
	if typ.Kind() == reflect.Interface {
		return rt.Implements(typ)
	}
	return rt.AssignableTo(typ)
}
