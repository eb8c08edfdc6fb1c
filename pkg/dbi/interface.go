// Package dbi provides the unified interface for all database drivers.
// This package defines the contracts that driver-specific implementations must follow.
package dbi

import (
	"context"

	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// Capable is the root capability marker. It carries no behavior; it exists so
// the generic dispatch engine has a guaranteed fallback anchor, and so that
// drivers, connections and records share one ancestry. Embed Marker to
// satisfy it.
type Capable interface {
	IsCapable()
}

// Marker is a zero-size embeddable type that satisfies Capable.
type Marker struct{}

// IsCapable marks the embedding type as a dispatch participant.
func (Marker) IsCapable() {}

// Driver represents a database driver: a factory that knows how to produce
// live connections to one specific DBMS family. Each driver package must
// implement this interface.
type Driver interface {
	Capable

	// Type returns the canonical driver type identifier
	Type() drivercaps.DriverID

	// Capabilities returns the capability metadata for this driver type
	Capabilities() drivercaps.Capability

	// Connect establishes a connection to a specific database.
	// Fails with *ConnectionError carrying the driver-supplied cause.
	Connect(ctx context.Context, config ConnectionConfig) (Connection, error)

	// Connections returns the live connections this driver has produced.
	// Drivers that do not track connections MUST return an empty slice,
	// never an error; a single-connection driver returns a one-element
	// slice while connected.
	Connections() []Connection

	// Unload releases driver-level resources on a best-effort basis and
	// reports whether the release succeeded. Calling it twice must not
	// crash.
	Unload() bool
}

// Connection represents an active connection to a specific database. Its
// lifecycle is owned by whoever called Connect; the core does not track it.
type Connection interface {
	Capable

	// Identity and status
	ID() string
	Type() drivercaps.DriverID
	IsConnected() bool

	// Lifecycle management
	Ping(ctx context.Context) error
	Close() error

	// Raw returns the underlying driver-specific connection object.
	// Type assertion is required when using Raw().
	Raw() interface{}

	// Configuration
	Config() ConnectionConfig
	Driver() Driver
}
