// Package sqlite implements the DBI driver for SQLite using the pure-Go
// modernc.org/sqlite engine behind sqlx.
package sqlite

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// Driver implements the dbi.Driver interface for SQLite. The embedded engine
// holds the database file, so the driver permits a single live connection at
// a time.
type Driver struct {
	dbi.Marker

	mu      sync.RWMutex
	current *Connection
}

// NewDriver creates a new SQLite driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Type returns the driver type identifier.
func (d *Driver) Type() drivercaps.DriverID {
	return drivercaps.SQLite
}

// Capabilities returns the capability metadata for SQLite.
func (d *Driver) Capabilities() drivercaps.Capability {
	return drivercaps.MustGet(drivercaps.SQLite)
}

// Connect opens the database file named by config.DatabaseName, or an
// in-memory database when the name is ":memory:" or empty. A second Connect
// while a connection is live is a configuration error.
func (d *Driver) Connect(ctx context.Context, config dbi.ConnectionConfig) (dbi.Connection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.current != nil && d.current.IsConnected() {
		return nil, dbi.NewConfigurationError(
			drivercaps.SQLite,
			"connection",
			"driver supports a single live connection; close the current one first",
		)
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite", dsn(config))
	if err != nil {
		return nil, dbi.NewConnectionError(
			drivercaps.SQLite,
			config.Host,
			config.Port,
			fmt.Errorf("error opening database: %w", err),
		)
	}

	id := config.ConnectionID
	if id == "" {
		id = uuid.NewString()
	}

	conn := &Connection{
		id:        id,
		db:        db,
		config:    config,
		driver:    d,
		connected: 1,
	}
	d.current = conn

	return conn, nil
}

// Connections returns the live connection, or an empty slice when none is
// open.
func (d *Driver) Connections() []dbi.Connection {
	d.mu.RLock()
	defer d.mu.RUnlock()

	conns := make([]dbi.Connection, 0, 1)
	if d.current != nil && d.current.IsConnected() {
		conns = append(conns, d.current)
	}
	return conns
}

// Unload closes the live connection, if any, and reports whether it released
// cleanly. Safe to call more than once.
func (d *Driver) Unload() bool {
	d.mu.RLock()
	conn := d.current
	d.mu.RUnlock()

	if conn == nil {
		return true
	}
	return conn.Close() == nil
}

// forget drops the closed connection from tracking.
func (d *Driver) forget(c *Connection) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == c {
		d.current = nil
	}
}

// dsn maps the unified configuration to a modernc.org/sqlite data source
// name. SQLite is embedded, so only the database name matters.
func dsn(config dbi.ConnectionConfig) string {
	if config.DatabaseName == "" {
		return ":memory:"
	}
	return config.DatabaseName
}

// Connection implements dbi.Connection for SQLite.
type Connection struct {
	dbi.Marker

	id        string
	db        *sqlx.DB
	config    dbi.ConnectionConfig
	driver    *Driver
	connected int32
}

// ID returns the connection identifier.
func (c *Connection) ID() string {
	return c.id
}

// Type returns the driver type.
func (c *Connection) Type() drivercaps.DriverID {
	return drivercaps.SQLite
}

// IsConnected returns whether the connection is active.
func (c *Connection) IsConnected() bool {
	return atomic.LoadInt32(&c.connected) == 1
}

// Ping checks if the connection is alive.
func (c *Connection) Ping(ctx context.Context) error {
	if !c.IsConnected() {
		return dbi.ErrConnectionClosed
	}
	return c.db.PingContext(ctx)
}

// Close closes the connection and releases the driver's single slot.
func (c *Connection) Close() error {
	if !atomic.CompareAndSwapInt32(&c.connected, 1, 0) {
		return nil
	}
	err := c.db.Close()
	c.driver.forget(c)
	return err
}

// Raw returns the underlying sqlx.DB.
func (c *Connection) Raw() interface{} {
	return c.db
}

// Config returns the connection configuration.
func (c *Connection) Config() dbi.ConnectionConfig {
	return c.config
}

// Driver returns the owning driver.
func (c *Connection) Driver() dbi.Driver {
	return c.driver
}
