// Package postgres implements the DBI driver for PostgreSQL on top of
// pgx connection pools.
package postgres

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// Driver implements the dbi.Driver interface for PostgreSQL. It tracks the
// connections it has produced so Connections reports live handles.
type Driver struct {
	dbi.Marker

	mu    sync.RWMutex
	conns map[string]dbi.Connection
}

// NewDriver creates a new PostgreSQL driver.
func NewDriver() *Driver {
	return &Driver{
		conns: make(map[string]dbi.Connection),
	}
}

// Type returns the driver type identifier.
func (d *Driver) Type() drivercaps.DriverID {
	return drivercaps.PostgreSQL
}

// Capabilities returns the capability metadata for PostgreSQL.
func (d *Driver) Capabilities() drivercaps.Capability {
	return drivercaps.MustGet(drivercaps.PostgreSQL)
}

// Connect establishes a connection to a PostgreSQL database.
func (d *Driver) Connect(ctx context.Context, config dbi.ConnectionConfig) (dbi.Connection, error) {
	// Create connection pool
	pool, err := pgxpool.New(ctx, connString(config))
	if err != nil {
		return nil, dbi.NewConnectionError(
			drivercaps.PostgreSQL,
			config.Host,
			config.Port,
			fmt.Errorf("error connecting to database: %w", err),
		)
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, dbi.NewConnectionError(
			drivercaps.PostgreSQL,
			config.Host,
			config.Port,
			fmt.Errorf("error pinging database: %w", err),
		)
	}

	id := config.ConnectionID
	if id == "" {
		id = uuid.NewString()
	}

	conn := &Connection{
		id:        id,
		pool:      pool,
		config:    config,
		driver:    d,
		connected: 1,
	}

	d.mu.Lock()
	d.conns[id] = conn
	d.mu.Unlock()

	return conn, nil
}

// Connections returns the live connections this driver has produced.
func (d *Driver) Connections() []dbi.Connection {
	d.mu.RLock()
	defer d.mu.RUnlock()

	conns := make([]dbi.Connection, 0, len(d.conns))
	for _, c := range d.conns {
		conns = append(conns, c)
	}
	return conns
}

// Unload closes every tracked connection on a best-effort basis and reports
// whether all of them released cleanly. Safe to call more than once.
func (d *Driver) Unload() bool {
	d.mu.Lock()
	conns := d.conns
	d.conns = make(map[string]dbi.Connection)
	d.mu.Unlock()

	ok := true
	for _, c := range conns {
		if err := c.Close(); err != nil {
			ok = false
		}
	}
	return ok
}

// forget drops a closed connection from tracking.
func (d *Driver) forget(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.conns, id)
}

// connString builds a pgx connection string from the unified configuration.
func connString(config dbi.ConnectionConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "postgres://%s:%s@%s:%d/%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.DatabaseName)

	if config.SSL {
		fmt.Fprintf(&b, "?sslmode=%s", sslMode(config))

		if dbi.GetString(config.SSLCert) != "" && dbi.GetString(config.SSLKey) != "" {
			fmt.Fprintf(&b, "&sslcert=%s&sslkey=%s", *config.SSLCert, *config.SSLKey)
		}
		if dbi.GetString(config.SSLRootCert) != "" {
			fmt.Fprintf(&b, "&sslrootcert=%s", *config.SSLRootCert)
		}
	} else {
		b.WriteString("?sslmode=disable")
	}

	return b.String()
}

// sslMode returns the SSL mode for the connection, defaulting to the
// strictest verification.
func sslMode(config dbi.ConnectionConfig) string {
	if config.SSLMode != "" {
		return config.SSLMode
	}
	return "verify-full"
}

// Connection implements dbi.Connection for PostgreSQL.
type Connection struct {
	dbi.Marker

	id        string
	pool      *pgxpool.Pool
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
	return drivercaps.PostgreSQL
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
	return c.pool.Ping(ctx)
}

// Close closes the connection and drops it from the driver's tracking.
func (c *Connection) Close() error {
	if !atomic.CompareAndSwapInt32(&c.connected, 1, 0) {
		return nil
	}
	c.pool.Close()
	c.driver.forget(c.id)
	return nil
}

// Raw returns the underlying pgxpool.Pool.
func (c *Connection) Raw() interface{} {
	return c.pool
}

// Config returns the connection configuration.
func (c *Connection) Config() dbi.ConnectionConfig {
	return c.config
}

// Driver returns the owning driver.
func (c *Connection) Driver() dbi.Driver {
	return c.driver
}
