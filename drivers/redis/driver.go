// Package redis implements the DBI driver for Redis and Valkey using
// go-redis.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// Driver implements the dbi.Driver interface for Redis. It tracks the
// connections it has produced so Connections reports live handles.
type Driver struct {
	dbi.Marker

	mu    sync.RWMutex
	conns map[string]dbi.Connection
}

// NewDriver creates a new Redis driver.
func NewDriver() *Driver {
	return &Driver{
		conns: make(map[string]dbi.Connection),
	}
}

// Type returns the driver type identifier.
func (d *Driver) Type() drivercaps.DriverID {
	return drivercaps.Redis
}

// Capabilities returns the capability metadata for Redis.
func (d *Driver) Capabilities() drivercaps.Capability {
	return drivercaps.MustGet(drivercaps.Redis)
}

// Connect establishes a connection to a Redis instance. DatabaseName selects
// the logical database index, defaulting to 0.
func (d *Driver) Connect(ctx context.Context, config dbi.ConnectionConfig) (dbi.Connection, error) {
	dbIndex := 0
	if config.DatabaseName != "" {
		n, err := strconv.Atoi(config.DatabaseName)
		if err != nil {
			return nil, dbi.NewConfigurationError(
				drivercaps.Redis,
				"database_name",
				fmt.Sprintf("redis database must be a numeric index, got %q", config.DatabaseName),
			)
		}
		dbIndex = n
	}

	opts := &goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Host, config.Port),
		Username: config.Username,
		Password: config.Password,
		DB:       dbIndex,
	}
	if config.SSL {
		opts.TLSConfig = &tls.Config{
			ServerName: config.Host,
		}
	}

	client := goredis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, dbi.WrapError(drivercaps.Redis, config.Host, config.Port,
			fmt.Errorf("error pinging server: %w", err))
	}

	id := config.ConnectionID
	if id == "" {
		id = uuid.NewString()
	}

	conn := &Connection{
		id:        id,
		client:    client,
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

// Connection implements dbi.Connection for Redis.
type Connection struct {
	dbi.Marker

	id        string
	client    *goredis.Client
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
	return drivercaps.Redis
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
	return c.client.Ping(ctx).Err()
}

// Close closes the connection and drops it from the driver's tracking.
func (c *Connection) Close() error {
	if !atomic.CompareAndSwapInt32(&c.connected, 1, 0) {
		return nil
	}
	err := c.client.Close()
	c.driver.forget(c.id)
	return err
}

// Raw returns the underlying go-redis client.
func (c *Connection) Raw() interface{} {
	return c.client
}

// Config returns the connection configuration.
func (c *Connection) Config() dbi.ConnectionConfig {
	return c.config
}

// Driver returns the owning driver.
func (c *Connection) Driver() dbi.Driver {
	return c.driver
}
