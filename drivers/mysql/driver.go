// Package mysql implements the DBI driver for MySQL and MariaDB using
// go-sql-driver behind sqlx.
package mysql

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// Driver implements the dbi.Driver interface for MySQL. It does not track
// the connections it produces, so Connections always reports an empty list;
// callers own the handles they open.
type Driver struct {
	dbi.Marker
}

// NewDriver creates a new MySQL driver.
func NewDriver() *Driver {
	return &Driver{}
}

// Type returns the driver type identifier.
func (d *Driver) Type() drivercaps.DriverID {
	return drivercaps.MySQL
}

// Capabilities returns the capability metadata for MySQL.
func (d *Driver) Capabilities() drivercaps.Capability {
	return drivercaps.MustGet(drivercaps.MySQL)
}

// Connect establishes a connection to a MySQL database.
func (d *Driver) Connect(ctx context.Context, config dbi.ConnectionConfig) (dbi.Connection, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", dsn(config))
	if err != nil {
		return nil, dbi.WrapError(drivercaps.MySQL, config.Host, config.Port,
			fmt.Errorf("error connecting to database: %w", err))
	}

	id := config.ConnectionID
	if id == "" {
		id = uuid.NewString()
	}

	return &Connection{
		id:        id,
		db:        db,
		config:    config,
		driver:    d,
		connected: 1,
	}, nil
}

// Connections returns an empty list: this driver does not track the handles
// it produces. An empty result is a valid answer, never an error.
func (d *Driver) Connections() []dbi.Connection {
	return []dbi.Connection{}
}

// Unload has nothing to release for an untracked driver. Safe to call more
// than once.
func (d *Driver) Unload() bool {
	return true
}

// dsn builds a go-sql-driver DSN from the unified configuration.
func dsn(config dbi.ConnectionConfig) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s:%s@tcp(%s:%d)/%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.DatabaseName)

	params := []string{"parseTime=true"}
	if config.SSL {
		if config.SSLMode == "skip-verify" || config.SSLMode == "preferred" {
			params = append(params, "tls="+config.SSLMode)
		} else {
			params = append(params, "tls=true")
		}
	}
	b.WriteString("?" + strings.Join(params, "&"))

	return b.String()
}

// Connection implements dbi.Connection for MySQL.
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
	return drivercaps.MySQL
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

// Close closes the connection.
func (c *Connection) Close() error {
	if !atomic.CompareAndSwapInt32(&c.connected, 1, 0) {
		return nil
	}
	return c.db.Close()
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
