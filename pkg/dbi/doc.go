// Package dbi provides the unified interface for all database drivers.
//
// This package defines the contracts that driver-specific implementations
// must follow, the name-resolution protocol that turns a symbolic driver
// name into a live driver instance, and the generic-operation surface
// (dataType, describe) routed through the dispatch engine.
//
// # Architecture
//
// The dbi package follows an interface-driven design with several key components:
//
//   - Capable: the root capability marker every participating type satisfies
//   - Driver: the main interface that all database drivers implement
//   - Connection: represents an active database connection
//   - Resolver: three-stage name resolution over bindings and loaded components
//   - Component / ComponentSet: the namespaces driver packages register at load time
//
// # Usage
//
// A driver package registers a component from its init function:
//
//	import (
//	    "github.com/freyreeste/DBI/pkg/dbi"
//	    _ "github.com/freyreeste/DBI/drivers/postgres"
//	)
//
// Importing the driver package is the loading step. Then resolve and connect:
//
//	drv, err := dbi.Resolve("Postgres")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conn, err := drv.Connect(ctx, dbi.ConnectionConfig{
//	    DriverName:   "postgres",
//	    Host:         "localhost",
//	    Port:         5432,
//	    DatabaseName: "myapp",
//	    Username:     "user",
//	    Password:     "pass",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer conn.Close()
//
// A caller that already holds a constructor can shadow any loaded component
// with an ambient binding; explicit bindings always win:
//
//	dbi.Bind("warehouse", func(args ...interface{}) (dbi.Driver, error) {
//	    return postgres.NewDriver(), nil
//	})
//	drv, _ := dbi.Resolve("warehouse")
//
// # Resolution order
//
// Resolve(name) searches, first match wins:
//
//  1. an ambient binding literally named name,
//  2. a loaded component whose identity equals name, export name,
//  3. a loaded component whose identity equals "R"+name, export name.
//
// Resolution never loads components as a side effect; loading is the
// caller's (import's) responsibility. A full miss fails with
// *DriverNotFoundError listing the three searched locations.
//
// # Generic operations
//
// Cross-cutting operations dispatch on the runtime type of the capability
// object. The default dataType implementation applies the SQL-92 policy from
// pkg/sqltype; drivers override it for vendor type systems:
//
//	typ, _ := dbi.DataType(nil, []int{1, 2, 3})     // "INTEGER" (default policy)
//	typ, _ = dbi.DataType(pgDriver, true)           // "BOOLEAN" (postgres override)
//
// Describe produces a best-effort summary and never propagates a failure.
//
// # Error Handling
//
// The dbi package provides standardized error types:
//
//   - DriverNotFoundError: name resolution exhausted all three stages
//   - ConnectionError: a driver's Connect failed, with the driver-supplied cause
//   - ConfigurationError: invalid connection configuration
//   - dispatch.UnsupportedOperationError: no implementation and no default
//
// Use errors.Is or the IsX helpers to check error classes:
//
//	if dbi.IsDriverNotFound(err) {
//	    // driver package not imported or name misspelled
//	}
//
// # Thread Safety
//
// Resolution and dispatch lookups are read-only and safe for concurrent use.
// Component and override registration is expected to happen at load time,
// from package init functions, before concurrent use begins.
package dbi
