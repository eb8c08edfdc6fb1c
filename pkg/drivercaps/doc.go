// Package drivercaps provides a shared registry describing the capabilities of
// database technologies a DBI driver can target. Driver packages and tooling
// import this package to make decisions based on uniform metadata (default
// ports, system databases, paradigms, naming conventions).
//
// Minimal usage example:
//
//	import "github.com/freyreeste/DBI/pkg/drivercaps"
//
//	func defaultPort(db string) int {
//	    if cap, ok := drivercaps.GetByName(db); ok {
//	        return cap.DefaultPort
//	    }
//	    return 0
//	}
//
// The package exposes constants for IDs (e.g., drivercaps.PostgreSQL) and a
// registry `All` for advanced consumers. The Constructor field records the
// exported binding name a driver package is expected to provide under the
// resolver's naming convention (bare name or "R"-prefixed component).
package drivercaps
