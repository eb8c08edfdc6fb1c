package drivercaps

import "strings"

// DriverID is the canonical identifier for a database technology supported by DBI.
// Use these constants to look up capability information.
type DriverID string

const (
	// Relational SQL
	PostgreSQL DriverID = "postgres"
	MySQL      DriverID = "mysql"
	SQLite     DriverID = "sqlite"

	// Key/Value
	Redis DriverID = "redis"
)

// DataParadigm enumerates the primary data storage paradigms a database supports.
type DataParadigm string

const (
	ParadigmRelational DataParadigm = "relational" // Tables, schemas, SQL
	ParadigmKeyValue   DataParadigm = "keyvalue"   // Key/Value
	ParadigmEmbedded   DataParadigm = "embedded"   // In-process, file-backed
)

// Capability describes what a database technology supports in a way that
// drivers and tooling can consume uniformly.
type Capability struct {
	// Human-friendly vendor or product name, e.g., "PostgreSQL".
	Name string `json:"name"`

	// Canonical ID used across the codebase (see DriverID constants), e.g., "postgres".
	ID DriverID `json:"id"`

	// Constructor is the exported binding name the driver package provides
	// under the resolver naming convention, e.g., "Postgres" inside the
	// "RPostgres" component.
	Constructor string `json:"constructor"`

	// Default TCP port, 0 for embedded databases.
	DefaultPort int `json:"defaultPort,omitempty"`

	// Whether the database exposes a built-in/system database and its typical names.
	HasSystemDatabase bool     `json:"hasSystemDatabase"`
	SystemDatabases   []string `json:"systemDatabases,omitempty"`

	// Whether the driver keeps track of the connections it has produced.
	// Drivers that do not track MUST still report an empty connection list.
	TracksConnections bool `json:"tracksConnections"`

	// Primary data storage paradigms supported.
	Paradigms []DataParadigm `json:"paradigms"`

	// Common aliases (scheme names, driver labels) that map to this database.
	Aliases []string `json:"aliases,omitempty"`
}

// All is a registry of capabilities keyed by the canonical driver ID.
var All = map[DriverID]Capability{
	PostgreSQL: {
		Name:              "PostgreSQL",
		ID:                PostgreSQL,
		Constructor:       "Postgres",
		DefaultPort:       5432,
		HasSystemDatabase: true,
		SystemDatabases:   []string{"postgres"},
		TracksConnections: true,
		Paradigms:         []DataParadigm{ParadigmRelational},
		Aliases:           []string{"postgresql", "pgsql"},
	},
	MySQL: {
		Name:              "MySQL",
		ID:                MySQL,
		Constructor:       "MySQL",
		DefaultPort:       3306,
		HasSystemDatabase: true,
		SystemDatabases:   []string{"mysql"},
		TracksConnections: false,
		Paradigms:         []DataParadigm{ParadigmRelational},
		Aliases:           []string{"mariadb", "aurora-mysql"},
	},
	SQLite: {
		Name:              "SQLite",
		ID:                SQLite,
		Constructor:       "SQLite",
		HasSystemDatabase: false,
		TracksConnections: true,
		Paradigms:         []DataParadigm{ParadigmRelational, ParadigmEmbedded},
		Aliases:           []string{"sqlite3", "file"},
	},
	Redis: {
		Name:              "Redis",
		ID:                Redis,
		Constructor:       "Redis",
		DefaultPort:       6379,
		HasSystemDatabase: false,
		TracksConnections: true,
		Paradigms:         []DataParadigm{ParadigmKeyValue},
		Aliases:           []string{"rediss", "valkey"},
	},
}

// nameToID is a normalized lookup index from any known name/alias to the canonical DriverID.
var nameToID map[string]DriverID

func init() {
	nameToID = make(map[string]DriverID, len(All)*3)
	for id, cap := range All {
		// Canonical ID
		nameToID[strings.ToLower(string(id))] = id
		// Also record vendor/product name
		if cap.Name != "" {
			nameToID[strings.ToLower(cap.Name)] = id
		}
		// Aliases
		for _, a := range cap.Aliases {
			if a == "" {
				continue
			}
			nameToID[strings.ToLower(a)] = id
		}
	}
}

// ParseID attempts to resolve an arbitrary database name (canonical id, alias, or product name)
// to a canonical DriverID. Returns false if unknown.
func ParseID(name string) (DriverID, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return "", false
	}
	id, ok := nameToID[n]
	return id, ok
}

// GetByName returns the Capability by looking up using a free-form name (id or alias).
func GetByName(name string) (Capability, bool) {
	if id, ok := ParseID(name); ok {
		return Get(id)
	}
	return Capability{}, false
}

// MustGetByName returns the Capability by name or panics if unknown.
func MustGetByName(name string) Capability {
	cap, ok := GetByName(name)
	if !ok {
		panic("drivercaps: unknown database name: " + name)
	}
	return cap
}

// IDs returns the list of all known driver IDs.
func IDs() []DriverID {
	out := make([]DriverID, 0, len(All))
	for id := range All {
		out = append(out, id)
	}
	return out
}

// Get returns capabilities for the given ID and a boolean indicating existence.
func Get(id DriverID) (Capability, bool) {
	c, ok := All[id]
	return c, ok
}

// MustGet returns capabilities for the given ID and panics if not found.
func MustGet(id DriverID) Capability {
	c, ok := Get(id)
	if !ok {
		panic("drivercaps: unknown driver id: " + string(id))
	}
	return c
}

// SupportsParadigm reports whether the database supports a given data paradigm.
func SupportsParadigm(id DriverID, p DataParadigm) bool {
	c, ok := Get(id)
	if !ok {
		return false
	}
	for _, dp := range c.Paradigms {
		if dp == p {
			return true
		}
	}
	return false
}

// HasSystemDB is a convenience accessor for HasSystemDatabase.
func HasSystemDB(id DriverID) bool {
	c, ok := Get(id)
	return ok && c.HasSystemDatabase
}

// TracksConnections reports whether the driver for id keeps a connection registry.
func TracksConnections(id DriverID) bool {
	c, ok := Get(id)
	return ok && c.TracksConnections
}
