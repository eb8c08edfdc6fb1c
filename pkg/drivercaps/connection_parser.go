package drivercaps

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ConnectionDetails holds parsed connection information
type ConnectionDetails struct {
	DriverType   string            `json:"driver_type"`
	Host         string            `json:"host"`
	Port         int               `json:"port"`
	Username     string            `json:"username"`
	Password     string            `json:"password"`
	DatabaseName string            `json:"database_name"`
	SSL          bool              `json:"ssl"`
	SSLMode      string            `json:"ssl_mode"`
	Parameters   map[string]string `json:"parameters"`
	IsSystemDB   bool              `json:"is_system_db"`
	SystemDBName string            `json:"system_db_name,omitempty"`
}

// ParseConnectionString parses a connection string and returns connection details
func ParseConnectionString(connectionString string) (*ConnectionDetails, error) {
	if connectionString == "" {
		return nil, fmt.Errorf("connection string cannot be empty")
	}

	// Parse the URL
	parsedURL, err := url.Parse(connectionString)
	if err != nil {
		return nil, fmt.Errorf("invalid connection string format: %v", err)
	}

	// Extract driver type from scheme
	scheme := strings.ToLower(parsedURL.Scheme)
	if scheme == "" {
		return nil, fmt.Errorf("connection string must include a scheme (e.g., postgresql://)")
	}

	// Map scheme to driver type using the existing ParseID function
	dbType, ok := ParseID(scheme)
	if !ok {
		return nil, fmt.Errorf("unsupported database type: %s", scheme)
	}

	// Get driver capabilities
	capability, ok := Get(dbType)
	if !ok {
		return nil, fmt.Errorf("driver capabilities not found for type: %s", string(dbType))
	}

	// Extract connection details
	details := &ConnectionDetails{
		DriverType: string(dbType),
		Parameters: make(map[string]string),
	}

	// Embedded databases carry the whole path, no host/port/user parts.
	if SupportsParadigm(dbType, ParadigmEmbedded) {
		details.DatabaseName = strings.TrimPrefix(connectionString, scheme+"://")
		details.SSLMode = "disable"
		return details, nil
	}

	// Extract host and port
	if parsedURL.Hostname() == "" {
		return nil, fmt.Errorf("host is required in connection string")
	}
	details.Host = parsedURL.Hostname()

	// Extract port or use default
	if parsedURL.Port() != "" {
		port, err := strconv.Atoi(parsedURL.Port())
		if err != nil {
			return nil, fmt.Errorf("invalid port number: %s", parsedURL.Port())
		}
		details.Port = port
	} else {
		details.Port = capability.DefaultPort
	}

	// Extract username and password
	if parsedURL.User != nil {
		details.Username = parsedURL.User.Username()
		if password, hasPassword := parsedURL.User.Password(); hasPassword {
			details.Password = password
		}
	}

	// Extract database name from path
	path := strings.Trim(parsedURL.Path, "/")
	if path != "" {
		details.DatabaseName = path
	}

	// Determine if this should use the system database
	if capability.HasSystemDatabase && len(capability.SystemDatabases) > 0 {
		systemDB := capability.SystemDatabases[0]

		// If no database specified or if the specified database is a system database
		if details.DatabaseName == "" || isSystemDatabase(details.DatabaseName, capability.SystemDatabases) {
			details.IsSystemDB = true
			details.SystemDBName = systemDB
			if details.DatabaseName == "" {
				details.DatabaseName = systemDB
			}
		}
	}

	// Parse query parameters
	queryParams := parsedURL.Query()
	for key, values := range queryParams {
		if len(values) > 0 {
			details.Parameters[key] = values[0]
		}
	}

	// Handle SSL configuration based on driver type
	if err := parseSSLConfiguration(details, queryParams); err != nil {
		return nil, fmt.Errorf("error parsing SSL configuration: %v", err)
	}

	return details, nil
}

// isSystemDatabase checks if the given database name is a system database
func isSystemDatabase(dbName string, systemDatabases []string) bool {
	for _, sysDB := range systemDatabases {
		if strings.EqualFold(dbName, sysDB) {
			return true
		}
	}
	return false
}

// parseSSLConfiguration handles SSL-related parameters based on driver type
func parseSSLConfiguration(details *ConnectionDetails, queryParams url.Values) error {
	switch DriverID(details.DriverType) {
	case PostgreSQL:
		return parsePostgreSQLSSL(details, queryParams)
	case MySQL:
		return parseMySQLSSL(details, queryParams)
	case Redis:
		return parseRedisSSL(details, queryParams)
	default:
		details.SSL = false
		details.SSLMode = "disable"
		return nil
	}
}

// parsePostgreSQLSSL handles PostgreSQL-specific SSL parameters
func parsePostgreSQLSSL(details *ConnectionDetails, queryParams url.Values) error {
	sslMode := queryParams.Get("sslmode")
	if sslMode == "" {
		sslMode = "prefer" // PostgreSQL default
	}

	details.SSLMode = sslMode
	details.SSL = sslMode != "disable"

	// Handle SSL certificate parameters
	if sslCert := queryParams.Get("sslcert"); sslCert != "" {
		details.Parameters["ssl_cert"] = sslCert
	}
	if sslKey := queryParams.Get("sslkey"); sslKey != "" {
		details.Parameters["ssl_key"] = sslKey
	}
	if sslRootCert := queryParams.Get("sslrootcert"); sslRootCert != "" {
		details.Parameters["ssl_root_cert"] = sslRootCert
	}

	return nil
}

// parseMySQLSSL handles MySQL-specific SSL parameters
func parseMySQLSSL(details *ConnectionDetails, queryParams url.Values) error {
	tls := queryParams.Get("tls")
	if tls == "" {
		tls = "false" // MySQL default
	}

	details.SSL = tls == "true" || tls == "skip-verify"
	if details.SSL {
		if tls == "skip-verify" {
			details.SSLMode = "prefer"
		} else {
			details.SSLMode = "require"
		}
	} else {
		details.SSLMode = "disable"
	}

	return nil
}

// parseRedisSSL handles Redis-specific SSL parameters
func parseRedisSSL(details *ConnectionDetails, queryParams url.Values) error {
	ssl := queryParams.Get("ssl")
	if ssl == "" {
		// rediss:// implies TLS even without an explicit parameter
		ssl = "false"
	}

	details.SSL = ssl == "true"
	if details.SSL {
		details.SSLMode = "require"
	} else {
		details.SSLMode = "disable"
	}

	return nil
}
