package dbi

// ConnectionConfig contains the configuration for a database connection.
// This is a unified configuration that works across all driver types;
// drivers ignore the fields that do not apply to them.
type ConnectionConfig struct {
	// Core identifiers
	ConnectionID string `json:"connectionId,omitempty"`

	// Connection metadata
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	// Driver type, e.g., "postgres", "mysql"
	DriverName string `json:"driverName"`

	// Connection details
	Host         string `json:"host,omitempty"`
	Port         int    `json:"port,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	DatabaseName string `json:"databaseName"`

	// SSL/TLS configuration
	SSL         bool    `json:"ssl,omitempty"`
	SSLMode     string  `json:"sslMode,omitempty"` // verify-full, require, etc.
	SSLCert     *string `json:"sslCert,omitempty"`
	SSLKey      *string `json:"sslKey,omitempty"`
	SSLRootCert *string `json:"sslRootCert,omitempty"`

	// Driver-specific options (use sparingly)
	Options map[string]interface{} `json:"options,omitempty"`
}

// GetStringPtr returns a pointer to a string value, or nil if the string is empty.
// Helper function for optional string fields.
func GetStringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// GetString returns the string value from a pointer, or empty string if nil.
// Helper function for optional string fields.
func GetString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetBoolPtr returns a pointer to a bool value.
// Helper function for optional bool fields.
func GetBoolPtr(b bool) *bool {
	return &b
}

// GetBool returns the bool value from a pointer, or false if nil.
// Helper function for optional bool fields.
func GetBool(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}
