package dbi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/freyreeste/DBI/pkg/dispatch"
	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// Standard errors
var (
	// ErrDriverNotFound is returned when name resolution exhausts every search stage
	ErrDriverNotFound = errors.New("driver not found")

	// ErrConnectionFailed is returned when a connection attempt fails
	ErrConnectionFailed = errors.New("connection failed")

	// ErrConnectionClosed is returned when attempting to use a closed connection
	ErrConnectionClosed = errors.New("connection is closed")

	// ErrInvalidConfiguration is returned when the configuration is invalid
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOperationNotSupported is returned when dispatch finds no applicable
	// implementation and no default. Shared with the dispatch package.
	ErrOperationNotSupported = dispatch.ErrOperationNotSupported
)

// DriverNotFoundError is returned when every resolution stage misses. It
// carries the requested name and the exact locations searched so a missing
// or unloaded driver package can be diagnosed.
type DriverNotFoundError struct {
	Name     string
	Searched []string
}

// Error implements the error interface.
func (e *DriverNotFoundError) Error() string {
	if len(e.Searched) > 0 {
		return fmt.Sprintf("driver %q not found (searched: %s)", e.Name, strings.Join(e.Searched, ", "))
	}
	return fmt.Sprintf("driver %q not found", e.Name)
}

// Is checks if the error is ErrDriverNotFound.
func (e *DriverNotFoundError) Is(target error) bool {
	return errors.Is(target, ErrDriverNotFound)
}

// NewDriverNotFoundError creates a new DriverNotFoundError.
func NewDriverNotFoundError(name string, searched []string) *DriverNotFoundError {
	return &DriverNotFoundError{
		Name:     name,
		Searched: searched,
	}
}

// ConnectionError is returned when a driver's Connect fails. The cause is
// driver-supplied and opaque to the core.
type ConnectionError struct {
	Driver drivercaps.DriverID
	Host   string
	Port   int
	Cause  error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	if e.Host == "" {
		return fmt.Sprintf("failed to connect to %s: %v", e.Driver, e.Cause)
	}
	return fmt.Sprintf("failed to connect to %s at %s:%d: %v", e.Driver, e.Host, e.Port, e.Cause)
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Cause
}

// Is checks if the error is ErrConnectionFailed.
func (e *ConnectionError) Is(target error) bool {
	if errors.Is(target, ErrConnectionFailed) {
		return true
	}
	return errors.Is(e.Cause, target)
}

// NewConnectionError creates a new ConnectionError.
func NewConnectionError(driver drivercaps.DriverID, host string, port int, cause error) *ConnectionError {
	return &ConnectionError{
		Driver: driver,
		Host:   host,
		Port:   port,
		Cause:  cause,
	}
}

// ConfigurationError is returned when a configuration error occurs.
type ConfigurationError struct {
	Driver drivercaps.DriverID
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid configuration for %s: field '%s': %s", e.Driver, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid configuration for %s: %s", e.Driver, e.Reason)
}

// Is checks if the error is ErrInvalidConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(target, ErrInvalidConfiguration)
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(driver drivercaps.DriverID, field string, reason string) *ConfigurationError {
	return &ConfigurationError{
		Driver: driver,
		Field:  field,
		Reason: reason,
	}
}

// WrapError wraps a driver failure in a ConnectionError, preserving the
// original error for unwrapping.
func WrapError(driver drivercaps.DriverID, host string, port int, err error) error {
	if err == nil {
		return nil
	}

	// Don't double-wrap
	var connErr *ConnectionError
	if errors.As(err, &connErr) {
		return err
	}

	return NewConnectionError(driver, host, port, err)
}

// IsDriverNotFound checks if an error indicates a failed name resolution.
func IsDriverNotFound(err error) bool {
	return errors.Is(err, ErrDriverNotFound)
}

// IsConnectionError checks if an error is a connection error.
func IsConnectionError(err error) bool {
	return errors.Is(err, ErrConnectionFailed)
}

// IsUnsupported checks if an error indicates an unsupported operation.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrOperationNotSupported)
}

// IsConfigurationError checks if an error is a configuration error.
func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrInvalidConfiguration)
}
