package dbi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/freyreeste/DBI/pkg/drivercaps"
)

func TestDriverNotFoundErrorMessage(t *testing.T) {
	err := NewDriverNotFoundError("Postgres", []string{"a", "b", "c"})
	assert.Contains(t, err.Error(), `"Postgres"`)
	assert.Contains(t, err.Error(), "a, b, c")
	assert.True(t, errors.Is(err, ErrDriverNotFound))
}

func TestConnectionErrorWrapsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewConnectionError(drivercaps.PostgreSQL, "localhost", 5432, cause)

	assert.Contains(t, err.Error(), "localhost:5432")
	assert.True(t, errors.Is(err, ErrConnectionFailed))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, IsConnectionError(err))
}

func TestConnectionErrorWithoutHost(t *testing.T) {
	err := NewConnectionError(drivercaps.SQLite, "", 0, errors.New("locked"))
	assert.Contains(t, err.Error(), "sqlite")
	assert.NotContains(t, err.Error(), ":0")
}

func TestConfigurationError(t *testing.T) {
	err := NewConfigurationError(drivercaps.Redis, "database_name", "must be a numeric index")
	assert.Contains(t, err.Error(), "database_name")
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
	assert.True(t, IsConfigurationError(err))
}

func TestErrorClassesAreDisjoint(t *testing.T) {
	notFound := NewDriverNotFoundError("X", nil)
	assert.False(t, IsConnectionError(notFound))
	assert.False(t, IsConfigurationError(notFound))
	assert.False(t, IsUnsupported(notFound))

	connErr := NewConnectionError(drivercaps.MySQL, "h", 3306, errors.New("boom"))
	assert.False(t, IsDriverNotFound(connErr))
}

func TestWrapErrorAvoidsDoubleWrapping(t *testing.T) {
	cause := errors.New("dial timeout")

	wrapped := WrapError(drivercaps.MySQL, "localhost", 3306, cause)
	assert.True(t, IsConnectionError(wrapped))

	// Wrapping an already-wrapped error returns it unchanged.
	again := WrapError(drivercaps.MySQL, "localhost", 3306, wrapped)
	assert.Equal(t, wrapped, again)

	assert.Nil(t, WrapError(drivercaps.MySQL, "localhost", 3306, nil))
}

func TestWrappedErrorsKeepClass(t *testing.T) {
	err := fmt.Errorf("resolving warehouse: %w", NewDriverNotFoundError("warehouse", nil))
	assert.True(t, IsDriverNotFound(err))
}
