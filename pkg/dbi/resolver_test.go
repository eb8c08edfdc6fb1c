package dbi

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freyreeste/DBI/pkg/drivercaps"
)

// fakeDriver is a minimal Driver used to observe which resolution stage
// produced the instance.
type fakeDriver struct {
	Marker

	label string
	args  []interface{}
}

func (d *fakeDriver) Type() drivercaps.DriverID {
	return drivercaps.DriverID("fake")
}

func (d *fakeDriver) Capabilities() drivercaps.Capability {
	return drivercaps.Capability{Name: "Fake", ID: "fake"}
}

func (d *fakeDriver) Connect(ctx context.Context, config ConnectionConfig) (Connection, error) {
	return nil, ErrConnectionFailed
}

func (d *fakeDriver) Connections() []Connection {
	return []Connection{}
}

func (d *fakeDriver) Unload() bool {
	return true
}

func constructor(label string) DriverFunc {
	return func(args ...interface{}) (Driver, error) {
		return &fakeDriver{label: label, args: args}, nil
	}
}

func label(t *testing.T, drv Driver) string {
	t.Helper()
	fd, ok := drv.(*fakeDriver)
	require.True(t, ok)
	return fd.label
}

func TestResolveAmbientBindingWins(t *testing.T) {
	components := NewComponentSet()
	components.Register(&Component{
		Name:    "Postgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("bare component")},
	})
	components.Register(&Component{
		Name:    "RPostgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("prefixed component")},
	})

	r := NewResolverFor(components)
	r.Bind("Postgres", constructor("binding"))

	drv, err := r.Resolve("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "binding", label(t, drv))
}

func TestResolveBareComponentBeatsPrefixed(t *testing.T) {
	components := NewComponentSet()
	components.Register(&Component{
		Name:    "Postgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("bare component")},
	})
	components.Register(&Component{
		Name:    "RPostgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("prefixed component")},
	})

	r := NewResolverFor(components)

	drv, err := r.Resolve("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "bare component", label(t, drv))
}

func TestResolvePrefixedComponentOnly(t *testing.T) {
	components := NewComponentSet()
	components.Register(&Component{
		Name:    "RPostgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("prefixed component")},
	})

	r := NewResolverFor(components)

	drv, err := r.Resolve("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "prefixed component", label(t, drv))
}

func TestResolveBareComponentWithoutExportFallsThrough(t *testing.T) {
	components := NewComponentSet()
	// Component with the right identity but no matching export does not stop
	// the search.
	components.Register(&Component{
		Name:    "Postgres",
		Exports: map[string]DriverFunc{"Other": constructor("wrong export")},
	})
	components.Register(&Component{
		Name:    "RPostgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("prefixed component")},
	})

	r := NewResolverFor(components)

	drv, err := r.Resolve("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "prefixed component", label(t, drv))
}

func TestResolveMissListsSearchedLocations(t *testing.T) {
	r := NewResolverFor(NewComponentSet())

	_, err := r.Resolve("Nonexistent")
	require.Error(t, err)

	var notFound *DriverNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Nonexistent", notFound.Name)
	require.Len(t, notFound.Searched, 3)
	assert.Contains(t, notFound.Searched[0], `ambient binding "Nonexistent"`)
	assert.Contains(t, notFound.Searched[1], `loaded component "Nonexistent"`)
	assert.Contains(t, notFound.Searched[2], `loaded component "RNonexistent"`)

	assert.True(t, errors.Is(err, ErrDriverNotFound))
	assert.True(t, IsDriverNotFound(err))
}

func TestResolvePassesExtraArgs(t *testing.T) {
	r := NewResolverFor(NewComponentSet())
	r.Bind("warehouse", constructor("binding"))

	drv, err := r.Resolve("warehouse", "host=localhost", 5432)
	require.NoError(t, err)

	fd := drv.(*fakeDriver)
	assert.Equal(t, []interface{}{"host=localhost", 5432}, fd.args)
}

func TestUnbindRestoresComponentResolution(t *testing.T) {
	components := NewComponentSet()
	components.Register(&Component{
		Name:    "RPostgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("prefixed component")},
	})

	r := NewResolverFor(components)
	r.Bind("Postgres", constructor("binding"))

	drv, err := r.Resolve("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "binding", label(t, drv))

	r.Unbind("Postgres")

	drv, err = r.Resolve("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "prefixed component", label(t, drv))
}

func TestComponentSetLastRegistrationWins(t *testing.T) {
	components := NewComponentSet()
	components.Register(&Component{
		Name:    "RPostgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("first")},
	})
	components.Register(&Component{
		Name:    "RPostgres",
		Exports: map[string]DriverFunc{"Postgres": constructor("second")},
	})

	r := NewResolverFor(components)

	drv, err := r.Resolve("Postgres")
	require.NoError(t, err)
	assert.Equal(t, "second", label(t, drv))
}

func TestResolveNeverLoads(t *testing.T) {
	// Resolution over an empty set fails even for drivers this module ships:
	// loading only happens through package imports, never as a resolution
	// side effect.
	r := NewResolverFor(NewComponentSet())

	_, err := r.Resolve("SQLite")
	assert.True(t, IsDriverNotFound(err))
}
