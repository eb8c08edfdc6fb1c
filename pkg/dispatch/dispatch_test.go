package dispatch

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct{}

type gadget struct{}

type capable interface {
	IsCapable()
}

type markedThing struct{}

func (markedThing) IsCapable() {}

func constant(s string) Func {
	return func(recv interface{}, args ...interface{}) (interface{}, error) {
		return s, nil
	}
}

func TestDispatchExactTypeWinsOverDefault(t *testing.T) {
	tbl := NewTable()
	tbl.RegisterDefault("op", constant("default"))
	tbl.RegisterFor("op", widget{}, constant("widget"))

	res, err := tbl.Dispatch("op", widget{})
	require.NoError(t, err)
	assert.Equal(t, "widget", res)

	// An unrelated type falls back to the default.
	res, err = tbl.Dispatch("op", gadget{})
	require.NoError(t, err)
	assert.Equal(t, "default", res)
}

func TestDispatchInterfaceMatch(t *testing.T) {
	tbl := NewTable()
	tbl.Register("op", reflect.TypeOf((*capable)(nil)).Elem(), constant("capable"))

	res, err := tbl.Dispatch("op", markedThing{})
	require.NoError(t, err)
	assert.Equal(t, "capable", res)

	// A type that does not satisfy the interface has no implementation.
	_, err = tbl.Dispatch("op", widget{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOperationNotSupported))
}

func TestDispatchExactBeatsInterface(t *testing.T) {
	tbl := NewTable()
	tbl.Register("op", reflect.TypeOf((*capable)(nil)).Elem(), constant("capable"))
	tbl.RegisterFor("op", markedThing{}, constant("exact"))

	res, err := tbl.Dispatch("op", markedThing{})
	require.NoError(t, err)
	assert.Equal(t, "exact", res)
}

func TestDispatchDeterministicForSameReceiver(t *testing.T) {
	tbl := NewTable()
	tbl.RegisterDefault("op", constant("default"))
	tbl.RegisterFor("op", widget{}, constant("widget"))

	for i := 0; i < 100; i++ {
		res, err := tbl.Dispatch("op", widget{})
		require.NoError(t, err)
		assert.Equal(t, "widget", res)
	}
}

func TestDispatchNoImplementationNoDefault(t *testing.T) {
	tbl := NewTable()
	tbl.RegisterFor("op", widget{}, constant("widget"))

	_, err := tbl.Dispatch("op", gadget{})
	require.Error(t, err)

	var unsupported *UnsupportedOperationError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "op", unsupported.Operation)
	assert.Equal(t, reflect.TypeOf(gadget{}), unsupported.ReceiverType)
	assert.True(t, errors.Is(err, ErrOperationNotSupported))
}

func TestDispatchUnknownOperation(t *testing.T) {
	tbl := NewTable()

	_, err := tbl.Dispatch("nonexistent", widget{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOperationNotSupported))
}

func TestDispatchNilReceiverUsesDefault(t *testing.T) {
	tbl := NewTable()
	tbl.RegisterDefault("op", constant("default"))
	tbl.RegisterFor("op", widget{}, constant("widget"))

	res, err := tbl.Dispatch("op", nil)
	require.NoError(t, err)
	assert.Equal(t, "default", res)
}

func TestRegisterReplacesImplementation(t *testing.T) {
	tbl := NewTable()
	tbl.RegisterFor("op", widget{}, constant("first"))
	tbl.RegisterFor("op", widget{}, constant("second"))

	res, err := tbl.Dispatch("op", widget{})
	require.NoError(t, err)
	assert.Equal(t, "second", res)
}

func TestImplementationReportsSelection(t *testing.T) {
	tbl := NewTable()
	tbl.RegisterDefault("op", constant("default"))

	fn, ok := tbl.Implementation("op", widget{})
	require.True(t, ok)
	res, err := fn(widget{})
	require.NoError(t, err)
	assert.Equal(t, "default", res)

	_, ok = tbl.Implementation("other", widget{})
	assert.False(t, ok)
}

func TestOperations(t *testing.T) {
	tbl := NewTable()
	tbl.RegisterDefault("a", constant("a"))
	tbl.RegisterFor("b", widget{}, constant("b"))

	ops := tbl.Operations()
	assert.ElementsMatch(t, []string{"a", "b"}, ops)
}
