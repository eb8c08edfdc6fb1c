package dbi

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freyreeste/DBI/pkg/sqltype"
)

// vendorDriver carries a dataType override in these tests.
type vendorDriver struct {
	fakeDriver
}

func init() {
	generics.RegisterFor(OpDataType, &vendorDriver{}, func(recv interface{}, args ...interface{}) (interface{}, error) {
		if rec, ok := args[0].(sqltype.Record); ok {
			return sqltype.ColumnTypesFunc(rec, vendorScalar)
		}
		return vendorScalar(args[0])
	})
}

func vendorScalar(v interface{}) (string, error) {
	if _, ok := v.(bool); ok {
		return "BOOLEAN", nil
	}
	if _, ok := v.([]bool); ok {
		return "BOOLEAN", nil
	}
	return sqltype.DataType(v)
}

func TestDataTypeDefaultPolicy(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"integers", []int{1, 2, 3}, "INTEGER"},
		{"logical", []bool{true}, "SMALLINT"},
		{"numeric", 1.5, "DOUBLE"},
		{"character", "x", "TEXT"},
		{"timestamp", time.Now(), "TIMESTAMP"},
		{"elapsed", time.Minute, "TIME"},
		{"raw", []byte{0x01}, "BLOB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DataType(nil, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDataTypeOverrideWinsForReceiver(t *testing.T) {
	got, err := DataType(&vendorDriver{}, true)
	require.NoError(t, err)
	assert.Equal(t, "BOOLEAN", got)

	// A receiver without an override keeps the default policy.
	got, err = DataType(&fakeDriver{}, true)
	require.NoError(t, err)
	assert.Equal(t, "SMALLINT", got)
}

func TestDataTypeOverrideDelegatesUnchangedTypes(t *testing.T) {
	got, err := DataType(&vendorDriver{}, []int{1})
	require.NoError(t, err)
	assert.Equal(t, "INTEGER", got)
}

func TestDataTypeUnmappableValue(t *testing.T) {
	_, err := DataType(nil, make(chan int))
	require.Error(t, err)

	_, err = DataType(&vendorDriver{}, make(chan int))
	require.Error(t, err)
}

func TestColumnTypesDefaultPolicy(t *testing.T) {
	rec := sqltype.Record{Columns: []sqltype.Column{
		{Name: "id", Values: []int{1}},
		{Name: "name", Values: []string{"a"}},
	}}

	types, err := ColumnTypes(nil, rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"INTEGER", "TEXT"}, types)
}

func TestColumnTypesOverrideAppliesPerColumn(t *testing.T) {
	rec := sqltype.Record{Columns: []sqltype.Column{
		{Name: "flag", Values: []bool{true}},
		{Name: "n", Values: []int{1}},
	}}

	types, err := ColumnTypes(&vendorDriver{}, rec)
	require.NoError(t, err)
	assert.Equal(t, []string{"BOOLEAN", "INTEGER"}, types)
}

func TestGenericsTableIsShared(t *testing.T) {
	assert.Same(t, generics, Generics())

	ops := Generics().Operations()
	assert.Contains(t, ops, OpDataType)
	assert.Contains(t, ops, OpDescribe)
}

func TestUnsupportedOperationErrorClass(t *testing.T) {
	_, err := generics.Dispatch("noSuchOperation", &fakeDriver{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOperationNotSupported))
	assert.True(t, IsUnsupported(err))
}
