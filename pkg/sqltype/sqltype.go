// Package sqltype implements the default mapping from Go values to ANSI
// SQL-92 column type names. It is the fallback policy for the generic
// dataType operation; drivers register overrides for vendor-specific type
// systems.
//
// The mapping is resolved from the static type, so an empty typed slice maps
// the same as a populated one. Engines with fixed-precision arithmetic may
// truncate values mapped through this policy; the policy does not attempt to
// detect or prevent that.
package sqltype

import (
	"fmt"
	"reflect"
	"time"
)

// SQL-92 type names produced by the default policy.
const (
	TypeInteger   = "INTEGER"
	TypeSmallInt  = "SMALLINT"
	TypeDouble    = "DOUBLE"
	TypeDate      = "DATE"
	TypeTimestamp = "TIMESTAMP"
	TypeTime      = "TIME"
	TypeText      = "TEXT"
	TypeBlob      = "BLOB"
)

// Date is a calendar date without a time component. time.Time always carries
// an absolute instant, so date-only values need their own type to map to
// DATE rather than TIMESTAMP.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String returns the date in ISO-8601 form.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Column is one named column of a Record with its values.
type Column struct {
	Name   string
	Values interface{}
}

// Record is an ordered collection of named, heterogeneously typed columns.
// It is the one structured input the default policy composes over: type
// mapping applies recursively per column, preserving column order.
type Record struct {
	Columns []Column
}

// IsCapable marks Record as a dispatch participant.
func (Record) IsCapable() {}

var (
	dateType      = reflect.TypeOf(Date{})
	timeType      = reflect.TypeOf(time.Time{})
	durationType  = reflect.TypeOf(time.Duration(0))
	byteSliceType = reflect.TypeOf([]byte(nil))
	recordType    = reflect.TypeOf(Record{})
)

// DataType maps a scalar value or a homogeneous sequence to its SQL-92 type
// name. Records must go through DataTypes; anything outside the policy is an
// error that propagates unchanged.
func DataType(v interface{}) (string, error) {
	if v == nil {
		return "", fmt.Errorf("sqltype: cannot map nil value")
	}
	return dataTypeOf(reflect.TypeOf(v))
}

// DataTypes maps a Record to one SQL-92 type name per column, in column
// order, by recursively applying the scalar policy to each column's values.
func DataTypes(r Record) ([]string, error) {
	return ColumnTypesFunc(r, DataType)
}

// ColumnTypesFunc maps a Record using the supplied scalar policy. Driver
// overrides reuse this to vectorize their own scalar mappings without
// restating the column walk.
func ColumnTypesFunc(r Record, scalar func(interface{}) (string, error)) ([]string, error) {
	types := make([]string, 0, len(r.Columns))
	for _, col := range r.Columns {
		t, err := scalar(col.Values)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", col.Name, err)
		}
		types = append(types, t)
	}
	return types, nil
}

func dataTypeOf(t reflect.Type) (string, error) {
	// Named types before kinds: time.Duration is an int64 underneath and a
	// Record is a struct.
	switch t {
	case dateType:
		return TypeDate, nil
	case timeType:
		return TypeTimestamp, nil
	case durationType:
		return TypeTime, nil
	case byteSliceType:
		return TypeBlob, nil
	case recordType:
		return "", fmt.Errorf("sqltype: records map per column, use DataTypes")
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return TypeInteger, nil
	case reflect.Bool:
		return TypeSmallInt, nil
	case reflect.Float32, reflect.Float64:
		return TypeDouble, nil
	case reflect.String:
		return TypeText, nil
	case reflect.Slice, reflect.Array:
		elem := t.Elem()
		// Sequences of raw byte sequences stay BLOB.
		if elem == byteSliceType {
			return TypeBlob, nil
		}
		return dataTypeOf(elem)
	case reflect.Ptr:
		return dataTypeOf(t.Elem())
	}

	return "", fmt.Errorf("sqltype: no SQL-92 mapping for Go type %s", t)
}
