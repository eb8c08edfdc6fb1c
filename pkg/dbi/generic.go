package dbi

import (
	"fmt"

	"github.com/freyreeste/DBI/pkg/dispatch"
	"github.com/freyreeste/DBI/pkg/sqltype"
)

// Generic operation names routed through the dispatch table.
const (
	// OpDataType maps a value to the receiving driver's DBMS type name.
	OpDataType = "dataType"

	// OpDescribe produces a best-effort textual summary of a capability object.
	OpDescribe = "describe"
)

// generics is the process-wide dispatch table for cross-cutting operations.
// Defaults are installed here; driver packages register type-specific
// overrides from init.
var generics = dispatch.NewTable()

// Generics returns the process-wide dispatch table. Driver packages use it
// to register overrides for their concrete types.
func Generics() *dispatch.Table {
	return generics
}

func init() {
	generics.RegisterDefault(OpDataType, defaultDataType)
	generics.RegisterDefault(OpDescribe, defaultDescribe)
}

// defaultDataType is the marker-level dataType implementation: the ANSI
// SQL-92 policy from pkg/sqltype, vectorized over records.
func defaultDataType(recv interface{}, args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("dataType expects exactly one value, got %d", len(args))
	}
	if rec, ok := args[0].(sqltype.Record); ok {
		return sqltype.DataTypes(rec)
	}
	return sqltype.DataType(args[0])
}

// DataType maps value to a DBMS type name in the context of obj (a driver or
// connection). An override registered for obj's concrete type wins; otherwise
// the default SQL-92 policy applies. A nil obj always selects the default.
func DataType(obj interface{}, value interface{}) (string, error) {
	res, err := generics.Dispatch(OpDataType, obj, value)
	if err != nil {
		return "", err
	}
	s, ok := res.(string)
	if !ok {
		return "", fmt.Errorf("dataType for %T returned %T, want string", value, res)
	}
	return s, nil
}

// ColumnTypes maps a structured record to one DBMS type name per column, in
// column order, in the context of obj. Like DataType, the receiver's
// override wins over the default policy.
func ColumnTypes(obj interface{}, rec sqltype.Record) ([]string, error) {
	res, err := generics.Dispatch(OpDataType, obj, rec)
	if err != nil {
		return nil, err
	}
	types, ok := res.([]string)
	if !ok {
		return nil, fmt.Errorf("dataType for record returned %T, want []string", res)
	}
	return types, nil
}
