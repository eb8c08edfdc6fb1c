package mysql

import (
	"fmt"
	"time"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/sqltype"
)

// The component registers under its bare name rather than the usual
// "R"-prefixed identity, so resolution finds it in the second stage.
func init() {
	dbi.RegisterComponent(&dbi.Component{
		Name: "MySQL",
		Exports: map[string]dbi.DriverFunc{
			"MySQL": func(args ...interface{}) (dbi.Driver, error) {
				return NewDriver(), nil
			},
		},
	})

	dbi.Generics().RegisterFor(dbi.OpDataType, &Driver{}, dataTypeImpl)
	dbi.Generics().RegisterFor(dbi.OpDataType, &Connection{}, dataTypeImpl)
}

// dataTypeImpl is the dataType override for MySQL receivers.
func dataTypeImpl(recv interface{}, args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("dataType expects exactly one value, got %d", len(args))
	}
	if rec, ok := args[0].(sqltype.Record); ok {
		return sqltype.ColumnTypesFunc(rec, scalarDataType)
	}
	return scalarDataType(args[0])
}

func scalarDataType(v interface{}) (string, error) {
	switch v.(type) {
	case bool, []bool:
		return "TINYINT(1)", nil
	case time.Time, []time.Time:
		return "DATETIME", nil
	case []byte, [][]byte:
		return "BLOB", nil
	case float32, float64, []float32, []float64:
		return "DOUBLE", nil
	}
	return sqltype.DataType(v)
}
