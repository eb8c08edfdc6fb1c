package sqlite

import (
	"fmt"
	"time"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/sqltype"
)

func init() {
	dbi.RegisterComponent(&dbi.Component{
		Name: "RSQLite",
		Exports: map[string]dbi.DriverFunc{
			"SQLite": func(args ...interface{}) (dbi.Driver, error) {
				return NewDriver(), nil
			},
		},
	})

	dbi.Generics().RegisterFor(dbi.OpDataType, &Driver{}, dataTypeImpl)
	dbi.Generics().RegisterFor(dbi.OpDataType, &Connection{}, dataTypeImpl)
}

// dataTypeImpl is the dataType override for SQLite receivers. SQLite has no
// dedicated boolean, date or time storage classes, so those collapse onto
// INTEGER, REAL and TEXT.
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
		return "INTEGER", nil
	case float32, float64, []float32, []float64:
		return "REAL", nil
	case time.Time, []time.Time, sqltype.Date, []sqltype.Date:
		return "TEXT", nil
	}
	return sqltype.DataType(v)
}
