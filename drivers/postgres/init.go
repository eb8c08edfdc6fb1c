package postgres

import (
	"fmt"
	"time"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/sqltype"
)

func init() {
	dbi.RegisterComponent(&dbi.Component{
		Name: "RPostgres",
		Exports: map[string]dbi.DriverFunc{
			"Postgres": func(args ...interface{}) (dbi.Driver, error) {
				return NewDriver(), nil
			},
		},
	})

	dbi.Generics().RegisterFor(dbi.OpDataType, &Driver{}, dataTypeImpl)
	dbi.Generics().RegisterFor(dbi.OpDataType, &Connection{}, dataTypeImpl)
}

// dataTypeImpl is the dataType override for PostgreSQL receivers. It replaces
// the SQL-92 defaults with native PostgreSQL type names where they differ and
// delegates the rest to the default policy.
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
		return "BOOLEAN", nil
	case time.Time, []time.Time:
		return "TIMESTAMPTZ", nil
	case sqltype.Date, []sqltype.Date:
		return "DATE", nil
	case []byte, [][]byte:
		return "BYTEA", nil
	case float32, float64, []float32, []float64:
		return "DOUBLE PRECISION", nil
	}
	return sqltype.DataType(v)
}
