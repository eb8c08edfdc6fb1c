package redis

import (
	"fmt"

	"github.com/freyreeste/DBI/pkg/dbi"
	"github.com/freyreeste/DBI/pkg/sqltype"
)

func init() {
	dbi.RegisterComponent(&dbi.Component{
		Name: "RRedis",
		Exports: map[string]dbi.DriverFunc{
			"Redis": func(args ...interface{}) (dbi.Driver, error) {
				return NewDriver(), nil
			},
		},
	})

	dbi.Generics().RegisterFor(dbi.OpDataType, &Driver{}, dataTypeImpl)
	dbi.Generics().RegisterFor(dbi.OpDataType, &Connection{}, dataTypeImpl)
}

// dataTypeImpl is the dataType override for Redis receivers. Redis has no
// column type system: every representable value is stored as a string or a
// raw byte sequence, so the mapping collapses onto TEXT and BLOB. Values the
// default policy rejects stay rejected.
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
	t, err := sqltype.DataType(v)
	if err != nil {
		return "", err
	}
	if t == sqltype.TypeBlob {
		return sqltype.TypeBlob, nil
	}
	return sqltype.TypeText, nil
}
