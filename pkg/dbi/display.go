package dbi

import (
	"fmt"

	"github.com/freyreeste/DBI/pkg/sqltype"
)

// Describe produces a best-effort textual summary of a capability object.
// Overrides registered for the object's concrete type are honored, but any
// error or panic on this path is swallowed and an empty string returned:
// a misbehaving driver must not break generic inspection tooling. This is
// the single place an error is intentionally discarded.
func Describe(v interface{}) (summary string) {
	defer func() {
		if recover() != nil {
			summary = ""
		}
	}()

	res, err := generics.Dispatch(OpDescribe, v)
	if err != nil {
		return ""
	}
	s, ok := res.(string)
	if !ok {
		return ""
	}
	return s
}

// defaultDescribe is the marker-level describe implementation.
func defaultDescribe(recv interface{}, args ...interface{}) (interface{}, error) {
	switch v := recv.(type) {
	case Driver:
		caps := v.Capabilities()
		return fmt.Sprintf("%s driver (%s), %d tracked connection(s)",
			caps.Name, caps.ID, len(v.Connections())), nil
	case Connection:
		state := "disconnected"
		if v.IsConnected() {
			state = "connected"
		}
		return fmt.Sprintf("%s connection %s to %q (%s)",
			v.Type(), v.ID(), v.Config().DatabaseName, state), nil
	case sqltype.Record:
		return fmt.Sprintf("record with %d column(s)", len(v.Columns)), nil
	case nil:
		return "", nil
	default:
		return fmt.Sprintf("%T", recv), nil
	}
}
