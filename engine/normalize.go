package engine

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/plansql"
	"github.com/zoobzio/plansql/fixture"
)

// normalizeCell maps driver values onto nil, int64 and string.
func normalizeCell(v any) any {
	switch x := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(x)
	case string, int64:
		return x
	case float64:
		if x == math.Trunc(x) && !math.IsInf(x, 0) {
			return int64(x)
		}
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return normalizeCell(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int64(rv.Uint()) //nolint:gosec // result values are small literals
	case reflect.String:
		return rv.String()
	}
	return v
}

// Normalize coerces cells to the column types of the plan schema. Drivers
// that use the text protocol report integers as strings; a bigint column
// turns them back into int64.
func Normalize(t *fixture.Table, schema *dbml.Table) error {
	types := make(map[string]string, len(schema.Columns))
	for _, col := range schema.Columns {
		types[col.Name] = col.Type
	}
	for r, row := range t.Rows {
		for i, v := range row {
			if i >= len(t.Columns) || types[t.Columns[i]] != plansql.TypeBigint {
				continue
			}
			s, ok := v.(string)
			if !ok {
				continue
			}
			n, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return fmt.Errorf("row %d column %q: %q is not an integer", r, t.Columns[i], s)
			}
			row[i] = n
		}
	}
	return nil
}
