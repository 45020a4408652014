package plansql

import "github.com/zoobzio/plansql/internal/types"

// Direction represents sort direction.
type Direction = types.Direction

// Re-export direction constants for public API.
const (
	ASC  = types.ASC
	DESC = types.DESC
)

// NullPlacement represents where NULLs are requested to sort.
type NullPlacement = types.NullPlacement

// Re-export null placement constants for public API.
const (
	NullsFirst = types.NullsFirst
	NullsLast  = types.NullsLast
)

// Asc creates an ascending sort key. Without an explicit placement NULLs
// are requested last.
func Asc(column string, nulls ...NullPlacement) SortKey {
	return key(column, types.ASC, types.NullsLast, nulls)
}

// Desc creates a descending sort key. Without an explicit placement NULLs
// are requested first.
func Desc(column string, nulls ...NullPlacement) SortKey {
	return key(column, types.DESC, types.NullsFirst, nulls)
}

func key(column string, dir Direction, def NullPlacement, nulls []NullPlacement) SortKey {
	k := SortKey{Column: column, Direction: dir, Nulls: def}
	if len(nulls) > 0 {
		k.Nulls = nulls[0]
	}
	return k
}
