package fixture

import (
	"sort"
	"strings"

	"github.com/zoobzio/plansql"
)

// Evaluate computes the result of a plan in memory. It is the reference the
// result grids of a fixture are checked against; sorting is stable, so rows
// with equal keys keep source order.
func Evaluate(plan plansql.Node) *Table {
	src := plan.Source()
	out := &Table{Columns: append([]string(nil), src.Columns...)}
	for _, row := range src.Rows {
		r := make([]any, len(row))
		for i, v := range row {
			r[i] = v.Any()
		}
		out.Rows = append(out.Rows, r)
	}

	var keys []plansql.SortKey
	limit := -1
	switch n := plan.(type) {
	case *plansql.OrderBy:
		keys = n.Keys
	case *plansql.Limit:
		limit = n.Count
		if ob, ok := n.Input.(*plansql.OrderBy); ok {
			keys = ob.Keys
		}
	}

	if len(keys) > 0 {
		index := make(map[string]int, len(src.Columns))
		for i, c := range src.Columns {
			index[c] = i
		}
		sort.SliceStable(out.Rows, func(i, j int) bool {
			for _, k := range keys {
				c := compareKey(out.Rows[i][index[k.Column]], out.Rows[j][index[k.Column]], k)
				if c != 0 {
					return c < 0
				}
			}
			return false
		})
	}

	if limit >= 0 && limit < len(out.Rows) {
		out.Rows = out.Rows[:limit]
	}
	return out
}

// compareKey orders two cells under one sort key.
func compareKey(a, b any, k plansql.SortKey) int {
	if a == nil || b == nil {
		if a == nil && b == nil {
			return 0
		}
		// NULL placement is independent of direction.
		first := k.Nulls == plansql.NullsFirst
		if (a == nil) == first {
			return -1
		}
		return 1
	}
	c := compareValues(a, b)
	if k.Direction == plansql.DESC {
		return -c
	}
	return c
}

func compareValues(a, b any) int {
	switch x := a.(type) {
	case int64:
		if y, ok := b.(int64); ok {
			switch {
			case x < y:
				return -1
			case x > y:
				return 1
			}
			return 0
		}
		// integers sort before strings in mixed columns
		return -1
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
		return 1
	}
	return 0
}
