package render

import (
	"strings"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/types"
)

// OrderBy renders the sort keys of an ORDER BY clause, without the keyword.
//
// Explicit dialects write every key verbatim. DefaultOnly dialects omit the
// NULLS token when the requested placement matches the dialect default and
// fail with UnsupportedFeatureError otherwise; the first such key aborts the
// whole clause.
func OrderBy(keys []types.SortKey, d dialect.Dialect) (string, error) {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		part := QuoteIdentifier(d, k.Column) + " " + string(k.Direction)
		switch d.NullOrdering {
		case dialect.Explicit:
			part += " " + string(k.Nulls)
		case dialect.DefaultOnly:
			if d.Defaults.For(k.Direction) != k.Nulls {
				return "", newNullOrderingError(string(d.ID), k.Nulls, k.Direction)
			}
		default:
			panic("render: unknown null ordering support " + d.NullOrdering.String())
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", "), nil
}
