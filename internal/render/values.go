package render

import (
	"strings"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/types"
)

// ValuesAlias is the derived-table alias given to a literal VALUES list.
const ValuesAlias = "_values"

// Values renders a literal row source as a SELECT statement.
// It never fails: every dialect has some way to build a literal table.
func Values(src *types.ValuesSource, d dialect.Dialect) string {
	var sql strings.Builder
	switch d.Values {
	case dialect.NativeTableConstructor, dialect.RowConstructor:
		sql.WriteString("SELECT * FROM (VALUES ")
		writeRows(&sql, src, d)
		sql.WriteString(") AS ")
		sql.WriteString(QuoteIdentifier(d, ValuesAlias))
		sql.WriteString("(")
		for i, col := range src.Columns {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(QuoteIdentifier(d, col))
		}
		sql.WriteString(")")
	case dialect.UnionAllSynthesis:
		for r, row := range src.Rows {
			if r > 0 {
				sql.WriteString(" UNION ALL ")
			}
			sql.WriteString("SELECT ")
			for i, v := range row {
				if i > 0 {
					sql.WriteString(", ")
				}
				sql.WriteString(Literal(d, v))
				sql.WriteString(" AS ")
				sql.WriteString(QuoteIdentifier(d, src.Columns[i]))
			}
		}
	case dialect.PositionalValuesWithRename:
		sql.WriteString("SELECT ")
		for i, col := range src.Columns {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(d.PositionalColumn(i))
			sql.WriteString(" AS ")
			sql.WriteString(QuoteIdentifier(d, col))
		}
		sql.WriteString(" FROM (VALUES ")
		writeRows(&sql, src, d)
		sql.WriteString(")")
	default:
		panic("render: unknown values strategy " + d.Values.String())
	}
	return sql.String()
}

// writeRows writes the comma separated row list of a VALUES clause.
func writeRows(sql *strings.Builder, src *types.ValuesSource, d dialect.Dialect) {
	for r, row := range src.Rows {
		if r > 0 {
			sql.WriteString(", ")
		}
		if d.Values == dialect.RowConstructor {
			sql.WriteString("ROW")
		}
		sql.WriteString("(")
		for i, v := range row {
			if i > 0 {
				sql.WriteString(", ")
			}
			sql.WriteString(Literal(d, v))
		}
		sql.WriteString(")")
	}
}
