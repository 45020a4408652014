package render

import (
	"strconv"

	"github.com/zoobzio/plansql/dialect"
)

// Limit returns the text placed after SELECT and the text appended to the
// statement for a row limit. Exactly one of the two is non-empty.
func Limit(n int, d dialect.Dialect) (prefix, suffix string) {
	count := strconv.Itoa(n)
	switch d.Limit {
	case dialect.LimitClause:
		return "", " LIMIT " + count
	case dialect.TopClause:
		return "TOP " + count + " ", ""
	}
	panic("render: unknown limit strategy for dialect " + string(d.ID))
}
