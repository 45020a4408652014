// Package render holds the clause renderers shared by every dialect.
//
// Each renderer consumes a plan node plus the target dialect's capabilities
// and either writes SQL text or reports that the requested semantics cannot
// be expressed.
package render

import (
	"strconv"
	"strings"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/types"
)

// QuoteIdentifier quotes a column or table name with the dialect's quote
// pair. Embedded closing quote characters are doubled.
func QuoteIdentifier(d dialect.Dialect, name string) string {
	escaped := strings.ReplaceAll(name, d.Quote.Close, d.Quote.Close+d.Quote.Close)
	return d.Quote.Open + escaped + d.Quote.Close
}

// Literal renders a value as a SQL literal.
func Literal(d dialect.Dialect, v types.Value) string {
	switch v.Kind() {
	case types.KindInt:
		return strconv.FormatInt(v.Int(), 10)
	case types.KindString:
		return StringLiteral(d, v.Str())
	case types.KindNull:
		return d.NullKeyword
	}
	panic("render: unknown value kind " + v.Kind().String())
}

// StringLiteral quotes s using the dialect's escape rule.
func StringLiteral(d dialect.Dialect, s string) string {
	q := d.StringQuote
	var escaped string
	switch d.Escape {
	case dialect.EscapeQuoteDoubling:
		escaped = strings.ReplaceAll(s, q, q+q)
	case dialect.EscapeQuoteDoublingWithBackslash:
		escaped = strings.NewReplacer(`\`, `\\`, q, q+q).Replace(s)
	case dialect.EscapeBackslash:
		escaped = strings.NewReplacer(`\`, `\\`, q, `\`+q).Replace(s)
	default:
		panic("render: unknown literal escape for dialect " + string(d.ID))
	}
	return q + escaped + q
}
