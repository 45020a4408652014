// Package plansql renders small relational query plans into dialect-specific SQL.
//
// A plan is a literal row source, optionally wrapped by an ORDER BY and a
// LIMIT. Rendering wraps the source in a common table expression and applies
// the ordering and limit the way the target engine expects:
//
//	WITH values0 AS (<source>) SELECT * FROM values0 ORDER BY ... LIMIT n
//
// # Basic Usage
//
//	plan := plansql.Values("a", "b", "c").
//		Row(1, 2, "A").
//		Row(nil, 5, "BB").
//		OrderBy(plansql.Desc("a", plansql.NullsLast), plansql.Asc("c", plansql.NullsFirst)).
//		Limit(4).
//		MustBuild()
//
//	out := plansql.Render(plan, dialect.Postgres)
//	if out.IsUnsupported() {
//		// out.Reason explains which request the dialect cannot express
//	}
//
// # Unsupported Outcomes
//
// Engines disagree on whether NULLS FIRST/LAST can be written. When a
// dialect cannot express a requested null placement, the outcome is
// Unsupported. That is data, not an error: callers branch on
// Outcome.IsUnsupported. Errors are reserved for configuration defects such
// as an unknown dialect or a structurally invalid plan.
package plansql

import "github.com/zoobzio/plansql/internal/types"

// Node is a query plan node: *ValuesSource, *OrderBy or *Limit.
type Node = types.Node

// ValuesSource is a literal table of ordered columns and rows.
type ValuesSource = types.ValuesSource

// OrderBy sorts a values source.
type OrderBy = types.OrderBy

// Limit caps the row count of its input.
type Limit = types.Limit

// SortKey is one ORDER BY term.
type SortKey = types.SortKey

// Value is a literal cell.
type Value = types.Value

// Kind is the type of a literal value.
type Kind = types.Kind

// KindSet is the union of kinds observed in a column.
type KindSet = types.KindSet

// Re-export value kinds for public API.
const (
	KindNull   = types.KindNull
	KindInt    = types.KindInt
	KindString = types.KindString
)

// Outcome is the result of rendering a plan for one dialect.
type Outcome = types.Outcome

// OutcomeKind distinguishes rendered from unsupported outcomes.
type OutcomeKind = types.OutcomeKind

// Re-export outcome kinds for public API.
const (
	Rendered    = types.Rendered
	Unsupported = types.Unsupported
)

// RenderedOutcome creates an outcome carrying SQL text.
func RenderedOutcome(sql string) Outcome { return types.RenderedOutcome(sql) }

// UnsupportedOutcome creates an unsupported outcome with a diagnostic reason.
func UnsupportedOutcome(reason string) Outcome { return types.UnsupportedOutcome(reason) }

// UnsupportedSentinel is the text form of an unsupported outcome.
const UnsupportedSentinel = types.UnsupportedSentinel

// ErrInvalidPlan marks a structurally invalid plan.
var ErrInvalidPlan = types.ErrInvalidPlan

// Int creates an integer literal.
func Int(v int64) Value { return types.Int(v) }

// Str creates a string literal.
func Str(v string) Value { return types.Str(v) }

// Null creates a NULL literal.
func Null() Value { return types.Null() }
