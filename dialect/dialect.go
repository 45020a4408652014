// Package dialect describes the SQL engines plansql can render for.
//
// Each engine is a Dialect value: an immutable bundle of the capabilities the
// clause renderers consult (identifier quoting, literal escaping, how a
// literal table is constructed, whether NULLS FIRST/LAST can be written, and
// how a row limit is expressed). The set of dialects is closed and fixed at
// package initialization.
package dialect

import (
	"strconv"

	"github.com/zoobzio/plansql/internal/types"
)

// ID identifies a registered dialect.
type ID string

// Registered dialect identifiers.
const (
	Athena     ID = "athena"
	BigQuery   ID = "bigquery"
	ClickHouse ID = "clickhouse"
	Databricks ID = "databricks"
	DataFusion ID = "datafusion"
	Dremio     ID = "dremio"
	DuckDB     ID = "duckdb"
	Generic    ID = "generic"
	MSSQL      ID = "mssql"
	MySQL      ID = "mysql"
	Postgres   ID = "postgres"
	Redshift   ID = "redshift"
	Snowflake  ID = "snowflake"
	SQLite     ID = "sqlite"
)

// String returns the dialect identifier.
func (id ID) String() string {
	return string(id)
}

// ValuesStrategy selects how a literal multi-row table is constructed.
type ValuesStrategy int

const (
	// NativeTableConstructor: SELECT * FROM (VALUES (1, 2), (3, 4)) AS t(a, b).
	NativeTableConstructor ValuesStrategy = iota
	// RowConstructor: SELECT * FROM (VALUES ROW(1, 2), ROW(3, 4)) AS t(a, b).
	RowConstructor
	// UnionAllSynthesis: SELECT 1 AS a, 2 AS b UNION ALL SELECT 3 AS a, 4 AS b.
	UnionAllSynthesis
	// PositionalValuesWithRename: SELECT column1 AS a, column2 AS b FROM (VALUES (1, 2), (3, 4)).
	PositionalValuesWithRename
)

func (s ValuesStrategy) String() string {
	switch s {
	case NativeTableConstructor:
		return "native table constructor"
	case RowConstructor:
		return "row constructor"
	case UnionAllSynthesis:
		return "union all synthesis"
	case PositionalValuesWithRename:
		return "positional values with rename"
	}
	return "unknown values strategy"
}

// NullOrderingSupport classifies whether NULLS FIRST/LAST may be written.
type NullOrderingSupport int

const (
	// Explicit dialects accept NULLS FIRST and NULLS LAST in ORDER BY.
	Explicit NullOrderingSupport = iota
	// DefaultOnly dialects sort NULLs by a fixed convention that cannot be overridden.
	DefaultOnly
)

func (s NullOrderingSupport) String() string {
	switch s {
	case Explicit:
		return "explicit"
	case DefaultOnly:
		return "default only"
	}
	return "unknown null ordering support"
}

// LimitStrategy selects how a row limit is written.
type LimitStrategy int

const (
	// LimitClause appends LIMIT n after ORDER BY.
	LimitClause LimitStrategy = iota
	// TopClause writes SELECT TOP n.
	TopClause
)

func (s LimitStrategy) String() string {
	switch s {
	case LimitClause:
		return "LIMIT"
	case TopClause:
		return "TOP"
	}
	return "unknown limit strategy"
}

// LiteralEscape selects how string literals escape special characters.
type LiteralEscape int

const (
	// EscapeQuoteDoubling doubles embedded single quotes.
	EscapeQuoteDoubling LiteralEscape = iota
	// EscapeQuoteDoublingWithBackslash doubles single quotes and backslashes.
	EscapeQuoteDoublingWithBackslash
	// EscapeBackslash prefixes single quotes and backslashes with a backslash.
	EscapeBackslash
)

// QuotePair holds the opening and closing identifier quote characters.
type QuotePair struct {
	Open  string
	Close string
}

// DefaultNullOrdering records where NULLs land when no placement is written.
type DefaultNullOrdering struct {
	Asc  types.NullPlacement
	Desc types.NullPlacement
}

// For returns the default placement for a sort direction.
func (d DefaultNullOrdering) For(dir types.Direction) types.NullPlacement {
	if dir == types.DESC {
		return d.Desc
	}
	return d.Asc
}

// Dialect is the capability description of one engine.
//
//nolint:govet // fieldalignment: grouped by concern
type Dialect struct {
	ID          ID
	Name        string
	Quote       QuotePair
	StringQuote string
	Escape      LiteralEscape
	NullKeyword string

	Values           ValuesStrategy
	PositionalPrefix string // PositionalValuesWithRename only
	PositionalBase   int    // PositionalValuesWithRename only

	NullOrdering NullOrderingSupport
	Defaults     DefaultNullOrdering

	Limit LimitStrategy
}

// PositionalColumn returns the engine-assigned name of the i-th (zero based)
// column of an unaliased VALUES list.
func (d Dialect) PositionalColumn(i int) string {
	return d.PositionalPrefix + strconv.Itoa(d.PositionalBase+i)
}
