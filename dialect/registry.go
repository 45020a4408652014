package dialect

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/zoobzio/plansql/internal/types"
)

// ErrUnknownDialect is returned when a dialect identifier is not registered.
var ErrUnknownDialect = errors.New("unknown dialect")

var (
	doubleQuote = QuotePair{Open: `"`, Close: `"`}
	backtick    = QuotePair{Open: "`", Close: "`"}
	bracket     = QuotePair{Open: "[", Close: "]"}

	// NULLs compare greater than every value.
	nullsLargest = DefaultNullOrdering{Asc: types.NullsLast, Desc: types.NullsFirst}
	// NULLs compare less than every value.
	nullsSmallest = DefaultNullOrdering{Asc: types.NullsFirst, Desc: types.NullsLast}
	// NULLs sort last in either direction.
	nullsAlwaysLast = DefaultNullOrdering{Asc: types.NullsLast, Desc: types.NullsLast}
)

// base fills the fields shared by every dialect.
func base(id ID, name string, quote QuotePair) Dialect {
	return Dialect{
		ID:          id,
		Name:        name,
		Quote:       quote,
		StringQuote: "'",
		Escape:      EscapeQuoteDoubling,
		NullKeyword: "NULL",
		Values:      NativeTableConstructor,
		Defaults:    nullsLargest,
	}
}

var registry = func() map[ID]Dialect {
	athena := base(Athena, "Athena", doubleQuote)
	athena.Defaults = nullsAlwaysLast

	bigquery := base(BigQuery, "BigQuery", backtick)
	bigquery.Escape = EscapeBackslash
	bigquery.Values = UnionAllSynthesis
	bigquery.Defaults = nullsSmallest

	clickhouse := base(ClickHouse, "ClickHouse", doubleQuote)
	clickhouse.Escape = EscapeQuoteDoublingWithBackslash
	clickhouse.Values = UnionAllSynthesis
	clickhouse.Defaults = nullsAlwaysLast

	databricks := base(Databricks, "Databricks", backtick)
	databricks.Escape = EscapeBackslash
	databricks.Defaults = nullsSmallest

	datafusion := base(DataFusion, "DataFusion", doubleQuote)

	dremio := base(Dremio, "Dremio", doubleQuote)

	duckdb := base(DuckDB, "DuckDB", doubleQuote)
	duckdb.Defaults = nullsAlwaysLast

	generic := base(Generic, "Generic", doubleQuote)

	mssql := base(MSSQL, "SQL Server", bracket)
	mssql.NullOrdering = DefaultOnly
	mssql.Defaults = nullsSmallest
	mssql.Limit = TopClause

	mysql := base(MySQL, "MySQL", backtick)
	mysql.Escape = EscapeQuoteDoublingWithBackslash
	mysql.Values = RowConstructor
	mysql.NullOrdering = DefaultOnly
	mysql.Defaults = nullsSmallest

	postgres := base(Postgres, "PostgreSQL", doubleQuote)

	redshift := base(Redshift, "Redshift", doubleQuote)
	redshift.Values = UnionAllSynthesis

	snowflake := base(Snowflake, "Snowflake", doubleQuote)
	snowflake.Values = PositionalValuesWithRename
	snowflake.PositionalPrefix = "COLUMN"
	snowflake.PositionalBase = 1

	sqlite := base(SQLite, "SQLite", doubleQuote)
	sqlite.Values = PositionalValuesWithRename
	sqlite.PositionalPrefix = "column"
	sqlite.PositionalBase = 1
	sqlite.Defaults = nullsSmallest

	m := make(map[ID]Dialect)
	for _, d := range []Dialect{
		athena, bigquery, clickhouse, databricks, datafusion, dremio, duckdb,
		generic, mssql, mysql, postgres, redshift, snowflake, sqlite,
	} {
		m[d.ID] = d
	}
	return m
}()

// fixtureSet is the dialect set covered by the reference fixtures.
var fixtureSet = []ID{
	Athena, BigQuery, ClickHouse, Databricks, DataFusion,
	DuckDB, MySQL, Postgres, Redshift, Snowflake,
}

// Lookup returns the capabilities of a registered dialect.
func Lookup(id ID) (Dialect, error) {
	d, ok := registry[id]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q", ErrUnknownDialect, string(id))
	}
	return d, nil
}

// MustLookup returns the capabilities of a registered dialect.
// An unknown identifier is a configuration defect and panics.
func MustLookup(id ID) Dialect {
	d, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse resolves a dialect name case-insensitively.
// "default" is accepted as an alias for the generic dialect.
func Parse(name string) (ID, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "default" {
		return Generic, nil
	}
	id := ID(n)
	if _, ok := registry[id]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return id, nil
}

// All returns every registered dialect identifier in lexical order.
func All() []ID {
	ids := make([]ID, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Fixture returns the dialects covered by the reference fixtures.
func Fixture() []ID {
	out := make([]ID, len(fixtureSet))
	copy(out, fixtureSet)
	return out
}
