package render

import (
	"strings"
	"testing"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/internal/types"
)

func twoRows() *types.ValuesSource {
	return &types.ValuesSource{
		Columns: []string{"a", "b"},
		Rows: [][]types.Value{
			{types.Int(1), types.Str("x")},
			{types.Null(), types.Str("y")},
		},
	}
}

func TestValues(t *testing.T) {
	tests := []struct {
		id   dialect.ID
		want string
	}{
		{
			id:   dialect.Postgres,
			want: `SELECT * FROM (VALUES (1, 'x'), (NULL, 'y')) AS "_values"("a", "b")`,
		},
		{
			id:   dialect.Databricks,
			want: "SELECT * FROM (VALUES (1, 'x'), (NULL, 'y')) AS `_values`(`a`, `b`)",
		},
		{
			id:   dialect.MSSQL,
			want: "SELECT * FROM (VALUES (1, 'x'), (NULL, 'y')) AS [_values]([a], [b])",
		},
		{
			id:   dialect.MySQL,
			want: "SELECT * FROM (VALUES ROW(1, 'x'), ROW(NULL, 'y')) AS `_values`(`a`, `b`)",
		},
		{
			id:   dialect.BigQuery,
			want: "SELECT 1 AS `a`, 'x' AS `b` UNION ALL SELECT NULL AS `a`, 'y' AS `b`",
		},
		{
			id:   dialect.Redshift,
			want: `SELECT 1 AS "a", 'x' AS "b" UNION ALL SELECT NULL AS "a", 'y' AS "b"`,
		},
		{
			id:   dialect.Snowflake,
			want: `SELECT COLUMN1 AS "a", COLUMN2 AS "b" FROM (VALUES (1, 'x'), (NULL, 'y'))`,
		},
		{
			id:   dialect.SQLite,
			want: `SELECT column1 AS "a", column2 AS "b" FROM (VALUES (1, 'x'), (NULL, 'y'))`,
		},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			if got := Values(twoRows(), dialect.MustLookup(tt.id)); got != tt.want {
				t.Errorf("Values() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestValues_SingleRow(t *testing.T) {
	src := &types.ValuesSource{Columns: []string{"only"}, Rows: [][]types.Value{{types.Int(5)}}}

	if got, want := Values(src, dialect.MustLookup(dialect.ClickHouse)), `SELECT 5 AS "only"`; got != want {
		t.Errorf("Values() = %s, want %s", got, want)
	}
	if got, want := Values(src, dialect.MustLookup(dialect.DuckDB)), `SELECT * FROM (VALUES (5)) AS "_values"("only")`; got != want {
		t.Errorf("Values() = %s, want %s", got, want)
	}
}

func TestValues_EveryDialectRendersEveryRow(t *testing.T) {
	src := twoRows()
	for _, id := range dialect.All() {
		got := Values(src, dialect.MustLookup(id))
		for _, lit := range []string{"'x'", "'y'", "NULL", "1"} {
			if !strings.Contains(got, lit) {
				t.Errorf("%s: Values() = %s, missing %s", id, got, lit)
			}
		}
	}
}

func TestValues_UnknownStrategyPanics(t *testing.T) {
	d := dialect.MustLookup(dialect.Postgres)
	d.Values = dialect.ValuesStrategy(99)
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic")
		}
	}()
	Values(twoRows(), d)
}
