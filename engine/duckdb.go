package engine

import (
	"context"
	"database/sql"

	"github.com/marcboeker/go-duckdb"
	"github.com/zoobzio/plansql/dialect"
)

func init() {
	RegisterOpen(dialect.DuckDB, duckdbOpen)
}

// duckdbOpen opens a DuckDB database. An empty DSN or ":memory:" opens an
// in-memory database.
func duckdbOpen(_ context.Context, dsn string) (*sql.DB, error) {
	if dsn == ":memory:" {
		dsn = ""
	}
	connector, err := duckdb.NewConnector(dsn, nil)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}
