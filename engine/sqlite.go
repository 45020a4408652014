package engine

import (
	"context"
	"database/sql"

	"github.com/zoobzio/plansql/dialect"

	_ "modernc.org/sqlite" // sqlite driver
)

func init() {
	RegisterOpen(dialect.SQLite, sqliteOpen)
}

func sqliteOpen(_ context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = ":memory:"
	}
	return sql.Open("sqlite", dsn)
}
