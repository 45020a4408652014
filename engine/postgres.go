package engine

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/zoobzio/plansql/dialect"
)

func init() {
	RegisterOpen(dialect.Postgres, postgresOpen)
	// Redshift speaks the PostgreSQL wire protocol.
	RegisterOpen(dialect.Redshift, postgresOpen)
}

func postgresOpen(_ context.Context, dsn string) (*sql.DB, error) {
	cfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	return stdlib.OpenDB(*cfg), nil
}
