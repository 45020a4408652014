package engine

import (
	"context"
	"database/sql"

	clickhouse "github.com/ClickHouse/clickhouse-go/v2"
	"github.com/zoobzio/plansql/dialect"
)

func init() {
	RegisterOpen(dialect.ClickHouse, clickhouseOpen)
}

func clickhouseOpen(_ context.Context, dsn string) (*sql.DB, error) {
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	return clickhouse.OpenDB(opts), nil
}
