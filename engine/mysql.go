package engine

import (
	"context"
	"database/sql"

	"github.com/go-sql-driver/mysql"
	"github.com/zoobzio/plansql/dialect"
)

func init() {
	RegisterOpen(dialect.MySQL, mysqlOpen)
}

func mysqlOpen(_ context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, err
	}
	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}
