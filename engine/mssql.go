package engine

import (
	"context"
	"database/sql"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/zoobzio/plansql/dialect"
)

func init() {
	RegisterOpen(dialect.MSSQL, mssqlOpen)
}

func mssqlOpen(_ context.Context, dsn string) (*sql.DB, error) {
	connector, err := mssql.NewConnector(dsn)
	if err != nil {
		return nil, err
	}
	return sql.OpenDB(connector), nil
}
