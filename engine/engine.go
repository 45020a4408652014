// Package engine executes rendered SQL against live or embedded databases.
//
// Each supported dialect registers a connector that opens a *sql.DB for a
// DSN. Query results are normalised into fixture tables so they can be
// compared with the result grids of a fixture file.
package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/fixture"
)

// ErrNoConnector is returned when no driver is registered for a dialect.
var ErrNoConnector = errors.New("no connector for dialect")

// Engine runs SQL for one dialect.
type Engine interface {
	Dialect() dialect.ID
	Query(ctx context.Context, query string) (*fixture.Table, error)
	Close() error
}

// OpenFunc opens a database handle for a DSN.
type OpenFunc func(ctx context.Context, dsn string) (*sql.DB, error)

var (
	connectorsMu sync.RWMutex
	connectors   = make(map[dialect.ID]OpenFunc)
)

// RegisterOpen registers the connector for a dialect. Connectors register
// themselves from init; a later registration replaces an earlier one.
func RegisterOpen(id dialect.ID, open OpenFunc) {
	connectorsMu.Lock()
	defer connectorsMu.Unlock()
	connectors[id] = open
}

// Supported returns the dialects that have a connector, sorted.
func Supported() []dialect.ID {
	connectorsMu.RLock()
	defer connectorsMu.RUnlock()
	ids := make([]dialect.ID, 0, len(connectors))
	for id := range connectors {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Open connects to a database of the given dialect.
func Open(ctx context.Context, id dialect.ID, dsn string) (Engine, error) {
	if _, err := dialect.Lookup(id); err != nil {
		return nil, err
	}
	connectorsMu.RLock()
	open, ok := connectors[id]
	connectorsMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoConnector, id)
	}

	db, err := open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", id, err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", id, err)
	}
	return &sqlEngine{db: db, id: id}, nil
}

// FromDB wraps an existing handle.
func FromDB(id dialect.ID, db *sql.DB) Engine {
	return &sqlEngine{db: db, id: id}
}

type sqlEngine struct {
	db *sql.DB
	id dialect.ID
}

func (e *sqlEngine) Dialect() dialect.ID {
	return e.id
}

func (e *sqlEngine) Query(ctx context.Context, query string) (*fixture.Table, error) {
	rows, err := e.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: query failed: %w", e.id, err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read columns: %w", e.id, err)
	}

	t := &fixture.Table{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%s: failed to scan row: %w", e.id, err)
		}
		for i, v := range values {
			values[i] = normalizeCell(v)
		}
		t.Rows = append(t.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating rows: %w", e.id, err)
	}
	return t, nil
}

func (e *sqlEngine) Close() error {
	return e.db.Close()
}
