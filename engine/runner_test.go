package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/plansql/dialect"
	"github.com/zoobzio/plansql/fixture"
)

type stubEngine struct {
	err   error
	table *fixture.Table
	id    dialect.ID
}

func (s *stubEngine) Dialect() dialect.ID { return s.id }

func (s *stubEngine) Query(context.Context, string) (*fixture.Table, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.table, nil
}

func (s *stubEngine) Close() error { return nil }

func loadSortFixtures(t *testing.T) *fixture.File {
	t.Helper()
	f, err := fixture.Load("../testdata/sort.yaml")
	require.NoError(t, err)
	return f
}

func openEmbedded(t *testing.T) []Engine {
	t.Helper()
	var engines []Engine
	for _, id := range []dialect.ID{dialect.SQLite, dialect.DuckDB} {
		e, err := Open(context.Background(), id, ":memory:")
		require.NoError(t, err)
		t.Cleanup(func() { _ = e.Close() })
		engines = append(engines, e)
	}
	return engines
}

func TestRunner_EmbeddedEngines(t *testing.T) {
	f := loadSortFixtures(t)

	reports, err := NewRunner(openEmbedded(t), WithParallelism(2)).Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, reports, len(f.Scenarios)*2)

	for i, rep := range reports {
		assert.Equal(t, StatusPass, rep.Status, "%s/%s: %v %s", rep.Scenario, rep.Dialect, rep.Err, rep.Diff)
		assert.NotEmpty(t, rep.SQL)
		assert.Equal(t, f.Scenarios[i/2].Name, rep.Scenario)
	}
	// Dialects are ordered within a scenario.
	assert.Equal(t, dialect.DuckDB, reports[0].Dialect)
	assert.Equal(t, dialect.SQLite, reports[1].Dialect)
	assert.False(t, Failed(reports))
}

func TestRunner_Statuses(t *testing.T) {
	f := loadSortFixtures(t)

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engines := []Engine{
		&stubEngine{id: dialect.MySQL, err: errors.New("connection reset")},
		&stubEngine{id: dialect.Postgres, table: &fixture.Table{Columns: []string{"a"}, Rows: [][]any{{int64(1)}}}},
	}
	reports, err := NewRunner(engines, WithLogger(logger)).Run(context.Background(), f)
	require.NoError(t, err)

	byKey := make(map[string]Report, len(reports))
	for _, rep := range reports {
		byKey[rep.Scenario+"/"+string(rep.Dialect)] = rep
	}

	unsupported := byKey["custom_null_ordering/mysql"]
	assert.Equal(t, StatusUnsupported, unsupported.Status)
	assert.Empty(t, unsupported.SQL)

	errored := byKey["plain_limit/mysql"]
	assert.Equal(t, StatusError, errored.Status)
	assert.EqualError(t, errored.Err, "connection reset")

	failed := byKey["plain_limit/postgres"]
	assert.Equal(t, StatusFail, failed.Status)
	assert.NotEmpty(t, failed.Diff)

	assert.True(t, Failed(reports))
	assert.Contains(t, logs.String(), "plan not expressible")
	assert.Contains(t, logs.String(), "query failed")
	assert.Contains(t, logs.String(), "result differs from fixture")
}

func TestRunner_RenderedOutcomeMismatch(t *testing.T) {
	f, err := fixture.Parse([]byte(`s:
  plan:
    columns: [a]
    rows: [[1]]
  sqlite: UNSUPPORTED
`))
	require.NoError(t, err)

	reports, err := NewRunner([]Engine{&stubEngine{id: dialect.SQLite}}).Run(context.Background(), f)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, StatusFail, reports[0].Status)
	assert.Contains(t, reports[0].Diff, "UNSUPPORTED")
}

func TestRunner_InvalidScenario(t *testing.T) {
	f, err := fixture.Parse([]byte("s:\n  plan: {columns: [a], rows: [[1, 2]]}\n"))
	require.NoError(t, err)

	_, err = NewRunner(nil).Run(context.Background(), f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `scenario "s"`)
}

func TestRunner_Cancelled(t *testing.T) {
	f := loadSortFixtures(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner([]Engine{&stubEngine{id: dialect.SQLite, table: &fixture.Table{}}}).Run(ctx, f)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFailed(t *testing.T) {
	assert.False(t, Failed(nil))
	assert.False(t, Failed([]Report{{Status: StatusPass}, {Status: StatusUnsupported}}))
	assert.True(t, Failed([]Report{{Status: StatusPass}, {Status: StatusError}}))
	assert.True(t, Failed([]Report{{Status: StatusFail}}))
}
