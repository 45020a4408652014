package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/plansql"
	"github.com/zoobzio/plansql/dialect"
)

const sortFixtures = "../testdata/sort.yaml"

func TestLoad(t *testing.T) {
	f, err := Load(sortFixtures)
	require.NoError(t, err)

	assert.Equal(t, sortFixtures, f.Path)
	names := make([]string, len(f.Scenarios))
	for i, s := range f.Scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"default_null_ordering",
		"custom_null_ordering",
		"order_with_limit",
		"plain_limit",
	}, names)

	s, ok := f.Scenario("custom_null_ordering")
	require.True(t, ok)
	assert.Equal(t, dialect.All(), s.Dialects())
	assert.True(t, s.Expected[dialect.MySQL].IsUnsupported())
	assert.False(t, s.Expected[dialect.Postgres].IsUnsupported())
	assert.Equal(t, []string{"a", "b", "c"}, s.Plan.Columns)
	require.Len(t, s.Plan.OrderBy, 2)
	assert.Equal(t, SortSpec{Column: "a", Direction: "desc", Nulls: "first"}, s.Plan.OrderBy[0])

	_, ok = f.Scenario("missing")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read fixture file")
}

func TestLoad_ErrorNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- a\n- b\n"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestParse_Empty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, f.Scenarios)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		errSubstr string
		errIs     error
	}{
		{
			name:      "invalid yaml",
			input:     "a: [",
			errSubstr: "invalid fixture yaml",
		},
		{
			name:      "sequence root",
			input:     "- a\n",
			errSubstr: "fixture root must be a mapping, got sequence",
		},
		{
			name:      "scalar scenario",
			input:     "s: 1\n",
			errSubstr: `scenario "s" must be a mapping, got scalar`,
		},
		{
			name:      "missing plan",
			input:     "s:\n  postgres: UNSUPPORTED\n",
			errSubstr: `scenario "s" has no plan`,
		},
		{
			name:      "unknown dialect",
			input:     "s:\n  plan: {columns: [a], rows: [[1]]}\n  oracle: UNSUPPORTED\n",
			errSubstr: `scenario "s": unknown dialect: "oracle"`,
			errIs:     dialect.ErrUnknownDialect,
		},
		{
			name:      "empty outcome",
			input:     "s:\n  plan: {columns: [a], rows: [[1]]}\n  postgres: \"\"\n",
			errSubstr: "empty outcome text",
		},
		{
			name:      "malformed plan",
			input:     "s:\n  plan: [1, 2]\n",
			errSubstr: `scenario "s": invalid plan`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
			}
		})
	}
}

func TestParse_DialectKeysAreCaseInsensitive(t *testing.T) {
	f, err := Parse([]byte("s:\n  plan: {columns: [a], rows: [[1]]}\n  POSTGRES: UNSUPPORTED\n"))
	require.NoError(t, err)
	require.Len(t, f.Scenarios, 1)
	assert.Contains(t, f.Scenarios[0].Expected, dialect.Postgres)
}

func TestScenario_Build(t *testing.T) {
	f, err := Parse([]byte("s:\n  plan: {columns: [a], rows: [[1, 2]]}\n"))
	require.NoError(t, err)

	_, err = f.Scenarios[0].Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, plansql.ErrInvalidPlan)
	assert.Contains(t, err.Error(), `scenario "s"`)
}

func TestCheck_SortFixtures(t *testing.T) {
	f, err := Load(sortFixtures)
	require.NoError(t, err)

	mismatches, err := f.Check()
	require.NoError(t, err)
	for _, m := range mismatches {
		t.Error(m.String())
	}
}

func TestCheck_Mismatch(t *testing.T) {
	f, err := Parse([]byte(`s:
  plan:
    columns: [a]
    rows: [[1]]
  postgres: "SELECT 1"
  mysql: UNSUPPORTED
`))
	require.NoError(t, err)

	mismatches, err := f.Check()
	require.NoError(t, err)
	require.Len(t, mismatches, 2)

	assert.Equal(t, dialect.MySQL, mismatches[0].Dialect)
	assert.True(t, mismatches[0].Want.IsUnsupported())
	assert.Equal(t, "WITH values0 AS (SELECT * FROM (VALUES ROW(1)) AS `_values`(`a`)) SELECT * FROM values0", mismatches[0].Got.SQL)

	assert.Equal(t, dialect.Postgres, mismatches[1].Dialect)
	assert.Contains(t, mismatches[1].String(), "s/postgres: rendered outcome differs from fixture")
	assert.Contains(t, mismatches[1].Diff(), "SELECT 1")
}

func TestCheck_ResultGridMismatch(t *testing.T) {
	f, err := Parse([]byte(`s:
  plan:
    columns: [a]
    rows: [[1], [2]]
    limit: 1
  result: |
    +---+
    | a |
    +---+
    | 2 |
    +---+
`))
	require.NoError(t, err)

	_, err = f.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "result grid does not match plan")
}
