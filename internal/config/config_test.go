package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zoobzio/plansql/dialect"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plansql.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.String("log-level", DefaultLogLevel, "")
	fs.Int("parallelism", DefaultParallelism, "")
	fs.String("output", DefaultOutput, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultFixtures, cfg.Fixtures)
	assert.Equal(t, DefaultParallelism, cfg.Parallelism)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, OutputText, cfg.Output)
	assert.Empty(t, cfg.Connections)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
fixtures: cases/sort.yaml
parallelism: 2
log_level: debug
connections:
  postgres: postgres://localhost/plansql
  duckdb: ":memory:"
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.File)
	assert.Equal(t, "cases/sort.yaml", cfg.Fixtures)
	assert.Equal(t, 2, cfg.Parallelism)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "postgres://localhost/plansql", cfg.Connections["postgres"])

	targets, err := cfg.Targets()
	require.NoError(t, err)
	require.Len(t, targets, 2)
	assert.Equal(t, dialect.DuckDB, targets[0].Dialect)
	assert.Equal(t, dialect.Postgres, targets[1].Dialect)
}

func TestLoad_DiscoversWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "plansql.yml"), []byte("parallelism: 7\n"), 0o600))
	t.Chdir(dir)

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "plansql.yml", cfg.File)
	assert.Equal(t, 7, cfg.Parallelism)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "parallelism: 2\nlog_level: warn\noutput: json\n")
	t.Setenv("PLANSQL_PARALLELISM", "3")
	t.Setenv("PLANSQL_LOG_LEVEL", "error")
	t.Setenv("PLANSQL_CONNECTIONS__SQLITE", ":memory:")

	fs := testFlags(t)
	require.NoError(t, fs.Parse([]string{"--log-level", "debug"}))

	cfg, err := Load(path, fs)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Parallelism, "env overrides file")
	assert.Equal(t, "debug", cfg.LogLevel, "flag overrides env")
	assert.Equal(t, OutputJSON, cfg.Output, "unset flag keeps file value")
	assert.Equal(t, ":memory:", cfg.Connections["sqlite"])
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{Parallelism: 1, LogLevel: "info", Output: OutputText}
	}
	tests := []struct {
		name      string
		mutate    func(*Config)
		errSubstr string
	}{
		{name: "valid"},
		{name: "zero parallelism", mutate: func(c *Config) { c.Parallelism = 0 }, errSubstr: "parallelism"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "loud" }, errSubstr: "invalid log level"},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, errSubstr: "unknown output format"},
		{
			name:      "unknown connection dialect",
			mutate:    func(c *Config) { c.Connections = map[string]string{"oracle": "x"} },
			errSubstr: "unknown dialect",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			if tt.mutate != nil {
				tt.mutate(&cfg)
			}
			err := cfg.Validate()
			if tt.errSubstr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := Config{LogLevel: "WARN"}
	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
