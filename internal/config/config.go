// Package config loads plansql settings from defaults, a YAML file,
// PLANSQL_ environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	"github.com/zoobzio/plansql/dialect"
)

// Defaults.
const (
	DefaultFixtures    = "testdata/sort.yaml"
	DefaultParallelism = 4
	DefaultLogLevel    = "info"
	DefaultOutput      = OutputText
	EnvPrefix          = "PLANSQL_"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds resolved settings.
type Config struct {
	Connections map[string]string `koanf:"connections"`
	Fixtures    string            `koanf:"fixtures"`
	LogLevel    string            `koanf:"log_level"`
	Output      string            `koanf:"output"`
	File        string            `koanf:"-"`
	Parallelism int               `koanf:"parallelism"`
}

// candidates are searched in the working directory when no file is given.
var candidates = []string{"plansql.yaml", "plansql.yml"}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range candidates {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load resolves the configuration. cfgFile may be empty; flags may be nil.
// Only flags that were explicitly set override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"fixtures":    DefaultFixtures,
		"parallelism": DefaultParallelism,
		"log_level":   DefaultLogLevel,
		"output":      DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// PLANSQL_LOG_LEVEL -> log_level, PLANSQL_CONNECTIONS__POSTGRES -> connections.postgres
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the resolved values.
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return fmt.Errorf("parallelism must be positive, got %d", c.Parallelism)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("unknown output format %q (want %s or %s)", c.Output, OutputText, OutputJSON)
	}
	for name := range c.Connections {
		if _, err := dialect.Parse(name); err != nil {
			return fmt.Errorf("connection %q: %w", name, err)
		}
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Targets returns the configured connections keyed by dialect, sorted by
// dialect.
func (c *Config) Targets() ([]Target, error) {
	targets := make([]Target, 0, len(c.Connections))
	for name, dsn := range c.Connections {
		id, err := dialect.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("connection %q: %w", name, err)
		}
		targets = append(targets, Target{Dialect: id, DSN: dsn})
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i].Dialect < targets[j].Dialect })
	return targets, nil
}

// Target is one engine connection.
type Target struct {
	Dialect dialect.ID
	DSN     string
}
