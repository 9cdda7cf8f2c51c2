// Package config loads the ddlgen command-line configuration.
//
// Values are layered with koanf. Precedence, from lowest to highest:
// defaults, the ddlgen.yaml file, DDLGEN_ environment variables and
// explicitly set flags.
package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/syssam/ddlgen/dialect"
)

// Default configuration values.
const (
	DefaultConfigFile = "ddlgen.yaml"
	DefaultSchemaFile = "schema.yaml"
	DefaultDialect    = dialect.SQLServer
	DefaultOut        = "."
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "DDLGEN_"

// Config holds the command-line configuration.
type Config struct {
	// Dialect is the target dialect, or one of its aliases.
	Dialect string `koanf:"dialect"`
	// DSN is the data source name used by the apply command.
	DSN string `koanf:"dsn"`
	// Schema is the path of the YAML schema file.
	Schema string `koanf:"schema"`
	// Out is the output directory of the export command.
	Out string `koanf:"out"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `koanf:"log_level"`
	// LogFormat is one of text or json.
	LogFormat string `koanf:"log_format"`
}

// Load loads the configuration. An empty cfgFile reads ./ddlgen.yaml if it
// exists. Only the flags that were explicitly set override other layers.
// It returns the configuration and the path of the file used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	// 1. Defaults.
	if err := k.Load(confmap.Provider(map[string]any{
		"dialect":    DefaultDialect,
		"schema":     DefaultSchemaFile,
		"out":        DefaultOut,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
	}, "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file.
	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// 3. Environment: DDLGEN_LOG_LEVEL -> log_level.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}

// findConfigFile returns the config file to use.
// Priority: explicit path > ddlgen.yaml > ddlgen.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{DefaultConfigFile, "ddlgen.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Validate checks the configuration and normalizes the dialect name.
func (c *Config) Validate() error {
	d, ok := dialect.Parse(c.Dialect)
	if !ok {
		return fmt.Errorf("invalid dialect %q (expected one of %s)", c.Dialect, strings.Join(dialect.Names(), ", "))
	}
	c.Dialect = d
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.LogFormat)
	}
	return nil
}

// ParseLevel parses a log level name.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// Logger returns a logger writing to w in the configured level and format.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Debug reports if the configured log level enables debug logs.
func (c *Config) Debug() bool {
	level, err := ParseLevel(c.LogLevel)
	return err == nil && level <= slog.LevelDebug
}

type (
	configKey struct{}
	loggerKey struct{}
)

// WithConfig returns a copy of ctx carrying cfg and its logger.
func WithConfig(ctx context.Context, cfg *Config, logger *slog.Logger) context.Context {
	ctx = context.WithValue(ctx, configKey{}, cfg)
	return context.WithValue(ctx, loggerKey{}, logger)
}

// FromContext returns the configuration stored in ctx. It returns the
// default configuration if none is stored.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	return &Config{
		Dialect:   DefaultDialect,
		Schema:    DefaultSchemaFile,
		Out:       DefaultOut,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// GetLogger returns the logger stored in ctx.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
