package gen

import (
	"errors"
	"log/slog"
	"runtime"

	"github.com/syssam/ddlgen/dialect"
)

// Config holds the script generation configuration.
type Config struct {
	// Target is the directory scripts are written to.
	Target string
	// Dialects to render, one script per dialect. Defaults to all dialects.
	Dialects []string
	// Header is written as a comment at the top of each script.
	Header string
	// DropTables prepends a drop table statement for each table.
	DropTables bool
	// Database, if set, prepends a create database statement to the
	// scripts of dialects supporting it.
	Database *Database
	// Workers limits the number of scripts rendered in parallel.
	Workers int
	// Logger reports written scripts.
	Logger *slog.Logger
}

// Database describes the database created at the top of a script.
type Database struct {
	Name     string
	DataFile string
	LogFile  string
}

// Option configures script generation.
type Option func(*Config) error

// WithHeader sets the script header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithDialects sets the dialects to render. Names are resolved with
// dialect.Parse, so aliases such as "mssql" are accepted.
func WithDialects(names ...string) Option {
	return func(c *Config) error {
		if len(names) == 0 {
			return NewConfigError("Dialects", nil, "at least one dialect is required")
		}
		dialects := make([]string, 0, len(names))
		for _, n := range names {
			d, ok := dialect.Parse(n)
			if !ok {
				return NewConfigError("Dialects", n, "unknown dialect")
			}
			dialects = append(dialects, d)
		}
		c.Dialects = dialects
		return nil
	}
}

// WithDropTables prepends drop table statements to the scripts.
func WithDropTables() Option {
	return func(c *Config) error {
		c.DropTables = true
		return nil
	}
}

// WithDatabase prepends a create database statement to the scripts of
// dialects that support it.
func WithDatabase(name, dataFile, logFile string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("Database", nil, "database name cannot be empty")
		}
		c.Database = &Database{Name: name, DataFile: dataFile, LogFile: logFile}
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger reporting written scripts.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies the given options to the config.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Dialects: dialect.Names(),
		Workers:  runtime.GOMAXPROCS(0),
		Logger:   slog.Default(),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}
