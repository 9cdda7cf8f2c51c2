package ddlgen

import (
	"log/slog"

	"github.com/syssam/ddlgen/dialect"
)

// Generator generates statements for an operated record under a dialect.
// It keeps the last successfully generated statement. A Generator is not
// safe for concurrent use.
type Generator struct {
	schema    Interface
	dialect   string
	statement string
	logger    *slog.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used to report generated statements.
// Statements are logged at debug level. Default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// New returns a Generator for the given record and dialect. It fails with
// ErrNotSupportedType if the record embeds a Generator, and with
// ErrUnsupportedDialect if the dialect is unknown.
func New(s Interface, d string, opts ...Option) (*Generator, error) {
	if err := checkSchema(s); err != nil {
		return nil, err
	}
	if _, ok := dialect.Lookup(d); !ok {
		return nil, unsupportedDialect(d)
	}
	g := &Generator{
		schema:  s,
		dialect: d,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// generator is implemented only by *Generator, and by types embedding it.
type generator interface {
	isGenerator()
}

func (*Generator) isGenerator() {}

func checkSchema(s Interface) error {
	if _, ok := s.(generator); ok {
		return ErrNotSupportedType
	}
	return nil
}

// Schema returns the operated record.
func (g *Generator) Schema() Interface { return g.schema }

// SetSchema replaces the operated record. The generated statement is not
// invalidated; callers regenerate after changing the record.
func (g *Generator) SetSchema(s Interface) error {
	if err := checkSchema(s); err != nil {
		return err
	}
	g.schema = s
	return nil
}

// Dialect returns the dialect statements are generated for.
func (g *Generator) Dialect() string { return g.dialect }

// SetDialect replaces the dialect.
func (g *Generator) SetDialect(d string) error {
	if _, ok := dialect.Lookup(d); !ok {
		return unsupportedDialect(d)
	}
	g.dialect = d
	return nil
}

// Statement returns the last successfully generated statement, or an
// empty string if nothing was generated yet.
func (g *Generator) Statement() string { return g.statement }

// PropertiesInfo returns the columns of the operated record under the
// current dialect. The result is computed on each call.
func (g *Generator) PropertiesInfo() ([]Column, error) {
	return PropertiesInfo(g.schema, g.dialect)
}

// CreateDatabase generates a create database statement. See the
// CreateDatabase operation for details.
func (g *Generator) CreateDatabase(name, dataFile, logFile string) error {
	return g.generate(CreateDatabase{Name: name, DataFile: dataFile, LogFile: logFile})
}

// CreateTable generates a create table statement for the operated record.
// See the CreateTable operation for details.
func (g *Generator) CreateTable(table, primaryKey string, nullable []bool) error {
	return g.generate(CreateTable{Table: table, PrimaryKey: primaryKey, Nullable: nullable})
}

// DropTable generates a drop table statement.
func (g *Generator) DropTable(table string) {
	// DropTable never fails.
	_ = g.generate(DropTable{Table: table})
}

// generate runs op and stores the statement on success. On failure the
// previous statement is kept.
func (g *Generator) generate(op Op) error {
	stmt, err := Generate(g.schema, g.dialect, op)
	if err != nil {
		return err
	}
	g.statement = stmt
	g.logger.Debug("statement generated", "op", op.String(), "dialect", g.dialect, "statement", stmt)
	return nil
}
