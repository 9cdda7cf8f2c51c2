package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/dialect/sql"
)

type (
	// Creator is the interface that wraps the Create method.
	Creator interface {
		// Create creates the given tables in the database.
		Create(context.Context, ...*Table) error
	}

	// The CreateFunc type is an adapter to allow the use of ordinary
	// function as Creator. If f is a function with the appropriate signature,
	// CreateFunc(f) is a Creator that calls f.
	CreateFunc func(context.Context, ...*Table) error

	// Hook defines the "create middleware". A function that gets a Creator
	// and returns a Creator. For example:
	//
	//	hook := func(next schema.Creator) schema.Creator {
	//		return schema.CreateFunc(func(ctx context.Context, tables ...*schema.Table) error {
	//			fmt.Println("Tables:", len(tables))
	//			return next.Create(ctx, tables...)
	//		})
	//	}
	//
	Hook func(Creator) Creator
)

// Create calls f(ctx, tables...).
func (f CreateFunc) Create(ctx context.Context, tables ...*Table) error {
	return f(ctx, tables...)
}

// MigrateOption allows configuring Migrate using functional arguments.
type MigrateOption func(*Migrate)

// WithDropTable drops the tables before creating them. Dropping tables
// is a breaking change and is reported as a validation warning.
func WithDropTable(b bool) MigrateOption {
	return func(m *Migrate) {
		m.dropTables = b
	}
}

// WithSkipExisting skips tables that already exist in the database.
func WithSkipExisting(b bool) MigrateOption {
	return func(m *Migrate) {
		m.skipExisting = b
	}
}

// WithHooks adds a list of hooks to the schema migration.
func WithHooks(hooks ...Hook) MigrateOption {
	return func(m *Migrate) {
		m.hooks = append(m.hooks, hooks...)
	}
}

// WithLogger sets the logger used to report validation warnings and
// executed statements.
func WithLogger(l *slog.Logger) MigrateOption {
	return func(m *Migrate) {
		if l != nil {
			m.logger = l
		}
	}
}

// Migrate runs the create and drop statements of tables against a database.
type Migrate struct {
	drv          dialect.Driver
	dropTables   bool
	skipExisting bool
	hooks        []Hook
	logger       *slog.Logger
}

// NewMigrate creates a migration structure for the given driver.
func NewMigrate(drv dialect.Driver, opts ...MigrateOption) (*Migrate, error) {
	if drv == nil {
		return nil, errors.New("sql/schema: nil driver")
	}
	if _, ok := dialect.Lookup(drv.Dialect()); !ok {
		return nil, fmt.Errorf("sql/schema: unsupported dialect: %q", drv.Dialect())
	}
	m := &Migrate{drv: drv, logger: slog.Default()}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Dialect returns the dialect of the migration driver.
func (m *Migrate) Dialect() string { return m.drv.Dialect() }

// Plan validates the tables and returns the statements Create would run,
// without the existence check.
func (m *Migrate) Plan(tables ...*Table) ([]string, error) {
	d := m.drv.Dialect()
	result := ValidateSchema(tables, d)
	if m.dropTables {
		result.merge(ValidateDrop(tables, true))
	}
	if result.HasErrors() {
		return nil, fmt.Errorf("sql/schema: invalid tables:\n%s", result)
	}
	for _, w := range result.Warnings {
		m.logger.Warn("table validation", "dialect", d, "warning", w.Error())
	}
	var stmts []string
	if m.dropTables {
		for i := len(tables) - 1; i >= 0; i-- {
			stmt, _ := ddlgen.Generate(nil, d, ddlgen.DropTable{Table: tables[i].Name})
			stmts = append(stmts, stmt)
		}
	}
	for _, t := range tables {
		op, err := t.createOp()
		if err != nil {
			return nil, fmt.Errorf("sql/schema: table %q: %w", t.Name, err)
		}
		stmt, err := ddlgen.Generate(t.Schema, d, op)
		if err != nil {
			return nil, fmt.Errorf("sql/schema: table %q: %w", t.Name, err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// Create creates all tables in a single transaction. It runs the
// registered hooks around the creation.
func (m *Migrate) Create(ctx context.Context, tables ...*Table) error {
	var creator Creator = CreateFunc(m.create)
	for i := len(m.hooks) - 1; i >= 0; i-- {
		creator = m.hooks[i](creator)
	}
	return creator.Create(ctx, tables...)
}

func (m *Migrate) create(ctx context.Context, tables ...*Table) error {
	if m.skipExisting && !m.dropTables {
		var err error
		if tables, err = m.missing(ctx, tables); err != nil {
			return err
		}
		if len(tables) == 0 {
			return nil
		}
	}
	stmts, err := m.Plan(tables...)
	if err != nil {
		return err
	}
	return m.execTx(ctx, stmts)
}

// Drop drops the given tables, in reverse order, in a single transaction.
func (m *Migrate) Drop(ctx context.Context, tables ...*Table) error {
	stmts := make([]string, 0, len(tables))
	for i := len(tables) - 1; i >= 0; i-- {
		stmt, _ := ddlgen.Generate(nil, m.drv.Dialect(), ddlgen.DropTable{Table: tables[i].Name})
		stmts = append(stmts, stmt)
	}
	return m.execTx(ctx, stmts)
}

// CreateDatabase creates a database. It is executed outside a transaction,
// and fails with ddlgen.ErrUnsupportedOperation for dialects that cannot
// create databases with SQL text.
func (m *Migrate) CreateDatabase(ctx context.Context, name, dataFile, logFile string) error {
	stmt, err := ddlgen.Generate(nil, m.drv.Dialect(), ddlgen.CreateDatabase{Name: name, DataFile: dataFile, LogFile: logFile})
	if err != nil {
		return fmt.Errorf("sql/schema: %w", err)
	}
	m.logger.Info("executing statement", "dialect", m.drv.Dialect(), "statement", stmt)
	if err := m.drv.Exec(ctx, stmt, []any{}, nil); err != nil {
		return fmt.Errorf("sql/schema: create database %q: %w", name, err)
	}
	return nil
}

// execTx executes the statements in a transaction.
func (m *Migrate) execTx(ctx context.Context, stmts []string) error {
	tx, err := m.drv.Tx(ctx)
	if err != nil {
		return fmt.Errorf("sql/schema: %w", err)
	}
	for _, stmt := range stmts {
		m.logger.Info("executing statement", "dialect", m.drv.Dialect(), "statement", stmt)
		if err := tx.Exec(ctx, stmt, []any{}, nil); err != nil {
			return rollback(tx, fmt.Errorf("sql/schema: %w", err))
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("sql/schema: commit: %w", err)
	}
	return nil
}

// existsQuery holds the table existence query of each dialect with a driver.
var existsQuery = map[string]string{
	dialect.SQLServer: "SELECT COUNT(*) FROM INFORMATION_SCHEMA.TABLES WHERE TABLE_NAME = @p1",
	dialect.SQLite:    "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?",
}

// missing returns the tables that do not exist in the database.
func (m *Migrate) missing(ctx context.Context, tables []*Table) ([]*Table, error) {
	query, ok := existsQuery[m.drv.Dialect()]
	if !ok {
		return nil, fmt.Errorf("sql/schema: %w", ddlgen.NewUnsupportedOperationError("table existence check", m.drv.Dialect()))
	}
	var missing []*Table
	for _, t := range tables {
		rows := &sql.Rows{}
		if err := m.drv.Query(ctx, query, []any{t.Name}, rows); err != nil {
			return nil, fmt.Errorf("sql/schema: checking table %q: %w", t.Name, err)
		}
		n, err := sql.ScanInt(rows)
		if err != nil {
			return nil, fmt.Errorf("sql/schema: checking table %q: %w", t.Name, err)
		}
		if n > 0 {
			m.logger.Info("skipping existing table", "table", t.Name)
			continue
		}
		missing = append(missing, t)
	}
	return missing, nil
}

// rollback calls to tx.Rollback and wraps the given error with the rollback error if occurred.
func rollback(tx dialect.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}
