package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/compiler/load"
	"github.com/syssam/ddlgen/dialect"
)

// Writer renders one SQL script per dialect for a set of loaded tables
// and writes them in parallel.
type Writer struct {
	cfg     *Config
	schemas []*load.Schema

	// Metrics for reporting.
	mu      sync.Mutex
	metrics WriterMetrics
}

// WriterMetrics tracks written scripts.
type WriterMetrics struct {
	FilesGenerated int
	Statements     int
	TotalBytes     int64
}

// NewWriter creates a new script writer.
func NewWriter(cfg *Config, schemas []*load.Schema) (*Writer, error) {
	if cfg == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	if len(schemas) == 0 {
		return nil, NewConfigError("Schemas", nil, "no tables to generate")
	}
	return &Writer{cfg: cfg, schemas: schemas}, nil
}

// Metrics returns the generation metrics.
func (w *Writer) Metrics() WriterMetrics {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.metrics
}

// Filename returns the script file name of a dialect.
func Filename(d string) string {
	return d + ".sql"
}

// Render renders the script of the given dialect.
func (w *Writer) Render(d string) ([]byte, error) {
	stmts, err := w.statements(d)
	if err != nil {
		return nil, err
	}
	return w.format(d, stmts), nil
}

func (w *Writer) format(d string, stmts []string) []byte {
	var b bytes.Buffer
	if w.cfg.Header != "" {
		for _, line := range strings.Split(w.cfg.Header, "\n") {
			fmt.Fprintf(&b, "-- %s\n", line)
		}
	}
	fmt.Fprintf(&b, "-- dialect: %s\n", d)
	for _, stmt := range stmts {
		b.WriteString(terminate(stmt))
		b.WriteByte('\n')
	}
	return b.Bytes()
}

// statements returns the statements of the script of the given dialect,
// in execution order.
func (w *Writer) statements(d string) ([]string, error) {
	caps, ok := dialect.Lookup(d)
	if !ok {
		return nil, NewGenerationError(d, "", "", ddlgen.ErrUnsupportedDialect)
	}
	var stmts []string
	if db := w.cfg.Database; db != nil && caps.CreateDatabase {
		stmt, err := ddlgen.Generate(nil, d, ddlgen.CreateDatabase{Name: db.Name, DataFile: db.DataFile, LogFile: db.LogFile})
		if err != nil {
			return nil, NewGenerationError(d, "", "", err)
		}
		stmts = append(stmts, stmt)
	}
	if w.cfg.DropTables {
		for i := len(w.schemas) - 1; i >= 0; i-- {
			stmt, _ := ddlgen.Generate(nil, d, ddlgen.DropTable{Table: w.schemas[i].TableName()})
			stmts = append(stmts, stmt)
		}
	}
	for _, s := range w.schemas {
		stmt, err := ddlgen.Generate(s.Record(), d, ddlgen.CreateTable{
			Table:      s.TableName(),
			PrimaryKey: s.PrimaryKey,
			Nullable:   s.Nullable(),
		})
		if err != nil {
			return nil, NewGenerationError(d, s.TableName(), "", err)
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

// WriteAll renders and writes the scripts of all configured dialects in parallel.
func (w *Writer) WriteAll(ctx context.Context) error {
	if w.cfg.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if err := os.MkdirAll(w.cfg.Target, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	eg, ctx := errgroup.WithContext(ctx)
	if w.cfg.Workers > 0 {
		eg.SetLimit(w.cfg.Workers)
	}
	for _, d := range w.cfg.Dialects {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(d)
			}
		})
	}
	return eg.Wait()
}

// writeFile renders and writes a single script.
func (w *Writer) writeFile(d string) error {
	name := Filename(d)
	stmts, err := w.statements(d)
	if err != nil {
		return err
	}
	buf := w.format(d, stmts)
	path := filepath.Join(w.cfg.Target, name)
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		return NewGenerationError(d, "", name, err)
	}

	w.mu.Lock()
	w.metrics.FilesGenerated++
	w.metrics.Statements += len(stmts)
	w.metrics.TotalBytes += int64(len(buf))
	w.mu.Unlock()

	if w.cfg.Logger != nil {
		w.cfg.Logger.Info("script written", "dialect", d, "path", path, "statements", len(stmts))
	}
	return nil
}

// terminate ends a statement with a semicolon.
func terminate(stmt string) string {
	if strings.HasSuffix(stmt, ";") {
		return stmt
	}
	return stmt + ";"
}

// Generate writes the scripts of the given tables using the given options.
func Generate(ctx context.Context, schemas []*load.Schema, opts ...Option) error {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return err
	}
	w, err := NewWriter(cfg, schemas)
	if err != nil {
		return err
	}
	return w.WriteAll(ctx)
}
