package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/syssam/ddlgen/compiler/gen"
	"github.com/syssam/ddlgen/compiler/load"
	"github.com/syssam/ddlgen/internal/cli/config"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var (
		dialects    []string
		allDialects bool
		header      string
		drop        bool
		database    string
		dataFile    string
		logFile     string
		workers     int
		watch       bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write one SQL script per dialect",
		Long: `Write the create table statements of every table in the schema file to
one SQL script per dialect, in the output directory.

By default only the configured dialect is exported. Use --all to export
every supported dialect.`,
		Example: `  ddlgen export --out build
  ddlgen export --all --drop
  ddlgen export --all --watch
  ddlgen export --dialects sqlserver,sqlite --database shop --data-file shop.mdf --log-file shop.ldf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.FromContext(cmd.Context())
			logger := config.GetLogger(cmd.Context())
			opts := []gen.Option{
				gen.WithTarget(cfg.Out),
				gen.WithHeader(header),
				gen.WithLogger(logger),
			}
			switch {
			case allDialects:
			case len(dialects) > 0:
				opts = append(opts, gen.WithDialects(dialects...))
			default:
				opts = append(opts, gen.WithDialects(cfg.Dialect))
			}
			if drop {
				opts = append(opts, gen.WithDropTables())
			}
			if database != "" {
				opts = append(opts, gen.WithDatabase(database, dataFile, logFile))
			}
			if workers > 0 {
				opts = append(opts, gen.WithWorkers(workers))
			}
			if watch {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return gen.Watch(ctx, cfg.Schema, opts...)
			}
			schemas, err := load.LoadFile(cfg.Schema)
			if err != nil {
				return err
			}
			gcfg, err := gen.NewConfig(opts...)
			if err != nil {
				return err
			}
			w, err := gen.NewWriter(gcfg, schemas)
			if err != nil {
				return err
			}
			if err := w.WriteAll(cmd.Context()); err != nil {
				return err
			}
			m := w.Metrics()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d scripts, %d statements, %d bytes to %s\n",
				m.FilesGenerated, m.Statements, m.TotalBytes, cfg.Out)
			return err
		},
	}
	cmd.Flags().StringSliceVar(&dialects, "dialects", nil, "Dialects to export")
	cmd.Flags().BoolVar(&allDialects, "all", false, "Export every supported dialect")
	cmd.Flags().StringVar(&header, "header", "Code generated by ddlgen. DO NOT EDIT.", "Script header comment")
	cmd.Flags().BoolVar(&drop, "drop", false, "Drop tables before creating them")
	cmd.Flags().StringVar(&database, "database", "", "Create this database first, where supported")
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Location of the database data file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Location of the database log file")
	cmd.Flags().IntVar(&workers, "workers", 0, "Number of scripts written in parallel")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Regenerate the scripts when the schema file changes")
	cmd.MarkFlagsMutuallyExclusive("dialects", "all")
	cmd.MarkFlagsRequiredTogether("database", "data-file", "log-file")
	return cmd
}
