// Package cli provides the command-line interface of ddlgen.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/ddlgen/dialect"
	"github.com/syssam/ddlgen/internal/cli/commands"
	"github.com/syssam/ddlgen/internal/cli/config"
)

// Version is set at build time.
var Version = "0.1.0"

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string
	rootCmd := &cobra.Command{
		Use:   "ddlgen",
		Short: "Generate SQL DDL statements from table schemas",
		Long: `ddlgen generates create database, create table and drop table statements
for sqlserver, sqlite and access from a YAML schema file.

Statements are printed, exported to one script per dialect, or applied to
a database.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, used, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			logger := cfg.Logger(cmd.ErrOrStderr())
			if used != "" {
				logger.Debug("using config file", "path", used)
			}
			cmd.SetContext(config.WithConfig(cmd.Context(), cfg, logger))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./ddlgen.yaml)")
	flags.StringP("dialect", "d", "", "Target dialect (sqlserver|sqlite|access)")
	flags.String("dsn", "", "Data source name used by apply")
	flags.StringP("schema", "s", "", "Path to the YAML schema file (default: schema.yaml)")
	flags.StringP("out", "o", "", "Output directory of export (default: .)")
	flags.String("log-level", "", "Log level (debug|info|warn|error)")
	flags.String("log-format", "", "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("dialect", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return dialect.Names(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("log-format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(commands.NewCreateTableCommand())
	rootCmd.AddCommand(commands.NewDropTableCommand())
	rootCmd.AddCommand(commands.NewCreateDatabaseCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewApplyCommand())
	rootCmd.AddCommand(commands.NewDialectsCommand())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
