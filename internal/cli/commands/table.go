// Package commands implements the ddlgen subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/ddlgen"
	"github.com/syssam/ddlgen/compiler/load"
	"github.com/syssam/ddlgen/internal/cli/config"
)

// NewCreateTableCommand creates the create-table command.
func NewCreateTableCommand() *cobra.Command {
	var (
		primaryKey string
		nullable   []bool
	)
	cmd := &cobra.Command{
		Use:   "create-table <table>",
		Short: "Print the create table statement of a table",
		Long: `Print the create table statement of a table declared in the schema file.

The primary key and nullability flags default to the values of the schema
file. A primary key that names no column falls back to the first column.`,
		Example: `  ddlgen create-table users
  ddlgen create-table users --dialect sqlite --primary-key id --nullable false,true`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			schemas, err := load.LoadFile(cfg.Schema)
			if err != nil {
				return err
			}
			s, ok := load.Lookup(schemas, args[0])
			if !ok {
				return fmt.Errorf("table %q not found in %s", args[0], cfg.Schema)
			}
			g, err := ddlgen.New(s.Record(), cfg.Dialect, ddlgen.WithLogger(config.GetLogger(cmd.Context())))
			if err != nil {
				return err
			}
			pk := s.PrimaryKey
			if cmd.Flags().Changed("primary-key") {
				pk = primaryKey
			}
			flags := s.Nullable()
			if cmd.Flags().Changed("nullable") {
				flags = nullable
			}
			if err := g.CreateTable(s.TableName(), pk, flags); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Statement())
			return err
		},
	}
	cmd.Flags().StringVar(&primaryKey, "primary-key", "", "Primary key column")
	cmd.Flags().BoolSliceVar(&nullable, "nullable", nil, "Nullability flag of each column, in order")
	return cmd
}

// NewDropTableCommand creates the drop-table command.
func NewDropTableCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "drop-table <table>",
		Short:   "Print the drop table statement of a table",
		Example: `  ddlgen drop-table users`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			g, err := ddlgen.New(nil, cfg.Dialect, ddlgen.WithLogger(config.GetLogger(cmd.Context())))
			if err != nil {
				return err
			}
			g.DropTable(args[0])
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Statement())
			return err
		},
	}
}

// NewCreateDatabaseCommand creates the create-database command.
func NewCreateDatabaseCommand() *cobra.Command {
	var dataFile, logFile string
	cmd := &cobra.Command{
		Use:   "create-database <name>",
		Short: "Print the create database statement of a database",
		Long: `Print the create database statement of a database with one data file
and one log file. Only the sqlserver dialect supports it.`,
		Example: `  ddlgen create-database shop --data-file 'C:\data\shop.mdf' --log-file 'C:\data\shop.ldf'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromContext(cmd.Context())
			g, err := ddlgen.New(nil, cfg.Dialect, ddlgen.WithLogger(config.GetLogger(cmd.Context())))
			if err != nil {
				return err
			}
			if err := g.CreateDatabase(args[0], dataFile, logFile); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Statement())
			return err
		},
	}
	cmd.Flags().StringVar(&dataFile, "data-file", "", "Location of the data file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Location of the log file")
	_ = cmd.MarkFlagRequired("data-file")
	_ = cmd.MarkFlagRequired("log-file")
	return cmd
}
