package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/syssam/ddlgen/dialect"
)

// NewDialectsCommand creates the dialects command.
func NewDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List the supported dialects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Description", "Aliases", "Driver", "Create Database"})
			for _, name := range dialect.Names() {
				caps, _ := dialect.Lookup(name)
				drv := caps.Driver
				if drv == "" {
					drv = "-"
				}
				t.AppendRow(table.Row{caps.Name, caps.Description, strings.Join(caps.Aliases, ","), drv, caps.CreateDatabase})
			}
			t.Render()
			return nil
		},
	}
}
