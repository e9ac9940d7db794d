package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/registry"
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List the JSON Schema drafts schemakit recognizes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, d := range registry.Drafts() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", d.Name, d.URL)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(draftsCmd)
}
