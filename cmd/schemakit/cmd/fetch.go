package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/obs"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Download a remote schema into the local cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := obs.Tracer().Start(cmd.Context(), "schemakit.fetch")
		defer span.End()

		s, err := reg.Fetch(ctx, args[0])
		if err != nil {
			return err
		}
		enc, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("encode schema: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
