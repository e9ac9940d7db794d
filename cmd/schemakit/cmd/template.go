package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/obs"
	"github.com/schemakit/schemakit/template"
)

var templateCmd = &cobra.Command{
	Use:   "template <schema>",
	Short: "Generate a minimal conforming JSON document from a schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := obs.Tracer().Start(cmd.Context(), "schemakit.template")
		defer span.End()

		s, err := loadSchema(ctx, args[0])
		if err != nil {
			return err
		}
		doc := template.Generate(s)
		enc, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode template: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(enc))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
