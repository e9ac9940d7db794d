package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/obs"
	"github.com/schemakit/schemakit/report"
	"github.com/schemakit/schemakit/validator"
)

// ErrDocumentInvalid signals a completed run whose document failed
// validation; the CLI maps it to exit code 1.
var ErrDocumentInvalid = errors.New("document is invalid")

var validateCmd = &cobra.Command{
	Use:   "validate <schema> <document>",
	Short: "Validate a JSON document against a schema",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := obs.Tracer().Start(cmd.Context(), "schemakit.validate")
		defer span.End()

		s, err := loadSchema(ctx, args[0])
		if err != nil {
			return err
		}
		doc, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}
		result, err := validator.ValidateJSON(doc, s)
		if err != nil {
			return err
		}

		rep := report.New(filepath.Base(args[0]), filepath.Base(args[1]), result)
		out, err := renderReport(rep)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)

		if !result.Valid {
			return ErrDocumentInvalid
		}
		return nil
	},
}

func renderReport(rep *report.Report) (string, error) {
	switch cfg.Output {
	case "", "terminal":
		return report.Terminal{}.Render(rep)
	case "markdown":
		return report.Markdown{}.Render(rep)
	case "html":
		return report.HTML{}.Render(rep)
	case "json":
		enc, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return "", err
		}
		return string(enc), nil
	default:
		return "", fmt.Errorf("unknown output format %q", cfg.Output)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
