package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/codegen"
	"github.com/schemakit/schemakit/obs"
)

var (
	typesName      string
	typesIndent    int
	typesNoDocs    bool
	typesOutputDir string
)

var typesCmd = &cobra.Command{
	Use:   "types <schema>",
	Short: "Generate TypeScript interface and class sources from a schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, span := obs.Tracer().Start(cmd.Context(), "schemakit.types")
		defer span.End()

		s, err := loadSchema(ctx, args[0])
		if err != nil {
			return err
		}
		artifacts, err := codegen.Generate(s, codegen.Options{
			ExportName:          typesName,
			IncludeDescriptions: !typesNoDocs,
			IndentSize:          typesIndent,
		})
		if err != nil {
			return err
		}

		if typesOutputDir != "" {
			if err := os.MkdirAll(typesOutputDir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}
			base := codegen.PascalCase(typesName)
			typesPath := filepath.Join(typesOutputDir, base+".d.ts")
			classPath := filepath.Join(typesOutputDir, base+".ts")
			if err := os.WriteFile(typesPath, []byte(artifacts.TypeSource), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", typesPath, err)
			}
			if err := os.WriteFile(classPath, []byte(artifacts.ClassSource), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", classPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s and %s\n", typesPath, classPath)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), artifacts.TypeSource)
		fmt.Fprintln(cmd.OutOrStdout(), artifacts.ClassSource)
		return nil
	},
}

func init() {
	typesCmd.Flags().StringVar(&typesName, "name", "Generated", "name of the exported top-level type")
	typesCmd.Flags().IntVar(&typesIndent, "indent", 4, "spaces per indentation level")
	typesCmd.Flags().BoolVar(&typesNoDocs, "no-descriptions", false, "omit schema descriptions from generated sources")
	typesCmd.Flags().StringVar(&typesOutputDir, "out-dir", "", "write artifacts into this directory instead of stdout")
	rootCmd.AddCommand(typesCmd)
}
