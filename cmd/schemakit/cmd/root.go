// Package cmd implements the schemakit command line interface.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/schemakit/schemakit/internal/config"
	"github.com/schemakit/schemakit/internal/httpclient"
	"github.com/schemakit/schemakit/obs"
	"github.com/schemakit/schemakit/registry"
	"github.com/schemakit/schemakit/schema"
)

var (
	cfgFile    string
	outputFlag string
	otelFlag   bool

	cfg      *config.Config
	reg      *registry.Registry
	obsClose func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "schemakit",
	Short: "Validate JSON documents and generate artifacts from JSON Schemas",
	Long: `schemakit validates JSON documents against draft-07-style JSON Schemas,
generates template documents and TypeScript type bindings from the same
schemas, and renders validation reports for terminals, markdown and HTML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}
		if outputFlag != "" {
			cfg.Output = outputFlag
		}
		reg = registry.New(
			registry.WithCacheDir(cfg.CacheDir),
			registry.WithHTTPClient(httpclient.New(httpclient.WithTimeout(cfg.HTTPTimeout()))),
		)
		for name, ref := range cfg.Schemas {
			if isURL(ref) {
				continue // remote schemas are fetched on demand
			}
			if _, err := reg.LoadFile(name, ref); err != nil {
				return fmt.Errorf("preload schema %q: %w", name, err)
			}
		}
		obsClose, err = obs.Init(cmd.Context(), obs.Options{Enabled: otelFlag})
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if obsClose != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := obsClose(ctx); err != nil {
				fmt.Fprintf(os.Stderr, "telemetry shutdown: %v\n", err)
			}
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultFileName+")")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "report format: terminal, markdown, html or json")
	rootCmd.PersistentFlags().BoolVar(&otelFlag, "otel", false, "export OpenTelemetry spans to stdout")
}

// loadSchema reads a schema from a URL, a registry name configured under
// "schemas", or a local file, resolving local definition references before
// returning it.
func loadSchema(ctx context.Context, ref string) (*schema.Schema, error) {
	if isURL(ref) {
		s, err := reg.Fetch(ctx, ref)
		if err != nil {
			return nil, err
		}
		return schema.ResolveRefs(s), nil
	}
	if s, err := reg.Get(ref); err == nil {
		return schema.ResolveRefs(s), nil
	}
	data, err := os.ReadFile(ref)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	s, err := schema.Parse(data)
	if err != nil {
		return nil, err
	}
	return schema.ResolveRefs(s), nil
}

func isURL(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https")
}
