// Package config loads CLI configuration from a YAML file with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no --config
// flag is given.
const DefaultFileName = "schemakit.yaml"

// Config holds CLI settings.
type Config struct {
	// CacheDir stores fetched remote schemas. Defaults to a "schemakit"
	// directory under the user cache dir.
	CacheDir string `yaml:"cache_dir"`
	// Output selects the default report format: terminal, markdown, html or json.
	Output string `yaml:"output"`
	// HTTPTimeoutSeconds bounds remote schema fetches.
	HTTPTimeoutSeconds int `yaml:"http_timeout_seconds"`
	// Schemas maps registry names to local paths or URLs preloaded at startup.
	Schemas map[string]string `yaml:"schemas"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{
		Output:             "terminal",
		HTTPTimeoutSeconds: 30,
	}
	if dir, err := os.UserCacheDir(); err == nil {
		cfg.CacheDir = filepath.Join(dir, "schemakit")
	}
	return cfg
}

// Load reads configuration from path, falling back to DefaultFileName in the
// working directory and then to defaults when no file exists. Environment
// variables SCHEMAKIT_CACHE_DIR and SCHEMAKIT_OUTPUT override file values.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if path == "" {
		path = DefaultFileName
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	case os.IsNotExist(err) && !explicit:
		// defaults only
	default:
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if v := os.Getenv("SCHEMAKIT_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}
	if v := os.Getenv("SCHEMAKIT_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		cfg.HTTPTimeoutSeconds = 30
	}
	return cfg, nil
}

// HTTPTimeout returns the fetch timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}
