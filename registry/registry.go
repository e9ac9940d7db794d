// Package registry keeps named schemas available to callers: an in-memory
// catalog, file loading, and HTTP fetching of remote schema documents with a
// local file cache.
package registry

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/schemakit/schemakit/internal/httpclient"
	"github.com/schemakit/schemakit/schema"
)

// Sentinel errors for registry lookups.
var (
	ErrNotFound = errors.New("schema not found")
	ErrExists   = errors.New("schema already registered")
)

// Registry is a concurrency-safe catalog of named schemas.
type Registry struct {
	mu       sync.RWMutex
	schemas  map[string]*schema.Schema
	cacheDir string
	client   *http.Client
}

// Option configures a Registry.
type Option func(*Registry)

// WithCacheDir sets the directory used to cache fetched schema documents.
// An empty directory disables caching.
func WithCacheDir(dir string) Option {
	return func(r *Registry) { r.cacheDir = dir }
}

// WithHTTPClient overrides the HTTP client used for remote fetches.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Registry) { r.client = c }
}

// New constructs a Registry.
func New(opts ...Option) *Registry {
	r := &Registry{schemas: make(map[string]*schema.Schema)}
	for _, opt := range opts {
		opt(r)
	}
	if r.client == nil {
		r.client = httpclient.New()
	}
	return r
}

// Add registers a schema under name. Registering a duplicate name fails.
func (r *Registry) Add(name string, s *schema.Schema) error {
	if s == nil {
		return schema.ErrNilSchema
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.schemas[name]; exists {
		return fmt.Errorf("%w: %s", ErrExists, name)
	}
	r.schemas[name] = s
	return nil
}

// Get returns the schema registered under name.
func (r *Registry) Get(name string) (*schema.Schema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.schemas[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return s, nil
}

// Names returns the registered schema names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.schemas))
	for name := range r.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadFile parses a schema from disk and registers it under name.
func (r *Registry) LoadFile(name, path string) (*schema.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	s, err := schema.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("schema file %s: %w", path, err)
	}
	if err := r.Add(name, s); err != nil {
		return nil, err
	}
	return s, nil
}

// Fetch retrieves a schema document from url, consulting the file cache
// first and writing fetched documents back to it.
func (r *Registry) Fetch(ctx context.Context, url string) (*schema.Schema, error) {
	if cached, ok := r.readCache(url); ok {
		return schema.Parse(cached)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/schema+json, application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch schema: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch schema %s: unexpected status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read schema body: %w", err)
	}

	s, err := schema.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("remote schema %s: %w", url, err)
	}
	r.writeCache(url, data)
	return s, nil
}

func (r *Registry) cachePath(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(r.cacheDir, hex.EncodeToString(sum[:])+".json")
}

func (r *Registry) readCache(url string) ([]byte, bool) {
	if r.cacheDir == "" {
		return nil, false
	}
	data, err := os.ReadFile(r.cachePath(url))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (r *Registry) writeCache(url string, data []byte) {
	if r.cacheDir == "" {
		return
	}
	if err := os.MkdirAll(r.cacheDir, 0o755); err != nil {
		return
	}
	// cache is best effort; a failed write only costs a refetch
	_ = os.WriteFile(r.cachePath(url), data, 0o644)
}
