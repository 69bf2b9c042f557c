// Package assets implements the offline bootstrap asset cache.
//
// Lookup policy matches a cache-then-network worker: a cached copy is
// served immediately while a background refresh replaces it, a cache miss
// falls through to the network, and when both miss the cached root
// document is the final fallback.
package assets

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vynorlabs/vynornews/internal/logging"
)

// CacheName versions the on-disk layout. Bumping it abandons old entries.
const CacheName = "vynor-cache-v1"

// BootstrapAssets is the fixed set of paths warmed at startup.
var BootstrapAssets = []string{"/", "/index.html", "/manifest.json"}

// Cache is a directory-backed asset cache for one origin.
// Thread-safe via internal mutex.
type Cache struct {
	dir     string
	baseURL string
	client  *http.Client
	mu      sync.Mutex
}

// New creates a cache rooted under dir for the given origin.
func New(dir, baseURL string) (*Cache, error) {
	cacheDir := filepath.Join(dir, CacheName)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	return &Cache{
		dir:     cacheDir,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// Prewarm fetches the bootstrap set concurrently and stores each asset.
// Individual failures are logged and skipped; the cache stays usable with
// whatever subset arrived.
func (c *Cache) Prewarm(ctx context.Context) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(3)

	for _, path := range BootstrapAssets {
		g.Go(func() error {
			data, err := c.fetch(ctx, path)
			if err != nil {
				logging.Warn("asset prewarm failed", "path", path, "error", err)
				return nil
			}
			c.put(path, data)
			return nil
		})
	}
	g.Wait()
	logging.Debug("asset prewarm complete")
}

// Get returns the asset for path. A cache hit is served as-is with an
// asynchronous refresh; a miss goes to the network and is cached; when the
// network also fails, the cached root document is the last resort.
func (c *Cache) Get(ctx context.Context, path string) ([]byte, error) {
	if data, ok := c.lookup(path); ok {
		go c.refresh(path)
		return data, nil
	}

	data, err := c.fetch(ctx, path)
	if err == nil {
		c.put(path, data)
		return data, nil
	}
	logging.Debug("asset network miss, trying root fallback", "path", path, "error", err)

	if data, ok := c.lookup("/"); ok {
		return data, nil
	}
	return nil, fmt.Errorf("asset %s unavailable: %w", path, err)
}

// refresh re-fetches an already-cached asset in the background. Failures
// leave the stale copy in place.
func (c *Cache) refresh(path string) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	data, err := c.fetch(ctx, path)
	if err != nil {
		logging.Debug("asset refresh failed, keeping cached copy", "path", path, "error", err)
		return
	}
	c.put(path, data)
}

// fetch retrieves an asset from the origin.
func (c *Cache) fetch(ctx context.Context, path string) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("no asset origin configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch asset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// lookup reads a cached asset from disk.
func (c *Cache) lookup(path string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := os.ReadFile(c.entryPath(path))
	if err != nil {
		return nil, false
	}
	return data, true
}

// put writes an asset to disk. Failures are logged and swallowed; the
// cache is an optimization, never a source of truth.
func (c *Cache) put(path string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := os.WriteFile(c.entryPath(path), data, 0644); err != nil {
		logging.Warn("asset cache write failed", "path", path, "error", err)
	}
}

// entryPath maps an asset path to its cache file via a short hash.
func (c *Cache) entryPath(path string) string {
	h := sha256.Sum256([]byte(path))
	return filepath.Join(c.dir, hex.EncodeToString(h[:8]))
}
