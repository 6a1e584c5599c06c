package photos

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"callboard/internal/logging"
)

// CachedClient wraps a Client with an on-disk JSON cache, one file
// per album key. Cache errors fall through to the wrapped client.
type CachedClient struct {
	inner  Client
	dir    string
	logger *slog.Logger
}

// NewCachedClient wraps client with a cache rooted at dir. An empty
// dir disables caching.
func NewCachedClient(client Client, dir string, logger *slog.Logger) *CachedClient {
	return &CachedClient{
		inner:  client,
		dir:    dir,
		logger: logging.NewComponentLogger(logger, "photos"),
	}
}

// AlbumImages returns cached images when present, otherwise fetches
// and caches.
func (c *CachedClient) AlbumImages(ctx context.Context, albumKey string) ([]Image, error) {
	if images, ok := c.readCache(albumKey); ok {
		return images, nil
	}

	images, err := c.inner.AlbumImages(ctx, albumKey)
	if err != nil {
		return nil, err
	}
	c.writeCache(albumKey, images)
	return images, nil
}

func (c *CachedClient) cachePath(albumKey string) string {
	return filepath.Join(c.dir, albumKey+".json")
}

func (c *CachedClient) readCache(albumKey string) ([]Image, bool) {
	if c.dir == "" {
		return nil, false
	}
	data, err := os.ReadFile(c.cachePath(albumKey))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("read photo cache", "album", albumKey, "error", err)
		}
		return nil, false
	}
	var images []Image
	if err := json.Unmarshal(data, &images); err != nil {
		c.logger.Warn("corrupt photo cache entry", "album", albumKey, "error", err)
		return nil, false
	}
	return images, true
}

func (c *CachedClient) writeCache(albumKey string, images []Image) {
	if c.dir == "" {
		return
	}
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		c.logger.Warn("create photo cache dir", "error", err)
		return
	}
	data, err := json.Marshal(images)
	if err != nil {
		return
	}
	if err := os.WriteFile(c.cachePath(albumKey), data, 0o644); err != nil {
		c.logger.Warn("write photo cache entry", "album", albumKey, "error", err)
	}
}
