package walker

import (
	"path/filepath"
	"slices"

	"github.com/arthur-debert/importglob/pkg/logging"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/rs/zerolog"
)

// CachedWalker memoizes directory listings for the lifetime of one build, so
// occurrences sharing a root directory walk it only once. It is safe for
// concurrent use.
type CachedWalker struct {
	inner  Lister
	cache  *lru.Cache[string, []string]
	logger zerolog.Logger
}

// NewCached wraps inner with an LRU cache holding up to size directories
func NewCached(inner Lister, size int) (*CachedWalker, error) {
	cache, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &CachedWalker{
		inner:  inner,
		cache:  cache,
		logger: logging.GetLogger("walker.cache"),
	}, nil
}

// Walk returns the cached listing for dir, walking it on a miss. Failed walks
// are not cached.
func (c *CachedWalker) Walk(dir string) ([]string, error) {
	key := filepath.Clean(dir)
	if files, ok := c.cache.Get(key); ok {
		c.logger.Trace().Str("dir", key).Msg("Directory listing cache hit")
		return slices.Clone(files), nil
	}

	files, err := c.inner.Walk(key)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, files)
	return slices.Clone(files), nil
}

// Len returns the number of cached directories
func (c *CachedWalker) Len() int {
	return c.cache.Len()
}

// Purge drops every cached listing
func (c *CachedWalker) Purge() {
	c.cache.Purge()
}
