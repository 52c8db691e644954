package generator

import (
	"crypto/sha256"

	lru "github.com/hashicorp/golang-lru/v2"
)

// outputCacheSize bounds how many source files are remembered between runs.
const outputCacheSize = 4096

// outputCache remembers the source hash each output was last written from, so
// repeated runs in one process (watch mode) skip files that did not change.
type outputCache struct {
	entries *lru.Cache[string, [sha256.Size]byte]
}

func newOutputCache() (*outputCache, error) {
	entries, err := lru.New[string, [sha256.Size]byte](outputCacheSize)
	if err != nil {
		return nil, err
	}
	return &outputCache{entries: entries}, nil
}

func (c *outputCache) unchanged(sourcePath string, sum [sha256.Size]byte) bool {
	prev, ok := c.entries.Get(sourcePath)
	return ok && prev == sum
}

func (c *outputCache) remember(sourcePath string, sum [sha256.Size]byte) {
	c.entries.Add(sourcePath, sum)
}

func (c *outputCache) forget(sourcePath string) {
	c.entries.Remove(sourcePath)
}
