package generator

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dshills/pydocgen-mcp/pkg/types"
)

// defaultCacheSize bounds the in-memory docstring cache
const defaultCacheSize = 4096

// Cache provides in-memory LRU caching of generated blocks by content hash
type Cache struct {
	cache *lru.Cache[string, *types.DocBlock]
}

// NewCache creates a block cache with LRU eviction. Non-positive sizes use
// the default.
func NewCache(maxLen int) *Cache {
	if maxLen <= 0 {
		maxLen = defaultCacheSize
	}
	cache, err := lru.New[string, *types.DocBlock](maxLen)
	if err != nil {
		// Unreachable with a positive size.
		cache, _ = lru.New[string, *types.DocBlock](defaultCacheSize)
	}
	return &Cache{cache: cache}
}

// Get retrieves an independent copy of a cached block
func (c *Cache) Get(key string) (*types.DocBlock, bool) {
	block, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	return block.Clone(), true
}

// Set stores a block; eviction is automatic at capacity
func (c *Cache) Set(key string, block *types.DocBlock) {
	c.cache.Add(key, block.Clone())
}

// Size returns the current number of cached blocks
func (c *Cache) Size() int {
	return c.cache.Len()
}

// CacheKey hashes the generation inputs that determine a block. Identical
// (code, kind, name, style) always map to the same key.
func CacheKey(code string, kind types.DeclKind, name string, style types.DocStyle) string {
	h := sha256.New()
	h.Write([]byte(code))
	h.Write([]byte{0})
	h.Write([]byte(kind))
	h.Write([]byte{0})
	h.Write([]byte(name))
	h.Write([]byte{0})
	h.Write([]byte(style))
	return hex.EncodeToString(h.Sum(nil))
}
