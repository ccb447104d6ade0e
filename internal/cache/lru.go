// Package cache provides caching utilities for the MCP server.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/invopop/jsonschema"
	lru "github.com/hashicorp/golang-lru/v2"
)

// SchemaCache provides thread-safe LRU caching of inference results keyed by
// the content of the sample set that produced them.
type SchemaCache struct {
	cache *lru.Cache[string, *jsonschema.Schema]
}

// NewSchemaCache creates a new LRU cache with the specified maximum number of items.
func NewSchemaCache(maxItems int) (*SchemaCache, error) {
	c, err := lru.New[string, *jsonschema.Schema](maxItems)
	if err != nil {
		return nil, err
	}
	return &SchemaCache{cache: c}, nil
}

// Key derives a cache key from the inputs that determine an inference result:
// the raw sample bodies plus any option material (jq expression, mode flags).
func Key(bodies [][]byte, extra ...string) string {
	h := sha256.New()
	for _, b := range bodies {
		h.Write(b)
		h.Write([]byte{0})
	}
	for _, s := range extra {
		h.Write([]byte(s))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get retrieves a cached schema by key.
func (c *SchemaCache) Get(key string) (*jsonschema.Schema, bool) {
	return c.cache.Get(key)
}

// Put adds or updates a schema in the cache.
func (c *SchemaCache) Put(key string, schema *jsonschema.Schema) {
	c.cache.Add(key, schema)
}

// Len returns the current number of items in the cache.
func (c *SchemaCache) Len() int {
	return c.cache.Len()
}
