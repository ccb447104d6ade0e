// Package registry provides the concrete known-type store consulted during
// schema inference.
package registry

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/jsonwell/schemagen-mcp/pkg/schemagen"
)

// Store maps exact instance values to pre-built schemas. Instances are keyed
// by their canonical JSON encoding (encoding/json sorts object keys, so two
// structurally equal values share a key regardless of field order).
//
// Reads are lock-sharded via RWMutex; concurrent Lookup calls from parallel
// inference runs are safe.
type Store struct {
	mu         sync.RWMutex
	schemas    map[string]*jsonschema.Schema
	generation uint64
}

var _ schemagen.KnownTypes = (*Store)(nil)

// NewStore creates an empty known-type store.
func NewStore() *Store {
	return &Store{
		schemas: make(map[string]*jsonschema.Schema),
	}
}

// Register associates an exact instance value with a schema. Registering the
// same instance again replaces the previous schema.
func (s *Store) Register(instance any, schema *jsonschema.Schema) error {
	key, err := canonicalKey(instance)
	if err != nil {
		return fmt.Errorf("encoding instance: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.schemas[key] = schema
	s.generation++
	return nil
}

// Generation returns a counter that increases on every Register call.
// Derived results (such as cached inference output) can mix it into their
// keys so registry changes invalidate them.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// Lookup returns the schema registered for the exact instance value.
func (s *Store) Lookup(instance any) (*jsonschema.Schema, bool) {
	key, err := canonicalKey(instance)
	if err != nil {
		return nil, false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	schema, ok := s.schemas[key]
	return schema, ok
}

// Len returns the number of registered known types.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.schemas)
}

func canonicalKey(instance any) (string, error) {
	data, err := json.Marshal(instance)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
