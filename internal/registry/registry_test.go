package registry

import (
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonwell/schemagen-mcp/pkg/schemagen"
)

func parse(t *testing.T, data string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	return v
}

func TestStore_RegisterAndLookup(t *testing.T) {
	store := NewStore()
	schema := &jsonschema.Schema{Ref: "#/definitions/user"}

	instance := parse(t, `{"kind": "user", "id": 1}`)
	require.NoError(t, store.Register(instance, schema))

	got, ok := store.Lookup(instance)
	require.True(t, ok)
	assert.Same(t, schema, got)
	assert.Equal(t, 1, store.Len())
}

func TestStore_LookupIsStructural(t *testing.T) {
	store := NewStore()
	schema := &jsonschema.Schema{Type: "object"}

	require.NoError(t, store.Register(parse(t, `{"a": 1, "b": 2}`), schema))

	// Same value, different key order in the source text.
	got, ok := store.Lookup(parse(t, `{"b": 2, "a": 1}`))
	require.True(t, ok)
	assert.Same(t, schema, got)
}

func TestStore_LookupMiss(t *testing.T) {
	store := NewStore()

	_, ok := store.Lookup(parse(t, `{"unknown": true}`))
	assert.False(t, ok)
}

func TestStore_ShortCircuitsGenerator(t *testing.T) {
	store := NewStore()
	registered := &jsonschema.Schema{Ref: "#/definitions/event"}

	instance := parse(t, `{"type": "event", "payload": {"$ref": 99}}`)
	require.NoError(t, store.Register(instance, registered))

	g := schemagen.NewGenerator(store)
	schema, err := g.Generate(instance)
	require.NoError(t, err)
	assert.Same(t, registered, schema)
}
