package inferrer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsonwell/schemagen-mcp/internal/cache"
	"github.com/jsonwell/schemagen-mcp/internal/registry"
	"github.com/jsonwell/schemagen-mcp/internal/samples"
)

func newTestInferrer(t *testing.T, bodies ...string) (*Inferrer, []string) {
	t.Helper()
	store := samples.NewStore(0, 0)
	ids := make([]string, 0, len(bodies))
	for _, body := range bodies {
		sample, err := store.Add("", []byte(body))
		require.NoError(t, err)
		ids = append(ids, sample.ID)
	}
	return New(store, registry.NewStore(), nil, 4, false), ids
}

func schemaJSON(t *testing.T, result *Result) map[string]any {
	t.Helper()
	data, err := json.Marshal(result.Schema)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestInfer_SingleSample(t *testing.T) {
	inf, _ := newTestInferrer(t, `{"name": "John", "age": 30}`)

	result, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, 1, result.SampleCount)
	assert.Equal(t, 1, result.ValueCount)
	assert.True(t, result.AllMatch)

	m := schemaJSON(t, result)
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", m["$schema"])
	assert.Equal(t, "object", m["type"])
}

func TestInfer_IdenticalSamplesCollapse(t *testing.T) {
	inf, _ := newTestInferrer(t, `{"id": 1}`, `{"id": 2}`)

	result, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.True(t, result.AllMatch)

	m := schemaJSON(t, result)
	assert.Equal(t, "object", m["type"])
	assert.NotContains(t, m, "oneOf")
}

func TestInfer_DivergentObjectsUnionProperties(t *testing.T) {
	inf, _ := newTestInferrer(t, `{"id": 1}`, `{"name": "a"}`)

	result, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.False(t, result.AllMatch)

	m := schemaJSON(t, result)
	props, ok := m["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "id")
	assert.Contains(t, props, "name")
	// Structural merge of divergent objects drops required.
	assert.NotContains(t, m, "required")
}

func TestInfer_MixedShapesProduceOneOf(t *testing.T) {
	inf, _ := newTestInferrer(t, `1`, `"two"`)

	result, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)

	m := schemaJSON(t, result)
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", m["$schema"])
	oneOf, ok := m["oneOf"].([]any)
	require.True(t, ok)
	assert.Len(t, oneOf, 2)
}

func TestInfer_SelectBySampleID(t *testing.T) {
	inf, ids := newTestInferrer(t, `{"a": 1}`, `"unrelated"`)

	result, err := inf.Infer(context.Background(), Options{SampleIDs: ids[:1]})
	require.NoError(t, err)
	assert.Equal(t, 1, result.SampleCount)
	assert.Equal(t, "object", schemaJSON(t, result)["type"])
}

func TestInfer_UnknownSampleID(t *testing.T) {
	inf, _ := newTestInferrer(t, `{}`)

	_, err := inf.Infer(context.Background(), Options{SampleIDs: []string{"s-999999"}})
	assert.ErrorContains(t, err, "sample not found")
}

func TestInfer_EmptyStore(t *testing.T) {
	inf, _ := newTestInferrer(t)

	_, err := inf.Infer(context.Background(), Options{})
	assert.Error(t, err)
}

func TestInfer_Expression(t *testing.T) {
	inf, _ := newTestInferrer(t,
		`{"user": {"id": 1}}`,
		`{"user": {"id": 2}}`,
	)

	result, err := inf.Infer(context.Background(), Options{Expression: ".user.id"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.ValueCount)
	assert.Equal(t, "integer", schemaJSON(t, result)["type"])
}

func TestInfer_ExpressionError(t *testing.T) {
	inf, _ := newTestInferrer(t, `{}`)

	_, err := inf.Infer(context.Background(), Options{Expression: ".name["})
	assert.Error(t, err)
}

func TestInfer_Combine(t *testing.T) {
	inf, _ := newTestInferrer(t, `{"id": 1}`, `{"name": "a"}`)

	result, err := inf.Infer(context.Background(), Options{Combine: true})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SampleCount)
	assert.Equal(t, 1, result.ValueCount)

	m := schemaJSON(t, result)
	assert.Equal(t, "object", m["type"])
	// Combined instance carries both keys, so both are required.
	assert.Equal(t, []any{"id", "name"}, m["required"])
}

func TestInfer_CombineDoesNotMutateSamples(t *testing.T) {
	store := samples.NewStore(0, 0)
	first, err := store.Add("", []byte(`{"a": {"x": 1}}`))
	require.NoError(t, err)
	_, err = store.Add("", []byte(`{"a": {"y": 2}}`))
	require.NoError(t, err)
	inf := New(store, registry.NewStore(), nil, 1, false)

	_, err = inf.Infer(context.Background(), Options{Combine: true})
	require.NoError(t, err)

	inner, ok := first.Parsed.(map[string]any)["a"].(map[string]any)
	require.True(t, ok)
	assert.NotContains(t, inner, "y")
}

func TestInfer_MaxSamples(t *testing.T) {
	inf, _ := newTestInferrer(t, `1`, `2`, `"three"`)

	result, err := inf.Infer(context.Background(), Options{MaxSamples: 2})
	require.NoError(t, err)
	assert.Equal(t, 2, result.SampleCount)
	// Third sample (a string) was cut off, so no oneOf appears.
	assert.Equal(t, "integer", schemaJSON(t, result)["type"])
}

func TestInfer_CacheHit(t *testing.T) {
	store := samples.NewStore(0, 0)
	_, err := store.Add("", []byte(`{"id": 1}`))
	require.NoError(t, err)
	schemaCache, err := cache.NewSchemaCache(8)
	require.NoError(t, err)
	inf := New(store, registry.NewStore(), schemaCache, 2, false)

	first, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.False(t, first.FromCache)

	second, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Same(t, first.Schema, second.Schema)
}

func TestInfer_KnownTypeShortCircuit(t *testing.T) {
	store := samples.NewStore(0, 0)
	_, err := store.Add("", []byte(`{"currency": "USD", "amount": "10.00"}`))
	require.NoError(t, err)
	known := registry.NewStore()
	require.NoError(t, known.Register(
		map[string]any{"currency": "USD", "amount": "10.00"},
		&jsonschema.Schema{Ref: "#/definitions/money"},
	))
	inf := New(store, known, nil, 1, false)

	result, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "#/definitions/money", schemaJSON(t, result)["$ref"])
}

func TestInfer_KnownTypeSchemaNotMutated(t *testing.T) {
	// Top-level known-type hits flow into the marker strip/stamp around the
	// fold; both must operate on copies, leaving the registered schema as
	// the caller stored it.
	store := samples.NewStore(0, 0)
	_, err := store.Add("", []byte(`{"currency": "USD"}`))
	require.NoError(t, err)
	_, err = store.Add("", []byte(`{"currency": "USD"}`))
	require.NoError(t, err)

	known := registry.NewStore()
	registered := &jsonschema.Schema{
		Ref:     "#/definitions/money",
		Version: "http://json-schema.org/draft-07/schema#",
	}
	require.NoError(t, known.Register(map[string]any{"currency": "USD"}, registered))

	inf := New(store, known, nil, 4, false)
	result, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, "http://json-schema.org/draft-07/schema#", registered.Version,
		"registry-owned schema must survive inference unchanged")
	assert.NotSame(t, registered, result.Schema)
	assert.Equal(t, "#/definitions/money", schemaJSON(t, result)["$ref"])
}

func TestInfer_CacheInvalidatedByRegistration(t *testing.T) {
	store := samples.NewStore(0, 0)
	_, err := store.Add("", []byte(`{"currency": "USD"}`))
	require.NoError(t, err)
	known := registry.NewStore()
	schemaCache, err := cache.NewSchemaCache(8)
	require.NoError(t, err)
	inf := New(store, known, schemaCache, 1, false)

	first, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "object", schemaJSON(t, first)["type"])

	require.NoError(t, known.Register(
		map[string]any{"currency": "USD"},
		&jsonschema.Schema{Ref: "#/definitions/money"},
	))

	second, err := inf.Infer(context.Background(), Options{})
	require.NoError(t, err)
	assert.False(t, second.FromCache, "registration must invalidate cached results")
	assert.Equal(t, "#/definitions/money", schemaJSON(t, second)["$ref"])
}

func TestInfer_SingleValueCarriesDialectMarker(t *testing.T) {
	// Non-object documents get the marker from the inferrer, and one sample
	// must produce the same document as two identical ones.
	single, _ := newTestInferrer(t, `[1, 2]`)
	double, _ := newTestInferrer(t, `[1, 2]`, `[1, 2]`)

	singleResult, err := single.Infer(context.Background(), Options{})
	require.NoError(t, err)
	doubleResult, err := double.Infer(context.Background(), Options{})
	require.NoError(t, err)

	singleDoc := schemaJSON(t, singleResult)
	assert.Equal(t, "http://json-schema.org/draft-07/schema#", singleDoc["$schema"])
	assert.Equal(t, singleDoc, schemaJSON(t, doubleResult))
}

func TestInfer_CompileCheck(t *testing.T) {
	store := samples.NewStore(0, 0)
	_, err := store.Add("", []byte(`{"id": 1}`))
	require.NoError(t, err)
	inf := New(store, registry.NewStore(), nil, 1, true)

	_, err = inf.Infer(context.Background(), Options{})
	assert.NoError(t, err)
}

func TestInfer_ContextCancelled(t *testing.T) {
	inf, _ := newTestInferrer(t, `1`, `2`, `3`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := inf.Infer(ctx, Options{})
	assert.Error(t, err)
}
