// Package schemagen infers JSON Schema documents from example JSON values.
// Given a sample payload it produces a draft-07 schema that accepts data
// shaped like the sample, unifying divergent shapes seen across array
// elements via pairwise schema merging.
package schemagen

import (
	"math"
	"sort"

	"github.com/invopop/jsonschema"
)

// DialectDraft07 is the dialect marker stamped on top-level object schemas.
const DialectDraft07 = "http://json-schema.org/draft-07/schema#"

// refKey is the designated pass-through reference field. Its value is copied
// verbatim onto the enclosing object schema and never recursed into.
const refKey = "$ref"

// Bounds of the int64-representable range in float64 space. The upper bound
// is exclusive: 2^63 itself rounds to a float64 outside int64.
const (
	minInt64Float = -9223372036854775808.0
	maxInt64Float = 9223372036854775808.0
)

// Generator infers schemas from instance values. It holds a read-only view of
// the caller's known-type registry and retains no state across calls, so a
// single Generator is safe for concurrent use as long as the registry is.
type Generator struct {
	knownTypes KnownTypes
}

// NewGenerator creates a Generator backed by the given known-type registry.
// A nil registry disables known-type lookups.
func NewGenerator(known KnownTypes) *Generator {
	return &Generator{knownTypes: known}
}

// Generate infers a schema for one instance value. The instance must use the
// JSON data model as produced by encoding/json: map[string]any, []any,
// string, float64 (or Go integer kinds), bool, nil.
//
// Top-level object schemas carry the draft-07 dialect marker; nested schemas
// never do. The input is never mutated. On failure no partial schema is
// returned.
func (g *Generator) Generate(instance any) (*jsonschema.Schema, error) {
	return g.generateValue(instance, true)
}

func (g *Generator) generateValue(v any, topLevel bool) (*jsonschema.Schema, error) {
	switch val := v.(type) {
	case nil:
		return &jsonschema.Schema{Type: "null"}, nil

	case bool:
		return &jsonschema.Schema{Type: "boolean"}, nil

	case string:
		return &jsonschema.Schema{Type: "string"}, nil

	case float64:
		return numberSchema(val), nil

	case float32:
		return numberSchema(float64(val)), nil

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return &jsonschema.Schema{Type: "integer"}, nil

	case []any:
		return g.generateArray(val)

	case map[string]any:
		return g.generateObject(val, topLevel)

	default:
		return nil, &ConstructionError{Reason: "instance value is outside the JSON data model"}
	}
}

// numberSchema classifies a JSON number. The test is representational, not a
// range heuristic: integral values exactly representable as int64 are
// integers, everything else (fractional, huge, NaN, Inf) is a number.
func numberSchema(f float64) *jsonschema.Schema {
	if math.Trunc(f) == f && !math.IsInf(f, 0) && !math.IsNaN(f) &&
		f >= minInt64Float && f < maxInt64Float {
		return &jsonschema.Schema{Type: "integer"}
	}
	return &jsonschema.Schema{Type: "number"}
}

// generateObject builds an object schema. A known-type registry hit wins
// outright: the registered schema is returned unchanged with no field
// recursion and no dialect marker added.
func (g *Generator) generateObject(obj map[string]any, topLevel bool) (*jsonschema.Schema, error) {
	if g.knownTypes != nil {
		if known, ok := g.knownTypes.Lookup(obj); ok {
			return known, nil
		}
	}

	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: jsonschema.NewProperties(),
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	required := make([]string, 0, len(obj))
	for _, key := range keys {
		if key == refKey {
			ref, ok := obj[key].(string)
			if !ok {
				return nil, &ConstructionError{Reason: "$ref value is not a string"}
			}
			schema.Ref = ref
			continue
		}

		sub, err := g.generateValue(obj[key], false)
		if err != nil {
			return nil, err
		}
		// Nested schemas never carry the dialect marker. Registry-supplied
		// schemas stay caller-owned, so a marked schema is stripped on a
		// shallow copy, never in place.
		if sub.Version != "" {
			stripped := *sub
			stripped.Version = ""
			sub = &stripped
		}

		schema.Properties.Set(key, sub)
		required = append(required, key)
	}

	sort.Strings(required)
	if len(required) > 0 {
		schema.Required = required
	}

	if topLevel {
		schema.Version = DialectDraft07
	}

	return schema, nil
}

// generateArray builds an array schema by inferring a schema per element and
// folding them pairwise, left to right, starting from the first element's
// schema. The fold order is load-bearing: it determines how unions nest.
func (g *Generator) generateArray(arr []any) (*jsonschema.Schema, error) {
	if len(arr) == 0 {
		return &jsonschema.Schema{
			Type:  "array",
			Items: &jsonschema.Schema{},
		}, nil
	}

	items, err := g.generateValue(arr[0], false)
	if err != nil {
		return nil, err
	}
	for _, el := range arr[1:] {
		next, err := g.generateValue(el, false)
		if err != nil {
			return nil, err
		}
		items, err = Merge(items, next)
		if err != nil {
			return nil, err
		}
	}

	return &jsonschema.Schema{
		Type:  "array",
		Items: items,
	}, nil
}
