package schemagen

import (
	"bytes"
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Merge combines two schemas into one.
//
// Identical schemas merge to themselves: the left schema is returned
// unchanged when both sides serialize to the same JSON. This is an exact
// equality short-circuit, not a compatibility check.
//
// Two schemas that carry the same type tag and both have a non-empty property
// map merge structurally: the result keeps the shared type and the union of
// both property maps, with the right-hand schema winning on key collisions
// (no recursive merge of colliding property schemas). The structural merge
// deliberately drops required lists and $ref of both inputs.
//
// Everything else becomes a union: {"oneOf": [left, right]}, order preserved.
//
// Folding Merge across more than two schemas nests unions left-deep rather
// than flattening into one wide alternative list. Callers depend on that
// nesting shape; do not flatten.
func Merge(left, right *jsonschema.Schema) (*jsonschema.Schema, error) {
	leftJSON, err := json.Marshal(left)
	if err != nil {
		return nil, &ConstructionError{Reason: "left schema failed to materialize", Err: err}
	}
	rightJSON, err := json.Marshal(right)
	if err != nil {
		return nil, &ConstructionError{Reason: "right schema failed to materialize", Err: err}
	}
	if bytes.Equal(leftJSON, rightJSON) {
		return left, nil
	}

	if left.Type == right.Type && propCount(left) > 0 && propCount(right) > 0 {
		merged := &jsonschema.Schema{
			Type:       left.Type,
			Properties: jsonschema.NewProperties(),
		}
		for pair := left.Properties.Oldest(); pair != nil; pair = pair.Next() {
			merged.Properties.Set(pair.Key, pair.Value)
		}
		// Right side second, so it overrides left on shared keys.
		for pair := right.Properties.Oldest(); pair != nil; pair = pair.Next() {
			merged.Properties.Set(pair.Key, pair.Value)
		}
		return merged, nil
	}

	return &jsonschema.Schema{
		OneOf: []*jsonschema.Schema{left, right},
	}, nil
}

func propCount(s *jsonschema.Schema) int {
	if s.Properties == nil {
		return 0
	}
	return s.Properties.Len()
}
