package types

// MergeSchemasOutput is the output of schemagen_merge_schemas.
type MergeSchemasOutput struct {
	// The merged JSON Schema document (draft-07).
	Schema any `json:"schema"`

	// Collapsed is true when every input schema was structurally identical
	// and the merge reduced to the first input.
	Collapsed bool `json:"collapsed"`

	Hint string `json:"hint,omitempty"`
}

// RegisterKnownTypeOutput is the output of schemagen_register_known_type.
type RegisterKnownTypeOutput struct {
	RegisteredTypes int    `json:"registered_types"`
	Hint            string `json:"hint,omitempty"`
}
