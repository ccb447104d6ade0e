package types

// InferSchemaOutput is the aggregate output type for the schemagen_infer_schema tool.
type InferSchemaOutput struct {
	// The inferred JSON Schema document (draft-07).
	Schema any `json:"schema"`

	// Summary of the inference process
	Summary InferSchemaSummary `json:"summary"`

	// Hint for the next step
	Hint string `json:"hint,omitempty"`
}

// InferSchemaSummary describes the inference process.
type InferSchemaSummary struct {
	SamplesExamined int  `json:"samples_examined"`
	ValuesInferred  int  `json:"values_inferred"`
	AllMatch        bool `json:"all_match"`
	FromCache       bool `json:"from_cache"`
}
