package types

// AddSampleOutput is the output of schemagen_add_sample.
type AddSampleOutput struct {
	Sample        *SampleSummary `json:"sample"`
	StoredSamples int            `json:"stored_samples"`
	Hint          string         `json:"hint,omitempty"`
}

// ListSamplesOutput is the output of schemagen_list_samples.
type ListSamplesOutput struct {
	Samples []SampleSummary `json:"samples,omitzero"`
	Total   int             `json:"total"`
	Hint    string          `json:"hint,omitempty"`
}

// SearchSamplesOutput is the output of schemagen_search_samples.
type SearchSamplesOutput struct {
	Samples []SampleSummary `json:"samples,omitzero"`
	Fields  []string        `json:"fields,omitzero"`
	Hint    string          `json:"hint,omitempty"`
}
