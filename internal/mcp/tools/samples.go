package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonwell/schemagen-mcp/pkg/types"
)

// AddSampleInput is the input for schemagen_add_sample.
type AddSampleInput struct {
	Body  string `json:"body" jsonschema:"JSON document to store as a sample. Must be valid JSON."`
	Label string `json:"label,omitempty" jsonschema:"Optional human-readable label for the sample"`
}

// ToolAddSample stores a JSON sample for later schema inference.
func ToolAddSample(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input AddSampleInput) (*sdkmcp.CallToolResult, types.AddSampleOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input AddSampleInput) (*sdkmcp.CallToolResult, types.AddSampleOutput, error) {
		if input.Body == "" {
			return nil, types.AddSampleOutput{}, ErrInvalidInput("body is required")
		}
		if max := d.Config.SampleMaxBytes; max > 0 && len(input.Body) > max {
			return nil, types.AddSampleOutput{}, ErrInvalidInput(fmt.Sprintf("body exceeds %d bytes", max))
		}

		sample, err := d.Samples.Add(input.Label, []byte(input.Body))
		if err != nil {
			return nil, types.AddSampleOutput{}, ErrInvalidInput(err.Error())
		}

		summary := BuildSampleSummary(sample)
		output := types.AddSampleOutput{
			Sample:        &summary,
			StoredSamples: d.Samples.Len(),
			Hint:          fmt.Sprintf("Use schemagen_infer_schema(sample_ids=[%q]) to infer a schema from this sample, or add more samples first.", sample.ID),
		}
		return nil, output, nil
	}
}

// ListSamplesInput is the input for schemagen_list_samples.
type ListSamplesInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max samples to return (default: 20)"`
}

// ToolListSamples lists stored samples in insertion order.
func ToolListSamples(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSamplesInput) (*sdkmcp.CallToolResult, types.ListSamplesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListSamplesInput) (*sdkmcp.CallToolResult, types.ListSamplesOutput, error) {
		limit := input.Limit
		if limit <= 0 {
			limit = d.Config.DefaultListLimit
		}

		all := d.Samples.All()
		total := len(all)
		if len(all) > limit {
			all = all[:limit]
		}

		summaries := make([]types.SampleSummary, 0, len(all))
		for _, sample := range all {
			summaries = append(summaries, BuildSampleSummary(sample))
		}

		output := types.ListSamplesOutput{
			Samples: summaries,
			Total:   total,
			Hint:    "Use schemagen_infer_schema to infer a schema from all samples or a selection of sample_ids.",
		}
		return nil, output, nil
	}
}

// SearchSamplesInput is the input for schemagen_search_samples.
type SearchSamplesInput struct {
	Fields []string `json:"fields" jsonschema:"Field names to search for. Samples containing all of them match (tokens ANDed). Compound names like user_name also match their fragments."`
	Limit  int      `json:"limit,omitempty" jsonschema:"Max samples to return (default: 10)"`
}

// ToolSearchSamples finds samples by the object field names they contain.
func ToolSearchSamples(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchSamplesInput) (*sdkmcp.CallToolResult, types.SearchSamplesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchSamplesInput) (*sdkmcp.CallToolResult, types.SearchSamplesOutput, error) {
		if len(input.Fields) == 0 {
			return nil, types.SearchSamplesOutput{}, ErrInvalidInput("fields is required")
		}

		limit := input.Limit
		if limit <= 0 {
			limit = d.Config.DefaultSearchLimit
		}

		matched := d.Samples.SearchByFields(input.Fields, limit)
		summaries := make([]types.SampleSummary, 0, len(matched))
		for _, sample := range matched {
			summaries = append(summaries, BuildSampleSummary(sample))
		}

		output := types.SearchSamplesOutput{
			Samples: summaries,
			Fields:  input.Fields,
			Hint:    "Pass the matched sample_ids to schemagen_infer_schema to infer a schema for this field set.",
		}
		return nil, output, nil
	}
}
