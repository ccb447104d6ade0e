package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonwell/schemagen-mcp/internal/inferrer"
	"github.com/jsonwell/schemagen-mcp/pkg/types"
)

// InferSchemaInput is the input for schemagen_infer_schema.
type InferSchemaInput struct {
	SampleIDs  []string `json:"sample_ids,omitempty" jsonschema:"Sample IDs to analyze. Obtain from add_sample, list_samples, or search_samples. Empty means all stored samples."`
	Expression string   `json:"expression,omitempty" jsonschema:"Optional jq expression applied to every sample; the schema is inferred from the extracted values instead of whole bodies"`
	Combine    bool     `json:"combine,omitempty" jsonschema:"Deep-merge all selected values into one composite instance before inference, instead of unifying per-sample schemas"`
	MaxSamples int      `json:"max_samples,omitempty" jsonschema:"Max samples to inspect (default: 1000)"`
}

// ToolInferSchema infers a draft-07 JSON Schema from stored samples. Each
// value gets its own schema; divergent schemas are unified pairwise, left to
// right, into property unions or oneOf branches.
func ToolInferSchema(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, types.InferSchemaOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input InferSchemaInput) (*sdkmcp.CallToolResult, types.InferSchemaOutput, error) {
		if d.Samples.Len() == 0 {
			return nil, types.InferSchemaOutput{}, ErrInvalidInput("no samples stored; call schemagen_add_sample first")
		}

		maxSamples := input.MaxSamples
		if maxSamples <= 0 || maxSamples > d.Config.MaxInferSamples {
			maxSamples = d.Config.MaxInferSamples
		}

		result, err := d.Inferrer.Infer(ctx, inferrer.Options{
			SampleIDs:  input.SampleIDs,
			Expression: input.Expression,
			Combine:    input.Combine,
			MaxSamples: maxSamples,
		})
		if err != nil {
			return nil, types.InferSchemaOutput{}, WrapInferenceError(err)
		}

		schemaDoc, err := SchemaToAny(result.Schema)
		if err != nil {
			return nil, types.InferSchemaOutput{}, WrapInferenceError(err)
		}

		hint := "Schemas for repeated structures can be registered with schemagen_register_known_type to collapse them to a $ref on future runs."
		if !result.AllMatch {
			hint = "Samples diverged; the schema is a structural union. Use schemagen_search_samples to isolate one variant, or a jq expression to narrow the inferred region."
		}

		output := types.InferSchemaOutput{
			Schema: schemaDoc,
			Summary: types.InferSchemaSummary{
				SamplesExamined: result.SampleCount,
				ValuesInferred:  result.ValueCount,
				AllMatch:        result.AllMatch,
				FromCache:       result.FromCache,
			},
			Hint: hint,
		}
		return nil, output, nil
	}
}
