package tools

import (
	"context"
	"fmt"

	invopop "github.com/invopop/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonwell/schemagen-mcp/pkg/schemagen"
	"github.com/jsonwell/schemagen-mcp/pkg/types"
)

// MergeSchemasInput is the input for schemagen_merge_schemas.
type MergeSchemasInput struct {
	Schemas []any `json:"schemas" jsonschema:"JSON Schema documents to merge, in order. At least two are required. Identical schemas collapse; same-type object schemas union their properties; anything else becomes a oneOf."`
}

// ToolMergeSchemas unifies schema documents pairwise, left to right, with the
// same rules used during inference.
func ToolMergeSchemas(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MergeSchemasInput) (*sdkmcp.CallToolResult, types.MergeSchemasOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MergeSchemasInput) (*sdkmcp.CallToolResult, types.MergeSchemasOutput, error) {
		if len(input.Schemas) < 2 {
			return nil, types.MergeSchemasOutput{}, ErrInvalidInput("at least two schemas are required")
		}

		parsed := make([]*invopop.Schema, 0, len(input.Schemas))
		for i, doc := range input.Schemas {
			schema, err := ParseSchemaDocument(doc)
			if err != nil {
				return nil, types.MergeSchemasOutput{}, ErrInvalidInput(fmt.Sprintf("schema %d is not a valid schema document: %v", i, err))
			}
			// Per-input dialect markers would leak into nested positions.
			schema.Version = ""
			parsed = append(parsed, schema)
		}

		collapsed := true
		acc := parsed[0]
		for _, schema := range parsed[1:] {
			merged, err := schemagen.Merge(acc, schema)
			if err != nil {
				return nil, types.MergeSchemasOutput{}, WrapInferenceError(err)
			}
			if merged != acc {
				collapsed = false
			}
			acc = merged
		}
		acc.Version = schemagen.DialectDraft07

		schemaDoc, err := SchemaToAny(acc)
		if err != nil {
			return nil, types.MergeSchemasOutput{}, WrapInferenceError(err)
		}

		output := types.MergeSchemasOutput{
			Schema:    schemaDoc,
			Collapsed: collapsed,
			Hint:      "Register the merged schema with schemagen_register_known_type to reuse it as a $ref in future inference runs.",
		}
		return nil, output, nil
	}
}
