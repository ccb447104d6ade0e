package tools

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonwell/schemagen-mcp/pkg/types"
)

// RegisterKnownTypeInput is the input for schemagen_register_known_type.
type RegisterKnownTypeInput struct {
	Instance any `json:"instance" jsonschema:"Exact JSON value to recognize during inference. Field order does not matter; the value is matched structurally."`
	Schema   any `json:"schema" jsonschema:"JSON Schema document to emit whenever this exact value is encountered, typically a $ref"`
}

// ToolRegisterKnownType associates an exact instance value with a schema.
// Inference short-circuits to the registered schema when it encounters the
// value, at any nesting depth.
func ToolRegisterKnownType(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input RegisterKnownTypeInput) (*sdkmcp.CallToolResult, types.RegisterKnownTypeOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input RegisterKnownTypeInput) (*sdkmcp.CallToolResult, types.RegisterKnownTypeOutput, error) {
		if input.Schema == nil {
			return nil, types.RegisterKnownTypeOutput{}, ErrInvalidInput("schema is required")
		}

		schema, err := ParseSchemaDocument(input.Schema)
		if err != nil {
			return nil, types.RegisterKnownTypeOutput{}, ErrInvalidInput(fmt.Sprintf("schema is not a valid schema document: %v", err))
		}

		if err := d.Known.Register(input.Instance, schema); err != nil {
			return nil, types.RegisterKnownTypeOutput{}, ErrInvalidInput(err.Error())
		}

		output := types.RegisterKnownTypeOutput{
			RegisteredTypes: d.Known.Len(),
			Hint:            "Future schemagen_infer_schema runs emit the registered schema wherever this exact value appears.",
		}
		return nil, output, nil
	}
}
