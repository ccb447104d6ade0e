// Package tools contains MCP tool implementations for schemagen.
package tools

import (
	"encoding/json"

	invopop "github.com/invopop/jsonschema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonwell/schemagen-mcp/internal/samples"
	"github.com/jsonwell/schemagen-mcp/pkg/types"
)

// MakeJSONToolResult creates a CallToolResult with JSON text content.
func MakeJSONToolResult(v any) (*sdkmcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: string(b)},
		},
	}, nil
}

// BuildSampleSummary creates a SampleSummary from a stored sample.
func BuildSampleSummary(sample *samples.Sample) types.SampleSummary {
	return types.SampleSummary{
		SampleID: sample.ID,
		Label:    sample.Label,
		Bytes:    len(sample.Body),
		Preview:  sample.Preview,
		AddedMs:  sample.AddedAt.UnixMilli(),
	}
}

// SchemaToAny converts a schema to an untyped JSON value for tool output.
func SchemaToAny(schema *invopop.Schema) (any, error) {
	return types.ToAny(schema)
}

// ParseSchemaDocument converts an untyped JSON value (a schema document from
// tool input) into a typed schema.
func ParseSchemaDocument(doc any) (*invopop.Schema, error) {
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var schema invopop.Schema
	if err := json.Unmarshal(b, &schema); err != nil {
		return nil, err
	}
	return &schema, nil
}
