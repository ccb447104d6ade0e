package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: schemagen_add_sample
	AddTool(srv, &sdkmcp.Tool{
		Name:        "schemagen_add_sample",
		Description: "Store a JSON document as a sample for schema inference. Returns the sample_id. Samples are indexed by their object field names for schemagen_search_samples.",
	}, ToolAddSample(d))

	// Tool 2: schemagen_list_samples
	AddTool(srv, &sdkmcp.Tool{
		Name:        "schemagen_list_samples",
		Description: "List stored samples in insertion order with labels, sizes, and previews.",
	}, ToolListSamples(d))

	// Tool 3: schemagen_search_samples
	AddTool(srv, &sdkmcp.Tool{
		Name:        "schemagen_search_samples",
		Description: "Find samples by the object field names they contain (tokens ANDed). Compound field names like user_name also match their fragments. Pass the resulting sample_ids to schemagen_infer_schema.",
	}, ToolSearchSamples(d))

	// Tool 4: schemagen_infer_schema
	AddTool(srv, &sdkmcp.Tool{
		Name:        "schemagen_infer_schema",
		Description: "Infer a draft-07 JSON Schema from stored samples. Object properties are unioned across samples and required keys are tracked per sample; divergent shapes become oneOf branches. Supports an optional jq expression to narrow the inferred region, and a combine mode that deep-merges samples into one composite instance first. Requires sample_ids from add_sample/list_samples/search_samples, or runs over all samples.",
	}, ToolInferSchema(d))

	// Tool 5: schemagen_merge_schemas
	AddTool(srv, &sdkmcp.Tool{
		Name:        "schemagen_merge_schemas",
		Description: "Merge JSON Schema documents pairwise, left to right, with the same unification rules used during inference: identical schemas collapse, same-type object schemas union their properties (right wins on collision), anything else becomes a oneOf.",
	}, ToolMergeSchemas(d))

	// Tool 6: schemagen_register_known_type
	AddTool(srv, &sdkmcp.Tool{
		Name:        "schemagen_register_known_type",
		Description: "Register an exact JSON value with a schema (typically a $ref). Inference short-circuits to the registered schema wherever that exact value appears, at any nesting depth, instead of deriving a structural schema.",
	}, ToolRegisterKnownType(d))
}
