package mcpsrv

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonwell/schemagen-mcp/internal/mcp/tools"
)

// AddTool registers a custom tool on the underlying MCP server with the same
// startup check the builtin schemagen tools get: the zero value of Out must
// pass the JSON schema the SDK infers for it. Schema-bearing outputs are the
// common trap — a `Schema any` field is fine, but a nil slice field without
// `omitzero` serializes as null and fails the inferred "array" schema on the
// first call that returns no results.
//
// AddTool panics at registration time when the check fails, naming the tool
// and the offending type. [WithTool] and [WithDepsTool] route through this
// automatically; call it directly only when registering against a raw
// [sdkmcp.Server].
func AddTool[In, Out any](srv *sdkmcp.Server, t *sdkmcp.Tool, h sdkmcp.ToolHandlerFor[In, Out]) {
	tools.AddTool(srv, t, h)
}
