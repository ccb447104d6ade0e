package mcpsrv

import (
	"github.com/jsonwell/schemagen-mcp/internal/cache"
	"github.com/jsonwell/schemagen-mcp/internal/config"
	"github.com/jsonwell/schemagen-mcp/internal/inferrer"
	"github.com/jsonwell/schemagen-mcp/internal/query"
	"github.com/jsonwell/schemagen-mcp/internal/registry"
	"github.com/jsonwell/schemagen-mcp/internal/samples"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Config   *config.Config
	Samples  *samples.Store
	Known    *registry.Store
	Cache    *cache.SchemaCache
	Query    *query.Engine
	Inferrer *inferrer.Inferrer
}
