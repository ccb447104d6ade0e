package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonwell/schemagen-mcp/internal/cache"
	"github.com/jsonwell/schemagen-mcp/internal/config"
	"github.com/jsonwell/schemagen-mcp/internal/inferrer"
	"github.com/jsonwell/schemagen-mcp/internal/logging"
	"github.com/jsonwell/schemagen-mcp/internal/mcp"
	"github.com/jsonwell/schemagen-mcp/internal/mcp/tools"
	"github.com/jsonwell/schemagen-mcp/internal/query"
	"github.com/jsonwell/schemagen-mcp/internal/registry"
	"github.com/jsonwell/schemagen-mcp/internal/samples"
)

// Server is the schemagen MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with builtin schemagen tools.
//
// Use functional options to configure logging, add custom tools, etc.
func NewServer(opts ...Option) (*Server, error) {
	// Build configuration from options
	cfg := &serverConfig{
		config: config.Load(), // Load defaults from environment
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Setup logging
	logCfg := logging.Config{
		Level:      cfg.config.LogLevel,
		FilePath:   cfg.config.LogFile,
		MaxSizeMB:  cfg.config.LogMaxSizeMB,
		MaxBackups: cfg.config.LogMaxBackups,
		MaxAgeDays: cfg.config.LogMaxAgeDays,
		Compress:   cfg.config.LogCompress,
	}
	if cfg.logLevel != "" {
		logCfg.Level = cfg.logLevel
	}
	if cfg.logFile != "" {
		logCfg.FilePath = cfg.logFile
	}
	logCleanup, err := logging.Setup(logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	// Create infrastructure
	sampleStore := samples.NewStore(cfg.config.MaxStoredSamples, cfg.config.PreviewMaxBytes)
	knownTypes := registry.NewStore()
	schemaCache, err := cache.NewSchemaCache(cfg.config.SchemaCacheItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create schema cache: %w", err)
	}

	// Create engines
	queryEngine := query.NewEngine()
	inferEngine := inferrer.New(sampleStore, knownTypes, schemaCache, cfg.config.InferWorkers, cfg.config.CompileCheck)

	// Create deps for internal tools and custom tools
	toolDeps := &tools.Deps{
		Config:   cfg.config,
		Samples:  sampleStore,
		Known:    knownTypes,
		Cache:    schemaCache,
		Query:    queryEngine,
		Inferrer: inferEngine,
	}

	// Create public deps (same values, different type for public API)
	deps := &Deps{
		Config:   cfg.config,
		Samples:  sampleStore,
		Known:    knownTypes,
		Cache:    schemaCache,
		Query:    queryEngine,
		Inferrer: inferEngine,
	}

	// Build internal server options
	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}

	// Add custom extension registration callbacks
	for _, fn := range cfg.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}

	// Add deferred tool registrations (tools that need Deps access)
	for _, fn := range cfg.deferredToolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	// Create internal server
	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
