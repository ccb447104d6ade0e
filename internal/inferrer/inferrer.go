// Package inferrer orchestrates schema inference over stored samples:
// sample resolution, optional jq extraction, optional sample combining,
// parallel per-value inference, and the ordered schema fold.
package inferrer

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/invopop/jsonschema"
	"golang.org/x/sync/errgroup"

	"github.com/jsonwell/schemagen-mcp/internal/cache"
	"github.com/jsonwell/schemagen-mcp/internal/query"
	"github.com/jsonwell/schemagen-mcp/internal/samples"
	"github.com/jsonwell/schemagen-mcp/pkg/jsonmerge"
	"github.com/jsonwell/schemagen-mcp/pkg/schemagen"
)

// Options controls one inference run.
type Options struct {
	// SampleIDs selects specific samples. Empty means all stored samples.
	SampleIDs []string
	// Expression is an optional jq expression applied to every sample;
	// inference then runs over the extracted values instead of whole bodies.
	Expression string
	// Combine deep-merges all selected values into one composite instance
	// before inference, instead of folding per-value schemas.
	Combine bool
	// MaxSamples caps how many samples are examined (0 = no cap).
	MaxSamples int
}

// Result is the outcome of an inference run.
type Result struct {
	Schema      *jsonschema.Schema `json:"schema"`
	SampleCount int                `json:"sample_count"`
	ValueCount  int                `json:"value_count"`
	AllMatch    bool               `json:"all_match"`
	FromCache   bool               `json:"from_cache"`
}

// Inferrer wires the sample store, known-type registry, result cache, and
// query engine into one pipeline.
type Inferrer struct {
	store        *samples.Store
	known        schemagen.KnownTypes
	generator    *schemagen.Generator
	cache        *cache.SchemaCache
	query        *query.Engine
	workers      int
	compileCheck bool
}

// KnownTypesGeneration is implemented by registries that count mutations.
// The generation is mixed into cache keys so registering a known type
// invalidates previously cached inference results.
type KnownTypesGeneration interface {
	Generation() uint64
}

// New creates an Inferrer. The cache may be nil to disable result caching.
func New(store *samples.Store, known schemagen.KnownTypes, schemaCache *cache.SchemaCache, workers int, compileCheck bool) *Inferrer {
	if workers <= 0 {
		workers = 1
	}
	return &Inferrer{
		store:        store,
		known:        known,
		generator:    schemagen.NewGenerator(known),
		cache:        schemaCache,
		query:        query.NewEngine(),
		workers:      workers,
		compileCheck: compileCheck,
	}
}

// Infer runs the pipeline and returns the unified schema for the selection.
func (inf *Inferrer) Infer(ctx context.Context, opts Options) (*Result, error) {
	selected, err := inf.resolve(opts)
	if err != nil {
		return nil, err
	}
	if len(selected) == 0 {
		return nil, fmt.Errorf("no samples to infer from")
	}

	key := inf.cacheKey(selected, opts)
	if inf.cache != nil {
		if schema, ok := inf.cache.Get(key); ok {
			return &Result{
				Schema:      schema,
				SampleCount: len(selected),
				FromCache:   true,
			}, nil
		}
	}

	values, err := inf.collectValues(selected, opts)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("jq expression produced no values")
	}

	schemas, err := inf.inferAll(ctx, values)
	if err != nil {
		return nil, err
	}

	schema, allMatch, err := foldSchemas(schemas)
	if err != nil {
		return nil, err
	}

	if inf.compileCheck {
		if err := schemagen.Compile(schema); err != nil {
			return nil, err
		}
	}

	if inf.cache != nil {
		inf.cache.Put(key, schema)
	}

	return &Result{
		Schema:      schema,
		SampleCount: len(selected),
		ValueCount:  len(values),
		AllMatch:    allMatch,
	}, nil
}

// resolve maps the selection to stored samples, preserving request order.
func (inf *Inferrer) resolve(opts Options) ([]*samples.Sample, error) {
	var selected []*samples.Sample
	if len(opts.SampleIDs) > 0 {
		selected = make([]*samples.Sample, 0, len(opts.SampleIDs))
		for _, id := range opts.SampleIDs {
			sample, ok := inf.store.Get(id)
			if !ok {
				return nil, fmt.Errorf("sample not found: %s", id)
			}
			selected = append(selected, sample)
		}
	} else {
		selected = inf.store.All()
	}

	if opts.MaxSamples > 0 && len(selected) > opts.MaxSamples {
		selected = selected[:opts.MaxSamples]
	}
	return selected, nil
}

func (inf *Inferrer) cacheKey(selected []*samples.Sample, opts Options) string {
	bodies := make([][]byte, len(selected))
	for i, s := range selected {
		bodies[i] = s.Body
	}
	combine := "fold"
	if opts.Combine {
		combine = "combine"
	}

	// Registry state shapes the result too: a newer generation must miss.
	generation := ""
	if versioned, ok := inf.known.(KnownTypesGeneration); ok {
		generation = strconv.FormatUint(versioned.Generation(), 10)
	}

	return cache.Key(bodies, opts.Expression, combine, generation)
}

// collectValues produces the instance values inference runs over.
func (inf *Inferrer) collectValues(selected []*samples.Sample, opts Options) ([]any, error) {
	values := make([]any, len(selected))
	for i, s := range selected {
		values[i] = s.Parsed
	}

	if opts.Expression != "" {
		extracted, err := inf.query.Extract(values, opts.Expression)
		if err != nil {
			return nil, err
		}
		values = extracted
	}

	if opts.Combine && len(values) > 1 {
		// Clone before merging: stored sample values must stay intact.
		composite := jsonmerge.Clone(values[0])
		for _, v := range values[1:] {
			composite = jsonmerge.Merge(composite, v)
		}
		values = []any{composite}
	}

	return values, nil
}

// inferAll infers one schema per value, in parallel with a bounded worker
// count. Results are written by index so the fold below still sees them in
// value order.
func (inf *Inferrer) inferAll(ctx context.Context, values []any) ([]*jsonschema.Schema, error) {
	schemas := make([]*jsonschema.Schema, len(values))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(inf.workers)
	for i, v := range values {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			schema, err := inf.generator.Generate(v)
			if err != nil {
				return err
			}
			schemas[i] = schema
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return schemas, nil
}

// foldSchemas merges per-value schemas pairwise, left to right, and stamps
// the dialect marker on the resulting document. Per-value markers are
// stripped before the fold so they never leak into nested positions.
//
// Per-value schemas may be registry-owned (known-type hits), so marker
// changes always go through a shallow copy, never an in-place write.
func foldSchemas(schemas []*jsonschema.Schema) (*jsonschema.Schema, bool, error) {
	if len(schemas) == 1 {
		return stampDialect(schemas[0]), true, nil
	}

	allMatch := true
	first, err := json.Marshal(schemas[0])
	if err != nil {
		return nil, false, &schemagen.ConstructionError{Reason: "schema failed to materialize", Err: err}
	}
	for _, s := range schemas[1:] {
		other, err := json.Marshal(s)
		if err != nil {
			return nil, false, &schemagen.ConstructionError{Reason: "schema failed to materialize", Err: err}
		}
		if string(first) != string(other) {
			allMatch = false
			break
		}
	}

	acc := stripDialect(schemas[0])
	for _, s := range schemas[1:] {
		acc, err = schemagen.Merge(acc, stripDialect(s))
		if err != nil {
			return nil, false, err
		}
	}

	return stampDialect(acc), allMatch, nil
}

// stripDialect returns the schema without its dialect marker, copying when
// the marker is set so shared schemas are never written to.
func stripDialect(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Version == "" {
		return s
	}
	stripped := *s
	stripped.Version = ""
	return &stripped
}

// stampDialect returns the schema carrying the draft-07 document marker,
// copying when the marker needs to change.
func stampDialect(s *jsonschema.Schema) *jsonschema.Schema {
	if s.Version == schemagen.DialectDraft07 {
		return s
	}
	stamped := *s
	stamped.Version = schemagen.DialectDraft07
	return &stamped
}
