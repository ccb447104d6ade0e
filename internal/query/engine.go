// Package query provides jq-based extraction over parsed JSON samples.
package query

import (
	"fmt"

	"github.com/itchyny/gojq"
)

// Engine executes jq expressions against JSON values.
type Engine struct{}

// NewEngine creates a new query engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Extract runs a jq expression over each input value and returns every
// produced value, preserving input order and per-input emission order.
// The ordering is load-bearing for downstream schema folding.
//
// Null results are kept: a null is a meaningful value shape. The first jq
// runtime error aborts the extraction.
func (e *Engine) Extract(inputs []any, expression string) ([]any, error) {
	parsed, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("compiling jq expression: %w", err)
	}

	var values []any
	for i, input := range inputs {
		iter := code.Run(input)
		for {
			v, ok := iter.Next()
			if !ok {
				break
			}
			if runErr, isErr := v.(error); isErr {
				return nil, fmt.Errorf("jq error on input %d: %w", i, runErr)
			}
			values = append(values, v)
		}
	}

	return values, nil
}
