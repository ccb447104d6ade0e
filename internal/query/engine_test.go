package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, data string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(data), &v))
	return v
}

func TestEngine_Extract_Simple(t *testing.T) {
	engine := NewEngine()

	values, err := engine.Extract([]any{parse(t, `{"name": "John", "age": 30}`)}, ".name")
	require.NoError(t, err)
	assert.Equal(t, []any{"John"}, values)
}

func TestEngine_Extract_ArrayIteration(t *testing.T) {
	engine := NewEngine()

	values, err := engine.Extract([]any{parse(t, `{"items": [1, 2, 3]}`)}, ".items[]")
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2), float64(3)}, values)
}

func TestEngine_Extract_PreservesInputOrder(t *testing.T) {
	engine := NewEngine()

	inputs := []any{
		parse(t, `{"v": "first"}`),
		parse(t, `{"v": "second"}`),
		parse(t, `{"v": "third"}`),
	}
	values, err := engine.Extract(inputs, ".v")
	require.NoError(t, err)
	assert.Equal(t, []any{"first", "second", "third"}, values)
}

func TestEngine_Extract_KeepsNulls(t *testing.T) {
	engine := NewEngine()

	values, err := engine.Extract([]any{parse(t, `{"v": null}`)}, ".v")
	require.NoError(t, err)
	assert.Equal(t, []any{nil}, values)
}

func TestEngine_Extract_Select(t *testing.T) {
	engine := NewEngine()

	input := parse(t, `{"items": [{"ok": true, "n": 1}, {"ok": false, "n": 2}, {"ok": true, "n": 3}]}`)
	values, err := engine.Extract([]any{input}, `.items[] | select(.ok) | .n`)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(3)}, values)
}

func TestEngine_Extract_InvalidExpression(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Extract([]any{parse(t, `{}`)}, ".name[")
	assert.Error(t, err)
}

func TestEngine_Extract_RuntimeErrorAborts(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Extract([]any{parse(t, `5`)}, ".field")
	assert.Error(t, err)
}
