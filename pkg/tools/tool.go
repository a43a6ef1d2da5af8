// folio - personal portfolio AI assistant backend
// License: MIT

// Package tools implements the assistant's fixed tool catalogue: weather,
// stock, project, skills and contact lookups. Tools declare a JSON schema
// for their arguments; the registry validates arguments against it before
// the handler runs.
package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/jsonschema-go/jsonschema"
)

var (
	ErrUnknownTool = errors.New("unknown tool")
	ErrInvalidArgs = errors.New("invalid tool arguments")
)

// Tool is one registered assistant capability.
type Tool interface {
	Name() string
	Description() string
	Schema() *jsonschema.Schema
	Execute(ctx context.Context, args map[string]any) *ToolResult
}

// ToolResult is the outcome of one tool execution. Payload carries the
// typed record (WeatherReport, StockQuote, ...) consumed by the renderer;
// ForLLM carries the serialized form fed back to the model.
type ToolResult struct {
	ForLLM  string
	Payload any
	IsError bool
	Err     error
}

// NewToolResult wraps a typed payload, serializing it for the model.
func NewToolResult(payload any) *ToolResult {
	forLLM, err := json.Marshal(payload)
	if err != nil {
		return ErrorResult("failed to serialize tool result").WithError(err)
	}
	return &ToolResult{ForLLM: string(forLLM), Payload: payload}
}

func ErrorResult(message string) *ToolResult {
	return &ToolResult{ForLLM: message, IsError: true}
}

func (r *ToolResult) WithError(err error) *ToolResult {
	r.Err = err
	return r
}

// schemaToMap converts a JSON schema to the generic map form the provider
// APIs expect for tool parameter declarations.
func schemaToMap(s *jsonschema.Schema) map[string]any {
	data, err := json.Marshal(s)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return map[string]any{"type": "object"}
	}
	return m
}
