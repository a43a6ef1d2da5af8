package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeToolCallFromFunctionForm(t *testing.T) {
	tc := ToolCall{
		ID:   "call_1",
		Type: "function",
		Function: &FunctionCall{
			Name:      "get_weather",
			Arguments: `{"location":"Milan"}`,
		},
	}

	got := NormalizeToolCall(tc)

	assert.Equal(t, "get_weather", got.Name)
	require.NotNil(t, got.Arguments)
	assert.Equal(t, "Milan", got.Arguments["location"])
}

func TestNormalizeToolCallFromFlatForm(t *testing.T) {
	tc := ToolCall{
		ID:        "call_2",
		Name:      "get_stock_price",
		Arguments: map[string]any{"symbol": "AAPL"},
	}

	got := NormalizeToolCall(tc)

	require.NotNil(t, got.Function)
	assert.Equal(t, "get_stock_price", got.Function.Name)
	assert.JSONEq(t, `{"symbol":"AAPL"}`, got.Function.Arguments)
	assert.Equal(t, "function", got.Type)
}

func TestNormalizeToolCallEmptyArguments(t *testing.T) {
	tc := ToolCall{ID: "call_3", Name: "get_contact_info"}

	got := NormalizeToolCall(tc)

	require.NotNil(t, got.Arguments)
	assert.Empty(t, got.Arguments)
	require.NotNil(t, got.Function)
	assert.JSONEq(t, `{}`, got.Function.Arguments)
}

func TestInferProviderFromModel(t *testing.T) {
	assert.Equal(t, "anthropic", inferProviderFromModel("claude-sonnet-4-5"))
	assert.Equal(t, "anthropic", inferProviderFromModel("anthropic/claude-3-7-sonnet"))
	assert.Equal(t, "openai", inferProviderFromModel("gpt-4o-mini"))
	assert.Equal(t, "openai", inferProviderFromModel(""))
}
