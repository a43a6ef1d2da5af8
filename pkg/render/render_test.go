package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonedm/folio/pkg/tools"
	"github.com/simonedm/folio/pkg/transcript"
)

func TestViewForUnknownToolIsSilentNoop(t *testing.T) {
	view, ok := ViewFor(transcript.ToolInvocation{
		ToolCallID: "call_x",
		ToolName:   "someFutureTool",
		State:      transcript.StateResult,
		Result:     map[string]any{"anything": true},
	})
	assert.False(t, ok)
	assert.Nil(t, view)
}

func TestViewForPending(t *testing.T) {
	view, ok := ViewFor(transcript.ToolInvocation{
		ToolCallID: "call_1",
		ToolName:   "getWeather",
		State:      transcript.StateCallPending,
	})
	require.True(t, ok)
	pending, ok := view.(PendingView)
	require.True(t, ok)
	assert.Equal(t, "getWeather", pending.ToolName)
	assert.NotEmpty(t, pending.Label)
}

func TestViewForTypedResult(t *testing.T) {
	view, ok := ViewFor(transcript.ToolInvocation{
		ToolCallID: "call_2",
		ToolName:   "getStockPrice",
		State:      transcript.StateResult,
		Result:     tools.StockQuote{Symbol: "AAPL", Price: 175.25, Change: 1.82, MarketCap: "2.8T"},
	})
	require.True(t, ok)
	card, ok := view.(StockCard)
	require.True(t, ok)
	assert.Equal(t, 175.25, card.Quote.Price)
}

func TestViewForMapResult(t *testing.T) {
	// results that crossed the wire arrive as decoded JSON maps
	view, ok := ViewFor(transcript.ToolInvocation{
		ToolCallID: "call_3",
		ToolName:   "showSkills",
		State:      transcript.StateResult,
		Result: map[string]any{
			"category":    "backend",
			"skills":      []any{map[string]any{"name": "Go", "level": 90, "category": "backend"}},
			"totalSkills": 1,
		},
	})
	require.True(t, ok)
	card, ok := view.(SkillsChartCard)
	require.True(t, ok)
	assert.Equal(t, 1, card.Lookup.TotalSkills)
	require.Len(t, card.Lookup.Skills, 1)
	assert.Equal(t, "Go", card.Lookup.Skills[0].Name)
}

func TestViewForEveryKnownTool(t *testing.T) {
	invocations := []transcript.ToolInvocation{
		{ToolName: "getWeather", State: transcript.StateResult, Result: tools.WeatherReport{Location: "Milan"}},
		{ToolName: "getStockPrice", State: transcript.StateResult, Result: tools.StockQuote{Symbol: "MSFT"}},
		{ToolName: "showProjects", State: transcript.StateResult, Result: tools.ProjectLookup{Category: "all"}},
		{ToolName: "showSkills", State: transcript.StateResult, Result: tools.SkillsLookup{Category: "all"}},
		{ToolName: "getContactInfo", State: transcript.StateResult, Result: tools.ContactCard{Kind: "all", Email: "simone@example.com"}},
	}
	for _, inv := range invocations {
		view, ok := ViewFor(inv)
		require.True(t, ok, inv.ToolName)
		require.NotNil(t, view, inv.ToolName)
	}
}

func TestTextRendering(t *testing.T) {
	assert.Contains(t, Text(StockCard{Quote: tools.StockQuote{Symbol: "AAPL", Price: 175.25, Change: 1.82, MarketCap: "2.8T"}}), "AAPL: $175.25")
	assert.Contains(t, Text(PendingView{ToolName: "getWeather", Label: "Checking the weather..."}), "Checking")
	assert.Contains(t, Text(ContactCardView{Card: tools.ContactCard{Email: "simone@example.com"}}), "simone@example.com")
}
