package tools

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonedm/folio/pkg/portfolio"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := DefaultRegistry(portfolio.NewCatalog(), 0)
	require.NoError(t, err)
	return registry
}

func TestDefaultRegistryHasFiveTools(t *testing.T) {
	registry := newTestRegistry(t)
	assert.Equal(t, 5, registry.Count())
	assert.Equal(t,
		[]string{"getContactInfo", "getStockPrice", "getWeather", "showProjects", "showSkills"},
		registry.List(),
	)
}

func TestInvokeUnknownTool(t *testing.T) {
	registry := newTestRegistry(t)
	_, err := registry.Invoke(context.Background(), "launchMissiles", nil)
	assert.ErrorIs(t, err, ErrUnknownTool)
}

func TestInvokeRejectsInvalidArgs(t *testing.T) {
	registry := newTestRegistry(t)

	// missing required location
	_, err := registry.Invoke(context.Background(), "getWeather", map[string]any{})
	assert.ErrorIs(t, err, ErrInvalidArgs)

	// wrong type
	_, err = registry.Invoke(context.Background(), "getWeather", map[string]any{"location": 42})
	assert.ErrorIs(t, err, ErrInvalidArgs)
}

func TestUnknownCategoryDegradesToEmptyLookup(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "showProjects", map[string]any{"category": "gamedev"})
	require.NoError(t, err)
	lookup := result.Payload.(ProjectLookup)
	assert.Equal(t, "gamedev", lookup.Category)
	assert.Empty(t, lookup.Projects)
	assert.Zero(t, lookup.TotalProjects)

	result, err = registry.Invoke(context.Background(), "showSkills", map[string]any{"category": "cooking"})
	require.NoError(t, err)
	skills := result.Payload.(SkillsLookup)
	assert.Empty(t, skills.Skills)
	assert.Zero(t, skills.TotalSkills)
}

func TestUnknownContactKindFallsBackToAll(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "getContactInfo", map[string]any{"kind": "carrier-pigeon"})
	require.NoError(t, err)
	card := result.Payload.(ContactCard)
	assert.Equal(t, "all", card.Kind)
	assert.NotEmpty(t, card.Email)
}

func TestStockLookupIsDeterministic(t *testing.T) {
	registry := newTestRegistry(t)

	for i := 0; i < 3; i++ {
		result, err := registry.Invoke(context.Background(), "getStockPrice", map[string]any{"symbol": "AAPL"})
		require.NoError(t, err)
		quote, ok := result.Payload.(StockQuote)
		require.True(t, ok)
		assert.Equal(t, 175.25, quote.Price)
		assert.Equal(t, "AAPL", quote.Symbol)
	}
}

func TestStockLookupUnknownSymbolFallsBack(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "getStockPrice", map[string]any{"symbol": "ZZZZ"})
	require.NoError(t, err)
	quote := result.Payload.(StockQuote)
	assert.Equal(t, 100.0, quote.Price)
	assert.Equal(t, "ZZZZ", quote.Symbol)
	assert.Equal(t, "N/A", quote.MarketCap)
}

func TestWeatherLookupIsDeterministic(t *testing.T) {
	registry := newTestRegistry(t)

	first, err := registry.Invoke(context.Background(), "getWeather", map[string]any{"location": "Milan"})
	require.NoError(t, err)
	second, err := registry.Invoke(context.Background(), "getWeather", map[string]any{"location": "Milan"})
	require.NoError(t, err)

	assert.Equal(t, first.Payload, second.Payload)

	report := first.Payload.(WeatherReport)
	assert.Equal(t, "Milan", report.Location)
	assert.NotEmpty(t, report.Condition)
	assert.GreaterOrEqual(t, report.Humidity, 30)
}

func TestWeatherLookupHonorsCancellation(t *testing.T) {
	tool := NewWeatherTool(5 * time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := tool.Execute(ctx, map[string]any{"location": "Milan"})
	assert.True(t, result.IsError)
	assert.True(t, errors.Is(result.Err, context.Canceled))
}

func TestProjectLookupFiltersByCategory(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "showProjects", map[string]any{"category": "ai"})
	require.NoError(t, err)
	lookup := result.Payload.(ProjectLookup)
	require.NotEmpty(t, lookup.Projects)
	assert.Equal(t, len(lookup.Projects), lookup.TotalProjects)
	for _, p := range lookup.Projects {
		assert.Equal(t, portfolio.CategoryAI, p.Category)
	}
}

func TestProjectLookupAllReturnsFullList(t *testing.T) {
	catalog := portfolio.NewCatalog()
	registry, err := DefaultRegistry(catalog, 0)
	require.NoError(t, err)

	result, err := registry.Invoke(context.Background(), "showProjects", map[string]any{"category": "all"})
	require.NoError(t, err)
	lookup := result.Payload.(ProjectLookup)
	assert.Equal(t, len(catalog.Projects()), lookup.TotalProjects)
}

func TestSkillsLookupCountMatchesList(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "showSkills", map[string]any{"category": "backend"})
	require.NoError(t, err)
	lookup := result.Payload.(SkillsLookup)
	require.NotEmpty(t, lookup.Skills)
	assert.Equal(t, len(lookup.Skills), lookup.TotalSkills)
}

func TestContactLookupEmail(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "getContactInfo", map[string]any{"kind": "email"})
	require.NoError(t, err)
	card := result.Payload.(ContactCard)
	assert.Equal(t, "simone@example.com", card.Email)
	assert.Empty(t, card.Social)
}

func TestContactLookupAll(t *testing.T) {
	registry := newTestRegistry(t)

	result, err := registry.Invoke(context.Background(), "getContactInfo", nil)
	require.NoError(t, err)
	card := result.Payload.(ContactCard)
	assert.Equal(t, "all", card.Kind)
	assert.NotEmpty(t, card.Email)
	assert.NotEmpty(t, card.Social)
	assert.NotEmpty(t, card.Availability)
}

func TestToProviderDefsIsSortedAndComplete(t *testing.T) {
	registry := newTestRegistry(t)

	defs := registry.ToProviderDefs()
	require.Len(t, defs, 5)
	for i := 1; i < len(defs); i++ {
		assert.Less(t, defs[i-1].Function.Name, defs[i].Function.Name)
	}
	for _, def := range defs {
		assert.Equal(t, "function", def.Type)
		assert.NotEmpty(t, def.Function.Description)
		assert.Equal(t, "object", def.Function.Parameters["type"])
	}
}
