// folio - personal portfolio AI assistant backend
// License: MIT

package tools

import (
	"context"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
)

// StockQuote is the structured result of a stock lookup, rendered as a
// stock card by the client.
type StockQuote struct {
	Symbol    string  `json:"symbol"`
	Price     float64 `json:"price"`
	Change    float64 `json:"change"`
	MarketCap string  `json:"marketCap"`
}

// fallbackStockPrice is returned for symbols outside the fixture table.
const fallbackStockPrice = 100.0

var stockFixtures = map[string]StockQuote{
	"AAPL":  {Symbol: "AAPL", Price: 175.25, Change: 1.82, MarketCap: "2.8T"},
	"GOOGL": {Symbol: "GOOGL", Price: 142.80, Change: -0.65, MarketCap: "1.8T"},
	"MSFT":  {Symbol: "MSFT", Price: 378.50, Change: 2.41, MarketCap: "2.9T"},
	"TSLA":  {Symbol: "TSLA", Price: 248.90, Change: -3.17, MarketCap: "790B"},
	"NVDA":  {Symbol: "NVDA", Price: 495.20, Change: 5.63, MarketCap: "1.2T"},
	"AMZN":  {Symbol: "AMZN", Price: 155.30, Change: 0.94, MarketCap: "1.6T"},
	"META":  {Symbol: "META", Price: 345.60, Change: 1.28, MarketCap: "890B"},
}

// StockTool answers stock price questions from a fixed quote table, after
// an optional simulated lookup delay. Unknown symbols fall back to a fixed
// price instead of failing the chat turn.
type StockTool struct {
	delay time.Duration
}

func NewStockTool(delay time.Duration) *StockTool {
	return &StockTool{delay: delay}
}

func (t *StockTool) Name() string { return "getStockPrice" }

func (t *StockTool) Description() string {
	return "Get the current price for a stock ticker symbol. Call this when the user asks about a stock or share price."
}

func (t *StockTool) Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"symbol": {
				Type:        "string",
				Description: "Ticker symbol, e.g. \"AAPL\" or \"GOOGL\"",
			},
		},
		Required: []string{"symbol"},
	}
}

func (t *StockTool) Execute(ctx context.Context, args map[string]any) *ToolResult {
	symbol, _ := args["symbol"].(string)
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return ErrorResult("symbol must not be empty")
	}

	if err := sleepCtx(ctx, t.delay); err != nil {
		return ErrorResult("stock lookup cancelled").WithError(err)
	}

	quote, ok := stockFixtures[symbol]
	if !ok {
		quote = StockQuote{
			Symbol:    symbol,
			Price:     fallbackStockPrice,
			Change:    0,
			MarketCap: "N/A",
		}
	}

	return NewToolResult(quote)
}
