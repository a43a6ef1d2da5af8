// folio - personal portfolio AI assistant backend
// License: MIT

package tools

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/google/jsonschema-go/jsonschema"
)

// WeatherReport is the structured result of a weather lookup, rendered as
// a weather card by the client.
type WeatherReport struct {
	Location    string  `json:"location"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	Description string  `json:"description"`
}

var weatherConditions = []struct {
	condition   string
	description string
}{
	{"sunny", "Clear skies and plenty of sunshine"},
	{"partly-cloudy", "A mix of sun and clouds"},
	{"cloudy", "Overcast with thick cloud cover"},
	{"rainy", "Light rain throughout the day"},
	{"windy", "Strong gusts, hold onto your hat"},
}

// WeatherTool answers weather questions with deterministic simulated data
// derived from the location name, after an optional simulated lookup delay.
type WeatherTool struct {
	delay time.Duration
}

func NewWeatherTool(delay time.Duration) *WeatherTool {
	return &WeatherTool{delay: delay}
}

func (t *WeatherTool) Name() string { return "getWeather" }

func (t *WeatherTool) Description() string {
	return "Get the current weather for a location. Call this when the user asks about the weather somewhere."
}

func (t *WeatherTool) Schema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"location": {
				Type:        "string",
				Description: "City or place name, e.g. \"Milan\" or \"San Francisco\"",
			},
		},
		Required: []string{"location"},
	}
}

func (t *WeatherTool) Execute(ctx context.Context, args map[string]any) *ToolResult {
	location, _ := args["location"].(string)
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrorResult("location must not be empty")
	}

	if err := sleepCtx(ctx, t.delay); err != nil {
		return ErrorResult("weather lookup cancelled").WithError(err)
	}

	h := hashString(strings.ToLower(location))
	entry := weatherConditions[h%uint32(len(weatherConditions))]

	return NewToolResult(WeatherReport{
		Location:    location,
		Condition:   entry.condition,
		Temperature: float64(5 + h%26),
		Humidity:    int(30 + h%61),
		WindSpeed:   float64(2 + h%24),
		Description: fmt.Sprintf("%s in %s", entry.description, location),
	})
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// sleepCtx waits for d or until ctx is cancelled. Zero d returns immediately.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
