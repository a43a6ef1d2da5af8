// folio - personal portfolio AI assistant backend
// License: MIT

package providers

import (
	"fmt"
	"strings"

	"github.com/simonedm/folio/pkg/config"
	"github.com/simonedm/folio/pkg/providers/anthropic_sdk"
	"github.com/simonedm/folio/pkg/providers/openai_sdk"
)

// CreateProvider instantiates the LLM provider selected by the config.
// When no provider name is set, the configured model name is used to
// infer one: claude models go to Anthropic, everything else to OpenAI.
func CreateProvider(cfg *config.Config) (LLMProvider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider.Name))
	if name == "" {
		name = inferProviderFromModel(cfg.Chat.Model)
	}

	switch name {
	case "openai", "gpt":
		if cfg.Provider.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("openai provider selected but no API key configured")
		}
		return openai_sdk.NewProvider(cfg.Provider.OpenAIAPIKey, cfg.Provider.OpenAIAPIBase), nil
	case "anthropic", "claude":
		if cfg.Provider.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("anthropic provider selected but no API key configured")
		}
		return anthropic_sdk.NewProvider(cfg.Provider.AnthropicAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown provider: %s", name)
	}
}

func inferProviderFromModel(model string) string {
	lower := strings.ToLower(model)
	if strings.Contains(lower, "claude") || strings.HasPrefix(model, "anthropic/") {
		return "anthropic"
	}
	return "openai"
}
