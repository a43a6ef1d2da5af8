// folio - personal portfolio AI assistant backend
// License: MIT

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// ServerConfig controls the HTTP gateway.
type ServerConfig struct {
	Host string `json:"host" env:"FOLIO_SERVER_HOST"`
	Port int    `json:"port" env:"FOLIO_SERVER_PORT"`
	// APIKey, when set, requires Bearer auth on non-public endpoints.
	APIKey string `json:"api_key" env:"FOLIO_SERVER_API_KEY"`
	// ChatRatePerMinute bounds /api/chat submissions per client. 0 disables.
	ChatRatePerMinute int `json:"chat_rate_per_minute" env:"FOLIO_SERVER_CHAT_RATE_PER_MINUTE"`
}

// ProviderConfig selects and configures the hosted completion API.
type ProviderConfig struct {
	// Name is "openai" or "anthropic".
	Name            string `json:"name" env:"FOLIO_PROVIDER"`
	OpenAIAPIKey    string `json:"openai_api_key" env:"OPENAI_API_KEY"`
	OpenAIAPIBase   string `json:"openai_api_base" env:"FOLIO_OPENAI_API_BASE"`
	AnthropicAPIKey string `json:"anthropic_api_key" env:"ANTHROPIC_API_KEY"`
}

type ChatConfig struct {
	Model             string  `json:"model" env:"FOLIO_CHAT_MODEL"`
	MaxTokens         int     `json:"max_tokens" env:"FOLIO_CHAT_MAX_TOKENS"`
	Temperature       float64 `json:"temperature" env:"FOLIO_CHAT_TEMPERATURE"`
	MaxToolIterations int     `json:"max_tool_iterations" env:"FOLIO_CHAT_MAX_TOOL_ITERATIONS"`
}

type RealtimeConfig struct {
	Model string `json:"model" env:"FOLIO_REALTIME_MODEL"`
	Voice string `json:"voice" env:"FOLIO_REALTIME_VOICE"`
}

type SpeechConfig struct {
	TTSModel        string  `json:"tts_model" env:"FOLIO_TTS_MODEL"`
	TTSVoice        string  `json:"tts_voice" env:"FOLIO_TTS_VOICE"`
	TTSSpeed        float64 `json:"tts_speed" env:"FOLIO_TTS_SPEED"`
	TranscribeModel string  `json:"transcribe_model" env:"FOLIO_TRANSCRIBE_MODEL"`
}

type LogConfig struct {
	Level string `json:"level" env:"FOLIO_LOG_LEVEL"`
	File  string `json:"file" env:"FOLIO_LOG_FILE"`
}

type Config struct {
	Server   ServerConfig   `json:"server"`
	Provider ProviderConfig `json:"provider"`
	Chat     ChatConfig     `json:"chat"`
	Realtime RealtimeConfig `json:"realtime"`
	Speech   SpeechConfig   `json:"speech"`
	Log      LogConfig      `json:"log"`
}

// LoadConfig reads the JSON config at path (missing file means defaults)
// and applies environment overrides on top.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SaveConfig writes cfg to path, creating parent directories as needed.
func SaveConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks settings that would otherwise fail at request time.
func (c *Config) Validate() error {
	switch c.Provider.Name {
	case "openai", "anthropic":
	default:
		return fmt.Errorf("unknown provider %q (want openai or anthropic)", c.Provider.Name)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Chat.MaxTokens <= 0 {
		return fmt.Errorf("chat max_tokens must be positive")
	}
	if c.Chat.MaxToolIterations <= 0 {
		return fmt.Errorf("chat max_tool_iterations must be positive")
	}
	return nil
}
