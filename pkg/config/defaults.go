// folio - personal portfolio AI assistant backend
// License: MIT

package config

// DefaultConfig returns the default configuration for folio.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "127.0.0.1",
			Port:              8170,
			ChatRatePerMinute: 30,
		},
		Provider: ProviderConfig{
			Name:          "openai",
			OpenAIAPIBase: "https://api.openai.com/v1",
		},
		Chat: ChatConfig{
			Model:             "gpt-4o-mini",
			MaxTokens:         1000,
			Temperature:       0.7,
			MaxToolIterations: 5,
		},
		Realtime: RealtimeConfig{
			Model: "gpt-realtime",
			Voice: "verse",
		},
		Speech: SpeechConfig{
			TTSModel:        "gpt-4o-mini-tts",
			TTSVoice:        "alloy",
			TTSSpeed:        1.0,
			TranscribeModel: "whisper-1",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
