package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 8170 {
		t.Errorf("default port = %d, want 8170", cfg.Server.Port)
	}
	if cfg.Provider.Name != "openai" {
		t.Errorf("default provider = %q, want openai", cfg.Provider.Name)
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"server":{"host":"0.0.0.0","port":9000},"chat":{"model":"gpt-4o"}}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("FOLIO_CHAT_MODEL", "gpt-4.1-mini")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 9000 {
		t.Errorf("port = %d, want 9000 from file", cfg.Server.Port)
	}
	// Env wins over file.
	if cfg.Chat.Model != "gpt-4.1-mini" {
		t.Errorf("model = %q, want env override", cfg.Chat.Model)
	}
	// Untouched values keep defaults.
	if cfg.Chat.MaxToolIterations != 5 {
		t.Errorf("max_tool_iterations = %d, want default 5", cfg.Chat.MaxToolIterations)
	}
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	cfg.Provider.Name = "llamacpp"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for unknown provider")
	}

	cfg = DefaultConfig()
	cfg.Chat.MaxTokens = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for zero max_tokens")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.json")
	cfg := DefaultConfig()
	cfg.Server.Port = 9999

	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.Server.Port != 9999 {
		t.Errorf("round-trip port = %d, want 9999", loaded.Server.Port)
	}
}
