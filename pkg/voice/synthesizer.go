// folio - personal portfolio AI assistant backend
// License: MIT

package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/utils"
)

var ErrEmptyText = errors.New("text must not be empty")

// Synthesizer converts text to speech via the hosted TTS endpoint
// (OpenAI-compatible /audio/speech API).
type Synthesizer struct {
	apiBase    string
	apiKey     string
	model      string
	voice      string
	speed      float64
	httpClient *http.Client
}

type speechRequest struct {
	Model  string  `json:"model"`
	Input  string  `json:"input"`
	Voice  string  `json:"voice"`
	Speed  float64 `json:"speed,omitempty"`
	Format string  `json:"response_format,omitempty"`
}

func NewSynthesizer(apiKey, apiBase, model, voice string, speed float64) *Synthesizer {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	if model == "" {
		model = "gpt-4o-mini-tts"
	}
	if voice == "" {
		voice = "alloy"
	}

	return &Synthesizer{
		apiBase: apiBase,
		apiKey:  apiKey,
		model:   model,
		voice:   voice,
		speed:   speed,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Synthesize converts text to MP3 audio bytes.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	logger.InfoCF("voice", "Synthesizing speech", map[string]any{
		"text_length": len(text),
		"voice":       s.voice,
		"model":       s.model,
	})

	bodyBytes, err := json.Marshal(speechRequest{
		Model:  s.model,
		Input:  text,
		Voice:  s.voice,
		Speed:  s.speed,
		Format: "mp3",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal TTS request: %w", err)
	}

	url := s.apiBase + "/audio/speech"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create TTS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{StatusCode: resp.StatusCode, Message: utils.Truncate(string(body), 200)}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read TTS audio: %w", err)
	}

	logger.InfoCF("voice", "Speech synthesized", map[string]any{
		"size_bytes": len(audio),
		"voice":      s.voice,
	})

	return audio, nil
}
