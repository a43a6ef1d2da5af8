// folio - personal portfolio AI assistant backend
// License: MIT

// Package voice wraps the hosted speech endpoints used by the assistant:
// audio transcription, text-to-speech and ephemeral realtime session
// issuance, plus the client-side voice session state machine.
package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/utils"
)

const defaultAPIBase = "https://api.openai.com/v1"

type TranscriptionResponse struct {
	Text     string  `json:"text"`
	Language string  `json:"language,omitempty"`
	Duration float64 `json:"duration,omitempty"`
}

// Transcriber sends audio to the hosted transcription endpoint.
type Transcriber struct {
	apiBase    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewTranscriber(apiKey, apiBase, model string) *Transcriber {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	if model == "" {
		model = "whisper-1"
	}

	return &Transcriber{
		apiBase: apiBase,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// TranscribeOptions are optional hints forwarded to the transcription
// API alongside the audio.
type TranscribeOptions struct {
	Prompt   string
	Language string
}

// Transcribe uploads one audio file and returns the recognized text.
func (t *Transcriber) Transcribe(ctx context.Context, audio io.Reader, filename string, opts TranscribeOptions) (*TranscriptionResponse, error) {
	logger.InfoCF("voice", "Starting transcription", map[string]any{
		"file_name": filename,
		"model":     t.model,
	})

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	copied, err := io.Copy(part, audio)
	if err != nil {
		return nil, fmt.Errorf("failed to copy audio content: %w", err)
	}
	if err := writer.WriteField("model", t.model); err != nil {
		return nil, fmt.Errorf("failed to write model field: %w", err)
	}
	if opts.Prompt != "" {
		if err := writer.WriteField("prompt", opts.Prompt); err != nil {
			return nil, fmt.Errorf("failed to write prompt field: %w", err)
		}
	}
	if opts.Language != "" {
		if err := writer.WriteField("language", opts.Language); err != nil {
			return nil, fmt.Errorf("failed to write language field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	url := t.apiBase + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, &requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	logger.DebugCF("voice", "Sending transcription request", map[string]any{
		"url":              url,
		"audio_size_bytes": copied,
	})

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.ErrorCF("voice", "Transcription API error", map[string]any{
			"status_code": resp.StatusCode,
			"response":    utils.Truncate(string(body), 200),
		})
		return nil, &APIError{StatusCode: resp.StatusCode, Message: utils.Truncate(string(body), 200)}
	}

	var result TranscriptionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	logger.InfoCF("voice", "Transcription completed", map[string]any{
		"text_length": len(result.Text),
		"language":    result.Language,
		"preview":     utils.Truncate(result.Text, 50),
	})

	return &result, nil
}
