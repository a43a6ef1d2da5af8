// folio - personal portfolio AI assistant backend
// License: MIT

package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simonedm/folio/pkg/logger"
)

// RealtimeSession is an ephemeral credential for a browser-held realtime
// voice connection. The client secret is short-lived and single-use.
type RealtimeSession struct {
	SessionID    string `json:"sessionId"`
	ClientSecret string `json:"clientSecret"`
	Model        string `json:"model"`
	Voice        string `json:"voice"`
	ExpiresAt    int64  `json:"expiresAt"`
}

// SessionIssuer mints ephemeral realtime sessions from the hosted API so
// the browser never sees the long-lived API key.
type SessionIssuer struct {
	apiBase    string
	apiKey     string
	model      string
	voice      string
	httpClient *http.Client
}

type realtimeSessionRequest struct {
	Model string `json:"model"`
	Voice string `json:"voice"`
}

type realtimeSessionResponse struct {
	ID           string `json:"id"`
	Model        string `json:"model"`
	Voice        string `json:"voice"`
	ClientSecret struct {
		Value     string `json:"value"`
		ExpiresAt int64  `json:"expires_at"`
	} `json:"client_secret"`
}

func NewSessionIssuer(apiKey, apiBase, model, voice string) *SessionIssuer {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	if model == "" {
		model = "gpt-realtime"
	}
	if voice == "" {
		voice = "verse"
	}

	return &SessionIssuer{
		apiBase: apiBase,
		apiKey:  apiKey,
		model:   model,
		voice:   voice,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Issue requests a new ephemeral session from the hosted realtime API.
func (i *SessionIssuer) Issue(ctx context.Context) (*RealtimeSession, error) {
	bodyBytes, err := json.Marshal(realtimeSessionRequest{
		Model: i.model,
		Voice: i.voice,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session request: %w", err)
	}

	url := i.apiBase + "/realtime/sessions"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+i.apiKey)

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("session request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read session response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		logger.ErrorCF("voice", "Realtime session API error", map[string]any{
			"status_code": resp.StatusCode,
		})
		return nil, &APIError{StatusCode: resp.StatusCode, Message: "realtime session request rejected"}
	}

	var parsed realtimeSessionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session response: %w", err)
	}
	if parsed.ClientSecret.Value == "" {
		return nil, fmt.Errorf("realtime session response missing client secret")
	}

	logger.InfoCF("voice", "Realtime session issued", map[string]any{
		"session_id": parsed.ID,
		"model":      parsed.Model,
		"expires_at": parsed.ClientSecret.ExpiresAt,
	})

	return &RealtimeSession{
		SessionID:    parsed.ID,
		ClientSecret: parsed.ClientSecret.Value,
		Model:        parsed.Model,
		Voice:        parsed.Voice,
		ExpiresAt:    parsed.ClientSecret.ExpiresAt,
	}, nil
}
