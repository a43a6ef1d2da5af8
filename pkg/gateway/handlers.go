// folio - personal portfolio AI assistant backend
// License: MIT

package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/simonedm/folio/pkg/chat"
	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/providers"
	"github.com/simonedm/folio/pkg/voice"
)

type chatRequest struct {
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	ID      string `json:"id,omitempty"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ttsRequest struct {
	Text string `json:"text"`
}

type projectsResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Count   int    `json:"count,omitempty"`
	Error   string `json:"error,omitempty"`
}

// handleChat runs one streaming chat turn over the submitted transcript.
// Events are relayed as SSE data frames; tool calls execute server-side
// before their result event is emitted.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeJSONError(w, http.StatusBadRequest, "messages must not be empty")
		return
	}

	messages := make([]providers.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		role := m.Role
		switch role {
		case "user", "assistant":
		default:
			// client-submitted system messages are dropped; the gateway
			// owns the system prompt
			continue
		}
		messages = append(messages, providers.Message{Role: role, Content: m.Content})
	}
	if len(messages) == 0 {
		writeJSONError(w, http.StatusBadRequest, "no user or assistant messages in transcript")
		return
	}

	stream, err := newSSEWriter(w)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// request context cancels the turn when the client disconnects
	err = s.engine.RunStream(r.Context(), messages, func(ev chat.StreamEvent) error {
		return stream.WriteEvent(ev)
	})
	if err != nil {
		logger.ErrorCF("gateway", "Chat turn failed", map[string]any{"error": err.Error()})
		_ = stream.WriteEvent(chat.ErrorEvent("assistant is unavailable right now"))
	}
}

func (s *Server) handleRealtimeSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.issuer.Issue(r.Context())
	if err != nil {
		logger.ErrorCF("gateway", "Failed to issue realtime session", map[string]any{"error": err.Error()})
		writeUpstreamError(w, err, "failed to create realtime session")
		return
	}
	writeJSON(w, http.StatusOK, session)
}

func (s *Server) handleTextToSpeech(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeJSONError(w, http.StatusBadRequest, "text must not be empty")
		return
	}

	audio, err := s.synthesizer.Synthesize(r.Context(), req.Text)
	if err != nil {
		if err == voice.ErrEmptyText {
			writeJSONError(w, http.StatusBadRequest, "text must not be empty")
			return
		}
		logger.ErrorCF("gateway", "TTS failed", map[string]any{"error": err.Error()})
		writeUpstreamError(w, err, "speech synthesis failed")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		logger.WarnCF("gateway", "Failed to write audio response", map[string]any{"error": err.Error()})
	}
}

func (s *Server) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(25 << 20); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		// the chat widget's recorder posts the part as "audio"
		file, header, err = r.FormFile("audio")
	}
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	opts := voice.TranscribeOptions{
		Prompt:   r.FormValue("prompt"),
		Language: r.FormValue("language"),
	}
	result, err := s.transcriber.Transcribe(r.Context(), file, header.Filename, opts)
	if err != nil {
		logger.ErrorCF("gateway", "Transcription failed", map[string]any{"error": err.Error()})
		writeUpstreamError(w, err, "transcription failed")
		return
	}

	if r.FormValue("stream") == "true" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(result.Text))
		if flusher, ok := w.(http.Flusher); ok {
			flusher.Flush()
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// writeUpstreamError forwards the status of a failed speech API call to
// the client, falling back to 500 for transport and decode failures.
func writeUpstreamError(w http.ResponseWriter, err error, message string) {
	var apiErr *voice.APIError
	if errors.As(err, &apiErr) {
		writeJSONError(w, apiErr.StatusCode, message)
		return
	}
	writeJSONError(w, http.StatusInternalServerError, message)
}

func (s *Server) handleProjects(w http.ResponseWriter, r *http.Request) {
	if s.catalog == nil {
		writeJSON(w, http.StatusInternalServerError, projectsResponse{
			Success: false,
			Error:   "project catalog unavailable",
		})
		return
	}

	projects := s.catalog.Projects()
	writeJSON(w, http.StatusOK, projectsResponse{
		Success: true,
		Data:    projects,
		Count:   len(projects),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": Version,
	})
}
