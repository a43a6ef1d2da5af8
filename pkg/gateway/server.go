// folio - personal portfolio AI assistant backend
// License: MIT

// Package gateway exposes the assistant over HTTP: the streaming chat
// endpoint, the speech endpoints and the static portfolio data.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/simonedm/folio/pkg/chat"
	"github.com/simonedm/folio/pkg/config"
	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/portfolio"
	"github.com/simonedm/folio/pkg/providers"
	"github.com/simonedm/folio/pkg/voice"
)

// Version is reported by the health endpoint. Overridden at build time
// via -ldflags in the main package.
var Version = "dev"

// ChatRunner runs one streaming chat turn. Implemented by chat.Engine.
type ChatRunner interface {
	RunStream(ctx context.Context, messages []providers.Message, emit func(chat.StreamEvent) error) error
}

// TranscribeAPI converts uploaded audio to text.
type TranscribeAPI interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string, opts voice.TranscribeOptions) (*voice.TranscriptionResponse, error)
}

// SpeechAPI converts text to audio bytes.
type SpeechAPI interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// Catalog is the slice of portfolio data the gateway serves directly.
type Catalog interface {
	Projects() []portfolio.Project
}

// Server is the assistant's HTTP gateway.
type Server struct {
	cfg         config.ServerConfig
	engine      ChatRunner
	catalog     Catalog
	transcriber TranscribeAPI
	synthesizer SpeechAPI
	issuer      voice.Issuer
	limiter     *rateLimiter
	server      *http.Server
}

func NewServer(
	cfg config.ServerConfig,
	engine ChatRunner,
	catalog Catalog,
	transcriber TranscribeAPI,
	synthesizer SpeechAPI,
	issuer voice.Issuer,
) *Server {
	var limiter *rateLimiter
	if cfg.ChatRatePerMinute > 0 {
		limiter = newRateLimiter(cfg.ChatRatePerMinute)
	}
	return &Server{
		cfg:         cfg,
		engine:      engine,
		catalog:     catalog,
		transcriber: transcriber,
		synthesizer: synthesizer,
		issuer:      issuer,
		limiter:     limiter,
	}
}

// Handler builds the route table. Exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/chat", s.authMiddleware(s.rateLimitMiddleware(s.handleChat)))
	mux.HandleFunc("POST /api/realtime/sessions", s.authMiddleware(s.handleRealtimeSession))
	mux.HandleFunc("POST /api/text-to-speech", s.authMiddleware(s.handleTextToSpeech))
	mux.HandleFunc("POST /api/transcribe", s.authMiddleware(s.handleTranscribe))
	mux.HandleFunc("GET /api/projects", s.handleProjects)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	return mux
}

// Start begins listening on the configured host:port.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.Handler(),
	}

	go func() {
		logger.InfoCF("gateway", "HTTP server starting", map[string]any{"addr": addr})
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ErrorCF("gateway", "HTTP server error", map[string]any{"error": err.Error()})
		}
	}()

	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.ErrorCF("gateway", "Failed to encode response", map[string]any{"error": err.Error()})
	}
}

func writeJSONError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}
