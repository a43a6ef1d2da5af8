// folio - personal portfolio AI assistant backend
// License: MIT

package voice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/simonedm/folio/pkg/logger"
)

var ErrSessionActive = errors.New("voice session already active")

// SessionState is the voice session lifecycle. Idle until started;
// connecting while the credential is fetched and the socket dialed;
// connected once live, with listening/speaking sub-states driven by
// server events; error is terminal until the next Start.
type SessionState string

const (
	SessionIdle       SessionState = "idle"
	SessionConnecting SessionState = "connecting"
	SessionConnected  SessionState = "connected"
	SessionListening  SessionState = "listening"
	SessionSpeaking   SessionState = "speaking"
	SessionError      SessionState = "error"
)

// Issuer mints the ephemeral credential a session connects with.
type Issuer interface {
	Issue(ctx context.Context) (*RealtimeSession, error)
}

// Conn is the subset of the websocket connection the session uses.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v any) error
	Close() error
}

// Dialer opens the realtime socket. Swapped for a fake in tests.
type Dialer func(ctx context.Context, url string, header http.Header) (Conn, error)

// GorillaDialer dials with the default websocket dialer.
func GorillaDialer(ctx context.Context, url string, header http.Header) (Conn, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, header)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// Session bootstraps one realtime voice connection: fetch an ephemeral
// credential, dial the socket, then track server-driven state until Stop.
type Session struct {
	issuer  Issuer
	dialer  Dialer
	apiBase string
	onState func(SessionState)

	mu        sync.Mutex
	state     SessionState
	lastError string
	conn      Conn
	done      chan struct{}
}

type SessionOption func(*Session)

// WithDialer replaces the websocket dialer.
func WithDialer(d Dialer) SessionOption {
	return func(s *Session) { s.dialer = d }
}

// WithStateListener registers a callback invoked on every state change.
func WithStateListener(fn func(SessionState)) SessionOption {
	return func(s *Session) { s.onState = fn }
}

func NewSession(issuer Issuer, apiBase string, opts ...SessionOption) *Session {
	if apiBase == "" {
		apiBase = defaultAPIBase
	}
	s := &Session{
		issuer:  issuer,
		dialer:  GorillaDialer,
		apiBase: apiBase,
		state:   SessionIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastError returns the text of the most recent failure, empty while
// the session is healthy or after Stop.
func (s *Session) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastError
}

// setError records the failure text and flips the session to the error
// state.
func (s *Session) setError(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
	s.setState(SessionError)
}

func (s *Session) setState(state SessionState) {
	s.mu.Lock()
	s.state = state
	fn := s.onState
	s.mu.Unlock()
	if fn != nil {
		fn(state)
	}
}

// Start fetches an ephemeral credential and dials the realtime socket.
// A session that is already connecting or connected refuses re-entry;
// a failed attempt releases everything it acquired before returning.
func (s *Session) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.state != SessionIdle && s.state != SessionError {
		s.mu.Unlock()
		return ErrSessionActive
	}
	s.state = SessionConnecting
	s.lastError = ""
	fn := s.onState
	s.mu.Unlock()
	if fn != nil {
		fn(SessionConnecting)
	}

	session, err := s.issuer.Issue(ctx)
	if err != nil {
		s.setError("failed to issue realtime session: " + err.Error())
		return fmt.Errorf("failed to issue realtime session: %w", err)
	}

	url := realtimeSocketURL(s.apiBase, session.Model)
	header := http.Header{}
	header.Set("Authorization", "Bearer "+session.ClientSecret)

	conn, err := s.dialer(ctx, url, header)
	if err != nil {
		s.setError("failed to dial realtime socket: " + err.Error())
		return fmt.Errorf("failed to dial realtime socket: %w", err)
	}

	s.mu.Lock()
	s.conn = conn
	s.done = make(chan struct{})
	s.mu.Unlock()
	s.setState(SessionConnected)

	logger.InfoCF("voice", "Voice session connected", map[string]any{
		"session_id": session.SessionID,
		"model":      session.Model,
	})

	go s.readLoop(conn, s.done)
	return nil
}

// Stop closes the session. Safe to call at any time, repeatedly.
func (s *Session) Stop() {
	s.mu.Lock()
	conn := s.conn
	done := s.done
	s.conn = nil
	s.done = nil
	alreadyIdle := s.state == SessionIdle
	s.state = SessionIdle
	s.lastError = ""
	fn := s.onState
	s.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
	if done != nil {
		<-done
	}
	if fn != nil && !alreadyIdle {
		fn(SessionIdle)
	}
}

// readLoop drains server events and tracks the listening/speaking
// sub-states until the socket closes.
func (s *Session) readLoop(conn Conn, done chan struct{}) {
	defer close(done)

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			s.mu.Lock()
			active := s.conn == conn
			s.mu.Unlock()
			if active {
				logger.WarnCF("voice", "Voice session socket closed",
					map[string]any{"error": err.Error()})
				s.setError("socket closed: " + err.Error())
			}
			return
		}

		var event struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(payload, &event); err != nil {
			continue
		}

		switch event.Type {
		case "input_audio_buffer.speech_started":
			s.setState(SessionListening)
		case "response.audio.delta":
			s.setState(SessionSpeaking)
		case "response.done", "input_audio_buffer.speech_stopped":
			s.setState(SessionConnected)
		case "error":
			logger.ErrorCF("voice", "Voice session server error",
				map[string]any{"payload": string(payload)})
			s.setError("server error event")
		}
	}
}

func realtimeSocketURL(apiBase, model string) string {
	base := strings.TrimRight(apiBase, "/")
	base = strings.Replace(base, "https://", "wss://", 1)
	base = strings.Replace(base, "http://", "ws://", 1)
	return base + "/realtime?model=" + model
}
