package voice

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIssuer struct {
	session *RealtimeSession
	err     error
	calls   int
}

func (f *fakeIssuer) Issue(ctx context.Context) (*RealtimeSession, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

type fakeConn struct {
	mu       sync.Mutex
	messages [][]byte
	closed   chan struct{}
	once     sync.Once
}

func newFakeConn(messages ...string) *fakeConn {
	c := &fakeConn{closed: make(chan struct{})}
	for _, m := range messages {
		c.messages = append(c.messages, []byte(m))
	}
	return c
}

func (c *fakeConn) ReadMessage() (int, []byte, error) {
	c.mu.Lock()
	if len(c.messages) > 0 {
		msg := c.messages[0]
		c.messages = c.messages[1:]
		c.mu.Unlock()
		return 1, msg, nil
	}
	c.mu.Unlock()
	<-c.closed
	return 0, nil, errors.New("connection closed")
}

func (c *fakeConn) WriteJSON(v any) error { return nil }

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func testSession(issuer Issuer, conn Conn, states *[]SessionState, mu *sync.Mutex) *Session {
	return NewSession(issuer, "https://api.example.com/v1",
		WithDialer(func(ctx context.Context, url string, header http.Header) (Conn, error) {
			if conn == nil {
				return nil, errors.New("dial refused")
			}
			return conn, nil
		}),
		WithStateListener(func(s SessionState) {
			mu.Lock()
			*states = append(*states, s)
			mu.Unlock()
		}),
	)
}

func TestSessionStartHappyPath(t *testing.T) {
	issuer := &fakeIssuer{session: &RealtimeSession{
		SessionID:    "sess_1",
		ClientSecret: "ek_test",
		Model:        "gpt-realtime",
		Voice:        "verse",
	}}
	conn := newFakeConn()
	var states []SessionState
	var mu sync.Mutex
	session := testSession(issuer, conn, &states, &mu)

	require.NoError(t, session.Start(context.Background()))
	assert.Equal(t, SessionConnected, session.State())

	mu.Lock()
	assert.Equal(t, []SessionState{SessionConnecting, SessionConnected}, states)
	mu.Unlock()

	session.Stop()
	assert.Equal(t, SessionIdle, session.State())
}

func TestSessionStartReentryGuard(t *testing.T) {
	issuer := &fakeIssuer{session: &RealtimeSession{ClientSecret: "ek", Model: "m"}}
	conn := newFakeConn()
	var states []SessionState
	var mu sync.Mutex
	session := testSession(issuer, conn, &states, &mu)

	require.NoError(t, session.Start(context.Background()))
	err := session.Start(context.Background())
	assert.ErrorIs(t, err, ErrSessionActive)
	assert.Equal(t, 1, issuer.calls)

	session.Stop()
}

func TestSessionIssueFailureEntersErrorState(t *testing.T) {
	issuer := &fakeIssuer{err: errors.New("credential service down")}
	var states []SessionState
	var mu sync.Mutex
	session := testSession(issuer, nil, &states, &mu)

	err := session.Start(context.Background())
	require.Error(t, err)
	assert.Equal(t, SessionError, session.State())

	// a failed session may be restarted
	issuer.err = nil
	issuer.session = &RealtimeSession{ClientSecret: "ek", Model: "m"}
	err = session.Start(context.Background())
	assert.Error(t, err) // dialer still refuses in this fixture
	assert.Equal(t, SessionError, session.State())
}

func TestSessionDialFailureEntersErrorState(t *testing.T) {
	issuer := &fakeIssuer{session: &RealtimeSession{ClientSecret: "ek", Model: "m"}}
	var states []SessionState
	var mu sync.Mutex
	session := testSession(issuer, nil, &states, &mu)

	err := session.Start(context.Background())
	require.Error(t, err)
	assert.Equal(t, SessionError, session.State())
}

func TestSessionRecordsAndClearsLastError(t *testing.T) {
	issuer := &fakeIssuer{err: errors.New("credential service down")}
	var states []SessionState
	var mu sync.Mutex
	session := testSession(issuer, nil, &states, &mu)

	assert.Empty(t, session.LastError())

	require.Error(t, session.Start(context.Background()))
	assert.Contains(t, session.LastError(), "credential service down")

	session.Stop()
	assert.Empty(t, session.LastError())

	// a new attempt starts with a clean error slate
	issuer.err = nil
	issuer.session = &RealtimeSession{ClientSecret: "ek", Model: "m"}
	require.Error(t, session.Start(context.Background())) // dialer refuses
	assert.Contains(t, session.LastError(), "dial refused")
}

func TestSessionStopIsIdempotent(t *testing.T) {
	issuer := &fakeIssuer{session: &RealtimeSession{ClientSecret: "ek", Model: "m"}}
	conn := newFakeConn()
	var states []SessionState
	var mu sync.Mutex
	session := testSession(issuer, conn, &states, &mu)

	require.NoError(t, session.Start(context.Background()))
	session.Stop()
	session.Stop()
	assert.Equal(t, SessionIdle, session.State())
}

func TestSessionServerEventsDriveSubStates(t *testing.T) {
	issuer := &fakeIssuer{session: &RealtimeSession{ClientSecret: "ek", Model: "m"}}
	conn := newFakeConn(
		`{"type":"input_audio_buffer.speech_started"}`,
		`{"type":"response.audio.delta"}`,
		`{"type":"response.done"}`,
	)
	var states []SessionState
	var mu sync.Mutex
	session := testSession(issuer, conn, &states, &mu)

	require.NoError(t, session.Start(context.Background()))

	expected := []SessionState{SessionConnecting, SessionConnected, SessionListening, SessionSpeaking, SessionConnected}
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(states) >= len(expected)
	}, time.Second, 5*time.Millisecond)

	mu.Lock()
	assert.Equal(t, expected, states[:len(expected)])
	mu.Unlock()

	session.Stop()
}

func TestRealtimeSocketURL(t *testing.T) {
	assert.Equal(t,
		"wss://api.openai.com/v1/realtime?model=gpt-realtime",
		realtimeSocketURL("https://api.openai.com/v1/", "gpt-realtime"),
	)
	assert.Equal(t,
		"ws://localhost:9999/v1/realtime?model=m",
		realtimeSocketURL("http://localhost:9999/v1", "m"),
	)
}
