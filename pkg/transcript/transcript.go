// folio - personal portfolio AI assistant backend
// License: MIT

// Package transcript tracks an ordered chat transcript the way the site's
// chat widget does: user submissions append messages, streamed assistant
// events update the latest assistant message in arrival order.
package transcript

import (
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/simonedm/folio/pkg/chat"
)

var (
	ErrEmptyMessage = errors.New("message must not be empty")
	ErrBusy         = errors.New("a response is still streaming")
	ErrNotStreaming = errors.New("no assistant message is streaming")
)

type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// InvocationState is the lifecycle of one tool invocation: it transitions
// from call-pending to result exactly once, never back.
type InvocationState string

const (
	StateCallPending InvocationState = "call-pending"
	StateResult      InvocationState = "result"
)

// ToolInvocation is one model-initiated tool call attached to a message,
// keyed by ToolCallID for idempotent updates.
type ToolInvocation struct {
	ToolCallID string          `json:"toolCallId"`
	ToolName   string          `json:"toolName"`
	State      InvocationState `json:"state"`
	Args       map[string]any  `json:"args,omitempty"`
	Result     any             `json:"result,omitempty"`
}

// Message is one transcript entry. Never mutated after its invocations
// resolve except to attach or update an invocation's state.
type Message struct {
	ID          string           `json:"id"`
	Role        Role             `json:"role"`
	Content     string           `json:"content"`
	Invocations []ToolInvocation `json:"toolInvocations,omitempty"`
}

// State is the transcript-level machine: idle (no messages), active (at
// least one message), streaming (assistant producing the latest message).
type State string

const (
	StateIdle      State = "idle"
	StateActive    State = "active"
	StateStreaming State = "streaming"
)

type Transcript struct {
	mu       sync.Mutex
	messages []Message
	state    State
}

func New() *Transcript {
	return &Transcript{state: StateIdle}
}

func (t *Transcript) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Messages returns a copy of the transcript in insertion order.
func (t *Transcript) Messages() []Message {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.messages)
}

// Submit appends a user message. Empty input is rejected, and a new
// submission is refused while a response is still streaming.
func (t *Transcript) Submit(content string) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, ErrEmptyMessage
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateStreaming {
		return Message{}, ErrBusy
	}

	msg := Message{
		ID:      uuid.NewString(),
		Role:    RoleUser,
		Content: content,
	}
	t.messages = append(t.messages, msg)
	t.state = StateActive
	return msg, nil
}

// BeginAssistant appends an empty assistant message and enters streaming.
// Subsequent Apply calls update this message until a done or error event.
func (t *Transcript) BeginAssistant() Message {
	t.mu.Lock()
	defer t.mu.Unlock()

	msg := Message{
		ID:   uuid.NewString(),
		Role: RoleAssistant,
	}
	t.messages = append(t.messages, msg)
	t.state = StateStreaming
	return msg
}

// Apply folds one stream event into the latest assistant message. Events
// must be applied in arrival order; updates never reorder the transcript.
func (t *Transcript) Apply(ev chat.StreamEvent) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state != StateStreaming {
		return ErrNotStreaming
	}

	msg := &t.messages[len(t.messages)-1]

	switch ev.Type {
	case chat.EventText:
		msg.Content += ev.Text

	case chat.EventToolCall:
		// duplicate call ids within a message are ignored
		if findInvocation(msg, ev.ToolCallID) != nil {
			return nil
		}
		msg.Invocations = append(msg.Invocations, ToolInvocation{
			ToolCallID: ev.ToolCallID,
			ToolName:   ev.ToolName,
			State:      StateCallPending,
			Args:       ev.Args,
		})

	case chat.EventToolResult:
		inv := findInvocation(msg, ev.ToolCallID)
		if inv == nil {
			// pending was instantaneous and only the result was observed
			msg.Invocations = append(msg.Invocations, ToolInvocation{
				ToolCallID: ev.ToolCallID,
				ToolName:   ev.ToolName,
				State:      StateResult,
				Result:     ev.Result,
			})
			return nil
		}
		if inv.State == StateResult {
			return nil
		}
		inv.State = StateResult
		inv.Result = ev.Result

	case chat.EventDone:
		if ev.Content != "" && msg.Content == "" {
			msg.Content = ev.Content
		}
		t.state = StateActive

	case chat.EventError:
		t.state = StateActive
	}

	return nil
}

// AbortStream returns the transcript to active after a failed turn.
func (t *Transcript) AbortStream() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == StateStreaming {
		t.state = StateActive
	}
}

func findInvocation(msg *Message, toolCallID string) *ToolInvocation {
	for i := range msg.Invocations {
		if msg.Invocations[i].ToolCallID == toolCallID {
			return &msg.Invocations[i]
		}
	}
	return nil
}
