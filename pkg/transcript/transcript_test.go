package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonedm/folio/pkg/chat"
)

func TestSubmitTransitionsIdleToActive(t *testing.T) {
	tr := New()
	assert.Equal(t, StateIdle, tr.State())

	msg, err := tr.Submit("hello")
	require.NoError(t, err)
	assert.Equal(t, StateActive, tr.State())
	assert.Equal(t, RoleUser, msg.Role)
	assert.NotEmpty(t, msg.ID)
}

func TestSubmitRejectsEmptyMessage(t *testing.T) {
	tr := New()
	_, err := tr.Submit("   ")
	assert.ErrorIs(t, err, ErrEmptyMessage)
	assert.Equal(t, StateIdle, tr.State())
	assert.Zero(t, tr.Len())
}

func TestSubmitRejectedWhileStreaming(t *testing.T) {
	tr := New()
	_, err := tr.Submit("first")
	require.NoError(t, err)
	tr.BeginAssistant()

	_, err = tr.Submit("second")
	assert.ErrorIs(t, err, ErrBusy)

	require.NoError(t, tr.Apply(chat.StreamEvent{Type: chat.EventDone}))
	_, err = tr.Submit("second")
	assert.NoError(t, err)
}

func TestMessageIDsAreUnique(t *testing.T) {
	tr := New()
	seen := map[string]bool{}
	for _, text := range []string{"a", "b", "c"} {
		msg, err := tr.Submit(text)
		require.NoError(t, err)
		assert.False(t, seen[msg.ID])
		seen[msg.ID] = true
	}
}

func TestApplyTextEventsInOrder(t *testing.T) {
	tr := New()
	_, err := tr.Submit("hi")
	require.NoError(t, err)
	tr.BeginAssistant()

	for _, delta := range []string{"Hel", "lo ", "there"} {
		require.NoError(t, tr.Apply(chat.StreamEvent{Type: chat.EventText, Text: delta}))
	}
	require.NoError(t, tr.Apply(chat.StreamEvent{Type: chat.EventDone, Content: "Hello there"}))

	messages := tr.Messages()
	last := messages[len(messages)-1]
	assert.Equal(t, "Hello there", last.Content)
	assert.Equal(t, StateActive, tr.State())
}

func TestInvocationTransitionsExactlyOnce(t *testing.T) {
	tr := New()
	_, err := tr.Submit("skills?")
	require.NoError(t, err)
	tr.BeginAssistant()

	call := chat.StreamEvent{
		Type:       chat.EventToolCall,
		ToolCallID: "call_1",
		ToolName:   "showSkills",
		Args:       map[string]any{"category": "all"},
	}
	require.NoError(t, tr.Apply(call))

	messages := tr.Messages()
	inv := messages[len(messages)-1].Invocations[0]
	assert.Equal(t, StateCallPending, inv.State)

	result := chat.StreamEvent{
		Type:       chat.EventToolResult,
		ToolCallID: "call_1",
		ToolName:   "showSkills",
		Result:     map[string]any{"totalSkills": 16},
	}
	require.NoError(t, tr.Apply(result))

	// a second result for the same call id is ignored
	stale := result
	stale.Result = map[string]any{"totalSkills": 0}
	require.NoError(t, tr.Apply(stale))

	messages = tr.Messages()
	inv = messages[len(messages)-1].Invocations[0]
	assert.Equal(t, StateResult, inv.State)
	assert.Equal(t, map[string]any{"totalSkills": 16}, inv.Result)

	// and a pending event never reverts a resolved invocation
	require.NoError(t, tr.Apply(call))
	messages = tr.Messages()
	require.Len(t, messages[len(messages)-1].Invocations, 1)
	assert.Equal(t, StateResult, messages[len(messages)-1].Invocations[0].State)
}

func TestResultWithoutPendingIsAttached(t *testing.T) {
	tr := New()
	_, err := tr.Submit("weather?")
	require.NoError(t, err)
	tr.BeginAssistant()

	require.NoError(t, tr.Apply(chat.StreamEvent{
		Type:       chat.EventToolResult,
		ToolCallID: "call_fast",
		ToolName:   "getWeather",
		Result:     map[string]any{"condition": "sunny"},
	}))

	messages := tr.Messages()
	invs := messages[len(messages)-1].Invocations
	require.Len(t, invs, 1)
	assert.Equal(t, StateResult, invs[0].State)
}

func TestApplyOutsideStreaming(t *testing.T) {
	tr := New()
	err := tr.Apply(chat.StreamEvent{Type: chat.EventText, Text: "x"})
	assert.ErrorIs(t, err, ErrNotStreaming)
}

func TestTranscriptOrderIsInsertionOrder(t *testing.T) {
	tr := New()
	_, err := tr.Submit("one")
	require.NoError(t, err)
	tr.BeginAssistant()
	require.NoError(t, tr.Apply(chat.StreamEvent{Type: chat.EventDone, Content: "answer one"}))
	_, err = tr.Submit("two")
	require.NoError(t, err)

	messages := tr.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "answer one", messages[1].Content)
	assert.Equal(t, "two", messages[2].Content)
}
