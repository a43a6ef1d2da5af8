// folio - personal portfolio AI assistant backend
// License: MIT

// Package chat bridges a client-submitted transcript to the configured LLM
// provider with tool calling enabled, executing tool calls server-side and
// relaying the result as an incremental event stream.
package chat

// EventType discriminates the stream events emitted during one chat turn.
type EventType string

const (
	EventText       EventType = "text"
	EventToolCall   EventType = "tool_call"
	EventToolResult EventType = "tool_result"
	EventDone       EventType = "done"
	EventError      EventType = "error"
)

// StreamEvent is one incremental update in a chat turn. Text events carry a
// token fragment; tool_call marks a pending invocation; tool_result carries
// the typed payload once the handler resolved; done closes the turn.
type StreamEvent struct {
	Type       EventType      `json:"type"`
	Text       string         `json:"text,omitempty"`
	ToolCallID string         `json:"toolCallId,omitempty"`
	ToolName   string         `json:"toolName,omitempty"`
	Args       map[string]any `json:"args,omitempty"`
	Result     any            `json:"result,omitempty"`
	Content    string         `json:"content,omitempty"`
	Error      string         `json:"error,omitempty"`
}

func textEvent(delta string) StreamEvent {
	return StreamEvent{Type: EventText, Text: delta}
}

func toolCallEvent(id, name string, args map[string]any) StreamEvent {
	return StreamEvent{Type: EventToolCall, ToolCallID: id, ToolName: name, Args: args}
}

func toolResultEvent(id, name string, result any) StreamEvent {
	return StreamEvent{Type: EventToolResult, ToolCallID: id, ToolName: name, Result: result}
}

func doneEvent(content string) StreamEvent {
	return StreamEvent{Type: EventDone, Content: content}
}

// ErrorEvent is emitted by the transport layer when a turn fails mid-stream.
func ErrorEvent(message string) StreamEvent {
	return StreamEvent{Type: EventError, Error: message}
}
