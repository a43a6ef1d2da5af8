// folio - personal portfolio AI assistant backend
// License: MIT

package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/simonedm/folio/pkg/config"
	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/providers"
	"github.com/simonedm/folio/pkg/tools"
	"github.com/simonedm/folio/pkg/utils"
)

// Engine runs the streaming LLM + tool call iteration loop for one chat
// turn. Tool calls are executed server-side between model invocations;
// the client only ever sees the event stream.
type Engine struct {
	provider      providers.LLMProvider
	registry      *tools.Registry
	model         string
	maxIterations int
	llmOptions    map[string]any
	systemPrompt  string
}

func NewEngine(provider providers.LLMProvider, registry *tools.Registry, cfg config.ChatConfig) *Engine {
	model := cfg.Model
	if model == "" {
		model = provider.GetDefaultModel()
	}
	maxIterations := cfg.MaxToolIterations
	if maxIterations <= 0 {
		maxIterations = 5
	}

	return &Engine{
		provider:      provider,
		registry:      registry,
		model:         model,
		maxIterations: maxIterations,
		llmOptions: map[string]any{
			"max_tokens":  cfg.MaxTokens,
			"temperature": cfg.Temperature,
		},
		systemPrompt: BuildSystemPrompt(registry.GetSummaries()),
	}
}

// RunStream executes one chat turn over the submitted transcript, calling
// emit for every stream event in arrival order. Each tool invocation emits
// tool_call before its handler runs and tool_result after; the turn always
// ends with a done event unless an error is returned.
func (e *Engine) RunStream(
	ctx context.Context,
	messages []providers.Message,
	emit func(StreamEvent) error,
) error {
	msgs := e.withSystemPrompt(messages)
	toolDefs := e.registry.ToProviderDefs()

	var emitErr error
	send := func(ev StreamEvent) {
		if emitErr != nil {
			return
		}
		emitErr = emit(ev)
	}

	for iteration := 1; iteration <= e.maxIterations; iteration++ {
		logger.DebugCF("chat", "LLM iteration",
			map[string]any{"iteration": iteration, "max": e.maxIterations})

		response, err := e.provider.ChatStream(ctx, msgs, toolDefs, e.model, e.llmOptions,
			func(delta string) {
				send(textEvent(delta))
			})
		if err != nil {
			logger.ErrorCF("chat", "LLM call failed",
				map[string]any{"iteration": iteration, "error": err.Error()})
			return fmt.Errorf("LLM call failed: %w", err)
		}
		if emitErr != nil {
			return emitErr
		}

		if len(response.ToolCalls) == 0 {
			logger.InfoCF("chat", "LLM response without tool calls",
				map[string]any{"iteration": iteration, "content_chars": len(response.Content)})
			send(doneEvent(response.Content))
			return emitErr
		}

		normalized := make([]providers.ToolCall, 0, len(response.ToolCalls))
		for _, tc := range response.ToolCalls {
			normalized = append(normalized, providers.NormalizeToolCall(tc))
		}

		msgs = append(msgs, assistantMessage(response.Content, normalized))

		for _, tc := range normalized {
			logger.InfoCF("chat", "Tool call: "+utils.Truncate(describePendingCall(tc.Name, tc.Arguments), 200),
				map[string]any{"tool": tc.Name, "iteration": iteration})

			send(toolCallEvent(tc.ID, tc.Name, tc.Arguments))

			forLLM, payload := e.invokeTool(ctx, tc)

			send(toolResultEvent(tc.ID, tc.Name, payload))

			msgs = append(msgs, providers.Message{
				Role:       "tool",
				Content:    forLLM,
				ToolCallID: tc.ID,
			})
		}

		if emitErr != nil {
			return emitErr
		}
	}

	logger.WarnCF("chat", "Tool iteration limit reached",
		map[string]any{"max": e.maxIterations})
	send(doneEvent(""))
	return emitErr
}

// invokeTool runs one tool call and folds failures into the result rather
// than failing the whole chat turn.
func (e *Engine) invokeTool(ctx context.Context, tc providers.ToolCall) (forLLM string, payload any) {
	result, err := e.registry.Invoke(ctx, tc.Name, tc.Arguments)
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		return fmt.Sprintf("tool %q is not available", tc.Name), map[string]any{"error": "unknown tool"}
	case errors.Is(err, tools.ErrInvalidArgs):
		return fmt.Sprintf("invalid arguments for %s: %v", tc.Name, err), map[string]any{"error": "invalid arguments"}
	case err != nil:
		return fmt.Sprintf("tool %s failed: %v", tc.Name, err), map[string]any{"error": err.Error()}
	}

	forLLM = result.ForLLM
	if forLLM == "" && result.Err != nil {
		forLLM = result.Err.Error()
	}
	if result.IsError {
		return forLLM, map[string]any{"error": result.ForLLM}
	}
	return forLLM, result.Payload
}

func (e *Engine) withSystemPrompt(messages []providers.Message) []providers.Message {
	if len(messages) > 0 && messages[0].Role == "system" {
		return messages
	}
	msgs := make([]providers.Message, 0, len(messages)+1)
	msgs = append(msgs, providers.Message{Role: "system", Content: e.systemPrompt})
	return append(msgs, messages...)
}

func assistantMessage(content string, toolCalls []providers.ToolCall) providers.Message {
	msg := providers.Message{Role: "assistant", Content: content}
	for _, tc := range toolCalls {
		argumentsJSON, _ := json.Marshal(tc.Arguments)
		msg.ToolCalls = append(msg.ToolCalls, providers.ToolCall{
			ID:        tc.ID,
			Type:      "function",
			Name:      tc.Name,
			Arguments: tc.Arguments,
			Function: &providers.FunctionCall{
				Name:      tc.Name,
				Arguments: string(argumentsJSON),
			},
		})
	}
	return msg
}
