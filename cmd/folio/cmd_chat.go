// folio - personal portfolio AI assistant backend
// License: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/simonedm/folio/pkg/chat"
	"github.com/simonedm/folio/pkg/providers"
	"github.com/simonedm/folio/pkg/render"
	"github.com/simonedm/folio/pkg/transcript"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Chat with the assistant from the terminal",
		RunE:  runChat,
	}
}

func runChat(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime(0)
	if err != nil {
		return err
	}

	rl, err := readline.New("you> ")
	if err != nil {
		return fmt.Errorf("init readline: %w", err)
	}
	defer rl.Close()

	fmt.Println("folio chat - ask about projects, skills or how to get in touch (Ctrl+D to quit)")

	tr := transcript.New()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if _, err := tr.Submit(line); err != nil {
			if errors.Is(err, transcript.ErrEmptyMessage) {
				continue
			}
			fmt.Println("!", err)
			continue
		}

		history := providerMessages(tr.Messages())
		tr.BeginAssistant()

		err = rt.engine.RunStream(context.Background(), history, func(ev chat.StreamEvent) error {
			if applyErr := tr.Apply(ev); applyErr != nil {
				return applyErr
			}
			printEvent(ev)
			return nil
		})
		if err != nil {
			tr.AbortStream()
			fmt.Println("\n! chat failed:", err)
		}
	}
}

func printEvent(ev chat.StreamEvent) {
	switch ev.Type {
	case chat.EventText:
		fmt.Print(ev.Text)

	case chat.EventToolCall:
		if view, ok := render.ViewFor(transcript.ToolInvocation{
			ToolName: ev.ToolName,
			State:    transcript.StateCallPending,
		}); ok {
			fmt.Println("\n" + render.Text(view))
		}

	case chat.EventToolResult:
		if view, ok := render.ViewFor(transcript.ToolInvocation{
			ToolName: ev.ToolName,
			State:    transcript.StateResult,
			Result:   ev.Result,
		}); ok {
			fmt.Println(render.Text(view))
		}

	case chat.EventDone:
		fmt.Println()

	case chat.EventError:
		fmt.Println("\n!", ev.Error)
	}
}

// providerMessages projects the transcript into the wire form the engine
// expects, skipping the empty assistant placeholder and system entries.
func providerMessages(messages []transcript.Message) []providers.Message {
	out := make([]providers.Message, 0, len(messages))
	for _, msg := range messages {
		if strings.TrimSpace(msg.Content) == "" {
			continue
		}
		switch msg.Role {
		case transcript.RoleUser, transcript.RoleAssistant:
			out = append(out, providers.Message{
				Role:    string(msg.Role),
				Content: msg.Content,
			})
		}
	}
	return out
}
