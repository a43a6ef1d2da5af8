// folio - personal portfolio AI assistant backend
// License: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonedm/folio/pkg/gateway"
	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/voice"
)

// lookupDelay simulates network latency for the weather and stock tools
// so streamed tool cards show their loading state.
const lookupDelay = 800 * time.Millisecond

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the assistant HTTP gateway",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime(lookupDelay)
	if err != nil {
		return err
	}
	cfg := rt.cfg
	gateway.Version = version

	speechKey := cfg.Provider.OpenAIAPIKey
	speechBase := cfg.Provider.OpenAIAPIBase

	server := gateway.NewServer(
		cfg.Server,
		rt.engine,
		rt.catalog,
		voice.NewTranscriber(speechKey, speechBase, cfg.Speech.TranscribeModel),
		voice.NewSynthesizer(speechKey, speechBase, cfg.Speech.TTSModel, cfg.Speech.TTSVoice, cfg.Speech.TTSSpeed),
		voice.NewSessionIssuer(speechKey, speechBase, cfg.Realtime.Model, cfg.Realtime.Voice),
	)

	if err := server.Start(); err != nil {
		return fmt.Errorf("start gateway: %w", err)
	}
	logger.InfoCF("main", "folio gateway running", map[string]any{
		"addr":     fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		"provider": cfg.Provider.Name,
		"model":    cfg.Chat.Model,
		"tools":    rt.registry.Count(),
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.InfoC("main", "Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Stop(ctx)
}
