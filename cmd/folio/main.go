// folio - personal portfolio AI assistant backend
// License: MIT

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/simonedm/folio/pkg/chat"
	"github.com/simonedm/folio/pkg/config"
	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/portfolio"
	"github.com/simonedm/folio/pkg/providers"
	"github.com/simonedm/folio/pkg/tools"
)

var (
	version   = "dev"
	gitCommit string
)

var configPath string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		Short:         "Personal portfolio AI assistant backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath(), "Path to config file")
	root.AddCommand(
		newServeCmd(),
		newChatCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			v := version
			if gitCommit != "" {
				v += fmt.Sprintf(" (git: %s)", gitCommit)
			}
			fmt.Printf("folio %s\n  Go: %s\n", v, runtime.Version())
		},
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.json"
	}
	return filepath.Join(home, ".folio", "config.json")
}

// appRuntime bundles the components shared by serve and chat.
type appRuntime struct {
	cfg      *config.Config
	catalog  *portfolio.Catalog
	registry *tools.Registry
	engine   *chat.Engine
}

// buildRuntime loads config and wires the provider, tool registry and
// chat engine. toolDelay adds simulated lookup latency for the weather
// and stock tools.
func buildRuntime(toolDelay time.Duration) (*appRuntime, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger.SetLevel(logger.ParseLevel(cfg.Log.Level))
	if cfg.Log.File != "" {
		if err := logger.EnableFileLogging(cfg.Log.File); err != nil {
			return nil, fmt.Errorf("enable file logging: %w", err)
		}
	}

	provider, err := providers.CreateProvider(cfg)
	if err != nil {
		return nil, err
	}

	catalog := portfolio.NewCatalog()
	registry, err := tools.DefaultRegistry(catalog, toolDelay)
	if err != nil {
		return nil, err
	}

	return &appRuntime{
		cfg:      cfg,
		catalog:  catalog,
		registry: registry,
		engine:   chat.NewEngine(provider, registry, cfg.Chat),
	}, nil
}
