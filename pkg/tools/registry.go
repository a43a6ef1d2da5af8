// folio - personal portfolio AI assistant backend
// License: MIT

package tools

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/simonedm/folio/pkg/logger"
	"github.com/simonedm/folio/pkg/providers"
)

// Registry maps tool names to registered tools. Arguments are validated
// against each tool's schema before the handler runs.
type Registry struct {
	mu       sync.RWMutex
	tools    map[string]Tool
	resolved map[string]*jsonschema.Resolved
}

func NewRegistry() *Registry {
	return &Registry{
		tools:    make(map[string]Tool),
		resolved: make(map[string]*jsonschema.Resolved),
	}
}

func (r *Registry) Register(tool Tool) error {
	resolved, err := tool.Schema().Resolve(nil)
	if err != nil {
		return fmt.Errorf("resolve schema for tool %q: %w", tool.Name(), err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[tool.Name()] = tool
	r.resolved[tool.Name()] = resolved
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Invoke validates args against the tool's schema and runs its handler.
// Schema mismatch fails with ErrInvalidArgs without executing the handler.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (*ToolResult, error) {
	r.mu.RLock()
	tool, ok := r.tools[name]
	resolved := r.resolved[name]
	r.mu.RUnlock()

	if !ok {
		logger.ErrorCF("tool", "Tool not found", map[string]any{"tool": name})
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if args == nil {
		args = map[string]any{}
	}
	if err := resolved.Validate(args); err != nil {
		logger.WarnCF("tool", "Tool arguments rejected by schema",
			map[string]any{"tool": name, "error": err.Error()})
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArgs, name, err)
	}

	logger.InfoCF("tool", "Tool execution started",
		map[string]any{"tool": name, "args": args})

	start := time.Now()
	result := tool.Execute(ctx, args)
	duration := time.Since(start)

	if result.IsError {
		logger.ErrorCF("tool", "Tool execution failed",
			map[string]any{
				"tool":        name,
				"duration_ms": duration.Milliseconds(),
				"error":       result.ForLLM,
			})
	} else {
		logger.InfoCF("tool", "Tool execution completed",
			map[string]any{
				"tool":          name,
				"duration_ms":   duration.Milliseconds(),
				"result_length": len(result.ForLLM),
			})
	}

	return result, nil
}

// sortedToolNames returns tool names in sorted order for deterministic
// iteration, so tool definitions are stable across calls.
func (r *Registry) sortedToolNames() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ToProviderDefs converts the registered tools to the definition format
// expected by the LLM provider APIs.
func (r *Registry) ToProviderDefs() []providers.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := r.sortedToolNames()
	definitions := make([]providers.ToolDefinition, 0, len(sorted))
	for _, name := range sorted {
		tool := r.tools[name]
		definitions = append(definitions, providers.ToolDefinition{
			Type: "function",
			Function: providers.ToolFunctionDefinition{
				Name:        tool.Name(),
				Description: tool.Description(),
				Parameters:  schemaToMap(tool.Schema()),
			},
		})
	}
	return definitions
}

// List returns all registered tool names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sortedToolNames()
}

func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// GetSummaries returns "name - description" lines for all registered tools.
func (r *Registry) GetSummaries() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sorted := r.sortedToolNames()
	summaries := make([]string, 0, len(sorted))
	for _, name := range sorted {
		tool := r.tools[name]
		summaries = append(summaries, fmt.Sprintf("- `%s` - %s", tool.Name(), tool.Description()))
	}
	return summaries
}

// DefaultRegistry builds the site's fixed five-tool catalogue over the
// given catalog. Delay adds simulated lookup latency to the weather and
// stock tools; pass 0 in tests.
func DefaultRegistry(catalog CatalogSource, delay time.Duration) (*Registry, error) {
	registry := NewRegistry()
	for _, tool := range []Tool{
		NewWeatherTool(delay),
		NewStockTool(delay),
		NewProjectsTool(catalog),
		NewSkillsTool(catalog),
		NewContactTool(catalog),
	} {
		if err := registry.Register(tool); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
