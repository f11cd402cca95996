package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/firebase/genkit/go/ai"
)

// ToolExecutor is the function signature for executing a tool
type ToolExecutor func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Registry manages the registration of AI tools
type Registry struct {
	tools     []ai.Tool
	executors map[string]ToolExecutor
}

// NewRegistry creates a new tool registry
func NewRegistry() *Registry {
	return &Registry{
		tools:     make([]ai.Tool, 0),
		executors: make(map[string]ToolExecutor),
	}
}

// Register adds a tool to the registry with its executor.
// Registering the same name twice replaces the executor and keeps the first definition.
func (r *Registry) Register(tool ai.Tool, executor ToolExecutor) {
	name := tool.Definition().Name
	if _, exists := r.executors[name]; !exists {
		r.tools = append(r.tools, tool)
	}
	r.executors[name] = executor
}

// GetTools returns all registered tools in registration order
func (r *Registry) GetTools() []ai.Tool {
	return r.tools
}

// Names returns the registered tool names, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.executors))
	for name := range r.executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ExecuteTool runs a registered tool by name
func (r *Registry) ExecuteTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	executor, ok := r.executors[name]
	if !ok {
		return nil, fmt.Errorf("tool not found: %s", name)
	}
	return executor(ctx, args)
}

// DecodeArgs converts loosely typed tool arguments into the tool's input struct.
// A nil map decodes to the zero value.
func DecodeArgs[T any](args map[string]interface{}) (*T, error) {
	var input T
	if len(args) == 0 {
		return &input, nil
	}
	b, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to encode arguments: %w", err)
	}
	if err := json.Unmarshal(b, &input); err != nil {
		return nil, fmt.Errorf("failed to parse arguments: %w", err)
	}
	return &input, nil
}
