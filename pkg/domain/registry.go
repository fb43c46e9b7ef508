package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

type registryEntry struct {
	definition ToolDefinition
	schema     *jsonschema.Schema
	executor   ToolExecutor
}

// ToolRegistry maps tool names to their compiled input schema and executor.
// Toolsets register once at startup; after that the registry only serves
// lookups and calls.
type ToolRegistry struct {
	mtx           sync.RWMutex
	entriesByName map[ToolName]*registryEntry
	order         []ToolName
}

func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		entriesByName: make(map[ToolName]*registryEntry),
	}
}

func (r *ToolRegistry) RegisterToolset(toolset Toolset, executor ToolExecutor) error {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	for _, def := range toolset.Tools {
		if _, exists := r.entriesByName[def.ToolName]; exists {
			return fmt.Errorf("tool %s is already registered", def.ToolName)
		}

		compiled, err := compileInputSchema(def)
		if err != nil {
			return fmt.Errorf("failed to compile input schema for tool %s: %w", def.ToolName, err)
		}

		r.entriesByName[def.ToolName] = &registryEntry{
			definition: def,
			schema:     compiled,
			executor:   executor,
		}
		r.order = append(r.order, def.ToolName)
	}

	return nil
}

// Definitions returns every registered tool in registration order.
func (r *ToolRegistry) Definitions() []ToolDefinition {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	definitions := make([]ToolDefinition, 0, len(r.order))
	for _, toolName := range r.order {
		definitions = append(definitions, r.entriesByName[toolName].definition)
	}

	return definitions
}

func (r *ToolRegistry) Lookup(toolName ToolName) (ToolDefinition, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	entry, ok := r.entriesByName[toolName]
	if !ok {
		return ToolDefinition{}, false
	}

	return entry.definition, true
}

// Call resolves a tool, validates the raw payload against its input schema,
// and runs the operation inside the failure boundary. Every outcome except an
// unknown tool name comes back as an envelope; unknown names are the
// transport's problem and surface as ErrToolNotFound.
func (r *ToolRegistry) Call(ctx context.Context, toolName ToolName, args map[string]any) (ToolResponse, error) {
	r.mtx.RLock()
	entry, ok := r.entriesByName[toolName]
	r.mtx.RUnlock()

	if !ok {
		return ToolResponse{}, fmt.Errorf("%w: %s", ErrToolNotFound, toolName)
	}

	if args == nil {
		args = map[string]any{}
	}

	if err := entry.schema.Validate(args); err != nil {
		return NewErrorResponse(toolName, validationMessage(err)), nil
	}

	result, err := entry.executor.Execute(ctx, ToolInput{
		ToolName:  toolName,
		Arguments: args,
	})
	if err != nil {
		return NewErrorResponse(toolName, err.Error()), nil
	}

	return NewSuccessResponse(toolName, result), nil
}

func compileInputSchema(def ToolDefinition) (*jsonschema.Schema, error) {
	doc, err := json.Marshal(BuildInputSchema(def))
	if err != nil {
		return nil, err
	}

	url := string(def.ToolName) + ".schema.json"

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(doc)); err != nil {
		return nil, err
	}

	return compiler.Compile(url)
}

// validationMessage flattens a schema validation error into a single line
// naming the offending field and constraint.
func validationMessage(err error) string {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return err.Error()
	}

	leaf := validationErr
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	field := strings.TrimPrefix(leaf.InstanceLocation, "/")
	if field == "" {
		return leaf.Message
	}

	return fmt.Sprintf("%s: %s", field, leaf.Message)
}
