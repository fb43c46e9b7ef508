package domain

import (
	"context"
	"fmt"
	"sync"
)

type ToolFunc func(ctx context.Context, input ToolInput) (any, error)

// ToolCallManager maps tool names to their operation functions within one
// toolset. Registration happens once during construction; Run is the only
// steady-state entry point.
type ToolCallManager struct {
	mtx       sync.RWMutex
	toolFuncs map[ToolName]ToolFunc
}

func NewToolCallManager() *ToolCallManager {
	return &ToolCallManager{
		toolFuncs: make(map[ToolName]ToolFunc),
	}
}

func (m *ToolCallManager) Add(toolName ToolName, toolFunc ToolFunc) *ToolCallManager {
	m.mtx.Lock()
	defer m.mtx.Unlock()

	m.toolFuncs[toolName] = toolFunc

	return m
}

func (m *ToolCallManager) Get(toolName ToolName) (ToolFunc, bool) {
	m.mtx.RLock()
	defer m.mtx.RUnlock()

	toolFunc, ok := m.toolFuncs[toolName]
	return toolFunc, ok
}

func (m *ToolCallManager) Run(ctx context.Context, toolName ToolName, input ToolInput) (any, error) {
	toolFunc, ok := m.Get(toolName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, toolName)
	}

	return toolFunc(ctx, input)
}
