package domain

import (
	"context"

	"github.com/rs/zerolog"
)

type ToolsetType string
type ToolName string
type ToolPropertyType string

const (
	ToolsetType_Arithmetic   ToolsetType = "arithmetic"
	ToolsetType_Logarithms   ToolsetType = "logarithms"
	ToolsetType_Trigonometry ToolsetType = "trigonometry"
	ToolsetType_Integers     ToolsetType = "integers"
	ToolsetType_Statistics   ToolsetType = "statistics"
)

const (
	ToolPropertyType_Number ToolPropertyType = "number"
	ToolPropertyType_Array  ToolPropertyType = "array"
)

// Toolset is the declarative catalogue one tool package exposes: a family of
// tools sharing an executor. Catalogues are built once at startup and never
// mutated afterwards.
type Toolset struct {
	ID          ToolsetType      `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Tools       []ToolDefinition `json:"tools"`
}

type ToolDefinition struct {
	ID          string         `json:"id"`
	ToolName    ToolName       `json:"tool_name"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Properties  []ToolProperty `json:"properties"`
}

type ToolProperty struct {
	Key         string           `json:"key"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Required    bool             `json:"required"`
	Type        ToolPropertyType `json:"type"`
	// Default is injected by the binder when an optional property is absent.
	Default any `json:"default,omitempty"`
	// ItemType describes array elements when Type is array.
	ItemType ToolPropertyType `json:"item_type,omitempty"`
}

// ToolInput is the unit of work handed to an executor: the resolved tool name
// plus the raw argument payload from the caller.
type ToolInput struct {
	ToolName  ToolName
	Arguments map[string]any
}

type ToolExecutor interface {
	Execute(ctx context.Context, input ToolInput) (any, error)
}

type ToolParameterBinder interface {
	BindToStruct(ctx context.Context, args map[string]any, target any, props []ToolProperty) error
}

type ToolsetDeps struct {
	ParameterBinder ToolParameterBinder
	Logger          zerolog.Logger
}
