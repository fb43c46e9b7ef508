package controllers

import (
	"errors"

	"github.com/mathdeck/mathdeck/internal/middlewares"
	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/gofiber/fiber/v3"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/rs/zerolog/log"
)

// ToolController handles tool invocation and catalogue listing over HTTP.
type ToolController struct {
	registry *domain.ToolRegistry
}

type ToolControllerDependencies struct {
	Registry *domain.ToolRegistry
}

func NewToolController(deps ToolControllerDependencies) *ToolController {
	return &ToolController{
		registry: deps.Registry,
	}
}

type CallToolRequest struct {
	Arguments map[string]any `json:"arguments"`
}

// ToolDescriptor is the listing shape for one tool: its name, description,
// and the JSON Schema its argument payload must satisfy.
type ToolDescriptor struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	InputSchema *jsonschema.Schema `json:"inputSchema"`
}

type ListToolsResponse struct {
	Tools []ToolDescriptor `json:"tools"`
}

// CallTool dispatches a tool call. Unknown tool names are rejected here with
// 404; every other outcome is a success or error envelope with status 200.
func (c *ToolController) CallTool(ctx fiber.Ctx) error {
	toolName := domain.ToolName(ctx.Params("toolName"))

	var req CallToolRequest
	if len(ctx.Body()) > 0 {
		if err := ctx.Bind().Body(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
	}

	log.Info().
		Str("request_id", middlewares.GetRequestID(ctx)).
		Str("tool", string(toolName)).
		Msg("Calling tool")

	response, err := c.registry.Call(ctx.RequestCtx(), toolName, req.Arguments)
	if err != nil {
		if errors.Is(err, domain.ErrToolNotFound) {
			return fiber.NewError(fiber.StatusNotFound, err.Error())
		}

		log.Error().Err(err).Str("tool", string(toolName)).Msg("Failed to call tool")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to call tool")
	}

	return ctx.JSON(response)
}

// ListTools returns the full tool catalogue with input schemas.
func (c *ToolController) ListTools(ctx fiber.Ctx) error {
	definitions := c.registry.Definitions()

	descriptors := make([]ToolDescriptor, 0, len(definitions))
	for _, def := range definitions {
		descriptors = append(descriptors, ToolDescriptor{
			Name:        string(def.ToolName),
			Description: def.Description,
			InputSchema: domain.BuildInputSchema(def),
		})
	}

	return ctx.JSON(ListToolsResponse{Tools: descriptors})
}
