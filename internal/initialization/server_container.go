package initialization

import (
	"context"
	"fmt"

	"github.com/mathdeck/mathdeck/internal/controllers"
	"github.com/mathdeck/mathdeck/pkg/binders"
	"github.com/mathdeck/mathdeck/pkg/domain"

	"github.com/rs/zerolog/log"
)

// ServerContainer wires the binder, the tool registry, and the controllers.
// Everything is assembled once at startup; registrations never change after
// that.
type ServerContainer struct {
	registry       *domain.ToolRegistry
	toolController *controllers.ToolController
}

func NewServerContainer() (*ServerContainer, error) {
	binder := binders.NewJSONParameterBinder(binders.JSONParameterBinderOptions{
		Logger: log.Logger,
	})

	registry := domain.NewToolRegistry()

	err := RegisterToolsets(context.Background(), RegisterToolsetsParams{
		Registry: registry,
		Deps: domain.ToolsetDeps{
			ParameterBinder: binder,
			Logger:          log.Logger,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to register toolsets: %w", err)
	}

	toolController := controllers.NewToolController(controllers.ToolControllerDependencies{
		Registry: registry,
	})

	return &ServerContainer{
		registry:       registry,
		toolController: toolController,
	}, nil
}

func (c *ServerContainer) GetRegistry() *domain.ToolRegistry {
	return c.registry
}

func (c *ServerContainer) GetToolController() *controllers.ToolController {
	return c.toolController
}
