package server

import (
	"context"
	"time"

	"github.com/mathdeck/mathdeck/internal/controllers"
	"github.com/mathdeck/mathdeck/internal/middlewares"
	"github.com/mathdeck/mathdeck/internal/version"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
)

type HTTPServerDependencies struct {
	ToolController *controllers.ToolController
}

func NewHTTPServer(ctx context.Context, deps HTTPServerDependencies) *fiber.App {
	router := fiber.New(fiber.Config{
		AppName: "mathdeck-server",
	})

	router.Use(cors.New())
	router.Use(logger.New())
	router.Use(middlewares.RequestID())

	router.Get("/health", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":    "healthy",
			"service":   "mathdeck-server",
			"version":   version.GetVersion(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	tools := router.Group("/tools")

	tools.Get("/", deps.ToolController.ListTools)
	tools.Post("/:toolName", deps.ToolController.CallTool)

	return router
}
