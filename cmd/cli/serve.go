package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mathdeck/mathdeck/internal/config"
	"github.com/mathdeck/mathdeck/internal/initialization"
	"github.com/mathdeck/mathdeck/internal/server"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewServeCommand(serverContainer *initialization.ServerContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the math tool server",
		RunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			return runServe(serverContainer, debug)
		},
	}

	return cmd
}

func runServe(serverContainer *initialization.ServerContainer, debug bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info().Msg("Starting math tool server")

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	registry := serverContainer.GetRegistry()

	app := server.NewHTTPServer(ctx, server.HTTPServerDependencies{
		ToolController: serverContainer.GetToolController(),
	})

	log.Info().
		Str("address", cfg.HTTPAddress).
		Int("tools", len(registry.Definitions())).
		Msg("Math tool server listening")

	err = app.Listen(cfg.HTTPAddress, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("HTTP server failed")
	}

	log.Info().Msg("Math tool server stopped")
	return nil
}
