package cli

import (
	"fmt"
	"os"

	"github.com/mathdeck/mathdeck/internal/initialization"
	"github.com/spf13/cobra"
)

func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "mathdeck",
		Short: "Mathdeck tool server CLI",
		Long: `Mathdeck exposes a fixed catalogue of arithmetic, trigonometric, and
statistical operations as remotely invocable tools behind an HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	serverContainer, err := initialization.NewServerContainer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize server container: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(NewServeCommand(serverContainer))
	rootCmd.AddCommand(NewToolsCommand(serverContainer))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
