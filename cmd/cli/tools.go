package cli

import (
	"fmt"

	"github.com/mathdeck/mathdeck/internal/initialization"
	"github.com/spf13/cobra"
)

func NewToolsCommand(serverContainer *initialization.ServerContainer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the registered tools",
		Long:  `List every tool in the registry with its description.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToolsList(serverContainer)
		},
	}

	return cmd
}

func runToolsList(serverContainer *initialization.ServerContainer) error {
	definitions := serverContainer.GetRegistry().Definitions()

	fmt.Printf("Registered tools (%d):\n", len(definitions))
	for _, def := range definitions {
		fmt.Printf("   %-20s %s\n", def.ToolName, def.Description)
	}

	return nil
}
