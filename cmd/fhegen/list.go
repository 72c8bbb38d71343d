package main

import (
	"github.com/spf13/cobra"

	"github.com/fhevm-suite/fhegen/internal/registry"
	"github.com/fhevm-suite/fhegen/internal/ui"
)

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available example categories",
	Long: `List the fixed category registry with the examples each
category pre-populates in a category project.`,
	Run: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList executes the list command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Concurrency:
//   - Single-threaded
func runList(cmd *cobra.Command, args []string) {
	for i, cat := range registry.Categories() {
		ui.Info("[%d] %s - %s", i+1, cat.Key, cat.Description)
		for _, name := range cat.Examples {
			ui.Info("      %s", name)
		}
	}
}
