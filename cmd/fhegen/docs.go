package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fhevm-suite/fhegen/internal/config"
	"github.com/fhevm-suite/fhegen/internal/docs"
	"github.com/fhevm-suite/fhegen/internal/ui"
)

// docsCmd represents the docs command.
var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate Markdown documentation from example trees",
	Long: `Generate Markdown documentation from the examples root.

Each example's fhevm-example.json descriptor feeds a per-category page
plus a top-level SUMMARY.md index. Output is deterministic and existing
pages are overwritten.

Examples:
  fhegen docs
  fhegen docs --examples-root examples --out docs`,
	RunE: runDocs,
}

var (
	docsExamplesRoot string
	docsOut          string
)

func init() {
	rootCmd.AddCommand(docsCmd)

	docsCmd.Flags().StringVar(&docsExamplesRoot, "examples-root", "", "Examples root directory (default from settings)")
	docsCmd.Flags().StringVar(&docsOut, "out", "docs", "Output directory for generated pages")
}

// runDocs executes the docs command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded
func runDocs(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	root := docsExamplesRoot
	if root == "" {
		root = settings.ExamplesRoot
	}

	ui.Info("Generating docs from %s", root)
	written, err := docs.NewGenerator(root).Generate(docsOut)
	if err != nil {
		return fmt.Errorf("failed to generate docs: %w", err)
	}

	ui.Success("Generated %d documentation pages in %s", written, docsOut)
	return nil
}
