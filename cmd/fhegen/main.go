// Package main provides the fhegen CLI tool entry point.
//
// Overview:
//   - Responsibility: CLI command parsing and execution
//   - Key Types: Cobra command structure
//   - Concurrency Model: Single-threaded CLI execution
//   - Error Semantics: Exit codes and user-friendly error messages
//   - Performance Notes: Fast startup, minimal memory footprint
//
// Usage:
//
//	fhegen [command] [flags]
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fhevm-suite/fhegen/internal/ui"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fhegen",
	Short: "FHEVM example scaffolding tool",
	Long: `fhegen scaffolds, documents, and maintains FHEVM example projects.

This tool provides commands for:
- Scaffolding single example projects (create example)
- Scaffolding multi-example category bundles (create category)
- Generating Markdown documentation from example trees (docs)
- Updating pinned dependencies across examples (deps update)
- Validating example structure and metadata (validate)

Generated projects are Hardhat workspaces with a stub contract, test,
and deploy script; filling in the FHE logic is left to the author.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.SetVerbose(verbose)
		ui.SetNonInteractive(nonInteractive)
		ui.SetJSONOutput(jsonOutput)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
//
// Concurrency:
//   - Single-threaded execution
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Error("Command failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "V", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
}

// main is the entry point for the fhegen CLI tool.
func main() {
	Execute()
}
