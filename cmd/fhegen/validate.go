package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fhevm-suite/fhegen/internal/config"
	"github.com/fhevm-suite/fhegen/internal/ui"
	"github.com/fhevm-suite/fhegen/internal/validate"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate example structure and metadata",
	Long: `Validate every example project under the examples root.

Checks required files, contract presence, kebab-case naming, and the
fhevm-example.json descriptor against its schema. Warnings are reported
but only errors fail the run.

Examples:
  fhegen validate
  fhegen validate --examples-root examples`,
	RunE: runValidate,
}

var validateExamplesRoot string

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateExamplesRoot, "examples-root", "", "Examples root directory (default from settings)")
}

// runValidate executes the validate command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Execution error, or a validation-failed error
//
// Concurrency:
//   - Single-threaded
func runValidate(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	root := validateExamplesRoot
	if root == "" {
		root = settings.ExamplesRoot
	}

	ui.Info("Validating examples under %s", root)
	diags, err := validate.NewValidator().Tree(root)
	if err != nil {
		return fmt.Errorf("failed to validate examples: %w", err)
	}

	errors := 0
	for _, d := range diags.Items() {
		switch d.Severity {
		case validate.SeverityError:
			errors++
			ui.Error("%s: %s", d.Path, d.Message)
		default:
			ui.Warn("%s: %s", d.Path, d.Message)
		}
		if d.Suggestion != "" {
			ui.Debug("  suggestion: %s", d.Suggestion)
		}
	}

	if diags.HasErrors() {
		return fmt.Errorf("validation failed with %d errors", errors)
	}
	ui.Success("All examples are valid")
	return nil
}
