package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fhevm-suite/fhegen/internal/config"
	"github.com/fhevm-suite/fhegen/internal/deps"
	"github.com/fhevm-suite/fhegen/internal/ui"
)

// depsCmd represents the deps command.
var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Manage dependency pins across examples",
}

// depsUpdateCmd represents the deps update command.
var depsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update managed dependency pins in example package.json files",
	Long: `Update managed dependency pins across every example project.

Pins are rewritten in place only when the configured target version is
newer than the current one; range prefixes (^, ~) and file formatting
are preserved.

Examples:
  fhegen deps update
  fhegen deps update --dry-run
  fhegen deps update --check`,
	RunE: runDepsUpdate,
}

var (
	depsExamplesRoot string
	depsDryRun       bool
	depsCheck        bool
)

func init() {
	rootCmd.AddCommand(depsCmd)
	depsCmd.AddCommand(depsUpdateCmd)

	depsUpdateCmd.Flags().StringVar(&depsExamplesRoot, "examples-root", "", "Examples root directory (default from settings)")
	depsUpdateCmd.Flags().BoolVar(&depsDryRun, "dry-run", false, "Report updates without writing files")
	depsUpdateCmd.Flags().BoolVar(&depsCheck, "check", false, "Exit non-zero when any pin is outdated (implies --dry-run)")
}

// runDepsUpdate executes the deps update command.
//
// Parameters:
//   - cmd: Cobra command
//   - args: Command arguments
//
// Returns:
//   - error: Execution error, or an outdated-pins error in --check mode
//
// Concurrency:
//   - Single-threaded
func runDepsUpdate(cmd *cobra.Command, args []string) error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	root := depsExamplesRoot
	if root == "" {
		root = settings.ExamplesRoot
	}

	updater := deps.NewUpdater(settings.Dependencies)
	updater.SetDryRun(depsDryRun || depsCheck)

	report, err := updater.UpdateTree(root)
	if err != nil {
		return fmt.Errorf("failed to update dependencies: %w", err)
	}

	for _, u := range report.Updates {
		ui.Info("%s: %s %s -> %s", u.Project, u.Package, u.From, u.To)
	}

	switch {
	case depsCheck && report.Outdated:
		return fmt.Errorf("%d outdated pins across %d projects", len(report.Updates), report.Projects)
	case depsCheck:
		ui.Success("All %d projects are up to date", report.Projects)
	case depsDryRun:
		ui.Info("Dry run: %d pins would be updated across %d projects", len(report.Updates), report.Projects)
	case report.Outdated:
		ui.Success("Updated %d pins across %d projects", len(report.Updates), report.Projects)
	default:
		ui.Success("All %d projects are up to date", report.Projects)
	}
	return nil
}
