// Package main provides the fhegen CLI command implementations.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fhevm-suite/fhegen/internal/config"
	"github.com/fhevm-suite/fhegen/internal/prompt"
	"github.com/fhevm-suite/fhegen/internal/render"
	"github.com/fhevm-suite/fhegen/internal/scaffold"
	"github.com/fhevm-suite/fhegen/internal/toolrunner"
	"github.com/fhevm-suite/fhegen/internal/ui"
)

// createCmd represents the create command.
var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new example project",
	Long: `Create a new FHEVM example project from templates.

This command generates:
- A Hardhat project directory (package.json, hardhat.config.ts, tsconfig.json)
- A stub contract under contracts/ and a stub test under test/
- A hardhat-deploy script, README, and machine-readable descriptor

Examples:
  fhegen create example
  fhegen create example fhe-counter --category basic
  fhegen create category --category access-control`,
}

// createExampleCmd represents the create example command.
var createExampleCmd = &cobra.Command{
	Use:   "example [name]",
	Short: "Create a single example project",
	Long: `Create a single FHEVM example project.

Configuration is gathered interactively; any field supplied through a
flag is skipped at the prompt. In --non-interactive mode all fields come
from flags, with documented defaults for anything left empty.

Examples:
  fhegen create example
  fhegen create example fhe-counter --category basic --install
  fhegen create example demo-app --non-interactive --category-index 1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreateExample,
}

// createCategoryCmd represents the create category command.
var createCategoryCmd = &cobra.Command{
	Use:   "category [name]",
	Short: "Create a multi-example category project",
	Long: `Create a project pre-populated with every example of a category.

The category registry supplies the example list; one stub contract and
test pair is generated per example, sharing a single Hardhat workspace.

Examples:
  fhegen create category
  fhegen create category --category relayer
  fhegen create category acl-pack --non-interactive --category access-control`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCreateCategory,
}

var (
	createTitle         string
	createDescription   string
	createAuthor        string
	createCategory      string
	createCategoryIndex int
	createInstall       bool
	createGit           bool
)

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.AddCommand(createExampleCmd)
	createCmd.AddCommand(createCategoryCmd)

	for _, cmd := range []*cobra.Command{createExampleCmd, createCategoryCmd} {
		cmd.Flags().StringVar(&createTitle, "title", "", "Example title")
		cmd.Flags().StringVar(&createDescription, "description", "", "Example description")
		cmd.Flags().StringVar(&createAuthor, "author", "", "Author recorded in package metadata")
		cmd.Flags().StringVar(&createCategory, "category", "", "Category key (see `fhegen list`)")
		cmd.Flags().IntVar(&createCategoryIndex, "category-index", -1, "Category position, counted from 1; out-of-range values clamp")
		cmd.Flags().BoolVar(&createInstall, "install", false, "Run npm install after scaffolding")
		cmd.Flags().BoolVar(&createGit, "git", false, "Initialize a git repository after scaffolding")
	}
}

// runCreateExample executes the create example command.
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
func runCreateExample(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	opts := collectOptions(args)
	cfg, err := prompt.CollectExample(opts, settings)
	if err != nil {
		return err
	}

	files, err := render.NewRenderer(settings).Example(cfg)
	if err != nil {
		return fmt.Errorf("failed to render templates: %w", err)
	}

	ui.Info("Creating example: %s", cfg.Name)
	if err := materialize(cfg.Name, files); err != nil {
		return err
	}

	if createGit {
		initRepository(ctx, cfg.Name)
	}
	if createInstall {
		installDependencies(ctx, cfg.Name)
	}

	ui.Success("Example created: %s", cfg.Name)
	printNextSteps(cfg.Name)
	return nil
}

// runCreateCategory executes the create category command.
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
func runCreateCategory(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	opts := collectOptions(args)
	cfg, def, err := prompt.CollectCategory(opts, settings)
	if err != nil {
		return err
	}

	files, err := render.NewRenderer(settings).Category(def, cfg)
	if err != nil {
		return fmt.Errorf("failed to render templates: %w", err)
	}

	ui.Info("Creating category project: %s (%d examples)", cfg.Name, len(def.Examples))
	if err := materialize(cfg.Name, files); err != nil {
		return err
	}

	if createGit {
		initRepository(ctx, cfg.Name)
	}
	if createInstall {
		installDependencies(ctx, cfg.Name)
	}

	ui.Success("Category project created: %s", cfg.Name)
	printNextSteps(cfg.Name)
	return nil
}

// collectOptions builds prompt options from flags and the optional
// positional name argument.
func collectOptions(args []string) prompt.Options {
	opts := prompt.Options{
		Title:         createTitle,
		Description:   createDescription,
		Author:        createAuthor,
		Category:      createCategory,
		CategoryIndex: createCategoryIndex,
	}
	if len(args) > 0 {
		opts.Name = args[0]
	}
	return opts
}

// materialize writes the rendered file set under root.
func materialize(root string, files render.FileSet) error {
	m := scaffold.NewMaterializer()
	m.SetVerbose(verbose)
	if err := m.Materialize(root, files); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// initRepository runs git init in the new project. A failed init leaves
// the scaffold in place; the operator can re-run it.
func initRepository(ctx context.Context, dir string) {
	runner := toolrunner.NewRunner(dir)
	runner.SetVerbose(verbose)
	if err := runner.Git(ctx, "init"); err != nil {
		ui.Warn("git init failed: %v", err)
		ui.Warn("Run `git init` manually inside %s", dir)
		return
	}
	ui.Success("Initialized git repository")
}

// installDependencies runs npm install in the new project. A failed
// install leaves the scaffold in place; the operator can re-run it.
func installDependencies(ctx context.Context, dir string) {
	ui.Info("Installing dependencies in %s", dir)
	runner := toolrunner.NewRunner(dir)
	runner.SetVerbose(verbose)
	if err := runner.Npm(ctx, "install"); err != nil {
		ui.Warn("npm install failed: %v", err)
		ui.Warn("Run `npm install` manually inside %s", dir)
		return
	}
	ui.Success("Dependencies installed")
}

// printNextSteps prints the post-scaffold summary block.
func printNextSteps(dir string) {
	ui.Info("Next steps:")
	ui.Info("  1. cd %s", dir)
	if !createInstall {
		ui.Info("  2. npm install")
		ui.Info("  3. npm run compile")
		ui.Info("  4. npm test")
		return
	}
	ui.Info("  2. npm run compile")
	ui.Info("  3. npm test")
}
