// Package prompt collects scaffolding configuration from the operator.
//
// Overview:
//   - Responsibility: Gather ExampleConfig fields interactively or from flags
//   - Key Types: Options, collector functions
//   - Concurrency Model: Single blocking form per invocation, fields in order
//   - Error Semantics: Only name validation and user abort can fail a collection
//   - Performance Notes: One form run per command
//
// Free-text fields (title, description, author) are never validated:
// empty input falls back to the documented defaults. The category is
// chosen from the fixed registry, so interactive selection cannot go
// out of range; the flag-driven index path clamps instead of rejecting.
//
// Usage:
//
//	cfg, err := prompt.CollectExample(opts, settings)
package prompt

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/fhevm-suite/fhegen/internal/config"
	"github.com/fhevm-suite/fhegen/internal/registry"
	"github.com/fhevm-suite/fhegen/internal/scaffold"
	"github.com/fhevm-suite/fhegen/internal/ui"
)

// Options carries flag-provided values into a collection run. Empty
// fields are prompted for (interactive mode) or defaulted
// (non-interactive mode).
//
// Parameters:
//   - Name: Example or project name (kebab-case)
//   - Title: Human-readable title
//   - Description: One-line description
//   - Author: Author string
//   - Category: Category key
//   - CategoryIndex: Positional category selection, counted from 1; -1 when unset
//
// Concurrency:
//   - Immutable input record
type Options struct {
	Name          string
	Title         string
	Description   string
	Author        string
	Category      string
	CategoryIndex int
}

// CollectExample gathers the configuration for a single-example
// scaffold.
//
// Parameters:
//   - opts: Flag-provided values; empty fields are prompted or defaulted
//   - settings: Tool settings supplying the default author
//
// Returns:
//   - config.ExampleConfig: Complete, validated configuration
//   - error: Name validation failure or aborted form
//
// Concurrency:
//   - Blocks on keyboard input in interactive mode
func CollectExample(opts Options, settings *config.Settings) (config.ExampleConfig, error) {
	cfg := config.ExampleConfig{
		Name:        opts.Name,
		Title:       opts.Title,
		Description: opts.Description,
		Author:      opts.Author,
	}

	def, err := resolveCategory(opts, !ui.IsNonInteractive())
	if err != nil {
		return config.ExampleConfig{}, err
	}
	cfg.Category = def.Key

	if !ui.IsNonInteractive() {
		if err := runExampleForm(&cfg); err != nil {
			return config.ExampleConfig{}, err
		}
	}

	cfg.Author = firstNonEmpty(cfg.Author, settings.Author)
	cfg.CreatedAt = time.Now().UTC()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return config.ExampleConfig{}, err
	}
	return validateDestination(cfg)
}

// CollectCategory gathers the configuration for a multi-example
// category scaffold. The project name defaults to "<category>-examples".
//
// Parameters:
//   - opts: Flag-provided values
//   - settings: Tool settings supplying the default author
//
// Returns:
//   - config.ExampleConfig: Project-level configuration
//   - registry.CategoryDefinition: Resolved category
//   - error: Name validation failure or aborted form
//
// Concurrency:
//   - Blocks on keyboard input in interactive mode
func CollectCategory(opts Options, settings *config.Settings) (config.ExampleConfig, registry.CategoryDefinition, error) {
	def, err := resolveCategory(opts, !ui.IsNonInteractive())
	if err != nil {
		return config.ExampleConfig{}, registry.CategoryDefinition{}, err
	}

	cfg := config.ExampleConfig{
		Name:        opts.Name,
		Title:       def.Title,
		Description: def.Description,
		Author:      opts.Author,
		Category:    def.Key,
	}
	if cfg.Name == "" && ui.IsNonInteractive() {
		cfg.Name = def.Key + "-examples"
	}

	if !ui.IsNonInteractive() && cfg.Name == "" {
		input := huh.NewInput().
			Title("Project name").
			Placeholder(def.Key + "-examples").
			Validate(validateNameInput).
			Value(&cfg.Name)
		if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
			return config.ExampleConfig{}, registry.CategoryDefinition{}, err
		}
		if cfg.Name == "" {
			cfg.Name = def.Key + "-examples"
		}
	}

	cfg.Author = firstNonEmpty(cfg.Author, settings.Author)
	cfg.CreatedAt = time.Now().UTC()
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return config.ExampleConfig{}, registry.CategoryDefinition{}, err
	}
	cfg, err = validateDestination(cfg)
	if err != nil {
		return config.ExampleConfig{}, registry.CategoryDefinition{}, err
	}
	return cfg, def, nil
}

// runExampleForm prompts for the remaining empty example fields, one
// field at a time in fixed order.
func runExampleForm(cfg *config.ExampleConfig) error {
	var fields []huh.Field

	if cfg.Name == "" {
		fields = append(fields, huh.NewInput().
			Title("Example name").
			Description("kebab-case, used as the directory name").
			Placeholder("my-fhevm-example").
			Validate(validateRequiredName).
			Value(&cfg.Name))
	}
	if cfg.Title == "" {
		fields = append(fields, huh.NewInput().
			Title("Title").
			Description("leave empty to derive from the name").
			Value(&cfg.Title))
	}
	if cfg.Description == "" {
		fields = append(fields, huh.NewInput().
			Title("Description").
			Placeholder(config.DefaultDescription).
			Value(&cfg.Description))
	}
	if cfg.Author == "" {
		fields = append(fields, huh.NewInput().
			Title("Author").
			Placeholder(config.DefaultAuthor).
			Value(&cfg.Author))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

// resolveCategory resolves the category from a key, an index, or an
// interactive select, in that order of precedence. Flag-driven indices
// out of range clamp to the nearest valid category.
func resolveCategory(opts Options, interactive bool) (registry.CategoryDefinition, error) {
	if opts.Category != "" {
		def, ok := registry.ByKey(opts.Category)
		if !ok {
			return registry.CategoryDefinition{}, fmt.Errorf("unknown category %q (available: %v)", opts.Category, registry.Keys())
		}
		return def, nil
	}

	if opts.CategoryIndex >= 0 || !interactive {
		// Positions are counted from 1. An unset index in
		// non-interactive mode falls back to the first category.
		index := opts.CategoryIndex
		if index < 0 {
			index = 1
		}
		def, clamped := registry.ByIndex(index)
		if clamped {
			ui.Warn("Category index %d is out of range, using %q", opts.CategoryIndex, def.Key)
		}
		return def, nil
	}

	options := make([]huh.Option[string], 0, len(registry.Categories()))
	for _, c := range registry.Categories() {
		options = append(options, huh.NewOption(fmt.Sprintf("%s - %s", c.Title, c.Description), c.Key))
	}

	var key string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Category").
			Options(options...).
			Value(&key),
	))
	if err := form.Run(); err != nil {
		return registry.CategoryDefinition{}, err
	}

	def, _ := registry.ByKey(key)
	return def, nil
}

// validateRequiredName rejects empty names, non-kebab-case names, and
// names whose target directory is already taken, so the operator can
// correct them in place at the prompt.
func validateRequiredName(name string) error {
	check := config.ExampleConfig{Name: name, Category: "basic"}
	if err := check.Validate(); err != nil {
		return err
	}
	exists, err := scaffold.DirectoryExists(name)
	if err != nil {
		return fmt.Errorf("failed to check destination %s: %w", name, err)
	}
	if exists {
		return fmt.Errorf("directory %s already exists", name)
	}
	return nil
}

// validateNameInput accepts empty input (a default applies) but rejects
// non-kebab-case names.
func validateNameInput(name string) error {
	if name == "" {
		return nil
	}
	return validateRequiredName(name)
}

// validateDestination rejects configs whose target directory is taken.
// The materializer re-checks this before writing; checking here lets
// the failure surface before any rendering happens.
func validateDestination(cfg config.ExampleConfig) (config.ExampleConfig, error) {
	exists, err := scaffold.DirectoryExists(cfg.Name)
	if err != nil {
		return config.ExampleConfig{}, fmt.Errorf("failed to check destination %s: %w", cfg.Name, err)
	}
	if exists {
		return config.ExampleConfig{}, fmt.Errorf("%w: %s", scaffold.ErrDestinationExists, cfg.Name)
	}
	return cfg, nil
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
