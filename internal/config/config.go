// Package config provides configuration records and tool settings for fhegen.
//
// Overview:
//   - Responsibility: Typed scaffolding input (ExampleConfig), tool-level settings
//   - Key Types: ExampleConfig, Settings
//   - Concurrency Model: Immutable after construction
//   - Error Semantics: Validation errors with field context
//   - Performance Notes: Single allocation per invocation
//
// Usage:
//
//	cfg := config.ExampleConfig{Name: "fhe-counter", Category: "basic"}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
package config

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultDescription is substituted when the operator leaves the
// description prompt empty.
const DefaultDescription = "FHEVM example demonstrating privacy-preserving features"

// DefaultAuthor is substituted when the operator leaves the author
// prompt empty and no tool-level default is configured.
const DefaultAuthor = "FHEVM Community"

// kebabRe matches valid example names: lowercase alphanumerics
// separated by single hyphens.
var kebabRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ExampleConfig is the input record driving a single scaffolding run.
// It is created once from operator input, never mutated afterwards, and
// discarded when the run finishes.
//
// Parameters:
//   - Name: Example name in kebab-case, used as the target directory name
//   - Title: Human-readable title
//   - Description: One-line description embedded in README and metadata
//   - Category: Resolved category key (one of the registry's keys)
//   - Author: Author string for package metadata
//   - CreatedAt: Capture time, embedded in the machine-readable descriptor
//
// Concurrency:
//   - Immutable after ApplyDefaults; safe for concurrent reads
type ExampleConfig struct {
	Name        string
	Title       string
	Description string
	Category    string
	Author      string
	CreatedAt   time.Time
}

// ApplyDefaults fills empty free-text fields with their documented
// defaults. The name and category are never defaulted: the name is
// required input and the category is always resolved by the caller.
//
// Concurrency:
//   - Single-threaded, called once before rendering
func (c *ExampleConfig) ApplyDefaults() {
	if c.Title == "" {
		c.Title = TitleCase(c.Name)
	}
	if c.Description == "" {
		c.Description = DefaultDescription
	}
	if c.Author == "" {
		c.Author = DefaultAuthor
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
}

// Validate checks that the config can drive a scaffolding run.
//
// Returns:
//   - error: Field-level validation error, nil when valid
//
// Concurrency:
//   - Safe for concurrent use
func (c *ExampleConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("example name must not be empty")
	}
	if !kebabRe.MatchString(c.Name) {
		return fmt.Errorf("example name %q must be kebab-case (lowercase letters, digits, hyphens)", c.Name)
	}
	if c.Category == "" {
		return fmt.Errorf("category must not be empty")
	}
	return nil
}

// PascalCase converts a kebab-case name to PascalCase, used for
// contract and test naming ("fhe-counter" -> "FheCounter").
func PascalCase(name string) string {
	parts := strings.Split(name, "-")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

// TitleCase converts a kebab-case name to a spaced title
// ("fhe-counter" -> "Fhe Counter").
func TitleCase(name string) string {
	parts := strings.Split(name, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// Settings holds tool-level defaults loaded from fhegen.yaml and the
// FHEGEN_* environment. They parameterize rendering and dependency
// updates without being part of the per-run ExampleConfig.
//
// Parameters:
//   - Author: Default author applied when the prompt is left empty
//   - ExamplesRoot: Root directory scanned by docs/validate/deps commands
//   - SolidityVersion: Solidity compiler pin written into hardhat config
//   - Dependencies: Managed package pins written into generated package.json
//
// Concurrency:
//   - Immutable after Load
type Settings struct {
	Author          string            `mapstructure:"author"`
	ExamplesRoot    string            `mapstructure:"examples_root"`
	SolidityVersion string            `mapstructure:"solidity_version"`
	Dependencies    map[string]string `mapstructure:"dependencies"`
}

// defaultDependencies are the managed package pins embedded into every
// generated project and enforced by `fhegen deps update`.
func defaultDependencies() map[string]string {
	return map[string]string{
		"@fhevm/solidity":       "0.7.0",
		"@fhevm/hardhat-plugin": "0.0.1-6",
		"@zama-fhe/relayer-sdk": "0.1.0",
		"hardhat":               "2.25.0",
		"ethers":                "6.14.3",
		"typescript":            "5.8.3",
	}
}

// Load reads tool settings from an optional fhegen.yaml (current
// directory or $HOME) and FHEGEN_* environment variables, applying
// built-in defaults for anything unset. A missing config file is not an
// error.
//
// Returns:
//   - *Settings: Resolved settings
//   - error: Parse error for a malformed config file
//
// Concurrency:
//   - Single-threaded, called once at command start
func Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigName("fhegen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME")
	v.SetEnvPrefix("FHEGEN")
	v.AutomaticEnv()

	v.SetDefault("author", DefaultAuthor)
	v.SetDefault("examples_root", "examples")
	v.SetDefault("solidity_version", "0.8.27")
	v.SetDefault("dependencies", defaultDependencies())

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read fhegen.yaml: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}
