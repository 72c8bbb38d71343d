// Package render maps scaffolding configs to generated file sets.
//
// Overview:
//   - Responsibility: Render embedded templates into ordered (path, content) pairs
//   - Key Types: File, FileSet, Renderer
//   - Concurrency Model: Stateless rendering, safe for concurrent use
//   - Error Semantics: Template errors with file context
//   - Performance Notes: Templates parsed per render, sets built in memory
//
// Rendering is pure: the same ExampleConfig always produces a
// byte-identical FileSet. The only timestamp embedded in output is
// ExampleConfig.CreatedAt, which is captured by the collector, not here.
//
// Usage:
//
//	r := render.NewRenderer(settings)
//	files, err := r.Example(cfg)
package render

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/Masterminds/sprig/v3"

	"github.com/fhevm-suite/fhegen/internal/config"
	"github.com/fhevm-suite/fhegen/internal/registry"
)

//go:embed templates/*
var templateFS embed.FS

// File is one generated output file.
type File struct {
	Path    string
	Content string
	Mode    fs.FileMode
}

// FileSet is an ordered sequence of generated files.
//
// Invariant: no two entries share the same Path. Validate enforces this
// before the materializer performs any write.
type FileSet []File

// Validate checks the no-duplicate-path invariant.
//
// Returns:
//   - error: Describes the first duplicate path found, nil when unique
//
// Concurrency:
//   - Safe for concurrent use
func (s FileSet) Validate() error {
	seen := make(map[string]struct{}, len(s))
	for _, f := range s {
		if _, dup := seen[f.Path]; dup {
			return fmt.Errorf("duplicate path in file set: %s", f.Path)
		}
		seen[f.Path] = struct{}{}
	}
	return nil
}

// Renderer renders project templates using tool settings for version
// pins and compiler configuration.
//
// Parameters:
//   - settings: Tool-level settings (dependency pins, solidity version)
//
// Concurrency:
//   - Safe for concurrent use
type Renderer struct {
	settings *config.Settings
}

// NewRenderer creates a renderer bound to the given settings.
func NewRenderer(settings *config.Settings) *Renderer {
	return &Renderer{settings: settings}
}

// templateData is the data passed to every project template.
type templateData struct {
	Name            string
	Title           string
	Description     string
	Category        string
	CategoryTitle   string
	Author          string
	ContractName    string
	SolidityVersion string
	// DependenciesJSON is the devDependencies object pre-marshaled with
	// sorted keys so package.json output is deterministic.
	DependenciesJSON string
}

// metadata is the machine-readable project descriptor written to
// fhevm-example.json.
type metadata struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Author      string   `json:"author"`
	CreatedAt   string   `json:"createdAt"`
	Examples    []string `json:"examples,omitempty"`
}

// Example renders the full file manifest for a single-example project.
//
// Parameters:
//   - cfg: Validated example configuration
//
// Returns:
//   - FileSet: Ordered generated files
//   - error: Template rendering error if any
//
// Concurrency:
//   - Safe for concurrent use
func (r *Renderer) Example(cfg config.ExampleConfig) (FileSet, error) {
	data, err := r.data(cfg)
	if err != nil {
		return nil, err
	}
	contract := config.PascalCase(cfg.Name)

	files := FileSet{}
	for _, entry := range []struct {
		path string
		tmpl string
	}{
		{"package.json", "package.json.tmpl"},
		{"hardhat.config.ts", "hardhat.config.ts.tmpl"},
		{"tsconfig.json", "tsconfig.json.tmpl"},
		{"contracts/" + contract + ".sol", "contract.sol.tmpl"},
		{"test/" + contract + ".test.ts", "test.ts.tmpl"},
		{"deploy/deploy.ts", "deploy.ts.tmpl"},
		{"README.md", "readme.example.md.tmpl"},
		{".gitignore", "gitignore.tmpl"},
		{".env.example", "env.example.tmpl"},
	} {
		content, err := renderTemplate(entry.tmpl, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: entry.path, Content: content, Mode: 0644})
	}

	meta, err := marshalMetadata(metadata{
		Name:        cfg.Name,
		Title:       cfg.Title,
		Description: cfg.Description,
		Category:    cfg.Category,
		Author:      cfg.Author,
		CreatedAt:   cfg.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	files = append(files, File{Path: "fhevm-example.json", Content: meta, Mode: 0644})

	if err := files.Validate(); err != nil {
		return nil, err
	}
	return files, nil
}

// Category renders a multi-example project pre-populated with one stub
// contract and test per example listed in the category definition.
//
// Parameters:
//   - def: Category definition from the registry
//   - cfg: Project-level configuration (name, author, timestamps)
//
// Returns:
//   - FileSet: Ordered generated files
//   - error: Template rendering error if any
//
// Concurrency:
//   - Safe for concurrent use
func (r *Renderer) Category(def registry.CategoryDefinition, cfg config.ExampleConfig) (FileSet, error) {
	data, err := r.data(cfg)
	if err != nil {
		return nil, err
	}
	data.Category = def.Key
	data.CategoryTitle = def.Title
	data.Description = def.Description

	files := FileSet{}
	for _, entry := range []struct {
		path string
		tmpl string
	}{
		{"package.json", "package.json.tmpl"},
		{"hardhat.config.ts", "hardhat.config.ts.tmpl"},
		{"tsconfig.json", "tsconfig.json.tmpl"},
		{"README.md", "readme.category.md.tmpl"},
		{".gitignore", "gitignore.tmpl"},
		{".env.example", "env.example.tmpl"},
	} {
		content, err := renderTemplate(entry.tmpl, data)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Path: entry.path, Content: content, Mode: 0644})
	}

	// One stub contract and test per category example, sharing the
	// project-level hardhat config.
	for _, name := range def.Examples {
		exampleData := data
		exampleData.Name = name
		exampleData.Title = config.TitleCase(name)
		exampleData.ContractName = config.PascalCase(name)

		contract, err := renderTemplate("contract.sol.tmpl", exampleData)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:    "contracts/" + exampleData.ContractName + ".sol",
			Content: contract,
			Mode:    0644,
		})

		test, err := renderTemplate("test.ts.tmpl", exampleData)
		if err != nil {
			return nil, err
		}
		files = append(files, File{
			Path:    "test/" + exampleData.ContractName + ".test.ts",
			Content: test,
			Mode:    0644,
		})
	}

	meta, err := marshalMetadata(metadata{
		Name:        cfg.Name,
		Title:       def.Title,
		Description: def.Description,
		Category:    def.Key,
		Author:      cfg.Author,
		CreatedAt:   cfg.CreatedAt.UTC().Format(time.RFC3339),
		Examples:    def.Examples,
	})
	if err != nil {
		return nil, err
	}
	files = append(files, File{Path: "fhevm-example.json", Content: meta, Mode: 0644})

	if err := files.Validate(); err != nil {
		return nil, err
	}
	return files, nil
}

// data builds the template data for a config, resolving the category
// title from the registry and pre-marshaling the dependency pins.
func (r *Renderer) data(cfg config.ExampleConfig) (templateData, error) {
	categoryTitle := cfg.Category
	if def, ok := registry.ByKey(cfg.Category); ok {
		categoryTitle = def.Title
	}

	depsJSON, err := marshalDependencies(r.settings.Dependencies)
	if err != nil {
		return templateData{}, err
	}

	return templateData{
		Name:             cfg.Name,
		Title:            cfg.Title,
		Description:      cfg.Description,
		Category:         cfg.Category,
		CategoryTitle:    categoryTitle,
		Author:           cfg.Author,
		ContractName:     config.PascalCase(cfg.Name),
		SolidityVersion:  r.settings.SolidityVersion,
		DependenciesJSON: depsJSON,
	}, nil
}

// renderTemplate loads a template from the embedded filesystem and
// executes it with the sprig function map.
func renderTemplate(name string, data templateData) (string, error) {
	raw, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		return "", fmt.Errorf("failed to load template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return out.String(), nil
}

// marshalDependencies renders the managed dependency pins as an
// indented JSON object with deterministic key order.
func marshalDependencies(deps map[string]string) (string, error) {
	names := make([]string, 0, len(deps))
	for name := range deps {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("{\n")
	for i, name := range names {
		key, err := json.Marshal(name)
		if err != nil {
			return "", err
		}
		val, err := json.Marshal("^" + deps[name])
		if err != nil {
			return "", err
		}
		b.WriteString("    ")
		b.Write(key)
		b.WriteString(": ")
		b.Write(val)
		if i < len(names)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  }")
	return b.String(), nil
}

// marshalMetadata renders the fhevm-example.json descriptor with
// two-space indentation and a trailing newline.
func marshalMetadata(m metadata) (string, error) {
	out, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal project metadata: %w", err)
	}
	return string(out) + "\n", nil
}
