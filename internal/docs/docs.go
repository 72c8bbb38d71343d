// Package docs generates Markdown documentation from example trees.
//
// Overview:
//   - Responsibility: Build SUMMARY.md and per-category pages from descriptors
//   - Key Types: Generator, ExampleDoc
//   - Concurrency Model: Sequential scan and write
//   - Error Semantics: Unreadable descriptors are skipped with a warning
//   - Performance Notes: Single pass over the examples root
//
// Output is deterministic: categories appear in registry order and
// examples are sorted by name within each category. Docs regeneration
// intentionally overwrites previous output, unlike project scaffolding.
//
// Usage:
//
//	g := docs.NewGenerator("examples")
//	written, err := g.Generate("docs")
package docs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/fhevm-suite/fhegen/internal/registry"
	"github.com/fhevm-suite/fhegen/internal/ui"
)

// ExampleDoc is the subset of fhevm-example.json the docs pages use.
type ExampleDoc struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Author      string   `json:"author"`
	Examples    []string `json:"examples,omitempty"`
}

// frontmatter is the YAML header emitted at the top of each page.
type frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Examples    int    `yaml:"examples"`
}

// Generator scans an examples root and produces Markdown pages.
//
// Parameters:
//   - root: Examples root directory
//
// Concurrency:
//   - Single-threaded per run
type Generator struct {
	root string
}

// NewGenerator creates a docs generator for the given examples root.
func NewGenerator(root string) *Generator {
	return &Generator{root: root}
}

// Collect loads every readable descriptor directly under the root.
//
// Returns:
//   - []ExampleDoc: Parsed descriptors, sorted by name
//   - error: I/O error reading the root directory
//
// Concurrency:
//   - Single-threaded
func (g *Generator) Collect() ([]ExampleDoc, error) {
	entries, err := os.ReadDir(g.root)
	if err != nil {
		return nil, fmt.Errorf("failed to read examples root %s: %w", g.root, err)
	}

	var out []ExampleDoc
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		metaPath := filepath.Join(g.root, entry.Name(), "fhevm-example.json")
		raw, err := os.ReadFile(metaPath)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", metaPath, err)
		}

		var doc ExampleDoc
		if err := json.Unmarshal(raw, &doc); err != nil {
			ui.Warn("Skipping %s: invalid descriptor: %v", entry.Name(), err)
			continue
		}
		if doc.Name == "" {
			doc.Name = entry.Name()
		}
		out = append(out, doc)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Generate writes SUMMARY.md plus one page per non-empty category into
// outDir, creating it if needed and overwriting existing pages.
//
// Parameters:
//   - outDir: Output directory for generated pages
//
// Returns:
//   - int: Number of files written
//   - error: Scan or write error
//
// Concurrency:
//   - Single-threaded
func (g *Generator) Generate(outDir string) (int, error) {
	examples, err := g.Collect()
	if err != nil {
		return 0, err
	}

	byCategory := make(map[string][]ExampleDoc)
	for _, ex := range examples {
		byCategory[ex.Category] = append(byCategory[ex.Category], ex)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create docs directory %s: %w", outDir, err)
	}

	written := 0
	if err := g.writePage(filepath.Join(outDir, "SUMMARY.md"), g.summary(byCategory, len(examples))); err != nil {
		return written, err
	}
	written++

	for _, cat := range registry.Categories() {
		docs := byCategory[cat.Key]
		if len(docs) == 0 {
			continue
		}
		page, err := g.categoryPage(cat, docs)
		if err != nil {
			return written, err
		}
		if err := g.writePage(filepath.Join(outDir, cat.Key+".md"), page); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

// summary builds the top-level index page.
func (g *Generator) summary(byCategory map[string][]ExampleDoc, total int) string {
	var b strings.Builder
	b.WriteString("# FHEVM Examples\n\n")
	fmt.Fprintf(&b, "%d example projects across %d categories.\n\n", total, len(registry.Categories()))

	for _, cat := range registry.Categories() {
		docs := byCategory[cat.Key]
		fmt.Fprintf(&b, "- [%s](%s.md): %s (%d)\n", cat.Title, cat.Key, cat.Description, len(docs))
	}
	b.WriteString("\n")
	return b.String()
}

// categoryPage builds one category page with YAML frontmatter and an
// example table.
func (g *Generator) categoryPage(cat registry.CategoryDefinition, docs []ExampleDoc) (string, error) {
	fm, err := yaml.Marshal(frontmatter{
		Title:       cat.Title,
		Description: cat.Description,
		Examples:    len(docs),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal frontmatter for %s: %w", cat.Key, err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(fm)
	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", cat.Title, cat.Description)
	b.WriteString("| Example | Description |\n|---------|-------------|\n")
	for _, doc := range docs {
		title := doc.Title
		if title == "" {
			title = doc.Name
		}
		fmt.Fprintf(&b, "| [%s](../%s/%s) | %s |\n", title, g.root, doc.Name, doc.Description)
	}
	b.WriteString("\n")
	return b.String(), nil
}

// writePage writes one page and logs it.
func (g *Generator) writePage(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	ui.Step("%s", path)
	return nil
}
