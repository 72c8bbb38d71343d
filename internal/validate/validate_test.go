package validate

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fhevm-suite/fhegen/internal/config"
	"github.com/fhevm-suite/fhegen/internal/render"
	"github.com/fhevm-suite/fhegen/internal/scaffold"
)

func scaffoldExample(t *testing.T, root, name string) {
	t.Helper()

	settings := &config.Settings{
		Author:          "tester",
		SolidityVersion: "0.8.27",
		Dependencies:    map[string]string{"hardhat": "2.25.0"},
	}
	cfg := config.ExampleConfig{
		Name:        name,
		Title:       config.TitleCase(name),
		Description: "FHEVM example demonstrating privacy-preserving features",
		Category:    "basic",
		Author:      "tester",
		CreatedAt:   time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC),
	}

	files, err := render.NewRenderer(settings).Example(cfg)
	if err != nil {
		t.Fatalf("Failed to render example: %v", err)
	}
	if err := scaffold.NewMaterializer().Materialize(filepath.Join(root, name), files); err != nil {
		t.Fatalf("Failed to materialize example: %v", err)
	}
}

func TestTreeAcceptsGeneratedExample(t *testing.T) {
	root := t.TempDir()
	scaffoldExample(t, root, "fhe-counter")

	diags, err := NewValidator().Tree(root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diags.HasErrors() {
		t.Fatalf("Generated example should validate cleanly, got: %+v", diags.Items())
	}
}

func TestTreeReportsMissingFiles(t *testing.T) {
	root := t.TempDir()
	scaffoldExample(t, root, "fhe-counter")

	if err := os.Remove(filepath.Join(root, "fhe-counter", "hardhat.config.ts")); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}

	diags, err := NewValidator().Tree(root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !diags.HasErrors() {
		t.Fatal("Expected errors for missing hardhat.config.ts")
	}

	found := false
	for _, d := range diags.Items() {
		if d.Severity == SeverityError && filepath.Base(d.Path) == "hardhat.config.ts" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected a diagnostic for the missing file, got: %+v", diags.Items())
	}
}

func TestTreeReportsMissingContract(t *testing.T) {
	root := t.TempDir()
	scaffoldExample(t, root, "fhe-counter")

	if err := os.RemoveAll(filepath.Join(root, "fhe-counter", "contracts")); err != nil {
		t.Fatalf("Failed to remove contracts: %v", err)
	}

	diags, err := NewValidator().Tree(root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !diags.HasErrors() {
		t.Fatal("Expected errors for missing contracts directory")
	}
}

func TestTreeReportsInvalidMetadata(t *testing.T) {
	root := t.TempDir()
	scaffoldExample(t, root, "fhe-counter")

	badMeta := `{
  "name": "fhe-counter",
  "title": "Fhe Counter",
  "description": "demo",
  "category": "not-a-category",
  "author": "tester",
  "createdAt": "2026-01-15T12:00:00Z"
}
`
	metaPath := filepath.Join(root, "fhe-counter", "fhevm-example.json")
	if err := os.WriteFile(metaPath, []byte(badMeta), 0644); err != nil {
		t.Fatalf("Failed to write metadata: %v", err)
	}

	diags, err := NewValidator().Tree(root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !diags.HasErrors() {
		t.Fatal("Expected schema error for unknown category")
	}
}

func TestTreeWarnsOnNameMismatch(t *testing.T) {
	root := t.TempDir()
	scaffoldExample(t, root, "fhe-counter")

	meta := `{
  "name": "other-name",
  "title": "Fhe Counter",
  "description": "demo",
  "category": "basic",
  "author": "tester",
  "createdAt": "2026-01-15T12:00:00Z"
}
`
	metaPath := filepath.Join(root, "fhe-counter", "fhevm-example.json")
	if err := os.WriteFile(metaPath, []byte(meta), 0644); err != nil {
		t.Fatalf("Failed to write metadata: %v", err)
	}

	diags, err := NewValidator().Tree(root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if diags.HasErrors() {
		t.Fatalf("Name mismatch should be a warning, got errors: %+v", diags.Items())
	}

	warned := false
	for _, d := range diags.Items() {
		if d.Severity == SeverityWarning {
			warned = true
		}
	}
	if !warned {
		t.Error("Expected a warning for descriptor/directory name mismatch")
	}
}

func TestTreeReportsNonKebabDirectory(t *testing.T) {
	root := t.TempDir()
	scaffoldExample(t, root, "fhe-counter")

	// Rename to a non-kebab directory name.
	if err := os.Rename(filepath.Join(root, "fhe-counter"), filepath.Join(root, "FheCounter")); err != nil {
		t.Fatalf("Failed to rename: %v", err)
	}

	diags, err := NewValidator().Tree(root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !diags.HasErrors() {
		t.Fatal("Expected error for non-kebab-case directory name")
	}
}
