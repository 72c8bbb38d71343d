package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDescriptor(t *testing.T, root, name, category, title string) {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create example dir: %v", err)
	}
	meta := `{
  "name": "` + name + `",
  "title": "` + title + `",
  "description": "demo description",
  "category": "` + category + `",
  "author": "tester",
  "createdAt": "2026-01-15T12:00:00Z"
}
`
	if err := os.WriteFile(filepath.Join(dir, "fhevm-example.json"), []byte(meta), 0644); err != nil {
		t.Fatalf("Failed to write descriptor: %v", err)
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "fhe-counter", "basic", "Fhe Counter")
	writeDescriptor(t, root, "acl-basics", "access-control", "ACL Basics")

	// Directories without descriptors are skipped.
	if err := os.MkdirAll(filepath.Join(root, "scratch"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	examples, err := NewGenerator(root).Collect()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(examples) != 2 {
		t.Fatalf("Expected 2 examples, got %d", len(examples))
	}
	// Sorted by name.
	if examples[0].Name != "acl-basics" || examples[1].Name != "fhe-counter" {
		t.Errorf("Expected sorted order, got %q, %q", examples[0].Name, examples[1].Name)
	}
}

func TestGenerate(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "fhe-counter", "basic", "Fhe Counter")
	writeDescriptor(t, root, "fhe-add", "basic", "Fhe Add")
	writeDescriptor(t, root, "acl-basics", "access-control", "ACL Basics")

	outDir := filepath.Join(t.TempDir(), "docs")
	written, err := NewGenerator(root).Generate(outDir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// SUMMARY plus two non-empty category pages.
	if written != 3 {
		t.Errorf("Expected 3 pages written, got %d", written)
	}

	summary, err := os.ReadFile(filepath.Join(outDir, "SUMMARY.md"))
	if err != nil {
		t.Fatalf("Expected SUMMARY.md: %v", err)
	}
	if !strings.Contains(string(summary), "[Basic Operations](basic.md)") {
		t.Errorf("SUMMARY.md missing category link:\n%s", summary)
	}
	if !strings.Contains(string(summary), "3 example projects") {
		t.Errorf("SUMMARY.md missing project count:\n%s", summary)
	}

	basic, err := os.ReadFile(filepath.Join(outDir, "basic.md"))
	if err != nil {
		t.Fatalf("Expected basic.md: %v", err)
	}
	content := string(basic)
	if !strings.HasPrefix(content, "---\n") {
		t.Errorf("Expected YAML frontmatter:\n%s", content)
	}
	if !strings.Contains(content, "Fhe Counter") || !strings.Contains(content, "Fhe Add") {
		t.Errorf("Category page missing examples:\n%s", content)
	}
	// fhe-add sorts before fhe-counter.
	if strings.Index(content, "Fhe Add") > strings.Index(content, "Fhe Counter") {
		t.Errorf("Expected examples sorted by name:\n%s", content)
	}

	// Empty categories get no page.
	if _, err := os.Stat(filepath.Join(outDir, "relayer.md")); !os.IsNotExist(err) {
		t.Error("Expected no page for empty category")
	}
}

func TestGenerateOverwritesExistingPages(t *testing.T) {
	root := t.TempDir()
	writeDescriptor(t, root, "fhe-counter", "basic", "Fhe Counter")

	outDir := filepath.Join(t.TempDir(), "docs")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		t.Fatalf("Failed to create docs dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "SUMMARY.md"), []byte("stale"), 0644); err != nil {
		t.Fatalf("Failed to write stale page: %v", err)
	}

	if _, err := NewGenerator(root).Generate(outDir); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	summary, err := os.ReadFile(filepath.Join(outDir, "SUMMARY.md"))
	if err != nil {
		t.Fatalf("Failed to read SUMMARY.md: %v", err)
	}
	if string(summary) == "stale" {
		t.Error("Expected SUMMARY.md to be regenerated")
	}
}
