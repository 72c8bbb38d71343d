package deps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const samplePackageJSON = `{
  "name": "demo-app",
  "version": "1.0.0",
  "devDependencies": {
    "@fhevm/solidity": "^0.6.0",
    "hardhat": "^2.25.0",
    "typescript": "~5.7.2",
    "chai": "^4.3.7"
  }
}
`

func writeProject(t *testing.T, root, name, pkg string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create project dir: %v", err)
	}
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(pkg), 0644); err != nil {
		t.Fatalf("Failed to write package.json: %v", err)
	}
	return path
}

func TestUpdateFile(t *testing.T) {
	root := t.TempDir()
	path := writeProject(t, root, "demo-app", samplePackageJSON)

	u := NewUpdater(map[string]string{
		"@fhevm/solidity": "0.7.0",
		"hardhat":         "2.25.0",
		"typescript":      "5.8.3",
	})

	updates, err := u.UpdateFile(path, "demo-app")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// hardhat is already at target, the other two are behind.
	if len(updates) != 2 {
		t.Fatalf("Expected 2 updates, got %d: %+v", len(updates), updates)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back package.json: %v", err)
	}
	content := string(raw)

	if !strings.Contains(content, `"@fhevm/solidity": "^0.7.0"`) {
		t.Errorf("Expected caret prefix preserved on bump:\n%s", content)
	}
	if !strings.Contains(content, `"typescript": "~5.8.3"`) {
		t.Errorf("Expected tilde prefix preserved on bump:\n%s", content)
	}
	if !strings.Contains(content, `"hardhat": "^2.25.0"`) {
		t.Errorf("Expected up-to-date pin untouched:\n%s", content)
	}
	if !strings.Contains(content, `"chai": "^4.3.7"`) {
		t.Errorf("Expected unmanaged pin untouched:\n%s", content)
	}
	// Formatting survives the rewrite.
	if !strings.Contains(content, "  \"devDependencies\": {\n") {
		t.Errorf("Expected original indentation preserved:\n%s", content)
	}
}

func TestUpdateFileNeverDowngrades(t *testing.T) {
	root := t.TempDir()
	path := writeProject(t, root, "demo-app", samplePackageJSON)

	u := NewUpdater(map[string]string{"hardhat": "2.20.0"})

	updates, err := u.UpdateFile(path, "demo-app")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("Expected no downgrade, got %+v", updates)
	}
}

func TestUpdateTreeDryRun(t *testing.T) {
	root := t.TempDir()
	writeProject(t, root, "demo-app", samplePackageJSON)
	writeProject(t, root, "other-app", samplePackageJSON)

	// Non-project entries are skipped.
	if err := os.MkdirAll(filepath.Join(root, "not-a-project"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	u := NewUpdater(map[string]string{"@fhevm/solidity": "0.7.0"})
	u.SetDryRun(true)

	report, err := u.UpdateTree(root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if report.Projects != 2 {
		t.Errorf("Expected 2 projects scanned, got %d", report.Projects)
	}
	if len(report.Updates) != 2 {
		t.Errorf("Expected 2 planned updates, got %d", len(report.Updates))
	}
	if !report.Outdated {
		t.Error("Expected report to flag outdated pins")
	}

	// Dry run must not touch the files.
	raw, err := os.ReadFile(filepath.Join(root, "demo-app", "package.json"))
	if err != nil {
		t.Fatalf("Failed to read package.json: %v", err)
	}
	if string(raw) != samplePackageJSON {
		t.Error("Dry run modified package.json")
	}
}

func TestUpdateFileSkipsUnparsablePins(t *testing.T) {
	root := t.TempDir()
	pkg := `{
  "devDependencies": {
    "hardhat": "workspace:*"
  }
}
`
	path := writeProject(t, root, "demo-app", pkg)

	u := NewUpdater(map[string]string{"hardhat": "2.25.0"})
	updates, err := u.UpdateFile(path, "demo-app")
	if err != nil {
		t.Fatalf("Expected unparsable pin to be skipped, got error: %v", err)
	}
	if len(updates) != 0 {
		t.Errorf("Expected no updates for unparsable pin, got %+v", updates)
	}
}
