package toolrunner

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

func TestGitInitInWorkDir(t *testing.T) {
	requireGit(t)

	dir := t.TempDir()
	runner := NewRunner(dir)

	if err := runner.Git(context.Background(), "init"); err != nil {
		t.Fatalf("git init failed: %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, ".git"))
	if err != nil {
		t.Fatalf("Expected .git in work dir: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected .git to be a directory")
	}
}

func TestGitFailureSurfacesError(t *testing.T) {
	requireGit(t)

	runner := NewRunner(t.TempDir())

	err := runner.Git(context.Background(), "no-such-subcommand")
	if err == nil {
		t.Fatal("Expected error for unknown git subcommand")
	}
}
