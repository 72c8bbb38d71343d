// Package scaffold materializes rendered file sets onto the filesystem.
//
// Overview:
//   - Responsibility: Create the target directory tree and persist rendered files
//   - Key Types: Materializer
//   - Concurrency Model: Sequential file operations per invocation
//   - Error Semantics: Destination-exists is pre-checked; I/O errors abort remaining writes
//   - Performance Notes: One write per file, manifest order preserved
//
// The destination must not exist before Materialize runs; this is the
// only overwrite protection, and partially written trees are not rolled
// back on a mid-flight I/O failure.
//
// Usage:
//
//	m := scaffold.NewMaterializer()
//	err := m.Materialize("fhe-counter", files)
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fhevm-suite/fhegen/internal/render"
	"github.com/fhevm-suite/fhegen/internal/ui"
)

// ErrDestinationExists is returned when the target root directory is
// already present. No writes have been performed when it is returned.
var ErrDestinationExists = errors.New("destination already exists")

// Materializer writes rendered file sets to disk.
//
// Parameters:
//   - verbose: Whether to log each created directory and file
//
// Concurrency:
//   - Single-threaded per invocation
type Materializer struct {
	verbose bool
}

// NewMaterializer creates a new materializer.
func NewMaterializer() *Materializer {
	return &Materializer{}
}

// SetVerbose enables or disables per-operation debug output.
func (m *Materializer) SetVerbose(enabled bool) {
	m.verbose = enabled
}

// Materialize creates root and writes every file in the set, in
// manifest order.
//
// Parameters:
//   - root: Target root directory; must not exist yet
//   - files: Rendered file set; must contain no duplicate paths
//
// Returns:
//   - error: ErrDestinationExists before any write, validation error for
//     a malformed set, or the first I/O error encountered
//
// Concurrency:
//   - Single-threaded
func (m *Materializer) Materialize(root string, files render.FileSet) error {
	// Pre-checks run before the first write so a failure here leaves
	// the filesystem untouched.
	if _, err := os.Stat(root); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, root)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to check destination %s: %w", root, err)
	}

	if err := files.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(root, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", root, err)
	}
	if m.verbose {
		ui.Debug("Created directory: %s", root)
	}

	for _, f := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(f.Path))

		parentDir := filepath.Dir(fullPath)
		if err := os.MkdirAll(parentDir, 0755); err != nil {
			return fmt.Errorf("failed to create parent directory for %s: %w", f.Path, err)
		}

		mode := f.Mode
		if mode == 0 {
			mode = 0644
		}
		if err := os.WriteFile(fullPath, []byte(f.Content), mode); err != nil {
			return fmt.Errorf("failed to write file %s: %w", f.Path, err)
		}
		ui.Step("%s", filepath.Join(root, f.Path))
	}

	return nil
}

// DirectoryExists reports whether path exists and is a directory.
//
// Parameters:
//   - path: Directory path
//
// Returns:
//   - bool: True if the path is an existing directory
//   - error: File system error other than not-exist
//
// Concurrency:
//   - Safe for concurrent use
func DirectoryExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err == nil {
		return info.IsDir(), nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
