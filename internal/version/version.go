// Package version provides version information for the fhegen CLI.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Immutable values, safe for concurrent use
//   - Error Semantics: No errors (all constants)
//   - Performance Notes: Zero-cost variables
//
// Usage:
//
//	import "github.com/fhevm-suite/fhegen/internal/version"
//	version.String()
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version.
// This value is set by the release workflow during release builds.
var Version = "v0.2.0"

// Commit is the git commit hash.
// This value is set by the release workflow during release builds.
var Commit = "dev"

// BuildTime is the build timestamp in RFC3339 format.
// This value is set by the release workflow during release builds.
var BuildTime = "unknown"

// String returns the single-line version string in the format:
// fhegen version v0.2.0 (commit 4a9b2c1, built 2025-10-31T12:10:00Z)
//
// Returns:
//   - string: Formatted version string
//
// Concurrency:
//   - Safe for concurrent use
func String() string {
	return fmt.Sprintf("fhegen version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// Full returns detailed multi-line version information including the
// Go runtime and platform.
//
// Returns:
//   - string: Multi-line version information
//
// Concurrency:
//   - Safe for concurrent use
func Full() string {
	return fmt.Sprintf("%s\n  go: %s\n  platform: %s/%s",
		String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
