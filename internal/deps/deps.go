// Package deps updates pinned dependency versions across example projects.
//
// Overview:
//   - Responsibility: Bump managed package pins in example package.json files
//   - Key Types: Updater, Update, Report
//   - Concurrency Model: Sequential file processing
//   - Error Semantics: Malformed versions are skipped with a warning, I/O errors abort
//   - Performance Notes: In-place string rewriting preserves file formatting
//
// Version edits are targeted string replacements rather than JSON
// re-marshaling so key order and indentation of the original
// package.json survive the update.
//
// Usage:
//
//	u := deps.NewUpdater(settings.Dependencies)
//	report, err := u.UpdateTree("examples")
package deps

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/fhevm-suite/fhegen/internal/ui"
)

// Update records one applied (or planned) version bump.
type Update struct {
	Project string
	Package string
	From    string
	To      string
}

// Report summarizes an update run.
//
// Parameters:
//   - Projects: Number of projects with a package.json that were scanned
//   - Updates: Version bumps applied, or planned in dry-run mode
//   - Outdated: True when at least one pin was behind its target
//
// Concurrency:
//   - Immutable after the run
type Report struct {
	Projects int
	Updates  []Update
	Outdated bool
}

// Updater rewrites managed dependency pins.
//
// Parameters:
//   - targets: Managed package name -> target version (no range prefix)
//   - dryRun: Report changes without writing files
//
// Concurrency:
//   - Single-threaded per run
type Updater struct {
	targets map[string]string
	dryRun  bool
}

// NewUpdater creates an updater for the given target pins.
func NewUpdater(targets map[string]string) *Updater {
	return &Updater{targets: targets}
}

// SetDryRun enables or disables dry-run mode.
func (u *Updater) SetDryRun(enabled bool) {
	u.dryRun = enabled
}

// UpdateTree scans the immediate subdirectories of root for
// package.json files and updates each one.
//
// Parameters:
//   - root: Examples root directory
//
// Returns:
//   - *Report: Scan and update summary
//   - error: I/O error reading the tree or writing a file
//
// Concurrency:
//   - Single-threaded
func (u *Updater) UpdateTree(root string) (*Report, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read examples root %s: %w", root, err)
	}

	report := &Report{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		pkgPath := filepath.Join(root, entry.Name(), "package.json")
		if _, err := os.Stat(pkgPath); err != nil {
			continue
		}

		report.Projects++
		updates, err := u.UpdateFile(pkgPath, entry.Name())
		if err != nil {
			return nil, err
		}
		report.Updates = append(report.Updates, updates...)
	}

	report.Outdated = len(report.Updates) > 0
	return report, nil
}

// UpdateFile rewrites outdated managed pins in a single package.json.
//
// Parameters:
//   - path: Path to the package.json file
//   - project: Project name used in the report
//
// Returns:
//   - []Update: Bumps applied (or planned in dry-run mode)
//   - error: I/O error if any
//
// Concurrency:
//   - Single-threaded per file
func (u *Updater) UpdateFile(path, project string) ([]Update, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	content := string(raw)
	var updates []Update

	for _, pkg := range u.sortedTargets() {
		target := u.targets[pkg]

		re, err := pinPattern(pkg)
		if err != nil {
			return nil, err
		}
		match := re.FindStringSubmatch(content)
		if match == nil {
			continue
		}

		current := match[2]
		newer, err := isNewer(current, target)
		if err != nil {
			ui.Warn("%s: cannot parse version %q for %s, skipping", project, current, pkg)
			continue
		}
		if !newer {
			continue
		}

		replacement := match[1] + rangePrefix(current) + target + match[3]
		content = re.ReplaceAllLiteralString(content, replacement)
		updates = append(updates, Update{Project: project, Package: pkg, From: current, To: target})
	}

	if len(updates) == 0 || u.dryRun {
		return updates, nil
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return updates, nil
}

// sortedTargets returns managed package names in deterministic order.
func (u *Updater) sortedTargets() []string {
	names := make([]string, 0, len(u.targets))
	for name := range u.targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pinPattern matches `"pkg": "<version>"` with the version captured.
func pinPattern(pkg string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`("` + regexp.QuoteMeta(pkg) + `"\s*:\s*")([^"]+)(")`)
	if err != nil {
		return nil, fmt.Errorf("failed to build pattern for %s: %w", pkg, err)
	}
	return re, nil
}

// isNewer reports whether target is strictly newer than the currently
// pinned version. Range prefixes (^, ~) and a leading "v" are
// tolerated on the current pin.
func isNewer(current, target string) (bool, error) {
	cv, err := semver.NewVersion(strings.TrimPrefix(bareVersion(current), "v"))
	if err != nil {
		return false, fmt.Errorf("parsing current version %q: %w", current, err)
	}
	tv, err := semver.NewVersion(strings.TrimPrefix(target, "v"))
	if err != nil {
		return false, fmt.Errorf("parsing target version %q: %w", target, err)
	}
	return tv.GreaterThan(cv), nil
}

// bareVersion strips a leading range operator from a version pin.
func bareVersion(pin string) string {
	return strings.TrimLeft(pin, "^~")
}

// rangePrefix returns the range operator of the original pin so the
// rewritten pin keeps the same range semantics.
func rangePrefix(pin string) string {
	switch {
	case strings.HasPrefix(pin, "^"):
		return "^"
	case strings.HasPrefix(pin, "~"):
		return "~"
	default:
		return ""
	}
}
