// Package validate checks example project trees for structural problems.
//
// Overview:
//   - Responsibility: Validate example structure and fhevm-example.json metadata
//   - Key Types: Validator, Diagnostic, Diagnostics
//   - Concurrency Model: Sequential validation per project
//   - Error Semantics: Rule failures become diagnostics; only I/O and schema compilation fail hard
//   - Performance Notes: Schema compiled once per process
//
// Usage:
//
//	v := validate.NewValidator()
//	diags, err := v.Tree("examples")
//	if diags.HasErrors() { ... }
package validate

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer localizes schema validation messages.
var printer = message.NewPrinter(language.English)

//go:embed schema/example-metadata.schema.json
var schemaFS embed.FS

// Severity is the level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic represents a single validation issue.
//
// Parameters:
//   - Severity: Error or warning
//   - Path: Offending file or directory, relative to the examples root
//   - Message: Human-readable description
//   - Suggestion: Fix suggestion, empty when none applies
//
// Concurrency:
//   - Immutable after creation
type Diagnostic struct {
	Severity   Severity
	Path       string
	Message    string
	Suggestion string
}

// Diagnostics accumulates validation issues across a run.
type Diagnostics struct {
	items []Diagnostic
}

// Add appends a diagnostic.
func (d *Diagnostics) Add(severity Severity, path, message, suggestion string) {
	d.items = append(d.items, Diagnostic{
		Severity:   severity,
		Path:       path,
		Message:    message,
		Suggestion: suggestion,
	})
}

// HasErrors reports whether any error-level diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	for _, item := range d.items {
		if item.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Items returns all recorded diagnostics in insertion order.
func (d *Diagnostics) Items() []Diagnostic {
	return d.items
}

// requiredFiles are paths every generated example must contain.
var requiredFiles = []string{
	"package.json",
	"hardhat.config.ts",
	"README.md",
	"fhevm-example.json",
}

var kebabRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// metadataSchema compiles the embedded descriptor schema once.
func metadataSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schema/example-metadata.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("failed to load embedded schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
		if err != nil {
			compileErr = fmt.Errorf("failed to unmarshal schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("example-metadata.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("example-metadata.schema.json")
	})
	return compiledSchema, compileErr
}

// Validator validates example project trees.
//
// Concurrency:
//   - Safe for concurrent use (stateless)
type Validator struct{}

// NewValidator creates a new validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Tree validates every example directory directly under root.
//
// Parameters:
//   - root: Examples root directory
//
// Returns:
//   - *Diagnostics: Accumulated issues across all examples
//   - error: I/O error reading the tree, or schema compilation failure
//
// Concurrency:
//   - Single-threaded
func (v *Validator) Tree(root string) (*Diagnostics, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read examples root %s: %w", root, err)
	}

	diags := &Diagnostics{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := v.example(root, entry.Name(), diags); err != nil {
			return nil, err
		}
	}
	return diags, nil
}

// Example validates a single example directory.
//
// Parameters:
//   - dir: Path to the example directory
//
// Returns:
//   - *Diagnostics: Accumulated issues
//   - error: I/O error or schema compilation failure
//
// Concurrency:
//   - Single-threaded
func (v *Validator) Example(dir string) (*Diagnostics, error) {
	diags := &Diagnostics{}
	if err := v.example(filepath.Dir(dir), filepath.Base(dir), diags); err != nil {
		return nil, err
	}
	return diags, nil
}

// example runs all rules for one example directory, appending findings
// to diags.
func (v *Validator) example(root, name string, diags *Diagnostics) error {
	dir := filepath.Join(root, name)

	if !kebabRe.MatchString(name) {
		diags.Add(SeverityError, name,
			"directory name is not kebab-case",
			"rename to lowercase letters, digits, and hyphens")
	}

	for _, file := range requiredFiles {
		if _, err := os.Stat(filepath.Join(dir, file)); os.IsNotExist(err) {
			diags.Add(SeverityError, filepath.Join(name, file),
				"required file is missing",
				"re-run `fhegen create example` or restore the file")
		} else if err != nil {
			return fmt.Errorf("failed to stat %s: %w", filepath.Join(dir, file), err)
		}
	}

	if err := v.checkContracts(dir, name, diags); err != nil {
		return err
	}
	if err := v.checkTests(dir, name, diags); err != nil {
		return err
	}
	return v.checkMetadata(dir, name, diags)
}

// checkContracts requires at least one .sol file under contracts/.
func (v *Validator) checkContracts(dir, name string, diags *Diagnostics) error {
	entries, err := os.ReadDir(filepath.Join(dir, "contracts"))
	if os.IsNotExist(err) {
		diags.Add(SeverityError, filepath.Join(name, "contracts"),
			"contracts directory is missing", "")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read contracts dir for %s: %w", name, err)
	}

	for _, entry := range entries {
		if strings.HasSuffix(entry.Name(), ".sol") {
			return nil
		}
	}
	diags.Add(SeverityError, filepath.Join(name, "contracts"),
		"no Solidity contract found", "add at least one .sol file")
	return nil
}

// checkTests warns when the test directory is missing or empty.
// Examples without tests are accepted but flagged.
func (v *Validator) checkTests(dir, name string, diags *Diagnostics) error {
	entries, err := os.ReadDir(filepath.Join(dir, "test"))
	if os.IsNotExist(err) {
		diags.Add(SeverityWarning, filepath.Join(name, "test"),
			"test directory is missing", "add Hardhat tests under test/")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read test dir for %s: %w", name, err)
	}

	if len(entries) == 0 {
		diags.Add(SeverityWarning, filepath.Join(name, "test"),
			"test directory is empty", "add Hardhat tests under test/")
	}
	return nil
}

// checkMetadata validates fhevm-example.json against the embedded
// schema and cross-checks the name field with the directory name.
func (v *Validator) checkMetadata(dir, name string, diags *Diagnostics) error {
	metaPath := filepath.Join(dir, "fhevm-example.json")
	raw, err := os.ReadFile(metaPath)
	if os.IsNotExist(err) {
		// Already reported as a missing required file.
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", metaPath, err)
	}

	schema, err := metadataSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		diags.Add(SeverityError, filepath.Join(name, "fhevm-example.json"),
			fmt.Sprintf("not valid JSON: %v", err), "regenerate the descriptor")
		return nil
	}

	if err := schema.Validate(inst); err != nil {
		var verr *jsonschema.ValidationError
		if ok := asValidationError(err, &verr); ok {
			for _, cause := range flatten(verr) {
				diags.Add(SeverityError,
					filepath.Join(name, "fhevm-example.json"),
					cause, "")
			}
		} else {
			diags.Add(SeverityError, filepath.Join(name, "fhevm-example.json"),
				err.Error(), "")
		}
		return nil
	}

	if obj, ok := inst.(map[string]interface{}); ok {
		if metaName, ok := obj["name"].(string); ok && metaName != name {
			diags.Add(SeverityWarning, filepath.Join(name, "fhevm-example.json"),
				fmt.Sprintf("descriptor name %q does not match directory %q", metaName, name),
				"update the descriptor or rename the directory")
		}
	}
	return nil
}

// asValidationError unwraps a jsonschema validation error.
func asValidationError(err error, target **jsonschema.ValidationError) bool {
	verr, ok := err.(*jsonschema.ValidationError)
	if ok {
		*target = verr
	}
	return ok
}

// flatten collects leaf causes of a validation error as display strings.
func flatten(verr *jsonschema.ValidationError) []string {
	if len(verr.Causes) == 0 {
		loc := "/" + strings.Join(verr.InstanceLocation, "/")
		msg := "invalid"
		if verr.ErrorKind != nil {
			msg = verr.ErrorKind.LocalizedString(printer)
		}
		return []string{fmt.Sprintf("%s: %s", loc, msg)}
	}
	var out []string
	for _, cause := range verr.Causes {
		out = append(out, flatten(cause)...)
	}
	return out
}
