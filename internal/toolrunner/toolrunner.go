// Package toolrunner provides execution of external tools and commands.
//
// Overview:
//   - Responsibility: Execute npm and git commands for generated projects
//   - Key Types: Runner, CommandResult
//   - Concurrency Model: Sequential command execution with context support
//   - Error Semantics: Non-zero exits surface as errors with captured stderr
//   - Performance Notes: Output captured in memory, streamed when verbose
//
// Usage:
//
//	runner := toolrunner.NewRunner(projectDir)
//	err := runner.Npm(ctx, "install")
package toolrunner

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/fhevm-suite/fhegen/internal/ui"
)

// Runner provides execution of external tools.
//
// Parameters:
//   - workDir: Working directory for commands
//   - verbose: Whether to stream command output
//
// Concurrency:
//   - Safe for concurrent use
type Runner struct {
	workDir string
	verbose bool
}

// CommandResult represents the result of a command execution.
//
// Parameters:
//   - ExitCode: Process exit code
//   - Stdout: Standard output content
//   - Stderr: Standard error content
//   - Duration: Command execution time
//
// Concurrency:
//   - Immutable after creation
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewRunner creates a new tool runner.
//
// Parameters:
//   - workDir: Working directory for commands
//
// Returns:
//   - *Runner: Tool runner instance
//
// Concurrency:
//   - Safe for concurrent use
func NewRunner(workDir string) *Runner {
	return &Runner{workDir: workDir}
}

// SetVerbose enables or disables command output streaming.
func (r *Runner) SetVerbose(enabled bool) {
	r.verbose = enabled
}

// execute runs a command and returns the result.
//
// Parameters:
//   - ctx: Context for cancellation
//   - name: Command name
//   - args: Command arguments
//
// Returns:
//   - *CommandResult: Command execution result
//   - error: Start or wait error, including non-zero exits
//
// Concurrency:
//   - Single-threaded per command
func (r *Runner) execute(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	if r.verbose {
		ui.Debug("Running: %s %s", name, strings.Join(args, " "))
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	} else {
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
	}

	err := cmd.Run()
	result := &CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		result.ExitCode = cmd.ProcessState.ExitCode()
	}

	if err != nil {
		if result.Stderr != "" {
			return result, fmt.Errorf("%s failed: %w\n%s", name, err, result.Stderr)
		}
		return result, fmt.Errorf("%s failed: %w", name, err)
	}
	return result, nil
}

// Npm runs an npm command in the runner's working directory.
//
// Parameters:
//   - ctx: Context for cancellation
//   - args: npm arguments (e.g., "install")
//
// Returns:
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded per command
func (r *Runner) Npm(ctx context.Context, args ...string) error {
	_, err := r.execute(ctx, "npm", args...)
	return err
}

// Git runs a git command in the runner's working directory.
//
// Parameters:
//   - ctx: Context for cancellation
//   - args: git arguments (e.g., "init")
//
// Returns:
//   - error: Execution error if any
//
// Concurrency:
//   - Single-threaded per command
func (r *Runner) Git(ctx context.Context, args ...string) error {
	_, err := r.execute(ctx, "git", args...)
	return err
}
