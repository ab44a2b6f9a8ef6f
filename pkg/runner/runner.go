package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Command describes one external process invocation.
type Command struct {
	// Name is the program to run, resolved via PATH.
	Name string
	// Args are the program arguments.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Env holds extra KEY=VALUE pairs appended to the current environment.
	Env []string
	// Stdin is an optional reader piped to the process's standard input.
	Stdin io.Reader
}

// String renders the command as a shell-like line for messages and logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// CommandResult captures the stdout and stderr collected during a command
// execution. Both fields contain the complete output, including any output
// produced before an error occurred.
type CommandResult struct {
	Stdout string
	Stderr string
}

// CommandRunner executes external commands while capturing their output.
// Implementations should display output to stdout/stderr in real-time while
// also capturing it for programmatic access via CommandResult.
type CommandRunner interface {
	Run(ctx context.Context, command Command) (CommandResult, error)
}

// ExecCommandRunner executes OS processes with console output.
// This runner displays command output to stdout/stderr in real-time while
// also capturing it for the result.
type ExecCommandRunner struct {
	stdout io.Writer
	stderr io.Writer
	logger logrus.FieldLogger
}

// NewExecCommandRunner creates a command runner backed by os/exec.
// It displays output to stdout/stderr in real-time (like running the tool
// directly) while also capturing output for programmatic use.
//
// If stdout or stderr are nil, they default to os.Stdout and os.Stderr.
// If logger is nil, the standard logrus logger is used.
func NewExecCommandRunner(stdout, stderr io.Writer, logger logrus.FieldLogger) *ExecCommandRunner {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &ExecCommandRunner{
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

// Run executes a command and displays output in real-time to the console.
// The process's output streams write to both capture buffers and the
// configured stdout/stderr writers.
//
// Returns the captured output and any error from command execution. The
// error preserves the underlying tool's diagnostics; no summarization is
// applied.
func (r *ExecCommandRunner) Run(ctx context.Context, command Command) (CommandResult, error) {
	var outBuf, errBuf bytes.Buffer

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Dir = command.Dir
	cmd.Env = append(os.Environ(), command.Env...)
	cmd.Stdin = command.Stdin

	// Use io.MultiWriter to display AND capture output.
	cmd.Stdout = io.MultiWriter(&outBuf, r.stdout)
	cmd.Stderr = io.MultiWriter(&errBuf, r.stderr)

	entry := r.logger.WithFields(logrus.Fields{
		"command": command.String(),
		"dir":     command.Dir,
	})
	entry.Debug("running command")

	start := time.Now()

	execErr := cmd.Run()

	entry.WithField("duration", time.Since(start).String()).
		Debug("command finished")

	result := CommandResult{
		Stdout: outBuf.String(),
		Stderr: errBuf.String(),
	}

	if execErr != nil {
		return result, fmt.Errorf("command %q failed: %w", command.String(), execErr)
	}

	return result, nil
}
