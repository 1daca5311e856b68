// Package launcher runs the external executables of a vendor toolchain and
// maps their failures to build errors.
package launcher

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrToolNotFound is returned when the executable is not on $PATH.
var ErrToolNotFound = errors.New("tool not found")

// BuildToolError is returned when a tool ran and exited with a non-zero
// status.
type BuildToolError struct {
	// Message is the fixed, human readable description of the failed step.
	Message string
	// Command and Args are what was run.
	Command string
	Args    []string
	// ExitCode of the tool.
	ExitCode int
	// Output is the combined stdout and stderr of the tool.
	Output []byte
}

func (e *BuildToolError) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	fmt.Fprintf(&b, ": %v exited with status %d", e.Command, e.ExitCode)
	if out := strings.TrimSpace(string(e.Output)); out != "" {
		b.WriteString(":\n")
		b.WriteString(out)
	}
	return b.String()
}

// Launcher runs one tool invocation.
type Launcher struct {
	// Command is the executable, looked up in $PATH if it has no slash.
	Command string
	Args    []string
	// Dir is the working directory of the tool.
	Dir string
	// ErrorMessage is carried by the BuildToolError on failure.
	ErrorMessage string
	// Output receives the tool diagnostics as they are produced. Defaults
	// to os.Stdout.
	Output io.Writer
	Logger *slog.Logger
}

// New creates a Launcher.
func New(command string, args []string, dir, errorMessage string) *Launcher {
	return &Launcher{
		Command:      command,
		Args:         args,
		Dir:          dir,
		ErrorMessage: errorMessage,
	}
}

// Run starts the tool and blocks until it exits. There is no timeout: vendor
// tools may legitimately run for hours.
func (l *Launcher) Run(ctx context.Context) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}
	out := l.Output
	if out == nil {
		out = os.Stdout
	}

	path, err := exec.LookPath(l.Command)
	if err != nil {
		return fmt.Errorf("command %q not found, make sure it is in $PATH: %w", l.Command, ErrToolNotFound)
	}
	// The tool runs in Dir, so a relative path must be pinned to where it
	// was found.
	if !filepath.IsAbs(path) {
		if path, err = filepath.Abs(path); err != nil {
			return fmt.Errorf("could not resolve: %v: %w", l.Command, err)
		}
	}

	var captured bytes.Buffer
	w := io.MultiWriter(out, &captured)
	cmd := exec.CommandContext(ctx, path, l.Args...)
	cmd.Dir = l.Dir
	cmd.Stdout = w
	cmd.Stderr = w

	logger.Info("Running tool.", "command", l.Command, "args", l.Args, "dir", l.Dir)
	err = cmd.Run()
	if err == nil {
		logger.Debug("Tool finished.", "command", l.Command)
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		return fmt.Errorf("could not run: %v: %w", l.Command, err)
	}
	logger.Error("Tool failed.", "command", l.Command, "exit_code", exitErr.ExitCode())
	return &BuildToolError{
		Message:  l.ErrorMessage,
		Command:  l.Command,
		Args:     l.Args,
		ExitCode: exitErr.ExitCode(),
		Output:   captured.Bytes(),
	}
}
