package launcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireTool(t *testing.T, name string) {
	t.Helper()
	if _, err := exec.LookPath(name); err != nil {
		t.Skipf("%v not available: %v", name, err)
	}
}

func writeScript(t *testing.T, dir, name, body string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte("#!/bin/sh\n"+body), 0o755))
	return location
}

func TestRunSuccess(t *testing.T) {
	requireTool(t, "sh")
	dir := t.TempDir()
	tool := writeScript(t, dir, "tool", `pwd -P > seen.txt; echo "$@" >> seen.txt; echo done`)

	var out bytes.Buffer
	l := New(tool, []string{"-batch", "x.pgm"}, dir, "tool failed")
	l.Output = &out

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, "done\n", out.String())

	seen, err := os.ReadFile(filepath.Join(dir, "seen.txt"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(seen)), "\n")
	require.Len(t, lines, 2)
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	assert.Equal(t, resolved, lines[0])
	assert.Equal(t, "-batch x.pgm", lines[1])
}

func TestRunFailure(t *testing.T) {
	requireTool(t, "sh")
	dir := t.TempDir()
	tool := writeScript(t, dir, "tool", "echo 'ERROR: no license' >&2; exit 3")

	var out bytes.Buffer
	l := New(tool, nil, dir, "Failed to make FPGA load module")
	l.Output = &out

	err := l.Run(context.Background())
	require.Error(t, err)

	var buildErr *BuildToolError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "Failed to make FPGA load module", buildErr.Message)
	assert.Equal(t, 3, buildErr.ExitCode)
	assert.Contains(t, string(buildErr.Output), "ERROR: no license")
	assert.Contains(t, buildErr.Error(), "Failed to make FPGA load module")
	assert.Contains(t, buildErr.Error(), "ERROR: no license")
	assert.Contains(t, out.String(), "ERROR: no license")
}

func TestRunRelativeCommand(t *testing.T) {
	requireTool(t, "sh")
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, "tools"), 0o755))
	writeScript(t, filepath.Join(base, "tools"), "xtclsh", "echo built")
	workRoot := filepath.Join(base, "out")
	require.NoError(t, os.MkdirAll(workRoot, 0o755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(base))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})

	var out bytes.Buffer
	l := New("./tools/xtclsh", nil, workRoot, "Failed to make FPGA load module")
	l.Output = &out

	require.NoError(t, l.Run(context.Background()))
	assert.Equal(t, "built\n", out.String())
}

func TestRunNotFound(t *testing.T) {
	l := New("no-such-tool-for-sure", nil, t.TempDir(), "boom")
	err := l.Run(context.Background())
	assert.ErrorIs(t, err, ErrToolNotFound)
}

func TestBuildToolErrorWithoutOutput(t *testing.T) {
	err := &BuildToolError{Message: "impact tool returned an error", Command: "impact", ExitCode: 1}
	assert.Equal(t, "impact tool returned an error: impact exited with status 1", err.Error())
}
