package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/filmil/bazel_rules_ise/build/ise"
	"github.com/filmil/bazel_rules_ise/build/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String() + errOut.String(), err
}

func TestConfigure(t *testing.T) {
	workRoot := t.TempDir()
	out, err := execute(t, "--project", "testdata/blinky.yaml", "--work-root", workRoot, "configure")
	require.NoError(t, err)

	location := filepath.Join(workRoot, "blinky.tcl")
	data, err := os.ReadFile(location)
	require.NoError(t, err)
	hash, err := ise.Fingerprint(data)
	require.NoError(t, err)
	assert.Contains(t, out, fmt.Sprintf("%v %016x\n", location, hash))
	assert.Contains(t, string(data), `project set "Verilog Macros" "CLK_MHZ=32" -process "Synthesize - XST"`)
	assert.Contains(t, string(data), "xfile add rtl/blinky.v\nxfile add constraints/papilio.ucf\n")
}

func TestConfigureMissingOption(t *testing.T) {
	workRoot := t.TempDir()
	_, err := execute(t, "--project", "testdata/nospeed.yaml", "--work-root", workRoot, "configure")

	var confErr *ise.ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, []string{"speed"}, confErr.Missing)
	assert.NoFileExists(t, filepath.Join(workRoot, "blinky.tcl"))
}

func TestBuildFailure(t *testing.T) {
	if _, err := exec.LookPath("false"); err != nil {
		t.Skipf("false not available: %v", err)
	}
	workRoot := t.TempDir()
	_, err := execute(t, "--project", "testdata/blinky.yaml", "--work-root", workRoot, "--xtclsh", "false", "build")

	var buildErr *launcher.BuildToolError
	require.True(t, errors.As(err, &buildErr))
	assert.Equal(t, "Failed to make FPGA load module", buildErr.Message)
}

func TestRun(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skipf("true not available: %v", err)
	}
	workRoot := t.TempDir()
	_, err := execute(t, "--project", "testdata/blinky.yaml", "--work-root", workRoot, "--impact", "true", "run")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(workRoot, "blinky.pgm"))
}

func TestInvalidFlags(t *testing.T) {
	tests := []struct {
		description string
		args        []string
	}{
		{description: "log format", args: []string{"--project", "testdata/blinky.yaml", "--log-format", "xml", "configure"}},
		{description: "log level", args: []string{"--project", "testdata/blinky.yaml", "--log-level", "loud", "configure"}},
	}
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			assert.Equal(t, 2, exitErr.Code)
		})
	}
}

func TestMissingProjectFlag(t *testing.T) {
	_, err := execute(t, "configure")
	assert.Error(t, err)
}
