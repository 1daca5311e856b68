package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/filmil/bazel_rules_ise/build/edam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, []string{
		"--define", "SIM=false",
		"--generic", "WIDTH=16",
		"--generic", "MODE=fast",
		"--include-dir", "inc",
	})
	require.NoError(t, err)
	assert.Equal(t, `project set "Verilog Macros" "SIM=0" -process "Synthesize - XST"
project set "Generics, Parameters" "WIDTH=16|MODE=\"fast\"" -process "Synthesize - XST"
project set "Verilog Include Directories" "inc" -process "Synthesize - XST"
`, out.String())
}

func TestKVList(t *testing.T) {
	var l KVList
	require.NoError(t, l.Set("A=1"))
	require.NoError(t, l.Set("B=x=y"))
	assert.Error(t, l.Set("novalue"))
	assert.Error(t, l.Set("=1"))

	assert.Equal(t, edam.Params{
		{Name: "A", Value: int64(1)},
		{Name: "B", Value: "x=y"},
	}, l.Iter())
	assert.Equal(t, "A=1;B=x=y", l.String())
}

func TestRunBadFlag(t *testing.T) {
	err := run(io.Discard, []string{"--generic", "oops"})
	assert.Error(t, err)
}
