package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/mulscan/internal/cli/config"
	"github.com/leapstack-labs/mulscan/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()
	cmd := NewRootCmd()
	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRootDefaultsToSumOverInputTxt(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("input.txt", []byte("mul(3,4)\nundo()mul(1,1)"), 0600))

	out, _, err := run(t)
	require.NoError(t, err)
	assert.Equal(t,
		"Sum of valid multiplications: 136\n"+
			"Sum of valid multiplications: 8\n"+
			"Sum of valid multiplications: 13\n",
		out)
}

func TestRootMissingInputFails(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrUnavailable)
	assert.Empty(t, out)
}

func TestSumFlags(t *testing.T) {
	in := filepath.Join(t.TempDir(), "memory.txt")
	require.NoError(t, os.WriteFile(in, []byte("don't()mul(2,2)do()mul(3,3)"), 0600))

	out, _, err := run(t, "sum", "--input", in, "--no-examples")
	require.NoError(t, err)
	assert.Equal(t, "Sum of valid multiplications: 9\n", out)

	out, _, err = run(t, "sum", "--input", in, "--no-examples", "--ignore-toggles")
	require.NoError(t, err)
	assert.Equal(t, "Sum of valid multiplications: 13\n", out)

	out, _, err = run(t, "--input", in, "--literal-markers", "sum", "--check")
	require.Error(t, err, "example 2 sums to 48 with literal markers")
	assert.Contains(t, err.Error(), "example 2: got sum 48, want 8")
	assert.Contains(t, out, "Sum of valid multiplications: 9\n")
}

func TestVerboseLogsToStderr(t *testing.T) {
	in := filepath.Join(t.TempDir(), "memory.txt")
	require.NoError(t, os.WriteFile(in, []byte("mul(1,1)"), 0600))

	out, errOut, err := run(t, "sum", "--input", in, "--no-examples", "-v")
	require.NoError(t, err)
	assert.Equal(t, "Sum of valid multiplications: 1\n", out)
	assert.Contains(t, errOut, "evaluated document")

	_, errOut, err = run(t, "sum", "--input", in, "--no-examples")
	require.NoError(t, err)
	assert.Empty(t, errOut)
}

func TestConfigFileFlag(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "memory.txt")
	require.NoError(t, os.WriteFile(in, []byte("mul(5,5)"), 0600))
	cfgPath := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input: "+in+"\nno_examples: true\n"), 0600))

	out, _, err := run(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Sum of valid multiplications: 25\n", out)
}

func TestInvalidOutputFlag(t *testing.T) {
	_, _, err := run(t, "sum", "--output", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestReportsCommand(t *testing.T) {
	levels := filepath.Join(t.TempDir(), "levels.txt")
	require.NoError(t, os.WriteFile(levels, []byte("8 6 4 4 1\n"), 0600))

	out, _, err := run(t, "reports", "--reports", levels, "--no-examples")
	require.NoError(t, err)
	assert.Equal(t, "Number of safe reports: 0\nNumber of safe reports with dampener: 1\n", out)
}

func TestHelpListsCommands(t *testing.T) {
	out, _, err := run(t, "--help")
	require.NoError(t, err)
	for _, name := range []string{"sum", "reports", "explain", "repl", "version", "completion"} {
		assert.Contains(t, out, name)
	}
}

func TestVersionFlag(t *testing.T) {
	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "mulscan "+Version+"\n", out)
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := run(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "mulscan")
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	_, _, err := run(t, "unknown-command")
	assert.Error(t, err, "unknown command should return an error")
}
