package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/leapstack-labs/mulscan/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSumExamplesThenInput(t *testing.T) {
	in := writeFile(t, "input.txt", "mul(2,3)don't()mul(9,9)\ndo()mul(1,\n1)")
	useConfig(t, "input: "+in+"\n")

	out, _, err := execute(t, NewSumCommand())
	require.NoError(t, err)
	assert.Equal(t,
		"Sum of valid multiplications: 136\n"+
			"Sum of valid multiplications: 8\n"+
			"Sum of valid multiplications: 6\n",
		out)
}

func TestSumLiteralMarkersAndIgnoreToggles(t *testing.T) {
	in := writeFile(t, "input.txt", "don't()mul(3,3)")

	useConfig(t, "input: "+in+"\nliteral_markers: true\n")
	out, _, err := execute(t, NewSumCommand())
	require.NoError(t, err)
	assert.Equal(t,
		"Sum of valid multiplications: 136\n"+
			"Sum of valid multiplications: 48\n"+
			"Sum of valid multiplications: 0\n",
		out)

	useConfig(t, "input: "+in+"\nignore_toggles: true\nno_examples: true\n")
	out, _, err = execute(t, NewSumCommand())
	require.NoError(t, err)
	assert.Equal(t, "Sum of valid multiplications: 9\n", out)
}

func TestSumMissingInputProducesNoOutput(t *testing.T) {
	useConfig(t, "input: "+filepath.Join(t.TempDir(), "missing.txt")+"\n")

	out, _, err := execute(t, NewSumCommand())
	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrUnavailable)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Empty(t, out)
}

func TestSumCheck(t *testing.T) {
	in := writeFile(t, "input.txt", "")
	examples := writeFile(t, "examples.yaml", `examples:
  - name: right
    text: "don't()mul(1,1)do()mul(2,2)"
    want: 4
  - name: wrong
    text: "mul(2,2)"
    want: 5
`)
	useConfig(t, "input: "+in+"\nexamples_file: "+examples+"\n")

	out, _, err := execute(t, NewSumCommand(), "--check")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong: got sum 4, want 5")
	assert.NotContains(t, err.Error(), "right:")
	assert.Contains(t, out, "Sum of valid multiplications: 4\n")

	// Without --check the mismatch is only reported, not fatal.
	_, _, err = execute(t, NewSumCommand())
	require.NoError(t, err)
}

func TestSumMarkdown(t *testing.T) {
	in := writeFile(t, "input.txt", "mul(4,4)")
	useConfig(t, "input: "+in+"\noutput: markdown\n")

	out, _, err := execute(t, NewSumCommand())
	require.NoError(t, err)
	assert.Contains(t, out, "## example 1\n\nSum of valid multiplications: 136\n")
	assert.Contains(t, out, "## "+in+"\n\nSum of valid multiplications: 16\n")
}

func TestSumJSON(t *testing.T) {
	in := writeFile(t, "input.txt", "mul(4,4)do()")
	useConfig(t, "input: "+in+"\noutput: json\n")

	out, _, err := execute(t, NewSumCommand())
	require.NoError(t, err)

	var got []sumResult
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	assert.Equal(t, "example 1", got[0].Name)
	assert.Equal(t, int64(136), got[0].Sum)
	require.NotNil(t, got[1].Want)
	assert.Equal(t, int64(8), *got[1].Want)
	assert.Equal(t, sumResult{Name: in, Sum: 16, Marks: 1, Matches: 1}, got[2])
}
