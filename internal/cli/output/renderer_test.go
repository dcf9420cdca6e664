package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(mode Mode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestEffectiveMode(t *testing.T) {
	tests := []struct {
		mode  Mode
		isTTY bool
		want  Mode
	}{
		{ModeAuto, true, ModeText},
		{ModeAuto, false, ModeMarkdown},
		{ModeText, false, ModeText},
		{ModeJSON, true, ModeJSON},
		{"", false, ModeText},
	}

	for _, tt := range tests {
		r, _, _ := newTestRenderer(tt.mode, tt.isTTY)
		assert.Equal(t, tt.want, r.EffectiveMode(), "mode=%q tty=%v", tt.mode, tt.isTTY)
	}
}

func TestNewRendererWithBufferIsNotTTY(t *testing.T) {
	r := NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}, ModeAuto)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())
}

func TestHeader(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Header(2, "Toggle marks")
	assert.Equal(t, "## Toggle marks\n\n", out.String())

	r, out, _ = newTestRenderer(ModeText, false)
	r.Header(1, "Toggle marks")
	assert.Equal(t, "Toggle marks\n", out.String(), "non-TTY output carries no escape codes")

	r, out, _ = newTestRenderer(ModeJSON, false)
	r.Header(1, "toggle marks")
	assert.Empty(t, out.String())
}

func TestTable(t *testing.T) {
	r, out, _ := newTestRenderer(ModeMarkdown, false)
	r.Table([]string{"kind", "start offset"}, [][]any{{"enable", 4}})
	assert.Contains(t, out.String(), "| Kind | Start Offset |")
	assert.Contains(t, out.String(), "| enable | 4 |")

	r, out, _ = newTestRenderer(ModeText, false)
	r.Table([]string{"kind"}, [][]any{{"disable"}})
	assert.Contains(t, out.String(), "disable")
	assert.Contains(t, out.String(), "KIND")

	r, out, _ = newTestRenderer(ModeText, false)
	r.Table([]string{"kind"}, nil)
	assert.Equal(t, "(0 rows)\n", out.String())
}

func TestJSONAndWarn(t *testing.T) {
	r, out, errOut := newTestRenderer(ModeJSON, false)
	require.NoError(t, r.JSON(map[string]int64{"sum": 48}))
	assert.JSONEq(t, `{"sum": 48}`, out.String())

	r.Warn("careful")
	assert.Equal(t, "careful\n", errOut.String())
}
