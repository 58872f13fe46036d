package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codalotl/linediff/internal/linediff"
)

func renderThrough(t *testing.T, old, new string, color bool) string {
	t.Helper()
	hunks, err := linediff.ComputeHunks([]byte(old), []byte(new), linediff.Options{Context: 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	uw := newUnifiedWriter(&buf, color, nil, "old", "new")
	for _, h := range hunks {
		require.NoError(t, linediff.RenderHunk(h, []byte(old), []byte(new), uw.Sink))
	}
	return buf.String()
}

func TestUnifiedWriter_Plain(t *testing.T) {
	got := renderThrough(t, "a\nb\nc\n", "a\nx\nc\n", false)
	require.Equal(t, strings.Join([]string{
		"--- old",
		"+++ new",
		"@@ -1,3 +1,3 @@",
		" a",
		"-b",
		"+x",
		" c",
	}, "\n")+"\n", got)
}

func TestUnifiedWriter_Color(t *testing.T) {
	got := renderThrough(t, "a\nb\nc\n", "a\nx\nc\n", true)

	require.Contains(t, got, "\x1b[1;36m--- old\x1b[0m\n")
	require.Contains(t, got, "\x1b[1;36m+++ new\x1b[0m\n")
	require.Contains(t, got, "\x1b[35m@@ -1,3 +1,3 @@\x1b[0m\n")
	require.Contains(t, got, "\x1b[31m-b\x1b[0m\n")
	require.Contains(t, got, "\x1b[32m+x\x1b[0m\n")
	// Context lines stay uncolored.
	require.Contains(t, got, "\n a\n")
}

func TestUnifiedWriter_NoNewlineMarkerUncolored(t *testing.T) {
	got := renderThrough(t, "a", "b", true)
	require.Contains(t, got, "\x1b[31m-a\x1b[0m\n\\ No newline at end of file\n")
}

func TestUnifiedWriter_HeadersOnlyOnce(t *testing.T) {
	old := "a\nb\nc\nd\ne\nf\ng\nh\n"
	new := "A\nb\nc\nd\ne\nf\ng\nH\n"
	got := renderThrough(t, old, new, false)
	require.Equal(t, 1, strings.Count(got, "--- old\n"))
	require.Equal(t, 2, strings.Count(got, "@@ "))
}

func TestScaleBar(t *testing.T) {
	plus, minus := scaleBar(3, 2, 40)
	require.Equal(t, 3, plus)
	require.Equal(t, 2, minus)

	plus, minus = scaleBar(100, 100, 20)
	require.Equal(t, 10, plus)
	require.Equal(t, 10, minus)

	// A non-zero side never rounds down to nothing.
	plus, minus = scaleBar(1, 1000, 10)
	require.Equal(t, 1, plus)
	require.Equal(t, 9, minus)

	plus, minus = scaleBar(0, 50, 10)
	require.Equal(t, 0, plus)
	require.Equal(t, 10, minus)
}

func TestRenderStat(t *testing.T) {
	var buf bytes.Buffer
	renderStat(&buf, "a.txt", "b.txt", linediff.Stat{Additions: 2, Deletions: 1}, 80)
	require.Equal(t, " a.txt => b.txt | 3 ++-\n 1 file changed, 2 insertions(+), 1 deletion(-)\n", buf.String())

	buf.Reset()
	renderStat(&buf, "same.txt", "same.txt", linediff.Stat{Additions: 1, Deletions: 0}, 80)
	require.Equal(t, " same.txt | 1 +\n 1 file changed, 1 insertion(+), 0 deletions(-)\n", buf.String())
}

func TestHighlighterLine(t *testing.T) {
	hl := newHighlighter("main.go", "monokai")
	got := hl.line("func main() {")
	require.Contains(t, got, "func")
	require.Contains(t, got, "\x1b[", "terminal formatter should emit escapes")
	require.False(t, strings.HasSuffix(got, "\n"))

	// Unknown extensions fall back to a plain lexer without erroring.
	fallback := newHighlighter("notes.xyzzy", "no-such-style")
	require.NotEmpty(t, fallback.line("plain text"))
}
