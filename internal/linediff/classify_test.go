package linediff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// keyAndCheck computes both the hash-key verdict and the exact verdict for a
// pair of single-line buffers and requires that they agree: sameLine is the
// collision re-check behind key equality, so the two must never disagree on
// normalized-equal inputs.
func keyAndCheck(t *testing.T, a, b string, opts Options) (keysEqual, exactEqual bool) {
	t.Helper()
	abuf, bbuf := []byte(a), []byte(b)
	arecs, brecs := SplitLines(abuf), SplitLines(bbuf)
	require.Len(t, arecs, 1)
	require.Len(t, brecs, 1)
	keysEqual = lineKey(abuf, arecs[0], opts) == lineKey(bbuf, brecs[0], opts)
	exactEqual = sameLine(abuf, arecs[0], bbuf, brecs[0], opts)
	return keysEqual, exactEqual
}

func TestClassify_Equality(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		opts Options
		want bool
	}{
		{name: "identical", a: "hello\n", b: "hello\n", want: true},
		{name: "different content", a: "hello\n", b: "world\n", want: false},
		{name: "case sensitive by default", a: "Hello\n", b: "hello\n", want: false},
		{name: "whitespace significant by default", a: "a b\n", b: "ab\n", want: false},
		{name: "missing newline is significant", a: "a", b: "a\n", want: false},

		{name: "case folded", a: "Hello World\n", b: "hELLO wORLD\n", opts: Options{IgnoreCase: true}, want: true},
		{name: "case fold is ascii only", a: "Ärger\n", b: "ärger\n", opts: Options{IgnoreCase: true}, want: false},

		{name: "interior spaces ignored", a: "a b\tc\n", b: "abc\n", opts: Options{IgnoreWhitespace: true}, want: true},
		{name: "leading and trailing ignored", a: "  x  \n", b: "x\n", opts: Options{IgnoreWhitespace: true}, want: true},
		{name: "cr ignored as whitespace", a: "a\r\n", b: "a\n", opts: Options{IgnoreWhitespace: true}, want: true},
		{name: "newline never ignored", a: "a", b: "a\n", opts: Options{IgnoreWhitespace: true}, want: false},
		{name: "whitespace only vs empty line", a: "   \n", b: "\n", opts: Options{IgnoreWhitespace: true}, want: true},

		{name: "both options", a: "A  B\n", b: "ab\n", opts: Options{IgnoreWhitespace: true, IgnoreCase: true}, want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keysEqual, exactEqual := keyAndCheck(t, tc.a, tc.b, tc.opts)
			require.Equal(t, tc.want, exactEqual, "exact comparison")
			if tc.want {
				// Equal lines must also hash equal, or alignment would never
				// consider them candidates.
				require.True(t, keysEqual, "equal lines must share a key")
			}
		})
	}
}

func TestClassify_CollisionRecheck(t *testing.T) {
	// Force a "collision" by constructing records directly: same key lookup
	// path as the aligner uses, different bytes. sameLine must say no even
	// though we pretend the keys matched.
	abuf := []byte("aaaa\n")
	bbuf := []byte("bbbb\n")
	a := SplitLines(abuf)[0]
	b := SplitLines(bbuf)[0]
	require.False(t, sameLine(abuf, a, bbuf, b, Options{}))
	require.False(t, sameLine(abuf, a, bbuf, b, Options{IgnoreWhitespace: true, IgnoreCase: true}))
}

func TestNewSide(t *testing.T) {
	buf := []byte("x\ny\nx\n")
	s := newSide(buf, Options{})
	require.Len(t, s.recs, 3)
	require.Len(t, s.keys, 3)
	require.Equal(t, s.keys[0], s.keys[2], "identical lines share a key")
	require.NotEqual(t, s.keys[0], s.keys[1], "distinct lines should not collide here")
}
