package linediff

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

// applyHunks reconstructs the new buffer from the old buffer plus hunks. Kept
// test-local: patch application is not part of the public surface, but the
// round-trip law is how we know the hunks are right.
func applyHunks(t *testing.T, oldBuf, newBuf []byte, hunks []Hunk) []byte {
	t.Helper()
	oldRecs := SplitLines(oldBuf)
	var out []byte
	oldIdx := 0
	for _, h := range hunks {
		// 0-based index of the first old line the hunk consumes (or the
		// insertion point when the hunk consumes none).
		at := h.OldStart
		if h.OldCount > 0 {
			at = h.OldStart - 1
		}
		require.GreaterOrEqual(t, at, oldIdx, "hunks must not overlap")
		for oldIdx < at {
			out = append(out, oldRecs[oldIdx].Slice(oldBuf)...)
			oldIdx++
		}
		for _, ln := range h.Lines {
			switch ln.Op {
			case OpEqual:
				out = append(out, oldRecs[oldIdx].Slice(oldBuf)...)
				oldIdx++
			case OpDelete:
				oldIdx++
			case OpInsert:
				out = append(out, ln.Rec.Slice(newBuf)...)
			}
		}
	}
	for oldIdx < len(oldRecs) {
		out = append(out, oldRecs[oldIdx].Slice(oldBuf)...)
		oldIdx++
	}
	return out
}

func TestComputeHunks_IdenticalInputsAreEmpty(t *testing.T) {
	for _, text := range []string{
		"",
		"a\n",
		"a\nb\nc\n",
		"no trailing newline",
		"\n\n\n",
		"binary-ish \x00\x01\x02\n",
	} {
		hunks, err := ComputeHunks([]byte(text), []byte(text), DefaultOptions())
		require.NoError(t, err)
		require.Empty(t, hunks, "input %q", text)
	}
}

func TestComputeHunks_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		old, new string
	}{
		{"replace middle", "a\nb\nc\n", "a\nx\nc\n"},
		{"insert at start", "b\nc\n", "a\nb\nc\n"},
		{"delete at end", "a\nb\nc\n", "a\nb\n"},
		{"everything changes", "a\nb\n", "x\ny\nz\n"},
		{"empty to content", "", "a\nb\n"},
		{"content to empty", "a\nb\n", ""},
		{"lose trailing newline", "a\nb\n", "a\nb"},
		{"gain trailing newline", "a\nb", "a\nb\n"},
		{"moved block", "a\nb\nc\nd\n", "c\nd\na\nb\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			// Context 0 exercises the anchor arithmetic hardest; larger
			// contexts must round-trip too.
			for _, context := range []int{0, 1, 3} {
				hunks, err := ComputeHunks([]byte(tc.old), []byte(tc.new), Options{Context: context})
				require.NoError(t, err)
				require.NoError(t, validateHunks(hunks))
				got := applyHunks(t, []byte(tc.old), []byte(tc.new), hunks)
				require.Equal(t, tc.new, string(got), "context=%d", context)
			}
		})
	}
}

func TestComputeHunks_RandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	alphabet := []string{"a\n", "b\n", "c\n", "d\n", "e\n"}

	genText := func() string {
		n := rng.Intn(40)
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		if rng.Intn(4) == 0 {
			sb.WriteString("tail")
		}
		return sb.String()
	}

	for iter := 0; iter < 300; iter++ {
		old := genText()
		new := genText()
		context := rng.Intn(4)
		hunks, err := ComputeHunks([]byte(old), []byte(new), Options{Context: context})
		require.NoError(t, err)
		require.NoError(t, validateHunks(hunks))
		got := applyHunks(t, []byte(old), []byte(new), hunks)
		require.Equal(t, new, string(got), "old=%q new=%q context=%d", old, new, context)
	}
}

func TestComputeHunks_RandomBytesNeverPanic(t *testing.T) {
	// Arbitrary binary buffers, newline-dense and newline-free. The engine
	// must terminate and round-trip regardless of content.
	rng := rand.New(rand.NewSource(42))
	genBytes := func() []byte {
		n := rng.Intn(2000)
		buf := make([]byte, n)
		for i := range buf {
			if rng.Intn(6) == 0 {
				buf[i] = '\n'
			} else {
				buf[i] = byte(rng.Intn(256))
			}
		}
		return buf
	}

	for iter := 0; iter < 50; iter++ {
		old := genBytes()
		new := genBytes()
		hunks, err := ComputeHunks(old, new, DefaultOptions())
		require.NoError(t, err)
		got := applyHunks(t, old, new, hunks)
		require.Equal(t, new, got)
	}
}

func TestComputeHunks_CrossCheckEditDistance(t *testing.T) {
	// Our scripts are minimal, so our distance can never exceed what another
	// line-diff implementation produces for the same pair.
	rng := rand.New(rand.NewSource(3))
	alphabet := []string{"alpha\n", "beta\n", "gamma\n", "delta\n"}
	genText := func() string {
		n := rng.Intn(20)
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}

	dmp := diffmatchpatch.New()
	for iter := 0; iter < 100; iter++ {
		old := genText()
		new := genText()

		script := scriptFor(t, old, new, Options{})

		ra, rb, _ := dmp.DiffLinesToRunes(old, new)
		otherDist := 0
		for _, d := range dmp.DiffMainRunes(ra, rb, false) {
			if d.Type != diffmatchpatch.DiffEqual {
				otherDist += utf8.RuneCountInString(d.Text)
			}
		}
		require.LessOrEqual(t, script.Distance(), otherDist, "old=%q new=%q", old, new)
	}
}

func TestComputeHunks_InvalidOptions(t *testing.T) {
	_, err := ComputeHunks(nil, nil, Options{Context: -1})
	require.ErrorIs(t, err, ErrInvalidOptions)

	_, err = ComputeHunks(nil, nil, Options{MaxCost: -5})
	require.ErrorIs(t, err, ErrInvalidOptions)

	err = Compute(nil, nil, Options{Context: -1}, func([]byte) error { return nil })
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestComputeHunks_MaxCost(t *testing.T) {
	old := []byte("a\nb\nc\nd\n")  // 4 lines
	new := []byte("w\nx\ny\nz\n")  // 4 lines
	opts := DefaultOptions()

	opts.MaxCost = 15 // 4*4 = 16 exceeds this
	_, err := ComputeHunks(old, new, opts)
	require.ErrorIs(t, err, ErrResourceExceeded)

	opts.MaxCost = 16 // exactly at the ceiling is allowed
	hunks, err := ComputeHunks(old, new, opts)
	require.NoError(t, err)
	require.NotEmpty(t, hunks)

	// Degenerate sides never exceed any ceiling.
	opts.MaxCost = 1
	_, err = ComputeHunks(nil, new, opts)
	require.NoError(t, err)
}

func TestComputeHunks_IgnoreOptionsEndToEnd(t *testing.T) {
	old := "func Main() {\n\tX := 1\n}\n"
	new := "func main() {\n\tx := 1\n}\n"

	hunks, err := ComputeHunks([]byte(old), []byte(new), DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, hunks, "case differences are real differences by default")

	opts := DefaultOptions()
	opts.IgnoreCase = true
	hunks, err = ComputeHunks([]byte(old), []byte(new), opts)
	require.NoError(t, err)
	require.Empty(t, hunks)
}
