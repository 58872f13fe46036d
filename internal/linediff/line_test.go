package linediff

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
		eol  []bool
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
			eol:  nil,
		},
		{
			name: "single terminated line",
			in:   "a\n",
			want: []string{"a\n"},
			eol:  []bool{true},
		},
		{
			name: "single unterminated line",
			in:   "a",
			want: []string{"a"},
			eol:  []bool{false},
		},
		{
			name: "bare newline is one line",
			in:   "\n",
			want: []string{"\n"},
			eol:  []bool{true},
		},
		{
			name: "blank lines preserved",
			in:   "a\n\n\nb\n",
			want: []string{"a\n", "\n", "\n", "b\n"},
			eol:  []bool{true, true, true, true},
		},
		{
			name: "unterminated tail",
			in:   "a\nb\nc",
			want: []string{"a\n", "b\n", "c"},
			eol:  []bool{true, true, false},
		},
		{
			name: "crlf stays inside the line",
			in:   "a\r\nb\r\n",
			want: []string{"a\r\n", "b\r\n"},
			eol:  []bool{true, true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := []byte(tc.in)
			recs := SplitLines(buf)
			require.Len(t, recs, len(tc.want))

			// Records must tile the buffer exactly, in order.
			off := 0
			for i, r := range recs {
				require.Equal(t, off, r.Off, "record %d offset", i)
				require.Equal(t, tc.want[i], string(r.Slice(buf)), "record %d content", i)
				require.Equal(t, tc.eol[i], r.HasEOL, "record %d HasEOL", i)
				off += r.Len
			}
			require.Equal(t, len(buf), off)
		})
	}
}
