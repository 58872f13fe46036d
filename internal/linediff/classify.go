package linediff

import "bytes"

// FNV-1a parameters. Keys are advisory: equal keys make two lines candidate
// matches, which are then re-checked against the actual bytes, so a collision
// can cost time but never correctness.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// side is one classified input: the owning buffer, its line records, and a
// comparison key per line. Keys are computed once, up front.
type side struct {
	buf  []byte
	recs []LineRecord
	keys []uint64
}

func newSide(buf []byte, opts Options) side {
	recs := SplitLines(buf)
	keys := make([]uint64, len(recs))
	for i, r := range recs {
		keys[i] = lineKey(buf, r, opts)
	}
	return side{buf: buf, recs: recs, keys: keys}
}

// lineKey hashes the line's bytes, streaming through the normalization
// implied by opts without materializing a normalized copy. The trailing '\n'
// participates in the hash: "a" and "a\n" are distinct lines, and whitespace
// skipping never consumes the line terminator.
func lineKey(buf []byte, rec LineRecord, opts Options) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range rec.Slice(buf) {
		if opts.IgnoreWhitespace && isNormalizedSpace(c) {
			continue
		}
		if opts.IgnoreCase {
			c = foldASCII(c)
		}
		h ^= uint64(c)
		h *= fnvPrime64
	}
	return h
}

// sameLine reports whether two lines are equal under opts. This is the exact
// re-check behind key equality; it must agree byte-for-byte with the
// normalization performed by lineKey.
func sameLine(abuf []byte, a LineRecord, bbuf []byte, b LineRecord, opts Options) bool {
	as := a.Slice(abuf)
	bs := b.Slice(bbuf)
	if !opts.IgnoreWhitespace && !opts.IgnoreCase {
		return bytes.Equal(as, bs)
	}
	i, j := 0, 0
	for {
		if opts.IgnoreWhitespace {
			for i < len(as) && isNormalizedSpace(as[i]) {
				i++
			}
			for j < len(bs) && isNormalizedSpace(bs[j]) {
				j++
			}
		}
		if i >= len(as) || j >= len(bs) {
			return i >= len(as) && j >= len(bs)
		}
		ca, cb := as[i], bs[j]
		if opts.IgnoreCase {
			ca = foldASCII(ca)
			cb = foldASCII(cb)
		}
		if ca != cb {
			return false
		}
		i++
		j++
	}
}

// isNormalizedSpace reports whether c is skipped under IgnoreWhitespace.
// '\n' is deliberately excluded: the line terminator is always significant.
func isNormalizedSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

// foldASCII lowercases ASCII letters only.
func foldASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
