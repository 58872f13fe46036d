package linediff

import "bytes"

// LineRecord is a zero-copy view of one line within an input buffer. Off and
// Len locate the line's bytes, including the trailing '\n' when HasEOL is
// true. The buffer a record points into must outlive every use of the record.
type LineRecord struct {
	Off    int  // byte offset of the line's first byte
	Len    int  // byte count, including the trailing '\n' if present
	HasEOL bool // false only for an unterminated final line
}

// Slice returns the line's bytes within buf. The result aliases buf.
func (r LineRecord) Slice(buf []byte) []byte {
	return buf[r.Off : r.Off+r.Len]
}

// SplitLines partitions buf into ordered line records. A line ends at each
// '\n' (inclusive); a final fragment with no trailing '\n' is emitted as the
// last record with HasEOL=false. Empty input yields no records. No line
// content is copied.
func SplitLines(buf []byte) []LineRecord {
	var recs []LineRecord
	off := 0
	for off < len(buf) {
		n := bytes.IndexByte(buf[off:], '\n')
		if n < 0 {
			recs = append(recs, LineRecord{Off: off, Len: len(buf) - off})
			break
		}
		recs = append(recs, LineRecord{Off: off, Len: n + 1, HasEOL: true})
		off += n + 1
	}
	return recs
}
