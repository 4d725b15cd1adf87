package day16

import (
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
)

// bitReader reads big-endian bit fields from a hex transmission.
type bitReader struct {
	bits []byte // one 0/1 per element
	pos  int
}

func newBitReader(hex string) (*bitReader, error) {
	hex = strings.TrimSpace(hex)
	if hex == "" {
		return nil, aoc.Invalidf("empty transmission")
	}
	r := &bitReader{bits: make([]byte, 0, 4*len(hex))}
	for i := 0; i < len(hex); i++ {
		var v byte
		switch c := hex[i]; {
		case c >= '0' && c <= '9':
			v = c - '0'
		case c >= 'A' && c <= 'F':
			v = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			v = c - 'a' + 10
		default:
			return nil, aoc.Invalidf("bad hex digit %q", c)
		}
		for s := 3; s >= 0; s-- {
			r.bits = append(r.bits, (v>>s)&1)
		}
	}
	return r, nil
}

func (r *bitReader) read(n int) (uint64, error) {
	if r.pos+n > len(r.bits) {
		return 0, aoc.Invalidf("truncated packet at bit %d", r.pos)
	}
	var v uint64
	for _, b := range r.bits[r.pos : r.pos+n] {
		v = v<<1 | uint64(b)
	}
	r.pos += n
	return v, nil
}
