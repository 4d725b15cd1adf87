package day18

import (
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
)

// elem is a regular number and how many pairs enclose it.
type elem struct {
	v, depth int
}

// number is a snailfish number flattened left to right. Two adjacent
// elements at the same, deepest depth always form a pair.
type number []elem

// parseNumber reads one snailfish number. Every element must be a regular
// number or a pair of exactly two elements, and the top level must be a pair.
func parseNumber(s string) (number, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "[") {
		return nil, aoc.Invalidf("snailfish number %q is not a pair", s)
	}
	p := &numberParser{s: s}
	if err := p.element(0); err != nil {
		return nil, err
	}
	if p.pos != len(s) {
		return nil, aoc.Invalidf("trailing %q after %q", s[p.pos:], s[:p.pos])
	}
	return p.out, nil
}

type numberParser struct {
	s   string
	pos int
	out number
}

func (p *numberParser) element(depth int) error {
	if p.pos >= len(p.s) {
		return aoc.Invalidf("truncated snailfish number %q", p.s)
	}
	c := p.s[p.pos]
	if isDigit(c) {
		j := p.pos
		for j < len(p.s) && isDigit(p.s[j]) {
			j++
		}
		v, err := strconv.Atoi(p.s[p.pos:j])
		if err != nil {
			return aoc.Invalidf("bad regular number %q", p.s[p.pos:j])
		}
		p.out = append(p.out, elem{v: v, depth: depth})
		p.pos = j
		return nil
	}
	if c != '[' {
		return aoc.Invalidf("unexpected %q at %d in %q", c, p.pos, p.s)
	}
	p.pos++
	if err := p.element(depth + 1); err != nil {
		return err
	}
	if err := p.expect(','); err != nil {
		return err
	}
	if err := p.element(depth + 1); err != nil {
		return err
	}
	return p.expect(']')
}

func (p *numberParser) expect(c byte) error {
	if p.pos >= len(p.s) {
		return aoc.Invalidf("truncated snailfish number %q", p.s)
	}
	if p.s[p.pos] != c {
		return aoc.Invalidf("expected %q at %d in %q, got %q", c, p.pos, p.s, p.s[p.pos])
	}
	p.pos++
	return nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (n number) String() string {
	pos := 0
	var b strings.Builder
	var rec func(d int)
	rec = func(d int) {
		if n[pos].depth == d {
			b.WriteString(strconv.Itoa(n[pos].v))
			pos++
			return
		}
		b.WriteByte('[')
		rec(d + 1)
		b.WriteByte(',')
		rec(d + 1)
		b.WriteByte(']')
	}
	rec(0)
	return b.String()
}

// add returns the reduced sum a+b; neither argument is modified.
func add(a, b number) number {
	out := make(number, 0, len(a)+len(b))
	for _, e := range a {
		out = append(out, elem{e.v, e.depth + 1})
	}
	for _, e := range b {
		out = append(out, elem{e.v, e.depth + 1})
	}
	return out.reduce()
}

func (n number) reduce() number {
	for {
		var ok bool
		if n, ok = n.explode(); ok {
			continue
		}
		if n, ok = n.split(); ok {
			continue
		}
		return n
	}
}

// explode replaces the leftmost pair nested inside four pairs with 0,
// pushing its halves onto the neighbouring regular numbers.
func (n number) explode() (number, bool) {
	for i := 0; i+1 < len(n); i++ {
		if n[i].depth <= 4 || n[i+1].depth != n[i].depth {
			continue
		}
		if i > 0 {
			n[i-1].v += n[i].v
		}
		if i+2 < len(n) {
			n[i+2].v += n[i+1].v
		}
		n[i] = elem{0, n[i].depth - 1}
		return append(n[:i+1], n[i+2:]...), true
	}
	return n, false
}

// split replaces the leftmost number of 10 or more with a pair.
func (n number) split() (number, bool) {
	for i, e := range n {
		if e.v < 10 {
			continue
		}
		pair := []elem{{e.v / 2, e.depth + 1}, {(e.v + 1) / 2, e.depth + 1}}
		out := make(number, 0, len(n)+1)
		out = append(out, n[:i]...)
		out = append(out, pair...)
		out = append(out, n[i+1:]...)
		return out, true
	}
	return n, false
}

func (n number) magnitude() int {
	m := append(number(nil), n...)
	for len(m) > 1 {
		deepest := 0
		for _, e := range m {
			deepest = max(deepest, e.depth)
		}
		merged := false
		for i := 0; i+1 < len(m); i++ {
			if m[i].depth == deepest && m[i+1].depth == deepest {
				m[i] = elem{3*m[i].v + 2*m[i+1].v, deepest - 1}
				m = append(m[:i+1], m[i+2:]...)
				merged = true
				break
			}
		}
		if !merged {
			break
		}
	}
	return m[0].v
}
