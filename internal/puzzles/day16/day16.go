// Package day16 solves "Packet Decoder".
package day16

import (
	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   16,
		Title: "Packet Decoder",
		Part1: puzzles.Int(Part1),
		Part2: puzzles.Int64(Part2),
	})
}

// Packet type IDs.
const (
	typeSum     = 0
	typeProduct = 1
	typeMin     = 2
	typeMax     = 3
	typeLiteral = 4
	typeGreater = 5
	typeLess    = 6
	typeEqual   = 7
)

type packet struct {
	version int
	typeID  int
	literal uint64
	subs    []packet
}

func decode(r *bitReader) (packet, error) {
	var p packet
	v, err := r.read(3)
	if err != nil {
		return p, err
	}
	t, err := r.read(3)
	if err != nil {
		return p, err
	}
	p.version, p.typeID = int(v), int(t)

	if p.typeID == typeLiteral {
		for {
			group, err := r.read(5)
			if err != nil {
				return p, err
			}
			p.literal = p.literal<<4 | group&0xF
			if group&0x10 == 0 {
				return p, nil
			}
		}
	}

	lengthType, err := r.read(1)
	if err != nil {
		return p, err
	}
	if lengthType == 0 {
		n, err := r.read(15)
		if err != nil {
			return p, err
		}
		end := r.pos + int(n)
		for r.pos < end {
			sub, err := decode(r)
			if err != nil {
				return p, err
			}
			p.subs = append(p.subs, sub)
		}
		if r.pos != end {
			return p, aoc.Invalidf("sub-packets overrun their length")
		}
		return p, nil
	}
	n, err := r.read(11)
	if err != nil {
		return p, err
	}
	for i := uint64(0); i < n; i++ {
		sub, err := decode(r)
		if err != nil {
			return p, err
		}
		p.subs = append(p.subs, sub)
	}
	return p, nil
}

// parse decodes the outermost packet; trailing padding is ignored.
func parse(input []byte) (packet, error) {
	r, err := newBitReader(string(input))
	if err != nil {
		return packet{}, err
	}
	return decode(r)
}

func (p packet) versionSum() int {
	n := p.version
	for _, s := range p.subs {
		n += s.versionSum()
	}
	return n
}

func (p packet) eval() (uint64, error) {
	if p.typeID == typeLiteral {
		return p.literal, nil
	}
	if len(p.subs) == 0 {
		return 0, aoc.Invalidf("operator %d without sub-packets", p.typeID)
	}
	vals := make([]uint64, len(p.subs))
	for i, s := range p.subs {
		v, err := s.eval()
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch p.typeID {
	case typeSum, typeProduct, typeMin, typeMax:
		acc := vals[0]
		for _, v := range vals[1:] {
			switch p.typeID {
			case typeSum:
				acc += v
			case typeProduct:
				acc *= v
			case typeMin:
				acc = min(acc, v)
			case typeMax:
				acc = max(acc, v)
			}
		}
		return acc, nil
	}

	if len(vals) != 2 {
		return 0, aoc.Invalidf("comparison %d needs 2 sub-packets, got %d", p.typeID, len(vals))
	}
	var ok bool
	switch p.typeID {
	case typeGreater:
		ok = vals[0] > vals[1]
	case typeLess:
		ok = vals[0] < vals[1]
	case typeEqual:
		ok = vals[0] == vals[1]
	}
	if ok {
		return 1, nil
	}
	return 0, nil
}

// Part1 sums the version numbers of every packet.
func Part1(input []byte) (int, error) {
	p, err := parse(input)
	if err != nil {
		return 0, err
	}
	return p.versionSum(), nil
}

// Part2 evaluates the expression the transmission encodes.
func Part2(input []byte) (int64, error) {
	p, err := parse(input)
	if err != nil {
		return 0, err
	}
	v, err := p.eval()
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}
