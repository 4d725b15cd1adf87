package day24

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/aoc"
)

type opcode int

const (
	opInp opcode = iota
	opAdd
	opMul
	opDiv
	opMod
	opEql
)

var opcodes = map[string]opcode{
	"inp": opInp, "add": opAdd, "mul": opMul, "div": opDiv, "mod": opMod, "eql": opEql,
}

// instr is one ALU instruction. When imm is false, b names a register.
type instr struct {
	op  opcode
	a   int
	b   int
	imm bool
}

// Register indices, as stored in registers.
const (
	regW = iota
	regX
	regY
	regZ
)

func register(s string) (int, bool) {
	if len(s) != 1 || s[0] < 'w' || s[0] > 'z' {
		return 0, false
	}
	return int(s[0] - 'w'), true
}

func parseProgram(input []byte) ([]instr, error) {
	lines := aoc.NonEmptyLines(input)
	prog := make([]instr, 0, len(lines))
	for i, l := range lines {
		f := strings.Fields(l)
		if len(f) == 0 {
			continue
		}
		op, ok := opcodes[f[0]]
		if !ok {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("unknown instruction %q", f[0]))
		}
		want := 3
		if op == opInp {
			want = 2
		}
		if len(f) != want {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("%s takes %d operands", f[0], want-1))
		}
		a, ok := register(f[1])
		if !ok {
			return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("bad register %q", f[1]))
		}
		in := instr{op: op, a: a}
		if want == 3 {
			if r, ok := register(f[2]); ok {
				in.b = r
			} else {
				n, err := strconv.Atoi(f[2])
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", i+1, aoc.Invalidf("bad operand %q", f[2]))
				}
				in.b, in.imm = n, true
			}
		}
		prog = append(prog, in)
	}
	return prog, nil
}

// registers is indexed by regW..regZ.
type registers [4]int

// run executes prog, feeding inp from input in order.
func run(prog []instr, input []int) (registers, error) {
	var r registers
	next := 0
	for pc, in := range prog {
		if in.op == opInp {
			if next >= len(input) {
				return r, fmt.Errorf("pc %d: input exhausted", pc)
			}
			r[in.a] = input[next]
			next++
			continue
		}
		b := in.b
		if !in.imm {
			b = r[in.b]
		}
		switch in.op {
		case opAdd:
			r[in.a] += b
		case opMul:
			r[in.a] *= b
		case opDiv:
			if b == 0 {
				return r, fmt.Errorf("pc %d: division by zero", pc)
			}
			r[in.a] /= b
		case opMod:
			if r[in.a] < 0 || b <= 0 {
				return r, fmt.Errorf("pc %d: mod %d by %d", pc, r[in.a], b)
			}
			r[in.a] %= b
		case opEql:
			if r[in.a] == b {
				r[in.a] = 1
			} else {
				r[in.a] = 0
			}
		}
	}
	return r, nil
}
