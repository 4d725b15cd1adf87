// Package day24 solves "Arithmetic Logic Unit".
package day24

import (
	"fmt"

	"github.com/aalvaropc/aoc2021/internal/aoc"
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
)

func init() {
	puzzles.Register(domain.Puzzle{
		Day:   24,
		Title: "Arithmetic Logic Unit",
		Part1: puzzles.Int64(Part1),
		Part2: puzzles.Int64(Part2),
	})
}

const (
	digits    = 14
	blockSize = 18
)

// Offsets of the instructions that differ between the MONAD digit blocks.
const (
	divZAt = 4
	addXAt = 5
	addYAt = 15
)

// block is one digit's check. With divZ 1 it pushes w+addY onto z (as a base
// 26 stack); with divZ 26 it pops, and z only shrinks if w equals the popped
// value plus addX.
type block struct {
	divZ, addX, addY int
}

func blocks(prog []instr) ([]block, error) {
	if len(prog) != digits*blockSize {
		return nil, aoc.Invalidf("program has %d instructions, want %d", len(prog), digits*blockSize)
	}
	out := make([]block, digits)
	for d := range out {
		ins := prog[d*blockSize : (d+1)*blockSize]
		if ins[0].op != opInp ||
			ins[divZAt].op != opDiv || ins[divZAt].a != regZ || !ins[divZAt].imm ||
			ins[addXAt].op != opAdd || ins[addXAt].a != regX || !ins[addXAt].imm ||
			ins[addYAt].op != opAdd || ins[addYAt].a != regY || !ins[addYAt].imm {
			return nil, aoc.Invalidf("digit block %d does not match the MONAD shape", d)
		}
		b := block{divZ: ins[divZAt].b, addX: ins[addXAt].b, addY: ins[addYAt].b}
		if b.divZ != 1 && b.divZ != 26 {
			return nil, aoc.Invalidf("digit block %d divides z by %d", d, b.divZ)
		}
		out[d] = b
	}
	return out, nil
}

// modelNumber pairs each pop block with the push it cancels, giving
// w[pop] = w[push] + offset, and picks the largest or smallest digits
// satisfying every pair.
func modelNumber(bs []block, largest bool) ([]int, error) {
	w := make([]int, len(bs))
	type pushed struct{ at, addY int }
	var stack []pushed
	for i, b := range bs {
		if b.divZ == 1 {
			stack = append(stack, pushed{i, b.addY})
			continue
		}
		if len(stack) == 0 {
			return nil, fmt.Errorf("%w: block %d pops an empty stack", domain.ErrNoSolution, i)
		}
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		off := p.addY + b.addX
		if aoc.Abs(off) > 8 {
			return nil, fmt.Errorf("%w: digits %d and %d differ by %d", domain.ErrNoSolution, p.at, i, off)
		}
		if largest {
			w[p.at] = min(9, 9-off)
		} else {
			w[p.at] = max(1, 1-off)
		}
		w[i] = w[p.at] + off
	}
	if len(stack) != 0 {
		return nil, fmt.Errorf("%w: %d pushes are never popped", domain.ErrNoSolution, len(stack))
	}
	return w, nil
}

func solve(input []byte, largest bool) (int64, error) {
	prog, err := parseProgram(input)
	if err != nil {
		return 0, err
	}
	bs, err := blocks(prog)
	if err != nil {
		return 0, err
	}
	w, err := modelNumber(bs, largest)
	if err != nil {
		return 0, err
	}

	regs, err := run(prog, w)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrExecution, err)
	}
	if regs[regZ] != 0 {
		return 0, fmt.Errorf("%w: MONAD rejects %v", domain.ErrNoSolution, w)
	}

	var n int64
	for _, d := range w {
		n = n*10 + int64(d)
	}
	return n, nil
}

// Part1 returns the largest model number MONAD accepts.
func Part1(input []byte) (int64, error) { return solve(input, true) }

// Part2 returns the smallest model number MONAD accepts.
func Part2(input []byte) (int64, error) { return solve(input, false) }
