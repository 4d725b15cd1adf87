package day24

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/testutil"
)

func mustProgram(t *testing.T, src string) []instr {
	t.Helper()
	prog, err := parseProgram([]byte(src))
	require.NoError(t, err)
	return prog
}

func TestNegate(t *testing.T) {
	prog := mustProgram(t, "inp x\nmul x -1\n")
	r, err := run(prog, []int{5})
	require.NoError(t, err)
	assert.Equal(t, -5, r[regX])
}

func TestTripleCompare(t *testing.T) {
	prog := mustProgram(t, "inp z\ninp x\nmul z 3\neql z x\n")

	r, err := run(prog, []int{2, 6})
	require.NoError(t, err)
	assert.Equal(t, 1, r[regZ])

	r, err = run(prog, []int{2, 7})
	require.NoError(t, err)
	assert.Equal(t, 0, r[regZ])
}

func TestBinary(t *testing.T) {
	prog := mustProgram(t, `inp w
add z w
mod z 2
div w 2
add y w
mod y 2
div w 2
add x w
mod x 2
div w 2
mod w 2
`)
	r, err := run(prog, []int{11})
	require.NoError(t, err)
	assert.Equal(t, registers{1, 0, 1, 1}, r)
}

func TestRunErrors(t *testing.T) {
	_, err := run(mustProgram(t, "inp x\ninp y\n"), []int{1})
	assert.Error(t, err)

	_, err = run(mustProgram(t, "inp x\ndiv x 0\n"), []int{1})
	assert.Error(t, err)

	_, err = run(mustProgram(t, "inp x\nmod x -2\n"), []int{1})
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	for _, src := range []string{"jmp x 1", "inp q", "add x", "add x foo"} {
		_, err := parseProgram([]byte(src))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, src)
	}
}

func TestModelNumbersAccepted(t *testing.T) {
	in := testutil.Example(t, 24, 0)
	prog := mustProgram(t, string(in))

	for _, largest := range []bool{true, false} {
		n, err := solve(in, largest)
		require.NoError(t, err)

		var w []int
		for d := n; d > 0; d /= 10 {
			w = append([]int{int(d % 10)}, w...)
		}
		require.Len(t, w, digits)
		assert.NotContains(t, w, 0)

		r, err := run(prog, w)
		require.NoError(t, err)
		assert.Zero(t, r[regZ], "z for %d", n)
	}
}

func TestNotMonad(t *testing.T) {
	_, err := Part1([]byte("inp w\nadd z w\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFixtures(t *testing.T) {
	testutil.CheckFixtures(t, 24)
}
