package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/testutil"
)

func TestExample(t *testing.T) {
	in := testutil.Example(t, 2, 0)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 150, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 900, got)
}

func TestBadInput(t *testing.T) {
	for _, in := range []string{"sideways 3\n", "forward\n", "down x\n"} {
		_, err := Part1([]byte(in))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}

func TestFixtures(t *testing.T) {
	testutil.CheckFixtures(t, 2)
}
