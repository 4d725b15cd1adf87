package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/testutil"
)

func TestExample(t *testing.T) {
	in := testutil.Example(t, 5, 0)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestSinglePointSegment(t *testing.T) {
	got, err := Part1([]byte("1,1 -> 1,1\n1,1 -> 1,3\n"))
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestBadInput(t *testing.T) {
	for _, in := range []string{"1,1 1,3\n", "1,1 -> 2,5\n", "1 -> 2,2\n"} {
		_, err := Part1([]byte(in))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}

func TestFixtures(t *testing.T) {
	testutil.CheckFixtures(t, 5)
}
