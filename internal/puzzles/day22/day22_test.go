package day22

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/testutil"
)

func TestSmallExample(t *testing.T) {
	in := testutil.Example(t, 22, 0)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.EqualValues(t, 39, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.EqualValues(t, 39, got)
}

func TestLargerExamples(t *testing.T) {
	tests := []struct {
		variant      int
		part1, part2 int64
	}{
		{2, 590784, 39769202357779},
		{3, 474140, 2758514936282235},
	}
	for _, tt := range tests {
		in := testutil.Example(t, 22, tt.variant)

		got, err := Part1(in)
		require.NoError(t, err)
		assert.EqualValues(t, tt.part1, got, "variant %d", tt.variant)

		got, err = Part2(in)
		require.NoError(t, err)
		assert.EqualValues(t, tt.part2, got, "variant %d", tt.variant)
	}
}

func TestOverlappingSteps(t *testing.T) {
	in := []byte("on x=0..9,y=0..9,z=0..9\non x=5..14,y=0..9,z=0..9\noff x=0..14,y=0..0,z=0..9\n")
	got, err := Part2(in)
	require.NoError(t, err)
	assert.EqualValues(t, 1500-150, got)
}

func TestOutsideRegion(t *testing.T) {
	got, err := Part1([]byte("on x=60..70,y=0..1,z=0..1\n"))
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestBadStep(t *testing.T) {
	for _, in := range []string{"toggle x=1..2,y=1..2,z=1..2\n", "on x=3..1,y=1..2,z=1..2\n"} {
		_, err := Part1([]byte(in))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, in)
	}
}

func TestFixtures(t *testing.T) {
	testutil.CheckFixtures(t, 22)
}
