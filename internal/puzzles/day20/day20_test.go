package day20

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/testutil"
)

func TestEnhanceStableBackground(t *testing.T) {
	algo, im, err := parse(testutil.Example(t, 20, 0))
	require.NoError(t, err)
	require.False(t, algo[0])

	im = im.enhance(&algo)
	assert.False(t, im.background)
	assert.Equal(t, 7, im.px.W)
}

func TestExample(t *testing.T) {
	in := testutil.Example(t, 20, 0)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 35, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 3351, got)
}

func TestFlippingBackground(t *testing.T) {
	algo, im, err := parse(testutil.Example(t, 20, 2))
	require.NoError(t, err)
	require.True(t, algo[0])
	require.False(t, algo[511])

	im = im.enhance(&algo)
	assert.True(t, im.background)
	im = im.enhance(&algo)
	assert.False(t, im.background)
}

func TestOddStepsOnFlippingBackground(t *testing.T) {
	_, err := run(testutil.Example(t, 20, 2), 1)
	assert.ErrorIs(t, err, domain.ErrNoSolution)
}

func TestShortAlgorithm(t *testing.T) {
	in := strings.Repeat(".", 10) + "\n\n#.\n.#\n"
	_, err := Part1([]byte(in))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFixtures(t *testing.T) {
	testutil.CheckFixtures(t, 20)
}
