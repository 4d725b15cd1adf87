package day08

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/testutil"
)

func TestExample(t *testing.T) {
	in := testutil.Example(t, 8, 0)

	got, err := Part1(in)
	require.NoError(t, err)
	assert.Equal(t, 26, got)

	got, err = Part2(in)
	require.NoError(t, err)
	assert.Equal(t, 61229, got)
}

func TestDecodeSingleDisplay(t *testing.T) {
	entries, err := parse(testutil.Example(t, 8, 2))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	v, err := entries[0].decode()
	require.NoError(t, err)
	assert.Equal(t, 5353, v)
}

func TestBadInput(t *testing.T) {
	_, err := Part1([]byte("ab cd | ef\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFixtures(t *testing.T) {
	testutil.CheckFixtures(t, 8)
}
