package all_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/puzzles"
	_ "github.com/aalvaropc/aoc2021/internal/puzzles/all"
)

func TestEveryDayRegistered(t *testing.T) {
	all := puzzles.All()
	require.Len(t, all, domain.LastDay)
	for i, p := range all {
		assert.Equal(t, i+1, p.Day)
		assert.NotEmpty(t, p.Title, "day %d", p.Day)
		assert.NotNil(t, p.Part1, "day %d", p.Day)
		if p.Day != domain.LastDay {
			assert.NotNil(t, p.Part2, "day %d", p.Day)
		}
	}
}
