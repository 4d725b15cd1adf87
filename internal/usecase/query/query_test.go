package query

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

func sampleDoc(t *testing.T) []byte {
	t.Helper()
	r := domain.RunReport{
		ID:        "20211201T000000Z_test",
		Kind:      domain.FixtureTest,
		StartedAt: time.Date(2021, 12, 1, 0, 0, 0, 0, time.UTC),
		Results: []domain.DayResult{
			{Day: 1, Title: "Sonar Sweep", Parts: []domain.PartResult{
				{Part: 1, Answer: "7", Status: domain.StatusPass, DurationMS: 3},
				{Part: 2, Answer: "5", Status: domain.StatusPass},
			}},
			{Day: 13, Title: "Transparent Origami", Parts: []domain.PartResult{
				{Part: 2, Answer: "##\n#.", Status: domain.StatusUnchecked},
			}},
		},
	}
	b, err := json.Marshal(r)
	require.NoError(t, err)
	return b
}

func TestSelect(t *testing.T) {
	doc := sampleDoc(t)

	tests := []struct {
		expr string
		want string
	}{
		{"$.id", "20211201T000000Z_test"},
		{"$.results[0].parts[0].answer", "7"},
		{"$.results[0].parts[0].duration_ms", "3"},
		{"$.results[1].parts[0].answer", "##\n#."},
		{"$.results[*].day", "[1,13]"},
		{`$.results[?(@.day == 13)].title`, "Transparent Origami"},
	}
	for _, tt := range tests {
		got, err := Select(doc, tt.expr)
		require.NoError(t, err, tt.expr)
		assert.Equal(t, tt.want, got, tt.expr)
	}
}

func TestSelectErrors(t *testing.T) {
	doc := sampleDoc(t)

	_, err := Select(doc, "  ")
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	_, err = Select([]byte("{nope"), "$.id")
	assert.True(t, domain.IsKind(err, domain.KindInvalidInput))

	_, err = Select(doc, "$.missing")
	assert.Error(t, err)

	_, err = Select(doc, `$.results[?(@.day == 99)].title`)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}
