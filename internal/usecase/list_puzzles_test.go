package usecase

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

func TestListPuzzles(t *testing.T) {
	cat := fakeCatalog{
		{Day: 25, Title: "Sea Cucumber", Part1: answer("58")},
		{Day: 12, Title: "Passage Pathing", Part1: answer("10"), Part2: answer("36")},
	}
	loader := &fakeLoader{files: map[string]string{
		"12_test":  "",
		"12_test2": "",
		"12_input": "",
	}}
	book := fakeBook{
		"12_test":  {Part1: "10", Part2: "36"},
		"12_input": {},
	}

	rows, err := NewListPuzzles(cat, loader, book).Execute()
	require.NoError(t, err)

	want := []PuzzleRow{
		{Day: 12, Title: "Passage Pathing", Parts: 2, Fixtures: []string{"12_input", "12_test", "12_test2"}, Answers: []string{"12_test"}},
		{Day: 25, Title: "Sea Cucumber", Parts: 1, Fixtures: []string{}, Answers: []string{}},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestListPuzzles_NoDataDir(t *testing.T) {
	_, err := NewListPuzzles(fakeCatalog{}, &fakeLoader{}, nil).Execute()
	require.True(t, domain.IsKind(err, domain.KindNotFound))
}
