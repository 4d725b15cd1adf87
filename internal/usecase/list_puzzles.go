package usecase

import (
	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/ports"
)

// PuzzleRow summarizes one registered day.
type PuzzleRow struct {
	Day      int      `json:"day"`
	Title    string   `json:"title"`
	Parts    int      `json:"parts"`
	Fixtures []string `json:"fixtures"`
	Answers  []string `json:"answers"` // fixtures with at least one recorded answer
}

type ListPuzzles struct {
	catalog  ports.PuzzleCatalog
	fixtures ports.FixtureLoader
	answers  ports.AnswerBook
}

func NewListPuzzles(catalog ports.PuzzleCatalog, fixtures ports.FixtureLoader, answers ports.AnswerBook) *ListPuzzles {
	return &ListPuzzles{catalog: catalog, fixtures: fixtures, answers: answers}
}

func (uc *ListPuzzles) Execute() ([]PuzzleRow, error) {
	refs, err := uc.fixtures.List()
	if err != nil {
		return nil, err
	}

	byDay := map[int][]domain.FixtureRef{}
	for _, r := range refs {
		byDay[r.Day] = append(byDay[r.Day], r)
	}

	puzzles := uc.catalog.All()
	rows := make([]PuzzleRow, 0, len(puzzles))
	for _, p := range puzzles {
		row := PuzzleRow{
			Day:      p.Day,
			Title:    p.Title,
			Parts:    len(p.Parts()),
			Fixtures: []string{},
			Answers:  []string{},
		}
		for _, r := range byDay[p.Day] {
			row.Fixtures = append(row.Fixtures, r.Stem())
			if uc.answers == nil {
				continue
			}
			if e, ok := uc.answers.Expected(r); ok && (e.Part1 != "" || e.Part2 != "") {
				row.Answers = append(row.Answers, r.Stem())
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
