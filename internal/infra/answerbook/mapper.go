package answerbook

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

func mapBook(path string, dto yamlBook) (*Book, error) {
	b := New()
	for stem, e := range dto.Answers {
		ref, err := domain.ParseFixtureStem(stem)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "answerbook.map",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("answers key %q: %w", stem, err),
			}
		}
		b.Set(ref, domain.ExpectedAnswers{
			Part1: normalize(e.Part1),
			Part2: normalize(e.Part2),
		})
	}
	return b, nil
}

func normalize(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
