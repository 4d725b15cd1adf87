package ports

import "github.com/aalvaropc/aoc2021/internal/domain"

// AnswerBook returns the recorded answers for a fixture.
type AnswerBook interface {
	Expected(ref domain.FixtureRef) (domain.ExpectedAnswers, bool)
}
