package usecase

import (
	"errors"
	"os"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/aalvaropc/aoc2021/internal/domain"
)

// --- fakes shared by the usecase tests ---

type fakeCatalog []domain.Puzzle

func (c fakeCatalog) Lookup(day int) (domain.Puzzle, bool) {
	for _, p := range c {
		if p.Day == day {
			return p, true
		}
	}
	return domain.Puzzle{}, false
}

func (c fakeCatalog) All() []domain.Puzzle {
	out := append([]domain.Puzzle(nil), c...)
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// fakeLoader serves fixtures keyed by stem.
type fakeLoader struct {
	files map[string]string
	loads atomic.Int32
}

func (l *fakeLoader) Load(ref domain.FixtureRef) ([]byte, error) {
	l.loads.Add(1)
	s, ok := l.files[ref.Stem()]
	if !ok {
		return nil, &domain.OpError{
			Op:   "fixtures.load",
			Kind: domain.KindNotFound,
			Path: "data/" + ref.FileName(),
			Err:  os.ErrNotExist,
		}
	}
	return []byte(s), nil
}

func (l *fakeLoader) Exists(ref domain.FixtureRef) bool {
	_, ok := l.files[ref.Stem()]
	return ok
}

func (l *fakeLoader) List() ([]domain.FixtureRef, error) {
	if l.files == nil {
		return nil, &domain.OpError{Op: "fixtures.list", Kind: domain.KindNotFound, Err: os.ErrNotExist}
	}
	var out []domain.FixtureRef
	for stem := range l.files {
		ref, err := domain.ParseFixtureStem(stem)
		if err != nil {
			continue
		}
		out = append(out, ref)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stem() < out[j].Stem() })
	return out, nil
}

type fakeBook map[string]domain.ExpectedAnswers

func (b fakeBook) Expected(ref domain.FixtureRef) (domain.ExpectedAnswers, bool) {
	e, ok := b[ref.Stem()]
	return e, ok
}

type fakeStore struct {
	mu    sync.Mutex
	saved []domain.RunReport
	err   error
}

func (s *fakeStore) SaveRun(run domain.RunReport) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	s.saved = append(s.saved, run)
	return "run-123", nil
}

func (s *fakeStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

var errBoom = errors.New("boom")

func answer(s string) domain.PartFunc {
	return func([]byte) (string, error) { return s, nil }
}

func failing(err error) domain.PartFunc {
	return func([]byte) (string, error) { return "", err }
}
