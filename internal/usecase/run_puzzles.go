package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/ports"
	"github.com/aalvaropc/aoc2021/internal/usecase/verify"
)

// RunRequest selects what to solve.
type RunRequest struct {
	Days    []int // empty means every registered day
	Kind    domain.FixtureKind
	Parts   []int // empty means every part
	Variant int
}

type RunPuzzles struct {
	catalog  ports.PuzzleCatalog
	fixtures ports.FixtureLoader
	answers  ports.AnswerBook
	store    ports.ArtifactStore

	parallelism int
	timeout     time.Duration
	log         *slog.Logger
	now         func() time.Time
}

type RunOption func(*RunPuzzles)

func WithParallelism(n int) RunOption {
	return func(uc *RunPuzzles) {
		if n > 0 {
			uc.parallelism = n
		}
	}
}

// WithTimeout bounds the whole run. Zero disables the bound.
func WithTimeout(d time.Duration) RunOption {
	return func(uc *RunPuzzles) { uc.timeout = d }
}

func WithLogger(l *slog.Logger) RunOption {
	return func(uc *RunPuzzles) {
		if l != nil {
			uc.log = l
		}
	}
}

func WithClock(now func() time.Time) RunOption {
	return func(uc *RunPuzzles) {
		if now != nil {
			uc.now = now
		}
	}
}

// NewRunPuzzles wires the run usecase. answers and store may be nil.
func NewRunPuzzles(catalog ports.PuzzleCatalog, fixtures ports.FixtureLoader, answers ports.AnswerBook, store ports.ArtifactStore, opts ...RunOption) *RunPuzzles {
	uc := &RunPuzzles{
		catalog:     catalog,
		fixtures:    fixtures,
		answers:     answers,
		store:       store,
		parallelism: 1,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute solves the requested days and returns the report and, when a store
// is configured, the saved run ID. A cancelled run returns the partial report
// with the context error and is not saved.
func (uc *RunPuzzles) Execute(ctx context.Context, req RunRequest) (domain.RunReport, string, error) {
	puzzles, err := uc.resolve(req)
	if err != nil {
		return domain.RunReport{}, "", err
	}
	if err := validParts(req.Parts); err != nil {
		return domain.RunReport{}, "", err
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.FixtureTest
	}

	if uc.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.timeout)
		defer cancel()
	}

	report := domain.RunReport{
		Kind:      kind,
		StartedAt: uc.now().UTC(),
		Results:   make([]domain.DayResult, len(puzzles)),
	}
	uc.log.Info("run.start",
		"days", dayNumbers(puzzles),
		"kind", kind,
		"parallelism", uc.parallelism,
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.parallelism)
	for i, p := range puzzles {
		i, p := i, p
		ref := domain.FixtureRef{Day: p.Day, Kind: kind, Variant: req.Variant}
		if ctx.Err() != nil {
			report.Results[i] = skippedDay(p, ref, req.Parts)
			continue
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				report.Results[i] = skippedDay(p, ref, req.Parts)
				return nil
			}
			report.Results[i] = uc.runDay(gctx, p, ref, req.Parts)
			return nil
		})
	}
	_ = g.Wait()

	report.EndedAt = uc.now().UTC()

	if err := ctx.Err(); err != nil {
		uc.log.Warn("run.cancelled", "err", err)
		return report, "", err
	}

	if uc.store == nil {
		return report, "", nil
	}
	id, err := uc.store.SaveRun(report)
	if err != nil {
		return report, "", err
	}
	report.ID = id
	uc.log.Info("run.saved", "id", id, "failures", report.Failures())
	return report, id, nil
}

func (uc *RunPuzzles) resolve(req RunRequest) ([]domain.Puzzle, error) {
	if len(req.Days) == 0 {
		all := uc.catalog.All()
		if len(all) == 0 {
			return nil, &domain.OpError{
				Op:   "usecase.runpuzzles",
				Kind: domain.KindNotFound,
				Err:  fmt.Errorf("no puzzles registered"),
			}
		}
		return all, nil
	}

	days := slices.Clone(req.Days)
	slices.Sort(days)
	days = slices.Compact(days)

	out := make([]domain.Puzzle, 0, len(days))
	for _, d := range days {
		p, ok := uc.catalog.Lookup(d)
		if !ok {
			kind := domain.KindNotFound
			if !domain.ValidDay(d) {
				kind = domain.KindInvalidInput
			}
			return nil, &domain.OpError{
				Op:   "usecase.runpuzzles",
				Kind: kind,
				Err:  fmt.Errorf("day %d has no solver", d),
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func validParts(parts []int) error {
	for _, n := range parts {
		if n != 1 && n != 2 {
			return &domain.OpError{
				Op:   "usecase.runpuzzles",
				Kind: domain.KindInvalidInput,
				Err:  fmt.Errorf("part %d does not exist (expected 1 or 2)", n),
			}
		}
	}
	return nil
}

func (uc *RunPuzzles) runDay(ctx context.Context, p domain.Puzzle, ref domain.FixtureRef, only []int) domain.DayResult {
	res := domain.DayResult{
		Day:     p.Day,
		Title:   p.Title,
		Fixture: ref.Stem(),
	}

	input, err := uc.fixtures.Load(ref)
	if err != nil {
		res.Error = domain.NewRunError(err)
		uc.log.Warn("day.failed", "day", p.Day, "fixture", res.Fixture, "err", err)
		return res
	}

	var expected domain.ExpectedAnswers
	if uc.answers != nil {
		expected, _ = uc.answers.Expected(ref)
	}

	started := uc.now()
	for _, part := range selectParts(p, only) {
		if ctx.Err() != nil {
			res.Parts = append(res.Parts, domain.PartResult{Part: part.Number, Status: domain.StatusSkipped})
			continue
		}
		res.Parts = append(res.Parts, uc.runPart(ctx, p.Day, part, input, expected.For(part.Number)))
	}

	uc.log.Debug("day.done",
		"day", p.Day,
		"fixture", res.Fixture,
		"duration_ms", uc.now().Sub(started).Milliseconds(),
		"failed", res.Failed(),
	)
	return res
}

// runPart solves one part. When ctx ends first the solver is abandoned and
// the part is recorded as skipped; its goroutine exits whenever it returns.
func (uc *RunPuzzles) runPart(ctx context.Context, day int, part domain.Part, input []byte, expected string) domain.PartResult {
	start := uc.now()
	done := make(chan solved, 1)
	go func() {
		answer, err := solve(part.Solve, input)
		done <- solved{answer, err}
	}()

	var res solved
	select {
	case res = <-done:
	case <-ctx.Done():
		err := &domain.OpError{
			Op:   "puzzles.solve",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("abandoned: %w", ctx.Err()),
		}
		uc.log.Warn("part.abandoned", "day", day, "part", part.Number, "err", err)
		return domain.PartResult{
			Part:       part.Number,
			Expected:   expected,
			Status:     domain.StatusSkipped,
			Message:    err.Error(),
			DurationMS: uc.now().Sub(start).Milliseconds(),
			Error:      domain.NewRunError(err),
		}
	}

	answer, err := res.answer, res.err
	out := domain.PartResult{
		Part:       part.Number,
		Answer:     answer,
		Expected:   expected,
		DurationMS: uc.now().Sub(start).Milliseconds(),
	}

	if err != nil {
		out.Status = domain.StatusError
		out.Error = domain.NewRunError(err)
		out.Message = err.Error()
		uc.log.Warn("part.failed", "day", day, "part", part.Number, "kind", out.Error.Kind, "err", err)
		return out
	}

	v := verify.Answer(expected, answer)
	out.Status = v.Status
	out.Message = v.Message
	if v.Status == domain.StatusFail {
		uc.log.Warn("part.failed", "day", day, "part", part.Number, "msg", v.Message)
	}
	return out
}

type solved struct {
	answer string
	err    error
}

// solve runs f and turns a panic into an execution error.
func solve(f domain.PartFunc, input []byte) (answer string, err error) {
	defer func() {
		if r := recover(); r != nil {
			answer = ""
			err = &domain.OpError{
				Op:   "puzzles.solve",
				Kind: domain.KindExecution,
				Err:  fmt.Errorf("panic: %v", r),
			}
		}
	}()
	return f(input)
}

func selectParts(p domain.Puzzle, only []int) []domain.Part {
	parts := p.Parts()
	if len(only) == 0 {
		return parts
	}
	out := parts[:0:0]
	for _, part := range parts {
		if slices.Contains(only, part.Number) {
			out = append(out, part)
		}
	}
	return out
}

func skippedDay(p domain.Puzzle, ref domain.FixtureRef, only []int) domain.DayResult {
	res := domain.DayResult{Day: p.Day, Title: p.Title, Fixture: ref.Stem()}
	for _, part := range selectParts(p, only) {
		res.Parts = append(res.Parts, domain.PartResult{Part: part.Number, Status: domain.StatusSkipped})
	}
	return res
}

func dayNumbers(ps []domain.Puzzle) []int {
	out := make([]int, len(ps))
	for i, p := range ps {
		out[i] = p.Day
	}
	return out
}
