package runstore

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/ports"
)

const (
	defaultRunsDir = "runs"
	indexFile      = "index.jsonl"
)

type JSONStore struct {
	rootDir     string
	runsDirName string
	writeIndex  bool
	now         func() time.Time
	log         *slog.Logger
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: runs/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

// WithLogger receives index write failures; the run file itself is still saved.
func WithLogger(l *slog.Logger) Option {
	return func(s *JSONStore) {
		if l != nil {
			s.log = l
		}
	}
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	runsDir := cfg.Paths.RunsDir
	if strings.TrimSpace(runsDir) == "" {
		runsDir = defaultRunsDir
	}

	s := &JSONStore{
		rootDir:     root,
		runsDirName: runsDir,
		writeIndex:  true,
		now:         time.Now,
		log:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var (
	_ ports.ArtifactStore  = (*JSONStore)(nil)
	_ ports.ArtifactReader = (*JSONStore)(nil)
)

// Dir returns the absolute or root-relative runs directory.
func (s *JSONStore) Dir() string {
	if filepath.IsAbs(s.runsDirName) {
		return s.runsDirName
	}
	return filepath.Join(s.rootDir, s.runsDirName)
}

// SaveRun writes the report as runs/<timestamp>_<kind>.json and returns its ID.
// Runs started in the same second get a numeric suffix.
func (s *JSONStore) SaveRun(run domain.RunReport) (string, error) {
	dir := s.Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindExecution,
			Path: dir,
			Err:  err,
		}
	}

	ts := run.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()
	if run.StartedAt.IsZero() {
		run.StartedAt = ts
	}

	kind := slugify(string(run.Kind))
	if kind == "" {
		kind = "run"
	}
	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405Z"), kind)
	id := base
	for n := 2; ; n++ {
		if _, err := os.Stat(filepath.Join(dir, id+".json")); errors.Is(err, os.ErrNotExist) {
			break
		}
		id = fmt.Sprintf("%s_%d", base, n)
	}
	filename := id + ".json"
	path := filepath.Join(dir, filename)
	run.ID = id

	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		if err := s.appendIndex(dir, filename, run); err != nil {
			s.log.Warn("runstore.index_failed", "id", id, "path", filepath.Join(dir, indexFile), "err", err)
		}
	}

	return id, nil
}

func (s *JSONStore) appendIndex(dir, filename string, run domain.RunReport) error {
	days := make([]int, 0, len(run.Results))
	for _, d := range run.Results {
		days = append(days, d.Day)
	}
	line, err := json.Marshal(domain.RunSummary{
		ID:        run.ID,
		File:      filename,
		Kind:      run.Kind,
		Days:      days,
		Failures:  run.Failures(),
		StartedAt: run.StartedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// ListRuns reads the index, newest first. A missing index means no runs;
// unreadable lines are skipped.
func (s *JSONStore) ListRuns() ([]domain.RunSummary, error) {
	path := filepath.Join(s.Dir(), indexFile)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.OpError{
			Op:   "runstore.list",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var out []domain.RunSummary
	sc := bufio.NewScanner(bytes.NewReader(b))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 {
			continue
		}
		var rs domain.RunSummary
		if err := json.Unmarshal(line, &rs); err != nil || rs.ID == "" {
			continue
		}
		out = append(out, rs)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartedAt.After(out[j].StartedAt)
	})
	return out, nil
}

// LoadRun returns the raw JSON of a saved run.
func (s *JSONStore) LoadRun(id string) ([]byte, error) {
	id = strings.TrimSuffix(strings.TrimSpace(id), ".json")
	if id == "" || strings.ContainsAny(id, `/\`) || strings.Contains(id, "..") {
		return nil, &domain.OpError{
			Op:   "runstore.load",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("bad run id %q", id),
		}
	}
	path := filepath.Join(s.Dir(), id+".json")
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "runstore.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}
