package fixtures

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/ports"
)

const defaultDataDir = "data"

// Loader reads NN_kind[V].txt fixtures from the data directory.
type Loader struct {
	root    string
	dataDir string
}

func NewLoader(root string, opts ...Option) *Loader {
	l := &Loader{root: root, dataDir: defaultDataDir}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

type Option func(*Loader)

// WithDataDir sets the data directory, relative to root unless absolute.
func WithDataDir(dir string) Option {
	return func(l *Loader) {
		if dir != "" {
			l.dataDir = dir
		}
	}
}

var _ ports.FixtureLoader = (*Loader)(nil)

// Dir returns the absolute-or-root-relative data directory.
func (l *Loader) Dir() string {
	if filepath.IsAbs(l.dataDir) {
		return l.dataDir
	}
	return filepath.Join(l.root, l.dataDir)
}

// Path returns where ref lives, whether or not it exists.
func (l *Loader) Path(ref domain.FixtureRef) string {
	return filepath.Join(l.Dir(), ref.FileName())
}

func (l *Loader) Load(ref domain.FixtureRef) ([]byte, error) {
	return readFixture(l.Path(ref))
}

func readFixture(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if os.IsNotExist(err) {
			kind = domain.KindNotFound
		}
		return nil, &domain.OpError{
			Op:   "fixtures.load",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}
	return b, nil
}

func (l *Loader) Exists(ref domain.FixtureRef) bool {
	info, err := os.Stat(l.Path(ref))
	return err == nil && !info.IsDir()
}

// List returns every fixture in the data directory, sorted by day, kind and
// variant. Files that do not follow the naming scheme are ignored.
func (l *Loader) List() ([]domain.FixtureRef, error) {
	dir := l.Dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "fixtures.list",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.FixtureRef
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".txt" {
			continue
		}
		ref, err := domain.ParseFixtureStem(e.Name())
		if err != nil {
			continue
		}
		refs = append(refs, ref)
	}

	sort.Slice(refs, func(i, j int) bool {
		a, b := refs[i], refs[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		if a.Kind != b.Kind {
			return a.Kind == domain.FixtureTest
		}
		return a.Variant < b.Variant
	})
	return refs, nil
}

// Variants returns the fixtures of one day and kind in variant order.
func Variants(refs []domain.FixtureRef, day int, kind domain.FixtureKind) []domain.FixtureRef {
	var out []domain.FixtureRef
	for _, r := range refs {
		if r.Day == day && r.Kind == kind {
			out = append(out, r)
		}
	}
	return out
}
