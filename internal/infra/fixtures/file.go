package fixtures

import (
	"os"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/ports"
)

// File serves a single input file for every fixture ref. It backs
// `run DAY --file PATH` for inputs kept outside the data directory.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

var _ ports.FixtureLoader = (*File)(nil)

func (f *File) Path() string { return f.path }

func (f *File) Load(domain.FixtureRef) ([]byte, error) {
	return readFixture(f.path)
}

func (f *File) Exists(domain.FixtureRef) bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

// List is empty: a single file has no fixture name to report.
func (f *File) List() ([]domain.FixtureRef, error) {
	return nil, nil
}
