package fsworkspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/aoc2021/internal/domain"
	"github.com/aalvaropc/aoc2021/internal/infra/logger"
	"github.com/aalvaropc/aoc2021/internal/ports"
)

type Initializer struct{}

var _ ports.WorkspaceInitializer = (*Initializer)(nil)

func NewInitializer() *Initializer {
	return &Initializer{}
}

// Init scaffolds aoc.yaml, the data and runs directories and the answer
// book. Existing files are kept unless force is set.
func (i *Initializer) Init(spec domain.WorkspaceSpec, force bool) error {
	if strings.TrimSpace(spec.Root) == "" {
		return &domain.OpError{
			Op:   "fsworkspace.init",
			Kind: domain.KindInvalidConfig,
			Err:  errors.New("workspace root is empty"),
		}
	}
	root := filepath.Clean(spec.Root)

	// The templated aoc.yaml uses the default layout.
	paths := domain.DefaultConfig().Paths
	dirs := []string{
		filepath.Join(root, paths.DataDir),
		filepath.Join(root, paths.RunsDir),
		filepath.Join(root, logger.Dir, "logs"),
	}

	for _, d := range dirs {
		if err := os.MkdirAll(d, 0o755); err != nil {
			return initError(d, err)
		}
	}

	if err := ensureGitignore(root, paths.RunsDir, paths.DataDir); err != nil {
		return initError(filepath.Join(root, ".gitignore"), err)
	}

	return fs.WalkDir(templatesFS, "templates", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		dst := filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(p, "templates/")))

		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				return nil
			}
		}

		b, err := fs.ReadFile(templatesFS, p)
		if err != nil {
			return initError(p, err)
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return initError(dst, err)
		}
		if err := os.WriteFile(dst, b, 0o644); err != nil {
			return initError(dst, err)
		}
		return nil
	})
}

func initError(path string, err error) error {
	return &domain.OpError{
		Op:   "fsworkspace.init",
		Kind: domain.KindExecution,
		Path: path,
		Err:  err,
	}
}

func ensureGitignore(root, runsDir, dataDir string) error {
	const header = "# aoc2021"
	entries := []string{
		runsDir + "/",
		logger.Dir + "/",
		// Puzzle inputs are personal and may not be redistributed.
		dataDir + "/*_input.txt",
	}

	path := filepath.Join(root, ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lines := append([]string{header}, entries...)
			lines = append(lines, "")
			return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644)
		}
		return err
	}

	existing := string(b)
	present := map[string]bool{}
	for _, line := range strings.Split(existing, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			present[trimmed] = true
		}
	}

	var missing []string
	for _, e := range entries {
		if !present[e] {
			missing = append(missing, e)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var out strings.Builder
	out.WriteString(existing)
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		out.WriteByte('\n')
	}
	out.WriteByte('\n')
	if !present[header] {
		out.WriteString(header + "\n")
	}
	for _, e := range missing {
		out.WriteString(e + "\n")
	}

	return os.WriteFile(path, []byte(out.String()), 0o644)
}
