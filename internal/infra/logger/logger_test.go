package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWritesJSONLines(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root, Debug: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, Dir, "logs", FileName), Path())

	L().Debug("day.done", "day", 7)
	require.NoError(t, cleanup())
	assert.Empty(t, Path())

	b, err := os.ReadFile(filepath.Join(root, Dir, "logs", FileName))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "day.done", rec["msg"])
	assert.EqualValues(t, 7, rec["day"])
	assert.Contains(t, rec, "source")
	assert.Equal(t, "dev", rec["version"])
	assert.True(t, strings.HasSuffix(rec["time"].(string), "Z"))
}

func TestInfoLevelDropsDebug(t *testing.T) {
	root := t.TempDir()

	cleanup, err := Setup(Config{Root: root})
	require.NoError(t, err)
	L().Debug("hidden")
	L().Info("shown")
	require.NoError(t, cleanup())

	b, err := os.ReadFile(filepath.Join(root, Dir, "logs", FileName))
	require.NoError(t, err)
	assert.NotContains(t, string(b), "hidden")
	assert.Contains(t, string(b), "shown")
}

func TestSetupFailureDiscards(t *testing.T) {
	root := t.TempDir()
	// A file where the log directory should be.
	require.NoError(t, os.WriteFile(filepath.Join(root, Dir), []byte("x"), 0o600))

	_, err := Setup(Config{Root: root})
	require.Error(t, err)
	assert.Empty(t, Path())
	L().Info("still safe")
}
