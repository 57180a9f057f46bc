package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		out = append(out, entry)
	}
	return out
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "app.log")
	logger, closeFn := New(DefaultOptions(path, false))

	logger.Info("module started", zap.String("module", "module-1"), zap.Int("score", 60))
	logger.Debug("hidden at info level")
	require.NoError(t, closeFn())

	entries := readLines(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "module started", entries[0]["msg"])
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "module-1", entries[0]["module"])
	assert.EqualValues(t, 60, entries[0]["score"])
	assert.Contains(t, entries[0], "caller")
}

func TestNew_DebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	logger, closeFn := New(DefaultOptions(path, true))

	logger.Debug("option shuffled")
	require.NoError(t, closeFn())

	entries := readLines(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0]["level"])
}

func TestNewNop(t *testing.T) {
	logger, closeFn := NewNop()
	logger.Error("dropped")
	assert.NoError(t, closeFn())
}
