package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLogger_WritesJSONLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hub.log")
	l := NewIsolatedLogger(path)

	l.Debug("Hub", "dropped below info", nil)
	l.Info("Hub", "Client registered", map[string]interface{}{"session_id": "s-1"})
	l.Error("Hub", "Push failed", map[string]interface{}{"error": "closed"})
	_ = l.Sync()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]interface{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}

	require.Len(t, entries, 2)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Client registered", entries[0]["message"])
	assert.Equal(t, "Hub", entries[0]["module"])
	assert.Contains(t, entries[0]["caller"], "zap_logger_test.go")
	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "closed", entries[1]["error_ref"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	assert.NotPanics(t, func() {
		l.Info("Test", "nothing", nil)
		l.Warn("Test", "nothing", map[string]interface{}{"k": 1})
	})
}
