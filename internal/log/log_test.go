package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvsynth.log")

	require.NoError(t, Init(false, FileOptions{Path: path, MaxSizeMB: 1}))
	Infow("series written", "rows", 96)
	Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `"msg":"series written"`), "log file: %s", raw)
	assert.Contains(t, string(raw), `"rows":96`)
}

func TestDebugFiltered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvsynth.log")

	require.NoError(t, Init(false, FileOptions{Path: path}))
	Debugw("hidden")
	Sync()

	raw, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		t.Fatal(err)
	}
	assert.NotContains(t, string(raw), "hidden")
}

func TestFormattedHelpers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pvsynth.log")

	require.NoError(t, Init(true, FileOptions{Path: path}))
	Infof("pvsynth %s starting", "1.0")
	Debugw("output settings", "per_unit", true)
	Errorf("write failed: %v", "disk full")
	Sync()

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"pvsynth 1.0 starting"`)
	assert.Contains(t, string(raw), `"per_unit":true`)
	assert.Contains(t, string(raw), `"msg":"write failed: disk full"`)
}

func TestGetSugaredLoggerFallback(t *testing.T) {
	log = nil
	assert.NotNil(t, GetSugaredLogger())
}
