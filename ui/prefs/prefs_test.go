package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	p := LoadFrom(filepath.Join(t.TempDir(), "none.json"))
	assert.Equal(t, "info", p.LogLevel())
	assert.Equal(t, "console", p.LogFormat())
	assert.Equal(t, 0, p.HistoryLimit())
	assert.True(t, p.Bool(KeyGrid, true))
	w, h := p.WindowSize(1200, 800)
	assert.Equal(t, float32(1200), w)
	assert.Equal(t, float32(800), h)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", prefsFile)
	p := LoadFrom(path)
	p.SetString(KeyLastDir, "/tmp/designs")
	p.SetString(KeyViewMode, "3D")
	p.SetFloat(KeyZoom, 1.5)
	p.SetFloat(KeyHistoryLimit, 25)
	p.SetFloat(KeyWindowWidth, 1024)
	p.SetFloat(KeyWindowHeight, 768)
	p.SetBool(KeyGrid, false)
	require.NoError(t, p.Save())

	q := LoadFrom(path)
	assert.Equal(t, "/tmp/designs", q.String(KeyLastDir))
	assert.Equal(t, "3D", q.String(KeyViewMode))
	assert.Equal(t, 1.5, q.Float(KeyZoom))
	assert.Equal(t, 25, q.HistoryLimit())
	assert.False(t, q.Bool(KeyGrid, true))
	w, h := q.WindowSize(1200, 800)
	assert.Equal(t, float32(1024), w)
	assert.Equal(t, float32(768), h)
}

func TestLoadFrom_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{oops"), 0o644))
	p := LoadFrom(path)
	assert.Equal(t, "", p.String(KeyLastDir))
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	p := LoadFrom(path)
	p.SetString(KeyLogLevel, "warn")
	require.NoError(t, p.Save())

	t.Setenv("ROOMPLANNER_LOG_LEVEL", "debug")
	t.Setenv("ROOMPLANNER_LOG_FORMAT", "json")
	q := LoadFrom(path)
	assert.Equal(t, "debug", q.LogLevel())
	assert.Equal(t, "json", q.LogFormat())

	// Overrides are not persisted.
	require.NoError(t, q.Save())
	t.Setenv("ROOMPLANNER_LOG_LEVEL", "")
	t.Setenv("ROOMPLANNER_LOG_FORMAT", "")
	assert.Equal(t, "warn", LoadFrom(path).LogLevel())
}
