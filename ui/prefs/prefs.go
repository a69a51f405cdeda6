// Package prefs provides JSON-based application preferences.
package prefs

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goccy/go-json"
)

const (
	appDir    = "room-planner"
	prefsFile = "preferences.json"
)

// Preference keys.
const (
	KeyLastDir      = "last_dir"
	KeyViewMode     = "view_mode" // "2D" or "3D"
	KeyZoom         = "zoom"
	KeyGrid         = "grid"
	KeyWindowWidth  = "window_width"
	KeyWindowHeight = "window_height"
	KeyLogLevel     = "log_level"
	KeyLogFormat    = "log_format"
	KeyHistoryLimit = "history_limit"
)

// Environment variables that override stored values for the session.
var envOverrides = map[string]string{
	"ROOMPLANNER_LOG_LEVEL":  KeyLogLevel,
	"ROOMPLANNER_LOG_FORMAT": KeyLogFormat,
}

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu        sync.RWMutex
	values    map[string]interface{}
	overrides map[string]string // from the environment; never saved
	path      string
}

// DefaultPath returns ~/.config/room-planner/preferences.json (or the
// platform equivalent).
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(configDir, appDir, prefsFile)
}

// Load reads preferences from DefaultPath.
func Load() *Prefs {
	return LoadFrom(DefaultPath())
}

// LoadFrom reads preferences from path and applies environment overrides.
// Returns a Prefs with defaults if the file doesn't exist or is unreadable.
func LoadFrom(path string) *Prefs {
	p := &Prefs{
		values:    make(map[string]interface{}),
		overrides: make(map[string]string),
		path:      path,
	}

	if data, err := os.ReadFile(p.path); err == nil {
		if err := json.Unmarshal(data, &p.values); err != nil {
			p.values = make(map[string]interface{})
		}
	}

	for env, key := range envOverrides {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			p.overrides[key] = v
		}
	}
	return p
}

// Path returns the file preferences are saved to.
func (p *Prefs) Path() string { return p.path }

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return fallback
}

// Float returns a float64 preference, or 0 if not set.
func (p *Prefs) Float(key string) float64 {
	return p.FloatWithFallback(key, 0)
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// StringWithFallback returns a string preference, or fallback if not set.
// Environment overrides take precedence.
func (p *Prefs) StringWithFallback(key, fallback string) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.overrides[key]; ok {
		return v
	}
	if v, ok := p.values[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return fallback
}

// String returns a string preference, or "" if not set.
func (p *Prefs) String(key string) string {
	return p.StringWithFallback(key, "")
}

// SetString stores a string preference.
func (p *Prefs) SetString(key string, val string) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Bool returns a bool preference, or fallback if not set.
func (p *Prefs) Bool(key string, fallback bool) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return fallback
}

// SetBool stores a bool preference.
func (p *Prefs) SetBool(key string, val bool) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// LogLevel returns the configured log level (default "info").
func (p *Prefs) LogLevel() string { return p.StringWithFallback(KeyLogLevel, "info") }

// LogFormat returns the configured log format (default "console").
func (p *Prefs) LogFormat() string { return p.StringWithFallback(KeyLogFormat, "console") }

// HistoryLimit returns the configured undo depth, or 0 for the default.
func (p *Prefs) HistoryLimit() int {
	n := p.Float(KeyHistoryLimit)
	if n < 1 {
		return 0
	}
	return int(n)
}

// WindowSize returns the saved window size, or the given defaults.
func (p *Prefs) WindowSize(defW, defH float32) (float32, float32) {
	w := p.FloatWithFallback(KeyWindowWidth, float64(defW))
	h := p.FloatWithFallback(KeyWindowHeight, float64(defH))
	if w < 200 || h < 150 {
		return defW, defH
	}
	return float32(w), float32(h)
}
