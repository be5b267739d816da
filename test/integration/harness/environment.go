package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated repository root and state directory.
type TestEnvironment struct {
	Root      string
	StateHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with an empty root directory.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	base := tb.TempDir()
	root := filepath.Join(base, "repo")
	if err := os.MkdirAll(root, 0755); err != nil {
		tb.Fatalf("Failed to create root directory: %v", err)
	}

	return &TestEnvironment{
		Root:      root,
		StateHome: filepath.Join(base, "state"),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out TCR_* variables and sets:
//   - XDG_STATE_HOME to the temp state directory
//   - TCR_DEBUG to empty string (disables debug logging)
//   - a git identity for commit commands
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+6+len(e.extraEnv))

	overrideKeys := map[string]bool{
		"GIT_AUTHOR_EMAIL":    true,
		"GIT_AUTHOR_NAME":     true,
		"GIT_COMMITTER_EMAIL": true,
		"GIT_COMMITTER_NAME":  true,
		"XDG_STATE_HOME":      true,
	}
	for k := range e.extraEnv {
		overrideKeys[k] = true
	}

	for _, kv := range os.Environ() {
		key := strings.SplitN(kv, "=", 2)[0]
		if strings.HasPrefix(key, "TCR_") || overrideKeys[key] {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"XDG_STATE_HOME="+e.StateHome,
		"TCR_DEBUG=",
	)
	env = append(env, gitIdentity...)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SettingsPath returns the default settings file path for the root.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.Root, ".tcr")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteFile writes content to a path relative to the root, creating parent directories.
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.tb.Helper()
	path := filepath.Join(e.Root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write %s: %v", rel, err)
	}
	return path
}

// ReadFile reads a file relative to the root.
func (e *TestEnvironment) ReadFile(rel string) string {
	e.tb.Helper()
	data, err := os.ReadFile(filepath.Join(e.Root, rel))
	if err != nil {
		e.tb.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// WriteSettings writes a JSON settings file at the default location.
func (e *TestEnvironment) WriteSettings(json string) {
	e.tb.Helper()
	e.WriteFile(".tcr", json)
}
