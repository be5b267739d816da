package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcr/internal/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettings_MissingFileIsEmpty(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), DefaultFileName))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettings_JSON(t *testing.T) {
	path := writeFile(t, ".tcr", `{
  "build_cmd": "cargo build",
  "test_cmd": "cargo test",
  "commit_cmd": "git commit -am wip",
  "revert_cmd": "git checkout .",
  "debounce_ms": 250,
  "pty": true
}`)

	settings, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "cargo build", *settings.BuildCmd)
	assert.Equal(t, "cargo test", *settings.TestCmd)
	assert.Equal(t, 250, *settings.DebounceMs)
	assert.True(t, *settings.PTY)
	assert.Nil(t, settings.StageTimeoutSeconds)
}

func TestLoadSettings_YAML(t *testing.T) {
	path := writeFile(t, "tcr.yaml", `
build_cmd: make build
test_cmd: make test
commit_cmd: git commit -am tcr
revert_cmd: git reset --hard
stage_timeout_seconds: 30
`)

	settings, err := LoadSettings(path)

	require.NoError(t, err)
	assert.Equal(t, "make build", *settings.BuildCmd)
	assert.Equal(t, 30, *settings.StageTimeoutSeconds)
}

func TestLoadSettings_InvalidJSON(t *testing.T) {
	path := writeFile(t, ".tcr", `{"build_cmd": `)

	_, err := LoadSettings(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .tcr")
}

func TestSaveSettings_RoundTripsThroughLoad(t *testing.T) {
	for _, name := range []string{".tcr", "tcr.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, SaveSettings(path, DefaultSettings()))
			loaded, err := LoadSettings(path)

			require.NoError(t, err)
			assert.Equal(t, DefaultSettings(), loaded)
		})
	}
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("TCR_BUILD_CMD", "make")
	t.Setenv("TCR_DEBOUNCE", "500")
	t.Setenv("TCR_PTY", "true")

	settings, err := LoadEnv(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "make", *settings.BuildCmd)
	assert.Equal(t, 500, *settings.DebounceMs)
	assert.True(t, *settings.PTY)
	assert.Nil(t, settings.TestCmd)
	assert.Nil(t, settings.StageTimeoutSeconds)
}

func TestLoadEnv_InvalidNumber(t *testing.T) {
	t.Setenv("TCR_DEBOUNCE", "soon")

	_, err := LoadEnv(context.Background())

	assert.Error(t, err)
}

func TestSettings_MergePrecedence(t *testing.T) {
	file := &Settings{BuildCmd: ptr("file build"), TestCmd: ptr("file test"), DebounceMs: ptr(100)}
	env := &Settings{TestCmd: ptr("env test"), DebounceMs: ptr(200)}
	flags := &Settings{DebounceMs: ptr(300)}

	merged := DefaultSettings().Merge(file).Merge(env).Merge(flags)

	assert.Equal(t, "file build", *merged.BuildCmd)
	assert.Equal(t, "env test", *merged.TestCmd)
	assert.Equal(t, 300, *merged.DebounceMs)
	assert.Equal(t, DefaultCommitCmd, *merged.CommitCmd)
	// Inputs are left untouched
	assert.Equal(t, 100, *file.DebounceMs)
}

func TestSettings_MergeNil(t *testing.T) {
	s := &Settings{BuildCmd: ptr("make")}

	merged := s.Merge(nil)

	assert.Equal(t, s, merged)
	assert.NotSame(t, s, merged)
}

func TestSettings_Resolve(t *testing.T) {
	settings := DefaultSettings().Merge(&Settings{
		DebounceMs:          ptr(1500),
		PTY:                 ptr(true),
		StageTimeoutSeconds: ptr(60),
	})

	cfg, err := settings.Resolve()

	require.NoError(t, err)
	assert.Equal(t, domain.Command{Program: "go", Args: []string{"build", "./..."}}, cfg.Build)
	assert.Equal(t, domain.Command{Program: "go", Args: []string{"test", "./..."}}, cfg.Test)
	assert.Equal(t, domain.Command{Program: "git", Args: []string{"commit", "-am", "tcr"}}, cfg.Commit)
	assert.Equal(t, domain.Command{Program: "git", Args: []string{"reset", "--hard"}}, cfg.Revert)
	assert.Equal(t, 1500*time.Millisecond, cfg.Debounce)
	assert.Equal(t, time.Minute, cfg.StageTimeout)
	assert.True(t, cfg.PTY)
}

func TestSettings_ResolveDefaultsDurations(t *testing.T) {
	settings := DefaultSettings()
	settings.DebounceMs = nil
	settings.StageTimeoutSeconds = nil

	cfg, err := settings.Resolve()

	require.NoError(t, err)
	assert.Equal(t, time.Duration(DefaultDebounceMs)*time.Millisecond, cfg.Debounce)
	assert.Zero(t, cfg.StageTimeout)
	assert.False(t, cfg.PTY)
}

func TestSettings_ResolveErrors(t *testing.T) {
	tests := []struct {
		name     string
		override *Settings
		wantErr  error
		wantMsg  string
	}{
		{name: "missing test command", override: &Settings{TestCmd: ptr("")}, wantErr: domain.ErrEmptyCommand, wantMsg: "test_cmd"},
		{name: "whitespace revert command", override: &Settings{RevertCmd: ptr(" \t ")}, wantErr: domain.ErrEmptyCommand, wantMsg: "revert_cmd"},
		{name: "negative debounce", override: &Settings{DebounceMs: ptr(-1)}, wantErr: ErrInvalidSettings, wantMsg: "debounce_ms"},
		{name: "negative timeout", override: &Settings{StageTimeoutSeconds: ptr(-5)}, wantErr: ErrInvalidSettings, wantMsg: "stage_timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultSettings().Merge(tt.override).Resolve()

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestSettings_ResolveEmptySettings(t *testing.T) {
	_, err := (&Settings{}).Resolve()

	assert.ErrorIs(t, err, domain.ErrEmptyCommand)
}

func TestGetSettingsInfo(t *testing.T) {
	infos := GetSettingsInfo()

	byKey := make(map[string]SettingInfo)
	for _, info := range infos {
		byKey[info.Key] = info
	}

	require.Len(t, byKey, 7)
	assert.Equal(t, "TCR_BUILD_CMD", byKey["build_cmd"].EnvVar)
	assert.Equal(t, DefaultBuildCmd, byKey["build_cmd"].Example)
	assert.Equal(t, "TCR_DEBOUNCE", byKey["debounce_ms"].EnvVar)
	assert.Equal(t, DefaultDebounceMs, byKey["debounce_ms"].Example)
	assert.Equal(t, false, byKey["pty"].Example)
	assert.Equal(t, "TCR_STAGE_TIMEOUT", byKey["stage_timeout_seconds"].EnvVar)
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, DefaultTestCmd, example["test_cmd"])
	assert.Contains(t, example, "revert_cmd")
}
