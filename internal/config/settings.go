package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"tcr/internal/domain"
)

// DefaultFileName is the settings file looked up at the repository root
const DefaultFileName = ".tcr"

// Defaults applied when a setting is absent everywhere
const (
	DefaultDebounceMs          = 1000
	DefaultStageTimeoutSeconds = 0
)

// Commands written by `tcr init` for a Go project in a git repository
const (
	DefaultBuildCmd  = "go build ./..."
	DefaultCommitCmd = "git commit -am tcr"
	DefaultRevertCmd = "git reset --hard"
	DefaultTestCmd   = "go test ./..."
)

// ErrInvalidSettings is returned when a setting has an unusable value
var ErrInvalidSettings = errors.New("invalid settings")

// Settings represents the structure of the .tcr file.
// Every field is optional so that file, environment and flags can be layered.
type Settings struct {
	BuildCmd            *string `json:"build_cmd,omitempty" yaml:"build_cmd,omitempty" env:"TCR_BUILD_CMD, noinit"`
	CommitCmd           *string `json:"commit_cmd,omitempty" yaml:"commit_cmd,omitempty" env:"TCR_COMMIT_CMD, noinit"`
	DebounceMs          *int    `json:"debounce_ms,omitempty" yaml:"debounce_ms,omitempty" env:"TCR_DEBOUNCE, noinit"`
	PTY                 *bool   `json:"pty,omitempty" yaml:"pty,omitempty" env:"TCR_PTY, noinit"`
	RevertCmd           *string `json:"revert_cmd,omitempty" yaml:"revert_cmd,omitempty" env:"TCR_REVERT_CMD, noinit"`
	StageTimeoutSeconds *int    `json:"stage_timeout_seconds,omitempty" yaml:"stage_timeout_seconds,omitempty" env:"TCR_STAGE_TIMEOUT, noinit"`
	TestCmd             *string `json:"test_cmd,omitempty" yaml:"test_cmd,omitempty" env:"TCR_TEST_CMD, noinit"`
}

// PipelineConfig is the validated, immutable form of Settings
type PipelineConfig struct {
	Build        domain.Command
	Commit       domain.Command
	Debounce     time.Duration
	PTY          bool
	Revert       domain.Command
	StageTimeout time.Duration
	Test         domain.Command
}

// DefaultPath returns the settings path for the repository at root
func DefaultPath(root string) string {
	return filepath.Join(root, DefaultFileName)
}

// DefaultSettings returns the settings `tcr init` proposes
func DefaultSettings() *Settings {
	return &Settings{
		BuildCmd:            ptr(DefaultBuildCmd),
		CommitCmd:           ptr(DefaultCommitCmd),
		DebounceMs:          ptr(DefaultDebounceMs),
		RevertCmd:           ptr(DefaultRevertCmd),
		StageTimeoutSeconds: ptr(DefaultStageTimeoutSeconds),
		TestCmd:             ptr(DefaultTestCmd),
	}
}

// LoadSettings loads settings from path.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if isYAML(path) {
		err = yaml.Unmarshal(data, &settings)
	} else {
		err = json.Unmarshal(data, &settings)
	}
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	return &settings, nil
}

// LoadEnv reads the TCR_* environment overrides
func LoadEnv(ctx context.Context) (*Settings, error) {
	var settings Settings
	if err := envconfig.Process(ctx, &settings); err != nil {
		return nil, fmt.Errorf("invalid environment settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings writes settings to path, as YAML when the path ends in .yaml or .yml
func SaveSettings(path string, settings *Settings) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(settings)
	} else {
		data, err = json.MarshalIndent(settings, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Merge returns a copy of s with every field set in override applied on top
func (s *Settings) Merge(override *Settings) *Settings {
	merged := *s
	if override == nil {
		return &merged
	}
	if override.BuildCmd != nil {
		merged.BuildCmd = override.BuildCmd
	}
	if override.CommitCmd != nil {
		merged.CommitCmd = override.CommitCmd
	}
	if override.DebounceMs != nil {
		merged.DebounceMs = override.DebounceMs
	}
	if override.PTY != nil {
		merged.PTY = override.PTY
	}
	if override.RevertCmd != nil {
		merged.RevertCmd = override.RevertCmd
	}
	if override.StageTimeoutSeconds != nil {
		merged.StageTimeoutSeconds = override.StageTimeoutSeconds
	}
	if override.TestCmd != nil {
		merged.TestCmd = override.TestCmd
	}
	return &merged
}

// Resolve validates the settings and parses the four commands
func (s *Settings) Resolve() (*PipelineConfig, error) {
	cfg := &PipelineConfig{
		Debounce:     time.Duration(DefaultDebounceMs) * time.Millisecond,
		StageTimeout: time.Duration(DefaultStageTimeoutSeconds) * time.Second,
	}

	commands := []struct {
		line   *string
		stage  domain.Stage
		target *domain.Command
	}{
		{s.BuildCmd, domain.StageBuild, &cfg.Build},
		{s.TestCmd, domain.StageTest, &cfg.Test},
		{s.CommitCmd, domain.StageCommit, &cfg.Commit},
		{s.RevertCmd, domain.StageRevert, &cfg.Revert},
	}
	for _, c := range commands {
		cmd, err := domain.ParseCommand(deref(c.line))
		if err != nil {
			return nil, fmt.Errorf("%s_cmd: %w", c.stage, err)
		}
		*c.target = cmd
	}

	if s.DebounceMs != nil {
		if *s.DebounceMs < 0 {
			return nil, fmt.Errorf("%w: debounce_ms must not be negative, got %d", ErrInvalidSettings, *s.DebounceMs)
		}
		cfg.Debounce = time.Duration(*s.DebounceMs) * time.Millisecond
	}

	if s.StageTimeoutSeconds != nil {
		if *s.StageTimeoutSeconds < 0 {
			return nil, fmt.Errorf("%w: stage_timeout_seconds must not be negative, got %d", ErrInvalidSettings, *s.StageTimeoutSeconds)
		}
		cfg.StageTimeout = time.Duration(*s.StageTimeoutSeconds) * time.Second
	}

	if s.PTY != nil {
		cfg.PTY = *s.PTY
	}

	return cfg, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ptr[T any](v T) *T {
	return &v
}
