package integration_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tcr/test/integration/harness"
)

// settingsJSON builds a settings file using plain programs, so no shell is needed
func settingsJSON(build, test string) string {
	return fmt.Sprintf(`{
  "build_cmd": %q,
  "test_cmd": %q,
  "commit_cmd": "git commit --quiet -am tcr",
  "revert_cmd": "git reset --quiet --hard",
  "debounce_ms": 0
}`, build, test)
}

func TestInit(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		existing     string
		wantExitCode int
		validate     func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult)
	}{
		{
			name:         "writes defaults without input",
			args:         []string{"init", "--no-input"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings written to")
				content := env.ReadFile(".tcr")
				assert.Contains(t, content, `"build_cmd": "go build ./..."`)
				assert.Contains(t, content, `"test_cmd": "go test ./..."`)
				assert.Contains(t, content, `"revert_cmd": "git reset --hard"`)
			},
		},
		{
			name:         "refuses to overwrite",
			args:         []string{"init", "--no-input"},
			existing:     `{"build_cmd": "make"}`,
			wantExitCode: 1,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				harness.AssertStderrContains(t, result, "settings file already exists")
				assert.Equal(t, `{"build_cmd": "make"}`, env.ReadFile(".tcr"))
			},
		},
		{
			name:         "force keeps existing values",
			args:         []string{"init", "--no-input", "--force"},
			existing:     `{"build_cmd": "make"}`,
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				content := env.ReadFile(".tcr")
				assert.Contains(t, content, `"build_cmd": "make"`)
				assert.Contains(t, content, `"test_cmd": "go test ./..."`)
			},
		},
		{
			name:         "yaml settings path",
			args:         []string{"--config", "tcr.yaml", "init", "--no-input"},
			wantExitCode: 0,
			validate: func(t *testing.T, env *harness.TestEnvironment, result harness.CommandResult) {
				assert.Contains(t, env.ReadFile("tcr.yaml"), "build_cmd: go build ./...")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.existing != "" {
				env.WriteSettings(tt.existing)
			}

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertExitCode(t, result, tt.wantExitCode)
			if tt.validate != nil {
				tt.validate(t, env, result)
			}
		})
	}
}

func TestConfigMeta(t *testing.T) {
	t.Run("table format (default)", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "config")

		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Settings file:")
		harness.AssertStdoutContains(t, result, "TCR_BUILD_CMD")
		harness.AssertStdoutContains(t, result, "stage_timeout_seconds")
	})

	t.Run("json format", func(t *testing.T) {
		env := harness.NewTestEnvironment(t)

		result := harness.RunCommand(t, env, "config", "--format", "json")

		harness.AssertSuccess(t, result)
		var output map[string]any
		harness.AssertValidJSON(t, result, &output)
		assert.True(t, strings.HasSuffix(output["settings_file"].(string), ".tcr"))
		format, ok := output["format"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "git commit -am tcr", format["commit_cmd"])
	})
}

func TestInvalidSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings string
		env      map[string]string
		want     string
	}{
		{
			name:     "missing settings file",
			settings: "",
			want:     "expected command to not be empty",
		},
		{
			name:     "empty test command",
			settings: `{"build_cmd": "true", "test_cmd": "  ", "commit_cmd": "true", "revert_cmd": "true"}`,
			want:     "test_cmd: expected command to not be empty",
		},
		{
			name:     "malformed json",
			settings: `{"build_cmd": `,
			want:     "invalid .tcr",
		},
		{
			name:     "bad environment value",
			settings: settingsJSON("true", "true"),
			env:      map[string]string{"TCR_DEBOUNCE": "soon"},
			want:     "invalid environment settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			if tt.settings != "" {
				env.WriteSettings(tt.settings)
			}
			for k, v := range tt.env {
				env.SetEnv(k, v)
			}

			result := harness.RunCommand(t, env, "run")

			harness.AssertFailure(t, result)
			harness.AssertStderrContains(t, result, tt.want)
		})
	}
}
