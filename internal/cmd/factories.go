package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"

	adapterconsole "tcr/internal/adapters/console"
	adaptergit "tcr/internal/adapters/git"
	adaptergitignore "tcr/internal/adapters/gitignore"
	adapterprocess "tcr/internal/adapters/process"
	adapterstorage "tcr/internal/adapters/storage"
	"tcr/internal/config"
	"tcr/internal/domain"
	"tcr/internal/logging"
	"tcr/internal/ports"
	"tcr/internal/services"
)

// PipelineFlags override settings from the file and the environment
type PipelineFlags struct {
	BuildCmd     string `help:"Build command (overrides build_cmd)"`
	CommitCmd    string `help:"Commit command (overrides commit_cmd)"`
	DebounceMs   int    `help:"Quiet window in milliseconds between two runs (overrides debounce_ms; -1 = from settings)" default:"-1"`
	PTY          bool   `help:"Run stage commands under a pseudo-terminal (overrides pty)"`
	RevertCmd    string `help:"Revert command (overrides revert_cmd)"`
	StageTimeout int    `help:"Seconds before a stage is killed (overrides stage_timeout_seconds; -1 = from settings)" default:"-1"`
	TestCmd      string `help:"Test command (overrides test_cmd)"`
}

// Overrides converts the flags that were set into settings
func (f PipelineFlags) Overrides() *config.Settings {
	s := &config.Settings{}
	if f.BuildCmd != "" {
		s.BuildCmd = &f.BuildCmd
	}
	if f.CommitCmd != "" {
		s.CommitCmd = &f.CommitCmd
	}
	if f.DebounceMs >= 0 {
		s.DebounceMs = &f.DebounceMs
	}
	if f.PTY {
		s.PTY = &f.PTY
	}
	if f.RevertCmd != "" {
		s.RevertCmd = &f.RevertCmd
	}
	if f.StageTimeout >= 0 {
		s.StageTimeoutSeconds = &f.StageTimeout
	}
	if f.TestCmd != "" {
		s.TestCmd = &f.TestCmd
	}
	return s
}

// Container holds all dependencies for a pipeline command
type Container struct {
	Config    *config.PipelineConfig
	Filter    *services.IgnoreFilter
	Pipeline  *services.Pipeline
	Recorder  *adapterstorage.SQLiteRunRecorder
	Reporter  *adapterconsole.Reporter
	Root      string
	Workspace ports.WorkspaceInspector
}

// NewContainer loads settings and creates a Container with all dependencies wired.
// Precedence: flags > environment > settings file.
func NewContainer(ctx context.Context, cli *CLI, flags PipelineFlags, out io.Writer) (*Container, error) {
	cfg, err := LoadPipelineConfig(ctx, cli.SettingsFile, flags)
	if err != nil {
		return nil, err
	}

	filter, err := NewIgnoreFilter(cli.Root)
	if err != nil {
		return nil, err
	}

	recorder, err := adapterstorage.NewInMemoryRunRecorder()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize run recorder: %w", err)
	}

	opts := adapterprocess.Options{
		Dir:     cli.Root,
		PTY:     cfg.PTY,
		Timeout: cfg.StageTimeout,
	}
	runners := services.Runners{
		Build:  adapterprocess.NewCommandRunner(domain.StageBuild, cfg.Build, opts),
		Commit: adapterprocess.NewCommandRunner(domain.StageCommit, cfg.Commit, opts),
		Revert: adapterprocess.NewCommandRunner(domain.StageRevert, cfg.Revert, opts),
		Test:   adapterprocess.NewCommandRunner(domain.StageTest, cfg.Test, opts),
	}

	reporter := adapterconsole.NewReporter(out, cli.Root, cli.Verbose)
	debouncer := services.NewDebouncer(cfg.Debounce, nil)
	pipeline := services.NewPipeline(filter, debouncer, runners, reporter, recorder)

	logging.Logger.Info("Pipeline configured",
		"root", cli.Root,
		"build", cfg.Build.String(),
		"test", cfg.Test.String(),
		"commit", cfg.Commit.String(),
		"revert", cfg.Revert.String(),
		"debounce", cfg.Debounce,
		"stage_timeout", cfg.StageTimeout,
		"pty", cfg.PTY)

	return &Container{
		Config:    cfg,
		Filter:    filter,
		Pipeline:  pipeline,
		Recorder:  recorder,
		Reporter:  reporter,
		Root:      cli.Root,
		Workspace: adaptergit.NewCLIWorkspace(),
	}, nil
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Recorder != nil {
		return c.Recorder.Close()
	}
	return nil
}

// LoadPipelineConfig layers the settings file, the environment and flags, then validates the result
func LoadPipelineConfig(ctx context.Context, path string, flags PipelineFlags) (*config.PipelineConfig, error) {
	fileSettings, err := config.LoadSettings(path)
	if err != nil {
		return nil, err
	}

	envSettings, err := config.LoadEnv(ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := fileSettings.Merge(envSettings).Merge(flags.Overrides()).Resolve()
	if err != nil {
		return nil, fmt.Errorf("%w (settings file: %s, run `tcr init` to create one)", err, path)
	}
	return cfg, nil
}

// NewIgnoreFilter creates the filter for root, loading <root>/.gitignore when present
func NewIgnoreFilter(root string) (*services.IgnoreFilter, error) {
	matcher, err := adaptergitignore.Load(root)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Logger.Info("No ignore file found, only built-in rules apply", "root", root)
		return services.NewIgnoreFilter(root, nil), nil
	}
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Loaded ignore rules", "root", root, "patterns", matcher.Len())
	return services.NewIgnoreFilter(root, matcher), nil
}
