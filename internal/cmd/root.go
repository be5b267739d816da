package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"tcr/internal/config"
	"tcr/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version      kong.VersionFlag `help:"Show version information"`
	Debug        bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile    string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles  int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	Root         string           `help:"Repository root (defaults to the current directory)" short:"r" type:"path" default:"."`
	SettingsFile string           `help:"Path to the settings file (defaults to <root>/.tcr)" short:"c" name:"config" type:"path"`
	Verbose      bool             `help:"Show ignored and debounced changes and the output of passing stages" short:"v"`

	Watch  WatchCmd  `cmd:"" help:"Watch the repository and build, test, then commit or revert on every change (default)" default:"1"`
	Run    RunCmd    `cmd:"run" help:"Run build, test, then commit or revert once"`
	Check  CheckCmd  `cmd:"check" help:"Show whether changes to the given paths would trigger the pipeline"`
	Init   InitCmd   `cmd:"init" help:"Create a settings file"`
	Config ConfigCmd `cmd:"config" help:"Show settings file location and available options"`
}

// AfterApply initializes logging after CLI parsing
func (c *CLI) AfterApply() error {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", c.Root, err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("invalid root: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("invalid root: %s is not a directory", root)
	}
	c.Root = root

	if c.SettingsFile == "" {
		c.SettingsFile = config.DefaultPath(c.Root)
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Stage commands inherit the debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("TCR_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("TCR_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("TCR_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	logging.Logger.Info("tcr started", "root", c.Root, "config", c.SettingsFile)
	return nil
}
