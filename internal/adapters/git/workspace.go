package git

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"tcr/internal/logging"
	"tcr/internal/ports"
)

// CLIWorkspace implements ports.WorkspaceInspector using local git commands
type CLIWorkspace struct{}

// Verify interface compliance at compile time
var _ ports.WorkspaceInspector = (*CLIWorkspace)(nil)

// NewCLIWorkspace creates a new CLIWorkspace
func NewCLIWorkspace() *CLIWorkspace {
	return &CLIWorkspace{}
}

// IsGitRepo reports whether path is inside a git work tree, and its top level
func (w *CLIWorkspace) IsGitRepo(ctx context.Context, path string) (bool, string) {
	logging.Logger.Debug("Checking if directory is git repo", "path", path)

	cmd := exec.CommandContext(ctx, "git", "rev-parse", "--show-toplevel")
	cmd.Dir = path

	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Debug("Not a git repository", "path", path)
		return false, ""
	}

	repoRoot := strings.TrimSpace(string(output))
	logging.Logger.Info("Found git repository", "repo_root", repoRoot)
	return true, repoRoot
}

// UncommittedChanges lists the porcelain status lines of the work tree at path
func (w *CLIWorkspace) UncommittedChanges(ctx context.Context, path string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "status", "--porcelain")
	cmd.Dir = path

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to get git status: %w", err)
	}

	var changes []string
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			changes = append(changes, line)
		}
	}

	logging.Logger.Debug("Git status read", "path", path, "changes", len(changes))
	return changes, nil
}
