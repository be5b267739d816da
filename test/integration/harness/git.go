package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

var gitIdentity = []string{
	"GIT_AUTHOR_NAME=Test User",
	"GIT_AUTHOR_EMAIL=test@example.com",
	"GIT_COMMITTER_NAME=Test User",
	"GIT_COMMITTER_EMAIL=test@example.com",
}

// InitGitRepo turns the environment root into a git repository with one commit.
// The settings file is ignored so it never shows up as a change.
//
// Setup structure:
//
//	<root>/
//	├── .git/
//	├── .gitignore   <- ".tcr"
//	└── README.md    <- committed
func (e *TestEnvironment) InitGitRepo() {
	e.tb.Helper()

	runGitCommand(e.tb, e.Root, "init", "--quiet")
	runGitCommand(e.tb, e.Root, "config", "user.email", "test@example.com")
	runGitCommand(e.tb, e.Root, "config", "user.name", "Test User")

	if err := os.WriteFile(filepath.Join(e.Root, ".gitignore"), []byte(".tcr\n"), 0644); err != nil {
		e.tb.Fatalf("Failed to create .gitignore: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Root, "README.md"), []byte("# Test Repo\n"), 0644); err != nil {
		e.tb.Fatalf("Failed to create README.md: %v", err)
	}
	runGitCommand(e.tb, e.Root, "add", ".gitignore", "README.md")
	runGitCommand(e.tb, e.Root, "commit", "--quiet", "-m", "Initial commit")
}

// CommitCount returns the number of commits on HEAD.
func (e *TestEnvironment) CommitCount() int {
	e.tb.Helper()
	out := gitOutput(e.tb, e.Root, "rev-list", "--count", "HEAD")
	n, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil {
		e.tb.Fatalf("Unexpected rev-list output %q: %v", out, err)
	}
	return n
}

// GitStatus returns the porcelain status of the working tree.
func (e *TestEnvironment) GitStatus() string {
	e.tb.Helper()
	return strings.TrimSpace(gitOutput(e.tb, e.Root, "status", "--porcelain"))
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()
	gitOutput(tb, dir, args...)
}

func gitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), gitIdentity...)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return string(output)
}
