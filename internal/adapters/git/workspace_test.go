package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, output)
}

func newRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	dir := t.TempDir()
	runGit(t, dir, "init", "--quiet")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# repo\n"), 0644))
	runGit(t, dir, "add", "README.md")
	runGit(t, dir, "commit", "--quiet", "-m", "init")
	return dir
}

func TestCLIWorkspace_IsGitRepo(t *testing.T) {
	repo := newRepo(t)
	sub := filepath.Join(repo, "pkg")
	require.NoError(t, os.Mkdir(sub, 0755))
	w := NewCLIWorkspace()

	ok, top := w.IsGitRepo(context.Background(), sub)

	assert.True(t, ok)
	resolved, err := filepath.EvalSymlinks(repo)
	require.NoError(t, err)
	topResolved, err := filepath.EvalSymlinks(top)
	require.NoError(t, err)
	assert.Equal(t, resolved, topResolved)
}

func TestCLIWorkspace_IsGitRepoOutsideRepo(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	t.Setenv("GIT_CEILING_DIRECTORIES", filepath.Dir(dir))

	ok, top := NewCLIWorkspace().IsGitRepo(context.Background(), dir)

	assert.False(t, ok)
	assert.Empty(t, top)
}

func TestCLIWorkspace_UncommittedChanges(t *testing.T) {
	repo := newRepo(t)
	w := NewCLIWorkspace()

	clean, err := w.UncommittedChanges(context.Background(), repo)
	require.NoError(t, err)
	assert.Empty(t, clean)

	require.NoError(t, os.WriteFile(filepath.Join(repo, "README.md"), []byte("# changed\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "new.go"), []byte("package main\n"), 0644))

	dirty, err := w.UncommittedChanges(context.Background(), repo)
	require.NoError(t, err)
	assert.Len(t, dirty, 2)
}
