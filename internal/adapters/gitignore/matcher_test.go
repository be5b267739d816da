package gitignore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePatterns_SkipsCommentsAndBlanks(t *testing.T) {
	data := []byte("# build output\n\ntarget/\n   \n*.log\r\n!keep.log\n")

	assert.Equal(t, []string{"target/", "*.log", "!keep.log"}, ParsePatterns(data))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoad_ReadsRootGitignore(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, FileName), []byte("bar\n# comment\nbaz\n"), 0644))

	m, err := Load(root)

	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Match(filepath.Join(root, "bar"), false))
	assert.False(t, m.Match(filepath.Join(root, "foo"), false))
}

func TestMatcher_Match(t *testing.T) {
	root := "/repo"

	tests := []struct {
		name     string
		patterns []string
		path     string
		isDir    bool
		expected bool
	}{
		{"simple name", []string{"bar"}, "/repo/bar", false, true},
		{"simple name nested", []string{"bar"}, "/repo/pkg/bar", false, true},
		{"no match", []string{"bar"}, "/repo/foo", false, false},
		{"extension glob", []string{"*.log"}, "/repo/logs/app.log", false, true},
		{"trailing glob", []string{"target/**"}, "/repo/target/debug/x", false, true},
		{"bare directory name", []string{"target"}, "/repo/target/debug/x", false, true},
		{"dir-only pattern on dir", []string{"build/"}, "/repo/build", true, true},
		{"dir-only pattern on file", []string{"build/"}, "/repo/build", false, false},
		{"dir-only pattern on child", []string{"build/"}, "/repo/build/out.o", false, true},
		{"anchored pattern", []string{"/vendor"}, "/repo/vendor/lib.go", false, true},
		{"anchored pattern nested", []string{"/vendor"}, "/repo/pkg/vendor/lib.go", false, false},
		{"negation", []string{"*.log", "!keep.log"}, "/repo/keep.log", false, false},
		{"relative path", []string{"bar"}, "bar", false, true},
		{"outside root", []string{"bar"}, "/elsewhere/bar", false, false},
		{"root itself", []string{"*"}, "/repo", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatcher(root, tt.patterns)
			assert.Equal(t, tt.expected, m.Match(tt.path, tt.isDir))
		})
	}
}

func TestMatcher_DoesNotRequireFileOnDisk(t *testing.T) {
	root := t.TempDir()
	m := NewMatcher(root, []string{"deleted.txt"})

	_, err := os.Stat(filepath.Join(root, "deleted.txt"))
	require.True(t, os.IsNotExist(err))

	assert.True(t, m.Match(filepath.Join(root, "deleted.txt"), false))
}
