package gitignore

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	gogitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"tcr/internal/logging"
	"tcr/internal/ports"
)

// FileName is the ignore file read from the repository root
const FileName = ".gitignore"

const commentPrefix = "#"

// Matcher implements ports.IgnoreMatcher with gitignore semantics
type Matcher struct {
	matcher  gogitignore.Matcher
	patterns int
	root     string
}

// Compile-time interface verification
var _ ports.IgnoreMatcher = (*Matcher)(nil)

// Load reads <root>/.gitignore.
// The returned error wraps fs.ErrNotExist when the file is absent.
func Load(root string) (*Matcher, error) {
	path := filepath.Join(root, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	patterns := ParsePatterns(data)
	logging.Logger.Debug("Loaded ignore rules", "path", path, "patterns", len(patterns))

	return NewMatcher(root, patterns), nil
}

// ParsePatterns returns the pattern lines of an ignore file, skipping blanks and comments
func ParsePatterns(data []byte) []string {
	var patterns []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.HasPrefix(line, commentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// NewMatcher builds a matcher from raw pattern lines rooted at root
func NewMatcher(root string, lines []string) *Matcher {
	patterns := make([]gogitignore.Pattern, 0, len(lines))
	for _, line := range lines {
		patterns = append(patterns, gogitignore.ParsePattern(line, nil))
	}

	return &Matcher{
		matcher:  gogitignore.NewMatcher(patterns),
		patterns: len(patterns),
		root:     filepath.Clean(root),
	}
}

// Match reports whether path is ignored. The path need not exist.
// Paths outside the root, and the root itself, never match.
func (m *Matcher) Match(path string, isDir bool) bool {
	components, ok := m.split(path)
	if !ok {
		return false
	}
	return m.matcher.Match(components, isDir)
}

// Len returns the number of loaded patterns
func (m *Matcher) Len() int {
	return m.patterns
}

// split turns path into root-relative components
func (m *Matcher) split(path string) ([]string, bool) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.root, path)
	}

	rel, err := filepath.Rel(m.root, path)
	if err != nil {
		return nil, false
	}

	rel = filepath.ToSlash(rel)
	if rel == "." || rel == ".." || strings.HasPrefix(rel, "../") {
		return nil, false
	}

	return strings.Split(rel, "/"), true
}
