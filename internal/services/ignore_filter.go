package services

import (
	"path/filepath"
	"strings"

	"tcr/internal/domain"
	"tcr/internal/ports"
)

// vcsDirName is the version-control metadata directory under the repository root
const vcsDirName = ".git"

// PathClassifier decides whether a single path is noise:
// version-control metadata or an editor scratch file.
type PathClassifier struct {
	vcsDir string
}

// NewPathClassifier creates a classifier for the repository at root
func NewPathClassifier(root string) *PathClassifier {
	return &PathClassifier{
		vcsDir: filepath.Join(filepath.Clean(root), vcsDirName),
	}
}

// IsNoise reports whether path should never trigger the pipeline
func (c *PathClassifier) IsNoise(path string) bool {
	return c.IsVCSPath(path) || isSwapFile(path) || isLockFile(path)
}

// IsVCSPath reports whether path is the metadata directory or lies under it.
// The match is per component, so <root>/.gitignore is not a VCS path.
func (c *PathClassifier) IsVCSPath(path string) bool {
	clean := filepath.Clean(path)
	return clean == c.vcsDir || strings.HasPrefix(clean, c.vcsDir+string(filepath.Separator))
}

// isSwapFile matches vim swap files (.swp, .swo, .swx, .swn, ...)
func isSwapFile(path string) bool {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	return strings.HasPrefix(ext, "sw")
}

// isLockFile matches emacs lock and auto-save files (.#name)
func isLockFile(path string) bool {
	return strings.Contains(filepath.ToSlash(path), ".#")
}

// IgnoreFilter decides whether a whole change event should be suppressed
type IgnoreFilter struct {
	classifier *PathClassifier
	matcher    ports.IgnoreMatcher
}

// NewIgnoreFilter creates a filter for the repository at root.
// matcher may be nil when no ignore file is present.
func NewIgnoreFilter(root string, matcher ports.IgnoreMatcher) *IgnoreFilter {
	return &IgnoreFilter{
		classifier: NewPathClassifier(root),
		matcher:    matcher,
	}
}

// ShouldIgnore reports whether event is uninteresting.
// An event is only suppressed when every one of its paths is uninteresting,
// so a real change bundled with noise still triggers.
func (f *IgnoreFilter) ShouldIgnore(event domain.ChangeEvent) bool {
	if allPaths(event.Paths, f.classifier.IsNoise) {
		return true
	}

	if f.matcher == nil {
		return false
	}

	return allPaths(event.Paths, func(path string) bool {
		return f.matcher.Match(path, event.IsDirectory)
	})
}

// ShouldSkipDir reports whether a directory tree never needs to be watched
func (f *IgnoreFilter) ShouldSkipDir(path string) bool {
	if f.classifier.IsVCSPath(path) {
		return true
	}
	return f.matcher != nil && f.matcher.Match(path, true)
}

// Reasons returned by Explain
const (
	ReasonEditor    = "editor"
	ReasonGitignore = "gitignore"
	ReasonVCS       = "vcs"
)

// Explain returns why a single path would be ignored, or "" when a change to it triggers the pipeline
func (f *IgnoreFilter) Explain(path string, isDir bool) string {
	switch {
	case f.classifier.IsVCSPath(path):
		return ReasonVCS
	case isSwapFile(path) || isLockFile(path):
		return ReasonEditor
	case f.matcher != nil && f.matcher.Match(path, isDir):
		return ReasonGitignore
	}
	return ""
}

func allPaths(paths []string, pred func(string) bool) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !pred(p) {
			return false
		}
	}
	return true
}
