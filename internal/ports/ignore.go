package ports

// IgnoreMatcher matches paths against a loaded ignore rule set.
// Matching works on the path string only and never touches the filesystem.
type IgnoreMatcher interface {
	Match(path string, isDir bool) bool
}
