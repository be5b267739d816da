package domain

import "strings"

// ChangeEvent is a normalized filesystem notification.
// Paths is never empty; IsDirectory applies to every path in the event.
type ChangeEvent struct {
	IsDirectory bool
	Paths       []string
}

// NewChangeEvent builds a ChangeEvent, rejecting an empty path list
func NewChangeEvent(isDirectory bool, paths ...string) (ChangeEvent, error) {
	if len(paths) == 0 {
		return ChangeEvent{}, ErrEmptyEvent
	}
	copied := make([]string, len(paths))
	copy(copied, paths)
	return ChangeEvent{IsDirectory: isDirectory, Paths: copied}, nil
}

// String renders the event for log lines
func (e ChangeEvent) String() string {
	kind := "file"
	if e.IsDirectory {
		kind = "dir"
	}
	return kind + " " + strings.Join(e.Paths, ", ")
}
