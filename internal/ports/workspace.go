package ports

import "context"

// WorkspaceInspector reads the version-control state of the watched root
type WorkspaceInspector interface {
	IsGitRepo(ctx context.Context, path string) (bool, string)
	UncommittedChanges(ctx context.Context, path string) ([]string, error)
}
