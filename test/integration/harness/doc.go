// Package harness provides utilities for integration testing the tcr CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - TCR_*: Removed so the developer's own overrides do not leak in
//   - XDG_STATE_HOME: Isolated per test (temp directory) so log files stay out of the real state dir
//   - GIT_AUTHOR_* and GIT_COMMITTER_*: Set so commit commands work without a git identity
package harness
