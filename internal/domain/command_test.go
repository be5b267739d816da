package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand_SplitsOnWhitespace(t *testing.T) {
	tests := []struct {
		input        string
		expectedProg string
		expectedArgs []string
	}{
		{"ls -al", "ls", []string{"-al"}},
		{"go", "go", []string{}},
		{"  go   test ./... ", "go", []string{"test", "./..."}},
		{"git\tcommit -am\ttcr", "git", []string{"commit", "-am", "tcr"}},
		{"cargo build\n--release", "cargo", []string{"build", "--release"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cmd, err := ParseCommand(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedProg, cmd.Program)
			assert.Equal(t, tt.expectedArgs, cmd.Args)
		})
	}
}

func TestParseCommand_EmptyIsError(t *testing.T) {
	tests := []string{"", "   ", "\t\n"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := ParseCommand(input)
			assert.ErrorIs(t, err, ErrEmptyCommand)
		})
	}
}

func TestCommand_String(t *testing.T) {
	cmd, err := ParseCommand("go  test   ./...")
	require.NoError(t, err)
	assert.Equal(t, "go test ./...", cmd.String())

	bare, err := ParseCommand("make")
	require.NoError(t, err)
	assert.Equal(t, "make", bare.String())
}

func TestNewChangeEvent(t *testing.T) {
	_, err := NewChangeEvent(false)
	assert.ErrorIs(t, err, ErrEmptyEvent)

	paths := []string{"/repo/a.go", "/repo/b.go"}
	event, err := NewChangeEvent(true, paths...)
	require.NoError(t, err)
	assert.True(t, event.IsDirectory)
	assert.Equal(t, paths, event.Paths)

	paths[0] = "/repo/changed.go"
	assert.Equal(t, "/repo/a.go", event.Paths[0], "event must not alias the caller's slice")
	assert.Equal(t, "dir /repo/a.go, /repo/b.go", event.String())
}
