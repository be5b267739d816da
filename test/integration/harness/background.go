package harness

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncBuffer is a bytes.Buffer safe for a writer goroutine and a polling reader
type syncBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// BackgroundCommand is a long-running tcr process, such as watch
type BackgroundCommand struct {
	cmd     *exec.Cmd
	done    chan error
	stderr  *syncBuffer
	stdout  *syncBuffer
	stopped bool
	tb      testing.TB
}

// StartCommand starts the tcr binary without waiting for it to exit.
// The process is killed when the test completes if Stop was not called.
func StartCommand(tb testing.TB, env *TestEnvironment, args ...string) *BackgroundCommand {
	tb.Helper()

	bc := &BackgroundCommand{
		done:   make(chan error, 1),
		stderr: &syncBuffer{},
		stdout: &syncBuffer{},
		tb:     tb,
	}
	bc.cmd = exec.Command(binaryPath, args...)
	bc.cmd.Dir = env.Root
	bc.cmd.Env = env.Environ()
	bc.cmd.Stdout = bc.stdout
	bc.cmd.Stderr = bc.stderr

	if err := bc.cmd.Start(); err != nil {
		tb.Fatalf("Failed to start %v: %v", args, err)
	}
	go func() { bc.done <- bc.cmd.Wait() }()

	tb.Cleanup(func() {
		if !bc.stopped {
			_ = bc.cmd.Process.Kill()
			<-bc.done
		}
	})

	return bc
}

// WaitForStdout polls stdout until it contains expected or the timeout expires.
func (bc *BackgroundCommand) WaitForStdout(expected string, timeout time.Duration) bool {
	bc.tb.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if strings.Contains(bc.stdout.String(), expected) {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	bc.tb.Logf("Timed out waiting for %q.\nStdout: %s\nStderr: %s", expected, bc.stdout.String(), bc.stderr.String())
	return false
}

// Stop interrupts the process and waits for it to exit.
func (bc *BackgroundCommand) Stop() CommandResult {
	bc.tb.Helper()
	bc.stopped = true

	if err := bc.cmd.Process.Signal(os.Interrupt); err != nil {
		bc.tb.Logf("Failed to interrupt process: %v", err)
	}

	var err error
	select {
	case err = <-bc.done:
	case <-time.After(defaultTimeout):
		_ = bc.cmd.Process.Kill()
		err = <-bc.done
		bc.tb.Logf("Process did not stop after interrupt, killed")
	}

	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stderr:   bc.stderr.String(),
		Stdout:   bc.stdout.String(),
	}
}
