package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"

	"tcr/internal/domain"
	"tcr/internal/logging"
	"tcr/internal/ports"
)

const (
	// waitDelay bounds how long Wait blocks on output pipes held open by orphaned children
	waitDelay = 2 * time.Second
	// ptyDrainTimeout bounds how long output is drained from the pty after the process exits
	ptyDrainTimeout = 500 * time.Millisecond
)

// Options configures a CommandRunner
type Options struct {
	Dir     string        // Working directory; the current directory when empty
	PTY     bool          // Run under a pseudo-terminal; stdout and stderr are merged into Stdout
	Timeout time.Duration // Zero means no timeout
}

// CommandRunner implements ports.Runner by executing a command line
type CommandRunner struct {
	command domain.Command
	opts    Options
	stage   domain.Stage
}

// Compile-time interface verification
var _ ports.Runner = (*CommandRunner)(nil)

// NewCommandRunner creates a runner for one pipeline stage
func NewCommandRunner(stage domain.Stage, command domain.Command, opts Options) *CommandRunner {
	return &CommandRunner{
		command: command,
		opts:    opts,
		stage:   stage,
	}
}

// Command returns the command this runner executes
func (r *CommandRunner) Command() domain.Command {
	return r.command
}

// Run executes the command and waits for it to exit.
// A non-zero exit is a result with Success false; failing to run the command is an error.
// When the timeout expires the whole process group is killed and ErrStageTimeout is returned.
func (r *CommandRunner) Run(ctx context.Context) (*domain.StageResult, error) {
	if r.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.command.Program, r.command.Args...)
	cmd.Dir = r.opts.Dir
	cmd.Env = append(os.Environ(), "TCR_STAGE="+string(r.stage))
	cmd.WaitDelay = waitDelay

	logging.Logger.Debug("Executing command",
		"stage", r.stage,
		"command", r.command.String(),
		"dir", r.opts.Dir,
		"pty", r.opts.PTY)

	start := time.Now()
	var (
		err            error
		stdout, stderr bytes.Buffer
	)
	if r.opts.PTY {
		err = r.runPTY(cmd, &stdout)
	} else {
		configureProcessGroup(cmd, true)
		cmd.Stdout = &stdout
		cmd.Stderr = &stderr
		err = cmd.Run()
	}
	duration := time.Since(start)

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) && r.opts.Timeout > 0 {
			logging.Logger.Warn("Command timed out", "stage", r.stage, "timeout", r.opts.Timeout)
			return nil, fmt.Errorf("%w after %s: %s", domain.ErrStageTimeout, r.opts.Timeout, r.command)
		}
		return nil, fmt.Errorf("%s interrupted: %w", r.command, ctxErr)
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("failed to run %s: %w", r.command, err)
	}

	result := &domain.StageResult{
		Duration: duration,
		Stage:    r.stage,
		Stderr:   stderr.Bytes(),
		Stdout:   stdout.Bytes(),
		Success:  err == nil,
	}
	if exitErr != nil {
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

// runPTY runs cmd attached to a pseudo-terminal, copying everything it prints into out
func (r *CommandRunner) runPTY(cmd *exec.Cmd, out io.Writer) error {
	configureProcessGroup(cmd, false)

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start pty: %w", err)
	}
	defer ptmx.Close()

	copyDone := make(chan struct{})
	go func() {
		// Read fails with EIO once the last writer has exited
		_, _ = io.Copy(out, ptmx)
		close(copyDone)
	}()

	waitErr := cmd.Wait()

	select {
	case <-copyDone:
	case <-time.After(ptyDrainTimeout):
		ptmx.Close()
		<-copyDone
	}

	return waitErr
}
