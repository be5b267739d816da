//go:build unix

package process

import (
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

// configureProcessGroup makes cancellation kill the whole process group,
// so build tools that fork workers do not outlive a timed-out stage.
// The pty path already starts a new session, which implies a new group.
func configureProcessGroup(cmd *exec.Cmd, newGroup bool) {
	if newGroup {
		if cmd.SysProcAttr == nil {
			cmd.SysProcAttr = &syscall.SysProcAttr{}
		}
		cmd.SysProcAttr.Setpgid = true
	}

	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return unix.Kill(-cmd.Process.Pid, unix.SIGKILL)
	}
}
