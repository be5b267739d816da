//go:build !unix

package process

import "os/exec"

// configureProcessGroup keeps the default cancellation (kill the direct child)
func configureProcessGroup(cmd *exec.Cmd, newGroup bool) {}
