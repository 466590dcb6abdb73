//go:build !windows

// pkg/run/runner_unix.go
package run

import (
	"os/exec"
	"syscall"
)

// setProcessGroup starts the child in its own process group and makes
// cancellation signal the whole group, so helpers the package manager
// forked die together with it instead of holding the output pipes open.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		if cmd.Process == nil {
			return nil
		}
		return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
	}
}
