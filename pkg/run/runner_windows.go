//go:build windows

// pkg/run/runner_windows.go
package run

import "os/exec"

// setProcessGroup is a no-op on Windows; exec's default context kill
// applies and WaitDelay bounds the pipe wait.
func setProcessGroup(cmd *exec.Cmd) {}
