//go:build windows

package process

import "os/exec"

// setProcessGroup is a no-op on Windows
func setProcessGroup(cmd *exec.Cmd) {}

// killProcessGroup kills the child only (Windows implementation)
func killProcessGroup(cmd *exec.Cmd) error {
	return cmd.Process.Kill()
}
