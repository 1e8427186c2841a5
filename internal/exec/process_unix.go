// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Unix-specific process group handling for proper signal propagation

//go:build !windows

package exec

import (
	"os/exec"
	"syscall"
)

// setPlatformProcessGroup configures the command to run in its own process group.
// On Unix, this allows us to kill all child processes when a command is
// cancelled or times out.
func setPlatformProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true, // Create new process group
	}
}

// killProcessGroup kills the entire process group associated with the command.
// On Unix, we use negative PID to signal the entire process group.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}

	pgid, err := syscall.Getpgid(cmd.Process.Pid)
	if err != nil {
		// Fallback to killing just the process
		return cmd.Process.Kill()
	}

	// Negative PGID sends SIGKILL to all processes in the group
	return syscall.Kill(-pgid, syscall.SIGKILL)
}
