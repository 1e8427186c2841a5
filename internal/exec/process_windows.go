// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Windows-specific process handling

//go:build windows

package exec

import (
	"os/exec"
)

// setPlatformProcessGroup configures platform-specific process attributes.
// Windows doesn't use Unix-style process groups; termination goes through
// TerminateProcess.
func setPlatformProcessGroup(cmd *exec.Cmd) {
}

// killProcessGroup kills the process. On Windows we rely on the default
// behavior of Process.Kill() which calls TerminateProcess.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
