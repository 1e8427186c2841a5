// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Real command runner over os/exec

package exec

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

// SystemRunner executes commands against the host system
type SystemRunner struct {
	workDir string // Default working directory for commands without Dir
	verbose bool
	out     io.Writer // Destination for verbose echo of command lines
}

// NewSystemRunner creates a runner rooted at workDir
func NewSystemRunner(workDir string) *SystemRunner {
	return &SystemRunner{workDir: workDir}
}

// SetVerbose enables echoing of executed command lines to out
func (r *SystemRunner) SetVerbose(out io.Writer) {
	r.verbose = true
	r.out = out
}

// Run executes the command synchronously and captures its output.
// Commands run in their own process group so a context cancellation
// takes down any children the tool spawned.
func (r *SystemRunner) Run(ctx context.Context, c Command) (*Result, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	if cmd.Dir == "" {
		cmd.Dir = r.workDir
	}
	if len(c.Env) > 0 {
		cmd.Env = append(cmd.Environ(), c.Env...)
	}

	setPlatformProcessGroup(cmd)
	cmd.Cancel = func() error { return killProcessGroup(cmd) }

	var stdoutBuf, stderrBuf strings.Builder
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf
	if c.Stdout != nil {
		cmd.Stdout = io.MultiWriter(&stdoutBuf, c.Stdout)
	}
	if c.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&stderrBuf, c.Stderr)
	}

	if r.verbose && r.out != nil {
		fmt.Fprintf(r.out, "$ %s\n", c.Line())
	}

	start := time.Now()
	err := cmd.Run()

	result := &Result{
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return result, fmt.Errorf("%s timed out after %v", c.Name, timeout)
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, &ExitError{Cmd: c.Line(), ExitCode: result.ExitCode, Stderr: result.Stderr}
		}
		return result, fmt.Errorf("failed to run %s: %w", c.Name, err)
	}

	return result, nil
}

// LookPath reports whether an executable can be found in PATH
func (r *SystemRunner) LookPath(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
