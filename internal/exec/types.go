// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Execution types and interfaces

package exec

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultCommandTimeout is the default timeout for a single external command
const DefaultCommandTimeout = 10 * time.Minute

// Command describes a single external process invocation.
// Working directory and environment are explicit so that components never
// depend on ambient process state.
type Command struct {
	Name    string        // Executable name or path
	Args    []string      // Arguments (argv[1:])
	Dir     string        // Working directory ("" = runner default)
	Env     []string      // Extra environment entries, KEY=VALUE
	Timeout time.Duration // Per-command timeout (0 = DefaultCommandTimeout)
	Stdout  io.Writer     // Optional stream for live stdout
	Stderr  io.Writer     // Optional stream for live stderr
}

// Line renders the command as a single display string
func (c Command) Line() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Result contains the outcome of a completed command
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Runner abstracts process execution so components can be tested with a mock
type Runner interface {
	// Run executes the command and waits for completion. A non-zero exit
	// returns both the populated Result and a non-nil error.
	Run(ctx context.Context, cmd Command) (*Result, error)

	// LookPath reports whether an executable is available and where
	LookPath(name string) (string, bool)
}

// ExitError is returned when a command exits non-zero
type ExitError struct {
	Cmd      string
	ExitCode int
	Stderr   string
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Cmd, e.ExitCode)
	if detail := lastStderrLine(e.Stderr); detail != "" {
		msg += ": " + detail
	}
	return msg
}

func lastStderrLine(stderr string) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
