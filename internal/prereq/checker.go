// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Prerequisite checker for tool existence and versions

package prereq

import (
	"context"
	"strings"

	"github.com/sony-level/pyboot/internal/exec"
)

// Checker verifies tool existence through the process-execution abstraction
type Checker struct {
	runner exec.Runner
	tools  map[string]*Tool
}

// NewChecker creates a prerequisite checker over the given runner
func NewChecker(runner exec.Runner) *Checker {
	return &Checker{
		runner: runner,
		tools:  DefaultTools(),
	}
}

// CheckTool checks if a specific tool exists, trying alternatives in order
func (c *Checker) CheckTool(ctx context.Context, name string) CheckResult {
	result := CheckResult{Name: name}

	tool, ok := c.tools[strings.ToLower(name)]
	if !ok {
		// Unknown tool - direct command check
		result.Path, result.Found = c.runner.LookPath(name)
		return result
	}

	candidates := append([]string{tool.Command}, tool.Alternatives...)
	for _, candidate := range candidates {
		path, found := c.runner.LookPath(candidate)
		if !found {
			continue
		}
		result.Found = true
		result.Path = path
		result.Version = c.version(ctx, candidate, tool.VersionArgs)
		return result
	}

	return result
}

// Verify checks every required tool and returns the names of missing ones
func (c *Checker) Verify(ctx context.Context) []string {
	var missing []string
	for name, tool := range c.tools {
		if !tool.Required {
			continue
		}
		if result := c.CheckTool(ctx, name); !result.Found {
			missing = append(missing, name)
		}
	}
	return missing
}

// GetInstallGuide returns installation instructions for a tool
func (c *Checker) GetInstallGuide(name string) string {
	tool, ok := c.tools[strings.ToLower(name)]
	if !ok {
		return "No installation guide available for " + name
	}
	return tool.InstallGuide
}

// version executes the tool's version command and returns the first line
func (c *Checker) version(ctx context.Context, command string, args []string) string {
	if len(args) == 0 {
		return ""
	}

	result, err := c.runner.Run(ctx, exec.Command{Name: command, Args: args})
	if err != nil {
		return ""
	}

	output := strings.TrimSpace(result.Stdout)
	if idx := strings.Index(output, "\n"); idx > 0 {
		output = output[:idx]
	}
	return output
}

// FormatMissing returns a formatted string of missing tools with install guides
func (c *Checker) FormatMissing(missing []string) string {
	if len(missing) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Missing prerequisites:\n\n")
	for _, name := range missing {
		sb.WriteString("─────────────────────────────────\n")
		sb.WriteString(name + "\n")
		sb.WriteString("─────────────────────────────────\n")
		sb.WriteString(c.GetInstallGuide(name))
		sb.WriteString("\n\n")
	}
	return sb.String()
}
