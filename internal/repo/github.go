// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// GitHub remote creation via the gh CLI, with graceful degradation

package repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/sony-level/pyboot/internal/exec"
	"github.com/sony-level/pyboot/internal/project"
)

// githubUsername resolves the authenticated gh login. Any failure (tool
// absent, not authenticated, empty output) degrades to the fallback identity.
func (r *Initializer) githubUsername(ctx context.Context) string {
	if _, found := r.runner.LookPath("gh"); !found {
		return r.cfg.FallbackUsername
	}

	result, err := r.runner.Run(ctx, exec.Command{
		Name: "gh",
		Args: []string{"api", "user", "--jq", ".login"},
		Dir:  r.dir,
	})
	if err != nil {
		log.Debug("Could not resolve GitHub username", "err", err)
		return r.cfg.FallbackUsername
	}

	username := strings.TrimSpace(result.Stdout)
	if username == "" {
		return r.cfg.FallbackUsername
	}
	return username
}

// setupRemote creates the hosted repository and pushes the initial commit.
// gh absence and creation failures degrade to manual instructions; a push
// failure after a successful creation propagates as fatal.
func (r *Initializer) setupRemote(ctx context.Context, projectName, username string, vis project.Visibility, state State) (State, error) {
	if _, found := r.runner.LookPath("gh"); !found {
		fmt.Fprintln(r.out, "GitHub CLI (gh) not found. Please install GitHub CLI to automate repository creation.")
		fmt.Fprintln(r.out, "You can install it from: https://cli.github.com/")
		fmt.Fprintln(r.out, "\nManual GitHub setup:")
		r.printManualInstructions(projectName, username)
		return StateManualInstructionsPrinted, nil
	}

	fmt.Fprintf(r.out, "Creating GitHub repository for %s...\n", projectName)

	_, err := r.runner.Run(ctx, exec.Command{
		Name: "gh",
		Args: []string{"repo", "create", projectName, "--" + string(vis), "--source=.", "--remote=origin"},
		Dir:  r.dir,
	})
	if err != nil {
		fmt.Fprintf(r.out, "Error creating GitHub repository: %v\n", err)
		fmt.Fprintln(r.out, "You can manually create and connect to GitHub repository:")
		r.printManualInstructions(projectName, username)
		return StateManualInstructionsPrinted, nil
	}

	fmt.Fprintf(r.out, "GitHub repository created: %s\n", projectName)

	_, err = r.runner.Run(ctx, exec.Command{
		Name: "git",
		Args: []string{"push", "-u", "origin", r.cfg.DefaultBranch},
		Dir:  r.dir,
	})
	if err != nil {
		// The remote exists and holds nothing; losing the commit silently
		// would be worse than aborting.
		return state, fmt.Errorf("failed to push initial commit: %w", err)
	}

	fmt.Fprintln(r.out, "Initial commit pushed to GitHub.")
	return StateRemoteCreatedAndPushed, nil
}

// printManualInstructions prints the fallback remote-setup guidance
func (r *Initializer) printManualInstructions(projectName, username string) {
	fmt.Fprintf(r.out, "1. Create a new repository named '%s' on GitHub\n", projectName)
	fmt.Fprintln(r.out, "2. Run the following commands to connect to GitHub:")
	fmt.Fprintf(r.out, "   git remote add origin https://github.com/%s/%s.git\n", username, projectName)
	fmt.Fprintf(r.out, "   git branch -M %s\n", r.cfg.DefaultBranch)
	fmt.Fprintf(r.out, "   git push -u origin %s\n", r.cfg.DefaultBranch)
}
