// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Local version-control bootstrap plus optional remote hosting

package repo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	git "github.com/go-git/go-git/v5"

	"github.com/sony-level/pyboot/internal/exec"
	"github.com/sony-level/pyboot/internal/project"
)

// Initialize runs the repository bootstrap sequence:
// identity resolution, ignore/readme files, init + initial commit, then
// either remote creation and push or printed manual instructions.
//
// Remote-creation failure degrades to manual instructions; a push failure
// after successful creation is fatal. That asymmetry is deliberate: never
// silently lose a commit that has a remote waiting for it.
func (r *Initializer) Initialize(ctx context.Context, projectName string, useGitHub bool, visibility project.Visibility) (State, error) {
	state := StateUninitialized

	fmt.Fprintln(r.out, "Setting up Git repository...")

	username := r.cfg.FallbackUsername
	if useGitHub {
		username = r.githubUsername(ctx)
	}

	vis, ok := project.ParseVisibility(string(visibility))
	if !ok {
		log.Warnf("Invalid visibility %q, defaulting to %q", string(visibility), project.VisibilityPrivate)
		vis = project.VisibilityPrivate
	}

	if err := r.writeGitignore(); err != nil {
		return state, err
	}
	if err := r.writeReadme(projectName, username); err != nil {
		return state, err
	}

	state, err := r.initAndCommit(ctx, state)
	if err != nil {
		return state, err
	}

	if !useGitHub {
		fmt.Fprintln(r.out, "\nSkipping GitHub repository creation as requested.")
		r.printManualInstructions(projectName, username)
		state = StateManualInstructionsPrinted
	} else {
		state, err = r.setupRemote(ctx, projectName, username, vis, state)
		if err != nil {
			return state, err
		}
	}

	fmt.Fprintln(r.out, "\nGit repository initialized with initial commit.")
	return state, nil
}

// initAndCommit creates the local repository and the initial commit.
// Every failure here is fatal.
func (r *Initializer) initAndCommit(ctx context.Context, state State) (State, error) {
	// A pre-existing repository is not re-initialized
	if _, err := git.PlainOpen(r.dir); err == nil {
		fmt.Fprintln(r.out, "Existing Git repository detected, skipping init.")
	} else {
		if _, err := r.runner.Run(ctx, exec.Command{Name: "git", Args: []string{"init"}, Dir: r.dir}); err != nil {
			return state, fmt.Errorf("failed to initialize repository: %w", err)
		}
	}
	state = StateLocalRepoCreated

	if _, err := r.runner.Run(ctx, exec.Command{Name: "git", Args: []string{"add", "."}, Dir: r.dir}); err != nil {
		return state, fmt.Errorf("failed to stage files: %w", err)
	}

	if _, err := r.runner.Run(ctx, exec.Command{Name: "git", Args: []string{"commit", "-m", r.cfg.CommitMessage}, Dir: r.dir}); err != nil {
		return state, fmt.Errorf("failed to create initial commit: %w", err)
	}

	return StateCommitted, nil
}

// writeGitignore writes the fixed ignore-rules file
func (r *Initializer) writeGitignore() error {
	path := filepath.Join(r.dir, ".gitignore")
	if err := os.WriteFile(path, []byte(gitignoreContent), 0644); err != nil {
		return fmt.Errorf("failed to write .gitignore: %w", err)
	}
	return nil
}

// writeReadme writes README.md templated with the resolved identity
func (r *Initializer) writeReadme(projectName, username string) error {
	content := fmt.Sprintf(readmeTemplate,
		projectName, username, projectName, projectName, project.ModuleName(projectName))
	path := filepath.Join(r.dir, "README.md")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write README.md: %w", err)
	}
	return nil
}
