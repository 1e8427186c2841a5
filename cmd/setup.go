/*
Copyright © 2026 ソニーレベル <c7kali3@gmail.com>

*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sony-level/pyboot/internal/config"
	"github.com/sony-level/pyboot/internal/exec"
	"github.com/sony-level/pyboot/internal/layout"
	"github.com/sony-level/pyboot/internal/prereq"
	"github.com/sony-level/pyboot/internal/project"
	"github.com/sony-level/pyboot/internal/repo"
	"github.com/sony-level/pyboot/internal/venv"
)

// executeSetup prepares the execution context for the current directory and
// runs the scaffold sequence.
func executeSetup(ctx context.Context, prefix string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}

	opts := project.Options{
		Prefix:     prefix,
		UseGitHub:  !noGitHub,
		Visibility: project.VisibilityPrivate,
	}
	if publicRepo {
		opts.Visibility = project.VisibilityPublic
	}

	runner := exec.NewSystemRunner(cwd)
	if verbose {
		runner.SetVerbose(os.Stdout)
	}

	// Phase 1: Prerequisites
	fmt.Println("[1/4] Prerequisites")
	checker := prereq.NewChecker(runner)
	if missing := checker.Verify(ctx); len(missing) > 0 {
		fmt.Println(WarningStyle.Render("Missing required tools."))
		fmt.Print(checker.FormatMissing(missing))
		return fmt.Errorf("missing prerequisites: %v", missing)
	}
	if verbose {
		for _, tool := range []string{"python3", "pip", "git", "gh"} {
			result := checker.CheckTool(ctx, tool)
			if result.Found {
				fmt.Printf("  → %s: %s (%s)\n", tool, result.Path, result.Version)
			} else {
				fmt.Printf("  → %s: not found\n", tool)
			}
		}
	}
	fmt.Println("  → All required tools available")

	return runSetup(ctx, runner, cfg, cwd, opts, os.Stdout)
}

// runSetup executes the scaffold sequence: name derivation, virtual
// environment, source layout, then repository bootstrap. Strictly linear;
// each component completes (or fails the run) before the next starts.
func runSetup(ctx context.Context, runner exec.Runner, cfg *config.Config, dir string, opts project.Options, out io.Writer) error {
	projectName := project.Derive(opts.Prefix, filepath.Base(dir))
	fmt.Fprintf(out, "Setting up Python project: %s\n", projectName)

	// Phase 2: Virtual environment
	fmt.Fprintln(out, "\n[2/4] Virtual environment")
	provisioner := venv.New(runner, cfg, dir, out)
	if err := provisioner.Provision(ctx, projectName); err != nil {
		return err
	}

	// Phase 3: Project layout
	fmt.Fprintln(out, "\n[3/4] Project layout")
	generator := layout.NewGenerator(dir, out)
	if err := generator.Generate(projectName); err != nil {
		return err
	}

	// Phase 4: Git repository
	fmt.Fprintln(out, "\n[4/4] Git repository")
	initializer := repo.NewInitializer(runner, cfg, dir, out)
	state, err := initializer.Initialize(ctx, projectName, opts.UseGitHub, opts.Visibility)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(out, "  → Repository state: %s\n", state)
	}

	fmt.Fprintln(out, SuccessStyle.Render(fmt.Sprintf("\nProject setup complete for %s!", projectName)))
	fmt.Fprintln(out, "Don't forget to activate your virtual environment:")
	fmt.Fprintln(out, provisioner.ActivateHint())

	return nil
}
