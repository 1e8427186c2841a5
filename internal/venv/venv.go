// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Virtual environment provisioning

package venv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/sony-level/pyboot/internal/exec"
)

// Provision creates the virtual environment, writes the requirements
// manifests, upgrades pip, and installs the development dependencies.
// Every non-zero exit from an external command is fatal.
func (p *Provisioner) Provision(ctx context.Context, projectName string) error {
	fmt.Fprintf(p.out, "Creating virtual environment for %s...\n", projectName)

	_, err := p.runner.Run(ctx, exec.Command{
		Name: p.cfg.PythonCommand,
		Args: []string{"-m", "venv", p.cfg.VenvDir},
		Dir:  p.dir,
	})
	if err != nil {
		return fmt.Errorf("failed to create virtual environment: %w", err)
	}

	if err := p.writeManifests(); err != nil {
		return err
	}

	pip := p.PipPath()

	_, err = p.runner.Run(ctx, exec.Command{
		Name: pip,
		Args: []string{"install", "--upgrade", "pip"},
		Dir:  p.dir,
	})
	if err != nil {
		return fmt.Errorf("failed to upgrade pip: %w", err)
	}

	_, err = p.runner.Run(ctx, exec.Command{
		Name: pip,
		Args: []string{"install", "-r", "requirements-dev.txt"},
		Dir:  p.dir,
	})
	if err != nil {
		return fmt.Errorf("failed to install development dependencies: %w", err)
	}

	fmt.Fprintln(p.out, "Virtual environment created and dependencies installed.")
	return nil
}

// PipPath returns the path of the pip binary inside the virtual environment.
// The layout differs between Windows and POSIX venvs.
func (p *Provisioner) PipPath() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(p.cfg.VenvDir, "Scripts", "pip")
	}
	return filepath.Join(p.cfg.VenvDir, "bin", "pip")
}

// ActivateHint returns the activation command appropriate to the host OS
func (p *Provisioner) ActivateHint() string {
	if runtime.GOOS == "windows" {
		return p.cfg.VenvDir + `\Scripts\activate`
	}
	return "source " + p.cfg.VenvDir + "/bin/activate"
}

// writeManifests writes requirements.txt and requirements-dev.txt
func (p *Provisioner) writeManifests() error {
	reqs := "# Project dependencies\n"
	if err := os.WriteFile(filepath.Join(p.dir, "requirements.txt"), []byte(reqs), 0644); err != nil {
		return fmt.Errorf("failed to write requirements.txt: %w", err)
	}

	var dev strings.Builder
	dev.WriteString("# Development dependencies\n")
	for _, dep := range p.cfg.DevDependencies {
		dev.WriteString(dep + "\n")
	}
	if err := os.WriteFile(filepath.Join(p.dir, "requirements-dev.txt"), []byte(dev.String()), 0644); err != nil {
		return fmt.Errorf("failed to write requirements-dev.txt: %w", err)
	}

	return nil
}
