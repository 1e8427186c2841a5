// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Virtual environment types

package venv

import (
	"io"

	"github.com/sony-level/pyboot/internal/config"
	"github.com/sony-level/pyboot/internal/exec"
)

// Provisioner creates an isolated Python environment and seeds the
// dependency manifests.
type Provisioner struct {
	runner exec.Runner
	cfg    *config.Config
	dir    string // Project directory (working directory of the run)
	out    io.Writer
}

// New creates a provisioner rooted at dir
func New(runner exec.Runner, cfg *config.Config, dir string, out io.Writer) *Provisioner {
	return &Provisioner{
		runner: runner,
		cfg:    cfg,
		dir:    dir,
		out:    out,
	}
}
