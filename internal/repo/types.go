// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Repository initializer types and file templates

package repo

import (
	"io"

	"github.com/sony-level/pyboot/internal/config"
	"github.com/sony-level/pyboot/internal/exec"
)

// State tracks the repository bootstrap progression
type State int

const (
	StateUninitialized State = iota
	StateLocalRepoCreated
	StateCommitted
	// StateRemoteCreatedAndPushed and StateManualInstructionsPrinted are the
	// two terminal states; both count as success for the run.
	StateRemoteCreatedAndPushed
	StateManualInstructionsPrinted
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocalRepoCreated:
		return "local repo created"
	case StateCommitted:
		return "committed"
	case StateRemoteCreatedAndPushed:
		return "remote created and pushed"
	case StateManualInstructionsPrinted:
		return "manual instructions printed"
	}
	return "unknown"
}

// Initializer bootstraps local version control and, optionally, a hosted
// GitHub repository.
type Initializer struct {
	runner exec.Runner
	cfg    *config.Config
	dir    string // Project directory (working directory of the run)
	out    io.Writer
}

// NewInitializer creates an initializer rooted at dir
func NewInitializer(runner exec.Runner, cfg *config.Config, dir string, out io.Writer) *Initializer {
	return &Initializer{
		runner: runner,
		cfg:    cfg,
		dir:    dir,
		out:    out,
	}
}

// gitignoreContent covers Python build artifacts, virtual environments,
// IDE metadata, and test caches. Fixed, not user-configurable.
const gitignoreContent = `# Python
__pycache__/
*.py[cod]
*$py.class
*.so
.Python
env/
build/
develop-eggs/
dist/
downloads/
eggs/
.eggs/
lib/
lib64/
parts/
sdist/
var/
*.egg-info/
.installed.cfg
*.egg

# Virtual Environment
.venv/
venv/
ENV/

# IDE
.idea/
.vscode/
*.swp
*.swo

# Testing
.coverage
htmlcov/
.pytest_cache/
`

// readmeTemplate seeds README.md (args: project name, username, project name,
// project name, module name)
const readmeTemplate = `# %s

## Description

A brief description of the project.

## Installation

` + "```bash" + `
# Clone the repository
git clone https://github.com/%s/%s.git
cd %s

# Create and activate virtual environment
python -m venv .venv
source .venv/bin/activate  # On Windows: .venv\Scripts\activate

# Install dependencies
pip install -r requirements.txt
` + "```" + `

## Usage

` + "```python" + `
from %s.main import main

main()
` + "```" + `
`
