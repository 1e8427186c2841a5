// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Prerequisite types and tool definitions

package prereq

// Tool represents an external collaborator this tool may invoke
type Tool struct {
	Name         string   // Tool name
	Command      string   // Command to check existence
	VersionArgs  []string // Arguments to get version
	Alternatives []string // Alternative command names
	InstallGuide string   // Installation instructions
	Required     bool     // Whether a run can proceed without it
}

// DefaultTools returns the collaborators of the scaffolder
func DefaultTools() map[string]*Tool {
	return map[string]*Tool{
		"python3": {
			Name:         "python3",
			Command:      "python3",
			VersionArgs:  []string{"--version"},
			Alternatives: []string{"python"},
			Required:     true,
			InstallGuide: `Install Python:
  macOS:   brew install python
  Ubuntu:  sudo apt install python3 python3-pip python3-venv
  Fedora:  sudo dnf install python3 python3-pip
  Windows: https://www.python.org/downloads/`,
		},
		"pip": {
			Name:         "pip",
			Command:      "pip3",
			VersionArgs:  []string{"--version"},
			Alternatives: []string{"pip"},
			InstallGuide: `pip is included with Python 3.4+.
If missing:
  python3 -m ensurepip --upgrade`,
		},
		"git": {
			Name:        "git",
			Command:     "git",
			VersionArgs: []string{"--version"},
			Required:    true,
			InstallGuide: `Install git:
  macOS:   brew install git
  Ubuntu:  sudo apt install git
  Fedora:  sudo dnf install git
  Windows: https://git-scm.com/download/win`,
		},
		"gh": {
			Name:        "gh",
			Command:     "gh",
			VersionArgs: []string{"--version"},
			InstallGuide: `Install the GitHub CLI:
  macOS:   brew install gh
  Ubuntu:  sudo apt install gh
  Fedora:  sudo dnf install gh
  All:     https://cli.github.com/`,
		},
	}
}

// CheckResult contains the result of checking a tool
type CheckResult struct {
	Name    string // Tool name
	Found   bool   // Whether tool was found
	Version string // Detected version (if found)
	Path    string // Path to tool (if found)
}
