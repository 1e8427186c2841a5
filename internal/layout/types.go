// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Layout types and seed file templates

package layout

import "io"

const (
	// SourcesRoot is the top-level directory for Python sources
	SourcesRoot = "src"
	// TestsDir holds the placeholder test
	TestsDir = "tests"
	// DocsDir is created empty
	DocsDir = "docs"
	// InitialVersion is the version stamped into every seed file
	InitialVersion = "0.1.0"
)

// Generator materializes the conventional source tree
type Generator struct {
	dir string // Project directory (working directory of the run)
	out io.Writer
}

// NewGenerator creates a generator rooted at dir
func NewGenerator(dir string, out io.Writer) *Generator {
	return &Generator{dir: dir, out: out}
}

// initTemplate seeds the package marker file (args: project name, version)
const initTemplate = `"""Main package for %s."""

__version__ = '%s'
`

// mainTemplate seeds the entry-point module (arg: project name)
const mainTemplate = `"""Main module for %s."""

def main():
    """Main entry point."""
    print("Hello, world!")


if __name__ == "__main__":
    main()
`

// testTemplate seeds the placeholder test (args: project name, module name)
const testTemplate = `"""Tests for %s."""

from %s.main import main

def test_main():
    """Test the main function."""
    # This is a placeholder test
    assert True
`

// setupTemplate seeds the package-build descriptor (args: project name, version)
const setupTemplate = `"""Package setup."""

from setuptools import setup, find_packages

setup(
    name="%s",
    version="%s",
    packages=find_packages(where="src"),
    package_dir={"": "src"},
    install_requires=[
        # List your dependencies here
    ],
)
`
