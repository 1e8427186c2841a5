// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Source tree generation

package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sony-level/pyboot/internal/project"
)

// Generate creates the directory tree and seed files for the project.
// Directory creation is idempotent; files are overwritten on reruns.
func (g *Generator) Generate(projectName string) error {
	fmt.Fprintf(g.out, "Creating project structure for %s...\n", projectName)

	moduleName := project.ModuleName(projectName)
	packageDir := filepath.Join(g.dir, SourcesRoot, moduleName)

	for _, dir := range []string{packageDir, filepath.Join(g.dir, TestsDir), filepath.Join(g.dir, DocsDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(packageDir, "__init__.py"), fmt.Sprintf(initTemplate, projectName, InitialVersion)},
		{filepath.Join(packageDir, "main.py"), fmt.Sprintf(mainTemplate, projectName)},
		{filepath.Join(g.dir, TestsDir, "test_main.py"), fmt.Sprintf(testTemplate, projectName, moduleName)},
		{filepath.Join(g.dir, "setup.py"), fmt.Sprintf(setupTemplate, projectName, InitialVersion)},
	}

	for _, f := range files {
		if err := os.WriteFile(f.path, []byte(f.content), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.path, err)
		}
	}

	if err := g.writePyproject(); err != nil {
		return err
	}

	fmt.Fprintln(g.out, "Project structure created.")
	return nil
}
