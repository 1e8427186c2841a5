// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Build-system configuration rendering

package layout

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// buildSystem declares the PEP 517 build backend
type buildSystem struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// blackSettings carries the formatting convention for generated projects
type blackSettings struct {
	LineLength    int      `toml:"line-length"`
	TargetVersion []string `toml:"target-version"`
}

type toolSettings struct {
	Black blackSettings `toml:"black"`
}

type pyproject struct {
	BuildSystem buildSystem  `toml:"build-system"`
	Tool        toolSettings `toml:"tool"`
}

// writePyproject renders pyproject.toml with the setuptools backend and the
// 88-column black convention.
func (g *Generator) writePyproject() error {
	doc := pyproject{
		BuildSystem: buildSystem{
			Requires:     []string{"setuptools>=42", "wheel"},
			BuildBackend: "setuptools.build_meta",
		},
		Tool: toolSettings{
			Black: blackSettings{
				LineLength:    88,
				TargetVersion: []string{"py38"},
			},
		},
	}

	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to render pyproject.toml: %w", err)
	}

	path := filepath.Join(g.dir, "pyproject.toml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
