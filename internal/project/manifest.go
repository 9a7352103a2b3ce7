// Package project loads the optional athena.toml manifest that carries
// front-end options. CLI flags override manifest values.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file the loader looks for.
const ManifestName = "athena.toml"

// Package is the [package] section.
type Package struct {
	Name string `toml:"name"`
}

// Compiler is the [compiler] section.
type Compiler struct {
	MaxDiagnostics int    `toml:"max_diagnostics"`
	TabWidth       int    `toml:"tab_width"`
	Color          string `toml:"color"`
}

// Manifest is a parsed athena.toml.
type Manifest struct {
	Package  Package  `toml:"package"`
	Compiler Compiler `toml:"compiler"`
}

// Default returns the manifest used when no athena.toml exists.
func Default() Manifest {
	return Manifest{
		Compiler: Compiler{
			MaxDiagnostics: 64,
			TabWidth:       8,
			Color:          "auto",
		},
	}
}

// Load parses a manifest file and fills unset options with defaults.
func Load(path string) (Manifest, error) {
	m := Default()
	meta, err := toml.DecodeFile(path, &m)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("compiler", "max_diagnostics") {
		m.Compiler.MaxDiagnostics = Default().Compiler.MaxDiagnostics
	}
	if m.Compiler.MaxDiagnostics <= 0 {
		return Manifest{}, fmt.Errorf("%s: max_diagnostics must be positive", path)
	}
	switch m.Compiler.Color {
	case "auto", "on", "off":
	default:
		return Manifest{}, fmt.Errorf("%s: color must be auto, on, or off", path)
	}
	return m, nil
}

// Find walks from dir upward looking for athena.toml. A missing manifest is
// not an error: the defaults come back with found=false.
func Find(dir string) (Manifest, string, bool, error) {
	cur, err := filepath.Abs(dir)
	if err != nil {
		return Manifest{}, "", false, err
	}
	for {
		candidate := filepath.Join(cur, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			m, err := Load(candidate)
			if err != nil {
				return Manifest{}, "", false, err
			}
			return m, candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return Manifest{}, "", false, err
		}

		parent := filepath.Dir(cur)
		if parent == cur {
			return Default(), "", false, nil
		}
		cur = parent
	}
}
