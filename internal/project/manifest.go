// Package project loads vhdl.toml manifests describing the libraries of
// a VHDL project and the files that belong to each of them.
package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name the loader looks for.
const ManifestName = "vhdl.toml"

// LibrarySpec describes one [libraries.<name>] entry.
type LibrarySpec struct {
	Files []string `toml:"files"`
}

// Manifest is a parsed vhdl.toml.
type Manifest struct {
	Dir       string
	Name      string
	Standard  string
	Libraries map[string]LibrarySpec
}

var (
	// ErrLibrariesMissing indicates that [libraries] is absent.
	ErrLibrariesMissing = errors.New("missing [libraries]")
	// ErrLibraryEmpty indicates a library entry without files.
	ErrLibraryEmpty = errors.New("library declares no files")
)

type manifestFile struct {
	Project struct {
		Name string `toml:"name"`
		Std  string `toml:"std"`
	} `toml:"project"`
	Libraries map[string]LibrarySpec `toml:"libraries"`
}

// LoadManifest parses a vhdl.toml at the given path.
func LoadManifest(path string) (*Manifest, error) {
	var cfg manifestFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("libraries") || len(cfg.Libraries) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrLibrariesMissing)
	}
	for name, lib := range cfg.Libraries {
		if len(lib.Files) == 0 {
			return nil, fmt.Errorf("%s: [libraries.%s]: %w", path, name, ErrLibraryEmpty)
		}
	}
	std := strings.TrimSpace(cfg.Project.Std)
	if std == "" {
		std = "2008"
	}
	return &Manifest{
		Dir:       filepath.Dir(path),
		Name:      strings.TrimSpace(cfg.Project.Name),
		Standard:  std,
		Libraries: cfg.Libraries,
	}, nil
}

// FindManifest walks up from startDir to locate vhdl.toml.
func FindManifest(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// LibraryNames returns the declared library names in sorted order.
func (m *Manifest) LibraryNames() []string {
	names := make([]string, 0, len(m.Libraries))
	for name := range m.Libraries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveFiles expands the file patterns of one library relative to the
// manifest directory. Patterns use filepath.Glob syntax; a pattern that
// matches nothing is an error so typos do not silently drop sources.
func (m *Manifest) ResolveFiles(library string) ([]string, error) {
	spec, ok := m.Libraries[library]
	if !ok {
		return nil, fmt.Errorf("unknown library %q", library)
	}
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range spec.Files {
		if filepath.IsAbs(pattern) {
			return nil, fmt.Errorf("[libraries.%s]: pattern %q: must be relative", library, pattern)
		}
		matches, err := filepath.Glob(filepath.Join(m.Dir, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, fmt.Errorf("[libraries.%s]: pattern %q: %w", library, pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("[libraries.%s]: pattern %q matched no files", library, pattern)
		}
		sort.Strings(matches)
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}
	return files, nil
}
