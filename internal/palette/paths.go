package palette

import (
	"os"
	"path/filepath"
)

// PaletteSearchPaths returns palette directories in precedence order.
func PaletteSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".themegen", "palettes"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "themegen", "palettes"))
	}

	return paths
}

// LoadOptions controls which directories LoadRegistry scans.
type LoadOptions struct {
	ProjectDir string
	// ExtraDirs are scanned before the standard search paths.
	ExtraDirs []string
	// SkipSearchPaths limits loading to ExtraDirs.
	SkipSearchPaths bool
}

// LoadRegistry merges palette files with the builtin palettes. The first file
// found for an identifier wins. A file reusing a builtin identifier replaces
// that builtin in place; new identifiers follow the builtins.
func LoadRegistry(opts LoadOptions) (*Registry, error) {
	dirs := append([]string{}, opts.ExtraDirs...)
	if !opts.SkipSearchPaths {
		dirs = append(dirs, PaletteSearchPaths(opts.ProjectDir)...)
	}

	found := make(map[string]Entry)
	order := make([]string, 0)
	for _, dir := range dirs {
		entries, err := LoadPalettesFromDir(dir)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if _, exists := found[entry.ID]; exists {
				continue
			}
			found[entry.ID] = entry
			order = append(order, entry.ID)
		}
	}

	builtins := Builtin()
	resolved := make([]Entry, 0, len(builtins)+len(order))
	for _, entry := range builtins {
		if override, ok := found[entry.ID]; ok {
			entry = override
			delete(found, entry.ID)
		}
		resolved = append(resolved, entry)
	}
	for _, id := range order {
		if entry, ok := found[id]; ok {
			resolved = append(resolved, entry)
		}
	}

	return NewRegistry(DefaultActiveID, resolved...)
}
