package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// SourceBuiltin marks palettes compiled into the binary.
const SourceBuiltin = "builtin"

var (
	// ErrPaletteNameRequired is returned when a palette has no name.
	ErrPaletteNameRequired = errors.New("palette name is required")
	// ErrPaletteIDRequired is returned when a registry entry has no identifier.
	ErrPaletteIDRequired = errors.New("palette id is required")
)

// Palette is a named pair of color role assignments, one per appearance mode.
type Palette struct {
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description" json:"description"`
	Light       ColorRoles `yaml:"light" json:"light"`
	Dark        ColorRoles `yaml:"dark" json:"dark"`
	Source      string     `yaml:"-" json:"source"` // file path or "builtin"
}

// Roles returns the role set for mode.
func (p *Palette) Roles(mode Mode) ColorRoles {
	if mode == ModeDark {
		return p.Dark
	}
	return p.Light
}

// Validate reports an IncompletePaletteError when either mode lacks a role.
func (p *Palette) Validate() error {
	missing := make(map[Mode][]Role)
	for _, mode := range Modes() {
		if roles := p.Roles(mode).Missing(); len(roles) > 0 {
			missing[mode] = roles
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return &IncompletePaletteError{Palette: p.Name, Missing: missing}
}

// UnknownPaletteError is returned when an identifier is not registered.
type UnknownPaletteError struct {
	ID        string
	Available []string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("palette %q not found (available: %s)", e.ID, strings.Join(e.Available, ", "))
}

// IncompletePaletteError lists the roles a palette leaves unassigned, by mode.
type IncompletePaletteError struct {
	Palette string
	Missing map[Mode][]Role
}

func (e *IncompletePaletteError) Error() string {
	modes := make([]string, 0, len(e.Missing))
	for mode := range e.Missing {
		modes = append(modes, string(mode))
	}
	sort.Strings(modes)

	parts := make([]string, 0, len(modes))
	for _, mode := range modes {
		roles := e.Missing[Mode(mode)]
		names := make([]string, 0, len(roles))
		for _, role := range roles {
			names = append(names, role.String())
		}
		parts = append(parts, fmt.Sprintf("%s: %s", mode, strings.Join(names, ", ")))
	}
	return fmt.Sprintf("palette %q is missing roles (%s)", e.Palette, strings.Join(parts, "; "))
}
