package tokens

import (
	"errors"
	"fmt"
	"strings"

	"github.com/solutivemind/themegen/internal/palette"
)

// DefaultRadius is the border radius emitted when none is configured.
const DefaultRadius = "0.5rem"

// Selectors for the two emitted blocks.
const (
	SelectorLight = ":root"
	SelectorDark  = ".dark"
)

// ChartExtras are the two chart series colors not taken from a palette role.
type ChartExtras struct {
	Chart4 palette.ColorValue `json:"chart4"`
	Chart5 palette.ColorValue `json:"chart5"`
}

// ChartDefaults holds chart extras per appearance mode. They are shared by all
// palettes and are not derived from palette roles.
type ChartDefaults struct {
	Light ChartExtras `json:"light"`
	Dark  ChartExtras `json:"dark"`
}

// For returns the extras for mode.
func (c ChartDefaults) For(mode palette.Mode) ChartExtras {
	if mode == palette.ModeDark {
		return c.Dark
	}
	return c.Light
}

// Options configure a Generator.
type Options struct {
	Radius string
	Chart  ChartDefaults
}

// DefaultOptions returns the stock radius and chart extras.
func DefaultOptions() Options {
	return Options{
		Radius: DefaultRadius,
		Chart: ChartDefaults{
			Light: ChartExtras{
				Chart4: "oklch(0.75 0.10 200)",
				Chart5: "oklch(0.50 0.12 220)",
			},
			Dark: ChartExtras{
				Chart4: "oklch(0.80 0.10 200)",
				Chart5: "oklch(0.55 0.12 220)",
			},
		},
	}
}

// Generator renders palettes into stylesheets. It holds no per-call state and
// may be shared.
type Generator struct {
	opts Options
}

// NewGenerator validates opts and returns a Generator.
func NewGenerator(opts Options) (*Generator, error) {
	opts.Radius = strings.TrimSpace(opts.Radius)
	if opts.Radius == "" {
		return nil, errors.New("radius is required")
	}
	for _, mode := range palette.Modes() {
		extras := opts.Chart.For(mode)
		if strings.TrimSpace(string(extras.Chart4)) == "" || strings.TrimSpace(string(extras.Chart5)) == "" {
			return nil, fmt.Errorf("%s chart colors are required", mode)
		}
	}
	return &Generator{opts: opts}, nil
}

// Generate builds the stylesheet for p. An incomplete palette yields an
// *palette.IncompletePaletteError and no stylesheet.
func (g *Generator) Generate(p *palette.Palette) (*Stylesheet, error) {
	if p == nil {
		return nil, errors.New("palette is required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	sheet := &Stylesheet{
		Name:        p.Name,
		Description: p.Description,
		Blocks: []Block{
			g.block(SelectorLight, palette.ModeLight, p.Light),
			g.block(SelectorDark, palette.ModeDark, p.Dark),
		},
	}
	return sheet, nil
}

func (g *Generator) block(selector string, mode palette.Mode, roles palette.ColorRoles) Block {
	decls := make([]Declaration, 0, len(palette.Roles())+14)

	for _, role := range palette.Roles() {
		decls = append(decls, Declaration{
			Name:    PropertyName(role.String()),
			Value:   string(roles.Get(role)),
			Section: SectionBase,
		})
	}

	decls = append(decls, Declaration{Name: "radius", Value: g.opts.Radius, Section: SectionRadius})

	extras := g.opts.Chart.For(mode)
	chart := []palette.ColorValue{roles.Primary, roles.Secondary, roles.Accent, extras.Chart4, extras.Chart5}
	for i, value := range chart {
		decls = append(decls, Declaration{
			Name:    fmt.Sprintf("chart-%d", i+1),
			Value:   string(value),
			Section: SectionChart,
		})
	}

	for _, alias := range sidebarAliases {
		decls = append(decls, Declaration{
			Name:    alias.name,
			Value:   string(roles.Get(alias.role)),
			Section: SectionSidebar,
		})
	}

	return Block{Selector: selector, Mode: mode, Declarations: decls}
}

var sidebarAliases = []struct {
	name string
	role palette.Role
}{
	{"sidebar", palette.RoleBackground},
	{"sidebar-foreground", palette.RoleForeground},
	{"sidebar-primary", palette.RolePrimary},
	{"sidebar-primary-foreground", palette.RolePrimaryForeground},
	{"sidebar-accent", palette.RoleMuted},
	{"sidebar-accent-foreground", palette.RoleForeground},
	{"sidebar-border", palette.RoleBorder},
	{"sidebar-ring", palette.RoleRing},
}
