package tokens

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/solutivemind/themegen/internal/palette"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	gen, err := NewGenerator(DefaultOptions())
	require.NoError(t, err)
	return gen
}

func samplePalette() *palette.Palette {
	p := palette.OriginalPalette()
	p.Name = "Sample"
	p.Description = "Sample palette"
	p.Light.Primary = "space(0.69 0.11 198)"
	p.Dark.Primary = "space(0.75 0.11 198)"
	return p
}

func blockLines(t *testing.T, css, selector string) []string {
	t.Helper()
	start := strings.Index(css, selector+" {\n")
	require.GreaterOrEqual(t, start, 0, "selector %s not found", selector)
	body := css[start+len(selector)+3:]
	end := strings.Index(body, "}\n")
	require.GreaterOrEqual(t, end, 0)

	var lines []string
	for _, line := range strings.Split(body[:end], "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func TestGenerateSampleScenario(t *testing.T) {
	sheet, err := newTestGenerator(t).Generate(samplePalette())
	require.NoError(t, err)
	css := sheet.String()

	light := blockLines(t, css, SelectorLight)
	dark := blockLines(t, css, SelectorDark)

	require.Contains(t, light, "--primary: space(0.69 0.11 198);")
	require.Contains(t, light, "--sidebar-primary: space(0.69 0.11 198);")
	require.Contains(t, dark, "--primary: space(0.75 0.11 198);")
	require.Contains(t, dark, "--sidebar-primary: space(0.75 0.11 198);")
}

func TestGenerateCompletenessAndPassThrough(t *testing.T) {
	gen := newTestGenerator(t)

	for _, entry := range palette.Builtin() {
		sheet, err := gen.Generate(entry.Palette)
		require.NoError(t, err, entry.ID)
		css := sheet.String()

		for _, mode := range palette.Modes() {
			selector := SelectorLight
			if mode == palette.ModeDark {
				selector = SelectorDark
			}
			lines := blockLines(t, css, selector)
			roles := entry.Palette.Roles(mode)

			for _, role := range palette.Roles() {
				prefix := "--" + PropertyName(role.String()) + ":"
				var matches []string
				for _, line := range lines {
					if strings.HasPrefix(line, prefix) {
						matches = append(matches, line)
					}
				}
				require.Len(t, matches, 1, "%s %s %s", entry.ID, mode, role)
				require.Equal(t, fmt.Sprintf("%s %s;", prefix, roles.Get(role)), matches[0])
			}

			require.Len(t, lines, 19+1+5+8, "%s %s", entry.ID, mode)
		}
	}
}

func TestGenerateBlockOrder(t *testing.T) {
	sheet, err := newTestGenerator(t).Generate(palette.SolutiveMindPalette())
	require.NoError(t, err)

	for _, mode := range palette.Modes() {
		decls := sheet.Declarations(mode)
		require.Len(t, decls, 33)

		for i, role := range palette.Roles() {
			require.Equal(t, PropertyName(role.String()), decls[i].Name)
			require.Equal(t, SectionBase, decls[i].Section)
		}
		require.Equal(t, Declaration{Name: "radius", Value: DefaultRadius, Section: SectionRadius}, decls[19])
		for i := 0; i < 5; i++ {
			require.Equal(t, fmt.Sprintf("chart-%d", i+1), decls[20+i].Name)
			require.Equal(t, SectionChart, decls[20+i].Section)
		}

		names := make([]string, 0, 8)
		for _, decl := range decls[25:] {
			require.Equal(t, SectionSidebar, decl.Section)
			names = append(names, decl.Name)
		}
		require.Equal(t, []string{
			"sidebar", "sidebar-foreground", "sidebar-primary", "sidebar-primary-foreground",
			"sidebar-accent", "sidebar-accent-foreground", "sidebar-border", "sidebar-ring",
		}, names)
	}
}

func TestGenerateDerivedTokens(t *testing.T) {
	opts := DefaultOptions()
	gen, err := NewGenerator(opts)
	require.NoError(t, err)

	p := palette.SolutiveMindPalette()
	sheet, err := gen.Generate(p)
	require.NoError(t, err)

	for _, mode := range palette.Modes() {
		roles := p.Roles(mode)
		extras := opts.Chart.For(mode)
		values := make(map[string]string)
		for _, decl := range sheet.Declarations(mode) {
			values[decl.Name] = decl.Value
		}

		require.Equal(t, string(roles.Primary), values["chart-1"])
		require.Equal(t, string(roles.Secondary), values["chart-2"])
		require.Equal(t, string(roles.Accent), values["chart-3"])
		require.Equal(t, string(extras.Chart4), values["chart-4"])
		require.Equal(t, string(extras.Chart5), values["chart-5"])

		require.Equal(t, string(roles.Background), values["sidebar"])
		require.Equal(t, string(roles.Foreground), values["sidebar-foreground"])
		require.Equal(t, string(roles.Primary), values["sidebar-primary"])
		require.Equal(t, string(roles.PrimaryForeground), values["sidebar-primary-foreground"])
		require.Equal(t, string(roles.Muted), values["sidebar-accent"])
		require.Equal(t, string(roles.Foreground), values["sidebar-accent-foreground"])
		require.Equal(t, string(roles.Border), values["sidebar-border"])
		require.Equal(t, string(roles.Ring), values["sidebar-ring"])
	}
}

func TestChartExtrasIndependentOfPalette(t *testing.T) {
	gen := newTestGenerator(t)

	a, err := gen.Generate(palette.LaravelCloudPalette())
	require.NoError(t, err)
	b, err := gen.Generate(palette.OriginalPalette())
	require.NoError(t, err)

	for _, mode := range palette.Modes() {
		require.Equal(t, a.Declarations(mode)[23:25], b.Declarations(mode)[23:25])
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen := newTestGenerator(t)
	p := palette.LaravelCloudPalette()

	first, err := gen.Generate(p)
	require.NoError(t, err)
	second, err := gen.Generate(p)
	require.NoError(t, err)
	require.Equal(t, first.String(), second.String())

	other := newTestGenerator(t)
	third, err := other.Generate(palette.LaravelCloudPalette())
	require.NoError(t, err)
	require.Equal(t, first.String(), third.String())
}

func TestGenerateIncompletePalette(t *testing.T) {
	p := palette.OriginalPalette()
	p.Dark.Border = ""

	sheet, err := newTestGenerator(t).Generate(p)
	require.Nil(t, sheet)

	var incomplete *palette.IncompletePaletteError
	require.True(t, errors.As(err, &incomplete))
	require.Equal(t, []palette.Role{palette.RoleBorder}, incomplete.Missing[palette.ModeDark])
	require.NotContains(t, incomplete.Missing, palette.ModeLight)
}

func TestGenerateNilPalette(t *testing.T) {
	_, err := newTestGenerator(t).Generate(nil)
	require.Error(t, err)
}

func TestNewGeneratorValidatesOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Radius = " "
	_, err := NewGenerator(opts)
	require.Error(t, err)

	opts = DefaultOptions()
	opts.Chart.Dark.Chart5 = ""
	_, err = NewGenerator(opts)
	require.ErrorContains(t, err, "dark chart colors are required")
}

func TestGenerateCustomRadius(t *testing.T) {
	opts := DefaultOptions()
	opts.Radius = "0.75rem"
	gen, err := NewGenerator(opts)
	require.NoError(t, err)

	sheet, err := gen.Generate(palette.OriginalPalette())
	require.NoError(t, err)
	require.Equal(t, 2, strings.Count(sheet.String(), "--radius: 0.75rem;"))
}
