package palette

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const oceanYAML = `id: ocean
name: Ocean
description: Deep blue test palette
light:
  background: oklch(0.99 0 0)
  foreground: oklch(0.20 0.05 240)
  card: oklch(1 0 0)
  cardForeground: oklch(0.20 0.05 240)
  popover: oklch(1 0 0)
  popoverForeground: oklch(0.20 0.05 240)
  primary: oklch(0.55 0.15 240)
  primaryForeground: oklch(1 0 0)
  secondary: oklch(0.40 0.08 250)
  secondaryForeground: oklch(1 0 0)
  accent: oklch(0.80 0.10 200)
  accentForeground: oklch(0.20 0.05 240)
  muted: oklch(0.95 0 0)
  mutedForeground: oklch(0.50 0.01 240)
  destructive: oklch(0.577 0.245 27.325)
  destructiveForeground: oklch(0.985 0 0)
  border: oklch(0.90 0 0)
  input: oklch(0.90 0 0)
  ring: oklch(0.55 0.15 240)
dark:
  background: oklch(0.15 0.02 240)
  foreground: oklch(0.98 0 0)
  card: oklch(0.20 0.02 240)
  cardForeground: oklch(0.98 0 0)
  popover: oklch(0.20 0.02 240)
  popoverForeground: oklch(0.98 0 0)
  primary: oklch(0.65 0.15 240)
  primaryForeground: oklch(0.15 0.02 240)
  secondary: oklch(0.30 0.05 250)
  secondaryForeground: oklch(0.98 0 0)
  accent: oklch(0.75 0.10 200)
  accentForeground: oklch(0.15 0.02 240)
  muted: oklch(0.25 0.02 240)
  mutedForeground: oklch(0.70 0 0)
  destructive: oklch(0.704 0.191 22.216)
  destructiveForeground: oklch(0.985 0 0)
  border: oklch(1 0 0 / 10%)
  input: oklch(1 0 0 / 15%)
  ring: oklch(0.65 0.15 240)
`

func writePaletteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write palette: %v", err)
	}
	return path
}

func TestLoadPalette(t *testing.T) {
	dir := t.TempDir()
	path := writePaletteFile(t, dir, "ocean.yaml", oceanYAML)

	entry, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}

	if entry.ID != "ocean" {
		t.Fatalf("expected id ocean, got %q", entry.ID)
	}
	if entry.Palette.Source != path {
		t.Fatalf("expected source %q, got %q", path, entry.Palette.Source)
	}
	if entry.Palette.Dark.Border != "oklch(1 0 0 / 10%)" {
		t.Fatalf("unexpected dark border: %q", entry.Palette.Dark.Border)
	}
	if err := entry.Palette.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestLoadPaletteIDFromFileName(t *testing.T) {
	dir := t.TempDir()
	content := strings.Replace(oceanYAML, "id: ocean\n", "", 1)
	path := writePaletteFile(t, dir, "seaside.yml", content)

	entry, err := LoadPalette(path)
	if err != nil {
		t.Fatalf("LoadPalette: %v", err)
	}
	if entry.ID != "seaside" {
		t.Fatalf("expected id seaside, got %q", entry.ID)
	}
}

func TestLoadPaletteRejectsInvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "empty", content: "", wantErr: "empty"},
		{name: "missing name", content: "id: x\ndescription: no name\n", wantErr: "name is required"},
		{name: "unknown role", content: "name: X\nlight:\n  chart1: oklch(1 0 0)\n", wantErr: "chart1"},
		{name: "duplicate role", content: "name: X\nlight:\n  primary: oklch(1 0 0)\n  primary: oklch(0 0 0)\n", wantErr: "primary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writePaletteFile(t, t.TempDir(), "bad.yaml", tt.content)
			_, err := LoadPalette(path)
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadPalettesFromDir(t *testing.T) {
	dir := t.TempDir()
	writePaletteFile(t, dir, "ocean.yaml", oceanYAML)
	writePaletteFile(t, dir, "notes.txt", "not a palette")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	entries, err := LoadPalettesFromDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "ocean", entries[0].ID)

	missing, err := LoadPalettesFromDir(filepath.Join(dir, "does-not-exist"))
	require.NoError(t, err)
	require.Empty(t, missing)
}

func TestLoadPalettesFromDirDuplicateID(t *testing.T) {
	dir := t.TempDir()
	writePaletteFile(t, dir, "a.yaml", oceanYAML)
	writePaletteFile(t, dir, "b.yaml", oceanYAML)

	_, err := LoadPalettesFromDir(dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), `duplicate palette id "ocean"`)
}

func TestLoadRegistryMergesWithBuiltins(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	writePaletteFile(t, first, "ocean.yaml", oceanYAML)
	override := strings.Replace(oceanYAML, "id: ocean\nname: Ocean", "id: original\nname: Patched Original", 1)
	writePaletteFile(t, first, "original.yaml", override)
	shadowed := strings.Replace(oceanYAML, "name: Ocean", "name: Shadowed Ocean", 1)
	writePaletteFile(t, second, "ocean.yaml", shadowed)

	registry, err := LoadRegistry(LoadOptions{ExtraDirs: []string{first, second}, SkipSearchPaths: true})
	require.NoError(t, err)

	require.Equal(t, []string{"laravelCloud", "solutiveMind", "original", "ocean"}, registry.IDs())
	require.Equal(t, DefaultActiveID, registry.ActiveID())

	original, err := registry.Get("original")
	require.NoError(t, err)
	require.Equal(t, "Patched Original", original.Name)

	ocean, err := registry.Get("ocean")
	require.NoError(t, err)
	require.Equal(t, "Ocean", ocean.Name)
}

func TestLoadRegistryProjectSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userDir := filepath.Join(home, ".config", "themegen", "palettes")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	writePaletteFile(t, userDir, "ocean.yaml", strings.Replace(oceanYAML, "name: Ocean", "name: User Ocean", 1))

	project := t.TempDir()
	dir := filepath.Join(project, ".themegen", "palettes")
	require.NoError(t, os.MkdirAll(dir, 0755))
	writePaletteFile(t, dir, "ocean.yaml", oceanYAML)

	paths := PaletteSearchPaths(project)
	require.Equal(t, []string{dir, userDir}, paths)

	registry, err := LoadRegistry(LoadOptions{ProjectDir: project})
	require.NoError(t, err)
	ocean, err := registry.Get("ocean")
	require.NoError(t, err)
	require.Equal(t, "Ocean", ocean.Name)
}

func TestLoadRegistryUserSearchPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	userDir := filepath.Join(home, ".config", "themegen", "palettes")
	require.NoError(t, os.MkdirAll(userDir, 0755))
	writePaletteFile(t, userDir, "ocean.yaml", oceanYAML)

	registry, err := LoadRegistry(LoadOptions{ProjectDir: t.TempDir()})
	require.NoError(t, err)
	require.Equal(t, []string{"laravelCloud", "solutiveMind", "original", "ocean"}, registry.IDs())
}
