package palette

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk form of a palette.
type paletteFile struct {
	ID      string `yaml:"id"`
	Palette `yaml:",inline"`
}

// LoadPalette reads a single palette file. The identifier is the file's id
// field, or the file name without extension.
func LoadPalette(path string) (Entry, error) {
	if strings.TrimSpace(path) == "" {
		return Entry{}, fmt.Errorf("palette path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, fmt.Errorf("read palette %s: %w", path, err)
	}

	doc, err := parsePalette(data)
	if err != nil {
		return Entry{}, fmt.Errorf("parse palette %s: %w", path, err)
	}

	id := doc.ID
	if id == "" {
		id = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	p := doc.Palette
	p.Source = path
	return Entry{ID: id, Palette: &p}, nil
}

// LoadPalettesFromDir loads every *.yaml and *.yml palette in dir, sorted by
// identifier. A missing directory yields no palettes.
func LoadPalettesFromDir(dir string) ([]Entry, error) {
	if strings.TrimSpace(dir) == "" {
		return []Entry{}, nil
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Entry{}, nil
		}
		return nil, fmt.Errorf("read palettes dir %s: %w", dir, err)
	}

	entries := make([]Entry, 0)
	seen := make(map[string]string)
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		path := filepath.Join(dir, name)
		entry, err := LoadPalette(path)
		if err != nil {
			return nil, err
		}
		if other, exists := seen[entry.ID]; exists {
			return nil, fmt.Errorf("duplicate palette id %q in %s and %s", entry.ID, other, path)
		}
		seen[entry.ID] = path
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})

	return entries, nil
}

func parsePalette(data []byte) (*paletteFile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc paletteFile
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("palette file is empty")
		}
		return nil, err
	}

	doc.ID = strings.TrimSpace(doc.ID)
	doc.Name = strings.TrimSpace(doc.Name)
	if doc.Name == "" {
		return nil, ErrPaletteNameRequired
	}
	doc.Description = strings.TrimSpace(doc.Description)

	return &doc, nil
}
