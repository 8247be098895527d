package palette

import (
	"fmt"
	"strings"
)

// Entry pairs a palette with its registry identifier.
type Entry struct {
	ID      string
	Palette *Palette
}

// Registry is a read-only catalogue of palettes with one default selection.
// It is safe for concurrent use once constructed.
type Registry struct {
	palettes map[string]*Palette
	order    []string
	activeID string
}

// NewRegistry builds a registry from entries. activeID must name one of them.
func NewRegistry(activeID string, entries ...Entry) (*Registry, error) {
	r := &Registry{
		palettes: make(map[string]*Palette, len(entries)),
		order:    make([]string, 0, len(entries)),
	}

	for _, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			return nil, ErrPaletteIDRequired
		}
		if entry.Palette == nil {
			return nil, fmt.Errorf("palette %q is nil", id)
		}
		if _, exists := r.palettes[id]; exists {
			return nil, fmt.Errorf("duplicate palette id %q", id)
		}
		r.palettes[id] = entry.Palette
		r.order = append(r.order, id)
	}

	activeID = strings.TrimSpace(activeID)
	if _, ok := r.palettes[activeID]; !ok {
		return nil, fmt.Errorf("active palette %q is not registered", activeID)
	}
	r.activeID = activeID

	return r, nil
}

// Get returns the palette registered under id.
func (r *Registry) Get(id string) (*Palette, error) {
	p, ok := r.palettes[strings.TrimSpace(id)]
	if !ok {
		return nil, &UnknownPaletteError{ID: id, Available: r.IDs()}
	}
	return p, nil
}

// IDs returns registered identifiers in insertion order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

// Active returns the default palette.
func (r *Registry) Active() *Palette {
	return r.palettes[r.activeID]
}

// ActiveID returns the identifier of the default palette.
func (r *Registry) ActiveID() string {
	return r.activeID
}

// Resolve looks up id, falling back to the active palette when id is blank.
func (r *Registry) Resolve(id string) (string, *Palette, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return r.activeID, r.Active(), nil
	}
	p, err := r.Get(id)
	if err != nil {
		return "", nil, err
	}
	return id, p, nil
}

// Entries returns all registered palettes in insertion order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, id := range r.order {
		entries = append(entries, Entry{ID: id, Palette: r.palettes[id]})
	}
	return entries
}
