package palette

// DefaultActiveID is the palette used when none is requested.
const DefaultActiveID = "laravelCloud"

// Builtin returns the palettes bundled with themegen, in registry order.
func Builtin() []Entry {
	return []Entry{
		{ID: "laravelCloud", Palette: LaravelCloudPalette()},
		{ID: "solutiveMind", Palette: SolutiveMindPalette()},
		{ID: "original", Palette: OriginalPalette()},
	}
}

// DefaultRegistry returns a registry of the builtin palettes.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultActiveID, Builtin()...)
	if err != nil {
		panic(err)
	}
	return r
}
