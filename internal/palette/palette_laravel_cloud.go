package palette

// LaravelCloudPalette is dark-first: the light slot holds the navy scheme and
// the dark slot holds its inverted, light scheme.
func LaravelCloudPalette() *Palette {
	return &Palette{
		Name:        "Laravel Cloud",
		Description: "Dark navy with cyan accents inspired by Laravel Cloud",
		Source:      SourceBuiltin,
		Light: ColorRoles{
			Background:            "oklch(0.12 0.02 250)",
			Foreground:            "oklch(0.92 0.005 240)",
			Card:                  "oklch(0.14 0.02 250 / 95%)",
			CardForeground:        "oklch(0.92 0.005 240)",
			Popover:               "oklch(0.14 0.02 250 / 95%)",
			PopoverForeground:     "oklch(0.92 0.005 240)",
			Primary:               "oklch(0.72 0.14 195)",
			PrimaryForeground:     "oklch(1 0 0)",
			Secondary:             "oklch(0.58 0.22 250)",
			SecondaryForeground:   "oklch(1 0 0)",
			Accent:                "oklch(0.72 0.14 195)",
			AccentForeground:      "oklch(0.12 0.02 250)",
			Muted:                 "oklch(0.18 0.02 250)",
			MutedForeground:       "oklch(0.65 0.01 240)",
			Destructive:           "oklch(0.55 0.25 25)",
			DestructiveForeground: "oklch(1 0 0)",
			Border:                "oklch(1 0 0 / 10%)",
			Input:                 "oklch(1 0 0 / 15%)",
			Ring:                  "oklch(0.72 0.14 195)",
		},
		Dark: ColorRoles{
			Background:            "oklch(0.98 0.005 210)",
			Foreground:            "oklch(0.20 0.05 240)",
			Card:                  "oklch(1 0 0)",
			CardForeground:        "oklch(0.20 0.05 240)",
			Popover:               "oklch(1 0 0)",
			PopoverForeground:     "oklch(0.20 0.05 240)",
			Primary:               "oklch(0.69 0.11 198)",
			PrimaryForeground:     "oklch(1 0 0)",
			Secondary:             "oklch(0.32 0.08 245)",
			SecondaryForeground:   "oklch(1 0 0)",
			Accent:                "oklch(0.69 0.11 198)",
			AccentForeground:      "oklch(0.20 0.05 240)",
			Muted:                 "oklch(0.95 0.005 210)",
			MutedForeground:       "oklch(0.45 0.03 240)",
			Destructive:           "oklch(0.55 0.25 25)",
			DestructiveForeground: "oklch(1 0 0)",
			Border:                "oklch(0.90 0.005 210)",
			Input:                 "oklch(0.90 0.005 210)",
			Ring:                  "oklch(0.69 0.11 198)",
		},
	}
}
