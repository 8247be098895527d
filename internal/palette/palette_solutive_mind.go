package palette

// SolutiveMindPalette pairs a cyan primary with dark blue text and lime
// highlights.
func SolutiveMindPalette() *Palette {
	return &Palette{
		Name:        "SolutiveMind",
		Description: "Professional palette with cyan primary, dark blue secondary, and lime green accents",
		Source:      SourceBuiltin,
		Light: ColorRoles{
			Background:            "oklch(0.98 0.005 210)",
			Foreground:            "oklch(0.32 0.08 245)",
			Card:                  "oklch(1 0 0)",
			CardForeground:        "oklch(0.32 0.08 245)",
			Popover:               "oklch(1 0 0)",
			PopoverForeground:     "oklch(0.32 0.08 245)",
			Primary:               "oklch(0.69 0.11 198)",
			PrimaryForeground:     "oklch(1 0 0)",
			Secondary:             "oklch(0.32 0.08 245)",
			SecondaryForeground:   "oklch(1 0 0)",
			Accent:                "oklch(0.92 0.22 125)",
			AccentForeground:      "oklch(0.32 0.08 245)",
			Muted:                 "oklch(0.95 0.005 210)",
			MutedForeground:       "oklch(0.50 0.01 230)",
			Destructive:           "oklch(0.577 0.245 27.325)",
			DestructiveForeground: "oklch(0.985 0 0)",
			Border:                "oklch(0.90 0.005 210)",
			Input:                 "oklch(0.90 0.005 210)",
			Ring:                  "oklch(0.69 0.11 198)",
		},
		Dark: ColorRoles{
			Background:            "oklch(0.16 0.01 230)",
			Foreground:            "oklch(0.98 0.005 210)",
			Card:                  "oklch(0.20 0.01 230)",
			CardForeground:        "oklch(0.98 0.005 210)",
			Popover:               "oklch(0.20 0.01 230)",
			PopoverForeground:     "oklch(0.98 0.005 210)",
			Primary:               "oklch(0.75 0.11 198)",
			PrimaryForeground:     "oklch(0.16 0.01 230)",
			Secondary:             "oklch(0.40 0.08 245)",
			SecondaryForeground:   "oklch(0.98 0.005 210)",
			Accent:                "oklch(0.90 0.22 125)",
			AccentForeground:      "oklch(0.16 0.01 230)",
			Muted:                 "oklch(0.22 0.01 230)",
			MutedForeground:       "oklch(0.65 0.005 210)",
			Destructive:           "oklch(0.704 0.191 22.216)",
			DestructiveForeground: "oklch(0.985 0 0)",
			Border:                "oklch(1 0 0 / 10%)",
			Input:                 "oklch(1 0 0 / 15%)",
			Ring:                  "oklch(0.75 0.11 198)",
		},
	}
}
