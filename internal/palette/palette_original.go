package palette

// OriginalPalette is the first blue scheme, kept as a fallback.
func OriginalPalette() *Palette {
	return &Palette{
		Name:        "Original",
		Description: "Original blue palette",
		Source:      SourceBuiltin,
		Light: ColorRoles{
			Background:            "oklch(1 0 0)",
			Foreground:            "oklch(0.145 0 0)",
			Card:                  "oklch(1 0 0)",
			CardForeground:        "oklch(0.145 0 0)",
			Popover:               "oklch(1 0 0)",
			PopoverForeground:     "oklch(0.145 0 0)",
			Primary:               "oklch(0.55 0.22 250)",
			PrimaryForeground:     "oklch(0.985 0 0)",
			Secondary:             "oklch(0.97 0 0)",
			SecondaryForeground:   "oklch(0.205 0 0)",
			Accent:                "oklch(0.97 0 0)",
			AccentForeground:      "oklch(0.205 0 0)",
			Muted:                 "oklch(0.97 0 0)",
			MutedForeground:       "oklch(0.556 0 0)",
			Destructive:           "oklch(0.577 0.245 27.325)",
			DestructiveForeground: "oklch(0.985 0 0)",
			Border:                "oklch(0.922 0 0)",
			Input:                 "oklch(0.922 0 0)",
			Ring:                  "oklch(0.55 0.22 250)",
		},
		Dark: ColorRoles{
			Background:            "oklch(0.145 0 0)",
			Foreground:            "oklch(0.985 0 0)",
			Card:                  "oklch(0.205 0 0)",
			CardForeground:        "oklch(0.985 0 0)",
			Popover:               "oklch(0.205 0 0)",
			PopoverForeground:     "oklch(0.985 0 0)",
			Primary:               "oklch(0.65 0.22 250)",
			PrimaryForeground:     "oklch(0.145 0 0)",
			Secondary:             "oklch(0.269 0 0)",
			SecondaryForeground:   "oklch(0.985 0 0)",
			Accent:                "oklch(0.269 0 0)",
			AccentForeground:      "oklch(0.985 0 0)",
			Muted:                 "oklch(0.269 0 0)",
			MutedForeground:       "oklch(0.708 0 0)",
			Destructive:           "oklch(0.704 0.191 22.216)",
			DestructiveForeground: "oklch(0.985 0 0)",
			Border:                "oklch(1 0 0 / 10%)",
			Input:                 "oklch(1 0 0 / 15%)",
			Ring:                  "oklch(0.65 0.22 250)",
		},
	}
}
