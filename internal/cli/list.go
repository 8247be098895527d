package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solutivemind/themegen/internal/config"
	"github.com/solutivemind/themegen/internal/logging"
	"github.com/solutivemind/themegen/internal/palette"
)

var listJSON bool

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "emit the palette list as JSON")
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available palettes",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			cfg = config.DefaultConfig()
		}

		registry, err := loadRegistry(cfg)
		if err != nil {
			return err
		}
		return runList(cmd.OutOrStdout(), registry, cfg.Palette, listJSON)
	},
}

// paletteSummary is one row of `themegen list`.
type paletteSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Default     bool   `json:"default"`
}

func summarizePalettes(registry *palette.Registry, configured string) []paletteSummary {
	defaultID := registry.ActiveID()
	if configured = strings.TrimSpace(configured); configured != "" {
		if _, err := registry.Get(configured); err == nil {
			defaultID = configured
		} else {
			logger := logging.Component("list")
			logger.Warn().
				Str("configured", configured).
				Str("default", defaultID).
				Msg("configured palette is not registered, marking the built-in default")
		}
	}

	entries := registry.Entries()
	summaries := make([]paletteSummary, 0, len(entries))
	for _, entry := range entries {
		summaries = append(summaries, paletteSummary{
			ID:          entry.ID,
			Name:        entry.Palette.Name,
			Description: entry.Palette.Description,
			Source:      entry.Palette.Source,
			Default:     entry.ID == defaultID,
		})
	}
	return summaries
}

func runList(out io.Writer, registry *palette.Registry, configured string, asJSON bool) error {
	summaries := summarizePalettes(registry, configured)
	if asJSON {
		return writeJSON(out, summaries)
	}

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{s.ID, s.Name, formatYesNo(s.Default), s.Source, s.Description})
	}
	return writeTable(out, []string{"ID", "NAME", "DEFAULT", "SOURCE", "DESCRIPTION"}, rows)
}
