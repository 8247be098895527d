package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/solutivemind/themegen/internal/config"
	"github.com/solutivemind/themegen/internal/logging"
	"github.com/solutivemind/themegen/internal/palette"
	"github.com/solutivemind/themegen/internal/tokens"
)

var (
	generateJSON  bool
	generateQuiet bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "emit declarations as JSON instead of CSS")
	generateCmd.Flags().BoolVarP(&generateQuiet, "quiet", "q", false, "omit the banner on stderr")
}

var generateCmd = &cobra.Command{
	Use:   "generate [palette]",
	Short: "Print the stylesheet tokens for a palette",
	Long: `Print the :root and .dark custom property blocks for a palette.

Without an argument the configured palette is used (config "palette" or
THEMEGEN_PALETTE), falling back to the default palette.`,
	Example: `  themegen generate
  themegen generate solutiveMind
  themegen generate original --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			cfg = config.DefaultConfig()
		}

		registry, err := loadRegistry(cfg)
		if err != nil {
			return err
		}
		generator, err := tokens.NewGenerator(cfg.TokenOptions())
		if err != nil {
			return err
		}

		req := generateRequest{
			Configured:     cfg.Palette,
			JSON:           generateJSON,
			Quiet:          generateQuiet,
			StylesheetPath: cfg.Output.StylesheetPath,
		}
		if len(args) > 0 {
			req.ID = args[0]
		}

		return runGenerate(cmd.OutOrStdout(), cmd.ErrOrStderr(), registry, generator, req)
	},
}

type generateRequest struct {
	// ID is the palette named on the command line.
	ID string
	// Configured is the palette from configuration, used when ID is blank.
	Configured     string
	JSON           bool
	Quiet          bool
	StylesheetPath string
}

func (r generateRequest) paletteID() string {
	if id := strings.TrimSpace(r.ID); id != "" {
		return id
	}
	return strings.TrimSpace(r.Configured)
}

// generateOutput is the payload for `themegen generate --json`.
type generateOutput struct {
	ID         string             `json:"id"`
	Source     string             `json:"source"`
	Stylesheet *tokens.Stylesheet `json:"stylesheet"`
}

func runGenerate(stdout, stderr io.Writer, registry *palette.Registry, generator *tokens.Generator, req generateRequest) error {
	logger := logging.Component("generate")
	st := newStyles(stderr)

	id, p, err := registry.Resolve(req.paletteID())
	if err != nil {
		var unknown *palette.UnknownPaletteError
		if errors.As(err, &unknown) {
			st.printError(stderr, fmt.Errorf("palette %q not found", unknown.ID))
			fmt.Fprintf(stderr, "Available palettes: %s\n", strings.Join(unknown.Available, ", "))
			return &reportedError{err: err}
		}
		return err
	}

	sheet, err := generator.Generate(p)
	if err != nil {
		var incomplete *palette.IncompletePaletteError
		if errors.As(err, &incomplete) {
			st.printError(stderr, err)
			fmt.Fprintf(stderr, "Fix the palette defined in %s and run again.\n", p.Source)
			return &reportedError{err: err}
		}
		return err
	}

	logger.Debug().
		Str("palette", id).
		Str("source", p.Source).
		Msg("stylesheet generated")

	if req.JSON {
		return writeJSON(stdout, generateOutput{ID: id, Source: p.Source, Stylesheet: sheet})
	}

	if !req.Quiet {
		printBanner(stderr, st, id, p, req.StylesheetPath)
	}
	return sheet.Render(stdout)
}

func printBanner(w io.Writer, st styles, id string, p *palette.Palette, stylesheetPath string) {
	rule := st.Rule.Render(strings.Repeat("=", 60))
	fmt.Fprintf(w, "%s %s %s\n", st.Muted.Render("Generating theme from palette:"), st.Title.Render(p.Name), st.Muted.Render("("+id+")"))
	if p.Description != "" {
		fmt.Fprintf(w, "%s %s\n", st.Muted.Render("Description:"), p.Description)
	}
	if stylesheetPath == "" {
		return
	}
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Copy the following CSS into %s\n", st.Accent.Render(stylesheetPath))
	fmt.Fprintln(w, rule)
}

func loadRegistry(cfg *config.Config) (*palette.Registry, error) {
	dir, err := resolveProjectDir()
	if err != nil {
		return nil, err
	}

	registry, err := palette.LoadRegistry(palette.LoadOptions{
		ProjectDir: dir,
		ExtraDirs:  cfg.PaletteDirs,
	})
	if err != nil {
		return nil, fmt.Errorf("load palettes: %w", err)
	}

	logger := logging.Component("palette")
	logger.Debug().
		Strs("ids", registry.IDs()).
		Str("default", registry.ActiveID()).
		Msg("palettes loaded")
	return registry, nil
}
