package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/solutivemind/themegen/internal/config"
	"github.com/solutivemind/themegen/internal/palette"
)

var checkJSON bool

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "emit results as JSON")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify every palette assigns all color roles",
	Long:  "Verify that every registered palette assigns a color to each role in both light and dark mode.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		if cfg == nil {
			cfg = config.DefaultConfig()
		}

		registry, err := loadRegistry(cfg)
		if err != nil {
			return err
		}
		return runCheck(cmd.OutOrStdout(), registry, checkJSON)
	},
}

// checkResult is the outcome of validating one palette.
type checkResult struct {
	ID     string `json:"id"`
	OK     bool   `json:"ok"`
	Detail string `json:"detail,omitempty"`
}

func checkPalettes(registry *palette.Registry) []checkResult {
	entries := registry.Entries()
	results := make([]checkResult, 0, len(entries))
	for _, entry := range entries {
		result := checkResult{ID: entry.ID, OK: true}
		if err := entry.Palette.Validate(); err != nil {
			result.OK = false
			result.Detail = err.Error()
		}
		results = append(results, result)
	}
	return results
}

func checkStatus(ok bool) string {
	if ok {
		return "OK"
	}
	return "ERR"
}

func runCheck(out io.Writer, registry *palette.Registry, asJSON bool) error {
	results := checkPalettes(registry)

	failed := 0
	for _, result := range results {
		if !result.OK {
			failed++
		}
	}

	if asJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		st := newStyles(out)
		rows := make([][]string, 0, len(results))
		for _, result := range results {
			rows = append(rows, []string{result.ID, checkStatus(result.OK), result.Detail})
		}
		colorStatus := func(row int, cell string) string {
			if results[row].OK {
				return st.Success.Render(cell)
			}
			return st.Error.Render(cell)
		}
		if err := writeColoredTable(out, []string{"ID", "STATUS", "DETAIL"}, rows, 1, colorStatus); err != nil {
			return err
		}
	}

	if failed > 0 {
		return &reportedError{err: fmt.Errorf("%d of %d palettes are incomplete", failed, len(results))}
	}
	return nil
}
