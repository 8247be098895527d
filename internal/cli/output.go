package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"unicode/utf8"
)

const tablePadding = 2

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeTable aligns rows under headers using tab stops.
func writeTable(out io.Writer, headers []string, rows [][]string) error {
	writer := tabwriter.NewWriter(out, 0, 0, tablePadding, ' ', tabwriter.StripEscape)
	if len(headers) > 0 {
		fmt.Fprintln(writer, strings.ToUpper(strings.Join(headers, "\t")))
	}
	for _, row := range rows {
		fmt.Fprintln(writer, strings.Join(row, "\t"))
	}
	return writer.Flush()
}

// writeColoredTable aligns rows as plain text and only then passes the cells of
// column col through color, so escape sequences never count toward widths.
func writeColoredTable(out io.Writer, headers []string, rows [][]string, col int, color func(row int, cell string) string) error {
	var plain bytes.Buffer
	if err := writeTable(&plain, headers, rows); err != nil {
		return err
	}

	start := 0
	for c := 0; c < col; c++ {
		width := 0
		if c < len(headers) {
			width = utf8.RuneCountInString(headers[c])
		}
		for _, row := range rows {
			if c < len(row) {
				width = max(width, utf8.RuneCountInString(row[c]))
			}
		}
		start += width + tablePadding
	}

	skip := 0
	if len(headers) > 0 {
		skip = 1
	}
	lines := strings.SplitAfter(plain.String(), "\n")
	for i, line := range lines {
		row := i - skip
		if row >= 0 && row < len(rows) && col < len(rows[row]) {
			cell := rows[row][col]
			runes := []rune(line)
			end := start + utf8.RuneCountInString(cell)
			if end <= len(runes) && string(runes[start:end]) == cell {
				line = string(runes[:start]) + color(row, cell) + string(runes[end:])
			}
		}
		if _, err := io.WriteString(out, line); err != nil {
			return err
		}
	}
	return nil
}

func formatYesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
