package standings

import (
	"fmt"
	"regexp"
	"strings"

	"almanac-backend/lib/htmlutil"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// lowercase, trim, collapse internal whitespace runs to underscores
func normalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return whitespaceRun.ReplaceAllString(s, "_")
}

func normalizeTokens(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = normalizeToken(t)
	}
	return out
}

func winsLike(tokens []string) bool {
	for _, t := range tokens {
		if t == "w" || t == FieldWins {
			return true
		}
	}
	return false
}

func lossesLike(tokens []string) bool {
	for _, t := range tokens {
		if t == "l" || t == FieldLosses {
			return true
		}
	}
	return false
}

// NormalizedTable is a located table after header normalization: one
// flat header row aligned with the data rows.
type NormalizedTable struct {
	Header []string
	Rows   [][]string
}

func (t NormalizedTable) width() int {
	w := len(t.Header)
	for _, row := range t.Rows {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// Normalize flattens and normalizes the header of an extracted table
// and detects headers rendered as the first data row.
//
// Some source years put the true header in a secondary table row rather
// than <th> cells, which leaves the nominal header uninformative. When
// neither a wins-like nor a losses-like token shows up in the header but
// the first data row carries both, that row is promoted to be the header
// and dropped from the data.
func Normalize(t htmlutil.Table) NormalizedTable {
	out := NormalizedTable{Rows: t.Rows}

	switch len(t.HeaderRows) {
	case 0:
		// headerless table: the first row is the best header candidate,
		// header-lift below corrects it if it was actually data
		if len(out.Rows) > 0 {
			out.Header = normalizeTokens(out.Rows[0])
			out.Rows = out.Rows[1:]
		}
	case 1:
		out.Header = normalizeTokens(t.HeaderRows[0])
	default:
		out.Header = flattenHeaderLevels(t.HeaderRows)
	}

	if !winsLike(out.Header) && !lossesLike(out.Header) && len(out.Rows) > 1 {
		lifted := normalizeTokens(out.Rows[0])
		if winsLike(lifted) && lossesLike(lifted) {
			out.Rows = out.Rows[1:]
			out.Header = padHeader(lifted, out.width())
		}
	}

	out.Header = normalizeTokens(out.Header)
	return out
}

// joins each column's level tuple with underscores, skipping blank
// placeholder levels produced by colspan'd parent headers
func flattenHeaderLevels(levels [][]string) []string {
	width := 0
	for _, level := range levels {
		if len(level) > width {
			width = len(level)
		}
	}

	header := make([]string, width)
	for col := 0; col < width; col++ {
		var parts []string
		for _, level := range levels {
			if col >= len(level) {
				continue
			}
			token := normalizeToken(level[col])
			if token != "" {
				parts = append(parts, token)
			}
		}
		header[col] = strings.Join(parts, "_")
	}
	return header
}

// pads or truncates a lifted header to the table's column count, naming
// unresolved trailing columns positionally
func padHeader(header []string, width int) []string {
	out := make([]string, width)
	for i := 0; i < width; i++ {
		if i < len(header) && header[i] != "" {
			out[i] = header[i]
		} else {
			out[i] = fmt.Sprintf("col%d", i)
		}
	}
	return out
}
