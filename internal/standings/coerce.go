package standings

import (
	"database/sql"
	"log/slog"
	"strconv"
	"strings"
)

// Cell coercion never fails a run: malformed values become invalid
// (null) so one bad cell in 1987 cannot stop a decades-long scrape.
// Failures are logged as data-quality notes at debug level.

func parseNumber(field, raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		slog.Debug("cell failed numeric coercion", "field", field, "value", raw)
		return 0, false
	}
	return v, true
}

// CoerceCount parses an integer-valued cell (wins, losses).
func CoerceCount(field, raw string) sql.NullInt64 {
	v, ok := parseNumber(field, raw)
	if !ok {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(v), Valid: true}
}

// CoerceWinPct parses a winning-percentage cell. A trailing percent
// marker is textual decoration (the value already expresses a 0-1
// fraction), comma decimal separators are swapped for periods, and a
// bare fractional rendering like ".534" gains its leading zero.
func CoerceWinPct(raw string) sql.NullFloat64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimSuffix(s, "%")
	s = strings.ReplaceAll(s, ",", ".")
	if len(s) > 1 && s[0] == '.' && isDigits(s[1:]) {
		s = "0" + s
	}
	v, ok := parseNumber(FieldWinPct, s)
	if !ok {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// CoerceGamesBehind parses a games-behind cell. Both the em-dash and
// en-dash glyphs mean "tied for first" on the source pages, so they
// read as zero rather than null.
func CoerceGamesBehind(raw string) sql.NullFloat64 {
	s := strings.ReplaceAll(raw, "—", "0")
	s = strings.ReplaceAll(s, "–", "0")
	v, ok := parseNumber(FieldGamesBehind, s)
	if !ok {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

// CoercePayroll parses a currency-formatted payroll cell, stripping the
// dollar sign, thousands separators, and the footnote dagger before the
// numeric parse.
func CoercePayroll(raw string) sql.NullFloat64 {
	s := strings.ReplaceAll(raw, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "†", "")
	v, ok := parseNumber(FieldPayroll, s)
	if !ok {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
