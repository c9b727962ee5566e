package standings

import (
	"database/sql"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultDivision is the sentinel label for rows whose source page
// never stated a division.
const DefaultDivision = "Unknown"

var titleCaser = cases.Title(language.AmericanEnglish)

// Clean produces the canonical dataset from the aggregated raw one.
// Input rows are never mutated; every output row is a fresh value.
//
// Rows with no team identity are dropped and team names trimmed.
// games_played and win_pct are re-derived from wins and losses wherever
// both are present: scraped percentages are display artifacts while
// wins and losses are the authoritative primitives. A 0-0 record yields
// a null win_pct rather than a division error. Null divisions get the
// sentinel label and all division labels are title-cased.
//
// Clean is idempotent: running it on its own output changes nothing.
func Clean(ds Dataset) Dataset {
	out := make(Dataset, 0, len(ds))

	for _, row := range ds {
		if !row.Team.Valid {
			continue
		}
		team := strings.TrimSpace(row.Team.String)
		if team == "" {
			continue
		}

		clean := row
		clean.Team = sql.NullString{String: team, Valid: true}

		if row.Wins.Valid && row.Losses.Valid {
			played := row.Wins.Int64 + row.Losses.Int64
			clean.GamesPlayed = sql.NullInt64{Int64: played, Valid: true}
			if played > 0 {
				clean.WinPct = sql.NullFloat64{
					Float64: float64(row.Wins.Int64) / float64(played),
					Valid:   true,
				}
			} else {
				clean.WinPct = sql.NullFloat64{}
			}
		}

		division := DefaultDivision
		if row.Division.Valid && strings.TrimSpace(row.Division.String) != "" {
			division = strings.TrimSpace(row.Division.String)
		}
		clean.Division = sql.NullString{
			String: titleCaser.String(strings.ToLower(division)),
			Valid:  true,
		}

		out = append(out, clean)
	}
	return out
}
