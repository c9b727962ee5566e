// Package standings turns located standings tables into a canonical,
// typed row set. Thirty-plus years of source pages spell their headers
// differently and render numbers in locale-dependent ways; everything
// here exists to flatten that variance into one schema.
package standings

// canonical output column names
const (
	FieldTeam        = "team"
	FieldWins        = "wins"
	FieldLosses      = "losses"
	FieldWinPct      = "win_pct"
	FieldGamesBehind = "games_behind"
	FieldPayroll     = "payroll"
	FieldDivision    = "division"
	FieldLeague      = "league"
	FieldYear        = "year"
	FieldSourceFile  = "source_file"
	FieldGamesPlayed = "games_played"
)

// header aliases observed across source eras, applied after token
// normalization and only when the canonical field is not already present
var headerAliases = map[string]string{
	"team_[click_for_roster]": FieldTeam,
	"teams":                   FieldTeam,
	"tm":                      FieldTeam,
	"club":                    FieldTeam,
	"franchise":               FieldTeam,
	"w":                       FieldWins,
	"l":                       FieldLosses,
	"w-l%":                    FieldWinPct,
	"wp":                      FieldWinPct,
	"pct":                     FieldWinPct,
	"win%":                    FieldWinPct,
	"win":                     FieldWinPct,
	"gb":                      FieldGamesBehind,
}

// columns RowAssembler keeps from a source table
var keepFields = map[string]bool{
	FieldTeam:        true,
	FieldWins:        true,
	FieldLosses:      true,
	FieldWinPct:      true,
	FieldGamesBehind: true,
	FieldPayroll:     true,
	FieldDivision:    true,
}

// MapFields rewrites normalized header tokens to canonical field names.
// An alias is only applied when its target is not already a header, so a
// table that carries both "wins" and "w" keeps the explicit column.
// When nothing maps to the team field, the first column is assumed to be
// team identity: in every observed table shape the team name is the
// leftmost informative field.
func MapFields(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	mapped := make([]string, len(header))
	hasTeam := false
	for i, h := range header {
		canonical, ok := headerAliases[h]
		if ok && !present[canonical] {
			mapped[i] = canonical
		} else {
			mapped[i] = h
		}
		if mapped[i] == FieldTeam {
			hasTeam = true
		}
	}

	if !hasTeam && len(mapped) > 0 {
		mapped[0] = FieldTeam
	}
	return mapped
}
