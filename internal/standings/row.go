package standings

import "database/sql"

// Row is one team's record for one (year, league) unit. Columns a
// source era never published stay invalid rather than zero, so "the
// page said 0" and "the page had no column" remain distinguishable.
type Row struct {
	Year        int
	League      string
	Division    sql.NullString
	Team        sql.NullString
	Wins        sql.NullInt64
	Losses      sql.NullInt64
	WinPct      sql.NullFloat64
	GamesBehind sql.NullFloat64
	Payroll     sql.NullFloat64

	// set by CleaningStage only
	GamesPlayed sql.NullInt64

	// name of the per-unit file this row came from
	SourceFile string
}

// Dataset is the append-only union of per-unit row sets. Row order is
// only meaningful within a unit.
type Dataset []Row
