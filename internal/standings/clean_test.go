package standings

import (
	"database/sql"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func rawRow(team string, wins, losses int64) Row {
	return Row{
		Year:   1995,
		League: "AL",
		Team:   sql.NullString{String: team, Valid: true},
		Wins:   sql.NullInt64{Int64: wins, Valid: true},
		Losses: sql.NullInt64{Int64: losses, Valid: true},
	}
}

func TestCleanDropsRowsWithoutTeam(t *testing.T) {
	ds := Dataset{
		rawRow("Boston Red Sox", 86, 58),
		{Year: 1995, League: "AL"},
		rawRow("   ", 10, 10),
	}

	clean := Clean(ds)
	require.Len(t, clean, 1)
	require.Equal(t, "Boston Red Sox", clean[0].Team.String)
}

func TestCleanTrimsTeam(t *testing.T) {
	clean := Clean(Dataset{rawRow("  Boston Red Sox  ", 86, 58)})
	require.Equal(t, "Boston Red Sox", clean[0].Team.String)
}

func TestCleanRederivesFromPrimitives(t *testing.T) {
	row := rawRow("Boston Red Sox", 86, 58)
	// scraped percentage is a display artifact and must be overwritten
	row.WinPct = sql.NullFloat64{Float64: 0.9, Valid: true}

	clean := Clean(Dataset{row})
	require.Len(t, clean, 1)
	require.True(t, clean[0].GamesPlayed.Valid)
	require.EqualValues(t, 144, clean[0].GamesPlayed.Int64)
	require.InDelta(t, 86.0/144.0, clean[0].WinPct.Float64, 1e-12)
}

func TestCleanZeroGamesYieldsNullWinPct(t *testing.T) {
	clean := Clean(Dataset{rawRow("Expansion Club", 0, 0)})
	require.Len(t, clean, 1)
	require.True(t, clean[0].GamesPlayed.Valid)
	require.Zero(t, clean[0].GamesPlayed.Int64)
	require.False(t, clean[0].WinPct.Valid)
}

func TestCleanDefaultsAndTitleCasesDivision(t *testing.T) {
	withDivision := rawRow("Boston Red Sox", 86, 58)
	withDivision.Division = sql.NullString{String: "AL EAST", Valid: true}

	clean := Clean(Dataset{withDivision, rawRow("Montreal Expos", 66, 78)})
	require.Equal(t, "Al East", clean[0].Division.String)
	require.Equal(t, DefaultDivision, clean[1].Division.String)
}

func TestCleanIdempotent(t *testing.T) {
	ds := Dataset{
		rawRow("  Boston Red Sox ", 86, 58),
		rawRow("Expansion Club", 0, 0),
		{Year: 1995, League: "AL"},
	}
	ds[0].Division = sql.NullString{String: "al east", Valid: true}

	once := Clean(ds)
	twice := Clean(once)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("cleaning its own output changed the dataset (-once +twice):\n%s", diff)
	}
}

func TestCleanDoesNotMutateInput(t *testing.T) {
	ds := Dataset{rawRow("  Boston Red Sox ", 86, 58)}
	Clean(ds)
	require.Equal(t, "  Boston Red Sox ", ds[0].Team.String)
	require.False(t, ds[0].GamesPlayed.Valid)
}
