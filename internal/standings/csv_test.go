package standings

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitFileName(t *testing.T) {
	require.Equal(t, "standings_1995_AL.csv", UnitFileName(1995, "AL"))
}

func TestUnitCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()

	rows := []Row{
		rawRow("Boston Red Sox", 86, 58),
		{
			Year:   1995,
			League: "AL",
			Team:   sql.NullString{String: "California Angels", Valid: true},
			// wins/losses columns missing this era
		},
	}
	rows[0].GamesBehind = sql.NullFloat64{Float64: 0, Valid: true}
	rows[0].WinPct = sql.NullFloat64{Float64: 0.597, Valid: true}

	path := filepath.Join(dir, UnitFileName(1995, "AL"))
	require.NoError(t, WriteUnitCSV(path, rows))

	ds, err := ReadUnitCSVs(dir)
	require.NoError(t, err)
	require.Len(t, ds, 2)

	first := ds[0]
	require.Equal(t, "standings_1995_AL.csv", first.SourceFile)
	require.Equal(t, 1995, first.Year)
	require.Equal(t, "AL", first.League)
	require.Equal(t, "Boston Red Sox", first.Team.String)
	require.EqualValues(t, 86, first.Wins.Int64)
	require.InDelta(t, 0.597, first.WinPct.Float64, 1e-9)
	require.True(t, first.GamesBehind.Valid)

	second := ds[1]
	require.False(t, second.Wins.Valid)
	require.False(t, second.Losses.Valid)
	require.False(t, second.Division.Valid)
}

func TestWriteCleanCSVHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standings_clean.csv")

	row := rawRow("Boston Red Sox", 86, 58)
	row.SourceFile = "standings_1995_AL.csv"
	clean := Clean(Dataset{row})
	require.NoError(t, WriteCleanCSV(path, clean))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents),
		"year,league,division,team,wins,losses,win_pct,games_behind,payroll,source_file,games_played")
	require.Contains(t, string(contents), "standings_1995_AL.csv,144")
}

func TestReadUnitCSVsEmptyDir(t *testing.T) {
	ds, err := ReadUnitCSVs(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, ds)
}
