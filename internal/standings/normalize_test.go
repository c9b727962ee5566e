package standings

import (
	"testing"

	"almanac-backend/lib/htmlutil"

	"github.com/stretchr/testify/require"
)

func TestNormalizeTokens(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{raw: "Team [Click for Roster]", expected: "team_[click_for_roster]"},
		{raw: "  W-L%  ", expected: "w-l%"},
		{raw: "Games\n Behind", expected: "games_behind"},
		{raw: "GB", expected: "gb"},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, normalizeToken(test.raw))
	}
}

func TestNormalizeHeaderRow(t *testing.T) {
	got := Normalize(htmlutil.Table{
		HeaderRows: [][]string{{"Team", "W", "L", "PCT", "GB"}},
		Rows: [][]string{
			{"Boston Red Sox", "86", "58", ".597", "—"},
			{"New York Yankees", "79", "65", ".549", "7"},
		},
	})

	require.Equal(t, []string{"team", "w", "l", "pct", "gb"}, got.Header)
	require.Len(t, got.Rows, 2)
}

func TestHeaderLift(t *testing.T) {
	// the nominal header is generic; the true header was rendered as
	// the first data row
	got := Normalize(htmlutil.Table{
		HeaderRows: [][]string{{"col1", "col2", "col3", "col4", "col5"}},
		Rows: [][]string{
			{"Team", "W", "L", "PCT", "GB"},
			{"Boston Red Sox", "86", "58", ".597", "—"},
			{"New York Yankees", "79", "65", ".549", "7"},
		},
	})

	require.Equal(t, []string{"team", "w", "l", "pct", "gb"}, got.Header)
	// the promoted row must no longer be a data row
	require.Len(t, got.Rows, 2)
	require.Equal(t, "Boston Red Sox", got.Rows[0][0])
}

func TestHeaderLiftPadsShortHeader(t *testing.T) {
	got := Normalize(htmlutil.Table{
		HeaderRows: [][]string{{"a", "b", "c", "d"}},
		Rows: [][]string{
			{"Team", "W", "L"},
			{"Boston Red Sox", "86", "58", "extra"},
		},
	})

	require.Equal(t, []string{"team", "w", "l", "col3"}, got.Header)
	require.Len(t, got.Rows, 1)
}

func TestNoLiftWithoutBothMarkers(t *testing.T) {
	// a first data row with only a wins-like token stays data
	got := Normalize(htmlutil.Table{
		HeaderRows: [][]string{{"col1", "col2"}},
		Rows: [][]string{
			{"Team", "W"},
			{"Boston Red Sox", "86"},
		},
	})

	require.Equal(t, []string{"col1", "col2"}, got.Header)
	require.Len(t, got.Rows, 2)
}

func TestFlattenHierarchicalHeader(t *testing.T) {
	got := Normalize(htmlutil.Table{
		HeaderRows: [][]string{
			{"1995 Season", "1995 Season", "Payroll"},
			{"Team", "W", ""},
		},
		Rows: [][]string{
			{"Boston Red Sox", "86", "$33,000,000"},
		},
	})

	require.Equal(t, []string{"1995_season_team", "1995_season_w", "payroll"}, got.Header)
	require.Len(t, got.Rows, 1)
}

func TestHeaderlessTableUsesFirstRow(t *testing.T) {
	got := Normalize(htmlutil.Table{
		Rows: [][]string{
			{"Team", "Wins", "Losses"},
			{"Boston Red Sox", "86", "58"},
		},
	})

	require.Equal(t, []string{"team", "wins", "losses"}, got.Header)
	require.Len(t, got.Rows, 1)
}
