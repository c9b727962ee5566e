package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"almanac-backend/internal/standings"
	"almanac-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

const standingsPage = `
<html><body>
<b>American League Team Standings</b>
<table>
	<tr><th>Team</th><th>W</th><th>L</th><th>PCT</th><th>GB</th></tr>
	<tr><td>Boston Red Sox</td><td>86</td><td>58</td><td>.597</td><td>&#8212;</td></tr>
	<tr><td>New York Yankees</td><td>79</td><td>65</td><td>.549</td><td>7</td></tr>
</table>
</body></html>`

func testConfig(serverURL, outputDir string, leagues map[string]string) Config {
	templated := make(map[string]string, len(leagues))
	for code, path := range leagues {
		templated[code] = serverURL + path
	}
	return Config{
		StartYear:    1995,
		EndYear:      1995,
		Leagues:      templated,
		RequestDelay: 0.001,
		MaxRetries:   2,
		OutputDir:    outputDir,
	}
}

func TestRunIsolatesFailedUnits(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrape")
	defer cleanup()

	var alRequests atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/al/", func(w http.ResponseWriter, r *http.Request) {
		alRequests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/nl/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, standingsPage)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	outputDir := t.TempDir()
	o := New(testConfig(server.URL, outputDir, map[string]string{
		"AL": "/al/{year}",
		"NL": "/nl/{year}",
	}))

	dataset, units, err := o.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, units, 2)

	byLeague := map[string]Unit{}
	for _, unit := range units {
		byLeague[unit.League] = unit
	}

	// the AL unit burned every retry and must not suppress the NL unit
	require.Equal(t, Failed, byLeague["AL"].State)
	require.Error(t, byLeague["AL"].Err)
	require.EqualValues(t, 2, alRequests.Load())

	require.Equal(t, Parsed, byLeague["NL"].State)
	require.Len(t, dataset, 2)
	for _, row := range dataset {
		require.Equal(t, "NL", row.League)
		require.Equal(t, 1995, row.Year)
		require.Equal(t, "standings_1995_NL.csv", row.SourceFile)
	}

	// per-unit output is persisted independently of the merge
	_, err = os.Stat(filepath.Join(outputDir, "raw", "standings_1995_NL.csv"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "raw", "standings_1995_AL.csv"))
	require.True(t, os.IsNotExist(err))
}

func TestRunDoesNotRetryMissingTable(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrape")
	defer cleanup()

	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		fmt.Fprint(w, "<html><body><p>no tables on this page</p></body></html>")
	}))
	defer server.Close()

	o := New(testConfig(server.URL, t.TempDir(), map[string]string{
		"AL": "/{year}",
	}))

	dataset, units, err := o.Run(context.Background())
	require.NoError(t, err)
	require.Empty(t, dataset)
	require.Len(t, units, 1)
	require.Equal(t, Failed, units[0].State)
	require.ErrorIs(t, units[0].Err, standings.ErrTableNotFound)
	// structural absence cannot be fixed by refetching
	require.EqualValues(t, 1, requests.Load())
}

func TestUnitURL(t *testing.T) {
	require.Equal(t,
		"https://www.baseball-almanac.com/yearly/yr1995a.shtml",
		unitURL("https://www.baseball-almanac.com/yearly/yr{year}a.shtml", 1995),
	)
}
