package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	StartYear int               `json:"start_year"`
	EndYear   int               `json:"end_year"`
	Leagues   map[string]string `json:"leagues"`
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "config.json5")

	require.NoError(t, os.WriteFile(name, []byte(`{
		// baseline
		start_year: 1980,
		end_year: 2025,
		leagues: { AL: "a", NL: "n" },
	}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
		end_year: 1990,
	}`), 0644))

	cfg, err := ReadConfig[testConfig](name)
	require.NoError(t, err)
	require.Equal(t, 1980, cfg.StartYear)
	require.Equal(t, 1990, cfg.EndYear)
	require.Equal(t, "a", cfg.Leagues["AL"])
}

func TestReadConfigMissing(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "config.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config.local.json5"),
		[]byte(`{ start_year: 2000 }`), 0644,
	))

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, 2000, cfg.StartYear)
}
