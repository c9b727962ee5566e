package commands

import (
	"log"
	"log/slog"
	"path/filepath"

	"almanac-backend/internal/standings"

	"github.com/spf13/cobra"
)

func init() {
	cleanCmd.Flags().StringVar(&cleanDataDir, "data", "data", "data directory holding raw/ unit files")
	rootCmd.AddCommand(cleanCmd)
}

var cleanDataDir string

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Re-run the cleaning stage over previously persisted per-unit CSVs.",
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := standings.ReadUnitCSVs(filepath.Join(cleanDataDir, "raw"))
		if err != nil {
			log.Fatal(err)
		}
		if len(raw) == 0 {
			slog.Warn("no raw unit files found, run the scraper first",
				"dir", filepath.Join(cleanDataDir, "raw"),
			)
			return
		}

		clean := standings.Clean(raw)
		out := filepath.Join(cleanDataDir, "clean", "standings_clean.csv")
		err = standings.WriteCleanCSV(out, clean)
		if err != nil {
			log.Fatal(err)
		}
		slog.Info("wrote clean dataset", "file", out, "rows", len(clean))
	},
}
