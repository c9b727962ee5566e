package commands

import (
	"log"
	"log/slog"

	"almanac-backend/internal/db"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import [dir...]",
	Short: "Import every CSV under the given directories (default data/raw data/clean) as database tables.",
	Run: func(cmd *cobra.Command, args []string) {
		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"data/raw", "data/clean"}
		}

		conn, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		for _, dir := range dirs {
			tables, err := db.ImportDir(conn, dir)
			if err != nil {
				log.Fatal(err)
			}
			slog.Info("imported directory", "dir", dir, "tables", len(tables))
		}
	},
}
