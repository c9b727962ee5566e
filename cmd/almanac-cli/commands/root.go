package commands

import (
	"context"
	"database/sql"
	"os"

	"almanac-backend/internal/db"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "almanac-cli",
	Short: "Inspect and query the scraped standings database.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&dbPath, "db", "db/baseball_history.db",
		"path to the sqlite database",
	)
}

func openDB() (*sql.DB, error) {
	return db.Open(dbPath)
}

func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}
