package commands

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

var queryCmd = &cobra.Command{
	Use:   "query <sql>",
	Short: "Run a SQL statement against the database.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conn, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		rows, err := conn.QueryContext(cmd.Context(), args[0])
		if err != nil {
			log.Fatal(err)
		}
		defer rows.Close()

		columns, err := rows.Columns()
		if err != nil {
			log.Fatal(err)
		}
		// statements like CREATE/INSERT produce no result columns
		if len(columns) == 0 {
			fmt.Println("OK.")
			return
		}

		out := newTable()
		header := make(table.Row, len(columns))
		for i, c := range columns {
			header[i] = c
		}
		out.AppendHeader(header)

		values := make([]any, len(columns))
		scanArgs := make([]any, len(columns))
		for i := range values {
			scanArgs[i] = &values[i]
		}
		for rows.Next() {
			err = rows.Scan(scanArgs...)
			if err != nil {
				log.Fatal(err)
			}
			record := make(table.Row, len(columns))
			for i, v := range values {
				if b, ok := v.([]byte); ok {
					v = string(b)
				}
				record[i] = v
			}
			out.AppendRow(record)
		}
		err = rows.Err()
		if err != nil {
			log.Fatal(err)
		}

		out.Render()
	},
}
