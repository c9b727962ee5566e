package commands

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/antzucaro/matchr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(teamsCmd)
}

type teamMatch struct {
	Name       string
	Similarity float64
}

var teamsCmd = &cobra.Command{
	Use:   "teams <name>",
	Short: "Fuzzy-find team names in the clean standings table.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		conn, err := openDB()
		if err != nil {
			log.Fatal(err)
		}
		defer conn.Close()

		rows, err := conn.QueryContext(
			cmd.Context(),
			"SELECT DISTINCT team FROM standings_clean ORDER BY team",
		)
		if err != nil {
			log.Fatal(err)
		}
		defer rows.Close()

		target := strings.ToLower(args[0])
		var matches []teamMatch
		for rows.Next() {
			var name string
			err = rows.Scan(&name)
			if err != nil {
				log.Fatal(err)
			}
			sim := matchr.JaroWinkler(strings.ToLower(name), target, false)
			matches = append(matches, teamMatch{Name: name, Similarity: sim})
		}
		err = rows.Err()
		if err != nil {
			log.Fatal(err)
		}

		sort.Slice(matches, func(i, j int) bool {
			return matches[i].Similarity > matches[j].Similarity
		})
		if len(matches) > 10 {
			matches = matches[:10]
		}

		out := newTable()
		out.AppendHeader(table.Row{"team", "similarity"})
		for _, m := range matches {
			out.AppendRow(table.Row{m.Name, fmt.Sprintf("%.3f", m.Similarity)})
		}
		out.Render()
	},
}
