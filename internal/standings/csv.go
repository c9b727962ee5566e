package standings

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// column order of the per-unit files; the aggregate raw file appends
// source_file and the clean file appends games_played after it
var unitColumns = []string{
	FieldYear, FieldLeague, FieldDivision, FieldTeam,
	FieldWins, FieldLosses, FieldWinPct, FieldGamesBehind, FieldPayroll,
}

// UnitFileName names the per-unit output file for one (year, league).
func UnitFileName(year int, league string) string {
	return fmt.Sprintf("standings_%d_%s.csv", year, league)
}

func formatInt(v sql.NullInt64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatInt(v.Int64, 10)
}

func formatFloat(v sql.NullFloat64) string {
	if !v.Valid {
		return ""
	}
	return strconv.FormatFloat(v.Float64, 'g', -1, 64)
}

func formatString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func unitRecord(row Row) []string {
	return []string{
		strconv.Itoa(row.Year),
		row.League,
		formatString(row.Division),
		formatString(row.Team),
		formatInt(row.Wins),
		formatInt(row.Losses),
		formatFloat(row.WinPct),
		formatFloat(row.GamesBehind),
		formatFloat(row.Payroll),
	}
}

func writeCSV(path string, header []string, records [][]string) error {
	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	err = w.Write(header)
	if err != nil {
		return err
	}
	return w.WriteAll(records)
}

// WriteUnitCSV persists one unit's row set.
func WriteUnitCSV(path string, rows []Row) error {
	records := make([][]string, len(rows))
	for i, row := range rows {
		records[i] = unitRecord(row)
	}
	return writeCSV(path, unitColumns, records)
}

// WriteRawCSV persists the aggregate raw dataset with provenance.
func WriteRawCSV(path string, ds Dataset) error {
	header := append(append([]string{}, unitColumns...), FieldSourceFile)
	records := make([][]string, len(ds))
	for i, row := range ds {
		records[i] = append(unitRecord(row), row.SourceFile)
	}
	return writeCSV(path, header, records)
}

// WriteCleanCSV persists the cleaned dataset.
func WriteCleanCSV(path string, ds Dataset) error {
	header := append(append([]string{}, unitColumns...), FieldSourceFile, FieldGamesPlayed)
	records := make([][]string, len(ds))
	for i, row := range ds {
		records[i] = append(unitRecord(row), row.SourceFile, formatInt(row.GamesPlayed))
	}
	return writeCSV(path, header, records)
}

// ReadUnitCSVs loads every per-unit file in a directory back into one
// dataset, tagging each row with the file it came from. This is what
// lets the cleaning stage run on previously persisted scrapes.
func ReadUnitCSVs(dir string) (Dataset, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "standings_*_*.csv"))
	if err != nil {
		return nil, err
	}

	var ds Dataset
	for _, path := range paths {
		rows, err := readUnitCSV(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		ds = append(ds, rows...)
	}
	return ds, nil
}

func readUnitCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	index := map[string]int{}
	for i, name := range records[0] {
		index[name] = i
	}
	cell := func(record []string, field string) string {
		i, ok := index[field]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	source := filepath.Base(path)
	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		row := Row{SourceFile: source}
		row.Year, _ = strconv.Atoi(cell(record, FieldYear))
		row.League = cell(record, FieldLeague)
		if v := cell(record, FieldDivision); v != "" {
			row.Division = sql.NullString{String: v, Valid: true}
		}
		if v := cell(record, FieldTeam); v != "" {
			row.Team = sql.NullString{String: v, Valid: true}
		}
		row.Wins = CoerceCount(FieldWins, cell(record, FieldWins))
		row.Losses = CoerceCount(FieldLosses, cell(record, FieldLosses))
		row.WinPct = CoerceWinPct(cell(record, FieldWinPct))
		row.GamesBehind = CoerceGamesBehind(cell(record, FieldGamesBehind))
		row.Payroll = CoercePayroll(cell(record, FieldPayroll))
		rows = append(rows, row)
	}
	return rows, nil
}
