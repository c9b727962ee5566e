package db

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^0-9a-zA-Z]+`)

// TableName derives a table name from a CSV file name:
// non-alphanumeric runs become underscores, everything lowercased.
func TableName(file string) string {
	name := strings.TrimSuffix(filepath.Base(file), ".csv")
	name = nonAlnum.ReplaceAllString(name, "_")
	return strings.ToLower(strings.Trim(name, "_"))
}

type colType int

const (
	typeInteger colType = iota
	typeReal
	typeText
)

func (t colType) sqlType() string {
	switch t {
	case typeInteger:
		return "INTEGER"
	case typeReal:
		return "REAL"
	}
	return "TEXT"
}

// widens each column's type to the narrowest one that fits every
// non-empty value: INTEGER -> REAL -> TEXT
func inferTypes(records [][]string, width int) []colType {
	types := make([]colType, width)
	for _, record := range records {
		for i := 0; i < width && i < len(record); i++ {
			v := strings.TrimSpace(record[i])
			if v == "" || types[i] == typeText {
				continue
			}
			if _, err := strconv.ParseInt(v, 10, 64); err == nil {
				continue
			}
			if _, err := strconv.ParseFloat(v, 64); err == nil {
				if types[i] == typeInteger {
					types[i] = typeReal
				}
				continue
			}
			types[i] = typeText
		}
	}
	return types
}

// ImportCSV loads one CSV file into its own table, replacing any table
// of the same name. Column types are inferred from the data. Returns
// the table name and the number of imported rows.
func ImportCSV(conn *sql.DB, path string) (string, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return "", 0, err
	}
	if len(records) == 0 {
		return "", 0, fmt.Errorf("%s: empty file", path)
	}

	header := records[0]
	rows := records[1:]
	types := inferTypes(rows, len(header))
	table := TableName(path)

	columns := make([]string, len(header))
	placeholders := make([]string, len(header))
	for i, name := range header {
		columns[i] = fmt.Sprintf("%q %s", name, types[i].sqlType())
		placeholders[i] = "?"
	}

	tx, err := conn.Begin()
	if err != nil {
		return "", 0, err
	}
	defer tx.Rollback()

	_, err = tx.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %q", table))
	if err != nil {
		return "", 0, err
	}
	_, err = tx.Exec(fmt.Sprintf(
		"CREATE TABLE %q (%s)", table, strings.Join(columns, ", "),
	))
	if err != nil {
		return "", 0, err
	}

	insert, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %q VALUES (%s)", table, strings.Join(placeholders, ", "),
	))
	if err != nil {
		return "", 0, err
	}
	defer insert.Close()

	for _, record := range rows {
		args := make([]any, len(header))
		for i := range header {
			var v string
			if i < len(record) {
				v = record[i]
			}
			args[i] = cellValue(v, types[i])
		}
		_, err = insert.Exec(args...)
		if err != nil {
			return "", 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return "", 0, err
	}
	return table, len(rows), nil
}

func cellValue(v string, t colType) any {
	v = strings.TrimSpace(v)
	if v == "" && t != typeText {
		return nil
	}
	switch t {
	case typeInteger:
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
	case typeReal:
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			return f
		}
	}
	return v
}

// ImportDir imports every CSV in a directory. Returns the imported
// table names in file order.
func ImportDir(conn *sql.DB, dir string) ([]string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, err
	}

	var tables []string
	for _, path := range paths {
		table, _, err := ImportCSV(conn, path)
		if err != nil {
			return nil, fmt.Errorf("import %s: %w", path, err)
		}
		tables = append(tables, table)
	}
	return tables, nil
}
