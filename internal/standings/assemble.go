package standings

import (
	"context"
	"database/sql"
	"io"

	"almanac-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("standings")

// Assemble builds the per-unit row set from a normalized table. Only
// recognized canonical columns are read; wins and losses columns absent
// from the table entirely come out as all-invalid so every row has the
// same shape, and division stays invalid when the source never stated
// one (CleaningStage resolves it later, keeping the provenance of what
// the page actually said).
func Assemble(t NormalizedTable, year int, league string) []Row {
	header := MapFields(t.Header)

	index := map[string]int{}
	for i, field := range header {
		if keepFields[field] {
			if _, taken := index[field]; !taken {
				index[field] = i
			}
		}
	}

	cell := func(row []string, field string) (string, bool) {
		i, ok := index[field]
		if !ok || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	rows := make([]Row, 0, len(t.Rows))
	for _, raw := range t.Rows {
		row := Row{Year: year, League: league}

		if v, ok := cell(raw, FieldTeam); ok && v != "" {
			row.Team = sql.NullString{String: v, Valid: true}
		}
		if v, ok := cell(raw, FieldDivision); ok && v != "" {
			row.Division = sql.NullString{String: v, Valid: true}
		}
		if v, ok := cell(raw, FieldWins); ok {
			row.Wins = CoerceCount(FieldWins, v)
		}
		if v, ok := cell(raw, FieldLosses); ok {
			row.Losses = CoerceCount(FieldLosses, v)
		}
		if v, ok := cell(raw, FieldWinPct); ok {
			row.WinPct = CoerceWinPct(v)
		}
		if v, ok := cell(raw, FieldGamesBehind); ok {
			row.GamesBehind = CoerceGamesBehind(v)
		}
		if v, ok := cell(raw, FieldPayroll); ok {
			row.Payroll = CoercePayroll(v)
		}

		rows = append(rows, row)
	}
	return rows
}

// Extract runs the whole per-document pipeline: locate the standings
// table, normalize its header, assemble the typed row set.
func Extract(ctx context.Context, markup io.Reader, year int, league string, locator Locator) ([]Row, error) {
	ctx, span := tracer.Start(ctx, "Extract")
	defer span.End()
	span.SetAttributes(
		attribute.Int("year", year),
		attribute.String("league", league),
	)

	doc, err := goquery.NewDocumentFromReader(markup)
	if err != nil {
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	table, err := locator.Locate(doc)
	if err != nil {
		span.SetStatus(codes.Error, "no standings table")
		return nil, err
	}

	normalized := Normalize(htmlutil.ExtractTable(table))
	rows := Assemble(normalized, year, league)
	span.SetAttributes(attribute.Int("rows", len(rows)))
	return rows, nil
}
