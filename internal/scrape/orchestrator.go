// Package scrape drives the per-unit fetch loop: one document per
// (year, league), retried with linear backoff, rate-limited out of
// courtesy to the source, and isolated so one bad unit never takes the
// run down with it.
package scrape

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"almanac-backend/internal/standings"
	"almanac-backend/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrape")

type UnitState int

const (
	Pending UnitState = iota
	Fetching
	Parsed
	Failed
)

func (s UnitState) String() string {
	switch s {
	case Pending:
		return "pending"
	case Fetching:
		return "fetching"
	case Parsed:
		return "parsed"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Unit is one (year, league) fetch-and-parse task.
type Unit struct {
	Year   int
	League string
	State  UnitState
	Err    error
	Rows   []standings.Row
}

type Config struct {
	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
	// league code -> URL template containing a {year} placeholder
	Leagues      map[string]string `json:"leagues"`
	RequestDelay float64           `json:"request_delay_seconds"`
	MaxRetries   int               `json:"max_retries"`
	UserAgent    string            `json:"user_agent"`
	OutputDir    string            `json:"output_dir"`
}

func (c Config) requestDelay() time.Duration {
	return time.Duration(c.RequestDelay * float64(time.Second))
}

func (c Config) outputDir() string {
	if c.OutputDir == "" {
		return "data"
	}
	return c.OutputDir
}

// Orchestrator owns the retrieval session for one whole run. The resty
// client is acquired once in New and shared by every unit.
type Orchestrator struct {
	cfg     Config
	client  *resty.Client
	locator standings.Locator
}

func New(cfg Config) *Orchestrator {
	client := resty.New()
	client.SetTimeout(time.Second * 30)
	if cfg.UserAgent != "" {
		client.SetHeader("user-agent", cfg.UserAgent)
	}
	telemetry.InstrumentResty(client, "scrape/http")

	return &Orchestrator{
		cfg:     cfg,
		client:  client,
		locator: standings.DefaultLocator(),
	}
}

func unitURL(template string, year int) string {
	return strings.ReplaceAll(template, "{year}", strconv.Itoa(year))
}

// Run processes every (year, league) unit sequentially and returns the
// aggregate dataset plus the final state of each unit. A unit that
// exhausts its retries is marked Failed and skipped; the run only
// returns an error for non-unit failures such as being unable to write
// output files. Zero parsed units is an empty result, not an error.
func (o *Orchestrator) Run(ctx context.Context) (standings.Dataset, []Unit, error) {
	ctx, span := tracer.Start(ctx, "Run")
	defer span.End()

	leagues := make([]string, 0, len(o.cfg.Leagues))
	for code := range o.cfg.Leagues {
		leagues = append(leagues, code)
	}
	sort.Strings(leagues)

	var dataset standings.Dataset
	var units []Unit

	for year := o.cfg.StartYear; year <= o.cfg.EndYear; year++ {
		for _, league := range leagues {
			unit := Unit{Year: year, League: league}
			o.runUnit(ctx, &unit)
			units = append(units, unit)

			if unit.State != Parsed {
				continue
			}
			path := filepath.Join(o.cfg.outputDir(), "raw", standings.UnitFileName(year, league))
			err := standings.WriteUnitCSV(path, unit.Rows)
			if err != nil {
				return nil, units, fmt.Errorf("persist unit %d %s: %w", year, league, err)
			}
			source := filepath.Base(path)
			for _, row := range unit.Rows {
				row.SourceFile = source
				dataset = append(dataset, row)
			}
			slog.Info("unit parsed",
				"year", year, "league", league,
				"rows", len(unit.Rows), "file", source,
			)
		}
	}

	if len(dataset) == 0 {
		slog.Warn("no units parsed, dataset is empty")
	}
	span.SetAttributes(attribute.Int("rows", len(dataset)))
	return dataset, units, nil
}

func (o *Orchestrator) runUnit(ctx context.Context, unit *Unit) {
	ctx, span := tracer.Start(ctx, "unit")
	defer span.End()
	span.SetAttributes(
		attribute.Int("year", unit.Year),
		attribute.String("league", unit.League),
	)

	url := unitURL(o.cfg.Leagues[unit.League], unit.Year)
	maxRetries := o.cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	for attempt := 1; attempt <= maxRetries; attempt++ {
		unit.State = Fetching

		rows, err := o.fetchAndParse(ctx, url, unit.Year, unit.League)
		if err == nil {
			unit.State = Parsed
			unit.Err = nil
			unit.Rows = rows
			return
		}
		unit.Err = err

		// retrying an unchanged document cannot conjure a table that
		// is structurally absent
		if errors.Is(err, standings.ErrTableNotFound) {
			break
		}
		if attempt < maxRetries {
			slog.Warn("unit attempt failed, retrying",
				"year", unit.Year, "league", unit.League,
				"attempt", attempt, "err", err,
			)
			time.Sleep(o.cfg.requestDelay() * time.Duration(attempt))
		}
	}

	unit.State = Failed
	span.SetStatus(codes.Error, unit.Err.Error())
	slog.Error("unit failed",
		"year", unit.Year, "league", unit.League, "err", unit.Err,
	)
}

func (o *Orchestrator) fetchAndParse(ctx context.Context, url string, year int, league string) ([]standings.Row, error) {
	res, err := o.client.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, err
	}
	if res.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status %d for %s", res.StatusCode(), url)
	}
	body := res.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("empty document for %s", url)
	}

	// courtesy pacing toward the source, not correctness
	time.Sleep(o.cfg.requestDelay())

	return standings.Extract(ctx, bytes.NewReader(body), year, league, o.locator)
}
