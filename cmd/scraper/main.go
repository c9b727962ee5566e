package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"almanac-backend/internal/scrape"
	"almanac-backend/internal/standings"
	"almanac-backend/lib/configutil"
	"almanac-backend/lib/serviceutil"
	"almanac-backend/lib/telemetry"
)

type Config struct {
	Scrape scrape.Config `json:"scrape"`
}

func defaultConfig() Config {
	return Config{
		Scrape: scrape.Config{
			StartYear: 1980,
			EndYear:   2025,
			Leagues: map[string]string{
				"AL": "https://www.baseball-almanac.com/yearly/yr{year}a.shtml",
				"NL": "https://www.baseball-almanac.com/yearly/yr{year}n.shtml",
			},
			RequestDelay: 1.5,
			MaxRetries:   2,
			UserAgent:    "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36 (Educational Project)",
			OutputDir:    "data",
		},
	}
}

func main() {
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	telemetry.InitSlog(*verbose)

	ctx := serviceutil.SignalContext()
	tel, err := telemetry.SetupFromEnv(ctx, "scraper")
	if err == nil {
		defer tel.Shutdown(context.Background())
		telemetry.InstrumentPerfStats(ctx)
	} else if !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if os.IsNotExist(err) {
		cfg = defaultConfig()
		slog.Info("config.json5 not found, using defaults")
	} else if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}

	orchestrator := scrape.New(cfg.Scrape)

	t1 := time.Now()
	dataset, units, err := orchestrator.Run(ctx)
	if err != nil {
		serviceutil.Fatal("scrape run failed", err)
	}

	failed := 0
	for _, unit := range units {
		if unit.State == scrape.Failed {
			failed++
		}
	}
	slog.Info("scraping time",
		"seconds", time.Since(t1).Seconds(),
		"units", len(units), "failed", failed, "rows", len(dataset),
	)

	outputDir := cfg.Scrape.OutputDir
	if outputDir == "" {
		outputDir = "data"
	}

	rawPath := filepath.Join(outputDir, "raw", "standings_all_raw.csv")
	err = standings.WriteRawCSV(rawPath, dataset)
	if err != nil {
		serviceutil.Fatal("failed to write raw csv", err)
	}
	slog.Info("wrote raw dataset", "file", rawPath, "rows", len(dataset))

	clean := standings.Clean(dataset)
	cleanPath := filepath.Join(outputDir, "clean", "standings_clean.csv")
	err = standings.WriteCleanCSV(cleanPath, clean)
	if err != nil {
		serviceutil.Fatal("failed to write clean csv", err)
	}
	slog.Info("wrote clean dataset", "file", cleanPath, "rows", len(clean))
}
