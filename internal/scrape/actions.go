package scrape

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Ziink4/Jerk/models"
	"github.com/Ziink4/Jerk/pkg/db"
	"github.com/Ziink4/Jerk/pkg/exporter"
	"github.com/Ziink4/Jerk/pkg/fetcher"
	"github.com/Ziink4/Jerk/pkg/sitemap"
	"github.com/Ziink4/Jerk/pkg/specpage"
	"github.com/urfave/cli/v2"
)

const fetchTimeout = 30 * time.Second

func ScrapeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	} else if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := models.LoadScrapeConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	applyFlags(c, config)

	f := fetcher.NewFetcher(fetchTimeout)

	// The sitemap is the only source of the page list: a fetch failure
	// here is fatal, unlike any failure past this point.
	urls, err := sitemap.Resolve(logger, f, config.SitemapURL, config.URLListFile)
	if err != nil {
		logger.Error("failed to resolve page list", "error", err)
		os.Exit(1)
	}
	if config.Limit > 0 && config.Limit < len(urls) {
		urls = urls[:config.Limit]
		logger.Info("Limiting run", "limit", config.Limit)
	}

	results := run(logger, f, specpage.NewExtractor(logger), urls, config.WorkerCount)

	stats := Stats{TotalURLs: len(urls)}
	records := make([]models.Record, 0, len(results))
	pageNames := make([]string, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			stats.Failed++
			continue
		}
		stats.Successful++
		records = append(records, *result.Record)
		pageNames = append(pageNames, result.PageName)
	}
	stats.TotalTimeSeconds = time.Since(startTime).Seconds()

	if err := exporter.Write(config.OutputFile, records); err != nil {
		logger.Error("failed to write output workbook", "error", err)
		os.Exit(1)
	}
	logger.Info("Wrote output workbook", "file", config.OutputFile, "rows", len(records))

	archiveRun(logger, config, stats, records, pageNames)

	logger.Info("Run complete",
		"total", stats.TotalURLs,
		"successful", stats.Successful,
		"failed", stats.Failed,
		"elapsed_seconds", stats.TotalTimeSeconds)

	if stats.Failed > 0 {
		fmt.Fprintf(os.Stderr, "%d of %d pages failed; see log for details\n", stats.Failed, stats.TotalURLs)
	}
	return nil
}

// archiveRun persists the run and its records to the local archive
// database. Archive failures are logged but never fail a run that
// already produced its workbook.
func archiveRun(logger *slog.Logger, config *models.ScrapeConfig, stats Stats, records []models.Record, pageNames []string) {
	if config.DatabaseFile == "" {
		return
	}

	database, err := db.Open(config.DatabaseFile)
	if err != nil {
		logger.Warn("failed to open archive database", "error", err)
		return
	}
	defer database.Close()

	runID, err := database.InsertRun(db.Run{
		SitemapURL:     config.SitemapURL,
		URLCount:       stats.TotalURLs,
		SuccessCount:   stats.Successful,
		FailedCount:    stats.Failed,
		ElapsedSeconds: stats.TotalTimeSeconds,
	})
	if err != nil {
		logger.Warn("failed to archive run", "error", err)
		return
	}

	for i, record := range records {
		if _, err := database.InsertRecord(runID, pageNames[i], record); err != nil {
			logger.Warn("failed to archive record", "url", record.URL, "error", err)
		}
	}
	logger.Info("Archived run", "run_id", runID, "records", len(records), "db", config.DatabaseFile)
}

func applyFlags(c *cli.Context, config *models.ScrapeConfig) {
	if c.IsSet("sitemap") {
		config.SitemapURL = c.String("sitemap")
	}
	if c.IsSet("url-list") {
		config.URLListFile = c.String("url-list")
	}
	if c.IsSet("output") {
		config.OutputFile = c.String("output")
	}
	if c.IsSet("db") {
		config.DatabaseFile = c.String("db")
	}
	if c.IsSet("workers") {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("limit") {
		config.Limit = c.Int("limit")
	}
	if config.WorkerCount <= 0 {
		config.WorkerCount = 4
	}
}
