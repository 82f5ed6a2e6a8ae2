package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"
	"github.com/schollz/progressbar/v3"

	"github.com/sjperalta/stayledger-api/internal/config"
	"github.com/sjperalta/stayledger-api/internal/database"
	"github.com/sjperalta/stayledger-api/internal/models"
	"github.com/sjperalta/stayledger-api/internal/repository"
	"github.com/sjperalta/stayledger-api/internal/services"
	"github.com/sjperalta/stayledger-api/pkg/logger"
)

func main() {
	os.Exit(realMain())
}

// realMain returns the exit code so deferred cleanup runs before exiting
func realMain() int {
	orgFlag := flag.String("org", "", "Organisation ID (UUID)")
	fromFlag := flag.String("from", "", "First day of the range (YYYY-MM-DD)")
	toFlag := flag.String("to", "", "Last day of the range, inclusive (YYYY-MM-DD)")
	format := flag.String("format", services.FormatCSV, "Output format (csv, xlsx, pdf)")
	outDir := flag.String("out", ".", "Directory the report is written to")
	flag.Parse()

	if *orgFlag == "" || *fromFlag == "" || *toFlag == "" {
		log.Printf("Usage: occupancy-report -org UUID -from YYYY-MM-DD -to YYYY-MM-DD [-format csv|xlsx|pdf] [-out DIR]")
		return 2
	}

	q, err := parseArgs(*orgFlag, *fromFlag, *toFlag)
	if err != nil {
		log.Printf("%v", err)
		return 2
	}
	if err := validateFormat(*format); err != nil {
		log.Printf("format: %v", err)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}
	logger.Setup(cfg.Environment)

	db, err := database.Connect(cfg.DatabaseURL, database.Options{
		Production:    cfg.IsProduction(),
		MaxOpenConns:  4,
		SlowThreshold: time.Duration(cfg.DBSlowQueryMS) * time.Millisecond,
	})
	if err != nil {
		log.Printf("open db: %v", err)
		return 1
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svcs := services.NewServices(repository.NewRepositories(db), cfg)

	path, err := run(ctx, svcs, q, *format, *outDir)
	if err != nil {
		log.Printf("report: %v", err)
		return 1
	}
	fmt.Printf("\nreport written to %s\n", path)
	return 0
}

func validateFormat(format string) error {
	switch format {
	case services.FormatCSV, services.FormatXLSX, services.FormatPDF:
		return nil
	default:
		return services.ErrUnsupportedFormat
	}
}

func parseArgs(org, from, to string) (models.QueryRange, error) {
	orgID, err := uuid.Parse(org)
	if err != nil {
		return models.QueryRange{}, fmt.Errorf("org: %w", err)
	}
	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return models.QueryRange{}, fmt.Errorf("from: %w", err)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return models.QueryRange{}, fmt.Errorf("to: %w", err)
	}
	if end.Before(start) {
		return models.QueryRange{}, services.ErrInvalidRange
	}
	return models.QueryRange{OrganisationID: orgID, Start: start, End: end}, nil
}

// run computes each aggregate in turn, advancing the progress bar, then
// writes the export into outDir
func run(ctx context.Context, svcs *services.Services, q models.QueryRange, format, outDir string) (string, error) {
	if err := validateFormat(format); err != nil {
		return "", err
	}
	bar := progressbar.Default(5, "computing")
	report := &models.AnalyticsReport{Range: q}

	revenue, err := svcs.Analytics.RevenueAnalytics(ctx, q)
	if err != nil {
		return "", fmt.Errorf("revenue: %w", err)
	}
	report.Revenue = *revenue
	_ = bar.Add(1)

	if report.Properties, err = svcs.Analytics.OccupationByProperty(ctx, q); err != nil {
		return "", fmt.Errorf("properties: %w", err)
	}
	_ = bar.Add(1)

	if report.Months, err = svcs.Analytics.OccupationByMonth(ctx, q); err != nil {
		return "", fmt.Errorf("months: %w", err)
	}
	_ = bar.Add(1)

	if report.Platforms, err = svcs.Analytics.RevenueByPlatform(ctx, q); err != nil {
		return "", fmt.Errorf("platforms: %w", err)
	}
	_ = bar.Add(1)

	data, filename, _, err := svcs.Export.Export(ctx, format, report)
	if err != nil {
		return "", err
	}
	path := filepath.Join(outDir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	_ = bar.Finish()

	return path, nil
}
