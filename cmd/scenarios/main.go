// Package main provides the entry point for the scenario enumeration CLI.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/bowl-pool/internal/config"
	"github.com/yourusername/bowl-pool/internal/database"
	"github.com/yourusername/bowl-pool/internal/datasource"
	"github.com/yourusername/bowl-pool/internal/logger"
	"github.com/yourusername/bowl-pool/internal/metrics"
	"github.com/yourusername/bowl-pool/internal/models"
	"github.com/yourusername/bowl-pool/internal/pool"
	"github.com/yourusername/bowl-pool/internal/repository"
	"github.com/yourusername/bowl-pool/internal/service"
)

func main() {
	var (
		configPath   = flag.String("config", "config/config.yaml", "Path to config file")
		bowlsPath    = flag.String("bowls", "", "Override path to the bowls CSV file")
		factorsPath  = flag.String("factors", "", "Override path to the team factors CSV file")
		picksPath    = flag.String("picks", "", "Override path to the picks CSV file")
		output       = flag.String("output", "", "Output path for scenario rows (default stdout)")
		summaryPath  = flag.String("summary", "", "Optional path for the per-bettor summary CSV")
		format       = flag.String("format", "tsv", "Output format: tsv or csv")
		workers      = flag.Int("workers", 0, "Override worker count")
		maxUndecided = flag.Int("max-undecided", 0, "Override the undecided-bowl guard")
	)
	flag.Parse()

	appLog := logrus.New()
	ctx := context.Background()

	cfg := loadConfigWithSecrets(*configPath, appLog)
	applyOverrides(cfg, *bowlsPath, *factorsPath, *picksPath)
	appLog = logger.NewLogger(cfg.App.LogLevel)

	metrics.InitRegistry()

	engineCfg := buildEngineConfig(cfg, *output, *workers, *maxUndecided, appLog)
	source := buildSource(ctx, cfg, appLog)

	engine, warnings := buildEngine(ctx, cfg, engineCfg, source, appLog)

	out, closeOut := openOutput(engineCfg.OutputPath, appLog)
	defer closeOut()

	writer := newResultWriter(out, *format, engine.Registry(), appLog)
	if err := writer.WriteHeader(); err != nil {
		appLog.Fatalf("Failed to write header: %v", err)
	}

	summary, err := engine.Run(ctx, writer.Write)
	if err != nil {
		appLog.Fatalf("Scenario run failed: %v", err)
	}
	if err := writer.Flush(); err != nil {
		appLog.Fatalf("Failed to flush output: %v", err)
	}

	summary.Warnings += len(warnings)
	if *summaryPath != "" {
		if err := pool.ExportSummaryCSV(summary, *summaryPath); err != nil {
			appLog.Fatalf("Failed to write summary: %v", err)
		}
	}
	fmt.Fprint(os.Stderr, pool.GenerateConsoleReport(summary))
}

func loadConfigWithSecrets(path string, appLog *logrus.Logger) *config.Config {
	cfg, err := config.LoadWithDefaults(path)
	if err != nil {
		appLog.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			appLog.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			appLog.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		appLog.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func applyOverrides(cfg *config.Config, bowlsPath, factorsPath, picksPath string) {
	if bowlsPath != "" || picksPath != "" {
		cfg.DataSources.Provider = "csv"
	}
	if bowlsPath != "" {
		cfg.DataSources.CSV.BowlsPath = bowlsPath
	}
	if factorsPath != "" {
		cfg.DataSources.CSV.FactorsPath = factorsPath
	}
	if picksPath != "" {
		cfg.DataSources.CSV.PicksPath = picksPath
	}
}

func buildEngineConfig(cfg *config.Config, output string, workers, maxUndecided int, appLog *logrus.Logger) pool.Config {
	engineCfg, err := pool.FromConfig(&cfg.Pool)
	if err != nil {
		appLog.Fatalf("Invalid pool config: %v", err)
	}
	if output != "" {
		engineCfg.OutputPath = output
	}
	if workers > 0 {
		engineCfg.Workers = workers
	}
	if maxUndecided > 0 {
		engineCfg.MaxUndecidedBowls = maxUndecided
	}
	if err := engineCfg.Validate(); err != nil {
		appLog.Fatalf("Invalid pool config: %v", err)
	}
	return engineCfg
}

func buildSource(ctx context.Context, cfg *config.Config, appLog *logrus.Logger) datasource.RecordSource {
	var repos *repository.Repositories
	if cfg.DataSources.Provider == "postgres" {
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			appLog.Fatalf("Failed to connect to database: %v", err)
		}
		repos, err = repository.NewRepositories(db)
		if err != nil {
			appLog.Fatalf("Failed to initialize repositories: %v", err)
		}
	}

	source, err := datasource.NewFactory(cfg, appLog).NewRecordSource(repos)
	if err != nil {
		appLog.Fatalf("Failed to create record source: %v", err)
	}
	return source
}

func buildEngine(ctx context.Context, cfg *config.Config, engineCfg pool.Config, source datasource.RecordSource, appLog *logrus.Logger) (*pool.Engine, []models.DataQualityWarning) {
	bowls, err := source.FetchBowls(ctx)
	if err != nil {
		appLog.Fatalf("Failed to load bowls: %v", err)
	}
	factorRecords, err := source.FetchTeamFactors(ctx)
	if err != nil {
		appLog.Fatalf("Failed to load team factors: %v", err)
	}
	picks, err := source.FetchPicks(ctx)
	if err != nil {
		appLog.Fatalf("Failed to load picks: %v", err)
	}

	registry, err := pool.NewRegistry(bowls)
	if err != nil {
		appLog.Fatalf("Invalid bowl records: %v", err)
	}

	warnings := service.NewPickValidator(appLog).ValidatePicks(picks, registry)
	index := pool.NewIndex(picks, appLog)
	factors := models.NewFactorTable(factorRecords)

	engine, err := pool.NewEngine(engineCfg, registry, index, factors, appLog)
	if err != nil {
		appLog.Fatalf("Failed to create engine: %v", err)
	}
	return engine, warnings
}

func openOutput(path string, appLog *logrus.Logger) (io.Writer, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		appLog.Fatalf("Failed to create output directory: %v", err)
	}
	f, err := os.Create(path)
	if err != nil {
		appLog.Fatalf("Failed to create output file: %v", err)
	}
	return f, func() { f.Close() }
}

func newResultWriter(out io.Writer, format string, registry *pool.Registry, appLog *logrus.Logger) *pool.ResultWriter {
	switch format {
	case "tsv":
		return pool.NewTSVWriter(out, registry)
	case "csv":
		return pool.NewCSVWriter(out, registry)
	default:
		appLog.Fatalf("Unsupported format: %s", format)
		return nil
	}
}
