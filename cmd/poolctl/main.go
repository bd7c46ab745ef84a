// Package main provides the poolctl CLI for record ingestion and the
// long-running sync service.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/bowl-pool/internal/config"
	"github.com/yourusername/bowl-pool/internal/database"
	"github.com/yourusername/bowl-pool/internal/datasource"
	"github.com/yourusername/bowl-pool/internal/health"
	applogger "github.com/yourusername/bowl-pool/internal/logger"
	"github.com/yourusername/bowl-pool/internal/metrics"
	"github.com/yourusername/bowl-pool/internal/pool"
	"github.com/yourusername/bowl-pool/internal/repository"
	"github.com/yourusername/bowl-pool/internal/scheduler"
	"github.com/yourusername/bowl-pool/internal/service"
)

// Build information - set via ldflags
var (
	Version = "dev"
)

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	repos      *repository.Repositories
	source     datasource.RecordSource
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "poolctl",
	Short: "Manage bowl pool records",
	Long:  `Ingest pool records from sheets or CSV files, validate pick sheets, and run the periodic sync service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfiguration(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Sync records into the database once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIngest(cmd.Context())
	},
}

var validatePicksCmd = &cobra.Command{
	Use:   "validate-picks",
	Short: "Check pick sheets against the wagering rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidatePicks(cmd.Context())
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the periodic sync service with health endpoints",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func main() {
	rootCmd.AddCommand(ingestCmd, validatePicksCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfiguration() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLog = applogger.NewLogger(cfg.App.LogLevel)
	metrics.InitRegistry()

	if cfg.HasDatabase() {
		var err error
		db, err = database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		if err := db.InitSchema(ctx); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
		repos, err = repository.NewRepositories(db)
		if err != nil {
			return fmt.Errorf("failed to initialize repositories: %w", err)
		}
	}

	var err error
	source, err = datasource.NewFactory(cfg, appLog).NewRecordSource(repos)
	if err != nil {
		return fmt.Errorf("failed to create record source: %w", err)
	}

	return nil
}

func newIngestionService() (*service.IngestionService, error) {
	if repos == nil {
		return nil, fmt.Errorf("ingestion requires a configured database")
	}
	validator := service.NewPickValidator(appLog)
	return service.NewIngestionService(source, repos, validator, appLog)
}

func runIngest(ctx context.Context) error {
	ingestion, err := newIngestionService()
	if err != nil {
		return err
	}

	syncMetrics, err := ingestion.Sync(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Synced %d bowls, %d team factors, %d picks (%d warnings) in %s\n",
		syncMetrics.Bowls, syncMetrics.TeamFactors, syncMetrics.Picks,
		syncMetrics.Warnings, syncMetrics.Duration)
	return nil
}

func runValidatePicks(ctx context.Context) error {
	bowls, err := source.FetchBowls(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bowls: %w", err)
	}
	picks, err := source.FetchPicks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load picks: %w", err)
	}

	registry, err := pool.NewRegistry(bowls)
	if err != nil {
		return fmt.Errorf("bowl records failed validation: %w", err)
	}

	warnings := service.NewPickValidator(appLog).ValidatePicks(picks, registry)
	if len(warnings) == 0 {
		fmt.Println("All pick sheets are clean")
		return nil
	}

	for _, warning := range warnings {
		fmt.Println(warning.String())
	}
	fmt.Printf("%d warnings found\n", len(warnings))
	return nil
}

func runServe(ctx context.Context) error {
	if !cfg.Ingestion.Enabled {
		return fmt.Errorf("ingestion is disabled in configuration")
	}

	ingestion, err := newIngestionService()
	if err != nil {
		return err
	}

	sched := scheduler.NewScheduler(ingestion, appLog)
	if err := sched.ScheduleSync(cfg.Ingestion.Schedule); err != nil {
		return fmt.Errorf("failed to schedule sync: %w", err)
	}

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	healthServer := health.NewServer(health.Config{
		ServiceName:    cfg.App.Name,
		Version:        Version,
		Port:           healthPort(),
		MetricsEnabled: cfg.Metrics.Enabled,
		Logger:         appLog,
		DB:             db,
	})
	if err := healthServer.Start(serveCtx); err != nil {
		return fmt.Errorf("failed to start health server: %w", err)
	}

	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	healthServer.SetReady(true)

	appLog.WithFields(logrus.Fields{
		"schedule": cfg.Ingestion.Schedule,
		"next_run": sched.GetNextRun(),
	}).Info("Sync service started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan
	appLog.WithField("signal", sig).Info("Shutdown signal received")

	healthServer.SetReady(false)
	cancel()

	if err := sched.Stop(); err != nil {
		appLog.WithError(err).Error("Error stopping scheduler")
	}
	if db != nil {
		db.Close()
	}

	appLog.Info("Sync service shut down")
	return nil
}

func healthPort() string {
	if cfg.Metrics.Port > 0 {
		return strconv.Itoa(cfg.Metrics.Port)
	}
	return ""
}
