package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/LavaJover/shvark-reward-service/internal/app/background"
	"github.com/LavaJover/shvark-reward-service/internal/config"
	publisher "github.com/LavaJover/shvark-reward-service/internal/infrastructure/kafka"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres"
	"github.com/LavaJover/shvark-reward-service/internal/infrastructure/postgres/repository"
	"github.com/LavaJover/shvark-reward-service/internal/usecase/distribution"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.RewardDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.RewardDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	rewardPublisher := publisher.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Init repos
	stakeRepo := repository.NewDefaultStakeRepository(db)
	voucherRepo := repository.NewDefaultVoucherRepository(db)
	referralRepo := repository.NewDefaultReferralRepository(db)
	yieldRepo := repository.NewDefaultYieldLedgerRepository(db)
	runRepo := repository.NewDefaultRunRepository(db)
	uow := repository.NewDefaultUnitOfWork(db)

	// Init metrics
	rewardMetrics := metrics.NewRewardMetrics()

	// Init distribution usecase
	uc := distribution.NewDefaultDistributionUsecase(
		uow,
		stakeRepo,
		voucherRepo,
		referralRepo,
		yieldRepo,
		runRepo,
		rewardPublisher,
		rewardMetrics,
	)

	logger := setupLogger(cfg.LogConfig)
	slog.SetDefault(logger)

	// Daily ROI -> team earnings schedule
	scheduler := background.NewDistributionScheduler(uc, logger, cfg.Scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	http.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	log.Printf("metrics server started on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	output := os.Stdout
	if cfg.LogOutput == "stderr" {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(output, opts))
	}
	return slog.New(slog.NewJSONHandler(output, opts))
}
