package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fekuna/omnipos-ledger/config"
	"github.com/fekuna/omnipos-ledger/internal/app"
	"github.com/fekuna/omnipos-ledger/internal/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger/internal/pkg/lock"
	"github.com/fekuna/omnipos-ledger/internal/pkg/logger"
	"github.com/fekuna/omnipos-ledger/internal/store"

	reportJob "github.com/fekuna/omnipos-ledger/internal/report/job"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
		File:              cfg.Logger.File,
		FileMaxSizeMB:     cfg.Logger.FileMaxSizeMB,
		FileMaxBackups:    cfg.Logger.FileMaxBackups,
	}

	if cfg.App.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = "console"
		logConfig.Level = "debug"
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Open the store and apply the schema
	db, err := sqlite.NewSQLite(&sqlite.Config{
		Path:          cfg.SQLite.Path,
		BusyTimeoutMS: cfg.SQLite.BusyTimeoutMS,
		MaxOpenConns:  cfg.SQLite.MaxOpenConns,
	})
	if err != nil {
		appLogger.Fatal("Could not open store", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := store.Migrate(ctx, db); err != nil {
		appLogger.Fatal("Could not migrate store", zap.Error(err))
	}
	appLogger.Info("Opened SQLite store", zap.String("path", cfg.SQLite.Path))

	// 4. Initialize product locks, shared through Redis when configured
	var locker lock.Locker = lock.NewMemoryLocker()
	if cfg.Redis.Addr != "" {
		redisLocker, err := lock.NewRedisLocker(ctx, &lock.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.Fatal("Could not connect to Redis", zap.Error(err))
		}
		defer redisLocker.Close()
		locker = redisLocker
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Wire the ledger
	ledger := app.New(db, locker, appLogger)

	// 6. Start the scheduler
	sched := cron.New(cron.WithParser(reportJob.Parser))
	lowStock := reportJob.NewLowStockJob(ledger.Reports, appLogger)
	if err := lowStock.Register(sched, cfg.Scheduler.LowStockReportSpec); err != nil {
		appLogger.Fatal("Could not schedule low stock report", zap.Error(err))
	}
	sched.Start()
	lowStock.Run(ctx)

	appLogger.Info("Ledger ready", zap.String("env", cfg.App.AppEnv))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down ledger...")
	stopCtx := sched.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(10 * time.Second):
		appLogger.Warn("Scheduled jobs still running at shutdown")
	}
	appLogger.Info("Ledger stopped")
}
