package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/JustJay7/court-case-sync/internal/cache"
	"github.com/JustJay7/court-case-sync/internal/config"
	"github.com/JustJay7/court-case-sync/internal/database"
	"github.com/JustJay7/court-case-sync/internal/deadline"
	"github.com/JustJay7/court-case-sync/internal/detector"
	"github.com/JustJay7/court-case-sync/internal/notify"
	"github.com/JustJay7/court-case-sync/internal/scraper"
	"github.com/JustJay7/court-case-sync/internal/server"
	"github.com/JustJay7/court-case-sync/internal/syncer"
	"github.com/JustJay7/court-case-sync/pkg/logger"
)

func main() {
	var (
		migrate bool
		once    bool
		caseID  string
	)
	flag.BoolVar(&migrate, "migrate", false, "Run database migrations and exit")
	flag.BoolVar(&once, "once", false, "Sync every active case once and exit")
	flag.StringVar(&caseID, "case", "", "With -once, sync only this case id")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := database.Initialize(cfg.DatabasePath)
	if err != nil {
		log.Fatal("Failed to initialize database", "error", err)
	}

	// Initialize already applied the schema.
	if migrate {
		log.Info("Database migrations completed successfully", "path", cfg.DatabasePath)
		return
	}

	loc := cfg.Location()
	store := database.NewStore(db, deadline.Policy{
		ZeroHourIncludesFirstDay: cfg.ZeroHourIncludesFirstDay,
		ShiftNonBusinessDays:     cfg.ShiftNonBusinessDays,
	}, loc)

	cacheService := cache.NewCache(cfg.CacheSize, cfg.CacheTTL)

	publisher, err := newPublisher(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize publisher", "error", err)
	}

	source, err := scraper.NewScraper(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize scraper", "error", err)
	}

	policy := notify.DefaultPolicy()
	if imp, ok := detector.ParseImportance(cfg.NotifyMinImportance); ok {
		policy.MinImportance = imp
	} else {
		log.Warn("Unknown NOTIFY_MIN_IMPORTANCE, using default", "value", cfg.NotifyMinImportance)
	}

	s := syncer.New(store, source, cacheService, publisher, policy, loc, syncer.OptionsFromConfig(cfg), log)

	if once {
		code := runOnce(s, caseID, log)
		closeAll(log, source, publisher)
		log.Sync()
		os.Exit(code)
	}

	srv := server.New(cfg, store, cacheService, s, log, source, publisher)

	log.Info("Starting Court Case Sync",
		"host", cfg.Host,
		"port", cfg.Port,
		"timezone", loc.String(),
		"sync_interval", cfg.SyncInterval.String(),
	)

	if err := srv.Run(); err != nil {
		log.Fatal("Server failed", "error", err)
	}
}

func newPublisher(cfg *config.Config, log *logger.Logger) (notify.Publisher, error) {
	if cfg.RedisURL == "" {
		log.Info("REDIS_URL not set, notifications are logged only")
		return notify.NewLogPublisher(log), nil
	}
	return notify.NewRedisPublisher(cfg.RedisURL)
}

func runOnce(s *syncer.Syncer, caseID string, log *logger.Logger) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if caseID != "" {
		result, err := s.SyncCase(ctx, caseID)
		if err != nil {
			log.Error("Sync failed", "case_id", caseID, "error", err)
			return 1
		}
		log.Info("Sync finished",
			"case_id", caseID,
			"status", result.Status,
			"updates", len(result.Updates),
			"partial", result.Partial,
		)
		return 0
	}

	summary, err := s.SyncAll(ctx)
	if err != nil {
		log.Error("Sync failed", "error", err)
		return 1
	}
	log.Info("Sync finished",
		"total", summary.Total,
		"synced", summary.Synced,
		"unchanged", summary.Unchanged,
		"failed", summary.Failed,
	)
	if summary.Failed > 0 {
		return 1
	}
	return 0
}

func closeAll(log *logger.Logger, closers ...io.Closer) {
	for _, c := range closers {
		if err := c.Close(); err != nil {
			log.Error("Failed to close resource", "error", err)
		}
	}
}
