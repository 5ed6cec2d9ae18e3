package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/grachmannico95/verbs-service/internal/config"
	"github.com/grachmannico95/verbs-service/internal/domain"
	"github.com/grachmannico95/verbs-service/internal/eventbus"
	"github.com/grachmannico95/verbs-service/internal/handler"
	"github.com/grachmannico95/verbs-service/internal/server"
	"github.com/grachmannico95/verbs-service/internal/service"
	"github.com/grachmannico95/verbs-service/internal/storage"
	"github.com/grachmannico95/verbs-service/internal/validation"
	"github.com/grachmannico95/verbs-service/pkg/logger"
	"gorm.io/gorm"
)

type stores struct {
	verbs     domain.VerbRepository
	audit     domain.AuditRepository
	txManager domain.TxManager
	ping      handler.Pinger
	db        *gorm.DB
}

func openStores(ctx context.Context, cfg *config.Config, log *logger.Logger, v *validation.Validator) stores {
	if cfg.Database.Driver == config.DatabaseDriverMemory {
		store := storage.NewMemoryStore(v)
		log.Info(ctx, "Using in-memory store")
		return stores{verbs: store, audit: store, txManager: store}
	}

	db, err := storage.Open(cfg.Database, log)
	if err != nil {
		log.Fatal(ctx, "Failed to open database",
			"error", err,
		)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal(ctx, "Failed to get database handle",
			"error", err,
		)
	}
	log.Info(ctx, "Database connected",
		"host", cfg.Database.Host,
		"name", cfg.Database.Name,
	)

	return stores{
		verbs:     storage.NewGormVerbRepository(db, v),
		audit:     storage.NewGormAuditRepository(db),
		txManager: storage.NewGormTxManager(db),
		ping:      sqlDB.PingContext,
		db:        db,
	}
}

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	v := validation.New()
	st := openStores(ctx, cfg, log, v)
	log.Info(ctx, "Repository initialized", "driver", cfg.Database.Driver)

	bus := eventbus.New(log, &eventbus.Config{
		ChannelBuffer: cfg.EventBus.ChannelBufferSize,
	})
	log.Info(ctx, "Event bus initialized")

	auditConsumer := eventbus.NewAuditConsumer(st.audit, log, cfg.Worker.PoolSize)
	log.Info(ctx, "Audit consumer initialized",
		"worker_count", cfg.Worker.PoolSize,
	)

	if err := bus.Subscribe(eventbus.EventTypeVerbAudit, auditConsumer); err != nil {
		log.Fatal(ctx, "Failed to subscribe consumer",
			"error", err,
		)
	}

	if err := bus.Start(ctx); err != nil {
		log.Fatal(ctx, "Failed to start event bus",
			"error", err,
		)
	}

	verbService := service.NewVerbService(
		st.verbs,
		st.txManager,
		st.audit,
		eventbus.NewAuditPublisher(bus),
		log,
		service.WithDelimiter(cfg.Import.Delimiter),
	)
	log.Info(ctx, "Services initialized")

	verbHandler := handler.NewVerbHandler(verbService, log, cfg.Import.MaxUploadBytes)
	healthHandler := handler.NewHealthHandler(st.ping)
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, v, verbHandler, healthHandler)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop taking requests first so no new audit events arrive, then drain
	// the bus, then close the pool the consumers write through.
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	if err := bus.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "Event bus shutdown error",
			"error", err,
		)
	}

	if err := storage.Close(st.db); err != nil {
		log.Error(shutdownCtx, "Database close error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
