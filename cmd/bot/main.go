package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/repair_bot/internal/app"
	"github.com/Freeeeeet/repair_bot/internal/clock"
	"github.com/Freeeeeet/repair_bot/internal/config"
	"github.com/Freeeeeet/repair_bot/internal/controller"
	"github.com/Freeeeeet/repair_bot/internal/repository"
	"github.com/Freeeeeet/repair_bot/internal/repository/store"
	"github.com/Freeeeeet/repair_bot/internal/service"
	"github.com/Freeeeeet/repair_bot/migrations"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("Starting repair bot",
		zap.String("environment", cfg.Environment),
		zap.String("store_driver", cfg.StoreDriver),
		zap.Bool("env_file_loaded", cfg.EnvFileLoaded),
		zap.Int("token_length", len(cfg.TelegramToken)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Bot stopped")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	clk := clock.NewSystem()

	recordStore, cleanup, err := openStore(ctx, cfg, clk, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	// Репозитории
	serviceRepo := repository.NewServiceRepository(recordStore)
	providerRepo := repository.NewProviderRepository(recordStore)
	bookingRepo := repository.NewBookingRepository(recordStore)

	// Сервисы
	catalogService := service.NewCatalogService(serviceRepo, providerRepo, logger)
	bookingService := service.NewBookingService(bookingRepo, logger)

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		return err
	}

	ctrl := controller.NewBotController(b, catalogService, bookingService, clk, cfg.RedirectDelay, logger)
	if err := ctrl.RegisterHandlers(ctx); err != nil {
		// Меню команд не критично, без него бот работает
		logger.Warn("Bot commands menu not set", zap.Error(err))
	}

	return ctrl.Start(ctx)
}

// openStore выбирает хранилище записей по STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config, clk clock.Clock, logger *zap.Logger) (store.Store, func(), error) {
	if cfg.StoreDriver == config.StoreDriverMemory {
		logger.Warn("Using in-memory store, bookings are lost on restart")
		return repository.NewDemoMemoryStore(clk), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return store.NewPostgresStore(pool), pool.Close, nil
}
