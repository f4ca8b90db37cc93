package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/shopcore/billing-service/internal/app"
	"github.com/shopcore/billing-service/internal/config"
	"github.com/shopcore/billing-service/internal/entities"
	"github.com/shopcore/billing-service/internal/gateway"
	"github.com/shopcore/billing-service/internal/handler"
	"github.com/shopcore/billing-service/internal/postgres"
	"github.com/shopcore/billing-service/internal/repo"
	"github.com/shopcore/billing-service/internal/service"
	"github.com/shopcore/billing-service/pkg/cache"
	"github.com/shopcore/billing-service/pkg/trm"

	"github.com/joho/godotenv"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	store := repo.New(db)
	txManager := trm.NewManager(db)

	productCache := cache.NewLRU[entities.Product](conf.Cache.Capacity, conf.Cache.TTL)
	cachedProducts := repo.NewCachedProducts(store, productCache)

	rates, err := service.RatesFromConfig(conf.Shipping)
	panicIfErr("invalid shipping rates", err)

	shippingSvc := service.NewShippingService(logger, rates, cachedProducts)
	cartSvc := service.NewCartService(logger, txManager, store, cachedProducts)
	gatewayClient := gateway.NewClient(logger, conf.Gateway)
	reconPublisher := handler.NewReconPublisher(logger, conf.Kafka)

	// Charged totals and order snapshots read products through the
	// uncached repo so a frozen price is never a stale one; the cache
	// only serves shipping weights and live cart totals.
	fulfillmentSvc := service.NewFulfillmentService(logger, txManager, store, store, store)
	billingSvc := service.NewBillingService(
		logger, txManager, store, shippingSvc, cartSvc,
		gatewayClient, fulfillmentSvc, store, store, reconPublisher,
	)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, conf.Worker, billingSvc)
	opsHandler := handler.NewOpsHandler(logger, db)

	handler.RegisterMetrics()

	janitor := app.StarterFunc(func(ctx context.Context) error {
		productCache.StartJanitor(ctx)
		return nil
	})

	app := app.New(logger, conf)

	app.SetHTTPHandlers(opsHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(janitor)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()

	if err := reconPublisher.Close(); err != nil {
		logger.Error("failed to close reconciliation publisher", slog.Any("error", err))
	}
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
