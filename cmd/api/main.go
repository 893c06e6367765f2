package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	cartv1 "github.com/dwikikusuma/storefront/api/cart/v1"
	catalogv1 "github.com/dwikikusuma/storefront/api/catalog/v1"
	checkoutv1 "github.com/dwikikusuma/storefront/api/checkout/v1"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartgrpc "github.com/dwikikusuma/storefront/internal/cart/grpc"
	cartadapter "github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/cart/infra/events"
	cartpg "github.com/dwikikusuma/storefront/internal/cart/infra/postgres"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	cgrpc "github.com/dwikikusuma/storefront/internal/catalog/grpc"
	"github.com/dwikikusuma/storefront/internal/catalog/infra/cache"
	cpg "github.com/dwikikusuma/storefront/internal/catalog/infra/postgres"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutgrpc "github.com/dwikikusuma/storefront/internal/checkout/grpc"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"

	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/postgres"
	"github.com/dwikikusuma/storefront/pkg/redisclient"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", slog.Any("err", err))
		os.Exit(1)
	}
	log := logger.New(logger.Options{Service: "api", Env: cfg.AppEnv, Level: cfg.LogLevel, AddSource: true})

	ctx, cancel := shutdown.WithSignals(context.Background(), log)
	defer cancel()

	db := mustDB(ctx, log, cfg)
	defer func() { _ = postgres.Close(db) }()

	// Catalog
	catalogRepo := cpg.NewProductRepo(db)
	featured, closeCache := mustFeaturedCache(ctx, log, cfg)
	defer func() { _ = closeCache.Close() }()
	catalogSvc := catalogapp.NewService(catalogRepo, featured, log)

	// Cart
	cartRepo := cartpg.NewCartRepo(db)
	if cfg.Postgres.AutoMigrate {
		mustMigrate(ctx, log, catalogRepo.AutoMigrate, cartRepo.AutoMigrate)
	}

	var publisher cartapp.EventPublisher = cartapp.NopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kp := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.CartTopic)
		defer func() { _ = kp.Close() }()
		publisher = kp
		log.Info("cart events enabled", slog.String("topic", cfg.Kafka.CartTopic))
	}
	cartSvc := cartapp.NewService(cartRepo, cartadapter.NewCatalogServiceReader(catalogSvc), publisher, log, cfg.CartMaxRetries)

	// Checkout (adapters)
	cartReader := checkoutadapter.NewCartServiceReader(cartSvc)
	catalogReader := checkoutadapter.NewCatalogServiceReader(catalogSvc)
	checkoutSvc := checkoutapp.NewService(cartReader, catalogReader, cfg.CheckoutMaxConcurrent)

	addr := fmt.Sprintf(":%d", cfg.GRPCPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Error("listen failed", slog.Any("err", err), slog.String("addr", addr))
		os.Exit(1)
	}

	grpcServer := grpc.NewServer()
	catalogv1.RegisterCatalogServiceServer(grpcServer, cgrpc.NewServer(catalogSvc, log))
	cartv1.RegisterCartServiceServer(grpcServer, cartgrpc.NewServer(cartSvc, log))
	checkoutv1.RegisterCheckoutServiceServer(grpcServer, checkoutgrpc.NewServer(checkoutSvc, log))

	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	metricsAddr := fmt.Sprintf(":%d", cfg.MetricsPort)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	metrics := &http.Server{Addr: metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		log.Info("grpc starting", slog.String("addr", addr))
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("grpc serve error", slog.Any("err", err))
			cancel()
		}
	}()
	go func() {
		defer wg.Done()
		log.Info("metrics starting", slog.String("addr", metricsAddr))
		if err := metrics.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics serve error", slog.Any("err", err))
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown requested")
	hs.Shutdown()

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer stopCancel()
	if err := metrics.Shutdown(stopCtx); err != nil {
		log.Error("metrics shutdown error", slog.Any("err", err))
	}

	if !shutdown.Wait(10*time.Second, grpcServer.GracefulStop, grpcServer.Stop) {
		log.Warn("graceful stop timeout, forced stop")
	}

	if err := cartSvc.Close(stopCtx); err != nil {
		log.Warn("cart events not fully flushed", slog.Any("err", err))
	}

	wg.Wait()
	log.Info("bye")
}

func mustDB(ctx context.Context, log *slog.Logger, cfg config.Config) *gorm.DB {
	db, err := postgres.Open(ctx, postgres.Config{
		Host:    cfg.Postgres.Host,
		Port:    cfg.Postgres.Port,
		User:    cfg.Postgres.User,
		Pass:    cfg.Postgres.Password,
		DB:      cfg.Postgres.DB,
		SSLMode: cfg.Postgres.SSLMode,
	})
	if err != nil {
		log.Error("db open failed", slog.Any("err", err))
		os.Exit(1)
	}
	return db
}

func mustMigrate(ctx context.Context, log *slog.Logger, steps ...func(context.Context) error) {
	for _, step := range steps {
		if err := step(ctx); err != nil {
			log.Error("auto migrate failed", slog.Any("err", err))
			os.Exit(1)
		}
	}
}

// mustFeaturedCache picks the snapshot backend. If Redis cannot be reached at
// startup the process falls back to the in-memory backend.
func mustFeaturedCache(ctx context.Context, log *slog.Logger, cfg config.Config) (catalogapp.FeaturedCache, io.Closer) {
	if cfg.Cache.Backend == "redis" {
		client, err := redisclient.Open(ctx, redisclient.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err == nil {
			return cache.NewRedisFeaturedCache(client, cfg.Cache.Prefix, cfg.Cache.FeaturedTTL), client
		}
		log.Warn("redis unavailable, using memory featured cache", slog.Any("err", err))
	}

	mc, err := cache.NewMemoryFeaturedCache(ctx, cfg.Cache.Prefix, cfg.Cache.FeaturedTTL)
	if err != nil {
		log.Error("memory cache init failed", slog.Any("err", err))
		os.Exit(1)
	}
	return mc, mc
}
