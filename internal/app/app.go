package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/riskibarqy/fpl-stats-api/internal/config"
	"github.com/riskibarqy/fpl-stats-api/internal/domain/player"
	"github.com/riskibarqy/fpl-stats-api/internal/infrastructure/repository/circuit"
	"github.com/riskibarqy/fpl-stats-api/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fpl-stats-api/internal/infrastructure/repository/mongodb"
	"github.com/riskibarqy/fpl-stats-api/internal/interfaces/httpapi"
	"github.com/riskibarqy/fpl-stats-api/internal/metrics"
	"github.com/riskibarqy/fpl-stats-api/internal/platform/logging"
	"github.com/riskibarqy/fpl-stats-api/internal/platform/resilience"
	"github.com/riskibarqy/fpl-stats-api/internal/usecase"
)

const storeBreakerName = "player-store"

// Cleanup releases what NewHTTPServer acquired. It is safe to call once the
// HTTP server has stopped accepting requests.
type Cleanup func(ctx context.Context) error

type playerStore interface {
	player.Repository
	player.Pinger
}

// NewHTTPServer builds the player store, services and router. The store is
// opened once here and shared by every request.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, Cleanup, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var (
		m              metrics.Metrics = metrics.Nop{}
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		m = metrics.NewService(reg)
		metricsHandler = metrics.NewMetricsHandler(reg)
	}

	store, cleanup, err := openPlayerStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var breaker *resilience.CircuitBreaker
	if cfg.StoreCircuitEnabled {
		breaker = resilience.NewCircuitBreaker(storeBreakerName, resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: cfg.StoreCircuitFailureCount,
			OpenTimeout:      cfg.StoreCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StoreCircuitHalfOpenMaxReq,
		}, func(name string, from, to resilience.CircuitState) {
			m.SetCircuitState(name, string(to))
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		})
		m.SetCircuitState(storeBreakerName, string(breaker.State()))
	}
	playerRepo := circuit.NewPlayerRepository(store, breaker, m)

	playerSvc := usecase.NewPlayerService(playerRepo)
	handler := httpapi.NewHandler(playerSvc, playerRepo, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, logger, httpapi.RouterOptions{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:            m,
		MetricsHandler:     metricsHandler,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, cleanup, nil
}

func openPlayerStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (playerStore, Cleanup, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		repo, err := memory.NewPlayerRepository(memory.SeedPlayers())
		if err != nil {
			return nil, nil, fmt.Errorf("seed memory player store: %w", err)
		}
		logger.Info("player store ready", "driver", cfg.StoreDriver)
		return repo, func(context.Context) error { return nil }, nil

	case config.StoreDriverMongo:
		client, err := mongodb.Connect(ctx, mongodb.Config{
			URI:              cfg.MongoURI,
			Database:         cfg.MongoDatabase,
			ConnectTimeout:   cfg.MongoConnectTimeout,
			OperationTimeout: cfg.MongoOperationTimeout,
			MaxPoolSize:      cfg.MongoMaxPoolSize,
			AppName:          cfg.ServiceName,
		}, logger.Named("mongodb"))
		if err != nil {
			return nil, nil, fmt.Errorf("open mongodb player store at %s: %w", redactStoreURI(cfg.MongoURI), err)
		}
		logger.Info("player store ready",
			"driver", cfg.StoreDriver,
			"uri", redactStoreURI(cfg.MongoURI),
			"collection", cfg.MongoCollection,
		)
		return mongodb.NewPlayerRepository(client, cfg.MongoCollection), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
