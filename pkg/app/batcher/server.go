// Package batcher implements app.Runner for the background batch worker.
package batcher

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/pkg/app/api"
	apphttp "github.com/chainsafe/gas-batcher/pkg/app/http"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	batchservice "github.com/chainsafe/gas-batcher/pkg/batch/service"
	"github.com/chainsafe/gas-batcher/pkg/batch/worker"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
	"github.com/chainsafe/gas-batcher/pkg/config"
	"github.com/chainsafe/gas-batcher/pkg/network"
	"github.com/chainsafe/gas-batcher/pkg/pgutil"
)

// Server holds configuration for the batcher process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new batcher Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run starts the periodic worker and an operational HTTP server exposing
// health and metrics. It blocks until a shutdown signal is received.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging, "batcher")
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting batch worker")

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("Database connection established")

	nw, err := network.Dial(ctx, cfg.Network.RPCURL,
		network.WithLogger(logger),
		network.WithRequestTimeout(cfg.Network.RequestTimeout),
	)
	if err != nil {
		return fmt.Errorf("dial network node: %w", err)
	}
	defer nw.Close()

	sg, err := api.NewSigner(cfg.Wallet, nw, logger)
	if err != nil {
		return err
	}
	if sg == nil {
		return fmt.Errorf("batch worker requires wallet.private_key")
	}

	svc, err := batchservice.NewService(batchstore.NewStore(db), nw, sg, api.BatchServiceConfig(cfg.Batch), logger)
	if err != nil {
		return fmt.Errorf("create batch service: %w", err)
	}

	w := worker.New(
		batchservice.NewLog(svc, logger),
		batch.AutoProcessConfig{
			MaxBatchSize:        cfg.Batch.MaxBatchSize,
			MinTransactionCount: cfg.Batch.MinTransactionCount,
		},
		cfg.Batch.AutoProcessInterval,
		cfg.Batch.RunTimeout,
		logger,
	)
	w.Start()
	// Stop the worker before deferred closes release the store and client.
	defer w.Stop()

	return apphttp.ServeAndWait(ctx, s.newRouter(logger), logger, &cfg.Server)
}

func (s *Server) newRouter(logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	return r
}
