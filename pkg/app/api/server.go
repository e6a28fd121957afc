// Package api implements app.Runner for the API server process.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/gas-batcher/pkg/app/http"
	"github.com/chainsafe/gas-batcher/pkg/auth"
	batchservice "github.com/chainsafe/gas-batcher/pkg/batch/service"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
	"github.com/chainsafe/gas-batcher/pkg/config"
	"github.com/chainsafe/gas-batcher/pkg/network"
	"github.com/chainsafe/gas-batcher/pkg/pgutil"
	reportservice "github.com/chainsafe/gas-batcher/pkg/report/service"
	"github.com/chainsafe/gas-batcher/pkg/signer"
)

// Server holds cfg to init the api server.
type Server struct {
	cfg *config.Config
}

// NewServer initializes new api server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("api server config is nil")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging, "api-server")
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting API server",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	db, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Info("Connected to database",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.Database),
	)
	store := batchstore.NewStore(db)

	nw, err := network.Dial(ctx, cfg.Network.RPCURL,
		network.WithLogger(logger),
		network.WithRequestTimeout(cfg.Network.RequestTimeout),
	)
	if err != nil {
		return fmt.Errorf("dial network node: %w", err)
	}
	defer nw.Close()
	logger.Info("Connected to network node", zap.String("rpc_url", cfg.Network.RPCURL))

	sg, err := NewSigner(cfg.Wallet, nw, logger)
	if err != nil {
		return err
	}

	batchSvc, err := batchservice.NewService(store, nw, sg, BatchServiceConfig(cfg.Batch), logger)
	if err != nil {
		return fmt.Errorf("create batch service: %w", err)
	}

	cron, err := s.cronValidator(logger)
	if err != nil {
		return err
	}

	router := s.setupRouter(
		batchservice.NewLog(batchSvc, logger),
		reportservice.NewService(store),
		nw,
		cron,
		logger,
	)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// NewSigner returns the operator signer, or a nil Signer when no wallet key
// is configured so the batch service reports "no wallet connected".
func NewSigner(cfg config.WalletConfig, nw signer.Network, logger *zap.Logger) (signer.Signer, error) {
	ks, err := signer.New(cfg.PrivateKey, nw, signer.Config{
		GasLimit:      cfg.GasLimit,
		TokenGasLimit: cfg.TokenGasLimit,
	}, logger)
	if errors.Is(err, signer.ErrNoWallet) {
		logger.Warn("No wallet key configured, execution endpoints are disabled")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	logger.Info("Wallet connected", zap.String("address", ks.Address().Hex()))
	return ks, nil
}

// BatchServiceConfig maps process configuration onto the batch service.
func BatchServiceConfig(cfg config.BatchConfig) batchservice.Config {
	return batchservice.Config{
		DefaultScope:        cfg.DefaultScope,
		MaxBatchSize:        cfg.MaxBatchSize,
		MinTransactionCount: cfg.MinTransactionCount,
		DueScheduleLimit:    cfg.DueScheduleLimit,
	}
}

func (s *Server) cronValidator(logger *zap.Logger) (*auth.CronValidator, error) {
	if s.cfg.Auth.CronSecret == "" {
		logger.Info("Cron secret not set, auto-process endpoint disabled")
		return nil, nil
	}
	v, err := auth.NewCronValidator(s.cfg.Auth.CronSecret, s.cfg.Auth.CronIssuer)
	if err != nil {
		return nil, fmt.Errorf("create cron validator: %w", err)
	}
	return v, nil
}

func (s *Server) setupRouter(
	batchSvc batchservice.Service,
	reportSvc reportservice.Service,
	nw network.API,
	cron *auth.CronValidator,
	logger *zap.Logger,
) chi.Router {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(s.cfg.Server.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if s.cfg.Monitoring.Enabled {
		r.Handle("/metrics", promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", "/metrics"))
	}

	batchservice.RegisterRoutes(r, batchSvc, cron, logger)
	reportservice.RegisterRoutes(r, reportSvc, logger)
	network.RegisterRoutes(r, nw, logger)

	return r
}
