package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/internal/metrics"
	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	"github.com/chainsafe/gas-batcher/pkg/auth"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
	"github.com/chainsafe/gas-batcher/pkg/network"
	"github.com/chainsafe/gas-batcher/pkg/signer"
)

// Store is the narrow data-access interface for the batch lifecycle.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateTransaction(ctx context.Context, tx *batch.Transaction) error
	GetTransaction(ctx context.Context, batchID string) (*batch.Transaction, error)
	ListPendingTransactions(ctx context.Context, now time.Time, limit int) ([]*batch.Transaction, error)
	TransitionStatus(ctx context.Context, batchID string, from []batch.Status, to batch.Status, opts batchstore.TransitionOptions) (*batch.Transaction, error)
	CreateScheduledBatch(ctx context.Context, s *batch.ScheduledBatch) error
	ListScheduledBatches(ctx context.Context, dappID string) ([]*batch.ScheduledBatch, error)
	ListDueScheduledBatches(ctx context.Context, now time.Time, limit int) ([]*batch.ScheduledBatch, error)
	TransitionScheduledBatch(ctx context.Context, batchID string, from, to batch.Status) error
	UpsertAnalytics(ctx context.Context, delta batch.AnalyticsDelta, now time.Time) (*batch.Analytics, error)
}

// Network estimates gas for queued transfers.
//
//go:generate mockery --name Network --output mocks --outpkg mocks --filename mock_network.go --with-expecter
type Network interface {
	EstimateGas(ctx context.Context, req network.TxRequest) (uint64, error)
	EstimateBatchSavings(ctx context.Context, reqs []network.TxRequest) (*network.BatchSavings, error)
}

// Service defines the batch lifecycle operations.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	Enqueue(ctx context.Context, req *batch.EnqueueRequest) (string, error)
	Schedule(ctx context.Context, batchID string, at time.Time) (*batch.Transaction, error)
	ComputeSavings(ctx context.Context, txs []*batch.Transaction) (*network.BatchSavings, error)
	ExecuteOne(ctx context.Context, batchID, scope string) (*batch.ExecutionResult, error)
	ExecuteBatch(ctx context.Context, batchIDs []string, scope string) (*batch.ExecutionResult, error)
	AutoProcess(ctx context.Context, cfg batch.AutoProcessConfig) (*batch.AutoProcessResult, error)
	CreateScheduledBatch(ctx context.Context, req *batch.ScheduleRequest) (*batch.ScheduledBatch, error)
	ListScheduledBatches(ctx context.Context, dappID string) ([]*batch.ScheduledBatch, error)
	RunDueSchedules(ctx context.Context, now time.Time) (*batch.ScheduleRunResult, error)
	HasWallet() bool
}

// Config holds lifecycle thresholds. Zero fields take the `default` tag.
type Config struct {
	DefaultScope        string `default:"default"`
	MaxBatchSize        int    `default:"50"`
	MinTransactionCount int    `default:"5"`
	DueScheduleLimit    int    `default:"20"`
}

const maxEnqueueAttempts = 2

var errNoWallet = apperrors.BadRequestError(signer.ErrNoWallet, "no wallet connected")

type batchService struct {
	store    Store
	network  Network
	signer   signer.Signer
	cfg      Config
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewService creates the lifecycle service. A nil signer means no wallet is
// connected; every execution path then fails with a 400.
func NewService(store Store, nw Network, sg signer.Signer, cfg Config, logger *zap.Logger) (Service, error) {
	if err := defaults.Set(&cfg); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}
	if cfg.MinTransactionCount > cfg.MaxBatchSize {
		return nil, fmt.Errorf("min transaction count %d exceeds max batch size %d", cfg.MinTransactionCount, cfg.MaxBatchSize)
	}
	return &batchService{
		store:    store,
		network:  nw,
		signer:   sg,
		cfg:      cfg,
		validate: newValidator(),
		logger:   logger,
		now:      time.Now,
	}, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns the first validator failure into a 400.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return apperrors.BadRequestError(err, fe.Field()+" is required")
		case "eth_addr":
			return apperrors.BadRequestError(err, fe.Field()+" must be a 0x-prefixed 20-byte hex address")
		case "oneof":
			return apperrors.BadRequestError(err, fe.Field()+" must be one of: "+fe.Param())
		default:
			return apperrors.BadRequestError(err, fe.Field()+" is invalid")
		}
	}
	return apperrors.BadRequestError(err, "invalid request")
}

func (s *batchService) HasWallet() bool {
	return s.signer != nil
}

func (s *batchService) scope(dappID string) string {
	if dappID = strings.TrimSpace(dappID); dappID != "" {
		return dappID
	}
	return s.cfg.DefaultScope
}

// Enqueue validates req, estimates its gas and stores it as pending.
// Nothing is estimated or stored when validation fails.
func (s *batchService) Enqueue(ctx context.Context, req *batch.EnqueueRequest) (string, error) {
	if req == nil {
		return "", apperrors.BadRequestError(nil, "request body is required")
	}
	if err := s.validate.Struct(req); err != nil {
		return "", validationError(err)
	}
	from, err := auth.ParseAddress(req.UserAddress)
	if err != nil {
		return "", apperrors.BadRequestError(err, "userAddress is invalid")
	}
	to, err := auth.ParseAddress(req.ToAddress)
	if err != nil {
		return "", apperrors.BadRequestError(err, "toAddress is invalid")
	}
	amount, err := batch.ParseAmount(string(req.Amount))
	if err != nil {
		return "", apperrors.BadRequestError(err, batch.ErrInvalidAmount.Error())
	}
	var token *common.Address
	if req.TokenAddress != nil && *req.TokenAddress != "" {
		addr, err := auth.ParseAddress(*req.TokenAddress)
		if err != nil {
			return "", apperrors.BadRequestError(err, "tokenAddress is invalid")
		}
		token = &addr
	}

	now := s.now().UTC()
	tx := &batch.Transaction{
		UserAddress:  from,
		ToAddress:    to,
		Amount:       amount,
		TokenAddress: token,
		GasEstimate:  s.estimateGas(ctx, from, to, amount, token),
		Status:       batch.StatusPending,
		ScheduledFor: req.ScheduledFor,
		CreatedAt:    now,
	}

	for attempt := 1; ; attempt++ {
		tx.BatchID = batch.NewBatchID(now)
		err = s.store.CreateTransaction(ctx, tx)
		if err == nil {
			break
		}
		if !errors.Is(err, batchstore.ErrDuplicateBatchID) || attempt >= maxEnqueueAttempts {
			return "", apperrors.GeneralError(fmt.Errorf("failed to store transaction: %w", err))
		}
	}

	tokenLabel := "native"
	if token != nil {
		tokenLabel = "erc20"
	}
	metrics.TransactionsEnqueued.WithLabelValues(tokenLabel).Inc()
	return tx.BatchID, nil
}

// estimateGas never fails: any network problem yields DefaultGasEstimate.
func (s *batchService) estimateGas(ctx context.Context, from, to common.Address, amount *big.Int, token *common.Address) *big.Int {
	req, err := network.TransferRequest(from, to, amount, token)
	if err == nil {
		var gas uint64
		gas, err = s.network.EstimateGas(ctx, req)
		if err == nil && gas > 0 {
			return new(big.Int).SetUint64(gas)
		}
	}
	s.logger.Warn("gas estimation failed, using default",
		zap.String("from", from.Hex()),
		zap.String("to", to.Hex()),
		zap.Uint64("default_gas", batch.DefaultGasEstimate),
		zap.Error(err))
	metrics.GasEstimateFallbacks.Inc()
	return big.NewInt(batch.DefaultGasEstimate)
}

// Schedule moves a pending transaction to scheduled for a future time.
func (s *batchService) Schedule(ctx context.Context, batchID string, at time.Time) (*batch.Transaction, error) {
	if batchID == "" {
		return nil, apperrors.BadRequestError(nil, "batchId is required")
	}
	if !at.After(s.now()) {
		return nil, apperrors.BadRequestError(nil, "scheduledFor must be in the future")
	}
	at = at.UTC()
	tx, err := s.store.TransitionStatus(ctx, batchID,
		[]batch.Status{batch.StatusPending}, batch.StatusScheduled,
		batchstore.TransitionOptions{ScheduledFor: &at})
	if err != nil {
		return nil, s.transitionError(batchID, err)
	}
	return tx, nil
}

// ComputeSavings estimates what executing txs as one batch would save.
func (s *batchService) ComputeSavings(ctx context.Context, txs []*batch.Transaction) (*network.BatchSavings, error) {
	if len(txs) == 0 {
		return nil, apperrors.BadRequestError(network.ErrNoTransactions, "no transactions to estimate")
	}
	reqs := make([]network.TxRequest, 0, len(txs))
	for _, tx := range txs {
		req, err := network.TransferRequest(tx.UserAddress, tx.ToAddress, tx.Amount, tx.TokenAddress)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "invalid transaction "+tx.BatchID)
		}
		reqs = append(reqs, req)
	}
	savings, err := s.network.EstimateBatchSavings(ctx, reqs)
	if err != nil {
		return nil, apperrors.DependencyError(err, "failed to estimate batch savings")
	}
	return savings, nil
}

func (s *batchService) transitionError(batchID string, err error) error {
	switch {
	case errors.Is(err, batchstore.ErrTransactionNotFound):
		return apperrors.ResourceNotFoundError(err, "transaction not found")
	case errors.Is(err, batchstore.ErrStatusConflict):
		metrics.StatusConflicts.Inc()
		return apperrors.ConflictError(err, "transaction "+batchID+" is not in a state that allows this operation")
	default:
		return apperrors.GeneralError(err)
	}
}

// recordAnalytics adds delta to its scope. Failures are logged, not returned:
// the transfers it describes have already been broadcast.
func (s *batchService) recordAnalytics(ctx context.Context, delta batch.AnalyticsDelta) {
	if _, err := s.store.UpsertAnalytics(ctx, delta, s.now().UTC()); err != nil {
		s.logger.Error("failed to update analytics",
			zap.String("dapp_id", delta.DappID),
			zap.Int64("batches", delta.Batches),
			zap.Int64("transactions", delta.Transactions),
			zap.Error(err))
		return
	}
	if f, _ := new(big.Float).SetInt(delta.GasSaved).Float64(); f > 0 {
		metrics.GasSaved.WithLabelValues(delta.DappID).Add(f)
	}
}
