// Package service is the read-only reporting layer over queued transactions
// and analytics.
package service

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	"github.com/chainsafe/gas-batcher/pkg/auth"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Store is the read side of the batch store.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	GetTransaction(ctx context.Context, batchID string) (*batch.Transaction, error)
	ListTransactionsBySender(ctx context.Context, sender string, limit int) ([]*batch.Transaction, error)
	CountTransactionsSince(ctx context.Context, since time.Time) (int64, error)
	CountTransactionsByStatus(ctx context.Context, status batch.Status) (int64, error)
	GetAnalytics(ctx context.Context, dappID string) (*batch.Analytics, error)
	ListAnalytics(ctx context.Context) ([]*batch.Analytics, error)
}

// Service answers dashboard queries.
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	GetTransaction(ctx context.Context, batchID string) (*batch.Transaction, error)
	ListTransactionsBySender(ctx context.Context, sender string, limit int) ([]*batch.Transaction, error)
	GetAnalytics(ctx context.Context, dappID string) (*batch.Analytics, error)
	GetGlobalAnalytics(ctx context.Context) (*batch.GlobalAnalytics, error)
}

type reportService struct {
	store Store
	now   func() time.Time
}

// NewService creates the reporting service.
func NewService(store Store) Service {
	return &reportService{store: store, now: time.Now}
}

func (s *reportService) GetTransaction(ctx context.Context, batchID string) (*batch.Transaction, error) {
	if batchID == "" {
		return nil, apperrors.BadRequestError(nil, "batchId is required")
	}
	tx, err := s.store.GetTransaction(ctx, batchID)
	if errors.Is(err, batchstore.ErrTransactionNotFound) {
		return nil, apperrors.ResourceNotFoundError(err, "transaction not found")
	}
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return tx, nil
}

// ListTransactionsBySender returns the newest transactions of sender. A
// non-positive limit means DefaultListLimit; larger limits are capped.
func (s *reportService) ListTransactionsBySender(ctx context.Context, sender string, limit int) ([]*batch.Transaction, error) {
	addr, err := auth.ParseAddress(sender)
	if err != nil {
		return nil, apperrors.BadRequestError(err, "userAddress must be a 0x-prefixed 20-byte hex address")
	}
	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}
	txs, err := s.store.ListTransactionsBySender(ctx, addr.Hex(), limit)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return txs, nil
}

// GetAnalytics returns the counters of a scope, all zero if it has none yet.
func (s *reportService) GetAnalytics(ctx context.Context, dappID string) (*batch.Analytics, error) {
	if dappID == "" {
		return nil, apperrors.BadRequestError(nil, "dappId is required")
	}
	a, err := s.store.GetAnalytics(ctx, dappID)
	if errors.Is(err, batchstore.ErrAnalyticsNotFound) {
		return batch.EmptyAnalytics(dappID), nil
	}
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return a, nil
}

// GetGlobalAnalytics sums every scope. The average is the mean of the
// per-scope averages, not total transactions over total batches.
func (s *reportService) GetGlobalAnalytics(ctx context.Context) (*batch.GlobalAnalytics, error) {
	rows, err := s.store.ListAnalytics(ctx)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}

	g := &batch.GlobalAnalytics{
		TotalGasSaved:    new(big.Int),
		AverageBatchSize: decimal.Zero,
		Scopes:           len(rows),
	}
	sumAvg := decimal.Zero
	for _, a := range rows {
		if a.TotalGasSaved != nil {
			g.TotalGasSaved.Add(g.TotalGasSaved, a.TotalGasSaved)
		}
		g.TotalBatches += a.TotalBatches
		g.TotalTransactions += a.TotalTransactions
		sumAvg = sumAvg.Add(a.AverageBatchSize)
	}
	if len(rows) > 0 {
		g.AverageBatchSize = sumAvg.DivRound(decimal.NewFromInt(int64(len(rows))), 4)
	}

	if g.Transactions24h, err = s.store.CountTransactionsSince(ctx, s.now().Add(-24*time.Hour)); err != nil {
		return nil, apperrors.GeneralError(err)
	}
	if g.PendingTransactions, err = s.store.CountTransactionsByStatus(ctx, batch.StatusPending); err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return g, nil
}
