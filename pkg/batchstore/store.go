package batchstore

import (
	"context"
	"errors"
	"time"

	"github.com/chainsafe/gas-batcher/pkg/batch"
)

var (
	// ErrTransactionNotFound is returned when no queued transaction has the batch id.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrScheduledBatchNotFound is returned when no scheduled batch has the batch id.
	ErrScheduledBatchNotFound = errors.New("scheduled batch not found")
	// ErrAnalyticsNotFound is returned when a scope has no analytics row yet.
	ErrAnalyticsNotFound = errors.New("analytics not found")
	// ErrStatusConflict is returned when a conditional status update matched no
	// row because the record is no longer in one of the expected states.
	ErrStatusConflict = errors.New("status conflict")
	// ErrDuplicateBatchID is returned when an insert collides on batch_id.
	ErrDuplicateBatchID = errors.New("duplicate batch id")
)

// TransitionOptions carries the columns written together with a status change.
type TransitionOptions struct {
	ScheduledFor *time.Time
	ExecutedAt   *time.Time
	TxHash       *string
	ErrorMessage *string
}

// TransactionStore persists queued transactions.
type TransactionStore interface {
	CreateTransaction(ctx context.Context, tx *batch.Transaction) error
	GetTransaction(ctx context.Context, batchID string) (*batch.Transaction, error)
	ListTransactionsBySender(ctx context.Context, sender string, limit int) ([]*batch.Transaction, error)
	ListPendingTransactions(ctx context.Context, now time.Time, limit int) ([]*batch.Transaction, error)
	TransitionStatus(ctx context.Context, batchID string, from []batch.Status, to batch.Status, opts TransitionOptions) (*batch.Transaction, error)
	CountTransactionsSince(ctx context.Context, since time.Time) (int64, error)
	CountTransactionsByStatus(ctx context.Context, status batch.Status) (int64, error)
}

// ScheduleStore persists scheduled batch definitions.
type ScheduleStore interface {
	CreateScheduledBatch(ctx context.Context, s *batch.ScheduledBatch) error
	GetScheduledBatch(ctx context.Context, batchID string) (*batch.ScheduledBatch, error)
	ListScheduledBatches(ctx context.Context, dappID string) ([]*batch.ScheduledBatch, error)
	ListDueScheduledBatches(ctx context.Context, now time.Time, limit int) ([]*batch.ScheduledBatch, error)
	TransitionScheduledBatch(ctx context.Context, batchID string, from, to batch.Status) error
}

// AnalyticsStore persists per-scope counters.
type AnalyticsStore interface {
	UpsertAnalytics(ctx context.Context, delta batch.AnalyticsDelta, now time.Time) (*batch.Analytics, error)
	GetAnalytics(ctx context.Context, dappID string) (*batch.Analytics, error)
	ListAnalytics(ctx context.Context) ([]*batch.Analytics, error)
}

// Store is the full persistence surface backed by Postgres.
type Store interface {
	TransactionStore
	ScheduleStore
	AnalyticsStore
}
