package batchstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/chainsafe/gas-batcher/pkg/batch"
)

type pgStore struct {
	db *bun.DB
}

var _ Store = (*pgStore)(nil)

// NewStore creates a new postgres implementation of the batch store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func isUniqueViolation(err error) bool {
	var pgErr pgdriver.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}

func (s *pgStore) CreateTransaction(ctx context.Context, tx *batch.Transaction) error {
	if tx.Amount == nil || tx.Amount.Sign() <= 0 {
		return batch.ErrInvalidAmount
	}
	dao := toTransactionDao(tx)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateBatchID, tx.BatchID)
		}
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func (s *pgStore) GetTransaction(ctx context.Context, batchID string) (*batch.Transaction, error) {
	dao := new(TransactionDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("batch_id = ?", batchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return toTransaction(dao)
}

// ListTransactionsBySender expects sender in checksum form, as stored.
func (s *pgStore) ListTransactionsBySender(ctx context.Context, sender string, limit int) ([]*batch.Transaction, error) {
	var daos []TransactionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("user_address = ?", sender).
		OrderExpr("created_at DESC, id DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by sender: %w", err)
	}
	return toTransactions(daos)
}

// ListPendingTransactions returns transfers ready to execute at now: pending
// ones without a future schedule and scheduled ones that have come due.
func (s *pgStore) ListPendingTransactions(ctx context.Context, now time.Time, limit int) ([]*batch.Transaction, error) {
	var daos []TransactionDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("(status = ? AND (scheduled_for IS NULL OR scheduled_for <= ?)) OR (status = ? AND scheduled_for <= ?)",
			string(batch.StatusPending), now, string(batch.StatusScheduled), now).
		OrderExpr("created_at ASC, id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transactions: %w", err)
	}
	return toTransactions(daos)
}

// TransitionStatus moves batchID to `to` only if its current status is one of
// `from`. The status and its companion columns are written by one statement.
func (s *pgStore) TransitionStatus(
	ctx context.Context,
	batchID string,
	from []batch.Status,
	to batch.Status,
	opts TransitionOptions,
) (*batch.Transaction, error) {
	if err := checkTransition(from, to, opts); err != nil {
		return nil, err
	}

	expected := make([]string, len(from))
	for i, st := range from {
		expected[i] = string(st)
	}

	dao := new(TransactionDao)
	q := s.db.NewUpdate().
		Model(dao).
		Set("status = ?", string(to)).
		Where("batch_id = ?", batchID).
		Where("status IN (?)", bun.In(expected)).
		Returning("*")

	if opts.ScheduledFor != nil {
		q = q.Set("scheduled_for = ?", *opts.ScheduledFor)
	}
	if opts.ExecutedAt != nil {
		q = q.Set("executed_at = ?", *opts.ExecutedAt)
	}
	if opts.TxHash != nil {
		q = q.Set("tx_hash = ?", *opts.TxHash)
	}
	if opts.ErrorMessage != nil {
		q = q.Set("error_message = ?", *opts.ErrorMessage)
	}

	if err := q.Scan(ctx); err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("failed to transition transaction %s: %w", batchID, err)
		}
		exists, existsErr := s.db.NewSelect().
			Model((*TransactionDao)(nil)).
			Where("batch_id = ?", batchID).
			Exists(ctx)
		if existsErr != nil {
			return nil, fmt.Errorf("failed to check transaction exists: %w", existsErr)
		}
		if !exists {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %s is not in %v", ErrStatusConflict, batchID, from)
	}

	return toTransaction(dao)
}

func checkTransition(from []batch.Status, to batch.Status, opts TransitionOptions) error {
	if len(from) == 0 {
		return fmt.Errorf("no expected status for transition to %s", to)
	}
	for _, st := range from {
		if !batch.CanTransition(st, to) {
			return fmt.Errorf("illegal transition %s -> %s", st, to)
		}
	}
	switch to {
	case batch.StatusCompleted:
		if opts.TxHash == nil || opts.ExecutedAt == nil {
			return fmt.Errorf("completed transition requires tx hash and executed at")
		}
		if opts.ErrorMessage != nil {
			return fmt.Errorf("completed transition cannot carry an error message")
		}
	case batch.StatusFailed:
		if opts.ErrorMessage == nil {
			return fmt.Errorf("failed transition requires an error message")
		}
		if opts.TxHash != nil {
			return fmt.Errorf("failed transition cannot carry a tx hash")
		}
	default:
		if opts.TxHash != nil || opts.ErrorMessage != nil || opts.ExecutedAt != nil {
			return fmt.Errorf("%s transition cannot carry execution results", to)
		}
	}
	return nil
}

func (s *pgStore) CountTransactionsSince(ctx context.Context, since time.Time) (int64, error) {
	n, err := s.db.NewSelect().
		Model((*TransactionDao)(nil)).
		Where("created_at >= ?", since).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count recent transactions: %w", err)
	}
	return int64(n), nil
}

func (s *pgStore) CountTransactionsByStatus(ctx context.Context, status batch.Status) (int64, error) {
	n, err := s.db.NewSelect().
		Model((*TransactionDao)(nil)).
		Where("status = ?", string(status)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s transactions: %w", status, err)
	}
	return int64(n), nil
}

func (s *pgStore) CreateScheduledBatch(ctx context.Context, sb *batch.ScheduledBatch) error {
	_, err := s.db.NewInsert().
		Model(toScheduledBatchDao(sb)).
		Exec(ctx)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateBatchID, sb.BatchID)
		}
		return fmt.Errorf("failed to create scheduled batch: %w", err)
	}
	return nil
}

func (s *pgStore) GetScheduledBatch(ctx context.Context, batchID string) (*batch.ScheduledBatch, error) {
	dao := new(ScheduledBatchDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("batch_id = ?", batchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrScheduledBatchNotFound
		}
		return nil, fmt.Errorf("failed to get scheduled batch: %w", err)
	}
	return toScheduledBatch(dao)
}

func (s *pgStore) ListScheduledBatches(ctx context.Context, dappID string) ([]*batch.ScheduledBatch, error) {
	var daos []ScheduledBatchDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("dapp_id = ?", dappID).
		OrderExpr("execution_time ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled batches: %w", err)
	}
	return toScheduledBatches(daos)
}

func (s *pgStore) ListDueScheduledBatches(ctx context.Context, now time.Time, limit int) ([]*batch.ScheduledBatch, error) {
	var daos []ScheduledBatchDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("status = ?", string(batch.StatusScheduled)).
		Where("execution_time <= ?", now).
		OrderExpr("execution_time ASC, id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list due scheduled batches: %w", err)
	}
	return toScheduledBatches(daos)
}

// TransitionScheduledBatch moves a definition from `from` to `to` if it is
// still in `from`.
func (s *pgStore) TransitionScheduledBatch(ctx context.Context, batchID string, from, to batch.Status) error {
	res, err := s.db.NewUpdate().
		Model((*ScheduledBatchDao)(nil)).
		Set("status = ?", string(to)).
		Where("batch_id = ?", batchID).
		Where("status = ?", string(from)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to transition scheduled batch %s: %w", batchID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if n == 1 {
		return nil
	}

	exists, err := s.db.NewSelect().
		Model((*ScheduledBatchDao)(nil)).
		Where("batch_id = ?", batchID).
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("failed to check scheduled batch exists: %w", err)
	}
	if !exists {
		return ErrScheduledBatchNotFound
	}
	return fmt.Errorf("%w: scheduled batch %s is not %s", ErrStatusConflict, batchID, from)
}

// UpsertAnalytics adds delta to the scope's counters, creating the row on
// first use. The average is recomputed from the resulting counters in the
// same statement.
func (s *pgStore) UpsertAnalytics(ctx context.Context, delta batch.AnalyticsDelta, now time.Time) (*batch.Analytics, error) {
	gasSaved := delta.GasSaved
	if gasSaved == nil {
		gasSaved = new(big.Int)
	}
	if gasSaved.Sign() < 0 || delta.Batches < 0 || delta.Transactions < 0 {
		return nil, fmt.Errorf("analytics delta for %s must not be negative", delta.DappID)
	}

	dao := &AnalyticsDao{
		DappID:            delta.DappID,
		TotalGasSaved:     gasSaved.String(),
		TotalBatches:      delta.Batches,
		TotalTransactions: delta.Transactions,
		AverageBatchSize:  batch.AverageBatchSize(delta.Transactions, delta.Batches),
		LastUpdated:       now,
	}

	err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (dapp_id) DO UPDATE").
		Set("total_gas_saved = ?TableAlias.total_gas_saved + EXCLUDED.total_gas_saved").
		Set("total_batches = ?TableAlias.total_batches + EXCLUDED.total_batches").
		Set("total_transactions = ?TableAlias.total_transactions + EXCLUDED.total_transactions").
		Set("average_batch_size = COALESCE(ROUND((?TableAlias.total_transactions + EXCLUDED.total_transactions)::numeric / " +
			"NULLIF(?TableAlias.total_batches + EXCLUDED.total_batches, 0), 4), 0)").
		Set("last_updated = EXCLUDED.last_updated").
		Returning("*").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert analytics for %s: %w", delta.DappID, err)
	}
	return toAnalytics(dao)
}

func (s *pgStore) GetAnalytics(ctx context.Context, dappID string) (*batch.Analytics, error) {
	dao := new(AnalyticsDao)
	err := s.db.NewSelect().
		Model(dao).
		Where("dapp_id = ?", dappID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAnalyticsNotFound
		}
		return nil, fmt.Errorf("failed to get analytics: %w", err)
	}
	return toAnalytics(dao)
}

func (s *pgStore) ListAnalytics(ctx context.Context) ([]*batch.Analytics, error) {
	var daos []AnalyticsDao
	if err := s.db.NewSelect().Model(&daos).Order("dapp_id").Scan(ctx); err != nil {
		return nil, fmt.Errorf("failed to list analytics: %w", err)
	}
	out := make([]*batch.Analytics, 0, len(daos))
	for i := range daos {
		a, err := toAnalytics(&daos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func toTransactions(daos []TransactionDao) ([]*batch.Transaction, error) {
	out := make([]*batch.Transaction, 0, len(daos))
	for i := range daos {
		tx, err := toTransaction(&daos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}

func toScheduledBatches(daos []ScheduledBatchDao) ([]*batch.ScheduledBatch, error) {
	out := make([]*batch.ScheduledBatch, 0, len(daos))
	for i := range daos {
		sb, err := toScheduledBatch(&daos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, sb)
	}
	return out, nil
}
