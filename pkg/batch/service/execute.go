package service

import (
	"context"
	"errors"
	"math/big"
	"sort"

	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/internal/metrics"
	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
	"github.com/chainsafe/gas-batcher/pkg/signer"
)

var claimable = []batch.Status{batch.StatusPending, batch.StatusScheduled}

// ExecuteOne claims a single transaction, sends it and records the outcome.
// Exactly one of several concurrent callers wins the claim; the rest get a
// conflict without reaching the signer.
func (s *batchService) ExecuteOne(ctx context.Context, batchID, scope string) (*batch.ExecutionResult, error) {
	if batchID == "" {
		return nil, apperrors.BadRequestError(nil, "batchId is required")
	}
	if s.signer == nil {
		return nil, errNoWallet
	}
	tx, err := s.store.GetTransaction(ctx, batchID)
	if err != nil {
		return nil, s.transitionError(batchID, err)
	}
	if tx.Status.IsTerminal() {
		return nil, apperrors.ConflictError(batchstore.ErrStatusConflict, "transaction "+batchID+" is already "+string(tx.Status))
	}

	claimed, err := s.store.TransitionStatus(ctx, batchID, claimable, batch.StatusExecuting, batchstore.TransitionOptions{})
	if err != nil {
		return nil, s.transitionError(batchID, err)
	}

	out := s.send(ctx, claimed)
	metrics.BatchSize.Observe(1)
	if out.Status != batch.StatusCompleted {
		return nil, apperrors.ExecutionError(errors.New(out.Error), "transaction execution failed")
	}

	gasUsed := claimed.GasOrDefault()
	saved := batch.GasSavedFor(gasUsed)
	s.recordAnalytics(ctx, batch.AnalyticsDelta{
		DappID:       s.scope(scope),
		GasSaved:     saved,
		Batches:      1,
		Transactions: 1,
	})
	return &batch.ExecutionResult{
		TxHash:           out.TxHash,
		GasUsed:          gasUsed,
		GasSaved:         saved,
		GasUsedSimulated: true,
		Attempted:        1,
		Succeeded:        1,
		Outcomes:         []batch.Outcome{out},
	}, nil
}

// ExecuteBatch loads batchIDs and executes them as one batch.
func (s *batchService) ExecuteBatch(ctx context.Context, batchIDs []string, scope string) (*batch.ExecutionResult, error) {
	if len(batchIDs) == 0 {
		return nil, apperrors.BadRequestError(nil, "batchIds are required")
	}
	if s.signer == nil {
		return nil, errNoWallet
	}
	seen := make(map[string]struct{}, len(batchIDs))
	txs := make([]*batch.Transaction, 0, len(batchIDs))
	for _, id := range batchIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		tx, err := s.store.GetTransaction(ctx, id)
		if err != nil {
			return nil, s.transitionError(id, err)
		}
		txs = append(txs, tx)
	}
	return s.executeTransactions(ctx, txs, s.scope(scope))
}

// executeTransactions claims every transaction it can, sends each claimed one
// independently and credits the batch once. Transactions lost to another
// caller are reported as skipped. Per-record failures never fail the call;
// TxHash is empty when nothing succeeded.
func (s *batchService) executeTransactions(ctx context.Context, txs []*batch.Transaction, scope string) (*batch.ExecutionResult, error) {
	if len(txs) == 0 {
		return nil, apperrors.BadRequestError(nil, "no transactions to execute")
	}
	if s.signer == nil {
		return nil, errNoWallet
	}

	result := &batch.ExecutionResult{GasUsed: new(big.Int), GasSaved: new(big.Int), GasUsedSimulated: true}
	claimed := make([]*batch.Transaction, 0, len(txs))
	for _, tx := range txs {
		c, err := s.store.TransitionStatus(ctx, tx.BatchID, claimable, batch.StatusExecuting, batchstore.TransitionOptions{})
		if err != nil {
			reason := "skipped: status changed"
			if errors.Is(err, batchstore.ErrStatusConflict) {
				metrics.StatusConflicts.Inc()
			} else {
				reason = "skipped: claim failed"
				s.logger.Error("failed to claim transaction", zap.String("batch_id", tx.BatchID), zap.Error(err))
			}
			result.Outcomes = append(result.Outcomes, batch.Outcome{BatchID: tx.BatchID, Status: tx.Status, Error: reason})
			continue
		}
		claimed = append(claimed, c)
	}
	if len(claimed) == 0 {
		return nil, apperrors.ConflictError(batchstore.ErrStatusConflict, "no transaction in the batch could be claimed")
	}

	for _, tx := range claimed {
		out := s.send(ctx, tx)
		result.Outcomes = append(result.Outcomes, out)
		result.Attempted++
		result.GasUsed.Add(result.GasUsed, tx.GasOrDefault())
		if out.Status == batch.StatusCompleted {
			result.Succeeded++
			if result.TxHash == "" {
				result.TxHash = out.TxHash
			}
		}
	}
	metrics.BatchSize.Observe(float64(result.Attempted))
	if result.Succeeded == 0 {
		s.logger.Warn("every transaction in the batch failed",
			zap.String("dapp_id", scope),
			zap.Int("attempted", result.Attempted))
	}

	// Credited over every attempted transaction, failed ones included.
	result.GasSaved = batch.GasSavedFor(result.GasUsed)
	s.recordAnalytics(ctx, batch.AnalyticsDelta{
		DappID:       scope,
		GasSaved:     result.GasSaved,
		Batches:      1,
		Transactions: int64(result.Attempted),
	})
	return result, nil
}

// send hands a claimed transaction to the signer and writes the terminal status.
func (s *batchService) send(ctx context.Context, tx *batch.Transaction) batch.Outcome {
	hash, sendErr := s.signer.SendTransaction(ctx, signer.Transfer{
		To:     tx.ToAddress,
		Amount: tx.Amount,
		Token:  tx.TokenAddress,
	})

	if sendErr != nil {
		msg := sendErr.Error()
		if _, err := s.store.TransitionStatus(ctx, tx.BatchID,
			[]batch.Status{batch.StatusExecuting}, batch.StatusFailed,
			batchstore.TransitionOptions{ErrorMessage: &msg}); err != nil {
			s.logger.Error("failed to mark transaction failed", zap.String("batch_id", tx.BatchID), zap.Error(err))
		}
		metrics.TransactionsExecuted.WithLabelValues(string(batch.StatusFailed)).Inc()
		s.logger.Warn("transaction execution failed", zap.String("batch_id", tx.BatchID), zap.Error(sendErr))
		return batch.Outcome{BatchID: tx.BatchID, Status: batch.StatusFailed, Error: msg}
	}

	executedAt := s.now().UTC()
	if _, err := s.store.TransitionStatus(ctx, tx.BatchID,
		[]batch.Status{batch.StatusExecuting}, batch.StatusCompleted,
		batchstore.TransitionOptions{ExecutedAt: &executedAt, TxHash: &hash}); err != nil {
		// the transfer is on the wire; the record stays executing for an operator to reconcile
		s.logger.Error("failed to mark transaction completed",
			zap.String("batch_id", tx.BatchID),
			zap.String("tx_hash", hash),
			zap.Error(err))
	}
	metrics.TransactionsExecuted.WithLabelValues(string(batch.StatusCompleted)).Inc()
	return batch.Outcome{BatchID: tx.BatchID, Status: batch.StatusCompleted, TxHash: hash}
}

// AutoProcess executes every recipient/token group of the ready queue that
// reaches the minimum size. With fewer ready transactions than the minimum it
// changes nothing.
func (s *batchService) AutoProcess(ctx context.Context, cfg batch.AutoProcessConfig) (*batch.AutoProcessResult, error) {
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = s.cfg.MaxBatchSize
	}
	if cfg.MinTransactionCount <= 0 {
		cfg.MinTransactionCount = s.cfg.MinTransactionCount
	}
	if cfg.MinTransactionCount > cfg.MaxBatchSize {
		return nil, apperrors.BadRequestError(nil, "minTransactionCount cannot exceed maxBatchSize")
	}
	scope := s.scope(cfg.DappID)

	pending, err := s.store.ListPendingTransactions(ctx, s.now().UTC(), cfg.MaxBatchSize)
	if err != nil {
		metrics.AutoProcessRuns.WithLabelValues("error").Inc()
		return nil, apperrors.GeneralError(err)
	}
	metrics.PendingTransactions.Set(float64(len(pending)))

	result := &batch.AutoProcessResult{PendingCount: len(pending)}
	if len(pending) < cfg.MinTransactionCount {
		result.Reason = "not enough pending transactions"
		metrics.AutoProcessRuns.WithLabelValues("skipped").Inc()
		return result, nil
	}
	if s.signer == nil {
		metrics.AutoProcessRuns.WithLabelValues("error").Inc()
		return nil, errNoWallet
	}

	for _, g := range Optimize(pending) {
		if len(g.Transactions) < cfg.MinTransactionCount {
			result.GroupsSkipped++
			continue
		}
		exec, err := s.executeTransactions(ctx, g.Transactions, scope)
		if exec != nil {
			result.Executions = append(result.Executions, exec)
		}
		if err != nil {
			s.logger.Warn("auto-process group failed",
				zap.String("recipient", g.Recipient.Hex()),
				zap.Int("size", len(g.Transactions)),
				zap.Error(err))
			continue
		}
		result.GroupsExecuted++
	}

	result.Processed = result.GroupsExecuted > 0
	if !result.Processed {
		result.Reason = "no group reached the minimum size"
		if result.GroupsSkipped == 0 {
			result.Reason = "no group executed successfully"
		}
	}
	metrics.AutoProcessRuns.WithLabelValues(autoProcessLabel(result)).Inc()
	return result, nil
}

func autoProcessLabel(r *batch.AutoProcessResult) string {
	if r.Processed {
		return "processed"
	}
	return "skipped"
}

// Optimize partitions txs by recipient and token, largest total amount first.
// Groups with equal totals keep the order in which they first appear.
func Optimize(txs []*batch.Transaction) []batch.Group {
	type key struct {
		recipient string
		token     string
	}
	index := make(map[key]int)
	var groups []batch.Group
	for _, tx := range txs {
		k := key{recipient: tx.ToAddress.Hex(), token: tx.TokenKey()}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, batch.Group{
				Recipient:   tx.ToAddress,
				Token:       tx.TokenAddress,
				TotalAmount: new(big.Int),
			})
		}
		groups[i].Transactions = append(groups[i].Transactions, tx)
		if tx.Amount != nil {
			groups[i].TotalAmount.Add(groups[i].TotalAmount, tx.Amount)
		}
	}
	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].TotalAmount.Cmp(groups[b].TotalAmount) > 0
	})
	return groups
}
