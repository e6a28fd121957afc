package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
)

// CreateScheduledBatch stores a one-time or recurring trigger for a scope.
func (s *batchService) CreateScheduledBatch(ctx context.Context, req *batch.ScheduleRequest) (*batch.ScheduledBatch, error) {
	if req == nil {
		return nil, apperrors.BadRequestError(nil, "request body is required")
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, validationError(err)
	}
	freq, err := batch.ParseFrequency(req.Frequency)
	if err != nil {
		return nil, apperrors.BadRequestError(err, err.Error())
	}
	now := s.now().UTC()
	if !req.ExecutionTime.After(now) {
		return nil, apperrors.BadRequestError(nil, "executionTime must be in the future")
	}
	gas := new(big.Int)
	if req.EstimatedGas != "" {
		v, err := batch.ParseQuantity(req.EstimatedGas)
		if err != nil {
			return nil, apperrors.BadRequestError(err, "estimatedGas must be a non-negative integer")
		}
		gas = v
	}

	sb := &batch.ScheduledBatch{
		BatchID:          batch.NewScheduleID(now),
		DappID:           req.DappID,
		ExecutionTime:    req.ExecutionTime.UTC(),
		Frequency:        freq,
		Status:           batch.StatusScheduled,
		TransactionCount: req.TransactionCount,
		EstimatedGas:     gas,
		CreatedAt:        now,
	}
	if err := s.store.CreateScheduledBatch(ctx, sb); err != nil {
		return nil, apperrors.GeneralError(fmt.Errorf("failed to store scheduled batch: %w", err))
	}
	return sb, nil
}

// ListScheduledBatches returns the definitions of a scope.
func (s *batchService) ListScheduledBatches(ctx context.Context, dappID string) ([]*batch.ScheduledBatch, error) {
	list, err := s.store.ListScheduledBatches(ctx, s.scope(dappID))
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	return list, nil
}

// RunDueSchedules runs AutoProcess once for every due definition, marks the
// occurrence completed or failed, and materialises the next occurrence of
// recurring definitions. Occurrences missed while the process was down are
// skipped rather than replayed.
func (s *batchService) RunDueSchedules(ctx context.Context, now time.Time) (*batch.ScheduleRunResult, error) {
	due, err := s.store.ListDueScheduledBatches(ctx, now, s.cfg.DueScheduleLimit)
	if err != nil {
		return nil, apperrors.GeneralError(err)
	}
	result := &batch.ScheduleRunResult{Due: len(due)}

	for _, sb := range due {
		err := s.store.TransitionScheduledBatch(ctx, sb.BatchID, batch.StatusScheduled, batch.StatusExecuting)
		if err != nil {
			if !errors.Is(err, batchstore.ErrStatusConflict) {
				s.logger.Error("failed to claim scheduled batch", zap.String("batch_id", sb.BatchID), zap.Error(err))
			}
			result.Skipped++
			continue
		}

		final := batch.StatusCompleted
		run, runErr := s.AutoProcess(ctx, batch.AutoProcessConfig{DappID: sb.DappID})
		if runErr != nil {
			final = batch.StatusFailed
			s.logger.Warn("scheduled batch failed", zap.String("batch_id", sb.BatchID), zap.Error(runErr))
		} else {
			s.logger.Info("scheduled batch ran",
				zap.String("batch_id", sb.BatchID),
				zap.String("dapp_id", sb.DappID),
				zap.Bool("processed", run.Processed),
				zap.Int("groups_executed", run.GroupsExecuted))
		}

		if err := s.store.TransitionScheduledBatch(ctx, sb.BatchID, batch.StatusExecuting, final); err != nil {
			s.logger.Error("failed to finish scheduled batch", zap.String("batch_id", sb.BatchID), zap.Error(err))
		}
		if final == batch.StatusCompleted {
			result.Completed++
		} else {
			result.Failed++
		}

		next, ok := nextOccurrence(sb, now)
		if !ok {
			continue
		}
		if err := s.store.CreateScheduledBatch(ctx, next); err != nil {
			s.logger.Error("failed to create next occurrence", zap.String("batch_id", sb.BatchID), zap.Error(err))
			continue
		}
		result.Created = append(result.Created, next.BatchID)
	}
	return result, nil
}

func nextOccurrence(sb *batch.ScheduledBatch, now time.Time) (*batch.ScheduledBatch, bool) {
	at, ok := sb.Frequency.NextOccurrence(sb.ExecutionTime)
	if !ok {
		return nil, false
	}
	for !at.After(now) {
		at, _ = sb.Frequency.NextOccurrence(at)
	}
	gas := new(big.Int)
	if sb.EstimatedGas != nil {
		gas.Set(sb.EstimatedGas)
	}
	return &batch.ScheduledBatch{
		BatchID:          batch.NewScheduleID(now),
		DappID:           sb.DappID,
		ExecutionTime:    at,
		Frequency:        sb.Frequency,
		Status:           batch.StatusScheduled,
		TransactionCount: sb.TransactionCount,
		EstimatedGas:     gas,
		CreatedAt:        now.UTC(),
	}, true
}
