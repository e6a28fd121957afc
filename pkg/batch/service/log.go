package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/network"
)

const serviceName = "BatchService"

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the batch Service.
// It logs method entry/exit, duration and errors.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) started(method string, fields ...zap.Field) time.Time {
	ls.logger.Debug(method+" started", append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
	}, fields...)...)
	return time.Now()
}

func (ls *logService) finished(method string, start time.Time, err error, fields ...zap.Field) {
	fields = append([]zap.Field{
		zap.String("service", serviceName),
		zap.String("method", method),
		zap.Duration("duration", time.Since(start)),
	}, fields...)
	if err != nil {
		ls.logger.Error(method+" failed", append(fields, zap.Error(err))...)
		return
	}
	ls.logger.Info(method+" completed", fields...)
}

// Enqueue wraps the service method with logging
func (ls *logService) Enqueue(ctx context.Context, req *batch.EnqueueRequest) (batchID string, err error) {
	var fields []zap.Field
	if req != nil {
		fields = append(fields,
			zap.String("user_address", req.UserAddress),
			zap.String("to_address", req.ToAddress),
			zap.String("amount", string(req.Amount)))
	}
	start := ls.started("Enqueue", fields...)
	defer func() {
		ls.finished("Enqueue", start, err, zap.String("batch_id", batchID))
	}()
	return ls.svc.Enqueue(ctx, req)
}

// Schedule wraps the service method with logging
func (ls *logService) Schedule(ctx context.Context, batchID string, at time.Time) (tx *batch.Transaction, err error) {
	start := ls.started("Schedule", zap.String("batch_id", batchID), zap.Time("scheduled_for", at))
	defer func() {
		ls.finished("Schedule", start, err, zap.String("batch_id", batchID))
	}()
	return ls.svc.Schedule(ctx, batchID, at)
}

// ComputeSavings wraps the service method with logging
func (ls *logService) ComputeSavings(ctx context.Context, txs []*batch.Transaction) (res *network.BatchSavings, err error) {
	start := ls.started("ComputeSavings", zap.Int("transactions", len(txs)))
	defer func() {
		ls.finished("ComputeSavings", start, err)
	}()
	return ls.svc.ComputeSavings(ctx, txs)
}

// ExecuteOne wraps the service method with logging
func (ls *logService) ExecuteOne(ctx context.Context, batchID, scope string) (res *batch.ExecutionResult, err error) {
	start := ls.started("ExecuteOne", zap.String("batch_id", batchID), zap.String("dapp_id", scope))
	defer func() {
		fields := []zap.Field{zap.String("batch_id", batchID)}
		if res != nil {
			fields = append(fields, zap.String("tx_hash", res.TxHash))
		}
		ls.finished("ExecuteOne", start, err, fields...)
	}()
	return ls.svc.ExecuteOne(ctx, batchID, scope)
}

// ExecuteBatch wraps the service method with logging
func (ls *logService) ExecuteBatch(ctx context.Context, batchIDs []string, scope string) (res *batch.ExecutionResult, err error) {
	start := ls.started("ExecuteBatch", zap.Strings("batch_ids", batchIDs), zap.String("dapp_id", scope))
	defer func() {
		var fields []zap.Field
		if res != nil {
			fields = append(fields,
				zap.Int("attempted", res.Attempted),
				zap.Int("succeeded", res.Succeeded),
				zap.String("tx_hash", res.TxHash))
		}
		ls.finished("ExecuteBatch", start, err, fields...)
	}()
	return ls.svc.ExecuteBatch(ctx, batchIDs, scope)
}

// AutoProcess wraps the service method with logging
func (ls *logService) AutoProcess(ctx context.Context, cfg batch.AutoProcessConfig) (res *batch.AutoProcessResult, err error) {
	start := ls.started("AutoProcess",
		zap.Int("max_batch_size", cfg.MaxBatchSize),
		zap.Int("min_transaction_count", cfg.MinTransactionCount),
		zap.String("dapp_id", cfg.DappID))
	defer func() {
		var fields []zap.Field
		if res != nil {
			fields = append(fields,
				zap.Bool("processed", res.Processed),
				zap.Int("pending", res.PendingCount),
				zap.Int("groups_executed", res.GroupsExecuted),
				zap.Int("groups_skipped", res.GroupsSkipped))
		}
		ls.finished("AutoProcess", start, err, fields...)
	}()
	return ls.svc.AutoProcess(ctx, cfg)
}

// CreateScheduledBatch wraps the service method with logging
func (ls *logService) CreateScheduledBatch(ctx context.Context, req *batch.ScheduleRequest) (sb *batch.ScheduledBatch, err error) {
	start := ls.started("CreateScheduledBatch")
	defer func() {
		var fields []zap.Field
		if sb != nil {
			fields = append(fields,
				zap.String("batch_id", sb.BatchID),
				zap.String("dapp_id", sb.DappID),
				zap.String("frequency", string(sb.Frequency)),
				zap.Time("execution_time", sb.ExecutionTime))
		}
		ls.finished("CreateScheduledBatch", start, err, fields...)
	}()
	return ls.svc.CreateScheduledBatch(ctx, req)
}

// ListScheduledBatches is not logged; it is a read.
func (ls *logService) ListScheduledBatches(ctx context.Context, dappID string) ([]*batch.ScheduledBatch, error) {
	return ls.svc.ListScheduledBatches(ctx, dappID)
}

// RunDueSchedules wraps the service method with logging
func (ls *logService) RunDueSchedules(ctx context.Context, now time.Time) (res *batch.ScheduleRunResult, err error) {
	start := ls.started("RunDueSchedules", zap.Time("now", now))
	defer func() {
		var fields []zap.Field
		if res != nil {
			fields = append(fields,
				zap.Int("due", res.Due),
				zap.Int("completed", res.Completed),
				zap.Int("failed", res.Failed),
				zap.Int("skipped", res.Skipped),
				zap.Strings("created", res.Created))
		}
		ls.finished("RunDueSchedules", start, err, fields...)
	}()
	return ls.svc.RunDueSchedules(ctx, now)
}

func (ls *logService) HasWallet() bool {
	return ls.svc.HasWallet()
}
