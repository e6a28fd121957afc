package batchstore

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"

	"github.com/chainsafe/gas-batcher/pkg/batch"
)

// TransactionDao maps to the 'transaction_queue' table. Amounts are stored as
// numeric(78,0), wide enough for any uint256.
type TransactionDao struct {
	bun.BaseModel `bun:"table:transaction_queue,alias:tq"`
	ID            int64      `bun:"id,pk,autoincrement"`
	BatchID       string     `bun:"batch_id,unique,notnull,type:varchar(64)"`
	UserAddress   string     `bun:"user_address,notnull,type:varchar(42)"`
	ToAddress     string     `bun:"to_address,notnull,type:varchar(42)"`
	Amount        string     `bun:"amount,notnull,type:numeric(78,0)"`
	TokenAddress  *string    `bun:"token_address,type:varchar(42)"`
	GasEstimate   *string    `bun:"gas_estimate,type:numeric(78,0)"`
	Status        string     `bun:"status,notnull,type:varchar(16)"`
	ScheduledFor  *time.Time `bun:"scheduled_for,type:timestamptz"`
	CreatedAt     time.Time  `bun:"created_at,notnull,type:timestamptz,default:current_timestamp"`
	ExecutedAt    *time.Time `bun:"executed_at,type:timestamptz"`
	TxHash        *string    `bun:"tx_hash,type:varchar(66)"`
	ErrorMessage  *string    `bun:"error_message,type:text"`
}

// ScheduledBatchDao maps to the 'scheduled_batches' table.
type ScheduledBatchDao struct {
	bun.BaseModel    `bun:"table:scheduled_batches,alias:sb"`
	ID               int64     `bun:"id,pk,autoincrement"`
	BatchID          string    `bun:"batch_id,unique,notnull,type:varchar(64)"`
	DappID           string    `bun:"dapp_id,notnull,type:varchar(128)"`
	ExecutionTime    time.Time `bun:"execution_time,notnull,type:timestamptz"`
	Frequency        string    `bun:"frequency,notnull,type:varchar(16)"`
	Status           string    `bun:"status,notnull,type:varchar(16)"`
	TransactionCount int       `bun:"transaction_count,notnull,default:0"`
	EstimatedGas     string    `bun:"estimated_gas,notnull,type:numeric(78,0),default:0"`
	CreatedAt        time.Time `bun:"created_at,notnull,type:timestamptz,default:current_timestamp"`
}

// AnalyticsDao maps to the 'batch_analytics' table, one row per scope.
type AnalyticsDao struct {
	bun.BaseModel     `bun:"table:batch_analytics,alias:ba"`
	DappID            string          `bun:"dapp_id,pk,type:varchar(128)"`
	TotalGasSaved     string          `bun:"total_gas_saved,notnull,type:numeric(78,0),default:0"`
	TotalBatches      int64           `bun:"total_batches,notnull,default:0"`
	TotalTransactions int64           `bun:"total_transactions,notnull,default:0"`
	AverageBatchSize  decimal.Decimal `bun:"average_batch_size,notnull,type:numeric(20,4),default:0"`
	LastUpdated       time.Time       `bun:"last_updated,notnull,type:timestamptz,default:current_timestamp"`
}

func toTransactionDao(tx *batch.Transaction) *TransactionDao {
	dao := &TransactionDao{
		BatchID:      tx.BatchID,
		UserAddress:  tx.UserAddress.Hex(),
		ToAddress:    tx.ToAddress.Hex(),
		Amount:       tx.Amount.String(),
		Status:       string(tx.Status),
		ScheduledFor: tx.ScheduledFor,
		CreatedAt:    tx.CreatedAt,
		ExecutedAt:   tx.ExecutedAt,
		TxHash:       tx.TxHash,
		ErrorMessage: tx.ErrorMessage,
	}
	if tx.TokenAddress != nil {
		token := tx.TokenAddress.Hex()
		dao.TokenAddress = &token
	}
	if tx.GasEstimate != nil {
		gas := tx.GasEstimate.String()
		dao.GasEstimate = &gas
	}
	return dao
}

func toTransaction(dao *TransactionDao) (*batch.Transaction, error) {
	amount, err := parseBig(dao.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %s amount: %w", dao.BatchID, err)
	}
	tx := &batch.Transaction{
		BatchID:      dao.BatchID,
		UserAddress:  common.HexToAddress(dao.UserAddress),
		ToAddress:    common.HexToAddress(dao.ToAddress),
		Amount:       amount,
		Status:       batch.Status(dao.Status),
		ScheduledFor: dao.ScheduledFor,
		CreatedAt:    dao.CreatedAt,
		ExecutedAt:   dao.ExecutedAt,
		TxHash:       dao.TxHash,
		ErrorMessage: dao.ErrorMessage,
	}
	if dao.TokenAddress != nil {
		token := common.HexToAddress(*dao.TokenAddress)
		tx.TokenAddress = &token
	}
	if dao.GasEstimate != nil {
		gas, err := parseBig(*dao.GasEstimate)
		if err != nil {
			return nil, fmt.Errorf("transaction %s gas estimate: %w", dao.BatchID, err)
		}
		tx.GasEstimate = gas
	}
	return tx, nil
}

func toScheduledBatchDao(s *batch.ScheduledBatch) *ScheduledBatchDao {
	gas := "0"
	if s.EstimatedGas != nil {
		gas = s.EstimatedGas.String()
	}
	return &ScheduledBatchDao{
		BatchID:          s.BatchID,
		DappID:           s.DappID,
		ExecutionTime:    s.ExecutionTime,
		Frequency:        string(s.Frequency),
		Status:           string(s.Status),
		TransactionCount: s.TransactionCount,
		EstimatedGas:     gas,
		CreatedAt:        s.CreatedAt,
	}
}

func toScheduledBatch(dao *ScheduledBatchDao) (*batch.ScheduledBatch, error) {
	gas, err := parseBig(dao.EstimatedGas)
	if err != nil {
		return nil, fmt.Errorf("scheduled batch %s estimated gas: %w", dao.BatchID, err)
	}
	return &batch.ScheduledBatch{
		BatchID:          dao.BatchID,
		DappID:           dao.DappID,
		ExecutionTime:    dao.ExecutionTime,
		Frequency:        batch.Frequency(dao.Frequency),
		Status:           batch.Status(dao.Status),
		TransactionCount: dao.TransactionCount,
		EstimatedGas:     gas,
		CreatedAt:        dao.CreatedAt,
	}, nil
}

func toAnalytics(dao *AnalyticsDao) (*batch.Analytics, error) {
	saved, err := parseBig(dao.TotalGasSaved)
	if err != nil {
		return nil, fmt.Errorf("analytics %s gas saved: %w", dao.DappID, err)
	}
	return &batch.Analytics{
		DappID:            dao.DappID,
		TotalGasSaved:     saved,
		TotalBatches:      dao.TotalBatches,
		TotalTransactions: dao.TotalTransactions,
		AverageBatchSize:  dao.AverageBatchSize,
		LastUpdated:       dao.LastUpdated,
	}, nil
}

// parseBig reads a numeric column. Postgres may render numeric(78,0) with a
// trailing ".0" scale depending on driver settings, so decimal does the parsing.
func parseBig(s string) (*big.Int, error) {
	if s == "" {
		return new(big.Int), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, err
	}
	if !d.IsInteger() {
		return nil, fmt.Errorf("non-integer value %q", s)
	}
	return d.BigInt(), nil
}
