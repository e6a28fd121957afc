package batch

import (
	"bytes"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// AmountString is an integer amount that arrives either as a JSON string or a
// bare JSON number. It is kept as text so large values never pass through float64.
type AmountString string

// UnmarshalJSON accepts "123" and 123.
func (a *AmountString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = AmountString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = AmountString(n.String())
	return nil
}

// EnqueueRequest is the body of POST /batch.
type EnqueueRequest struct {
	UserAddress  string       `json:"userAddress" validate:"required,eth_addr"`
	ToAddress    string       `json:"toAddress" validate:"required,eth_addr"`
	Amount       AmountString `json:"amount" validate:"required"`
	TokenAddress *string      `json:"tokenAddress,omitempty" validate:"omitempty,eth_addr"`
	ScheduledFor *time.Time   `json:"scheduledFor,omitempty"`
	DappID       string       `json:"dappId,omitempty"`
}

// ExecuteRequest is the body of POST /batch/execute.
type ExecuteRequest struct {
	BatchID string `json:"batchId" validate:"required"`
	DappID  string `json:"dappId,omitempty"`
}

// ExecuteBatchRequest executes several queued transfers as one batch.
type ExecuteBatchRequest struct {
	BatchIDs []string `json:"batchIds" validate:"required,min=1,dive,required"`
	DappID   string   `json:"dappId,omitempty"`
}

// ScheduleRequest is the body of POST /batch/schedule.
type ScheduleRequest struct {
	DappID           string    `json:"dappId" validate:"required"`
	ExecutionTime    time.Time `json:"executionTime" validate:"required"`
	Frequency        string    `json:"frequency" validate:"required,oneof=once daily weekly monthly"`
	TransactionCount int       `json:"transactionCount" validate:"min=0"`
	EstimatedGas     string    `json:"estimatedGas,omitempty"`
}

// AutoProcessRequest overrides the configured auto-process thresholds.
type AutoProcessRequest struct {
	MaxBatchSize        int    `json:"maxBatchSize,omitempty" validate:"min=0"`
	MinTransactionCount int    `json:"minTransactionCount,omitempty" validate:"min=0"`
	DappID              string `json:"dappId,omitempty"`
}

// AutoProcessConfig overrides the configured thresholds for one AutoProcess
// run. Zero fields fall back to the service configuration.
type AutoProcessConfig struct {
	MaxBatchSize        int
	MinTransactionCount int
	DappID              string
}

// Group is a set of queued transfers sharing recipient and token.
type Group struct {
	Recipient    common.Address
	Token        *common.Address
	Transactions []*Transaction
	TotalAmount  *big.Int
}

// Outcome reports what happened to one transfer inside an execution.
type Outcome struct {
	BatchID string `json:"batchId"`
	Status  Status `json:"status"`
	TxHash  string `json:"txHash,omitempty"`
	Error   string `json:"error,omitempty"`
}

// ExecutionResult summarizes ExecuteOne or ExecuteBatch. GasUsed is derived
// from stored estimates, which GasUsedSimulated makes explicit.
type ExecutionResult struct {
	TxHash           string
	GasUsed          *big.Int
	GasSaved         *big.Int
	GasUsedSimulated bool
	Attempted        int
	Succeeded        int
	Outcomes         []Outcome
}

// AutoProcessResult summarizes one AutoProcess invocation.
type AutoProcessResult struct {
	Processed      bool
	Reason         string
	PendingCount   int
	GroupsExecuted int
	GroupsSkipped  int
	Executions     []*ExecutionResult
}

// ScheduleRunResult summarizes one pass over due scheduled batches.
type ScheduleRunResult struct {
	Due       int
	Completed int
	Failed    int
	Skipped   int
	Created   []string
}

// TransactionView is the JSON form of a Transaction; big integers are decimal strings.
type TransactionView struct {
	BatchID      string     `json:"batchId"`
	UserAddress  string     `json:"userAddress"`
	ToAddress    string     `json:"toAddress"`
	Amount       string     `json:"amount"`
	TokenAddress *string    `json:"tokenAddress"`
	GasEstimate  *string    `json:"gasEstimate"`
	Status       Status     `json:"status"`
	ScheduledFor *time.Time `json:"scheduledFor"`
	CreatedAt    time.Time  `json:"createdAt"`
	ExecutedAt   *time.Time `json:"executedAt"`
	TxHash       *string    `json:"txHash"`
	ErrorMessage *string    `json:"errorMessage"`
}

// NewTransactionView converts t for rendering.
func NewTransactionView(t *Transaction) TransactionView {
	v := TransactionView{
		BatchID:      t.BatchID,
		UserAddress:  t.UserAddress.Hex(),
		ToAddress:    t.ToAddress.Hex(),
		Amount:       bigString(t.Amount),
		Status:       t.Status,
		ScheduledFor: t.ScheduledFor,
		CreatedAt:    t.CreatedAt,
		ExecutedAt:   t.ExecutedAt,
		TxHash:       t.TxHash,
		ErrorMessage: t.ErrorMessage,
	}
	if t.TokenAddress != nil {
		token := t.TokenAddress.Hex()
		v.TokenAddress = &token
	}
	if t.GasEstimate != nil {
		gas := t.GasEstimate.String()
		v.GasEstimate = &gas
	}
	return v
}

// ScheduledBatchView is the JSON form of a ScheduledBatch.
type ScheduledBatchView struct {
	BatchID          string    `json:"batchId"`
	DappID           string    `json:"dappId"`
	ExecutionTime    time.Time `json:"executionTime"`
	Frequency        Frequency `json:"frequency"`
	Status           Status    `json:"status"`
	TransactionCount int       `json:"transactionCount"`
	EstimatedGas     string    `json:"estimatedGas"`
	CreatedAt        time.Time `json:"createdAt"`
}

// NewScheduledBatchView converts s for rendering.
func NewScheduledBatchView(s *ScheduledBatch) ScheduledBatchView {
	return ScheduledBatchView{
		BatchID:          s.BatchID,
		DappID:           s.DappID,
		ExecutionTime:    s.ExecutionTime,
		Frequency:        s.Frequency,
		Status:           s.Status,
		TransactionCount: s.TransactionCount,
		EstimatedGas:     bigString(s.EstimatedGas),
		CreatedAt:        s.CreatedAt,
	}
}

// AnalyticsView is the JSON form of Analytics.
type AnalyticsView struct {
	DappID            string     `json:"dappId"`
	TotalGasSaved     string     `json:"totalGasSaved"`
	TotalBatches      int64      `json:"totalBatches"`
	TotalTransactions int64      `json:"totalTransactions"`
	AverageBatchSize  string     `json:"averageBatchSize"`
	LastUpdated       *time.Time `json:"lastUpdated"`
}

// NewAnalyticsView converts a for rendering.
func NewAnalyticsView(a *Analytics) AnalyticsView {
	v := AnalyticsView{
		DappID:            a.DappID,
		TotalGasSaved:     bigString(a.TotalGasSaved),
		TotalBatches:      a.TotalBatches,
		TotalTransactions: a.TotalTransactions,
		AverageBatchSize:  a.AverageBatchSize.String(),
	}
	if !a.LastUpdated.IsZero() {
		last := a.LastUpdated
		v.LastUpdated = &last
	}
	return v
}

// GlobalAnalyticsView is the JSON form of GlobalAnalytics.
type GlobalAnalyticsView struct {
	TotalGasSaved       string `json:"totalGasSaved"`
	TotalBatches        int64  `json:"totalBatches"`
	TotalTransactions   int64  `json:"totalTransactions"`
	AverageBatchSize    string `json:"averageBatchSize"`
	Transactions24h     int64  `json:"transactions24h"`
	PendingTransactions int64  `json:"pendingTransactions"`
	Scopes              int    `json:"scopes"`
}

// NewGlobalAnalyticsView converts g for rendering.
func NewGlobalAnalyticsView(g *GlobalAnalytics) GlobalAnalyticsView {
	return GlobalAnalyticsView{
		TotalGasSaved:       bigString(g.TotalGasSaved),
		TotalBatches:        g.TotalBatches,
		TotalTransactions:   g.TotalTransactions,
		AverageBatchSize:    g.AverageBatchSize.String(),
		Transactions24h:     g.Transactions24h,
		PendingTransactions: g.PendingTransactions,
		Scopes:              g.Scopes,
	}
}

func bigString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
