// Package batch defines the queued transfer, scheduled batch and analytics
// models together with the status state machine that governs them.
package batch

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultGasEstimate is used when the network cannot estimate a transfer.
const DefaultGasEstimate = 21000

// SavingsRate is the share of gas used credited as saved per executed batch.
// Gas used is approximated from stored estimates, not read from receipts.
var SavingsRate = decimal.RequireFromString("0.3")

var (
	ErrInvalidAmount    = errors.New("amount must be a positive integer")
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// Status is the lifecycle state of a queued transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusExecuting Status = "executing"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusScheduled, StatusExecuting},
	StatusScheduled: {StatusExecuting},
	StatusExecuting: {StatusCompleted, StatusFailed},
}

// CanTransition reports whether from -> to is a legal lifecycle step.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusExecuting, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Transaction is a single queued transfer. BatchID names the transfer itself,
// not a group of transfers.
type Transaction struct {
	BatchID      string
	UserAddress  common.Address
	ToAddress    common.Address
	Amount       *big.Int
	TokenAddress *common.Address // nil means native currency
	GasEstimate  *big.Int
	Status       Status
	ScheduledFor *time.Time
	CreatedAt    time.Time
	ExecutedAt   *time.Time
	TxHash       *string
	ErrorMessage *string
}

// GasOrDefault returns the stored estimate or DefaultGasEstimate.
func (t *Transaction) GasOrDefault() *big.Int {
	if t.GasEstimate == nil || t.GasEstimate.Sign() <= 0 {
		return big.NewInt(DefaultGasEstimate)
	}
	return new(big.Int).Set(t.GasEstimate)
}

// TokenKey returns the lower-cased token address, or "" for native transfers.
func (t *Transaction) TokenKey() string {
	if t.TokenAddress == nil {
		return ""
	}
	return strings.ToLower(t.TokenAddress.Hex())
}

// Frequency is the recurrence of a scheduled batch definition.
type Frequency string

const (
	FrequencyOnce    Frequency = "once"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// ParseFrequency validates a frequency string.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FrequencyOnce, FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidFrequency, s)
}

// NextOccurrence returns the execution time following from. The second
// return value is false for one-time definitions.
func (f Frequency) NextOccurrence(from time.Time) (time.Time, bool) {
	switch f {
	case FrequencyDaily:
		return from.AddDate(0, 0, 1), true
	case FrequencyWeekly:
		return from.AddDate(0, 0, 7), true
	case FrequencyMonthly:
		return from.AddDate(0, 1, 0), true
	default:
		return time.Time{}, false
	}
}

// ScheduledBatch is a one-time or recurring execution trigger for a scope.
// Once it leaves StatusScheduled the occurrence is final; recurrence creates
// a new definition.
type ScheduledBatch struct {
	BatchID          string
	DappID           string
	ExecutionTime    time.Time
	Frequency        Frequency
	Status           Status
	TransactionCount int
	EstimatedGas     *big.Int
	CreatedAt        time.Time
}

// Analytics is the per-scope accumulated counters row.
type Analytics struct {
	DappID            string
	TotalGasSaved     *big.Int
	TotalBatches      int64
	TotalTransactions int64
	AverageBatchSize  decimal.Decimal
	LastUpdated       time.Time
}

// EmptyAnalytics is the all-zero record reported for an unknown scope.
func EmptyAnalytics(dappID string) *Analytics {
	return &Analytics{
		DappID:           dappID,
		TotalGasSaved:    new(big.Int),
		AverageBatchSize: decimal.Zero,
	}
}

// AnalyticsDelta is added to a scope's counters after an execution.
type AnalyticsDelta struct {
	DappID       string
	GasSaved     *big.Int
	Batches      int64
	Transactions int64
}

// AverageBatchSize derives transactions/batches rounded to 4 places.
func AverageBatchSize(transactions, batches int64) decimal.Decimal {
	if batches == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(transactions).DivRound(decimal.NewFromInt(batches), 4)
}

// GlobalAnalytics aggregates every scope plus live transaction counts.
type GlobalAnalytics struct {
	TotalGasSaved       *big.Int
	TotalBatches        int64
	TotalTransactions   int64
	AverageBatchSize    decimal.Decimal
	Transactions24h     int64
	PendingTransactions int64
	Scopes              int
}

// GasSavedFor credits SavingsRate of gasUsed, floored.
func GasSavedFor(gasUsed *big.Int) *big.Int {
	if gasUsed == nil || gasUsed.Sign() <= 0 {
		return new(big.Int)
	}
	return decimal.NewFromBigInt(gasUsed, 0).Mul(SavingsRate).Floor().BigInt()
}

// MaxQuantityBits bounds every on-chain quantity to uint256.
const MaxQuantityBits = 256

// maxQuantityLen leaves room for 78 uint256 digits plus a sign and a ".0"
// style integral fraction.
const maxQuantityLen = 96

// ParseQuantity parses a non-negative integer that fits in uint256. Exponent
// notation is rejected so the input length bounds the work done.
func ParseQuantity(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxQuantityLen || strings.ContainsAny(s, "eE") {
		return nil, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}
	if !d.IsInteger() || d.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	v := d.BigInt()
	if v.BitLen() > MaxQuantityBits {
		return nil, ErrInvalidAmount
	}
	return v, nil
}

// ParseAmount parses a positive uint256 amount in the smallest unit without
// passing through floating point.
func ParseAmount(s string) (*big.Int, error) {
	v, err := ParseQuantity(s)
	if err != nil {
		return nil, err
	}
	if v.Sign() == 0 {
		return nil, ErrInvalidAmount
	}
	return v, nil
}

// NewBatchID returns batch_<unix millis>_<12 random hex chars>.
func NewBatchID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("batch_%d_%s", now.UnixMilli(), suffix)
}

// NewScheduleID returns schedule_<unix millis>_<12 random hex chars>.
func NewScheduleID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return fmt.Sprintf("schedule_%d_%s", now.UnixMilli(), suffix)
}
