package network

import (
	"context"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// BatchOverheadGas is the flat overhead added to a synthetic batch.
	BatchOverheadGas = 21000
	gwei             = 1_000_000_000
)

var minGasPrice = big.NewInt(gwei)

// GasRecommendation is a fixed 5% discount on the node's price, floored at
// 1 gwei. It does not look at congestion.
type GasRecommendation struct {
	Current     *big.Int        `json:"current"`
	Recommended *big.Int        `json:"recommended"`
	SavingsPct  decimal.Decimal `json:"savingsPercent"`
}

// RecommendGasPrice applies the discount heuristic to current.
func RecommendGasPrice(current *big.Int) GasRecommendation {
	if current == nil {
		current = new(big.Int)
	}
	rec := new(big.Int).Mul(current, big.NewInt(95))
	rec.Quo(rec, big.NewInt(100))
	if rec.Cmp(minGasPrice) < 0 {
		rec.Set(minGasPrice)
	}

	pct := decimal.Zero
	if current.Sign() > 0 {
		cur := decimal.NewFromBigInt(current, 0)
		pct = cur.Sub(decimal.NewFromBigInt(rec, 0)).Div(cur).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return GasRecommendation{
		Current:     new(big.Int).Set(current),
		Recommended: rec,
		SavingsPct:  pct,
	}
}

// OptimizeGasPrice fetches the current price and applies RecommendGasPrice.
func (c *Client) OptimizeGasPrice(ctx context.Context) (*GasRecommendation, error) {
	price, err := c.GasPrice(ctx)
	if err != nil {
		return nil, err
	}
	rec := RecommendGasPrice(price)
	return &rec, nil
}

// BatchSavings compares individually estimated transactions against a
// synthetic batched cost. It is a display approximation.
type BatchSavings struct {
	Individual      []uint64        `json:"individualEstimates"`
	IndividualTotal *big.Int        `json:"individualTotal"`
	BatchTotal      *big.Int        `json:"batchTotal"`
	Savings         *big.Int        `json:"savings"`
	SavingsPct      decimal.Decimal `json:"savingsPercent"`
}

// ComputeBatchSavings derives the synthetic batch cost floor(0.7*sum)+21000
// from per-transaction estimates. Savings never go below zero.
func ComputeBatchSavings(estimates []uint64) (*BatchSavings, error) {
	if len(estimates) == 0 {
		return nil, ErrNoTransactions
	}
	sum := new(big.Int)
	for _, e := range estimates {
		sum.Add(sum, new(big.Int).SetUint64(e))
	}
	batchTotal := new(big.Int).Mul(sum, big.NewInt(7))
	batchTotal.Quo(batchTotal, big.NewInt(10))
	batchTotal.Add(batchTotal, big.NewInt(BatchOverheadGas))

	savings := new(big.Int).Sub(sum, batchTotal)
	if savings.Sign() < 0 {
		savings.SetInt64(0)
	}
	pct := decimal.Zero
	if sum.Sign() > 0 {
		pct = decimal.NewFromBigInt(savings, 0).
			Div(decimal.NewFromBigInt(sum, 0)).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return &BatchSavings{
		Individual:      append([]uint64(nil), estimates...),
		IndividualTotal: sum,
		BatchTotal:      batchTotal,
		Savings:         savings,
		SavingsPct:      pct,
	}, nil
}

// EstimateBatchSavings estimates each request on the node and feeds the
// results to ComputeBatchSavings. Any failed estimate fails the whole call.
func (c *Client) EstimateBatchSavings(ctx context.Context, reqs []TxRequest) (*BatchSavings, error) {
	if len(reqs) == 0 {
		return nil, ErrNoTransactions
	}
	estimates := make([]uint64, 0, len(reqs))
	for i, req := range reqs {
		gas, err := c.EstimateGas(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("estimate transaction %d: %w", i, err)
		}
		estimates = append(estimates, gas)
	}
	return ComputeBatchSavings(estimates)
}
