package service

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"sync"
	"time"

	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
)

// memStore is an in-memory Store with the same conditional-update semantics
// as the Postgres implementation.
type memStore struct {
	mu          sync.Mutex
	txs         map[string]*batch.Transaction
	order       []string
	schedules   map[string]*batch.ScheduledBatch
	analytics   map[string]*batch.Analytics
	transitions int
}

func newMemStore() *memStore {
	return &memStore{
		txs:       map[string]*batch.Transaction{},
		schedules: map[string]*batch.ScheduledBatch{},
		analytics: map[string]*batch.Analytics{},
	}
}

func cloneTx(t *batch.Transaction) *batch.Transaction {
	c := *t
	if t.Amount != nil {
		c.Amount = new(big.Int).Set(t.Amount)
	}
	if t.GasEstimate != nil {
		c.GasEstimate = new(big.Int).Set(t.GasEstimate)
	}
	return &c
}

func (m *memStore) CreateTransaction(_ context.Context, tx *batch.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.txs[tx.BatchID]; ok {
		return batchstore.ErrDuplicateBatchID
	}
	m.txs[tx.BatchID] = cloneTx(tx)
	m.order = append(m.order, tx.BatchID)
	return nil
}

func (m *memStore) GetTransaction(_ context.Context, batchID string) (*batch.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[batchID]
	if !ok {
		return nil, batchstore.ErrTransactionNotFound
	}
	return cloneTx(tx), nil
}

func (m *memStore) ListPendingTransactions(_ context.Context, now time.Time, limit int) ([]*batch.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*batch.Transaction
	for _, id := range m.order {
		tx := m.txs[id]
		due := tx.ScheduledFor == nil || !tx.ScheduledFor.After(now)
		ready := (tx.Status == batch.StatusPending && due) ||
			(tx.Status == batch.StatusScheduled && tx.ScheduledFor != nil && due)
		if ready {
			out = append(out, cloneTx(tx))
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memStore) TransitionStatus(_ context.Context, batchID string, from []batch.Status, to batch.Status, opts batchstore.TransitionOptions) (*batch.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, st := range from {
		if !batch.CanTransition(st, to) {
			return nil, fmt.Errorf("illegal transition %s -> %s", st, to)
		}
	}
	tx, ok := m.txs[batchID]
	if !ok {
		return nil, batchstore.ErrTransactionNotFound
	}
	matched := false
	for _, st := range from {
		if tx.Status == st {
			matched = true
		}
	}
	if !matched {
		return nil, batchstore.ErrStatusConflict
	}
	tx.Status = to
	if opts.ScheduledFor != nil {
		tx.ScheduledFor = opts.ScheduledFor
	}
	if opts.ExecutedAt != nil {
		tx.ExecutedAt = opts.ExecutedAt
	}
	if opts.TxHash != nil {
		tx.TxHash = opts.TxHash
	}
	if opts.ErrorMessage != nil {
		tx.ErrorMessage = opts.ErrorMessage
	}
	m.transitions++
	return cloneTx(tx), nil
}

func (m *memStore) CreateScheduledBatch(_ context.Context, s *batch.ScheduledBatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := *s
	m.schedules[s.BatchID] = &c
	return nil
}

func (m *memStore) ListScheduledBatches(_ context.Context, dappID string) ([]*batch.ScheduledBatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*batch.ScheduledBatch
	for _, s := range m.schedules {
		if s.DappID == dappID {
			c := *s
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExecutionTime.Before(out[j].ExecutionTime) })
	return out, nil
}

func (m *memStore) ListDueScheduledBatches(_ context.Context, now time.Time, limit int) ([]*batch.ScheduledBatch, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*batch.ScheduledBatch
	for _, s := range m.schedules {
		if s.Status == batch.StatusScheduled && !s.ExecutionTime.After(now) {
			c := *s
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExecutionTime.Before(out[j].ExecutionTime) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) TransitionScheduledBatch(_ context.Context, batchID string, from, to batch.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.schedules[batchID]
	if !ok {
		return batchstore.ErrScheduledBatchNotFound
	}
	if s.Status != from {
		return batchstore.ErrStatusConflict
	}
	s.Status = to
	return nil
}

func (m *memStore) UpsertAnalytics(_ context.Context, delta batch.AnalyticsDelta, now time.Time) (*batch.Analytics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.analytics[delta.DappID]
	if !ok {
		a = batch.EmptyAnalytics(delta.DappID)
		m.analytics[delta.DappID] = a
	}
	a.TotalGasSaved = new(big.Int).Add(a.TotalGasSaved, delta.GasSaved)
	a.TotalBatches += delta.Batches
	a.TotalTransactions += delta.Transactions
	a.AverageBatchSize = batch.AverageBatchSize(a.TotalTransactions, a.TotalBatches)
	a.LastUpdated = now
	c := *a
	return &c, nil
}

func (m *memStore) status(batchID string) batch.Status {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.txs[batchID].Status
}

func (m *memStore) scope(dappID string) *batch.Analytics {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.analytics[dappID]; ok {
		c := *a
		return &c
	}
	return nil
}
