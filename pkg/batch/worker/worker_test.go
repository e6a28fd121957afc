package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/gas-batcher/pkg/batch"
)

type fakeLifecycle struct {
	mu        sync.Mutex
	auto      int
	schedules int
	autoErr   error
	schedErr  error
	lastCfg   batch.AutoProcessConfig
	ran       chan struct{}
}

func (f *fakeLifecycle) AutoProcess(_ context.Context, cfg batch.AutoProcessConfig) (*batch.AutoProcessResult, error) {
	f.mu.Lock()
	f.auto++
	f.lastCfg = cfg
	f.mu.Unlock()
	if f.ran != nil {
		select {
		case f.ran <- struct{}{}:
		default:
		}
	}
	if f.autoErr != nil {
		return nil, f.autoErr
	}
	return &batch.AutoProcessResult{Processed: true}, nil
}

func (f *fakeLifecycle) RunDueSchedules(context.Context, time.Time) (*batch.ScheduleRunResult, error) {
	f.mu.Lock()
	f.schedules++
	f.mu.Unlock()
	if f.schedErr != nil {
		return nil, f.schedErr
	}
	return &batch.ScheduleRunResult{}, nil
}

func TestRunOnce_RunsBothSteps(t *testing.T) {
	lc := &fakeLifecycle{}
	cfg := batch.AutoProcessConfig{MaxBatchSize: 10, MinTransactionCount: 2, DappID: "d"}
	w := New(lc, cfg, time.Minute, time.Second, zap.NewNop())

	if err := w.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}
	if lc.auto != 1 || lc.schedules != 1 {
		t.Fatalf("expected one call each, got auto=%d schedules=%d", lc.auto, lc.schedules)
	}
	if lc.lastCfg != cfg {
		t.Fatalf("expected config %+v, got %+v", cfg, lc.lastCfg)
	}
}

func TestRunOnce_ContinuesAfterScheduleFailure(t *testing.T) {
	lc := &fakeLifecycle{schedErr: errors.New("db down"), autoErr: errors.New("no wallet")}
	w := New(lc, batch.AutoProcessConfig{}, time.Minute, time.Second, zap.NewNop())

	err := w.RunOnce(context.Background())
	if err == nil {
		t.Fatal("expected joined error")
	}
	if lc.auto != 1 {
		t.Fatalf("expected auto-process to run after schedule failure, got %d", lc.auto)
	}
	if !errors.Is(err, lc.schedErr) || !errors.Is(err, lc.autoErr) {
		t.Fatalf("expected both causes in %v", err)
	}
}

func TestStartStop(t *testing.T) {
	lc := &fakeLifecycle{ran: make(chan struct{}, 1)}
	w := New(lc, batch.AutoProcessConfig{}, 10*time.Millisecond, time.Second, zap.NewNop())

	w.Start()
	select {
	case <-lc.ran:
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not tick")
	}
	w.Stop()
	w.Stop()

	lc.mu.Lock()
	after := lc.auto
	lc.mu.Unlock()
	time.Sleep(30 * time.Millisecond)
	lc.mu.Lock()
	defer lc.mu.Unlock()
	if lc.auto != after {
		t.Fatalf("worker kept running after Stop: %d -> %d", after, lc.auto)
	}
}
