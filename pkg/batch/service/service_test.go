package service

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/batch/service/mocks"
	"github.com/chainsafe/gas-batcher/pkg/batchstore"
	"github.com/chainsafe/gas-batcher/pkg/network"
	"github.com/chainsafe/gas-batcher/pkg/signer"
)

const (
	sender    = "0x52908400098527886E0F7030069857D2E4169EE7"
	recipient = "0x8617E340B3D01FA5F11F306F4090FD50E238070D"
	other     = "0xde709f2102306220921060314715629080e2fb77"
	token     = "0x27b1fdb04752bbc536007a920d24acb045561c26"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// fakeSigner counts calls and fails for recipients listed in fail.
type fakeSigner struct {
	mu    sync.Mutex
	calls int
	fail  map[common.Address]error
}

func (f *fakeSigner) Address() common.Address { return common.HexToAddress(sender) }

func (f *fakeSigner) SendTransaction(_ context.Context, t signer.Transfer) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if err := f.fail[t.To]; err != nil {
		return "", err
	}
	return common.BigToHash(big.NewInt(int64(f.calls))).Hex(), nil
}

func (f *fakeSigner) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func newTestService(t *testing.T, store Store, nw Network, sg signer.Signer, cfg Config) *batchService {
	t.Helper()
	svc, err := NewService(store, nw, sg, cfg, zap.NewNop())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	bs := svc.(*batchService)
	bs.now = func() time.Time { return fixedNow }
	return bs
}

func seed(t *testing.T, store *memStore, to string, amount int64, status batch.Status) *batch.Transaction {
	t.Helper()
	tx := &batch.Transaction{
		BatchID:     batch.NewBatchID(fixedNow),
		UserAddress: common.HexToAddress(sender),
		ToAddress:   common.HexToAddress(to),
		Amount:      big.NewInt(amount),
		GasEstimate: big.NewInt(21000),
		Status:      status,
		CreatedAt:   fixedNow,
	}
	if err := store.CreateTransaction(context.Background(), tx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return tx
}

func requireCategory(t *testing.T, err error, cat apperrors.Category) {
	t.Helper()
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %T: %v", err, err)
	}
	if svcErr.Category != cat {
		t.Fatalf("expected category %s, got %s (%v)", cat, svcErr.Category, err)
	}
}

func TestEnqueue_RejectsInvalidInputWithoutIO(t *testing.T) {
	tok := "0x1234"
	cases := []struct {
		name string
		req  batch.EnqueueRequest
	}{
		{"bad sender", batch.EnqueueRequest{UserAddress: "0x123", ToAddress: recipient, Amount: "1"}},
		{"missing recipient", batch.EnqueueRequest{UserAddress: sender, Amount: "1"}},
		{"no prefix", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient[2:], Amount: "1"}},
		{"zero amount", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "0"}},
		{"negative amount", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "-5"}},
		{"fractional amount", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "1.5"}},
		{"non-numeric amount", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "ten"}},
		{"missing amount", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient}},
		{"exponent amount", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "1e20000000"}},
		{"amount above uint256", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "115792089237316195423570985008687907853269984665640564039457584007913129639936"}},
		{"bad token", batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "1", TokenAddress: &tok}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := mocks.NewStore(t)
			nw := mocks.NewNetwork(t)
			svc := newTestService(t, store, nw, nil, Config{})

			_, err := svc.Enqueue(context.Background(), &tc.req)
			requireCategory(t, err, apperrors.CategoryDataError)
		})
	}
}

func TestEnqueue_FallsBackToDefaultGasWhenNetworkDown(t *testing.T) {
	store := mocks.NewStore(t)
	nw := mocks.NewNetwork(t)
	svc := newTestService(t, store, nw, nil, Config{})

	nw.EXPECT().EstimateGas(mock.Anything, mock.Anything).
		Return(uint64(0), &network.TransportError{Method: "eth_estimateGas", Err: errors.New("connection refused")}).
		Once()

	var stored *batch.Transaction
	store.EXPECT().CreateTransaction(mock.Anything, mock.AnythingOfType("*batch.Transaction")).
		Run(func(_ context.Context, tx *batch.Transaction) { stored = tx }).
		Return(nil).
		Once()

	id, err := svc.Enqueue(context.Background(), &batch.EnqueueRequest{
		UserAddress: sender,
		ToAddress:   recipient,
		Amount:      "1000000000000000000",
	})
	require.NoError(t, err)
	require.Equal(t, id, stored.BatchID)
	require.Equal(t, batch.StatusPending, stored.Status)
	require.Equal(t, "1000000000000000000", stored.Amount.String())
	require.Equal(t, "21000", stored.GasEstimate.String())
	require.Equal(t, fixedNow, stored.CreatedAt)
}

func TestEnqueue_EstimatesTokenTransferAgainstContract(t *testing.T) {
	store := mocks.NewStore(t)
	nw := mocks.NewNetwork(t)
	svc := newTestService(t, store, nw, nil, Config{})

	tok := token
	nw.EXPECT().EstimateGas(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req network.TxRequest) {
			if req.To == nil || *req.To != common.HexToAddress(token) {
				t.Errorf("expected call to token contract, got %v", req.To)
			}
			if req.From != common.HexToAddress(sender) || len(req.Data) != 68 {
				t.Errorf("unexpected call object %+v", req)
			}
		}).
		Return(uint64(52000), nil).
		Once()
	store.EXPECT().CreateTransaction(mock.Anything, mock.MatchedBy(func(tx *batch.Transaction) bool {
		return tx.GasEstimate.Uint64() == 52000 &&
			tx.TokenAddress != nil &&
			tx.TokenAddress.Hex() == common.HexToAddress(token).Hex() &&
			tx.ToAddress.Hex() == recipient
	})).Return(nil).Once()

	_, err := svc.Enqueue(context.Background(), &batch.EnqueueRequest{
		UserAddress:  sender,
		ToAddress:    recipient,
		Amount:       "42",
		TokenAddress: &tok,
	})
	require.NoError(t, err)
}

func TestEnqueue_RetriesOnDuplicateID(t *testing.T) {
	store := mocks.NewStore(t)
	nw := mocks.NewNetwork(t)
	svc := newTestService(t, store, nw, nil, Config{})

	nw.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(21000), nil).Once()
	store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).Return(batchstore.ErrDuplicateBatchID).Once()
	store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).Return(nil).Once()

	id, err := svc.Enqueue(context.Background(), &batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "1"})
	require.NoError(t, err)
	require.NotEmpty(t, id)
}

func TestEnqueue_StoreFailureIsInternal(t *testing.T) {
	store := mocks.NewStore(t)
	nw := mocks.NewNetwork(t)
	svc := newTestService(t, store, nw, nil, Config{})

	nw.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(21000), nil).Once()
	store.EXPECT().CreateTransaction(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	_, err := svc.Enqueue(context.Background(), &batch.EnqueueRequest{UserAddress: sender, ToAddress: recipient, Amount: "1"})
	requireCategory(t, err, apperrors.CategoryGeneralError)
}

func TestEnqueue_ThenReadReturnsSameAmount(t *testing.T) {
	store := newMemStore()
	nw := mocks.NewNetwork(t)
	svc := newTestService(t, store, nw, nil, Config{})
	nw.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(0), errors.New("unreachable")).Once()

	id, err := svc.Enqueue(context.Background(), &batch.EnqueueRequest{
		UserAddress: sender,
		ToAddress:   recipient,
		Amount:      "1000000000000000000",
	})
	require.NoError(t, err)

	tx, err := store.GetTransaction(context.Background(), id)
	require.NoError(t, err)
	view := batch.NewTransactionView(tx)
	require.Equal(t, "1000000000000000000", view.Amount)
	require.Equal(t, "21000", *view.GasEstimate)
	require.Equal(t, batch.StatusPending, view.Status)
}

func TestSchedule(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, nil, nil, Config{})
	tx := seed(t, store, recipient, 1, batch.StatusPending)

	_, err := svc.Schedule(context.Background(), tx.BatchID, fixedNow.Add(-time.Minute))
	requireCategory(t, err, apperrors.CategoryDataError)

	at := fixedNow.Add(time.Hour)
	got, err := svc.Schedule(context.Background(), tx.BatchID, at)
	require.NoError(t, err)
	require.Equal(t, batch.StatusScheduled, got.Status)
	require.True(t, got.ScheduledFor.Equal(at))

	_, err = svc.Schedule(context.Background(), tx.BatchID, at)
	requireCategory(t, err, apperrors.CategoryDataConflict)

	_, err = svc.Schedule(context.Background(), "batch_missing", at)
	requireCategory(t, err, apperrors.CategoryResourceNotFound)
}

func TestExecuteOne_Success(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{}
	svc := newTestService(t, store, nil, sg, Config{})
	tx := seed(t, store, recipient, 100, batch.StatusPending)

	res, err := svc.ExecuteOne(context.Background(), tx.BatchID, "dapp-1")
	require.NoError(t, err)
	require.NotEmpty(t, res.TxHash)
	require.True(t, res.GasUsedSimulated)
	require.Equal(t, "21000", res.GasUsed.String())
	require.Equal(t, "6300", res.GasSaved.String())

	got, _ := store.GetTransaction(context.Background(), tx.BatchID)
	require.Equal(t, batch.StatusCompleted, got.Status)
	require.Equal(t, res.TxHash, *got.TxHash)
	require.NotNil(t, got.ExecutedAt)
	require.Nil(t, got.ErrorMessage)

	a := store.scope("dapp-1")
	require.NotNil(t, a)
	require.Equal(t, int64(1), a.TotalBatches)
	require.Equal(t, int64(1), a.TotalTransactions)
	require.Equal(t, "6300", a.TotalGasSaved.String())
}

func TestExecuteOne_DefaultScope(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, nil, &fakeSigner{}, Config{DefaultScope: "global"})
	tx := seed(t, store, recipient, 100, batch.StatusScheduled)

	_, err := svc.ExecuteOne(context.Background(), tx.BatchID, "")
	require.NoError(t, err)
	require.NotNil(t, store.scope("global"))
}

func TestExecuteOne_SignerFailureMarksFailed(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{fail: map[common.Address]error{common.HexToAddress(recipient): errors.New("insufficient funds")}}
	svc := newTestService(t, store, nil, sg, Config{})
	tx := seed(t, store, recipient, 100, batch.StatusPending)

	_, err := svc.ExecuteOne(context.Background(), tx.BatchID, "dapp-1")
	requireCategory(t, err, apperrors.CategoryExecutionFailure)

	got, _ := store.GetTransaction(context.Background(), tx.BatchID)
	require.Equal(t, batch.StatusFailed, got.Status)
	require.Equal(t, "insufficient funds", *got.ErrorMessage)
	require.Nil(t, got.TxHash)
	require.Nil(t, got.ExecutedAt)
	require.Nil(t, store.scope("dapp-1"), "failed execution must not touch analytics")
}

func TestExecuteOne_Errors(t *testing.T) {
	t.Run("no wallet", func(t *testing.T) {
		store := newMemStore()
		svc := newTestService(t, store, nil, nil, Config{})
		tx := seed(t, store, recipient, 1, batch.StatusPending)

		_, err := svc.ExecuteOne(context.Background(), tx.BatchID, "")
		requireCategory(t, err, apperrors.CategoryDataError)
		require.Equal(t, batch.StatusPending, store.status(tx.BatchID))
	})

	t.Run("not found", func(t *testing.T) {
		svc := newTestService(t, newMemStore(), nil, &fakeSigner{}, Config{})
		_, err := svc.ExecuteOne(context.Background(), "batch_0_000000000000", "")
		requireCategory(t, err, apperrors.CategoryResourceNotFound)
	})

	for _, st := range []batch.Status{batch.StatusCompleted, batch.StatusFailed, batch.StatusExecuting} {
		t.Run("already "+string(st), func(t *testing.T) {
			store := newMemStore()
			sg := &fakeSigner{}
			svc := newTestService(t, store, nil, sg, Config{})
			tx := seed(t, store, recipient, 1, st)

			_, err := svc.ExecuteOne(context.Background(), tx.BatchID, "")
			requireCategory(t, err, apperrors.CategoryDataConflict)
			require.Equal(t, st, store.status(tx.BatchID))
			require.Zero(t, sg.count())
		})
	}
}

func TestExecuteOne_ConcurrentCallersExecuteOnce(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{}
	svc := newTestService(t, store, nil, sg, Config{})
	tx := seed(t, store, recipient, 100, batch.StatusPending)

	const callers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	start := make(chan struct{})
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := svc.ExecuteOne(context.Background(), tx.BatchID, "race")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case apperrors.Is(err, apperrors.CategoryDataConflict):
				conflicts++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Equal(t, 1, successes)
	require.Equal(t, callers-1, conflicts)
	require.Equal(t, 1, sg.count())
	require.Equal(t, int64(1), store.scope("race").TotalBatches)
}

func TestExecuteBatch_PartialFailure(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{fail: map[common.Address]error{common.HexToAddress(other): errors.New("reverted")}}
	svc := newTestService(t, store, nil, sg, Config{})
	good := seed(t, store, recipient, 10, batch.StatusPending)
	bad := seed(t, store, other, 20, batch.StatusPending)

	res, err := svc.ExecuteBatch(context.Background(), []string{bad.BatchID, good.BatchID}, "dapp-1")
	require.NoError(t, err)
	require.Equal(t, 2, res.Attempted)
	require.Equal(t, 1, res.Succeeded)

	gotGood, _ := store.GetTransaction(context.Background(), good.BatchID)
	gotBad, _ := store.GetTransaction(context.Background(), bad.BatchID)
	require.Equal(t, batch.StatusCompleted, gotGood.Status)
	require.Equal(t, res.TxHash, *gotGood.TxHash)
	require.Equal(t, batch.StatusFailed, gotBad.Status)
	require.Equal(t, "reverted", *gotBad.ErrorMessage)

	a := store.scope("dapp-1")
	require.Equal(t, int64(1), a.TotalBatches)
	require.Equal(t, int64(2), a.TotalTransactions)
	require.Equal(t, "12600", a.TotalGasSaved.String())
	require.Equal(t, "2", a.AverageBatchSize.String())
}

func TestExecuteBatch_AllFail(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{fail: map[common.Address]error{common.HexToAddress(recipient): errors.New("reverted")}}
	svc := newTestService(t, store, nil, sg, Config{})
	a := seed(t, store, recipient, 1, batch.StatusPending)
	b := seed(t, store, recipient, 2, batch.StatusPending)

	res, err := svc.ExecuteBatch(context.Background(), []string{a.BatchID, b.BatchID}, "dapp-1")
	require.NoError(t, err)
	require.Equal(t, 2, res.Attempted)
	require.Zero(t, res.Succeeded)
	require.Empty(t, res.TxHash)
	require.Equal(t, "42000", res.GasUsed.String())
	require.Equal(t, "12600", res.GasSaved.String())

	for _, id := range []string{a.BatchID, b.BatchID} {
		got, err := store.GetTransaction(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, batch.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		require.Equal(t, "reverted", *got.ErrorMessage)
		require.Nil(t, got.TxHash)
	}

	analytics := store.scope("dapp-1")
	require.NotNil(t, analytics)
	require.Equal(t, int64(1), analytics.TotalBatches)
	require.Equal(t, int64(2), analytics.TotalTransactions)
	require.Equal(t, "12600", analytics.TotalGasSaved.String())
}

func TestExecuteBatch_SkipsRecordsLostToAnotherCaller(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{}
	svc := newTestService(t, store, nil, sg, Config{})
	done := seed(t, store, recipient, 1, batch.StatusCompleted)
	open := seed(t, store, recipient, 2, batch.StatusPending)

	res, err := svc.ExecuteBatch(context.Background(), []string{done.BatchID, open.BatchID, open.BatchID}, "")
	require.NoError(t, err)
	require.Equal(t, 1, res.Attempted)
	require.Equal(t, 1, sg.count())
	require.Len(t, res.Outcomes, 2)
	require.Equal(t, batch.StatusCompleted, res.Outcomes[0].Status)
	require.Contains(t, res.Outcomes[0].Error, "skipped")
}

func TestExecuteBatch_EmptyInput(t *testing.T) {
	svc := newTestService(t, newMemStore(), nil, &fakeSigner{}, Config{})
	_, err := svc.ExecuteBatch(context.Background(), nil, "")
	requireCategory(t, err, apperrors.CategoryDataError)

	_, err = svc.executeTransactions(context.Background(), nil, "x")
	requireCategory(t, err, apperrors.CategoryDataError)
}

func TestAutoProcess_BelowMinimumIsNoOp(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{}
	svc := newTestService(t, store, nil, sg, Config{})
	for i := 0; i < 3; i++ {
		seed(t, store, recipient, int64(i+1), batch.StatusPending)
	}

	res, err := svc.AutoProcess(context.Background(), batch.AutoProcessConfig{MaxBatchSize: 50, MinTransactionCount: 5})
	require.NoError(t, err)
	require.False(t, res.Processed)
	require.Equal(t, 3, res.PendingCount)
	require.Zero(t, store.transitions)
	require.Zero(t, sg.count())
	require.Empty(t, store.analytics)
}

func TestAutoProcess_ExecutesGroupsReachingMinimum(t *testing.T) {
	store := newMemStore()
	sg := &fakeSigner{}
	svc := newTestService(t, store, nil, sg, Config{})
	for i := 0; i < 4; i++ {
		seed(t, store, recipient, 10, batch.StatusPending)
	}
	small := seed(t, store, other, 1000, batch.StatusPending)

	res, err := svc.AutoProcess(context.Background(), batch.AutoProcessConfig{MaxBatchSize: 10, MinTransactionCount: 3, DappID: "auto"})
	require.NoError(t, err)
	require.True(t, res.Processed)
	require.Equal(t, 1, res.GroupsExecuted)
	require.Equal(t, 1, res.GroupsSkipped)
	require.Equal(t, 4, sg.count())
	require.Equal(t, batch.StatusPending, store.status(small.BatchID))

	a := store.scope("auto")
	require.Equal(t, int64(1), a.TotalBatches)
	require.Equal(t, int64(4), a.TotalTransactions)
}

func TestAutoProcess_RejectsInvertedThresholds(t *testing.T) {
	svc := newTestService(t, newMemStore(), nil, &fakeSigner{}, Config{})
	_, err := svc.AutoProcess(context.Background(), batch.AutoProcessConfig{MaxBatchSize: 2, MinTransactionCount: 3})
	requireCategory(t, err, apperrors.CategoryDataError)
}

func TestAutoProcess_NoWallet(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, nil, nil, Config{})
	for i := 0; i < 5; i++ {
		seed(t, store, recipient, 1, batch.StatusPending)
	}
	_, err := svc.AutoProcess(context.Background(), batch.AutoProcessConfig{})
	requireCategory(t, err, apperrors.CategoryDataError)
	require.Zero(t, store.transitions)
}

func TestOptimize(t *testing.T) {
	tokAddr := common.HexToAddress(token)
	mk := func(to string, amount int64, tok *common.Address) *batch.Transaction {
		return &batch.Transaction{ToAddress: common.HexToAddress(to), Amount: big.NewInt(amount), TokenAddress: tok}
	}
	txs := []*batch.Transaction{
		mk(recipient, 5, nil),
		mk(other, 100, nil),
		mk(recipient, 7, nil),
		mk(recipient, 50, &tokAddr),
		mk(other, 1, nil),
	}

	groups := Optimize(txs)
	require.Len(t, groups, 3)
	require.Equal(t, "101", groups[0].TotalAmount.String())
	require.Equal(t, common.HexToAddress(other), groups[0].Recipient)
	require.Len(t, groups[0].Transactions, 2)
	require.Equal(t, "50", groups[1].TotalAmount.String())
	require.NotNil(t, groups[1].Token)
	require.Equal(t, "12", groups[2].TotalAmount.String())
	require.Nil(t, groups[2].Token)

	require.Empty(t, Optimize(nil))
}

func TestAnalytics_AverageMatchesCounters(t *testing.T) {
	store := newMemStore()
	svc := newTestService(t, store, nil, &fakeSigner{}, Config{})

	sizes := []int{1, 2, 4}
	var prev *batch.Analytics
	for _, n := range sizes {
		ids := make([]string, n)
		for i := range ids {
			ids[i] = seed(t, store, recipient, 1, batch.StatusPending).BatchID
		}
		_, err := svc.ExecuteBatch(context.Background(), ids, "avg")
		require.NoError(t, err)

		cur := store.scope("avg")
		if prev != nil {
			require.GreaterOrEqual(t, cur.TotalBatches, prev.TotalBatches)
			require.GreaterOrEqual(t, cur.TotalTransactions, prev.TotalTransactions)
			require.GreaterOrEqual(t, cur.TotalGasSaved.Cmp(prev.TotalGasSaved), 0)
		}
		prev = cur
	}

	a := store.scope("avg")
	require.Equal(t, int64(3), a.TotalBatches)
	require.Equal(t, int64(7), a.TotalTransactions)
	require.Equal(t, "2.3333", a.AverageBatchSize.String())
	product := a.AverageBatchSize.Mul(batchesDecimal(a.TotalBatches)).Round(0)
	require.Equal(t, fmt.Sprint(a.TotalTransactions), product.String())
}

func TestComputeSavings(t *testing.T) {
	nw := mocks.NewNetwork(t)
	svc := newTestService(t, newMemStore(), nw, nil, Config{})

	_, err := svc.ComputeSavings(context.Background(), nil)
	requireCategory(t, err, apperrors.CategoryDataError)

	want, _ := network.ComputeBatchSavings([]uint64{50000, 50000})
	nw.EXPECT().EstimateBatchSavings(mock.Anything, mock.MatchedBy(func(reqs []network.TxRequest) bool {
		return len(reqs) == 2
	})).Return(want, nil).Once()

	txs := []*batch.Transaction{
		{ToAddress: common.HexToAddress(recipient), Amount: big.NewInt(1)},
		{ToAddress: common.HexToAddress(other), Amount: big.NewInt(2)},
	}
	got, err := svc.ComputeSavings(context.Background(), txs)
	require.NoError(t, err)
	require.Equal(t, "9000", got.Savings.String())

	nw.EXPECT().EstimateBatchSavings(mock.Anything, mock.Anything).
		Return(nil, &network.RPCError{Code: -32000, Message: "boom"}).Once()
	_, err = svc.ComputeSavings(context.Background(), txs)
	requireCategory(t, err, apperrors.CategoryDependencyFailure)
}

func TestNewService_RejectsInvertedDefaults(t *testing.T) {
	_, err := NewService(newMemStore(), nil, nil, Config{MaxBatchSize: 2, MinTransactionCount: 3}, zap.NewNop())
	require.Error(t, err)
}
