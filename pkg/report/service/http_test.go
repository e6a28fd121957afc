package service

import (
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/report/service/mocks"
)

func get(t *testing.T, svc Service, path string) (int, map[string]any) {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, svc, zap.NewNop())

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to decode response JSON: %v", err)
	}
	return rec.Code, got
}

func TestBatchHTTP_ByID(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetTransaction(mock.Anything, "batch_1").Return(&batch.Transaction{
		BatchID: "batch_1",
		Amount:  new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil),
		Status:  batch.StatusPending,
	}, nil).Once()

	code, got := get(t, svc, "/batch?batchId=batch_1")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	tx := got["transaction"].(map[string]any)
	if tx["amount"] != "1000000000000000000" || tx["status"] != "pending" {
		t.Fatalf("unexpected transaction %v", tx)
	}
}

func TestBatchHTTP_NotFound(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetTransaction(mock.Anything, "missing").
		Return(nil, apperrors.ResourceNotFoundError(nil, "transaction not found")).Once()

	code, got := get(t, svc, "/batch?batchId=missing")
	if code != http.StatusNotFound || got["success"] != false {
		t.Fatalf("unexpected response %d %v", code, got)
	}
}

func TestBatchHTTP_BySender(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().ListTransactionsBySender(mock.Anything, sender, 5).Return([]*batch.Transaction{
		{BatchID: "b2", Amount: big.NewInt(2)},
		{BatchID: "b1", Amount: big.NewInt(1)},
	}, nil).Once()

	code, got := get(t, svc, "/batch?userAddress="+sender+"&limit=5")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if list := got["batches"].([]any); len(list) != 2 {
		t.Fatalf("expected 2 batches, got %v", list)
	}
}

func TestBatchHTTP_BadQueries(t *testing.T) {
	svc := mocks.NewService(t)
	for _, path := range []string{"/batch", "/batch?userAddress=" + sender + "&limit=abc"} {
		if code, _ := get(t, svc, path); code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, code)
		}
	}
}

func TestAnalyticsHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().GetAnalytics(mock.Anything, "dapp-1").Return(&batch.Analytics{
		DappID: "dapp-1", TotalGasSaved: big.NewInt(6300), TotalBatches: 2, TotalTransactions: 3,
		AverageBatchSize: decimal.RequireFromString("1.5"),
	}, nil).Once()
	svc.EXPECT().GetGlobalAnalytics(mock.Anything).Return(&batch.GlobalAnalytics{
		TotalGasSaved: big.NewInt(6300), TotalBatches: 2, TotalTransactions: 3,
		AverageBatchSize: decimal.RequireFromString("1.5"), PendingTransactions: 4,
	}, nil).Once()

	code, got := get(t, svc, "/analytics?dappId=dapp-1")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	a := got["analytics"].(map[string]any)
	if a["totalGasSaved"] != "6300" || a["averageBatchSize"] != "1.5" {
		t.Fatalf("unexpected analytics %v", a)
	}

	code, got = get(t, svc, "/analytics")
	if code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if g := got["analytics"].(map[string]any); g["pendingTransactions"] != float64(4) {
		t.Fatalf("unexpected global analytics %v", g)
	}
}
