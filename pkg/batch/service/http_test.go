package service

import (
	"bytes"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	"github.com/chainsafe/gas-batcher/pkg/auth"
	"github.com/chainsafe/gas-batcher/pkg/batch"
	"github.com/chainsafe/gas-batcher/pkg/batch/service/mocks"
)

func newBatchTestServer(svc Service, cron *auth.CronValidator) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, svc, cron, zap.NewNop())
	return r
}

func doJSON(t *testing.T, h http.Handler, method, path, body string, headers ...string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var got map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("failed to decode response JSON %q: %v", rec.Body.String(), err)
		}
	}
	return rec, got
}

func TestEnqueueHTTP_Created(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().
		Enqueue(mock.Anything, mock.MatchedBy(func(req *batch.EnqueueRequest) bool {
			return req.Amount == "1000000000000000000" && req.ToAddress == recipient
		})).
		Return("batch_1_abc", nil).
		Once()

	rec, got := doJSON(t, newBatchTestServer(svc, nil), http.MethodPost, "/batch",
		`{"userAddress":"`+sender+`","toAddress":"`+recipient+`","amount":1000000000000000000}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rec.Code)
	}
	if got["success"] != true || got["batchId"] != "batch_1_abc" {
		t.Fatalf("unexpected response %v", got)
	}
}

func TestEnqueueHTTP_InvalidJSON_ReturnsBadRequest(t *testing.T) {
	svc := mocks.NewService(t)
	rec, got := doJSON(t, newBatchTestServer(svc, nil), http.MethodPost, "/batch", "{invalid")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got["success"] != false || got["error"] != "invalid JSON" {
		t.Fatalf("unexpected response %v", got)
	}
}

func TestEnqueueHTTP_ValidationError(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Enqueue(mock.Anything, mock.Anything).
		Return("", apperrors.BadRequestError(nil, "amount must be a positive integer")).
		Once()

	rec, got := doJSON(t, newBatchTestServer(svc, nil), http.MethodPost, "/batch", `{"amount":"0"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got["error"] != "amount must be a positive integer" {
		t.Fatalf("unexpected error %v", got["error"])
	}
}

func TestEnqueueHTTP_InternalErrorIsHidden(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().Enqueue(mock.Anything, mock.Anything).
		Return("", apperrors.GeneralError(errors.New("pq: connection refused"))).
		Once()

	rec, got := doJSON(t, newBatchTestServer(svc, nil), http.MethodPost, "/batch", `{}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rec.Code)
	}
	if got["error"] != "Internal Server Error" {
		t.Fatalf("internal detail leaked: %v", got["error"])
	}
}

func TestExecuteHTTP_NoWallet(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().HasWallet().Return(false).Once()

	rec, got := doJSON(t, newBatchTestServer(svc, nil), http.MethodPost, "/batch/execute", `{"batchId":"batch_1"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if got["error"] != "no wallet connected" {
		t.Fatalf("unexpected error %v", got["error"])
	}
}

func TestExecuteHTTP_Single(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().HasWallet().Return(true).Once()
	svc.EXPECT().ExecuteOne(mock.Anything, "batch_1", "dapp-1").
		Return(&batch.ExecutionResult{
			TxHash:           "0xabc",
			GasUsed:          big.NewInt(21000),
			GasSaved:         big.NewInt(6300),
			GasUsedSimulated: true,
			Attempted:        1,
			Succeeded:        1,
		}, nil).
		Once()

	rec, got := doJSON(t, newBatchTestServer(svc, nil), http.MethodPost, "/batch/execute", `{"batchId":"batch_1","dappId":"dapp-1"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got["txHash"] != "0xabc" || got["gasUsed"] != "21000" || got["gasUsedSimulated"] != true {
		t.Fatalf("unexpected response %v", got)
	}
}

func TestExecuteHTTP_BatchAndErrors(t *testing.T) {
	svc := mocks.NewService(t)
	svc.EXPECT().HasWallet().Return(true).Times(3)
	svc.EXPECT().ExecuteBatch(mock.Anything, []string{"a", "b"}, "").
		Return(&batch.ExecutionResult{TxHash: "0x1", GasUsed: big.NewInt(42000), GasSaved: big.NewInt(12600), Attempted: 2, Succeeded: 1}, nil).
		Once()
	svc.EXPECT().ExecuteOne(mock.Anything, "gone", "").
		Return(nil, apperrors.ResourceNotFoundError(nil, "transaction not found")).
		Once()
	h := newBatchTestServer(svc, nil)

	rec, got := doJSON(t, h, http.MethodPost, "/batch/execute", `{"batchIds":["a","b"]}`)
	if rec.Code != http.StatusOK || got["succeeded"] != float64(1) {
		t.Fatalf("unexpected batch response %d %v", rec.Code, got)
	}

	rec, _ = doJSON(t, h, http.MethodPost, "/batch/execute", `{"batchId":"gone"}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	rec, _ = doJSON(t, h, http.MethodPost, "/batch/execute", `{}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing id, got %d", rec.Code)
	}
}

func TestScheduleHTTP(t *testing.T) {
	svc := mocks.NewService(t)
	at := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.EXPECT().CreateScheduledBatch(mock.Anything, mock.MatchedBy(func(req *batch.ScheduleRequest) bool {
		return req.DappID == "dapp-1" && req.Frequency == "daily" && req.ExecutionTime.Equal(at)
	})).Return(&batch.ScheduledBatch{
		BatchID: "schedule_1", DappID: "dapp-1", ExecutionTime: at,
		Frequency: batch.FrequencyDaily, Status: batch.StatusScheduled, EstimatedGas: big.NewInt(0),
	}, nil).Once()
	svc.EXPECT().Schedule(mock.Anything, "batch_1", at).
		Return(&batch.Transaction{BatchID: "batch_1", Amount: big.NewInt(1), Status: batch.StatusScheduled, ScheduledFor: &at}, nil).
		Once()
	svc.EXPECT().ListScheduledBatches(mock.Anything, "dapp-1").Return(nil, nil).Once()
	h := newBatchTestServer(svc, nil)

	rec, got := doJSON(t, h, http.MethodPost, "/batch/schedule", `{"dappId":"dapp-1","executionTime":"2030-01-01T00:00:00Z","frequency":"daily"}`)
	if rec.Code != http.StatusCreated || got["batchId"] != "schedule_1" {
		t.Fatalf("unexpected create response %d %v", rec.Code, got)
	}

	rec, got = doJSON(t, h, http.MethodPost, "/batch/schedule", `{"batchId":"batch_1","scheduledFor":"2030-01-01T00:00:00Z"}`)
	if rec.Code != http.StatusOK || got["transaction"] == nil {
		t.Fatalf("unexpected schedule response %d %v", rec.Code, got)
	}

	rec, got = doJSON(t, h, http.MethodGet, "/batch/schedule?dappId=dapp-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if schedules, ok := got["schedules"].([]any); !ok || len(schedules) != 0 {
		t.Fatalf("expected empty schedule list, got %v", got["schedules"])
	}
}

func TestAutoProcessHTTP_RequiresToken(t *testing.T) {
	cron, err := auth.NewCronValidator("s3cret", "")
	if err != nil {
		t.Fatalf("NewCronValidator: %v", err)
	}
	svc := mocks.NewService(t)
	svc.EXPECT().AutoProcess(mock.Anything, batch.AutoProcessConfig{MinTransactionCount: 2}).
		Return(&batch.AutoProcessResult{Processed: true, PendingCount: 2, GroupsExecuted: 1,
			Executions: []*batch.ExecutionResult{{TxHash: "0x1", GasSaved: big.NewInt(12600)}}}, nil).
		Once()
	h := newBatchTestServer(svc, cron)

	rec, _ := doJSON(t, h, http.MethodPost, "/batch/auto-process", `{}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	token, _ := cron.IssueToken("cron", time.Minute)
	rec, got := doJSON(t, h, http.MethodPost, "/batch/auto-process", `{"minTransactionCount":2}`, "Authorization", "Bearer "+token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	result := got["result"].(map[string]any)
	if result["processed"] != true || result["gasSaved"] != "12600" {
		t.Fatalf("unexpected result %v", result)
	}
}

func TestAutoProcessHTTP_NotMountedWithoutSecret(t *testing.T) {
	svc := mocks.NewService(t)
	rec := httptest.NewRecorder()
	newBatchTestServer(svc, nil).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/batch/auto-process", nil))
	if rec.Code != http.StatusNotFound && rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected route to be absent, got %d", rec.Code)
	}
}
