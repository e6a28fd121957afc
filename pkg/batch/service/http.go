package service

import (
	"math/big"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	apphttp "github.com/chainsafe/gas-batcher/pkg/app/http"
	"github.com/chainsafe/gas-batcher/pkg/auth"
	"github.com/chainsafe/gas-batcher/pkg/batch"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the batch write endpoints on r. The auto-process
// trigger is mounted only when cron is non-nil.
func RegisterRoutes(r chi.Router, service Service, cron *auth.CronValidator, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/batch", apphttp.HandleError(h.enqueue))
	r.Post("/batch/execute", apphttp.HandleError(h.execute))
	r.Post("/batch/schedule", apphttp.HandleError(h.schedule))
	r.Get("/batch/schedule", apphttp.HandleError(h.listSchedules))

	if cron != nil {
		r.With(cron.Middleware(logger)).Post("/batch/auto-process", apphttp.HandleError(h.autoProcess))
	}
}

func (h *HTTP) enqueue(w http.ResponseWriter, r *http.Request) error {
	var req batch.EnqueueRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	id, err := h.service.Enqueue(r.Context(), &req)
	if err != nil {
		return h.fail(err)
	}
	apphttp.WriteJSON(w, http.StatusCreated, map[string]any{"success": true, "batchId": id})
	return nil
}

type executeRequest struct {
	BatchID  string   `json:"batchId"`
	BatchIDs []string `json:"batchIds"`
	DappID   string   `json:"dappId"`
}

type executeResponse struct {
	Success          bool            `json:"success"`
	TxHash           string          `json:"txHash"`
	GasUsed          string          `json:"gasUsed"`
	GasSaved         string          `json:"gasSaved"`
	GasUsedSimulated bool            `json:"gasUsedSimulated"`
	Attempted        int             `json:"attempted"`
	Succeeded        int             `json:"succeeded"`
	Outcomes         []batch.Outcome `json:"outcomes"`
}

// execute runs a single transaction, or several as one batch when batchIds is set.
func (h *HTTP) execute(w http.ResponseWriter, r *http.Request) error {
	if !h.service.HasWallet() {
		return apperrors.BadRequestError(nil, "no wallet connected")
	}
	var req executeRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	var (
		res *batch.ExecutionResult
		err error
	)
	switch {
	case len(req.BatchIDs) > 0:
		res, err = h.service.ExecuteBatch(r.Context(), req.BatchIDs, req.DappID)
	case req.BatchID != "":
		res, err = h.service.ExecuteOne(r.Context(), req.BatchID, req.DappID)
	default:
		return apperrors.BadRequestError(nil, "batchId is required")
	}
	if err != nil {
		return h.fail(err)
	}

	apphttp.WriteJSON(w, http.StatusOK, &executeResponse{
		Success:          true,
		TxHash:           res.TxHash,
		GasUsed:          res.GasUsed.String(),
		GasSaved:         res.GasSaved.String(),
		GasUsedSimulated: res.GasUsedSimulated,
		Attempted:        res.Attempted,
		Succeeded:        res.Succeeded,
		Outcomes:         res.Outcomes,
	})
	return nil
}

type scheduleRequest struct {
	batch.ScheduleRequest
	BatchID      string     `json:"batchId"`
	ScheduledFor *time.Time `json:"scheduledFor"`
}

// schedule either defers an existing transaction (batchId + scheduledFor) or
// creates a scheduled batch definition for a scope.
func (h *HTTP) schedule(w http.ResponseWriter, r *http.Request) error {
	var req scheduleRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	if req.BatchID != "" {
		if req.ScheduledFor == nil {
			return apperrors.BadRequestError(nil, "scheduledFor is required")
		}
		tx, err := h.service.Schedule(r.Context(), req.BatchID, *req.ScheduledFor)
		if err != nil {
			return h.fail(err)
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "transaction": batch.NewTransactionView(tx)})
		return nil
	}

	sb, err := h.service.CreateScheduledBatch(r.Context(), &req.ScheduleRequest)
	if err != nil {
		return h.fail(err)
	}
	apphttp.WriteJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"batchId":  sb.BatchID,
		"schedule": batch.NewScheduledBatchView(sb),
	})
	return nil
}

func (h *HTTP) listSchedules(w http.ResponseWriter, r *http.Request) error {
	list, err := h.service.ListScheduledBatches(r.Context(), r.URL.Query().Get("dappId"))
	if err != nil {
		return h.fail(err)
	}
	views := make([]batch.ScheduledBatchView, len(list))
	for i, sb := range list {
		views[i] = batch.NewScheduledBatchView(sb)
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "schedules": views})
	return nil
}

func (h *HTTP) autoProcess(w http.ResponseWriter, r *http.Request) error {
	var req batch.AutoProcessRequest
	if r.ContentLength != 0 {
		if err := apphttp.DecodeJSON(r, &req); err != nil {
			return err
		}
	}
	res, err := h.service.AutoProcess(r.Context(), batch.AutoProcessConfig{
		MaxBatchSize:        req.MaxBatchSize,
		MinTransactionCount: req.MinTransactionCount,
		DappID:              req.DappID,
	})
	if err != nil {
		return h.fail(err)
	}
	subject, _ := auth.SubjectFromContext(r.Context())
	h.logger.Info("auto-process triggered", zap.String("subject", subject), zap.Bool("processed", res.Processed))
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "result": newAutoProcessView(res)})
	return nil
}

type autoProcessView struct {
	Processed      bool     `json:"processed"`
	Reason         string   `json:"reason,omitempty"`
	PendingCount   int      `json:"pendingCount"`
	GroupsExecuted int      `json:"groupsExecuted"`
	GroupsSkipped  int      `json:"groupsSkipped"`
	TxHashes       []string `json:"txHashes"`
	GasSaved       string   `json:"gasSaved"`
}

func newAutoProcessView(res *batch.AutoProcessResult) autoProcessView {
	v := autoProcessView{
		Processed:      res.Processed,
		Reason:         res.Reason,
		PendingCount:   res.PendingCount,
		GroupsExecuted: res.GroupsExecuted,
		GroupsSkipped:  res.GroupsSkipped,
		TxHashes:       []string{},
		GasSaved:       "0",
	}
	saved := new(big.Int)
	for _, e := range res.Executions {
		if e.TxHash != "" {
			v.TxHashes = append(v.TxHashes, e.TxHash)
		}
		if e.GasSaved != nil {
			saved.Add(saved, e.GasSaved)
		}
	}
	v.GasSaved = saved.String()
	return v
}

// fail logs server-side failures before they are rendered.
func (h *HTTP) fail(err error) error {
	if apperrors.IsInternalError(err) {
		h.logger.Error("batch request failed", zap.Error(err))
	}
	return err
}
