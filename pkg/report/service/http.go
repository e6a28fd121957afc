package service

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	apphttp "github.com/chainsafe/gas-batcher/pkg/app/http"
	"github.com/chainsafe/gas-batcher/pkg/batch"
)

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers GET /batch and GET /analytics on r.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/batch", apphttp.HandleError(h.batches))
	r.Get("/analytics", apphttp.HandleError(h.analytics))
}

// batches looks up one transaction by batchId or lists a sender's history.
func (h *HTTP) batches(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	if id := q.Get("batchId"); id != "" {
		tx, err := h.service.GetTransaction(r.Context(), id)
		if err != nil {
			return h.fail(err)
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "transaction": batch.NewTransactionView(tx)})
		return nil
	}

	sender := q.Get("userAddress")
	if sender == "" {
		return apperrors.BadRequestError(nil, "batchId or userAddress is required")
	}
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return apperrors.BadRequestError(err, "limit must be a non-negative integer")
		}
		limit = n
	}
	txs, err := h.service.ListTransactionsBySender(r.Context(), sender, limit)
	if err != nil {
		return h.fail(err)
	}
	views := make([]batch.TransactionView, len(txs))
	for i, tx := range txs {
		views[i] = batch.NewTransactionView(tx)
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "batches": views})
	return nil
}

func (h *HTTP) analytics(w http.ResponseWriter, r *http.Request) error {
	if dappID := r.URL.Query().Get("dappId"); dappID != "" {
		a, err := h.service.GetAnalytics(r.Context(), dappID)
		if err != nil {
			return h.fail(err)
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "analytics": batch.NewAnalyticsView(a)})
		return nil
	}

	g, err := h.service.GetGlobalAnalytics(r.Context())
	if err != nil {
		return h.fail(err)
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "analytics": batch.NewGlobalAnalyticsView(g)})
	return nil
}

func (h *HTTP) fail(err error) error {
	if apperrors.IsInternalError(err) {
		h.logger.Error("report request failed", zap.Error(err))
	}
	return err
}
