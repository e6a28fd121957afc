package network

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/gas-batcher/pkg/app/errors"
	apphttp "github.com/chainsafe/gas-batcher/pkg/app/http"
)

// API is the part of the Client exposed over HTTP.
type API interface {
	NetworkHealth(ctx context.Context) *Health
	OptimizeGasPrice(ctx context.Context) (*GasRecommendation, error)
	NodeList(ctx context.Context, page, limit int) (*NodeList, error)
	CycleInfo(ctx context.Context) (*CycleInfo, error)
	ChainInfo(ctx context.Context) (*ChainInfo, error)
	EstimateBatchSavings(ctx context.Context, reqs []TxRequest) (*BatchSavings, error)
}

var _ API = (*Client)(nil)

const maxNodeListLimit = 1000

// HTTP serves passthrough network data.
type HTTP struct {
	api    API
	logger *zap.Logger
}

// RegisterRoutes mounts GET and POST /network on r.
func RegisterRoutes(r chi.Router, api API, logger *zap.Logger) {
	h := &HTTP{api: api, logger: logger}

	r.Get("/network", apphttp.HandleError(h.query))
	r.Post("/network", apphttp.HandleError(h.estimate))
}

func (h *HTTP) query(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	q := r.URL.Query()

	switch action := q.Get("action"); action {
	case "network-health":
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "health": h.api.NetworkHealth(ctx)})
	case "gas-price":
		rec, err := h.api.OptimizeGasPrice(ctx)
		if err != nil {
			return h.upstream(err, "failed to fetch gas price")
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{
			"success":        true,
			"gasPrice":       rec.Current.String(),
			"recommended":    rec.Recommended.String(),
			"savingsPercent": rec.SavingsPct,
		})
	case "node-list":
		page, err := intParam(q.Get("page"), 1)
		if err != nil {
			return apperrors.BadRequestError(err, "invalid page")
		}
		limit, err := intParam(q.Get("limit"), 0)
		if err != nil || limit > maxNodeListLimit {
			return apperrors.BadRequestError(err, "invalid limit")
		}
		nodes, err := h.api.NodeList(ctx, page, limit)
		if err != nil {
			return h.upstream(err, "failed to fetch node list")
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "nodes": nodes.Nodes, "totalNodes": nodes.TotalNodes, "page": page})
	case "cycle-info":
		cycle, err := h.api.CycleInfo(ctx)
		if err != nil {
			return h.upstream(err, "failed to fetch cycle info")
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "cycle": cycle})
	case "chain-info":
		info, err := h.api.ChainInfo(ctx)
		if err != nil {
			return h.upstream(err, "failed to fetch chain info")
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]any{
			"success":     true,
			"chainId":     info.ChainID.String(),
			"blockNumber": info.BlockNumber,
		})
	default:
		return apperrors.BadRequestError(nil, "unknown action "+strconv.Quote(action))
	}
	return nil
}

type txObject struct {
	From  string        `json:"from"`
	To    string        `json:"to"`
	Value string        `json:"value"`
	Data  hexutil.Bytes `json:"data"`
}

type estimateRequest struct {
	Transactions []txObject `json:"transactions"`
}

func (h *HTTP) estimate(w http.ResponseWriter, r *http.Request) error {
	var req estimateRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}
	if len(req.Transactions) == 0 {
		return apperrors.BadRequestError(nil, "transactions are required")
	}

	reqs := make([]TxRequest, 0, len(req.Transactions))
	for i, tx := range req.Transactions {
		call, err := tx.toRequest()
		if err != nil {
			return apperrors.BadRequestError(err, "transaction "+strconv.Itoa(i)+": "+err.Error())
		}
		reqs = append(reqs, call)
	}

	savings, err := h.api.EstimateBatchSavings(r.Context(), reqs)
	if err != nil {
		return h.upstream(err, "failed to estimate batch savings")
	}

	individual := make([]string, len(savings.Individual))
	for i, g := range savings.Individual {
		individual[i] = strconv.FormatUint(g, 10)
	}
	apphttp.WriteJSON(w, http.StatusOK, map[string]any{
		"success":             true,
		"individualEstimates": individual,
		"individualTotal":     savings.IndividualTotal.String(),
		"batchTotal":          savings.BatchTotal.String(),
		"savings":             savings.Savings.String(),
		"savingsPercent":      savings.SavingsPct,
	})
	return nil
}

func (tx txObject) toRequest() (TxRequest, error) {
	var out TxRequest
	if tx.From != "" {
		if !common.IsHexAddress(tx.From) {
			return out, errors.New("invalid from address")
		}
		out.From = common.HexToAddress(tx.From)
	}
	if tx.To != "" {
		if !common.IsHexAddress(tx.To) {
			return out, errors.New("invalid to address")
		}
		to := common.HexToAddress(tx.To)
		out.To = &to
	}
	if tx.Value != "" {
		v, err := parseQuantity(tx.Value)
		if err != nil {
			return out, err
		}
		out.Value = v
	}
	out.Data = tx.Data
	return out, nil
}

// maxDecimalQuantityLen is the digit count of the largest uint256.
const maxDecimalQuantityLen = 78

var errInvalidValue = errors.New("invalid value")

// parseQuantity accepts 0x-prefixed hex or a plain decimal integer, either
// bounded to uint256.
func parseQuantity(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		v, err := hexutil.DecodeBig(s)
		if err != nil {
			return nil, errInvalidValue
		}
		return v, nil
	}
	if len(s) > maxDecimalQuantityLen || strings.ContainsAny(s, "eE") {
		return nil, errInvalidValue
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() || d.Sign() < 0 {
		return nil, errInvalidValue
	}
	v := d.BigInt()
	if v.BitLen() > 256 {
		return nil, errInvalidValue
	}
	return v, nil
}

func intParam(s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.New("must be a non-negative integer")
	}
	return n, nil
}

func (h *HTTP) upstream(err error, msg string) error {
	h.logger.Warn(msg, zap.Error(err))
	if errors.Is(err, ErrNoTransactions) {
		return apperrors.BadRequestError(err, err.Error())
	}
	if IsNetworkError(err) {
		return apperrors.DependencyError(err, msg)
	}
	return apperrors.GeneralError(err)
}

// MarshalJSON renders wei amounts as decimal strings.
func (g GasRecommendation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Current     string          `json:"current"`
		Recommended string          `json:"recommended"`
		SavingsPct  decimal.Decimal `json:"savingsPercent"`
	}{g.Current.String(), g.Recommended.String(), g.SavingsPct})
}
