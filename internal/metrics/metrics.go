package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TransactionsEnqueued counts accepted transfer requests by token kind
	TransactionsEnqueued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_batcher_transactions_enqueued_total",
			Help: "Total number of transfers accepted into the queue",
		},
		[]string{"token"},
	)

	// TransactionsExecuted counts executed transfers by final status
	TransactionsExecuted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_batcher_transactions_executed_total",
			Help: "Total number of transfers executed",
		},
		[]string{"status"},
	)

	// StatusConflicts counts conditional updates that lost a race
	StatusConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gas_batcher_status_conflicts_total",
			Help: "Total number of status transitions rejected because the record had moved on",
		},
	)

	// GasEstimateFallbacks counts enqueues that fell back to the default gas estimate
	GasEstimateFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gas_batcher_gas_estimate_fallbacks_total",
			Help: "Total number of gas estimates replaced by the default",
		},
	)

	// GasSaved accumulates the credited gas savings per scope
	GasSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_batcher_gas_saved_total",
			Help: "Gas credited as saved by batch execution (approximated)",
		},
		[]string{"dapp_id"},
	)

	// BatchSize tracks how many transfers each executed batch contained
	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gas_batcher_batch_size",
			Help:    "Number of transfers attempted per batch execution",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	// AutoProcessRuns counts auto-process invocations by result
	AutoProcessRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_batcher_auto_process_runs_total",
			Help: "Total number of auto-process runs",
		},
		[]string{"result"},
	)

	// PendingTransactions tracks the pending queue depth seen by the last run
	PendingTransactions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gas_batcher_pending_transactions",
			Help: "Number of ready transfers read by the last auto-process run",
		},
	)

	// RPCRequests counts JSON-RPC calls by method and outcome
	RPCRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gas_batcher_rpc_requests_total",
			Help: "Total number of JSON-RPC requests sent to the network node",
		},
		[]string{"method", "outcome"},
	)

	// RPCDuration tracks JSON-RPC latency
	RPCDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gas_batcher_rpc_duration_seconds",
			Help:    "JSON-RPC request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)
