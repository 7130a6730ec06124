package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SettlementOperationsTotal успешные расчётные операции по типу (collection, third_party_remittance, ...).
	SettlementOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_operations_total",
			Help: "Total number of committed settlement operations",
		},
		[]string{"operation"},
	)

	SettlementOrdersTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_orders_total",
			Help: "Total number of orders settled or reversed",
		},
		[]string{"operation"},
	)

	// TxRetriesTotal повторы serializable транзакций по SQLSTATE (40001, 40P01).
	TxRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_tx_retries_total",
			Help: "Total number of retried serializable transactions",
		},
		[]string{"sqlstate"},
	)

	// StatusEventsTotal исходы обработки событий order.status.changed.
	StatusEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settlement_status_events_total",
			Help: "Order status change events by processing outcome",
		},
		[]string{"outcome"},
	)

	WalletDriftDrivers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wallet_drift_drivers",
			Help: "Number of drivers whose cached wallet differs from the sum of their ledger entries",
		},
	)
)

const (
	OperationCollection           = "collection"
	OperationThirdPartyRemittance = "third_party_remittance"
	OperationThirdPartyPayout     = "third_party_payout"
	OperationReversal             = "reversal"
	OperationStatementIssue       = "statement_issue"
	OperationStatementPaid        = "statement_paid"
	OperationCorrection           = "correction"
	OperationAccounting           = "accounting"
)
