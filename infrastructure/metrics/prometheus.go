// Package metrics provides Prometheus metrics for monitoring.
package metrics

import (
	"math/big"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
)

const namespace = "talent_stake"

// Metrics holds all Prometheus metrics.
type Metrics struct {
	// Ledger operation metrics
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec

	// Escrow metrics
	escrowBalance prometheus.Gauge
	payoutsTotal  prometheus.Counter
	paidOut       *prometheus.CounterVec

	// Mirror metrics
	mirrorPending prometheus.Gauge
	mirrorApplied prometheus.Counter

	// Alert metrics
	alertsSent   prometheus.Counter
	alertsFailed prometheus.Counter

	gatherer prometheus.Gatherer
}

// NewMetrics registers the ledger metrics with reg. A nil reg uses a private registry.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)

	return &Metrics{
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "operations_total",
				Help:      "Ledger operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of ledger operations",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		escrowBalance: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "escrow_balance",
				Help:      "Funds held by the escrow holder in base units",
			},
		),
		payoutsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payouts_total",
				Help:      "Total number of hires paid out",
			},
		),
		paidOut: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "paid_out_total",
				Help:      "Funds paid out on hire in base units",
			},
			[]string{"recipient"},
		),
		mirrorPending: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "mirror_pending_events",
				Help:      "Ledger events not yet projected into the read store",
			},
		),
		mirrorApplied: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "mirror_applied_events_total",
				Help:      "Ledger events that changed the read store",
			},
		),
		alertsSent: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_sent_total",
				Help:      "Total number of alerts sent",
			},
		),
		alertsFailed: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_failed_total",
				Help:      "Total number of failed alerts",
			},
		),
		gatherer: reg,
	}
}

var _ interfaces.LedgerMetrics = (*Metrics)(nil)

// ObserveOperation records one ledger operation.
func (m *Metrics) ObserveOperation(operation, outcome string, duration time.Duration) {
	m.operationsTotal.WithLabelValues(operation, outcome).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordPayout records the split of a hire.
func (m *Metrics) RecordPayout(payout entities.Payout) {
	m.payoutsTotal.Inc()
	m.paidOut.WithLabelValues("referrer").Add(amountToFloat(payout.ReferrerAmount))
	m.paidOut.WithLabelValues("candidate").Add(amountToFloat(payout.CandidateAmount))
}

// SetEscrowBalance sets the escrow balance gauge.
func (m *Metrics) SetEscrowBalance(amount entities.Amount) {
	m.escrowBalance.Set(amountToFloat(amount))
}

// SetMirrorPending sets the mirror lag gauge.
func (m *Metrics) SetMirrorPending(count int64) {
	m.mirrorPending.Set(float64(count))
}

// AddMirrorApplied counts applied projection events.
func (m *Metrics) AddMirrorApplied(count int) {
	m.mirrorApplied.Add(float64(count))
}

// IncrementAlertsSent increments the alerts sent counter.
func (m *Metrics) IncrementAlertsSent() {
	m.alertsSent.Inc()
}

// IncrementAlertsFailed increments the alerts failed counter.
func (m *Metrics) IncrementAlertsFailed() {
	m.alertsFailed.Inc()
}

// Handler serves the registered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// amountToFloat converts base units to a float64. Precision loss above 2^53 is
// acceptable for dashboards.
func amountToFloat(a entities.Amount) float64 {
	f, _ := new(big.Float).SetInt(a.Big()).Float64()
	return f
}
