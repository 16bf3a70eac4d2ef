package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
)

func TestMetrics_Operations(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveOperation("create_job", interfaces.OutcomeSuccess, 10*time.Millisecond)
	m.ObserveOperation("create_job", interfaces.OutcomeSuccess, 5*time.Millisecond)
	m.ObserveOperation("create_job", interfaces.OutcomeRejected, time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.operationsTotal.WithLabelValues("create_job", interfaces.OutcomeSuccess)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.operationsTotal.WithLabelValues("create_job", interfaces.OutcomeRejected)))
	assert.Equal(t, 1, testutil.CollectAndCount(m.operationDuration))
}

func TestMetrics_PayoutAndGauges(t *testing.T) {
	m := NewMetrics(nil)

	m.RecordPayout(entities.Payout{
		TotalPot:        entities.NewAmount(5_500_000),
		ReferrerAmount:  entities.NewAmount(1_100_000),
		CandidateAmount: entities.NewAmount(4_400_000),
	})
	m.SetEscrowBalance(entities.NewAmount(123))
	m.SetMirrorPending(4)
	m.AddMirrorApplied(3)
	m.IncrementAlertsSent()
	m.IncrementAlertsFailed()

	assert.Equal(t, float64(1), testutil.ToFloat64(m.payoutsTotal))
	assert.Equal(t, float64(1_100_000), testutil.ToFloat64(m.paidOut.WithLabelValues("referrer")))
	assert.Equal(t, float64(4_400_000), testutil.ToFloat64(m.paidOut.WithLabelValues("candidate")))
	assert.Equal(t, float64(123), testutil.ToFloat64(m.escrowBalance))
	assert.Equal(t, float64(4), testutil.ToFloat64(m.mirrorPending))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.mirrorApplied))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.alertsSent))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.alertsFailed))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())
	m.SetMirrorPending(7)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "talent_stake_mirror_pending_events 7")
}
