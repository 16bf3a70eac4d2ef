package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
	"talent-stake/infrastructure/logger"
	"talent-stake/test/helpers"
)

type countingAlerts struct {
	sent, failed int
}

func (c *countingAlerts) IncrementAlertsSent()   { c.sent++ }
func (c *countingAlerts) IncrementAlertsFailed() { c.failed++ }

func testDispute() (*entities.Dispute, *entities.Job) {
	job := &entities.Job{ID: 3, Title: "Platform engineer", State: entities.JobStateOpen}
	dispute := &entities.Dispute{
		ID:        "d-1",
		JobID:     3,
		Reporter:  helpers.RandomAddress(),
		Target:    helpers.RandomAddress(),
		Reason:    "fake referral",
		Status:    entities.DisputeStatusOpen,
		CreatedAt: time.Unix(1_700_000_000, 0),
	}
	return dispute, job
}

func TestSlackNotifier_NotifyDispute(t *testing.T) {
	var received dto.SlackMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	counter := &countingAlerts{}
	n := NewSlackNotifier(server.URL, "#disputes", []string{"U123", "@here"}, logger.NewNopLogger(), counter)
	dispute, job := testDispute()

	require.NoError(t, n.NotifyDispute(context.Background(), dispute, job))

	assert.Equal(t, "#disputes", received.Channel)
	require.Len(t, received.Attachments, 1)
	attachment := received.Attachments[0]
	assert.True(t, strings.HasPrefix(attachment.Title, "<@U123> @here Dispute opened on job #3"))
	assert.Contains(t, attachment.Text, "fake referral")
	assert.Equal(t, int64(1_700_000_000), attachment.Timestamp)
	assert.Equal(t, 1, counter.sent)
	assert.Equal(t, 0, counter.failed)
}

func TestSlackNotifier_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	counter := &countingAlerts{}
	n := NewSlackNotifier(server.URL, "", nil, logger.NewNopLogger(), counter)
	dispute, job := testDispute()

	err := n.NotifyDispute(context.Background(), dispute, job)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Equal(t, 1, counter.failed)
}

func TestSlackNotifier_NotConfigured(t *testing.T) {
	n := NewSlackNotifier("", "", nil, logger.NewNopLogger(), nil)
	assert.False(t, n.IsConfigured())

	dispute, job := testDispute()
	assert.Error(t, n.NotifyDispute(context.Background(), dispute, job))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdef", 2))
}
