// Package notifier provides notification service implementations.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
	"talent-stake/domain/interfaces"
)

const maxReasonPreview = 500

// AlertCounter counts delivered and failed alerts.
type AlertCounter interface {
	IncrementAlertsSent()
	IncrementAlertsFailed()
}

// slackNotifier implements the Notifier interface for Slack.
type slackNotifier struct {
	webhookURL   string
	channel      string
	mentionUsers []string
	logger       interfaces.Logger
	counter      AlertCounter
	httpClient   *http.Client
}

// NewSlackNotifier creates a new Slack notifier. counter may be nil.
func NewSlackNotifier(
	webhookURL string,
	channel string,
	mentionUsers []string,
	logger interfaces.Logger,
	counter AlertCounter,
) interfaces.Notifier {
	return &slackNotifier{
		webhookURL:   webhookURL,
		channel:      channel,
		mentionUsers: mentionUsers,
		logger:       logger,
		counter:      counter,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NotifyDispute sends a dispute alert to Slack.
func (n *slackNotifier) NotifyDispute(ctx context.Context, dispute *entities.Dispute, job *entities.Job) error {
	if !n.IsConfigured() {
		return fmt.Errorf("slack notifier not configured")
	}

	message := n.buildDisputeMessage(dispute, job)
	err := n.SendSlackMessage(ctx, message)
	if n.counter != nil {
		if err != nil {
			n.counter.IncrementAlertsFailed()
		} else {
			n.counter.IncrementAlertsSent()
		}
	}
	return err
}

// SendSlackMessage sends a message to Slack.
func (n *slackNotifier) SendSlackMessage(ctx context.Context, message *dto.SlackMessage) error {
	if !n.IsConfigured() {
		return fmt.Errorf("slack webhook URL not configured")
	}

	// Override channel if configured
	if n.channel != "" && message.Channel == "" {
		message.Channel = n.channel
	}

	payload, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	n.logger.Debug("Sending Slack message", "payload", string(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("slack API returned status %d", resp.StatusCode)
	}

	n.logger.Info("Alert sent to Slack successfully")
	return nil
}

// IsConfigured checks if the notifier is properly configured.
func (n *slackNotifier) IsConfigured() bool {
	return n.webhookURL != ""
}

// buildDisputeMessage constructs a Slack message for a newly opened dispute.
func (n *slackNotifier) buildDisputeMessage(dispute *entities.Dispute, job *entities.Job) *dto.SlackMessage {
	title := fmt.Sprintf("Dispute opened on job #%d", dispute.JobID)
	if job != nil && job.Title != "" {
		title = fmt.Sprintf("Dispute opened on job #%d: %s", dispute.JobID, job.Title)
	}
	if mentions := n.mentions(); mentions != "" {
		title = mentions + title
	}

	fields := []dto.SlackField{
		{
			Title: "Reporter",
			Value: dispute.Reporter.Hex(),
			Short: true,
		},
		{
			Title: "Target",
			Value: dispute.Target.Hex(),
			Short: true,
		},
		{
			Title: "Dispute ID",
			Value: dispute.ID,
			Short: true,
		},
	}
	if job != nil {
		fields = append(fields, dto.SlackField{
			Title: "Job state",
			Value: string(job.State),
			Short: true,
		})
	}

	text := "Reason:\n```\n" + truncate(dispute.Reason, maxReasonPreview) + "\n```"
	if dispute.Evidence != "" {
		text += "\nEvidence: " + truncate(dispute.Evidence, maxReasonPreview)
	}

	attachment := dto.SlackAttachment{
		Color:     "#ff9900",
		Title:     title,
		Text:      text,
		Fields:    fields,
		Footer:    "Talent Stake",
		Timestamp: dispute.CreatedAt.Unix(),
	}

	return &dto.SlackMessage{
		Text:        fmt.Sprintf("A dispute needs review on job #%d", dispute.JobID),
		Attachments: []dto.SlackAttachment{attachment},
		Username:    "Talent Stake",
		IconEmoji:   ":scales:",
	}
}

// mentions renders the configured users as Slack mentions.
func (n *slackNotifier) mentions() string {
	if len(n.mentionUsers) == 0 {
		return ""
	}
	mentionList := make([]string, len(n.mentionUsers))
	for i, user := range n.mentionUsers {
		if strings.HasPrefix(user, "@") {
			mentionList[i] = user
		} else {
			mentionList[i] = "<@" + user + ">"
		}
	}
	return strings.Join(mentionList, " ") + " "
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
