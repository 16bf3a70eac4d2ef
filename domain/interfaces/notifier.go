package interfaces

import (
	"context"

	"talent-stake/domain/dto"
	"talent-stake/domain/entities"
)

// Notifier sends notifications to external services.
type Notifier interface {
	// NotifyDispute alerts reviewers that a dispute was opened.
	NotifyDispute(ctx context.Context, dispute *entities.Dispute, job *entities.Job) error

	// SendSlackMessage sends a custom Slack message.
	SendSlackMessage(ctx context.Context, message *dto.SlackMessage) error

	// IsConfigured checks if the notifier is properly configured.
	IsConfigured() bool
}
