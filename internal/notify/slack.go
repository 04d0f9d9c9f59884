package notify

import (
	"fmt"

	"github.com/slack-go/slack"
)

// Slack sends alerts to a Slack incoming webhook.
type Slack struct {
	webhookURL string
}

// NewSlack creates a Slack webhook notifier.
func NewSlack(webhookURL string) *Slack {
	return &Slack{webhookURL: webhookURL}
}

// Name implements Notifier.
func (s *Slack) Name() string { return "slack" }

// Send delivers one alert to the webhook.
func (s *Slack) Send(text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhook(s.webhookURL, msg); err != nil {
		return fmt.Errorf("slack webhook failed: %w", err)
	}
	return nil
}
