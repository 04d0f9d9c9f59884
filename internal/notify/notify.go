// Package notify forwards formatted alerts to optional chat channels.
// Stdout remains the primary output; forwarding failures are logged and
// never fail a monitoring run.
package notify

import (
	"log"

	"github.com/dantezy/sports-ticker/internal/config"
)

// Notifier delivers one formatted alert to a channel.
type Notifier interface {
	Send(text string) error
	Name() string
}

// FromEnv builds the notifiers the environment has credentials for.
func FromEnv(env *config.Env) []Notifier {
	var notifiers []Notifier

	if env.HasTelegram() {
		tg, err := NewTelegram(env.TelegramBotToken, env.TelegramChatID)
		if err != nil {
			log.Printf("[notify] telegram init failed (continuing without): %v", err)
		} else {
			notifiers = append(notifiers, tg)
		}
	}

	if env.HasSlack() {
		notifiers = append(notifiers, NewSlack(env.SlackWebhookURL))
	}

	return notifiers
}

// Fanout sends every alert to every notifier, logging failures.
func Fanout(notifiers []Notifier, alerts []string) {
	for _, n := range notifiers {
		for _, text := range alerts {
			if err := n.Send(text); err != nil {
				log.Printf("[notify] %s: %v", n.Name(), err)
			}
		}
	}
}
