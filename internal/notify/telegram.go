package notify

import (
	"fmt"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Telegram sends alerts to a Telegram chat.
type Telegram struct {
	api      *tgbotapi.BotAPI
	chatID   int64
	disabled bool
}

// NewTelegram creates a Telegram notifier. An empty token returns a no-op
// notifier that logs messages instead of sending.
func NewTelegram(token, chatID string) (*Telegram, error) {
	if token == "" {
		log.Println("[telegram] no token provided, running in disabled mode (logging only)")
		return &Telegram{disabled: true}, nil
	}

	parsedChatID, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid chat ID %q: %w", chatID, err)
	}

	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	log.Printf("[telegram] authorized as @%s", api.Self.UserName)

	return &Telegram{
		api:    api,
		chatID: parsedChatID,
	}, nil
}

// Name implements Notifier.
func (t *Telegram) Name() string { return "telegram" }

// Send delivers one alert. Alert text already carries Markdown-style bold
// markers, so messages go out with Markdown parse mode.
func (t *Telegram) Send(text string) error {
	if t.disabled {
		log.Printf("[telegram] (disabled) %s", text)
		return nil
	}

	msg := tgbotapi.NewMessage(t.chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown

	if _, err := t.api.Send(msg); err != nil {
		return fmt.Errorf("telegram send failed: %w", err)
	}
	return nil
}
