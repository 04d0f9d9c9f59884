package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Env holds process-level settings read from the environment. The config
// file owns what to track; the environment owns where files live and which
// notification channels are wired up.
type Env struct {
	ConfigPath string
	StatePath  string

	ESPNBaseURL string
	HTTPTimeout time.Duration

	// Telegram notifications (optional)
	TelegramBotToken string
	TelegramChatID   string

	// Slack notifications (optional)
	SlackWebhookURL string
}

// LoadEnv reads environment settings, honoring a .env file when present.
func LoadEnv() (*Env, error) {
	if err := godotenv.Load(); err != nil {
		// .env file is optional if env vars are set directly
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	env := &Env{
		ConfigPath:       getEnvString("SPORTS_TICKER_CONFIG", "config.json"),
		StatePath:        getEnvString("SPORTS_TICKER_STATE", ".live_state.json"),
		ESPNBaseURL:      os.Getenv("ESPN_BASE_URL"),
		HTTPTimeout:      time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		SlackWebhookURL:  os.Getenv("SLACK_WEBHOOK_URL"),
	}
	return env, nil
}

// HasTelegram returns true if Telegram notifications are configured.
func (e *Env) HasTelegram() bool {
	return e.TelegramBotToken != "" && e.TelegramChatID != ""
}

// HasSlack returns true if Slack notifications are configured.
func (e *Env) HasSlack() bool {
	return e.SlackWebhookURL != ""
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

func getEnvString(key string, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
