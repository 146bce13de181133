package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all startup-time settings for the API server.
// Everything is read once in main() and passed down into constructors,
// so no package keeps its own ambient credentials.
type Config struct {
	// Port the HTTP server listens on (default 4000).
	Port string

	// DatabaseDSN is the MySQL connection string.
	DatabaseDSN string

	// TelegramToken is the support/notification bot token.
	// If empty, the bot features are simply disabled.
	TelegramToken string

	// AdminChatID is the Telegram chat of the store administrator.
	// Order notifications go here, and support messages are relayed
	// to and from this chat.
	AdminChatID int64

	// StripeSecretKey is the secret API key for payment intents.
	StripeSecretKey string

	// JWTSecret signs the API's auth tokens. Empty means the auth
	// package falls back to its development secret.
	JWTSecret string
}

// Load reads the configuration from environment variables.
// It never fails hard: missing optional values just disable their feature.
func Load() Config {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		DatabaseDSN:     os.Getenv("DB_DSN"),
		TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
	}

	if cfg.Port == "" {
		cfg.Port = "4000"
	}

	if raw := os.Getenv("ADMIN_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Printf("WARNING: ADMIN_CHAT_ID %q is not a valid chat id: %v", raw, err)
		} else {
			cfg.AdminChatID = id
		}
	}

	return cfg
}
