package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76/client"

	"github.com/rkuznetsov/techstore-golang/internal/auth"
	"github.com/rkuznetsov/techstore-golang/internal/chat"
	"github.com/rkuznetsov/techstore-golang/internal/config"
	"github.com/rkuznetsov/techstore-golang/internal/database"
	"github.com/rkuznetsov/techstore-golang/internal/handlers"
	"github.com/rkuznetsov/techstore-golang/internal/notify"
	"github.com/rkuznetsov/techstore-golang/internal/routes"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}
	cfg := config.Load()

	// 1. --- Database Connection ---
	db, err := database.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// 2. --- Application Setup ---
	if cfg.JWTSecret == "" {
		log.Println("WARNING: JWT_SECRET is not set. Tokens are signed with the development fallback key.")
	}
	app := &handlers.Handlers{DB: db, Tokens: auth.NewTokens(cfg.JWTSecret)}

	// Payment gateway is optional: without a key the endpoint just
	// reports itself unconfigured.
	if cfg.StripeSecretKey != "" {
		app.Stripe = client.New(cfg.StripeSecretKey, nil)
	} else {
		log.Println("WARNING: STRIPE_SECRET_KEY is not set. Payment intents are disabled.")
	}

	// 3. --- Telegram Bot (Notifications + Support Chat) ---
	// Both features ride on the same bot and are skipped entirely when
	// no token is configured.
	var bot *tgbotapi.BotAPI
	if cfg.TelegramToken != "" {
		bot, err = tgbotapi.NewBotAPI(cfg.TelegramToken)
		if err != nil {
			log.Printf("WARNING: Telegram bot unavailable: %v", err)
			bot = nil
		}
	} else {
		log.Println("WARNING: TELEGRAM_BOT_TOKEN is not set. Notifications and support chat are disabled.")
	}

	if bot != nil {
		log.Printf("Telegram bot authorized as @%s", bot.Self.UserName)
		app.Notifier = notify.New(bot, cfg.AdminChatID)

		// The support chat bridge runs for the whole process lifetime in
		// its own goroutine; StopReceivingUpdates below ends its loop.
		bridge := chat.NewBridge(bot, cfg.AdminChatID)
		updateCfg := tgbotapi.NewUpdate(0)
		updateCfg.Timeout = 30
		go bridge.Run(bot.GetUpdatesChan(updateCfg))
	}

	// 4. --- Router & Server ---
	router := routes.SetupRouter(app)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting TechStore API server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// 5. --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	if bot != nil {
		bot.StopReceivingUpdates()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
	}
}
