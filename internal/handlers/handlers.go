package handlers

import (
	"database/sql"

	"github.com/rkuznetsov/techstore-golang/internal/auth"
	"github.com/rkuznetsov/techstore-golang/internal/notify"
	"github.com/stripe/stripe-go/v76/client"
)

// OrderNotifier is the side-channel used after a successful checkout.
// It is an interface so tests can observe calls without a live bot;
// *notify.Notifier is the production implementation.
type OrderNotifier interface {
	NotifyNewOrder(details notify.OrderDetails)
}

// Handlers holds all dependencies for the HTTP handlers.
type Handlers struct {
	DB       *sql.DB       // Shared connection pool
	Tokens   *auth.Tokens  // JWT signer, built from config in main
	Stripe   *client.API   // Payment gateway (nil when unconfigured)
	Notifier OrderNotifier // Order notifications (nil when unconfigured)
}
