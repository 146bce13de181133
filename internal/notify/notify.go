package notify

import (
	"fmt"
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender is the slice of the Telegram bot API the notifier needs.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// OrderItemSummary is one line of the order notification.
type OrderItemSummary struct {
	ProductID     int64
	Quantity      int
	Price         float64
	SelectedColor string
}

// OrderDetails is everything the notifier needs to describe a new order.
type OrderDetails struct {
	OrderID    int64
	UserID     int64
	TotalPrice float64
	Items      []OrderItemSummary
}

// Notifier delivers new-order notifications to the store administrator's
// Telegram chat. Delivery is strictly best-effort: one attempt, failures
// are logged and swallowed. The order itself is never affected.
type Notifier struct {
	bot         sender
	adminChatID int64
}

// New creates a Notifier. A nil bot yields a notifier that silently
// does nothing, so callers don't have to care whether Telegram is
// configured.
func New(bot *tgbotapi.BotAPI, adminChatID int64) *Notifier {
	if bot == nil {
		return &Notifier{}
	}
	return &Notifier{bot: bot, adminChatID: adminChatID}
}

// NotifyNewOrder formats and sends the order summary.
// It is safe to call from a goroutine; it never returns an error and
// never panics on delivery failure.
func (n *Notifier) NotifyNewOrder(details OrderDetails) {
	if n == nil || n.bot == nil {
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, formatOrder(details))
	if _, err := n.bot.Send(msg); err != nil {
		// Advisory only: the order is already committed, so we just log.
		log.Printf("notify: failed to deliver notification for order #%d: %v", details.OrderID, err)
	}
}

// formatOrder builds the human-readable summary the admin sees.
func formatOrder(d OrderDetails) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 New order #%d\n", d.OrderID)
	fmt.Fprintf(&b, "Customer: user %d\n", d.UserID)
	fmt.Fprintf(&b, "Total: $%.2f\n\n", d.TotalPrice)

	for i, item := range d.Items {
		fmt.Fprintf(&b, "%d. Product %d × %d @ $%.2f", i+1, item.ProductID, item.Quantity, item.Price)
		if item.SelectedColor != "" {
			fmt.Fprintf(&b, " (color: %s)", item.SelectedColor)
		}
		b.WriteString("\n")
	}

	return b.String()
}
