package chat

import (
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// api is the slice of the Telegram bot API the bridge needs.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	CopyMessage(c tgbotapi.CopyMessageConfig) (tgbotapi.MessageID, error)
}

// Bridge relays support messages between customers and the single store
// administrator. It keeps no session state of its own: a customer message
// is forwarded to the admin chat, and when the admin replies to that
// forwarded copy, Telegram's forward metadata tells us who the original
// sender was.
type Bridge struct {
	bot         api
	adminChatID int64
}

// NewBridge creates a Bridge bound to the given admin chat.
func NewBridge(bot *tgbotapi.BotAPI, adminChatID int64) *Bridge {
	return &Bridge{bot: bot, adminChatID: adminChatID}
}

// Run consumes updates until the channel is closed (main calls
// StopReceivingUpdates on shutdown). Events are handled strictly one at
// a time, and no error or panic is allowed to escape the loop.
func (b *Bridge) Run(updates tgbotapi.UpdatesChannel) {
	log.Println("💬 Support chat bridge started")
	for update := range updates {
		b.handleUpdate(update)
	}
	log.Println("Support chat bridge stopped")
}

// handleUpdate routes a single inbound event.
func (b *Bridge) handleUpdate(update tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("chat: recovered from panic while handling update: %v", r)
		}
	}()

	msg := update.Message
	if msg == nil || msg.Chat == nil {
		return
	}

	if msg.Chat.ID == b.adminChatID {
		b.handleAdminMessage(msg)
	} else {
		b.handleCustomerMessage(msg)
	}
}

// handleAdminMessage relays an admin reply back to the customer it was
// addressed to, using the forward metadata on the replied-to message as
// the only correlation key.
func (b *Bridge) handleAdminMessage(msg *tgbotapi.Message) {
	reply := msg.ReplyToMessage

	// 1. Not a reply at all: tell the admin how the bridge works.
	if reply == nil {
		b.tellAdmin("ℹ️ To answer a customer, use \"Reply\" on one of their forwarded messages.")
		return
	}

	// 2. A reply, but Telegram gave us no forward provenance (the
	// customer hides their account on forwarding, or the admin replied
	// to something the bridge never forwarded). We cannot recover the
	// recipient without it.
	if reply.ForwardFrom == nil {
		b.tellAdmin("⚠️ Cannot determine the recipient of this reply. Make sure you reply to a forwarded customer message.")
		return
	}

	customerID := reply.ForwardFrom.ID

	// 3. Copy the admin's message content to the original sender.
	copyCfg := tgbotapi.NewCopyMessage(customerID, msg.Chat.ID, msg.MessageID)
	if _, err := b.bot.CopyMessage(copyCfg); err != nil {
		// Typical case: the customer has blocked the bot. One attempt
		// only; report back and move on.
		log.Printf("chat: failed to deliver admin reply to user %d: %v", customerID, err)
		b.tellAdmin(fmt.Sprintf("❌ Could not deliver the reply to user %d. They may have blocked the bot.", customerID))
		return
	}

	b.tellAdmin(fmt.Sprintf("✅ Reply delivered to user %d.", customerID))
}

// handleCustomerMessage forwards a customer message to the admin chat.
// The forwarded copy keeps the sender attribution that later
// reply-correlation depends on.
func (b *Bridge) handleCustomerMessage(msg *tgbotapi.Message) {
	fwd := tgbotapi.NewForward(b.adminChatID, msg.Chat.ID, msg.MessageID)
	if _, err := b.bot.Send(fwd); err != nil {
		log.Printf("chat: failed to forward message from chat %d to admin: %v", msg.Chat.ID, err)
	}
}

// tellAdmin sends a service note to the admin chat; failures are only logged.
func (b *Bridge) tellAdmin(text string) {
	if _, err := b.bot.Send(tgbotapi.NewMessage(b.adminChatID, text)); err != nil {
		log.Printf("chat: failed to notify admin: %v", err)
	}
}
