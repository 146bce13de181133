package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rkuznetsov/techstore-golang/internal/models"
	"github.com/stripe/stripe-go/v76"
)

//
// --- Payment Handlers ---
//

// CreatePaymentIntentInput is the JSON body for POST /api/create-payment-intent.
// Amount is in the smallest currency unit (cents).
type CreatePaymentIntentInput struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// CreatePaymentIntent is the handler for POST /api/create-payment-intent
// This is a thin wrapper over Stripe: the frontend confirms the intent
// itself with the returned client secret. Deliberately not linked to
// orders or coupons.
func (h *Handlers) CreatePaymentIntent(c *gin.Context) {
	var input CreatePaymentIntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "A positive amount is required"})
		return
	}

	if h.Stripe == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Payment gateway is not configured"})
		return
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(input.Amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}

	pi, err := h.Stripe.PaymentIntents.New(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create payment intent"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": pi.ClientSecret})
}

//
// --- Saved Card Handlers ---
//

// SaveCardInput is the JSON body for POST /api/cards.
// Only display data is accepted; the token is generated server-side and
// no real card number ever reaches this API.
type SaveCardInput struct {
	UserID int64  `json:"userId" binding:"required"`
	Last4  string `json:"last4" binding:"required,len=4,numeric"`
	Brand  string `json:"brand" binding:"required"`
}

// SaveCard is the handler for POST /api/cards
func (h *Handlers) SaveCard(c *gin.Context) {
	var input SaveCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid card payload: " + err.Error()})
		return
	}

	card := models.SavedCard{
		UserID:    input.UserID,
		Last4:     input.Last4,
		Brand:     input.Brand,
		Token:     uuid.New().String(),
		CreatedAt: time.Now(),
	}

	query := "INSERT INTO saved_cards (user_id, last4, brand, token, created_at) VALUES (?, ?, ?, ?, ?)"
	result, err := h.DB.Exec(query, card.UserID, card.Last4, card.Brand, card.Token, card.CreatedAt)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save card"})
		return
	}
	card.ID, err = result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get new card ID"})
		return
	}

	c.JSON(http.StatusCreated, card)
}

// GetCards is the handler for GET /api/cards/:userId
func (h *Handlers) GetCards(c *gin.Context) {
	userID := c.Param("userId")

	query := "SELECT id, user_id, last4, brand, token, created_at FROM saved_cards WHERE user_id = ? ORDER BY created_at DESC"
	rows, err := h.DB.Query(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cards"})
		return
	}
	defer rows.Close()

	cards := []models.SavedCard{}
	for rows.Next() {
		var card models.SavedCard
		if err := rows.Scan(&card.ID, &card.UserID, &card.Last4, &card.Brand, &card.Token, &card.CreatedAt); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to scan card"})
			return
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error iterating cards"})
		return
	}

	c.JSON(http.StatusOK, cards)
}

// DeleteCard is the handler for DELETE /api/cards/:id
func (h *Handlers) DeleteCard(c *gin.Context) {
	cardID := c.Param("id")

	result, err := h.DB.Exec("DELETE FROM saved_cards WHERE id = ?", cardID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete card"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Card not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Card removed"})
}
