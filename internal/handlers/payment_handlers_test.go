package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rkuznetsov/techstore-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/create-payment-intent", h.CreatePaymentIntent)
	r.POST("/api/cards", h.SaveCard)
	r.GET("/api/cards/:userId", h.GetCards)
	r.DELETE("/api/cards/:id", h.DeleteCard)
	return r
}

func TestCreatePaymentIntentRequiresPositiveAmount(t *testing.T) {
	h, _ := newTestHandlers(t)

	for _, body := range []string{`{}`, `{"amount":0}`, `{"amount":-500}`} {
		w := performRequest(paymentRouter(h), http.MethodPost, "/api/create-payment-intent", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestCreatePaymentIntentWithoutGateway(t *testing.T) {
	h, _ := newTestHandlers(t)
	h.Stripe = nil

	w := performRequest(paymentRouter(h), http.MethodPost, "/api/create-payment-intent", `{"amount":2500}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "not configured")
}

func TestSaveCardGeneratesOpaqueToken(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO saved_cards (user_id, last4, brand, token, created_at) VALUES (?, ?, ?, ?, ?)")).
		WithArgs(int64(7), "4242", "visa", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(11, 1))

	w := performRequest(paymentRouter(h), http.MethodPost, "/api/cards",
		`{"userId":7,"last4":"4242","brand":"visa"}`)

	require.Equal(t, http.StatusCreated, w.Code)

	var card models.SavedCard
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.Equal(t, int64(11), card.ID)
	assert.Equal(t, "4242", card.Last4)

	// The token is a server-generated UUID, not anything card-derived.
	_, err := uuid.Parse(card.Token)
	assert.NoError(t, err)
}

func TestSaveCardRejectsBadLast4(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := performRequest(paymentRouter(h), http.MethodPost, "/api/cards",
		`{"userId":7,"last4":"42421","brand":"visa"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCards(t *testing.T) {
	h, mock := newTestHandlers(t)

	rows := sqlmock.NewRows([]string{"id", "user_id", "last4", "brand", "token", "created_at"}).
		AddRow(11, 7, "4242", "visa", uuid.New().String(), time.Now())
	mock.ExpectQuery("SELECT id, user_id, last4, brand, token, created_at FROM saved_cards").
		WithArgs("7").WillReturnRows(rows)

	w := performRequest(paymentRouter(h), http.MethodGet, "/api/cards/7", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "4242")
}

func TestDeleteCardNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM saved_cards WHERE id = ?")).
		WithArgs("99").WillReturnResult(sqlmock.NewResult(0, 0))

	w := performRequest(paymentRouter(h), http.MethodDelete, "/api/cards/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}
