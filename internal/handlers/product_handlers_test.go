package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rkuznetsov/techstore-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.GET("/api/products", h.GetProducts)
	r.GET("/api/products/:id", h.GetProductByID)
	return r
}

func TestGetProductsSearchAndSortDesc(t *testing.T) {
	h, mock := newTestHandlers(t)

	rows := sqlmock.NewRows(productColumns).
		AddRow(1, "Iphone 15", 999.0, "Titanium design", "iphone.jpg", "phones").
		AddRow(2, "Samsung S24 phone", 899.0, "Galaxy AI is here", "s24.jpg", "phones")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, title, price, description, image, category FROM products WHERE LOWER(title) LIKE ? ORDER BY price DESC",
	)).WithArgs("%phone%").WillReturnRows(rows)

	w := performRequest(productRouter(h), http.MethodGet, "/api/products?search=phone&sort=desc", "")

	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "Iphone 15", products[0].Title)
	assert.GreaterOrEqual(t, products[0].Price, products[1].Price)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductsSetsNoCacheHeaders(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, title, price, description, image, category FROM products ORDER BY id",
	)).WillReturnRows(sqlmock.NewRows(productColumns))

	w := performRequest(productRouter(h), http.MethodGet, "/api/products", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store, no-cache, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Equal(t, "no-cache", w.Header().Get("Pragma"))
	assert.Equal(t, "0", w.Header().Get("Expires"))
	assert.Equal(t, "[]", w.Body.String())
}

func TestGetProductsCategoryFilter(t *testing.T) {
	h, mock := newTestHandlers(t)

	rows := sqlmock.NewRows(productColumns).
		AddRow(6, "PlayStation 5", 499.0, "Play Has No Limits", "ps5.jpg", "consoles")

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, title, price, description, image, category FROM products WHERE category = ? ORDER BY id",
	)).WithArgs("consoles").WillReturnRows(rows)

	w := performRequest(productRouter(h), http.MethodGet, "/api/products?category=consoles", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProductByIDNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, title, price, description, image, category FROM products WHERE id = ?",
	)).WithArgs("404").WillReturnRows(sqlmock.NewRows(productColumns))

	w := performRequest(productRouter(h), http.MethodGet, "/api/products/404", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Product not found")
}

func TestGetProductByIDFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	rows := sqlmock.NewRows(productColumns).
		AddRow(3, "MacBook Air", 1200.0, "Supercharged by M3", "mba.jpg", "laptops")
	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, title, price, description, image, category FROM products WHERE id = ?",
	)).WithArgs("3").WillReturnRows(rows)

	w := performRequest(productRouter(h), http.MethodGet, "/api/products/3", "")

	require.Equal(t, http.StatusOK, w.Code)

	var p models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.Equal(t, int64(3), p.ID)
	assert.Equal(t, "MacBook Air", p.Title)
}
