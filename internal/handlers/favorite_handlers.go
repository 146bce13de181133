package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rkuznetsov/techstore-golang/internal/models"
)

//
// --- Favorite Handlers ---
//

// AddFavoriteInput is the JSON body for POST /api/favorites.
type AddFavoriteInput struct {
	UserID    int64 `json:"userId" binding:"required"`
	ProductID int64 `json:"productId" binding:"required"`
}

// AddFavorite is the handler for POST /api/favorites
// Re-adding an existing pair is a no-op: INSERT IGNORE leaves exactly
// one row behind either way.
func (h *Handlers) AddFavorite(c *gin.Context) {
	var input AddFavoriteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid input: " + err.Error()})
		return
	}

	query := "INSERT IGNORE INTO favorites (user_id, product_id, created_at) VALUES (?, ?, ?)"
	if _, err := h.DB.Exec(query, input.UserID, input.ProductID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites"})
}

// DeleteFavorite is the handler for DELETE /api/favorites/:userId/:productId
// Deleting a pair that doesn't exist is still a success.
func (h *Handlers) DeleteFavorite(c *gin.Context) {
	userID := c.Param("userId")
	productID := c.Param("productId")

	query := "DELETE FROM favorites WHERE user_id = ? AND product_id = ?"
	if _, err := h.DB.Exec(query, userID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to remove favorite"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}

// GetFavorites is the handler for GET /api/favorites/:userId
// Returns the favorited products themselves, newest first.
func (h *Handlers) GetFavorites(c *gin.Context) {
	userID := c.Param("userId")

	query := `
		SELECT p.id, p.title, p.price, p.description, p.image, p.category
		FROM favorites f
		JOIN products p ON f.product_id = p.id
		WHERE f.user_id = ?
		ORDER BY f.created_at DESC`

	rows, err := h.DB.Query(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch favorites"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Image, &p.Category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to scan favorite"})
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error iterating favorites"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetFavoriteIDs is the handler for GET /api/favorites/ids/:userId
// A lightweight variant for the frontend's heart toggles.
func (h *Handlers) GetFavoriteIDs(c *gin.Context) {
	userID := c.Param("userId")

	rows, err := h.DB.Query("SELECT product_id FROM favorites WHERE user_id = ?", userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch favorite ids"})
		return
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to scan favorite id"})
			return
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error iterating favorite ids"})
		return
	}

	c.JSON(http.StatusOK, ids)
}
