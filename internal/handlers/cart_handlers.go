package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

//
// --- Cart Handlers ---
//

// CartItemInput is one entry of the cart sync payload.
type CartItemInput struct {
	ID       int64 `json:"id" binding:"required"`
	Quantity int   `json:"quantity" binding:"required,gt=0"`
}

// SyncCartInput is the JSON body for PUT /api/cart/:userId.
// An empty cart array is valid and clears the user's cart.
type SyncCartInput struct {
	Cart []CartItemInput `json:"cart" binding:"dive"`
}

// SyncCart is the handler for PUT /api/cart/:userId
// The cart is replaced wholesale: whatever the client sends becomes the
// complete cart. There is no merging with previous contents. Concurrent
// syncs for the same user are last-write-wins, but the delete+insert
// pair runs in one transaction so a snapshot is never half-applied.
func (h *Handlers) SyncCart(c *gin.Context) {
	// 1. --- Parse User ID ---
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	// 2. --- Bind & Validate JSON ---
	var input SyncCartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid cart payload: " + err.Error()})
		return
	}

	// 3. --- Replace the Snapshot ---
	tx, err := h.DB.BeginTx(c, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback() // Safety net

	if _, err := tx.Exec("DELETE FROM cart_items WHERE user_id = ?", userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to clear cart"})
		return
	}

	insertQuery := "INSERT INTO cart_items (user_id, product_id, quantity) VALUES (?, ?, ?)"
	for _, item := range input.Cart {
		if _, err := tx.Exec(insertQuery, userID, item.ID, item.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save cart item"})
			return
		}
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to commit cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// CartProductResponse is a joined product+quantity row for GetCart.
type CartProductResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
	Quantity    int     `json:"quantity"`
}

// GetCart is the handler for GET /api/cart/:userId
func (h *Handlers) GetCart(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid user id"})
		return
	}

	query := `
		SELECT p.id, p.title, p.price, p.description, p.image, p.category, ci.quantity
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = ?`

	rows, err := h.DB.Query(query, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch cart"})
		return
	}
	defer rows.Close()

	items := []CartProductResponse{}
	for rows.Next() {
		var item CartProductResponse
		if err := rows.Scan(&item.ID, &item.Title, &item.Price, &item.Description, &item.Image, &item.Category, &item.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to scan cart item"})
			return
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error iterating cart items"})
		return
	}

	c.JSON(http.StatusOK, items)
}
