package handlers

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rkuznetsov/techstore-golang/internal/models"
	"github.com/rkuznetsov/techstore-golang/internal/notify"
)

//
// --- Order Handlers ---
//

// OrderItemInput is one line of the checkout payload. Price is the
// price the customer saw; it becomes the stored snapshot as-is.
type OrderItemInput struct {
	ID            int64   `json:"id" binding:"required"`
	Quantity      int     `json:"quantity" binding:"required,gt=0"`
	Price         float64 `json:"price" binding:"gte=0"` // zero is valid: free/comped items
	SelectedColor string  `json:"selectedColor"`
}

// CreateOrderInput is the JSON body for POST /api/orders.
type CreateOrderInput struct {
	UserID     int64            `json:"user_id" binding:"required"`
	Items      []OrderItemInput `json:"items" binding:"required,min=1,dive"`
	TotalPrice float64          `json:"total_price" binding:"gte=0"` // zero is valid: fully discounted orders
}

// CreateOrder is the handler for POST /api/orders
// The order row and all of its line items are written in a single
// transaction: if any insert fails, the whole order rolls back and the
// caller gets a 500. On success the admin is notified over Telegram in
// a fire-and-forget goroutine; notification failure never affects the
// response.
func (h *Handlers) CreateOrder(c *gin.Context) {
	// 1. --- Bind & Validate JSON ---
	var input CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid order payload: " + err.Error()})
		return
	}

	// 2. --- Begin Transaction ---
	tx, err := h.DB.BeginTx(c, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to start transaction"})
		return
	}
	defer tx.Rollback() // Safety net

	// 3. --- Insert the Order Row ---
	orderQuery := "INSERT INTO orders (user_id, total_price, status, created_at) VALUES (?, ?, 'pending', ?)"
	result, err := tx.Exec(orderQuery, input.UserID, input.TotalPrice, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create order"})
		return
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to get new order ID"})
		return
	}

	// 4. --- Insert the Line Items (in payload order) ---
	itemQuery := "INSERT INTO order_items (order_id, product_id, quantity, price, selected_color) VALUES (?, ?, ?, ?, ?)"
	for _, item := range input.Items {
		var color sql.NullString
		if item.SelectedColor != "" {
			color = sql.NullString{String: item.SelectedColor, Valid: true}
		}
		if _, err := tx.Exec(itemQuery, orderID, item.ID, item.Quantity, item.Price, color); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to save order item"})
			return
		}
	}

	// 5. --- Commit ---
	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to commit order"})
		return
	}

	// 6. --- Fire-and-Forget Notification ---
	if h.Notifier != nil {
		details := notify.OrderDetails{
			OrderID:    orderID,
			UserID:     input.UserID,
			TotalPrice: input.TotalPrice,
		}
		for _, item := range input.Items {
			details.Items = append(details.Items, notify.OrderItemSummary{
				ProductID:     item.ID,
				Quantity:      item.Quantity,
				Price:         item.Price,
				SelectedColor: item.SelectedColor,
			})
		}
		go h.Notifier.NotifyNewOrder(details)
	}

	// 7. --- Respond ---
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"orderId": orderID,
	})
}

//
// --- Admin Order Handlers ---
//

// GetAllOrders is the handler for GET /api/admin/orders
// Returns every order, newest first, with the customer's email joined in.
func (h *Handlers) GetAllOrders(c *gin.Context) {
	query := `
		SELECT o.id, o.user_id, o.total_price, o.status, o.created_at, u.email
		FROM orders o
		JOIN users u ON o.user_id = u.id
		ORDER BY o.created_at DESC`

	rows, err := h.DB.Query(query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch orders"})
		return
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.TotalPrice, &o.Status, &o.CreatedAt, &o.CustomerEmail); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to scan order"})
			return
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error iterating orders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// UpdateOrderStatusInput is the JSON body for PATCH /api/admin/orders/:id/status.
type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus is the handler for PATCH /api/admin/orders/:id/status
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")

	var input UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}

	result, err := h.DB.Exec("UPDATE orders SET status = ? WHERE id = ?", input.Status, orderID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order status"})
		return
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "status": input.Status})
}
