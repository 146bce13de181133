package models

import "time"

// Order is the model for the 'orders' table.
type Order struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	TotalPrice float64   `json:"totalPrice" db:"total_price"`
	Status     string    `json:"status" db:"status"` // e.g. pending, shipped, delivered
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`

	// Populated by the admin listing join, not a column of 'orders'.
	CustomerEmail string `json:"customerEmail,omitempty" db:"-"`
}

// OrderItem is the model for the 'order_items' table.
// Price is the per-unit price at the time of purchase; it is never
// recomputed from the live product price.
type OrderItem struct {
	ID            int64   `json:"id" db:"id"`
	OrderID       int64   `json:"orderId" db:"order_id"`
	ProductID     int64   `json:"productId" db:"product_id"`
	Quantity      int     `json:"quantity" db:"quantity"`
	Price         float64 `json:"price" db:"price"`
	SelectedColor *string `json:"selectedColor,omitempty" db:"selected_color"`
}
