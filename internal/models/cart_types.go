package models

// CartItem is the model for the 'cart_items' table.
// The (user_id, product_id) pair is the primary key; a user's rows are
// always the full snapshot of their last sync call.
type CartItem struct {
	UserID    int64 `json:"userId" db:"user_id"`
	ProductID int64 `json:"productId" db:"product_id"`
	Quantity  int   `json:"quantity" db:"quantity"`
}
