package models

import "time"

// Favorite is the model for the 'favorites' table.
// The (user_id, product_id) pair is unique; re-adding an existing pair
// is a no-op.
type Favorite struct {
	UserID    int64     `json:"userId" db:"user_id"`
	ProductID int64     `json:"productId" db:"product_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
