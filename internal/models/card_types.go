package models

import "time"

// SavedCard is the model for the 'saved_cards' table.
// Only the display data (last4, brand) and an opaque token are stored;
// real card numbers never touch this system.
type SavedCard struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Last4     string    `json:"last4" db:"last4"`
	Brand     string    `json:"brand" db:"brand"`
	Token     string    `json:"token" db:"token"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
