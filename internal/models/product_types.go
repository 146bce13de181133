package models

// Product is the model for the 'products' table.
// Products are read-only from the API's point of view; the catalog is
// seeded directly in the store.
type Product struct {
	ID          int64   `json:"id" db:"id"`
	Title       string  `json:"title" db:"title"`
	Price       float64 `json:"price" db:"price"`
	Description string  `json:"description" db:"description"`
	Image       string  `json:"image" db:"image"`
	Category    string  `json:"category" db:"category"`
}
