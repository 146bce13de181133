package models

// Coupon is the model for the 'coupons' table.
// Codes are matched case-insensitively on lookup.
type Coupon struct {
	ID       int64   `json:"id" db:"id"`
	Code     string  `json:"code" db:"code"`
	Discount float64 `json:"discount" db:"discount"` // percentage off
	Active   bool    `json:"active" db:"active"`
}
