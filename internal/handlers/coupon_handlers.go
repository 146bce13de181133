package handlers

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rkuznetsov/techstore-golang/internal/models"
)

//
// --- Coupon Handlers ---
//

// ValidateCouponInput is the JSON body for POST /api/coupons/validate.
type ValidateCouponInput struct {
	Code string `json:"code" binding:"required"`
}

// ValidateCoupon is the handler for POST /api/coupons/validate
// Codes are matched case-insensitively: "SAVE10", "save10" and "Save10"
// are the same coupon. Inactive and unknown codes both come back 404,
// so the frontend can show one "invalid coupon" message.
func (h *Handlers) ValidateCoupon(c *gin.Context) {
	var input ValidateCouponInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Coupon code is required"})
		return
	}

	var coupon models.Coupon
	query := "SELECT id, code, discount, active FROM coupons WHERE LOWER(code) = LOWER(?)"
	err := h.DB.QueryRow(query, input.Code).Scan(&coupon.ID, &coupon.Code, &coupon.Discount, &coupon.Active)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Coupon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to look up coupon"})
		return
	}

	if !coupon.Active {
		c.JSON(http.StatusNotFound, gin.H{"message": "Coupon is no longer active"})
		return
	}

	c.JSON(http.StatusOK, coupon)
}
