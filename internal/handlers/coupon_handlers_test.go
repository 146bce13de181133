package handlers

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/rkuznetsov/techstore-golang/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func couponRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/coupons/validate", h.ValidateCoupon)
	return r
}

var couponColumns = []string{"id", "code", "discount", "active"}

const couponQuery = "SELECT id, code, discount, active FROM coupons WHERE LOWER(code) = LOWER(?)"

func TestValidateCouponMatchesAnyCase(t *testing.T) {
	h, mock := newTestHandlers(t)
	r := couponRouter(h)

	// The stored code is "Save10"; both spellings must hit the same
	// LOWER() comparison and succeed.
	for _, sent := range []string{"SAVE10", "save10"} {
		mock.ExpectQuery(regexp.QuoteMeta(couponQuery)).WithArgs(sent).
			WillReturnRows(sqlmock.NewRows(couponColumns).AddRow(1, "Save10", 10.0, true))

		w := performRequest(r, http.MethodPost, "/api/coupons/validate", `{"code":"`+sent+`"}`)
		require.Equal(t, http.StatusOK, w.Code, "code %q should validate", sent)

		var coupon models.Coupon
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &coupon))
		assert.Equal(t, "Save10", coupon.Code)
		assert.Equal(t, 10.0, coupon.Discount)
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestValidateCouponInactiveIsNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta(couponQuery)).WithArgs("OLDCODE").
		WillReturnRows(sqlmock.NewRows(couponColumns).AddRow(2, "OldCode", 25.0, false))

	w := performRequest(couponRouter(h), http.MethodPost, "/api/coupons/validate", `{"code":"OLDCODE"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no longer active")
}

func TestValidateCouponUnknownIsNotFound(t *testing.T) {
	h, mock := newTestHandlers(t)

	mock.ExpectQuery(regexp.QuoteMeta(couponQuery)).WithArgs("NOPE").
		WillReturnRows(sqlmock.NewRows(couponColumns))

	w := performRequest(couponRouter(h), http.MethodPost, "/api/coupons/validate", `{"code":"NOPE"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestValidateCouponRequiresCode(t *testing.T) {
	h, _ := newTestHandlers(t)

	w := performRequest(couponRouter(h), http.MethodPost, "/api/coupons/validate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
