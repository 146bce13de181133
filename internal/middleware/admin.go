package middleware

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminMiddleware allows only users with the 'admin' role through.
// It must run after AuthMiddleware, which sets "userID".
func AdminMiddleware(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDRaw, exists := c.Get("userID")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			c.Abort()
			return
		}
		userID := userIDRaw.(int64)

		var role string
		err := db.QueryRow("SELECT role FROM users WHERE id = ?", userID).Scan(&role)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Failed to verify user role"})
			c.Abort()
			return
		}

		if role != "admin" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Administrator access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
