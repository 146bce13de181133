package handlers

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rkuznetsov/techstore-golang/internal/models"
)

//
// --- Product Handlers (Public, Read-Only) ---
//

// setNoCacheHeaders disables client/proxy caching. The storefront always
// wants fresh prices, so every catalog response carries these.
func setNoCacheHeaders(c *gin.Context) {
	c.Header("Cache-Control", "no-store, no-cache, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

// GetProducts is the handler for GET /api/products
// Supported query filters: ?search= (title substring, case-insensitive),
// ?category= (exact match), ?sort=asc|desc (by price; default is by id).
func (h *Handlers) GetProducts(c *gin.Context) {
	// 1. --- Build the Query ---
	query := "SELECT id, title, price, description, image, category FROM products"
	var conditions []string
	var args []interface{}

	if search := c.Query("search"); search != "" {
		conditions = append(conditions, "LOWER(title) LIKE ?")
		args = append(args, "%"+strings.ToLower(search)+"%")
	}
	if category := c.Query("category"); category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, category)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	switch c.Query("sort") {
	case "asc":
		query += " ORDER BY price ASC"
	case "desc":
		query += " ORDER BY price DESC"
	default:
		query += " ORDER BY id"
	}

	// 2. --- Run & Scan ---
	rows, err := h.DB.Query(query, args...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch products"})
		return
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Image, &p.Category); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to scan product"})
			return
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error iterating products"})
		return
	}

	// 3. --- Respond ---
	setNoCacheHeaders(c)
	c.JSON(http.StatusOK, products)
}

// GetProductByID is the handler for GET /api/products/:id
func (h *Handlers) GetProductByID(c *gin.Context) {
	id := c.Param("id")

	var p models.Product
	query := "SELECT id, title, price, description, image, category FROM products WHERE id = ?"
	err := h.DB.QueryRow(query, id).Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Image, &p.Category)

	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch product"})
		return
	}

	setNoCacheHeaders(c)
	c.JSON(http.StatusOK, p)
}
