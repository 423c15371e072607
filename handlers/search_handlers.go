package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/areeb193/matraders-backend-sub001/models"
)

const defaultSearchLimit = 10

type SearchHandler struct {
	DB *gorm.DB
}

// Search fans out case-insensitive substring queries across products,
// categories and orders, sharing one result limit. A bare search with
// type=all and no query is rejected.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	searchType := c.DefaultQuery("type", "all")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultSearchLimit)))
	if err != nil || limit <= 0 {
		limit = defaultSearchLimit
	}

	if query == "" && searchType == "all" {
		jsonError(c, http.StatusBadRequest, "Search query (q) is required for general search")
		return
	}

	pattern := "%" + strings.ToLower(query) + "%"
	results := gin.H{}
	counts := gin.H{"products": 0, "categories": 0, "orders": 0}

	if searchType == "all" || searchType == "products" {
		q := h.DB.Model(&models.Product{}).Preload("Category")
		if query != "" {
			q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		if minPrice := c.Query("minPrice"); minPrice != "" {
			if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
				q = q.Where("price >= ?", v)
			}
		}
		if maxPrice := c.Query("maxPrice"); maxPrice != "" {
			if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				q = q.Where("price <= ?", v)
			}
		}
		if category := c.Query("category"); category != "" {
			q = q.Where("category_id = ?", category)
		}

		var products []models.Product
		if err := q.Limit(limit).Order("created_at DESC").Find(&products).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, err.Error())
			return
		}
		results["products"] = products
		counts["products"] = len(products)
	}

	if searchType == "all" || searchType == "categories" {
		q := h.DB.Model(&models.Category{})
		if query != "" {
			q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		}
		var categories []models.Category
		if err := q.Limit(limit).Find(&categories).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, err.Error())
			return
		}
		results["categories"] = categories
		counts["categories"] = len(categories)
	}

	if searchType == "all" || searchType == "orders" {
		q := h.DB.Model(&models.Order{}).Preload("Items.Product")
		if query != "" {
			q = q.Where("LOWER(customer_name) LIKE ?", pattern)
		}
		var orders []models.Order
		if err := q.Limit(limit).Order("created_at DESC").Find(&orders).Error; err != nil {
			jsonError(c, http.StatusInternalServerError, err.Error())
			return
		}
		results["orders"] = orders
		counts["orders"] = len(orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"type":    searchType,
		"results": results,
		"count":   counts,
	})
}
