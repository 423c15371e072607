package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/areeb193/matraders-backend-sub001/models"
)

type OrderHandler struct {
	DB *gorm.DB
}

type orderItemRequest struct {
	Product            uint    `json:"product"`
	Quantity           int     `json:"quantity"`
	PriceAtTimeOfOrder float64 `json:"priceAtTimeOfOrder"`
}

type orderRequest struct {
	Items        []orderItemRequest `json:"items"`
	CustomerName string             `json:"customerName"`
	TotalAmount  float64            `json:"totalAmount"`
	Status       string             `json:"status"`
}

func (h *OrderHandler) List(c *gin.Context) {
	var orders []models.Order
	if err := h.DB.Preload("Items.Product").Find(&orders).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var order models.Order
	if err := h.DB.Preload("Items.Product").First(&order, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func validItems(items []orderItemRequest) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if it.Product == 0 || it.Quantity <= 0 {
			return false
		}
	}
	return true
}

// verifyProductsExist checks every referenced product with one batched
// query and returns the first missing id.
func verifyProductsExist(db *gorm.DB, items []orderItemRequest) (uint, error) {
	ids := make([]uint, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Product)
	}
	var found []models.Product
	if err := db.Where("id IN ?", ids).Find(&found).Error; err != nil {
		return 0, err
	}
	exists := make(map[uint]bool, len(found))
	for _, p := range found {
		exists[p.ID] = true
	}
	for _, id := range ids {
		if !exists[id] {
			return id, nil
		}
	}
	return 0, nil
}

// Create validates the item list, verifies product references with a
// batched existence check and writes the order atomically.
func (h *OrderHandler) Create(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !validItems(req.Items) {
		jsonError(c, http.StatusBadRequest, "Invalid items array")
		return
	}
	if req.CustomerName == "" {
		jsonError(c, http.StatusBadRequest, "Customer name is required")
		return
	}

	missing, err := verifyProductsExist(h.DB, req.Items)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	if missing != 0 {
		jsonError(c, http.StatusBadRequest, fmt.Sprintf("Product not found: %d", missing))
		return
	}

	order := models.Order{
		CustomerName: req.CustomerName,
		TotalAmount:  req.TotalAmount,
		Status:       req.Status,
	}
	for _, it := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			ProductID:          it.Product,
			Quantity:           it.Quantity,
			PriceAtTimeOfOrder: it.PriceAtTimeOfOrder,
		})
	}

	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.DB.Preload("Items.Product").First(&order, order.ID)
	c.JSON(http.StatusCreated, order)
}

// Update replaces order fields; when items are provided they are
// re-validated and swapped out inside one transaction.
func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Order not found")
		return
	}

	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Items != nil {
		if !validItems(req.Items) {
			jsonError(c, http.StatusBadRequest, "Invalid items array")
			return
		}
		missing, err := verifyProductsExist(h.DB, req.Items)
		if err != nil {
			jsonError(c, http.StatusInternalServerError, err.Error())
			return
		}
		if missing != 0 {
			jsonError(c, http.StatusBadRequest, fmt.Sprintf("Product not found: %d", missing))
			return
		}
	}

	err := h.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]any{}
		if req.CustomerName != "" {
			updates["customer_name"] = req.CustomerName
		}
		if req.TotalAmount != 0 {
			updates["total_amount"] = req.TotalAmount
		}
		if req.Status != "" {
			updates["status"] = req.Status
		}
		if len(updates) > 0 {
			if err := tx.Model(&order).Updates(updates).Error; err != nil {
				return err
			}
		}
		if req.Items != nil {
			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			for _, it := range req.Items {
				item := models.OrderItem{
					OrderID:            order.ID,
					ProductID:          it.Product,
					Quantity:           it.Quantity,
					PriceAtTimeOfOrder: it.PriceAtTimeOfOrder,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	h.DB.Preload("Items.Product").First(&order, order.ID)
	c.JSON(http.StatusOK, order)
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var order models.Order
	if err := h.DB.First(&order, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Order not found")
		return
	}
	if err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	}); err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted Order"})
}
