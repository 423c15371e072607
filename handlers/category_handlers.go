package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/areeb193/matraders-backend-sub001/database"
	"github.com/areeb193/matraders-backend-sub001/models"
)

type CategoryHandler struct {
	DB *gorm.DB
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.DB.Find(&categories).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Category not found")
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Category name is required")
		return
	}

	var existing models.Category
	if err := h.DB.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		jsonError(c, http.StatusBadRequest, "Category with this name already exists")
		return
	} else if !database.IsNotFound(err) {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}

	category := models.Category{Name: req.Name, Description: req.Description}
	if err := h.DB.Create(&category).Error; err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Category not found")
		return
	}

	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	updates := map[string]any{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if len(updates) > 0 {
		if err := h.DB.Model(&category).Updates(updates).Error; err != nil {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	c.JSON(http.StatusOK, category)
}

// Delete removes a category unconditionally. Products referencing it
// are not cascaded; dangling references are a known gap.
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var category models.Category
	if err := h.DB.First(&category, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Category not found")
		return
	}
	if err := h.DB.Delete(&category).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted Category"})
}
