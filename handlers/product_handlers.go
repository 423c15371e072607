package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/areeb193/matraders-backend-sub001/config"
	"github.com/areeb193/matraders-backend-sub001/logger"
	"github.com/areeb193/matraders-backend-sub001/models"
	"github.com/areeb193/matraders-backend-sub001/util/random"
)

const maxImageSize = 5 * 1024 * 1024

// Image types accepted for product images. The generic upload store
// additionally accepts svg; product images do not.
var productImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type ProductHandler struct {
	DB *gorm.DB
}

type productRequest struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Category      uint    `json:"category"`
	StockQuantity int     `json:"stockQuantity"`
	Image         string  `json:"image"`
}

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Preload("Category").Find(&products).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var product models.Product
	if err := h.DB.Preload("Category").First(&product, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Product not found")
		return
	}
	c.JSON(http.StatusOK, product)
}

// Create accepts either a JSON body or a multipart form carrying an
// image file. The category reference must resolve before anything is
// persisted.
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		req.Name = c.PostForm("name")
		req.Description = c.PostForm("description")
		req.Price, _ = strconv.ParseFloat(c.PostForm("price"), 64)
		category, _ := strconv.ParseUint(c.PostForm("category"), 10, 64)
		req.Category = uint(category)
		req.StockQuantity, _ = strconv.Atoi(c.PostForm("stockQuantity"))

		file, err := c.FormFile("image")
		if err == nil && file.Size > 0 {
			imagePath, msg := h.saveProductImage(c, file)
			if msg != "" {
				jsonError(c, http.StatusBadRequest, msg)
				return
			}
			req.Image = imagePath
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	if req.Category == 0 {
		jsonError(c, http.StatusBadRequest, "Invalid category id")
		return
	}
	var category models.Category
	if err := h.DB.First(&category, req.Category).Error; err != nil {
		jsonError(c, http.StatusBadRequest, "Category not found")
		return
	}
	if req.Name == "" {
		jsonError(c, http.StatusBadRequest, "Product name is required")
		return
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		CategoryID:    req.Category,
		StockQuantity: req.StockQuantity,
		Image:         req.Image,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	h.DB.Preload("Category").First(&product, product.ID)
	c.JSON(http.StatusCreated, product)
}

// saveProductImage validates and stores an uploaded product image,
// returning its public path or a validation message.
func (h *ProductHandler) saveProductImage(c *gin.Context, file *multipart.FileHeader) (string, string) {
	contentType := file.Header.Get("Content-Type")
	if !productImageTypes[contentType] {
		return "", "Invalid image type. Allowed: jpeg, png, gif, webp"
	}
	if file.Size > maxImageSize {
		return "", "Image too large. Max: 5MB"
	}

	uploadDir := filepath.Join(config.GetUploadDir(), "products")
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return "", err.Error()
	}

	filename := fmt.Sprintf("product-%d-%s%s", time.Now().UnixMilli(), random.Seq(6), filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", err.Error()
	}
	return "/uploads/products/" + filename, ""
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Product not found")
		return
	}

	var req productRequest
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
	if req.Price != 0 {
		updates["price"] = req.Price
	}
	if req.StockQuantity != 0 {
		updates["stock_quantity"] = req.StockQuantity
	}
	if req.Image != "" {
		updates["image"] = req.Image
	}
	if req.Category != 0 {
		var category models.Category
		if err := h.DB.First(&category, req.Category).Error; err != nil {
			jsonError(c, http.StatusBadRequest, "Category not found")
			return
		}
		updates["category_id"] = req.Category
	}

	if len(updates) > 0 {
		if err := h.DB.Model(&product).Updates(updates).Error; err != nil {
			jsonError(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	h.DB.Preload("Category").First(&product, product.ID)
	c.JSON(http.StatusOK, product)
}

// Delete removes a product. With ?cleanup=true the stored image file is
// removed best-effort; a cleanup failure is reported in the response
// but never fails the delete.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		jsonError(c, http.StatusNotFound, "Invalid ID")
		return
	}
	var product models.Product
	if err := h.DB.First(&product, id).Error; err != nil {
		jsonError(c, http.StatusNotFound, "Product not found")
		return
	}

	cleanupImage := c.Query("cleanup") == "true"
	imageDeleted := false
	if cleanupImage && product.Image != "" {
		imagePath := filepath.Join(config.GetUploadDir(), strings.TrimPrefix(product.Image, "/uploads/"))
		if err := os.Remove(imagePath); err != nil {
			logger.Warning("failed to delete product image:", err)
		} else {
			imageDeleted = true
		}
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":      "Deleted Product",
		"imageCleanup": cleanupImage,
		"imageDeleted": imageDeleted,
	})
}
