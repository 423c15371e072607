package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/areeb193/matraders-backend-sub001/models"
)

func TestCreateProduct(t *testing.T) {
	router, db := newTestRouter(t)
	category := seedCategory(t, db, "Panels")

	w := doJSON(router, "POST", "/api/products", map[string]any{
		"name":          "400W Mono Panel",
		"price":         189.99,
		"category":      category.ID,
		"stockQuantity": 25,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Product
	assert.NoError(t, jsonUnmarshal(w, &resp))
	assert.Equal(t, "400W Mono Panel", resp.Name)
	assert.Equal(t, category.ID, resp.CategoryID)
	assert.Equal(t, "Panels", resp.Category.Name)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	router, db := newTestRouter(t)

	w := doJSON(router, "POST", "/api/products", map[string]any{
		"name":     "400W Mono Panel",
		"price":    189.99,
		"category": 999,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Category not found", decodeBody(t, w)["error"])

	// Nothing was persisted.
	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateProductMissingCategory(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(router, "POST", "/api/products", map[string]any{
		"name":  "400W Mono Panel",
		"price": 189.99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid category id", decodeBody(t, w)["error"])
}

func TestCreateProductMultipartImage(t *testing.T) {
	router, db := newTestRouter(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	category := seedCategory(t, db, "Panels")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "400W Mono Panel")
	_ = mw.WriteField("price", "189.99")
	_ = mw.WriteField("category", uitoa(category.ID))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="panel.png"`)
	header.Set("Content-Type", "image/png")
	part, _ := mw.CreatePart(header)
	_, _ = part.Write([]byte("png-bytes"))
	_ = mw.Close()

	req, _ := http.NewRequest("POST", "/api/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp models.Product
	assert.NoError(t, jsonUnmarshal(w, &resp))
	assert.Contains(t, resp.Image, "/uploads/products/product-")

	// The file landed in the products subdirectory.
	entries, err := os.ReadDir(filepath.Join(os.Getenv("UPLOAD_DIR"), "products"))
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateProductRejectsBadImageType(t *testing.T) {
	router, db := newTestRouter(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())
	category := seedCategory(t, db, "Panels")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("name", "400W Mono Panel")
	_ = mw.WriteField("price", "189.99")
	_ = mw.WriteField("category", uitoa(category.ID))

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="panel.pdf"`)
	header.Set("Content-Type", "application/pdf")
	part, _ := mw.CreatePart(header)
	_, _ = part.Write([]byte("%PDF"))
	_ = mw.Close()

	req, _ := http.NewRequest("POST", "/api/products", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w)["error"], "Invalid image type")
}

func TestUpdateProduct(t *testing.T) {
	router, db := newTestRouter(t)
	category := seedCategory(t, db, "Panels")
	product := seedProduct(t, db, "400W Mono Panel", category.ID, 189.99)

	w := doJSON(router, "PUT", "/api/products/"+uitoa(product.ID), map[string]any{"price": 179.99})
	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.Product
	assert.NoError(t, jsonUnmarshal(w, &resp))
	assert.Equal(t, 179.99, resp.Price)
}

func TestUpdateProductUnknownCategory(t *testing.T) {
	router, db := newTestRouter(t)
	category := seedCategory(t, db, "Panels")
	product := seedProduct(t, db, "400W Mono Panel", category.ID, 189.99)

	w := doJSON(router, "PUT", "/api/products/"+uitoa(product.ID), map[string]any{"category": 999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteProductWithImageCleanup(t *testing.T) {
	router, db := newTestRouter(t)
	uploadDir := t.TempDir()
	t.Setenv("UPLOAD_DIR", uploadDir)

	// Stage an image file the product points at.
	assert.NoError(t, os.MkdirAll(filepath.Join(uploadDir, "products"), 0o755))
	imagePath := filepath.Join(uploadDir, "products", "panel.png")
	assert.NoError(t, os.WriteFile(imagePath, []byte("png-bytes"), 0o644))

	category := seedCategory(t, db, "Panels")
	product := models.Product{Name: "400W Mono Panel", Price: 189.99, CategoryID: category.ID, Image: "/uploads/products/panel.png"}
	assert.NoError(t, db.Create(&product).Error)

	w := doJSON(router, "DELETE", "/api/products/"+uitoa(product.ID)+"?cleanup=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["imageCleanup"])
	assert.Equal(t, true, resp["imageDeleted"])

	_, err := os.Stat(imagePath)
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteProductCleanupFailureStillDeletes(t *testing.T) {
	router, db := newTestRouter(t)
	t.Setenv("UPLOAD_DIR", t.TempDir())

	category := seedCategory(t, db, "Panels")
	product := models.Product{Name: "400W Mono Panel", Price: 189.99, CategoryID: category.ID, Image: "/uploads/products/missing.png"}
	assert.NoError(t, db.Create(&product).Error)

	w := doJSON(router, "DELETE", "/api/products/"+uitoa(product.ID)+"?cleanup=true", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["imageCleanup"])
	assert.Equal(t, false, resp["imageDeleted"])

	var count int64
	db.Model(&models.Product{}).Count(&count)
	assert.Zero(t, count)
}
