package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/areeb193/matraders-backend-sub001/database"
	"github.com/areeb193/matraders-backend-sub001/models"
)

// newTestRouter builds a router over a fresh in-memory database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatal("failed to connect to test database:", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatal("failed to migrate test database:", err)
	}
	return SetupRouter(db), db
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func jsonUnmarshal(w *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(w.Body.Bytes(), v)
}

func uitoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal("invalid JSON response:", err)
	}
	return resp
}

func seedCategory(t *testing.T, db *gorm.DB, name string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: name + " gear"}
	if err := db.Create(&category).Error; err != nil {
		t.Fatal("failed to seed category:", err)
	}
	return category
}

func seedProduct(t *testing.T, db *gorm.DB, name string, categoryID uint, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, CategoryID: categoryID}
	if err := db.Create(&product).Error; err != nil {
		t.Fatal("failed to seed product:", err)
	}
	return product
}

// loginAdmin performs a fixed-administrator login and returns the
// session cookie.
func loginAdmin(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()
	w := doJSON(router, "POST", "/api/auth/login", map[string]any{
		"email":    "admin@matraders.com",
		"password": "admin123",
	})
	if w.Code != http.StatusOK {
		t.Fatal("admin login failed with status", w.Code)
	}
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "auth_token" {
			return cookie
		}
	}
	t.Fatal("no auth_token cookie set on login")
	return nil
}
