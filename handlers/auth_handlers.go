package handlers

import (
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/areeb193/matraders-backend-sub001/auth"
	"github.com/areeb193/matraders-backend-sub001/config"
	"github.com/areeb193/matraders-backend-sub001/database"
	"github.com/areeb193/matraders-backend-sub001/logger"
	"github.com/areeb193/matraders-backend-sub001/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type AuthHandler struct {
	DB *gorm.DB
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a User with role "user". The password is hashed
// before persisting and never returned.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if msg := validateRegistration(req); msg != "" {
		jsonError(c, http.StatusBadRequest, msg)
		return
	}

	var existing models.User
	if err := h.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		jsonError(c, http.StatusBadRequest, "User with this email already exists")
		return
	} else if !database.IsNotFound(err) {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		jsonError(c, http.StatusInternalServerError, err.Error())
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
		Role:     "user",
	}
	if err := h.DB.Create(&user).Error; err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

func validateRegistration(req registerRequest) string {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return "Name, email and password are required"
	}
	if len(req.Name) < 2 || len(req.Name) > 100 {
		return "Name must be between 2 and 100 characters"
	}
	if !emailPattern.MatchString(req.Email) {
		return "Invalid email address"
	}
	if len(req.Password) < 8 {
		return "Password must be at least 8 characters long"
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range req.Password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasUpper || !hasLower || !hasDigit {
		return "Password must contain an uppercase letter, a lowercase letter and a digit"
	}
	return ""
}

// Login issues a session cookie. The fixed administrator pair grants an
// admin session without a database record.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		jsonError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		jsonError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	if req.Email == config.GetAdminEmail() && req.Password == config.GetAdminPassword() {
		h.issueSession(c, "admin", "Admin", config.GetAdminEmail(), "admin")
		return
	}

	var user models.User
	if err := h.DB.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
		if database.IsNotFound(err) {
			jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			jsonError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	if !auth.VerifyPassword(user.Password, req.Password) {
		jsonError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.issueSession(c, strconv.FormatUint(uint64(user.ID), 10), user.Name, user.Email, user.Role)
}

func (h *AuthHandler) issueSession(c *gin.Context, id, name, email, role string) {
	token, err := auth.SignToken(id, name, email, role)
	if err != nil {
		logger.Error("failed to sign session token:", err)
		jsonError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	auth.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user": gin.H{
			"id":    id,
			"name":  name,
			"email": email,
			"role":  role,
		},
	})
}

// Logout clears the session cookie. Always succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	auth.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// Profile resolves the current session from the cookie or bearer header.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := auth.UserFromRequest(c)
	if claims == nil {
		jsonError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":    claims.ID,
		"name":  claims.Name,
		"email": claims.Email,
		"role":  claims.Role,
	}})
}
