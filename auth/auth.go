// Package auth implements the credential and session service: signed
// session tokens carried in an HTTP-only cookie, and password hashing
// with a unified verification path.
package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/areeb193/matraders-backend-sub001/config"
)

const (
	// CookieName is the session cookie set on login.
	CookieName = "auth_token"

	// TokenTTL bounds every session. There is no refresh; expiry
	// forces re-authentication.
	TokenTTL = 10 * time.Minute

	bcryptCost = 12
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the claim set embedded in a session token.
type Claims struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SignToken signs a session token for the given user fields, valid for
// TokenTTL from now.
func SignToken(id, name, email, role string) (string, error) {
	claims := Claims{
		ID:    id,
		Name:  name,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.GetJWTSecret()))
}

// VerifyToken validates signature and expiry and returns the claim set.
func VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(config.GetJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// SetAuthCookie stores the token in the session cookie.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(TokenTTL.Seconds()), "/", "", config.SecureCookies(), true)
}

// ClearAuthCookie deletes the session cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", config.SecureCookies(), true)
}

// TokenFromRequest extracts the session token, preferring the cookie
// and falling back to a bearer Authorization header.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(CookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// UserFromRequest resolves the current session, or nil when the request
// carries no valid token. Callers map nil to 401.
func UserFromRequest(c *gin.Context) *Claims {
	token := TokenFromRequest(c)
	if token == "" {
		return nil
	}
	claims, err := VerifyToken(token)
	if err != nil {
		return nil
	}
	return claims
}

// HashPassword hashes a password with bcrypt at cost 12.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

// VerifyPassword compares a candidate against the stored credential.
// Bcrypt hashes are compared with bcrypt; anything else is a legacy
// plaintext record and is compared in constant time.
func VerifyPassword(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") || strings.HasPrefix(stored, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}
