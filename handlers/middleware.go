package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/areeb193/matraders-backend-sub001/auth"
)

const claimsKey = "session_claims"

// SessionGuard protects the admin route trees. The token is fully
// verified (signature and expiry) at this boundary; browsers without a
// valid session are redirected to the login page. The verified claim
// set is placed in the context for downstream handlers.
func SessionGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := auth.UserFromRequest(c)
		if claims == nil {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// CurrentUser returns the claim set stored by SessionGuard, or nil.
func CurrentUser(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}
