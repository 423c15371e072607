// Package handlers contains the HTTP handlers and routing for the
// storefront API and the session guard for the admin route trees.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter builds the gin engine with all storefront routes wired to
// the given database handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := &AuthHandler{DB: db}
	categoryHandler := &CategoryHandler{DB: db}
	productHandler := &ProductHandler{DB: db}
	orderHandler := &OrderHandler{DB: db}
	uploadHandler := &UploadHandler{}
	searchHandler := &SearchHandler{DB: db}

	api := r.Group("/api")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)
		api.GET("/auth/profile", authHandler.Profile)

		api.GET("/categories", categoryHandler.List)
		api.POST("/categories", categoryHandler.Create)
		api.GET("/categories/:id", categoryHandler.Get)
		api.PUT("/categories/:id", categoryHandler.Update)
		api.DELETE("/categories/:id", categoryHandler.Delete)

		api.GET("/products", productHandler.List)
		api.POST("/products", productHandler.Create)
		api.GET("/products/:id", productHandler.Get)
		api.PUT("/products/:id", productHandler.Update)
		api.DELETE("/products/:id", productHandler.Delete)

		api.GET("/orders", orderHandler.List)
		api.POST("/orders", orderHandler.Create)
		api.GET("/orders/:id", orderHandler.Get)
		api.PUT("/orders/:id", orderHandler.Update)
		api.DELETE("/orders/:id", orderHandler.Delete)

		api.GET("/search", searchHandler.Search)

		api.POST("/upload", uploadHandler.Save)
		api.GET("/upload", uploadHandler.List)
		api.GET("/upload/:filename", uploadHandler.Info)
		api.DELETE("/upload/:filename", uploadHandler.Delete)
	}

	// The admin UI shells are rendered elsewhere; these trees exist to
	// gate browser navigation behind a valid session.
	for _, prefix := range []string{"/admin", "/backendadmin"} {
		group := r.Group(prefix, SessionGuard())
		group.GET("", adminShell)
		group.GET("/*page", adminShell)
	}

	return r
}

// adminShell reports the verified session to the admin UI shell. Role
// checks stay with the downstream layouts; a non-admin user is not
// blocked at this gate.
func adminShell(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": CurrentUser(c)})
}
