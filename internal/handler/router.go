package handler

import (
	"net/http"

	"github.com/reisermn/virtual-island/internal/auth"

	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine with the full route table. The URL map
// mirrors the public site: login at the root, registration, and the
// session-gated season views.
func NewRouter() *gin.Engine {
	router := gin.Default()
	router.Use(auth.Middleware())

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Public routes
	router.GET("/", Home)
	router.POST("/", LoginUser)
	router.GET("/about", About)
	router.GET("/register", RegisterForm)
	router.POST("/register", RegisterUser)

	// Authenticated routes
	authed := router.Group("/", auth.RequireAuth())
	{
		authed.GET("/logout", Logout)
		authed.GET("/seasons", GetSeasons)
		authed.GET("/seasons/:name", GetSeason)
		authed.POST("/seasons/:name", auth.AdminMiddleware(), TribalCouncil)
	}

	return router
}
