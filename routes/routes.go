package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"neighborly/handlers"
	"neighborly/middleware"
)

func SetupRouter(h *handlers.Handler, limiter *middleware.IPRateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public routes
	router.POST("/signup", limiter.Middleware(), h.Signup)
	router.POST("/login", limiter.Middleware(), h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/check-auth", h.CheckAuth)

	// Everything else needs a valid session cookie
	protected := router.Group("/")
	protected.Use(middleware.CookieAuth(h.JWTSecret))

	protected.GET("/posts", h.ListPosts)
	protected.POST("/posts", h.CreatePost)
	protected.GET("/posts/sort", h.SortPosts)
	protected.POST("/posts/:id/like", h.LikePost)
	protected.POST("/posts/:id/dislike", h.DislikePost)
	protected.POST("/posts/:id/reply", h.ReplyToPost)

	protected.PUT("/user", h.UpdateProfile)
	protected.POST("/upload", h.UploadImage)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Endpoint not found",
			"path":  c.Request.URL.Path,
		})
	})

	return router
}
