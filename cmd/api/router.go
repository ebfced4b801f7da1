package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/middleware"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(v1, c)
		setupAuthRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// PUBLIC ROUTES
// ========================================
// Reads degrade to the compiled-in fallback data when the store is down;
// the contact form is the only unauthenticated write and is rate limited.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	v1.GET("/projects", c.ProjectHandler.ListProjects)

	blog := v1.Group("/blog")
	{
		blog.GET("/posts", c.BlogHandler.ListPosts)
		blog.GET("/posts/:id", c.BlogHandler.GetPost)
	}

	v1.POST("/contact",
		middleware.RateLimit(c.Cache, c.Config.RateLimit.ContactLimit, c.Config.RateLimit.ContactWindow),
		c.ContactHandler.SubmitMessage,
	)
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
		auth.POST("/logout", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Logout)
		auth.GET("/me", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.Me)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
// Everything below requires a valid access token carrying the admin role.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(middleware.AuthMiddleware(c.JWTManager), middleware.AdminMiddleware())
	{
		admin.GET("/dashboard", c.DashboardHandler.GetSummary)

		admin.GET("/projects", c.ProjectHandler.ListAdminProjects)
		admin.POST("/projects", c.ProjectHandler.CreateProject)
		admin.PUT("/projects/:id", c.ProjectHandler.UpdateProject)
		admin.DELETE("/projects/:id", c.ProjectHandler.DeleteProject)

		admin.GET("/blog-posts", c.BlogHandler.ListAdminPosts)
		admin.POST("/blog-posts", c.BlogHandler.CreatePost)
		admin.GET("/blog-posts/:id", c.BlogHandler.GetAdminPost)
		admin.PUT("/blog-posts/:id", c.BlogHandler.UpdatePost)
		admin.DELETE("/blog-posts/:id", c.BlogHandler.DeletePost)

		admin.GET("/contact-messages", c.ContactHandler.ListMessages)
		admin.POST("/contact-messages/:id/read", c.ContactHandler.MarkMessageRead)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
// Reports the store and cache status without failing the endpoint: the API
// keeps serving fallback content while the database is down.
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
		defer cancel()

		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			cacheStatus = "down"
		}

		response.Success(ctx, http.StatusOK, gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
			"cache":       cacheStatus,
		})
	}
}
