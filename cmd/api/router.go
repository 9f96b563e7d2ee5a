package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sravanvenkat03/library/internal/shared/metrics"
	"github.com/Sravanvenkat03/library/internal/shared/middleware"
	"github.com/Sravanvenkat03/library/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares. Security headers and the profiler are pure
	// response/request transforms; their order relative to the routes
	// does not matter.
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
		middleware.SecurityHeaders(c.Config.IsProduction()),
		metrics.Middleware(),
	)
	if c.Config.Profiler.Enabled {
		router.Use(middleware.Profiler(c.Config.Profiler))
	}

	// Observability endpoints
	router.GET("/health", healthCheckHandler(c))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	setupBookRoutes(router, c)
	setupUserRoutes(router, c)
	setupReviewRoutes(router, c)

	return router
}

// ========================================
// BOOK ROUTES
// ========================================
func setupBookRoutes(r *gin.Engine, c *container.Container) {
	books := r.Group("/books")
	{
		books.POST("", c.BookHandler.AddBooks)
		books.PUT("", c.BookHandler.UpdateBooks)
		books.DELETE("", c.BookHandler.DeleteBooks)
		books.GET("/search", c.BookHandler.SearchBooks)
		books.POST("/rate", c.BookHandler.RateBooks)
		books.GET("/:book_id", c.BookHandler.GetBook)
	}
}

// ========================================
// USER ROUTES
// ========================================
func setupUserRoutes(r *gin.Engine, c *container.Container) {
	users := r.Group("/users")
	{
		users.POST("", c.UserHandler.AddUsers)
		users.DELETE("", c.UserHandler.DeleteUsers)
		users.PUT("/progress", c.UserHandler.TrackProgress)
		users.GET("/recommend", c.UserHandler.Recommend)
	}
}

// ========================================
// REVIEW ROUTES
// ========================================
func setupReviewRoutes(r *gin.Engine, c *container.Container) {
	reviews := r.Group("/reviews")
	{
		reviews.POST("", c.ReviewHandler.AddReviews)
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Client == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}
