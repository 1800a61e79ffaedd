package http

import (
	"github.com/gin-gonic/gin"
	"github.com/recipebox/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(RequestIDMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Web pages: every form posts an action and redirects back to the index
	router.GET("/", handler.Index)
	router.POST("/search", handler.Search)
	router.POST("/details", handler.ViewDetails)
	router.POST("/modal/close", handler.CloseModal)
	router.POST("/modal/dismiss", handler.DismissModal)
	router.POST("/favorites/toggle", handler.ToggleFavorite)
	router.POST("/view/toggle", handler.ToggleView)
	router.GET("/favorites/export", handler.ExportFavorites)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		recipes := v1.Group("/recipes")
		{
			recipes.GET("/search", handler.SearchRecipes)
			recipes.GET("/:id", handler.GetRecipe)
		}

		favorites := v1.Group("/favorites")
		{
			favorites.GET("", handler.ListFavorites)
			favorites.POST("", handler.AddFavorite)
			favorites.DELETE("/:id", handler.RemoveFavorite)
			favorites.POST("/:id/toggle", handler.ToggleFavoriteAPI)
		}
	}

	return router
}
