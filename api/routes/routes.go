package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/TargetKart/targetkart-backend/internal/config"
	"github.com/TargetKart/targetkart-backend/internal/handlers"
	"github.com/TargetKart/targetkart-backend/internal/middleware"
)

// HandlerDependencies bundles the handlers wired up in main
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	CustomerHandler *handlers.CustomerHandler
	SegmentHandler  *handlers.SegmentHandler
	CampaignHandler *handlers.CampaignHandler
	AIHandler       *handlers.AIHandler
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, logger zerolog.Logger, deps HandlerDependencies) *gin.Engine {
	// Create router
	router := gin.New()
	router.Use(gin.Recovery())

	// Add middleware
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))

	// Public routes
	public := router.Group("/api/v1")
	{
		// Health check
		public.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
			})
		})

		// Auth routes
		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
		}
	}

	// Protected routes
	protected := router.Group("/api/v1")
	protected.Use(middleware.JWTAuthMiddleware(cfg))
	{
		// Customer routes
		customers := protected.Group("/customers")
		{
			customers.GET("", deps.CustomerHandler.ListCustomers)
			customers.GET("/count", deps.CustomerHandler.GetCustomerCount)
		}

		// Segment routes
		segments := protected.Group("/segments")
		{
			segments.GET("", deps.SegmentHandler.GetSegments)
			segments.POST("", deps.SegmentHandler.CreateSegment)
			segments.POST("/preview", deps.SegmentHandler.PreviewSegment)
			segments.GET("/:id", deps.SegmentHandler.GetSegmentByID)
			segments.PUT("/:id", deps.SegmentHandler.UpdateSegment)
			segments.DELETE("/:id", deps.SegmentHandler.DeleteSegment)
		}

		// Campaign routes
		campaigns := protected.Group("/campaigns")
		{
			campaigns.GET("", deps.CampaignHandler.GetCampaigns)
			campaigns.POST("", deps.CampaignHandler.CreateCampaign)
			campaigns.GET("/:id", deps.CampaignHandler.GetCampaignByID)
			campaigns.POST("/:id/send", deps.CampaignHandler.SendCampaign)
			campaigns.GET("/:id/logs", deps.CampaignHandler.GetCommunicationLogs)
		}

		// AI assistant routes
		ai := protected.Group("/ai")
		{
			ai.POST("/suggest-messages", deps.AIHandler.SuggestMessages)
			ai.POST("/translate-rules", deps.AIHandler.TranslateRules)
			ai.GET("/campaigns/:id/insights", deps.AIHandler.CampaignInsights)
		}
	}

	return router
}
