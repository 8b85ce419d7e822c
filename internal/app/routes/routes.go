package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/app/controllers"
	"github.com/aniket-sharma10/Mentorship-Matching-Platform/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	profileController *controllers.ProfileController,
	connectionController *controllers.ConnectionController,
	matchmakingController *controllers.MatchmakingController,
	discoveryController *controllers.DiscoveryController,
	notificationController *controllers.NotificationController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/google", authController.GoogleAuth)
		auth.DELETE("/logout", authController.Logout)
	}

	// Everything else requires a signed-in user
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		profile := authenticated.Group("/profile")
		{
			profile.POST("", profileController.CreateProfile)
			profile.GET("", profileController.GetProfile)
			profile.PUT("", profileController.UpdateProfile)
			profile.DELETE("", profileController.DeleteProfile)
		}

		connections := authenticated.Group("/connections")
		{
			connections.GET("", connectionController.ListConnections)
			connections.POST("/requests", connectionController.SendRequest)
			connections.GET("/requests/pending", connectionController.ListPendingRequests)
			connections.PUT("/requests/accept", connectionController.AcceptRequest)
			connections.PUT("/requests/decline", connectionController.DeclineRequest)
			connections.GET("/status/:userId", connectionController.GetStatus)
			connections.DELETE("/:id", connectionController.DeleteConnection)
		}

		authenticated.GET("/matches", matchmakingController.GetMatches)
		authenticated.GET("/discovery", discoveryController.Discover)

		notifications := authenticated.Group("/notifications")
		{
			notifications.GET("", notificationController.ListNotifications)
			notifications.PUT("/:id/read", notificationController.MarkRead)
			notifications.PUT("/read-all", notificationController.MarkAllRead)
		}
	}
}
