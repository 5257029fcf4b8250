package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sportsmatch/backend/internal/middleware"
	"github.com/sportsmatch/backend/pkg/logger"
)

// registerRoutes sets up all HTTP routes on the given Gin engine.
func registerRoutes(r *gin.Engine, svc *appServices) {
	// Middleware
	r.Use(logger.GinLogger(), logger.GinRecovery())
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.Use(middleware.CORS())

	// Rate limiter for auth routes
	authLimiter := middleware.NewRateLimiter(5, 10)

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "sportsmatch"})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public, rate limited)
		auth := api.Group("/auth", authLimiter.Middleware())
		{
			auth.POST("/signup", svc.authHandler.Signup)
			auth.POST("/verify", svc.authHandler.Verify)
			auth.POST("/resend", svc.authHandler.ResendCode)
			auth.POST("/login", svc.authHandler.Login)
			auth.POST("/refresh", svc.authHandler.Refresh)
			auth.POST("/logout", svc.authHandler.Logout)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.AuthRequired())
		{
			// Account
			protected.GET("/users/me", svc.authHandler.Me)
			protected.PUT("/users/me", svc.authHandler.UpdateAccount)

			// Profile
			protected.GET("/profile", svc.profileHandler.Get)
			protected.GET("/profile/check", svc.profileHandler.Check)
			protected.POST("/profile", svc.profileHandler.Create)
			protected.PUT("/profile", svc.profileHandler.Update)

			// Games
			protected.POST("/games", svc.gameHandler.Create)
			protected.GET("/games/mine", svc.gameHandler.Mine)
			protected.GET("/games/search", svc.gameHandler.Search)
			protected.GET("/games/recent", svc.gameHandler.Recent)
			protected.GET("/games/upcoming", svc.gameHandler.Upcoming)
			protected.GET("/games/sport/:sport", svc.gameHandler.BySport)
			protected.GET("/games/:id", svc.gameHandler.Get)
			protected.POST("/games/:id/invite", svc.gameHandler.Invite)
			protected.POST("/games/:id/invitation/accept", svc.gameHandler.AcceptInvite)
			protected.POST("/games/:id/invitation/decline", svc.gameHandler.DeclineInvite)
			protected.POST("/games/:id/request", svc.gameHandler.Request)
			protected.POST("/games/:id/request/accept", svc.gameHandler.AcceptRequest)
			protected.POST("/games/:id/request/reject", svc.gameHandler.RejectRequest)
			protected.POST("/games/:id/leave", svc.gameHandler.Leave)
			protected.POST("/games/:id/remove-player", svc.gameHandler.RemovePlayer)

			// Notifications
			protected.GET("/notifications", svc.notificationHandler.List)
			protected.GET("/notifications/unread-count", svc.notificationHandler.UnreadCount)
			protected.PUT("/notifications/read-all", svc.notificationHandler.MarkAllRead)
			protected.PUT("/notifications/:id/read", svc.notificationHandler.MarkRead)

			// Messages
			protected.POST("/messages", svc.messageHandler.Send)
			protected.GET("/messages/conversations", svc.messageHandler.Conversations)
			protected.GET("/messages/unread-count", svc.messageHandler.UnreadCount)
			protected.GET("/messages/with/:userId", svc.messageHandler.ConversationWith)
			protected.PUT("/messages/:id/read", svc.messageHandler.MarkRead)
		}
	}
}
