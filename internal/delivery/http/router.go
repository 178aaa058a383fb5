package http

import (
	"github.com/gin-gonic/gin"

	"github.com/auramap/auramap-backend/internal/delivery/http/handler"
	"github.com/auramap/auramap-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler         *handler.AuthHandler
	surveyHandler       *handler.SurveyHandler
	placesHandler       *handler.PlacesHandler
	passportHandler     *handler.PassportHandler
	socialHandler       *handler.SocialHandler
	notificationHandler *handler.NotificationHandler
	diceHandler         *handler.DiceHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	surveyHandler *handler.SurveyHandler,
	placesHandler *handler.PlacesHandler,
	passportHandler *handler.PassportHandler,
	socialHandler *handler.SocialHandler,
	notificationHandler *handler.NotificationHandler,
	diceHandler *handler.DiceHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:         authHandler,
		surveyHandler:       surveyHandler,
		placesHandler:       placesHandler,
		passportHandler:     passportHandler,
		socialHandler:       socialHandler,
		notificationHandler: notificationHandler,
		diceHandler:         diceHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidators()

	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
			auth.PUT("/me/picture", r.authMiddleware.RequireAuth(), r.authHandler.UpdateProfilePicture)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Survey routes
			survey := protected.Group("/survey")
			{
				survey.POST("", r.surveyHandler.Submit)
				survey.DELETE("", r.surveyHandler.Reset)
				survey.GET("/profile", r.surveyHandler.GetProfile)
			}

			// Places routes
			places := protected.Group("/places")
			{
				places.GET("/nearby", r.placesHandler.Nearby)
				places.GET("/route/today", r.placesHandler.TodayRoute)
				places.GET("/:place_id", r.placesHandler.Details)
			}

			// Passport routes
			passport := protected.Group("/passport")
			{
				passport.POST("/check-in", r.passportHandler.CheckIn)
				passport.GET("/stamps", r.passportHandler.Stamps)
				passport.GET("/friend-stamps", r.passportHandler.FriendStamps)
				passport.GET("/summary", r.passportHandler.Summary)
				passport.GET("/good-deeds", r.passportHandler.GoodDeeds)
				passport.GET("/good-deeds/restaurant/:restaurant_id", r.passportHandler.RestaurantGoodDeeds)
			}

			// Social routes
			social := protected.Group("/social")
			{
				social.POST("/follow/:user_id", r.socialHandler.Follow)
				social.DELETE("/follow/:user_id", r.socialHandler.Unfollow)
				social.GET("/followers", r.socialHandler.Followers)
				social.GET("/following", r.socialHandler.Following)
				social.GET("/search", r.socialHandler.Search)
				social.GET("/users/:user_id", r.socialHandler.GetUser)
				social.GET("/feed", r.socialHandler.Feed)
				social.POST("/memories", r.socialHandler.CreateMemory)
				social.POST("/memories/:memory_id/like", r.socialHandler.Like)
				social.DELETE("/memories/:memory_id/like", r.socialHandler.Unlike)
				social.POST("/memories/:memory_id/comments", r.socialHandler.Comment)
			}

			// Notification routes
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", r.notificationHandler.List)
				notifications.PUT("/:notification_id/read", r.notificationHandler.MarkRead)
			}

			// Dice game routes
			dice := protected.Group("/dice")
			{
				dice.POST("/invite", r.diceHandler.Invite)
				dice.GET("/today", r.diceHandler.Today)
				dice.GET("/:game_id", r.diceHandler.Get)
				dice.POST("/:game_id/accept", r.diceHandler.Accept)
				dice.POST("/:game_id/roll", r.diceHandler.Roll)
			}
		}
	}

	return router
}
