package routes

import (
	"github.com/Vijay-C-S/zenzone-sub001/config"
	"github.com/Vijay-C-S/zenzone-sub001/controllers"
	"github.com/Vijay-C-S/zenzone-sub001/middlewares"
	"github.com/Vijay-C-S/zenzone-sub001/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	db := config.DB

	rt := services.NewRealtimeHub()
	services.InitAlertDeps(db, rt)

	moodCtl := controllers.NewMoodController(services.NewMoodService(db))
	habitCtl := controllers.NewHabitController(services.NewHabitService(db))
	goalCtl := controllers.NewGoalController(services.NewGoalService(db))
	journalCtl := controllers.NewJournalController(services.NewJournalService(db))
	medCtl := controllers.NewMeditationController(services.NewMeditationService(db))
	crisisSvc := services.NewCrisisService(db)
	crisisCtl := controllers.NewCrisisController(crisisSvc)
	chatCtl := controllers.NewChatController(
		services.NewChatService(db, services.NewHTTPCompletionClient(), crisisSvc))
	analyticsCtl := controllers.NewAnalyticsController(services.NewAnalyticsService(db))
	realtimeCtl := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
		}

		mood := api.Group("/mood")
		{
			mood.POST("", moodCtl.Record)
			mood.GET("", moodCtl.List)
			mood.GET("/stats", moodCtl.Stats)
		}

		habits := api.Group("/habits")
		{
			habits.POST("", habitCtl.Create)
			habits.GET("", habitCtl.List)
			habits.POST("/entries", habitCtl.RecordEntry)
			habits.GET("/entries", habitCtl.ListEntries)
			habits.GET("/stats", habitCtl.Stats)
			habits.PUT("/:id", habitCtl.Update)
			habits.DELETE("/:id", habitCtl.Delete)
		}

		goals := api.Group("/goals")
		{
			goals.POST("", goalCtl.Create)
			goals.GET("", goalCtl.List)
			goals.GET("/stats", goalCtl.Stats)
			goals.GET("/:id", goalCtl.Get)
			goals.PUT("/:id", goalCtl.Update)
			goals.DELETE("/:id", goalCtl.Delete)
			goals.PATCH("/:id/milestones/:mid", goalCtl.ToggleMilestone)
		}

		journal := api.Group("/journal")
		{
			journal.POST("", journalCtl.Create)
			journal.GET("", journalCtl.List)
			journal.GET("/stats", journalCtl.Stats)
			journal.GET("/:id", journalCtl.Get)
			journal.PUT("/:id", journalCtl.Update)
			journal.DELETE("/:id", journalCtl.Delete)
		}

		meditation := api.Group("/meditation")
		{
			meditation.POST("", medCtl.Start)
			meditation.GET("", medCtl.List)
			meditation.GET("/stats", medCtl.Stats)
			meditation.PATCH("/:id/complete", medCtl.Complete)
		}

		crisis := api.Group("/crisis")
		{
			crisis.GET("", crisisCtl.List)
			crisis.GET("/emergency", crisisCtl.Emergency)
			crisis.GET("/search", crisisCtl.Search)
			crisis.POST("/log", crisisCtl.LogAccess)

			admin := crisis.Group("/admin")
			admin.Use(middlewares.AdminMiddleware())
			{
				admin.POST("", crisisCtl.Create)
				admin.POST("/seed", crisisCtl.Seed)
				admin.PUT("/:id", crisisCtl.Update)
				admin.DELETE("/:id", crisisCtl.Delete)
			}
		}

		chat := api.Group("/chat")
		{
			chat.POST("", chatCtl.Send)
			chat.GET("/history", chatCtl.History)
		}

		api.GET("/alerts", controllers.ListAlerts)
		api.GET("/analytics/summary", analyticsCtl.GetSummary)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", realtimeCtl.AlertsWS)
	}

	return r
}
