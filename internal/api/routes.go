package api

import (
	"net/http"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

// SetupRoutes wires the HTTP surface onto the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	planService service.PlanService,
	logbookService service.LogbookService,
	profileService service.ProfileService,
) {
	authHandler := NewAuthHandler(authService)
	planHandler := NewPlanHandler(planService)
	logHandler := NewLogHandler(logbookService)
	profileHandler := NewProfileHandler(profileService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		// --- Daily plan ---
		planGroup := protected.Group("/plan")
		{
			// POST because regeneration mutates; a plain fetch is the
			// force_regenerate=false case.
			planGroup.POST("/today", planHandler.GetTodayPlan)
			planGroup.PATCH("/:planId/items/:index", planHandler.SetItemChecked)
		}

		// --- Logbook ---
		logGroup := protected.Group("/logs")
		{
			logGroup.POST("/food", logHandler.CreateFoodLog)
			logGroup.GET("/food", logHandler.ListFoodLogs)
			logGroup.DELETE("/food/:id", logHandler.DeleteFoodLog)

			logGroup.POST("/water", logHandler.CreateWaterLog)
			logGroup.GET("/water", logHandler.ListWaterLogs)
			logGroup.DELETE("/water/:id", logHandler.DeleteWaterLog)

			logGroup.POST("/exercise", logHandler.CreateExerciseLog)
			logGroup.GET("/exercise", logHandler.ListExerciseLogs)
			logGroup.DELETE("/exercise/:id", logHandler.DeleteExerciseLog)
		}

		// --- Analytics ---
		protected.GET("/analytics/daily", logHandler.GetDailySummary)

		// --- Meal photos ---
		uploadGroup := protected.Group("/uploads")
		{
			uploadGroup.POST("/meal-photo", logHandler.CreateMealPhotoUpload)
			uploadGroup.GET("/meal-photo/:uploadId", logHandler.GetMealPhotoURL)
		}

		// --- Profile ---
		protected.GET("/profile", profileHandler.GetProfile)
		protected.PUT("/profile", profileHandler.UpdateProfile)
	}
}
