package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/example/fitplanner-backend/internal/catalog"
	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/middleware"
	"github.com/example/fitplanner-backend/internal/models"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is applied to the
// router before this function is called, in main.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	userService core.UserService,
	planService core.PlanService,
	progressService core.ProgressService,
	calendarService core.CalendarService,
	chatService core.ChatService,
	contactService core.ContactService,
	exerciseClient *catalog.ExerciseDBClient,
	videoClient *catalog.YouTubeClient,
	newsClient *catalog.NewsClient,
) {
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firebaseAuthClient == nil {
		logger.Fatal("CRITICAL_SETUP_ERROR: Firebase Auth client is not initialized; routes cannot be secured.")
	}
	authMW := middleware.NewAuthMiddleware(firebaseAuthClient)

	userHandler := NewUserHandler(userService)
	workoutPlanHandler := NewPlanHandler(planService, models.PlanKindWorkout)
	mealPlanHandler := NewPlanHandler(planService, models.PlanKindMeal)
	progressHandler := NewProgressHandler(progressService)
	calendarHandler := NewCalendarHandler(calendarService)
	chatHandler := NewChatHandler(chatService)
	contactHandler := NewContactHandler(contactService)
	catalogHandler := NewCatalogHandler(exerciseClient, videoClient, newsClient)

	apiV1 := router.Group("/api/v1")
	{
		// Registration is the only public write endpoint; everything else
		// about a user is keyed to the verified token identity.
		usersGroup := apiV1.Group("/users")
		{
			usersGroup.POST("", userHandler.Register)
			usersGroup.GET("/me", authMW.VerifyToken(), userHandler.GetProfile)
			usersGroup.PUT("/me", authMW.VerifyToken(), userHandler.UpdateProfile)
			usersGroup.DELETE("/me", authMW.VerifyToken(), userHandler.DeleteAccount)
		}

		workoutGroup := apiV1.Group("/workout-plans", authMW.VerifyToken())
		{
			workoutGroup.POST("", workoutPlanHandler.Generate)
			workoutGroup.GET("", workoutPlanHandler.Latest)
			workoutGroup.GET("/export", workoutPlanHandler.Export)
		}

		mealGroup := apiV1.Group("/meal-plans", authMW.VerifyToken())
		{
			mealGroup.POST("", mealPlanHandler.Generate)
			mealGroup.GET("", mealPlanHandler.Latest)
			mealGroup.GET("/export", mealPlanHandler.Export)
		}

		progressGroup := apiV1.Group("/progress", authMW.VerifyToken())
		{
			progressGroup.POST("", progressHandler.Create)
			progressGroup.GET("", progressHandler.List)
			progressGroup.PUT("/:id", progressHandler.Update)
			progressGroup.DELETE("/:id", progressHandler.Delete)
		}

		calendarGroup := apiV1.Group("/calendar", authMW.VerifyToken())
		{
			calendarGroup.POST("", calendarHandler.Create)
			calendarGroup.GET("", calendarHandler.List)
			calendarGroup.PUT("/:id", calendarHandler.Update)
			calendarGroup.DELETE("/:id", calendarHandler.Delete)
		}

		chatsGroup := apiV1.Group("/chats", authMW.VerifyToken())
		{
			chatsGroup.POST("", chatHandler.Send)
			chatsGroup.GET("", chatHandler.History)
			chatsGroup.DELETE("/:chatId", chatHandler.Delete)
		}

		exercisesGroup := apiV1.Group("/exercises", authMW.VerifyToken())
		{
			exercisesGroup.GET("", catalogHandler.ListExercises)
			exercisesGroup.GET("/:id", catalogHandler.GetExercise)
			exercisesGroup.GET("/:id/videos", catalogHandler.GetExerciseVideos)
		}

		apiV1.GET("/news", catalogHandler.GetNews)
		apiV1.POST("/contact", contactHandler.Send)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	logger.Info("API routes configured successfully under /api/v1 and /health.")
}
