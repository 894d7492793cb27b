package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/example/fitplanner-backend/internal/api"
	"github.com/example/fitplanner-backend/internal/catalog"
	"github.com/example/fitplanner-backend/internal/cohere"
	"github.com/example/fitplanner-backend/internal/config"
	"github.com/example/fitplanner-backend/internal/core"
	"github.com/example/fitplanner-backend/internal/db"
	"github.com/example/fitplanner-backend/internal/middleware"
)

func main() {
	// Load .env for local development; in deployment the environment is
	// injected directly and the file is absent.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on process environment.")
	}

	// --- Logger (Zap) ---
	zapLogger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded successfully.")

	if strings.ToLower(appConfig.GinMode) == "release" {
		// Swap in the production logger once we know the mode.
		if prodLogger, err := zap.NewProduction(); err == nil {
			zapLogger = prodLogger
		}
	}

	// --- Firebase Admin SDK (Firestore + Auth) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirebase(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase clients are nil after initialization. Application cannot start.")
	}

	// --- Repositories ---
	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	planRepo := db.NewFirestorePlanRepository(firestoreClient)
	progressRepo := db.NewFirestoreProgressRepository(firestoreClient)
	calendarRepo := db.NewFirestoreCalendarRepository(firestoreClient)
	chatRepo := db.NewFirestoreChatRepository(firestoreClient)
	zapLogger.Info("Repositories initialized successfully.")

	// --- Upstream clients ---
	cohereClient, err := cohere.NewClient(appConfig.CohereAPIKey, appConfig.CohereAPIURL)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Cohere client", zap.Error(err))
	}

	// Catalog clients are optional; a missing key disables the matching
	// endpoints instead of blocking startup.
	var exerciseClient *catalog.ExerciseDBClient
	var videoClient *catalog.YouTubeClient
	if appConfig.RapidAPIKey != "" {
		exerciseClient, _ = catalog.NewExerciseDBClient(appConfig.RapidAPIKey, "")
		videoClient, _ = catalog.NewYouTubeClient(appConfig.RapidAPIKey, "")
	} else {
		zapLogger.Warn("RAPIDAPI_KEY not configured; exercise catalog and video search endpoints are disabled.")
	}
	var newsClient *catalog.NewsClient
	if appConfig.NewsAPIKey != "" {
		newsClient, _ = catalog.NewNewsClient(appConfig.NewsAPIKey, "")
	} else {
		zapLogger.Warn("NEWS_API_KEY not configured; news endpoint is disabled.")
	}

	// --- Services ---
	userService := core.NewUserService(
		firebaseAuthClient,
		userRepo,
		planRepo,
		progressRepo,
		calendarRepo,
		chatRepo,
		appConfig.CascadeUserData,
	)
	planService := core.NewPlanService(userRepo, planRepo, cohereClient)
	progressService := core.NewProgressService(progressRepo)
	calendarService := core.NewCalendarService(calendarRepo)
	chatService := core.NewChatService(chatRepo, cohereClient)
	contactService := core.NewContactService(appConfig)
	zapLogger.Info("Core services initialized successfully.")

	// --- Gin engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// Order matters: log first, recover next, then CORS.
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured.")
	}

	api.SetupRoutes(
		router,
		zapLogger,
		userService,
		planService,
		progressService,
		calendarService,
		chatService,
		contactService,
		exerciseClient,
		videoClient,
		newsClient,
	)

	// --- HTTP server with graceful shutdown ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if fsClient := db.GetFirestoreClient(); fsClient != nil {
		fsClient.Close()
	}

	zapLogger.Info("Server exiting gracefully.")
}
