package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/api"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/config"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/planner"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/repository/mongo"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/service"
	"github.com/Preetthee/desi-nutri-a82c05ec-sub000/internal/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Desi Nutri server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
	}
	defer func() {
		log.Println("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Println("Database connection established.")

	// --- Ensure Indexes ---
	log.Println("Ensuring database indexes...")
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		mongo.EnsureUserIndexes(ctx, appDB.Collection("users"))
		mongo.EnsureDailyPlanIndexes(ctx, appDB.Collection("daily_plans"))
		mongo.EnsureFoodLogIndexes(ctx, appDB.Collection("food_logs"))
		mongo.EnsureWaterLogIndexes(ctx, appDB.Collection("water_logs"))
		mongo.EnsureExerciseLogIndexes(ctx, appDB.Collection("exercise_logs"))
		mongo.EnsureUploadIndexes(ctx, appDB.Collection("uploads"))
		log.Println("Index creation process completed.")
	}()

	// --- Initialize Storage ---
	log.Println("Initializing meal photo storage...")
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Initialize Repositories ---
	log.Println("Initializing repositories...")
	userRepo := mongo.NewMongoUserRepository(appDB)
	planRepo := mongo.NewMongoDailyPlanRepository(appDB)
	foodRepo := mongo.NewMongoFoodLogRepository(appDB)
	waterRepo := mongo.NewMongoWaterLogRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseLogRepository(appDB)
	uploadRepo := mongo.NewMongoUploadRepository(appDB)

	// --- Initialize Services ---
	log.Println("Initializing services...")
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	planService := service.NewPlanService(planRepo, userRepo, planner.DefaultLibrary(), planner.TokenNameMatcher{}, rng)
	logbookService := service.NewLogbookService(foodRepo, waterRepo, exerciseRepo, uploadRepo, planRepo, userRepo, planService, fileStorage)
	profileService := service.NewProfileService(userRepo)

	// --- Initialize Gin Engine ---
	router := gin.Default() // Includes Logger and Recovery middleware

	// --- Setup Routes ---
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, authService, planService, logbookService, profileService)

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	// --- Graceful Shutdown ---
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}
