package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"TASKS_COLLECTION",
		"PROFILES_COLLECTION",
		"CYCLIC_TASKS_COLLECTION",
		"SUBTASKS_COLLECTION",
		"WORK_SESSIONS_COLLECTION",
		"JWT_SECRET_KEY",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	// Initialize JWT
	utils.InitJWT()
	// Initialize MongoDB connection
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	// Create default gin router
	router := gin.Default()

	// Initialize repositories
	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	profilesRepo := repository.GetProfilesRepo(utils.MongoClient)
	cyclicsRepo := repository.GetCyclicTasksRepo(utils.MongoClient)
	subtasksRepo := repository.GetSubTasksRepo(utils.MongoClient)
	sessionsRepo := repository.GetWorkSessionsRepo(utils.MongoClient)

	dbCfg := config.LoadDatabaseConfig()
	if err := repository.SetupIndexes(utils.MongoClient.Database(dbCfg.DatabaseName)); err != nil {
		log.Printf("Warning: failed to set up indexes: %v", err)
	}

	// Redis-backed sweep limiter and rankings cache; both are optional
	// and the services degrade to pass-through without them
	redisCfg := config.LoadRedisConfig()
	var sweepLimiter usecase.SweepLimiter
	if sl, err := services.NewSweepLimiter(redisCfg.URL, redisCfg.SweepInterval); err != nil {
		log.Printf("Warning: sweep limiter disabled: %v", err)
	} else {
		sweepLimiter = sl
	}
	var rankingsCache usecase.RankingsCache
	if rc, err := services.NewRankingsCache(redisCfg.URL, redisCfg.RankingsTTL); err != nil {
		log.Printf("Warning: rankings cache disabled: %v", err)
	} else {
		rankingsCache = rc
	}

	// Initialize services
	taskService := usecase.NewTaskService(tasksRepo, profilesRepo, sweepLimiter)
	plannerService := usecase.NewPlannerService(taskService, cyclicsRepo, subtasksRepo)
	profileService := usecase.NewProfileService(profilesRepo)
	rankingService := usecase.NewRankingService(profilesRepo, tasksRepo, rankingsCache)
	achievementService := usecase.NewAchievementService(profilesRepo, tasksRepo, sessionsRepo, rankingService)
	workSessionService := usecase.NewWorkSessionService(taskService, sessionsRepo)

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(taskService)
	plannerHandler := handler.NewPlannerHandler(plannerService)
	sessionHandler := handler.NewWorkSessionHandler(workSessionService)
	profileHandler := handler.NewProfileHandler(profileService)
	rankingHandler := handler.NewRankingHandler(rankingService)
	achievementHandler := handler.NewAchievementHandler(achievementService)
	statsHandler := handler.NewStatsHandler(achievementService)

	// Middleware stack
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	// Public endpoints
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		// Task endpoints
		tasks := protected.Group("/tasks")
		{
			tasks.GET("/", taskHandler.GetUserTasks)
			tasks.POST("/", taskHandler.CreateTask)
			tasks.GET("/reminders", taskHandler.GetDueReminders)
			tasks.POST("/cyclic", plannerHandler.CreateCyclic)
			tasks.POST("/split", plannerHandler.CreateSplit)
			tasks.GET("/:id", taskHandler.GetTask)
			tasks.PUT("/:id", taskHandler.UpdateTask)
			tasks.DELETE("/:id", taskHandler.DeleteTask)
			tasks.POST("/:id/done", taskHandler.MarkDone)
			tasks.GET("/:id/subtasks", plannerHandler.GetTaskSubTasks)
			tasks.GET("/:id/sessions", sessionHandler.GetTaskSessions)
			tasks.POST("/:id/sessions", sessionHandler.LogSession)
			tasks.DELETE("/:id/sessions/:sid", sessionHandler.DeleteSession)
		}

		// Profile & ledger endpoints
		profile := protected.Group("/profile")
		{
			profile.GET("/me", profileHandler.GetMe)
			profile.PATCH("/points", profileHandler.UpdatePoints)
		}

		// Gamification views
		protected.GET("/rankings", rankingHandler.GetRankings)
		protected.GET("/achievements", achievementHandler.GetCatalog)
		protected.GET("/achievements/me", achievementHandler.GetUserAchievements)
		protected.GET("/users/:id/stats", statsHandler.GetUserStats)
	}

	// Background schedule: the sweep is idempotent, so running it both
	// here and on the read path is safe
	scheduler := cron.New()
	if _, err := scheduler.AddFunc("@every 10m", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		swept, err := taskService.SweepAllOverdue(ctx, time.Now())
		if err != nil {
			log.Printf("scheduled overdue sweep failed: %v", err)
			return
		}
		middleware.TrackSweep(swept)
	}); err != nil {
		log.Printf("Warning: failed to schedule overdue sweep: %v", err)
	}
	scheduler.Start()

	return router
}

func main() {
	// Feed the system gauges behind /metrics
	utils.StartSystemMetrics(15 * time.Second)

	// Set up router
	router := setupRouter()

	// Get port from environment variable or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
