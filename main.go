package main

import (
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
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"USERS_COLLECTION",
		"SESSIONS_COLLECTION",
		"MEDICINES_COLLECTION",
		"DOSES_COLLECTION",
		"STATS_COLLECTION",
		"NOTIFICATIONS_COLLECTION",
		"MOODS_COLLECTION",
		"PROFILES_COLLECTION",
		"PHARMACIES_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient(config.LoadDatabaseConfig().ClientOptions())

	initRedis()
}

// initRedis wires the optional Redis-backed caches. The app degrades to
// direct Mongo reads when REDIS_URL is not set.
func initRedis() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		log.Println("REDIS_URL not set, running without session/stats caching and token blacklist")
		return
	}

	blacklist, err := services.NewTokenBlacklist(redisURL)
	if err != nil {
		log.Printf("Warning: token blacklist unavailable: %v", err)
	} else {
		services.TokenBlacklist = blacklist
	}

	sessionCache, err := services.NewSessionCache(redisURL)
	if err != nil {
		log.Printf("Warning: session cache unavailable: %v", err)
	} else {
		services.GlobalSessionCache = sessionCache
	}

	statsTTL := utils.GetEnvAsDuration("STATS_CACHE_TTL", 5*time.Minute)
	statsCache, err := services.NewStatsCache(redisURL, statsTTL)
	if err != nil {
		log.Printf("Warning: stats cache unavailable: %v", err)
	} else {
		services.GlobalStatsCache = statsCache
	}
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	// Repositories
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	medicinesRepo := repository.GetMedicinesRepo(utils.MongoClient)
	dosesRepo := repository.GetDosesRepo(utils.MongoClient)
	statsRepo := repository.GetStatsRepo(utils.MongoClient)
	notificationsRepo := repository.GetNotificationsRepo(utils.MongoClient)
	moodsRepo := repository.GetMoodsRepo(utils.MongoClient)
	profilesRepo := repository.GetProfilesRepo(utils.MongoClient)
	pharmaciesRepo := repository.GetPharmaciesRepo(utils.MongoClient)

	// Services
	interactionService := usecase.NewInteractionService()
	statsService := usecase.NewStatsService(dosesRepo, statsRepo, notificationsRepo)
	medicinesService := usecase.NewMedicinesService(medicinesRepo, dosesRepo, interactionService, notificationsRepo)
	dosesService := usecase.NewDosesService(dosesRepo, medicinesRepo, statsService)
	moodsService := usecase.NewMoodsService(moodsRepo)
	reportService := usecase.NewReportService(medicinesRepo, dosesRepo)

	// Handlers
	medicinesHandler := handler.NewMedicinesHandler(medicinesService)
	dosesHandler := handler.NewDosesHandler(dosesService)
	statsHandler := handler.NewStatsHandler(statsService)
	notificationsHandler := handler.NewNotificationsHandler(notificationsRepo)
	moodsHandler := handler.NewMoodsHandler(moodsService)
	profilesHandler := handler.NewProfilesHandler(profilesRepo)
	interactionsHandler := handler.NewInteractionsHandler(interactionService)
	pharmaciesHandler := handler.NewPharmaciesHandler(pharmaciesRepo)
	reportsHandler := handler.NewReportsHandler(reportService)

	// Global middleware
	router.Use(middleware.EnhancedRecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))
	router.Use(middleware.SessionMiddleware(sessionRepo))

	// Operational endpoints
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", handler.RegistrationHandler)
			auth.POST("/login", handler.LoginHandler)
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}

		// Reference data
		public.GET("/pharmacies", middleware.CacheControlMiddleware("3600"), pharmaciesHandler.ListPharmacies)
		public.GET("/medicine-info/:barcode", middleware.CacheControlMiddleware("86400"), handler.MedicineInfoHandler)
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	protected.Use(middleware.ProfileMiddleware(profilesRepo))
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", handler.GetUserProfileHandler)
			user.POST("/change-email", handler.ChangeEmailHandler)
			user.POST("/change-password", handler.ChangePasswordHandler)
			user.POST("/logout", handler.LogoutHandler)
			user.DELETE("/delete", handler.DeleteUserHandler)

			twoFactor := user.Group("/2fa")
			{
				twoFactor.POST("/generate", handler.Generate2FASecretHandler)
				twoFactor.POST("/enable", handler.Enable2FAHandler)
				twoFactor.POST("/verify", handler.Verify2FAHandler)
				twoFactor.POST("/disable", handler.Disable2FAHandler)
			}
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessions(c, sessionRepo)
			})
		}

		medicines := protected.Group("/medicines")
		{
			medicines.GET("/", medicinesHandler.ListMedicines)
			medicines.POST("/", medicinesHandler.AddMedicine)
			medicines.PUT("/:id", medicinesHandler.UpdateMedicine)
			medicines.POST("/:id/toggle", medicinesHandler.ToggleActive)
			medicines.DELETE("/:id", medicinesHandler.DeleteMedicine)
		}

		doses := protected.Group("/doses")
		{
			doses.GET("/", dosesHandler.ListDoses)
			doses.POST("/", dosesHandler.RecordDose)
		}

		stats := protected.Group("/stats")
		{
			stats.GET("/", statsHandler.GetUserStats)
			stats.POST("/recompute", statsHandler.RecomputeStats)
		}

		protected.GET("/achievements", statsHandler.GetAchievements)

		notifications := protected.Group("/notifications")
		{
			notifications.GET("/", notificationsHandler.ListNotifications)
			notifications.POST("/:id/read", notificationsHandler.MarkRead)
			notifications.POST("/read-all", notificationsHandler.MarkAllRead)
			notifications.DELETE("/:id", notificationsHandler.DeleteNotification)
		}

		moods := protected.Group("/moods")
		{
			moods.GET("/", moodsHandler.ListMoodEntries)
			moods.POST("/", moodsHandler.SaveMoodEntry)
			moods.DELETE("/:id", moodsHandler.DeleteMoodEntry)
		}

		profiles := protected.Group("/profiles")
		{
			profiles.GET("/", profilesHandler.ListProfiles)
			profiles.POST("/", profilesHandler.CreateProfile)
			profiles.PUT("/:id", profilesHandler.UpdateProfile)
			profiles.DELETE("/:id", profilesHandler.DeleteProfile)
		}

		protected.POST("/interactions/check", interactionsHandler.CheckInteractions)
		protected.POST("/pharmacies", pharmaciesHandler.CreatePharmacy)
		protected.GET("/reports/adherence", reportsHandler.AdherenceReport)
	}

	return router
}

func main() {
	if err := repository.SetupIndexes(utils.MongoClient.Database(os.Getenv("MONGO_DB"))); err != nil {
		log.Printf("Warning: failed to set up indexes: %v", err)
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
