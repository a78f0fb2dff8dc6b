package main

import (
	"log"
	"os"
	"strconv"

	"streakkeeper/config"
	"streakkeeper/db"
	"streakkeeper/middlewares"
	"streakkeeper/routes"
	"streakkeeper/services"
	"streakkeeper/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load the configuration from the specified YAML file
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "./config/config.yml"
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := services.InitGenerationService(cfg); err != nil {
		log.Fatalf("Failed to initialize generation service: %v", err)
	}

	// Connect to MongoDB using the URI from the configuration
	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	// Set up the Gin router and configure routes
	router := setupRouter(cfg)
	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Server starting on port %s", port)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.Default()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	// Public routes for authentication
	router.POST("/signup", routes.SignUpRouteHandler)
	router.POST("/verifyEmail", routes.VerifyEmailRouteHandler)
	router.POST("/login", routes.LoginRouteHandler)
	router.POST("/forgotPassword", routes.ForgotPasswordRouteHandler)
	router.POST("/confirmForgotPassword", routes.VerifyForgotPasswordRouteHandler)
	router.POST("/verifyToken", routes.VerifyTokenRouteHandler)

	// Protected routes (Cognito bearer token auth)
	auth := router.Group("/")
	auth.Use(middlewares.AuthMiddleware(cfg))
	{
		auth.GET("/user/fetchprofile", routes.GetProfileRouteHandler)
		auth.PUT("/user/updateprofile", routes.UpdateProfileRouteHandler)
		auth.GET("/leaderboard", routes.GetLeaderboardRouteHandler)

		auth.POST("/progress", routes.SubmitProgressRouteHandler)
		auth.GET("/progress", routes.ListProgressRouteHandler)
		auth.GET("/stats/daily", routes.GetDailyStatsRouteHandler)
		auth.GET("/stats/subjects", routes.GetSubjectStatsRouteHandler)
		auth.GET("/stats/weekly", routes.GetWeeklyStatsRouteHandler)

		auth.GET("/notifications", routes.ListNotificationsRouteHandler)
		auth.POST("/notifications/:id/response", routes.RespondNotificationRouteHandler)

		auth.GET("/ai/motivation", routes.GetMotivationRouteHandler)
		auth.POST("/ai/streak-goal", routes.GetStreakGoalRouteHandler)
		auth.POST("/ai/streak-loss", routes.GetStreakLossNotificationRouteHandler)
		auth.POST("/ai/performance-tips", routes.GetPerformanceTipsRouteHandler)
		auth.POST("/ai/weekly-review", routes.GetWeeklyReviewRouteHandler)

		// WebSocket endpoint for gamification event push
		auth.GET("/ws/events", websocket.GamificationWebSocketHandler)
	}

	return router
}
