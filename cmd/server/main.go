package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/tuanemuy/okr-manager-sub001/internal/config"
	"github.com/tuanemuy/okr-manager-sub001/internal/constants"
	"github.com/tuanemuy/okr-manager-sub001/internal/database"
	"github.com/tuanemuy/okr-manager-sub001/internal/handlers"
	"github.com/tuanemuy/okr-manager-sub001/internal/logging"
	"github.com/tuanemuy/okr-manager-sub001/internal/middleware"
	"github.com/tuanemuy/okr-manager-sub001/internal/repository"
	"github.com/tuanemuy/okr-manager-sub001/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	logger, err := logging.New(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		logger.Fatalw("Failed to connect to database", "error", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		logger.Fatalw("Failed to run migrations", "error", err)
	}

	// Install the pending-invitation duplicate guard and query indexes
	if err := database.AddIndexes(database.GetDB(), cfg.DBDriver); err != nil {
		logger.Fatalw("Failed to create indexes", "error", err)
	}

	// Initialize Gin router
	r := gin.Default()

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		logger.Fatalw("Failed to create Redis store", "error", err)
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	okrRepo := repository.NewOkrRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	settingsRepo := repository.NewNotificationSettingsRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	teamService := services.NewTeamService(teamRepo)
	invitationService := services.NewInvitationService(invitationRepo, teamRepo, userRepo)
	okrService := services.NewOkrService(okrRepo, teamRepo)
	reviewService := services.NewReviewService(reviewRepo, okrRepo, teamRepo)
	notificationService := services.NewNotificationService(settingsRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	okrHandler := handlers.NewOkrHandler(okrService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	notificationHandler := handlers.NewNotificationHandler(notificationService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "OKR Manager API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Team routes (protected)
		teams := api.Group("/teams")
		teams.Use(middleware.RequireAuth())
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("", teamHandler.ListTeams)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PATCH("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.PATCH("/:id/members/:user_id", teamHandler.UpdateMemberRole)
			teams.DELETE("/:id/members/:user_id", teamHandler.RemoveMember)
			teams.POST("/:id/invitations", invitationHandler.Invite)
		}

		// Invitation routes (protected)
		invitations := api.Group("/invitations")
		invitations.Use(middleware.RequireAuth())
		{
			invitations.GET("", invitationHandler.ListInvitations)
			invitations.POST("/:id/accept", invitationHandler.Accept)
			invitations.POST("/:id/reject", invitationHandler.Reject)
		}

		// OKR routes (protected)
		okrs := api.Group("/okrs")
		okrs.Use(middleware.RequireAuth())
		{
			okrs.GET("", okrHandler.SearchOkrs)
			okrs.POST("", okrHandler.CreateOkr)
			okrs.GET("/:id", okrHandler.GetOkr)
			okrs.PATCH("/:id", okrHandler.UpdateOkr)
			okrs.DELETE("/:id", okrHandler.DeleteOkr)
			okrs.POST("/:id/key-results", okrHandler.AddKeyResult)
			okrs.POST("/:id/reviews", reviewHandler.CreateReview)
			okrs.GET("/:id/reviews", reviewHandler.ListReviews)
		}

		// Key result routes (protected)
		keyResults := api.Group("/key-results")
		keyResults.Use(middleware.RequireAuth())
		{
			keyResults.PATCH("/:id", okrHandler.UpdateKeyResultProgress)
			keyResults.DELETE("/:id", okrHandler.DeleteKeyResult)
		}

		// Review routes (protected)
		reviews := api.Group("/reviews")
		reviews.Use(middleware.RequireAuth())
		{
			reviews.PATCH("/:id", reviewHandler.UpdateReview)
			reviews.DELETE("/:id", reviewHandler.DeleteReview)
		}

		// Notification settings routes (protected)
		settings := api.Group("/notification-settings")
		settings.Use(middleware.RequireAuth())
		{
			settings.GET("", notificationHandler.GetSettings)
			settings.PUT("", notificationHandler.UpdateSettings)
		}
	}

	// Start server
	logger.Infow("Server starting", "addr", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		logger.Fatalw("Failed to start server", "error", err)
	}
}
