package routes

import (
	"time"

	"workjunction-backend/internal/api/handlers"
	"workjunction-backend/internal/api/middleware"
	"workjunction-backend/internal/auth"
	"workjunction-backend/internal/config"
	"workjunction-backend/internal/database/models"
	"workjunction-backend/internal/logger"
	"workjunction-backend/internal/repository"
	"workjunction-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	workerServiceRepo := repository.NewWorkerServiceRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg.JWTSecret, time.Duration(cfg.JWTExpirationHours)*time.Hour)
	if err != nil {
		return nil, err
	}
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize OTP delivery
	otpStore := service.NewOTPStore(redisClient, cfg.OTPLength, time.Duration(cfg.OTPTTLMinutes)*time.Minute)
	var mailer service.MailerInterface
	if cfg.SMTPHost != "" {
		mailer, err = service.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
		if err != nil {
			return nil, err
		}
	} else {
		mailer = service.NewLogMailer(logger.New())
	}

	// Initialize services
	userService := service.NewUserService(userRepo, workerRepo, otpStore, mailer, authService, validator, cfg.AgentInviteCode)
	workerService := service.NewWorkerService(workerRepo, workerServiceRepo, documentRepo, validator)
	availabilityService := service.NewAvailabilityService(workerRepo, validator)
	bookingService := service.NewBookingService(bookingRepo, workerRepo, workerServiceRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, redisClient)
	authHandler := handlers.NewAuthHandler(userService)
	workerHandler := handlers.NewWorkerHandler(workerService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	bookingHandler := handlers.NewBookingHandler(bookingService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		// Auth routes
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/verify-email", authHandler.VerifyEmail)
			authGroup.POST("/resend-otp", authHandler.ResendOTP)
		}

		// Authenticated user routes
		users := v1.Group("/users", authMiddleware.RequireAuth())
		{
			users.GET("/me", authHandler.Me)
		}

		// Public worker discovery
		workers := v1.Group("/workers")
		{
			workers.GET("", workerHandler.ListWorkers)
			workers.GET("/:id", workerHandler.GetWorker)
			workers.GET("/:id/services", workerHandler.ListServices)
			workers.GET("/:id/availability", availabilityHandler.GetWorkerAvailability)
		}

		// Worker timetables are visible to booking customers and reviewing agents
		workers.GET("/:id/timetable",
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRole(models.UserRoleCustomer, models.UserRoleAgent),
			availabilityHandler.GetWorkerTimetable)

		// Worker self-service routes
		me := v1.Group("/workers/me",
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRole(models.UserRoleWorker))
		{
			me.GET("", workerHandler.GetMyProfile)
			me.PUT("", workerHandler.UpdateMyProfile)

			me.POST("/services", workerHandler.AddService)
			me.PUT("/services/:serviceId", workerHandler.UpdateService)
			me.DELETE("/services/:serviceId", workerHandler.RemoveService)

			me.GET("/documents", workerHandler.ListMyDocuments)
			me.POST("/documents", workerHandler.SubmitDocument)

			me.GET("/timetable", availabilityHandler.GetMyTimetable)
			me.PUT("/timetable", availabilityHandler.ReplaceMyTimetable)

			me.GET("/non-availability", availabilityHandler.ListNonAvailability)
			me.POST("/non-availability", availabilityHandler.AddNonAvailability)
			me.DELETE("/non-availability/:slotId", availabilityHandler.RemoveNonAvailability)

			me.GET("/status", availabilityHandler.GetMyStatus)
			me.PATCH("/status", availabilityHandler.SetMyStatus)

			me.GET("/bookings", bookingHandler.ListWorkerBookings)
		}

		// Booking routes
		bookings := v1.Group("/bookings", authMiddleware.RequireAuth())
		{
			bookings.POST("", authMiddleware.RequireRole(models.UserRoleCustomer), bookingHandler.CreateBooking)
			bookings.GET("", bookingHandler.ListMyBookings)
			bookings.GET("/:id", bookingHandler.GetBooking)
			bookings.PATCH("/:id/status", bookingHandler.UpdateBookingStatus)
		}

		// Agent review routes
		agent := v1.Group("/agent",
			authMiddleware.RequireAuth(),
			authMiddleware.RequireRole(models.UserRoleAgent))
		{
			agent.GET("/workers", workerHandler.ListInReview)
			agent.GET("/workers/:id/documents", workerHandler.ListWorkerDocuments)
			agent.POST("/workers/:id/review", workerHandler.ReviewWorker)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}
