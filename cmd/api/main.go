package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/dreampix/dreampix-backend/internal/config"
	"github.com/dreampix/dreampix-backend/internal/handler"
	"github.com/dreampix/dreampix-backend/internal/middleware"
	"github.com/dreampix/dreampix-backend/internal/models"
	"github.com/dreampix/dreampix-backend/internal/repository"
	"github.com/dreampix/dreampix-backend/internal/service"
	"github.com/dreampix/dreampix-backend/pkg/database"
	"github.com/dreampix/dreampix-backend/pkg/email"
	"github.com/dreampix/dreampix-backend/pkg/imagegen"
	"github.com/dreampix/dreampix-backend/pkg/logger"
	"github.com/dreampix/dreampix-backend/pkg/payment"
	"github.com/dreampix/dreampix-backend/pkg/storage"
	"github.com/dreampix/dreampix-backend/pkg/utils"
)

func main() {
	// .env is optional in production; real env vars win either way.
	_ = godotenv.Load()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	zapLogger, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer zapLogger.Sync()

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Transaction{},
	); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	// Gateways are constructed once here and injected; a missing
	// credential leaves the entry nil and purchase attempts through that
	// provider fail with a clear "not configured" response.
	gateways := map[string]payment.Gateway{}
	if cfg.RazorpayEnabled() {
		gateways["razorpay"] = payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Currency)
	} else {
		zapLogger.Warn("razorpay gateway disabled, credentials not set")
	}
	if cfg.StripeEnabled() {
		gateways["stripe"] = payment.NewStripeGateway(cfg.Stripe.SecretKey, cfg.Currency)
	} else {
		zapLogger.Warn("stripe gateway disabled, credentials not set")
	}

	// Email service
	var emailService *email.EmailService
	if cfg.ResendEnabled() {
		emailService = email.NewEmailService(cfg.Resend.APIKey, cfg.Resend.From, cfg.Resend.FromName)
	} else {
		zapLogger.Warn("welcome emails disabled, resend credentials not set")
	}

	// Generated image hosting (optional)
	var imageStore service.ImageStore
	if cfg.R2Enabled() {
		r2Storage, err := storage.NewR2Storage(
			cfg.R2.AccountID,
			cfg.R2.AccessKeyID,
			cfg.R2.SecretAccessKey,
			cfg.R2.Bucket,
			cfg.R2.PublicURL,
		)
		if err != nil {
			zapLogger.Fatal("failed to initialize R2 storage", zap.Error(err))
		}
		imageStore = r2Storage
	}

	// Services
	authService := service.NewAuthService(userRepo, emailService, zapLogger)
	userService := service.NewUserService(userRepo)
	paymentService := service.NewPaymentService(userRepo, txRepo, gateways, zapLogger)

	var imageService *service.ImageService
	if cfg.ClipDropEnabled() {
		imageService = service.NewImageService(userRepo, imagegen.NewClient(cfg.ClipDrop.APIKey), imageStore, zapLogger)
	} else {
		zapLogger.Warn("image generation disabled, CLIPDROP_API not set")
	}

	validator := utils.NewValidator()

	// Handlers
	authHandler := handler.NewAuthHandler(authService, validator)
	userHandler := handler.NewUserHandler(userService)
	paymentHandler := handler.NewPaymentHandler(paymentService, validator)

	// Router
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE",
		AllowCredentials: true,
	}))
	app.Use(fiberlogger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
	}))

	api := app.Group("/api")

	// Public routes
	user := api.Group("/user")
	user.Post("/register", authHandler.Register)
	user.Post("/login", authHandler.Login)
	user.Get("/plans", paymentHandler.GetPlans)
	// Razorpay confirmation arrives without a session (client-relayed
	// callback), so it stays public like the rest of the verify flow.
	user.Post("/verify-razor", paymentHandler.VerifyRazorpay)

	// Protected routes
	api.Use(middleware.AuthMiddleware())
	{
		user.Get("/credits", userHandler.GetCredits)
		user.Get("/purchases", paymentHandler.GetPurchaseHistory)
		user.Post("/pay-razor", paymentHandler.PayRazorpay)
		user.Post("/pay-stripe", paymentHandler.PayStripe)
		user.Post("/verify-stripe", paymentHandler.VerifyStripe)

		image := api.Group("/image")
		if imageService != nil {
			imageHandler := handler.NewImageHandler(imageService, validator)
			image.Post("/generate-image", imageHandler.GenerateImage)
		} else {
			image.Post("/generate-image", func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse("Image generation is not configured"))
			})
		}
	}

	zapLogger.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zapLogger.Fatal("server stopped", zap.Error(err))
	}
}
