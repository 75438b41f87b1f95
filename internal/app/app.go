package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"resumebuilder_backend/internal/config"
	"resumebuilder_backend/internal/database"
	"resumebuilder_backend/internal/email"
	"resumebuilder_backend/internal/handlers"
	"resumebuilder_backend/internal/logger"
	"resumebuilder_backend/internal/middleware"
	"resumebuilder_backend/internal/payment"
	"resumebuilder_backend/internal/repositories"
	"resumebuilder_backend/internal/routes"
	"resumebuilder_backend/internal/services"
	"resumebuilder_backend/internal/storage"
	"resumebuilder_backend/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}
	logger.Info("Migrations applied")

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	store, err := storage.NewStorage(storage.Config{
		Type:      cfg.Storage.Type,
		BasePath:  cfg.Storage.BasePath,
		BaseURL:   cfg.Storage.BaseURL,
		Bucket:    cfg.Storage.Bucket,
		Region:    cfg.Storage.Region,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Endpoint:  cfg.Storage.Endpoint,
	})
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	userRepo := repositories.NewUserRepository(gormDB)
	resumeRepo := repositories.NewResumeRepository(gormDB)
	paymentRepo := repositories.NewPaymentRepository(gormDB)

	serviceContainer := initializeServices(cfg, store, userRepo, resumeRepo, paymentRepo)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, userRepo)

	// Local disk uploads get served straight from the app.
	if local, ok := store.(*storage.LocalStorage); ok {
		ginRouter.Static("/uploads", local.BasePath())
	}

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(
	cfg *config.Config,
	store storage.Storage,
	userRepo repositories.UserRepository,
	resumeRepo repositories.ResumeRepository,
	paymentRepo repositories.PaymentRepository,
) *services.ServiceContainer {
	var emailProvider email.Provider
	emailCfg := email.Config{
		Host:       cfg.Email.SMTPHost,
		Port:       cfg.Email.SMTPPort,
		Username:   cfg.Email.SMTPUser,
		Password:   cfg.Email.SMTPPassword,
		FromEmail:  cfg.Email.FromEmail,
		FromName:   cfg.Email.FromName,
		AppBaseURL: cfg.App.BaseURL,
	}
	if err := emailCfg.Validate(); err != nil {
		logger.Warn("SMTP not configured, outgoing mail is logged and dropped", "reason", err.Error())
		emailProvider = &email.NoopProvider{}
	} else {
		emailProvider, err = email.NewSMTPProvider(emailCfg)
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
	}

	gateway := payment.NewRazorpayGateway(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret, cfg.Razorpay.BaseURL)

	jwtSecret := []byte(cfg.JWT.Secret)
	jwtTTL := time.Duration(cfg.JWT.TTLHours) * time.Hour

	authService := services.NewAuthService(userRepo, emailProvider, jwtSecret, jwtTTL)
	resumeService := services.NewResumeService(resumeRepo)
	paymentService := services.NewPaymentService(paymentRepo, userRepo, gateway, services.PaymentConfig{
		KeyID:         cfg.Razorpay.KeyID,
		PremiumAmount: cfg.Razorpay.PremiumAmount,
		Currency:      cfg.Razorpay.Currency,
	})
	templatesService := services.NewTemplatesService(userRepo)
	uploadService := services.NewUploadService(userRepo, resumeRepo, store, services.UploadConfig{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	})
	emailService := services.NewEmailService(emailProvider)

	return &services.ServiceContainer{
		AuthService:      authService,
		ResumeService:    resumeService,
		PaymentService:   paymentService,
		TemplatesService: templatesService,
		UploadService:    uploadService,
		EmailService:     emailService,
	}
}

func initializeHandlers(sc *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:      handlers.NewAuthHandler(baseHandler, sc.AuthService, sc.UploadService),
		ResumeHandler:    handlers.NewResumeHandler(baseHandler, sc.ResumeService, sc.UploadService),
		PaymentHandler:   handlers.NewPaymentHandler(baseHandler, sc.PaymentService),
		TemplatesHandler: handlers.NewTemplatesHandler(baseHandler, sc.TemplatesService),
		EmailHandler:     handlers.NewEmailHandler(baseHandler, sc.EmailService),
	}
}

func initializeGinRouter(cfg *config.Config, userRepo repositories.UserRepository) *gin.Engine {
	if cfg.Server.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.ResolvePrincipal([]byte(cfg.JWT.Secret), userRepo))
	return router
}
