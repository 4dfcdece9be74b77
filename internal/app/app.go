package app

import (
	"context"
	"fmt"
	"time"

	"gastropass_backend/internal/config"
	"gastropass_backend/internal/handlers"
	"gastropass_backend/internal/handoff"
	"gastropass_backend/internal/logger"
	"gastropass_backend/internal/middleware"
	"gastropass_backend/internal/models"
	"gastropass_backend/internal/repositories"
	"gastropass_backend/internal/routes"
	"gastropass_backend/internal/services"
	"gastropass_backend/internal/store"
	"gastropass_backend/internal/validator"
	"gastropass_backend/internal/workers"

	"gastropass_backend/internal/auth"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Opening store...", "path", cfg.Store.Path)
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Fatal("Failed to open store", "error", err)
	}
	logger.Info("Store opened")

	serviceContainer := initializeServices(cfg, st)
	ginRouter := setupRouterWithServices(cfg, st, serviceContainer)

	if cfg.Sweep.Enabled {
		worker := workers.NewSweepWorker(
			serviceContainer.NotificationService,
			time.Duration(cfg.Sweep.IntervalMinutes)*time.Minute,
		)
		worker.Start(context.Background())
		logger.Info("Sweep worker started", "interval_minutes", cfg.Sweep.IntervalMinutes)
	}

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, st *store.Store) *gin.Engine {
	return setupRouterWithServices(cfg, st, initializeServices(cfg, st))
}

func setupRouterWithServices(cfg *config.Config, st *store.Store, serviceContainer *services.ServiceContainer) *gin.Engine {
	if err := seedCatalog(st); err != nil {
		logger.Fatal("Failed to seed plan catalog", "error", err)
	}
	if err := seedFirstAdmin(st, cfg); err != nil {
		logger.Fatal("Failed to seed first admin user", "error", err)
	}

	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter()
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config, st *store.Store) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(st)
	planRepo := repositories.NewPlanRepository(st)
	restaurantRepo := repositories.NewRestaurantRepository(st)
	paymentRepo := repositories.NewPaymentRepository(st)
	benefitsRepo := repositories.NewBenefitsRepository(st, cfg.Benefits.FreeQuota)

	whatsapp := handoff.NewWhatsApp(cfg.Handoff.WhatsAppNumber)

	return &services.ServiceContainer{
		AuthService:         services.NewAuthService(userRepo),
		UserService:         services.NewUserService(userRepo),
		RestaurantService:   services.NewRestaurantService(restaurantRepo),
		PlanService:         services.NewPlanService(planRepo),
		BenefitsService:     services.NewBenefitsService(benefitsRepo),
		SubscriptionService: services.NewSubscriptionService(userRepo, planRepo, paymentRepo, whatsapp),
		NotificationService: services.NewNotificationService(userRepo, paymentRepo),
	}
}

func initializeHandlers(serviceContainer *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:         handlers.NewAuthHandler(baseHandler, serviceContainer.AuthService),
		UserHandler:         handlers.NewUserHandler(baseHandler, serviceContainer.UserService),
		RestaurantHandler:   handlers.NewRestaurantHandler(baseHandler, serviceContainer.RestaurantService),
		PlanHandler:         handlers.NewPlanHandler(baseHandler, serviceContainer.PlanService),
		BenefitsHandler:     handlers.NewBenefitsHandler(baseHandler, serviceContainer.BenefitsService),
		SubscriptionHandler: handlers.NewSubscriptionHandler(baseHandler, serviceContainer.SubscriptionService),
		NotificationHandler: handlers.NewNotificationHandler(baseHandler, serviceContainer.NotificationService),
	}
}

func initializeGinRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	return router
}

func seedCatalog(st *store.Store) error {
	planRepo := repositories.NewPlanRepository(st)
	seeded, err := planRepo.SeedDefaults()
	if err != nil {
		return err
	}
	if seeded {
		logger.Info("Default plan catalog seeded")
	}
	return nil
}

func seedFirstAdmin(st *store.Store, cfg *config.Config) error {
	adminEmail := cfg.FirstAdminEmail
	adminPassword := cfg.FirstAdminPassword

	if adminEmail == "" || adminPassword == "" {
		logger.Warn("FIRST_ADMIN_EMAIL or FIRST_ADMIN_PASSWORD is not set. Skipping admin seeding.")
		return nil
	}

	userRepo := repositories.NewUserRepository(st)
	if _, err := userRepo.FindByEmail(adminEmail); err == nil {
		logger.Info("Admin user already exists. Skipping creation.", "email", adminEmail)
		return nil
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:           uuid.NewString(),
		Name:         "Administrador",
		Email:        adminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
		CreatedAt:    time.Now(),
	}
	if err := userRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("First admin user created", "email", adminEmail)
	return nil
}
