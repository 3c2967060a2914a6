package bootstrap

import (
	"log"

	"legal-assistant-be/internal/config"
	"legal-assistant-be/internal/controller"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/pkg/serverutils"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/internal/service"
	"legal-assistant-be/pkg/llm/factory"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	HealthController   controller.IHealthController
	AuthController     controller.IAuthController
	AnalysisController controller.IAnalysisController
	HistoryController  controller.IHistoryController

	// Middleware guarding authenticated routes
	AuthRequired fiber.Handler

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	validate := validator.New()

	// 2. LLM Provider
	llmProvider, err := factory.NewProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.GeminiAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 3. Services
	authService := service.NewAuthService(uowFactory, cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
	analysisService := service.NewAnalysisService(uowFactory, llmProvider, sysLogger)
	historyService := service.NewHistoryService(uowFactory)

	// 4. Controllers
	return &Container{
		HealthController:   controller.NewHealthController(),
		AuthController:     controller.NewAuthController(authService, validate),
		AnalysisController: controller.NewAnalysisController(analysisService),
		HistoryController:  controller.NewHistoryController(historyService),
		AuthRequired:       serverutils.NewAuthMiddleware(authService),
		Logger:             sysLogger,
	}
}
