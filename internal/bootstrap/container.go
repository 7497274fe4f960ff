package bootstrap

import (
	"barplexity-be/internal/config"
	"barplexity-be/internal/controller"
	"barplexity-be/internal/pkg/logger"
	"barplexity-be/internal/pkg/serverutils"
	"barplexity-be/internal/repository/memory"
	"barplexity-be/internal/repository/unitofwork"
	"barplexity-be/internal/service"
	"barplexity-be/pkg/chatbot"
	"barplexity-be/pkg/database"

	"gorm.io/gorm"
)

// Container wires every dependency of the application once, at startup.
type Container struct {
	Config *config.Config
	DB     *gorm.DB
	Logger logger.ILogger

	AuthController    controller.IAuthController
	AdminController   controller.IAdminController
	ChatbotController controller.IChatbotController
}

func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	if err := EnsureAdmin(db, cfg); err != nil {
		return nil, err
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	revokedTokens := memory.NewRevokedTokenStore()
	authMiddleware := serverutils.NewAuthMiddleware(cfg.Auth.JwtSecret, revokedTokens)

	gemini := chatbot.NewGeminiClient(cfg.Keys.GoogleGemini)

	authService := service.NewAuthService(uowFactory, revokedTokens, cfg.Auth.JwtSecret, log)
	adminService := service.NewAdminService(uowFactory, cfg.Auth.AdminEmail, log)
	chatbotService := service.NewChatbotService(uowFactory, gemini, log)

	return &Container{
		Config: cfg,
		DB:     db,
		Logger: log,

		AuthController:    controller.NewAuthController(authService, authMiddleware),
		AdminController:   controller.NewAdminController(adminService, authMiddleware),
		ChatbotController: controller.NewChatbotController(chatbotService, authMiddleware),
	}, nil
}
