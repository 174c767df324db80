package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"ats_backend/database"
	"ats_backend/internal/auth"
	"ats_backend/internal/config"
	"ats_backend/internal/email"
	"ats_backend/internal/handlers"
	"ats_backend/internal/logger"
	"ats_backend/internal/middleware"
	"ats_backend/internal/models"
	"ats_backend/internal/repositories"
	"ats_backend/internal/routes"
	"ats_backend/internal/services"
	"ats_backend/internal/storage"
	"ats_backend/internal/validator"
)

// Run boots the whole application: config, database, migrations, router.
func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to connect to database", "error", err.Error())
	}
	if err := database.Migrate(db); err != nil {
		logger.Fatal("failed to run migrations", "error", err.Error())
	}

	router, err := SetupRouter(cfg, db)
	if err != nil {
		logger.Fatal("failed to set up router", "error", err.Error())
	}

	go purgeExpiredRefreshTokens(db)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("server listening", "addr", addr, "env", cfg.Server.Env)
	if err := router.Run(addr); err != nil {
		logger.Fatal("server stopped", "error", err.Error())
	}
}

// SetupRouter wires repositories, services, handlers and middleware into a
// gin engine. Split from Run so tests can mount it on httptest.
func SetupRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
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
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	var mailer email.Provider
	if cfg.Email.SMTPHost != "" {
		mailer, err = email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize email: %w", err)
		}
	}

	tokens := auth.NewTokenManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTTLMin)*time.Minute)

	svc := initializeServices(cfg, db, store, mailer, tokens)

	if err := seedFirstAdmin(cfg, db); err != nil {
		return nil, fmt.Errorf("failed to seed first admin: %w", err)
	}

	appHandlers := handlers.NewAppHandlers(validator.New(), svc)

	return initializeGinRouter(cfg, appHandlers, tokens), nil
}

func initializeServices(
	cfg *config.Config,
	db *gorm.DB,
	store storage.Storage,
	mailer email.Provider,
	tokens *auth.TokenManager,
) *services.ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	resumeRepo := repositories.NewResumeRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)

	refreshTTL := time.Duration(cfg.JWT.RefreshTTLHrs) * time.Hour
	limits := services.UploadLimits{
		MaxSize:      cfg.Upload.MaxSize,
		AllowedTypes: cfg.Upload.AllowedTypes,
	}

	return &services.ServiceContainer{
		Auth:        services.NewAuthService(db, userRepo, profileRepo, refreshTokenRepo, tokens, refreshTTL, mailer),
		Profile:     services.NewProfileService(profileRepo),
		Job:         services.NewJobService(jobRepo),
		Resume:      services.NewResumeService(resumeRepo, profileRepo, store, limits),
		Application: services.NewApplicationService(applicationRepo, jobRepo, resumeRepo, profileRepo),
		Dashboard:   services.NewDashboardService(profileRepo, jobRepo, resumeRepo, applicationRepo),
	}
}

func initializeGinRouter(cfg *config.Config, appHandlers *handlers.AppHandlers, tokens *auth.TokenManager) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())

	if cfg.Storage.Type == "local" {
		router.Static("/files", cfg.Storage.BasePath)
	}

	routes.RegisterRoutes(router, appHandlers, middleware.AuthMiddleware(tokens))
	return router
}

// purgeExpiredRefreshTokens periodically removes refresh tokens past expiry.
func purgeExpiredRefreshTokens(db *gorm.DB) {
	repo := repositories.NewRefreshTokenRepository(db)
	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		if err := repo.DeleteExpired(context.Background()); err != nil {
			logger.Warn("failed to purge expired refresh tokens", "error", err.Error())
		}
	}
}

// seedFirstAdmin creates the bootstrap admin account when configured and
// not present yet.
func seedFirstAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg.FirstAdminUsername == "" || cfg.FirstAdminPassword == "" {
		return nil
	}

	var existing models.User
	err := db.First(&existing, "username = ?", cfg.FirstAdminUsername).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.FirstAdminPassword)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		admin := &models.User{
			Username:     cfg.FirstAdminUsername,
			Email:        cfg.FirstAdminEmail,
			PasswordHash: hash,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		profile := &models.UserProfile{
			UserID: admin.ID,
			Role:   models.RoleAdmin,
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		logger.Info("seeded first admin", "username", admin.Username)
		return nil
	})
}
