package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/sq23rd/roster-backend/internal/auth"
	"github.com/sq23rd/roster-backend/internal/config"
	"github.com/sq23rd/roster-backend/internal/email"
	"github.com/sq23rd/roster-backend/internal/handlers"
	"github.com/sq23rd/roster-backend/internal/logger"
	"github.com/sq23rd/roster-backend/internal/middleware"
	"github.com/sq23rd/roster-backend/internal/models"
	"github.com/sq23rd/roster-backend/internal/routes"
	"github.com/sq23rd/roster-backend/internal/services"
)

func Run() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

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
	if err := sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := Migrate(gormDB); err != nil {
		logger.Fatal("Database migration failed", "error", err)
	}

	mail := newMailProvider(cfg)
	defer mail.Close()

	router := SetupRouter(cfg, gormDB, mail)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "address", address)
	if err := router.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// newMailProvider picks SMTP when configured and otherwise falls back to
// logging outbound mail, so development does not need a mail server.
func newMailProvider(cfg *config.Config) email.Provider {
	if cfg.Email.SMTPHost == "" {
		logger.Warn("No SMTP host configured, outbound mail will only be logged")
		return email.NewLogProvider()
	}

	mail, err := email.NewSMTPProvider(email.SMTPConfig{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Fatal("Failed to initialize mail transport", "error", err)
	}
	return mail
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.OwnerClaim{},
		&models.Qualification{},
		&models.Schedule{},
		&models.FCIF{},
		&models.FCIFAcknowledgement{},
	)
}

// SetupRouter wires repositories, services, handlers and routes into a gin
// engine. Split from Run so tests can mount the full API on any database and
// mail transport.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB, mail email.Provider) *gin.Engine {
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	tokens := auth.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)

	serviceContainer := services.NewServiceContainer(gormDB, hasher, tokens, mail, services.AuthConfig{
		LoginDomain:      cfg.Auth.LoginDomain,
		AllowAdminSignup: cfg.Auth.AllowAdminSignup,
		ResetTokenTTL:    time.Duration(cfg.Auth.ResetTokenTTLMinutes) * time.Minute,
		FrontendURL:      cfg.Auth.FrontendURL,
		PasswordPolicy: auth.PasswordPolicy{
			MinLength:     cfg.Auth.PasswordMinLength,
			RequireLetter: cfg.Auth.PasswordRequireLetter,
			RequireDigit:  cfg.Auth.PasswordRequireDigit,
		},
	})

	appHandlers := handlers.NewAppHandlers(serviceContainer)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestIDMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.CORSMiddleware(),
	)

	routes.Setup(router, appHandlers, tokens)
	return router
}
