package services

import (
	"gorm.io/gorm"

	"github.com/sq23rd/roster-backend/internal/auth"
	"github.com/sq23rd/roster-backend/internal/email"
	"github.com/sq23rd/roster-backend/internal/repositories"
)

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService          AuthService
	UserService          UserService
	ScheduleService      ScheduleService
	QualificationService QualificationService
	FCIFService          FCIFService
}

func NewServiceContainer(
	db *gorm.DB,
	hasher *auth.Hasher,
	tokens *auth.TokenService,
	mail email.Provider,
	authCfg AuthConfig,
) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	scheduleRepo := repositories.NewScheduleRepository(db)
	qualificationRepo := repositories.NewQualificationRepository(db)
	fcifRepo := repositories.NewFCIFRepository(db)

	return &ServiceContainer{
		AuthService:          NewAuthService(userRepo, hasher, tokens, mail, authCfg),
		UserService:          NewUserService(userRepo),
		ScheduleService:      NewScheduleService(scheduleRepo),
		QualificationService: NewQualificationService(qualificationRepo, userRepo),
		FCIFService:          NewFCIFService(fcifRepo),
	}
}
