package handlers

import (
	"github.com/sq23rd/roster-backend/internal/services"
	"github.com/sq23rd/roster-backend/internal/validator"
)

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler          *AuthHandler
	UserHandler          *UserHandler
	ScheduleHandler      *ScheduleHandler
	QualificationHandler *QualificationHandler
	FCIFHandler          *FCIFHandler
}

func NewAppHandlers(sc *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:          NewAuthHandler(base, sc.AuthService),
		UserHandler:          NewUserHandler(base, sc.UserService),
		ScheduleHandler:      NewScheduleHandler(base, sc.ScheduleService),
		QualificationHandler: NewQualificationHandler(base, sc.QualificationService),
		FCIFHandler:          NewFCIFHandler(base, sc.FCIFService),
	}
}
