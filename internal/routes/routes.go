package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sq23rd/roster-backend/internal/auth"
	"github.com/sq23rd/roster-backend/internal/handlers"
	"github.com/sq23rd/roster-backend/internal/middleware"
	"github.com/sq23rd/roster-backend/internal/models"
)

// Setup registers every route of the API under /api/v1.
func Setup(r *gin.Engine, h *handlers.AppHandlers, tokens *auth.TokenService) {
	api := r.Group("/api/v1")

	setupAuthRoutes(api, h)
	setupUserRoutes(api, h, tokens)
	setupScheduleRoutes(api, h, tokens)
	setupFCIFRoutes(api, h, tokens)
}

func setupAuthRoutes(api *gin.RouterGroup, h *handlers.AppHandlers) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.Register)
		auth.POST("/login", h.AuthHandler.Login)
		auth.POST("/request-password-reset", h.AuthHandler.RequestPasswordReset)
		auth.POST("/reset-password", h.AuthHandler.ResetPassword)
	}
}

func setupUserRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, tokens *auth.TokenService) {
	authed := api.Group("/users")
	authed.Use(middleware.AuthMiddleware(tokens))
	{
		authed.GET("/:id", h.UserHandler.GetUser)
		authed.GET("/:id/qualifications", h.QualificationHandler.ListQualifications)
	}

	admin := api.Group("/users")
	admin.Use(
		middleware.AuthMiddleware(tokens),
		middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleOwner),
	)
	{
		admin.GET("", h.UserHandler.ListUsers)
		admin.GET("/paginated", h.UserHandler.ListUsersPaginated)
		admin.POST("/approve/:email", h.UserHandler.ApproveUser)
		admin.POST("/deny/:email", h.UserHandler.DenyUser)
		admin.POST("/assign-admin/:email", h.UserHandler.AssignAdmin)
		admin.POST("/:id/qualifications", h.QualificationHandler.AddQualification)
		admin.DELETE("/:id/qualifications/:qualificationId", h.QualificationHandler.RemoveQualification)
	}

	owner := api.Group("/users")
	owner.Use(
		middleware.AuthMiddleware(tokens),
		middleware.RequireRoles(models.UserRoleOwner),
	)
	{
		owner.DELETE("/:id", h.UserHandler.DeleteUser)
	}
}

func setupScheduleRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, tokens *auth.TokenService) {
	read := api.Group("/schedules")
	read.Use(middleware.AuthMiddleware(tokens))
	{
		read.GET("", h.ScheduleHandler.ListSchedules)
		read.GET("/:id", h.ScheduleHandler.GetSchedule)
	}

	write := api.Group("/schedules")
	write.Use(
		middleware.AuthMiddleware(tokens),
		middleware.RequireRoles(models.UserRoleManager, models.UserRoleAdmin, models.UserRoleOwner),
	)
	{
		write.POST("", h.ScheduleHandler.CreateSchedule)
		write.PUT("/:id", h.ScheduleHandler.UpdateSchedule)
		write.DELETE("/:id", h.ScheduleHandler.DeleteSchedule)
	}
}

func setupFCIFRoutes(api *gin.RouterGroup, h *handlers.AppHandlers, tokens *auth.TokenService) {
	read := api.Group("/fcifs")
	read.Use(middleware.AuthMiddleware(tokens))
	{
		read.GET("", h.FCIFHandler.ListFCIFs)
		read.POST("/:id/acknowledge", h.FCIFHandler.AcknowledgeFCIF)
	}

	manage := api.Group("/fcifs")
	manage.Use(
		middleware.AuthMiddleware(tokens),
		middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleOwner),
	)
	{
		manage.POST("", h.FCIFHandler.CreateFCIF)
		manage.DELETE("/:id", h.FCIFHandler.DeleteFCIF)
	}
}
