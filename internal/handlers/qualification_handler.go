package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sq23rd/roster-backend/internal/services"
	"github.com/sq23rd/roster-backend/internal/services/dto"
)

type QualificationHandler struct {
	*BaseHandler
	qualificationService services.QualificationService
}

func NewQualificationHandler(base *BaseHandler, qualificationService services.QualificationService) *QualificationHandler {
	return &QualificationHandler{
		BaseHandler:          base,
		qualificationService: qualificationService,
	}
}

func (h *QualificationHandler) AddQualification(c *gin.Context) {
	var req dto.AddQualificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	assignedBy, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	qualification, err := h.qualificationService.AddQualification(c.Param("id"), &req, assignedBy)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, qualification)
}

func (h *QualificationHandler) ListQualifications(c *gin.Context) {
	qualifications, err := h.qualificationService.ListQualifications(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"qualifications": qualifications})
}

func (h *QualificationHandler) RemoveQualification(c *gin.Context) {
	err := h.qualificationService.RemoveQualification(c.Param("id"), c.Param("qualificationId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Qualification removed successfully."})
}
