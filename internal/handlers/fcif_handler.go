package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sq23rd/roster-backend/internal/services"
	"github.com/sq23rd/roster-backend/internal/services/dto"
)

type FCIFHandler struct {
	*BaseHandler
	fcifService services.FCIFService
}

func NewFCIFHandler(base *BaseHandler, fcifService services.FCIFService) *FCIFHandler {
	return &FCIFHandler{
		BaseHandler: base,
		fcifService: fcifService,
	}
}

func (h *FCIFHandler) CreateFCIF(c *gin.Context) {
	var req dto.CreateFCIFRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	fcif, err := h.fcifService.CreateFCIF(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, fcif)
}

func (h *FCIFHandler) ListFCIFs(c *gin.Context) {
	fcifs, err := h.fcifService.ListFCIFs()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"fcifs": fcifs})
}

func (h *FCIFHandler) AcknowledgeFCIF(c *gin.Context) {
	userID, ok := h.GetAuthenticatedUserID(c)
	if !ok {
		return
	}

	if err := h.fcifService.AcknowledgeFCIF(c.Param("id"), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCIF acknowledged."})
}

func (h *FCIFHandler) DeleteFCIF(c *gin.Context) {
	if err := h.fcifService.DeleteFCIF(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "FCIF deleted successfully."})
}
