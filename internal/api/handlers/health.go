package handlers

import (
	"net/http"

	"formgate/internal/api/dto/common"
	"formgate/internal/repository"
	"formgate/internal/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	contacts repository.ContactRepository
}

func NewHealthHandler(contacts repository.ContactRepository) *HealthHandler {
	return &HealthHandler{contacts: contacts}
}

func (h *HealthHandler) Check(c *gin.Context) {
	// A cheap query doubles as the DB connectivity probe
	if _, err := h.contacts.Count(c.Request.Context()); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.ErrCodeInternalServer, "Database connection error")
		return
	}

	utils.HandleMessage(c, "Health check OK")
}
