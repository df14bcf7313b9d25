package handlers

import (
	"net/http"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/api/responses"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health returns a static "ok" status.
func (h *HealthHandler) Health(c *gin.Context) {
	sendSuccess(c, http.StatusOK, responses.HealthResponse{
		Status: "ok",
	})
}
