package handlers

import (
	"net/http"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/middleware"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/api/responses"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// sendError logs err with the request's correlation ID and writes message to the client.
// Upstream details never reach the response body.
func sendError(c *gin.Context, l *zap.Logger, statusCode int, message string, err error) {
	correlationID := middleware.GetCorrelationID(c)

	fields := []zap.Field{
		zap.Error(err),
		zap.Int("status", statusCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	}
	if statusCode >= http.StatusInternalServerError {
		l.Error(message, fields...)
	} else {
		l.Info(message, fields...)
	}

	c.JSON(statusCode, responses.ErrorResponse{
		Error:         message,
		CorrelationID: correlationID,
	})
}

func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}
