package middleware

import (
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLoggingMiddleware logs one line per completed request
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		fields := []zap.Field{
			zap.String("component", string(logger.ComponentServer)),
			zap.String("correlation_id", GetCorrelationID(c)),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("client_ip", c.ClientIP()),
			zap.Int("body_size", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}
		logger.Log.Info("Request completed", fields...)
	}
}
