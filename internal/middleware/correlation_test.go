package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:        "new ID generated when header not present",
			expectNewID: true,
		},
		{
			name:                 "existing ID preserved when header present",
			requestCorrelationID: "test-correlation-id-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fromGin, fromContext string
			router := gin.New()
			router.Use(CorrelationIDMiddleware())
			router.GET("/test", func(c *gin.Context) {
				fromGin = GetCorrelationID(c)
				fromContext = CorrelationIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			responseID := w.Header().Get(CorrelationIDHeader)
			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.Equal(t, responseID, fromGin)
			assert.Equal(t, responseID, fromContext)
			if tt.expectNewID {
				assert.Len(t, responseID, 36)
			} else {
				assert.Equal(t, tt.requestCorrelationID, responseID)
			}
		})
	}
}

func TestCorrelationIDFromContext_Missing(t *testing.T) {
	assert.Empty(t, CorrelationIDFromContext(context.Background()))
	assert.NotNil(t, LogWithCorrelationID(context.Background()))
}

func TestRequestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CorrelationIDMiddleware(), RequestLoggingMiddleware())
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusTeapot, "short and stout")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Equal(t, "short and stout", w.Body.String())
}
