package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/constants"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/interfaces"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/services"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/api/responses"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/business"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsHandler serves name resolution and activity stats
type StatsHandler struct {
	names   interfaces.NameService
	stats   interfaces.StatsService
	timeout time.Duration
	logger  *zap.Logger
}

// NewStatsHandler creates a StatsHandler. timeout bounds each request, including retries.
func NewStatsHandler(names interfaces.NameService, stats interfaces.StatsService, timeout time.Duration, l *zap.Logger) *StatsHandler {
	if timeout <= 0 {
		timeout = constants.DefaultStatsTimeout
	}
	return &StatsHandler{
		names:   names,
		stats:   stats,
		timeout: timeout,
		logger:  logger.ForComponent(l, logger.ComponentAPI),
	}
}

// GetStats resolves :name and returns its activity report.
func (h *StatsHandler) GetStats(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resolved, ok := h.resolve(ctx, c)
	if !ok {
		return
	}

	stats, err := h.stats.GetUserStats(ctx, resolved.Address)
	if err != nil {
		if errors.Is(err, services.ErrMissingSourceURL) {
			sendError(c, h.logger, http.StatusInternalServerError, constants.ServiceConfigFailed, err)
			return
		}
		sendError(c, h.logger, http.StatusServiceUnavailable, constants.FetchFailedMessage, err)
		return
	}

	sendSuccess(c, http.StatusOK, responses.NewStatsResponse(resolved, stats))
}

// Resolve returns the address behind :name.
func (h *StatsHandler) Resolve(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	resolved, ok := h.resolve(ctx, c)
	if !ok {
		return
	}

	sendSuccess(c, http.StatusOK, responses.ResolveResponse{
		Name:    resolved.Name,
		Address: resolved.Address.Hex(),
	})
}

func (h *StatsHandler) resolve(ctx context.Context, c *gin.Context) (*business.ResolvedName, bool) {
	resolved, err := h.names.Resolve(ctx, c.Param("name"))
	switch {
	case err == nil:
		return resolved, true
	case errors.Is(err, services.ErrRawAddress):
		sendError(c, h.logger, http.StatusBadRequest, constants.RawAddressMessage, err)
	case errors.Is(err, services.ErrNameNotFound):
		sendError(c, h.logger, http.StatusNotFound, constants.FetchFailedMessage, err)
	default:
		sendError(c, h.logger, http.StatusServiceUnavailable, constants.FetchFailedMessage, err)
	}
	return nil, false
}
