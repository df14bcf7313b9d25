package server

import (
	"net/http"
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/config"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/handlers"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/helpers"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/interfaces"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/middleware"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/types/api/responses"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server owns the Gin engine and the middleware state behind it.
type Server struct {
	router  *gin.Engine
	limiter *middleware.RateLimiter
}

// New builds the router for the given services.
func New(cfg *config.Config, names interfaces.NameService, stats interfaces.StatsService) *Server {
	if cfg.Stage == helpers.StageProd {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		router:  gin.New(),
		limiter: middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
	}
	s.initializeRoutes(cfg, names, stats)
	return s
}

// Router returns the HTTP handler.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Close stops background middleware work.
func (s *Server) Close() {
	s.limiter.Close()
}

func (s *Server) initializeRoutes(cfg *config.Config, names interfaces.NameService, stats interfaces.StatsService) {
	router := s.router

	router.Use(gin.Recovery())
	router.Use(configureCORS(cfg.CORSAllowedOrigins))
	router.Use(middleware.CorrelationIDMiddleware())
	router.Use(middleware.RequestLoggingMiddleware())
	router.Use(s.limiter.Middleware())

	healthHandler := handlers.NewHealthHandler()
	statsHandler := handlers.NewStatsHandler(names, stats, cfg.StatsTimeout, nil)

	router.GET("/health", healthHandler.Health)
	// Health for raw lambda url check
	router.GET("/:stage/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/stats/:name", statsHandler.GetStats)
		v1.GET("/resolve/:name", statsHandler.Resolve)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:         "Not found",
			CorrelationID: middleware.GetCorrelationID(c),
		})
	})
}

func configureCORS(origins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	cleaned := make([]string, 0, len(origins))
	for _, origin := range origins {
		if origin = strings.TrimSpace(origin); origin != "" {
			cleaned = append(cleaned, origin)
		}
	}
	if len(cleaned) == 0 || (len(cleaned) == 1 && cleaned[0] == "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cleaned
	}

	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Correlation-ID"}
	corsConfig.ExposeHeaders = []string{
		"X-RateLimit-Limit",
		"X-RateLimit-Remaining",
		"X-RateLimit-Reset",
		"Retry-After",
		"X-Correlation-ID",
	}

	return cors.New(corsConfig)
}
