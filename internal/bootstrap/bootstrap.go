// Package bootstrap wires the services shared by the API server and the CLI.
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/client/ens"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/client/explorer"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/config"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/services"

	awsclient "github.com/Ashutosh-Ahirwar/base-activity/internal/client/aws"
	"go.uber.org/zap"
)

// Services bundles the domain services built from a Config.
type Services struct {
	Names  *services.NameService
	Stats  *services.StatsService
	router *ens.Router
}

// Close releases RPC connections.
func (s *Services) Close() {
	if s.router != nil {
		s.router.Close()
	}
}

// LoadConfig loads configuration, creating a Secrets Manager client only when an
// explorer URL is configured by ARN.
func LoadConfig(ctx context.Context) (*config.Config, error) {
	// Provisional logger for load-time warnings; callers re-init with cfg.Stage.
	logger.InitLogger(os.Getenv("STAGE"))

	var secrets config.SecretResolver
	if config.NeedsSecrets() {
		client, err := awsclient.NewSecretsManagerClient(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create secrets manager client: %w", err)
		}
		secrets = client
	}
	return config.Load(ctx, secrets)
}

// NewServices dials the name registries and builds the name and stats services.
func NewServices(ctx context.Context, cfg *config.Config) (*Services, error) {
	suffix := ens.NormalizeSuffix(cfg.DefaultNameSuffix)
	router, err := ens.DialRouter(ctx, ens.RouterConfig{
		BaseRPCURL:       cfg.BaseRPCURL,
		EthRPCURL:        cfg.EthRPCURL,
		BasenameRegistry: cfg.BasenameRegistryAddress,
		ENSRegistry:      cfg.ENSRegistryAddress,
		BasenameSuffix:   suffix,
		Logger:           logger.Log,
	})
	if err != nil {
		return nil, err
	}

	fetcher := explorer.NewFetcher(
		explorer.WithMaxAttempts(cfg.FetchMaxAttempts),
		explorer.WithInitialDelay(cfg.FetchInitialDelay),
		explorer.WithHTTPClient(explorer.NewHTTPClient(cfg.FetchTimeout, logger.ForComponent(nil, logger.ComponentExplorer))),
	)

	stats := services.NewStatsService(fetcher, cfg.Sources(),
		services.WithSourcePause(cfg.SourcePause),
		services.WithClassificationRules(cfg.ClassificationRules()),
	)
	if sources := cfg.Sources(); sources.Base == "" || sources.Eth == "" || sources.Internal == "" {
		logger.Warn("Explorer source URLs are incomplete; stats requests will fail until configured",
			zap.Bool("base_api_url_set", sources.Base != ""),
			zap.Bool("eth_api_url_set", sources.Eth != ""),
			zap.Bool("base_internal_api_url_set", sources.Internal != ""))
	}

	return &Services{
		Names:  services.NewNameService(router, suffix, nil),
		Stats:  stats,
		router: router,
	}, nil
}
