// Package config loads service configuration from .env, an optional YAML file and the
// environment, in that order of precedence (later wins).
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/activity"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/constants"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/helpers"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/services"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ConfigPathEnv names the optional YAML config file.
const ConfigPathEnv = "CONFIG_PATH"

// SecretResolver reads a secret by the ARN held in one env var, falling back to another.
type SecretResolver interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Config is the full service configuration
type Config struct {
	Stage    string `yaml:"stage" envconfig:"STAGE"`
	LogLevel string `yaml:"logLevel" envconfig:"LOG_LEVEL"`
	APIPort  string `yaml:"apiPort" envconfig:"API_PORT"`

	BaseAPIURL         string `yaml:"baseApiUrl" envconfig:"BASE_API_URL"`
	EthAPIURL          string `yaml:"ethApiUrl" envconfig:"ETH_API_URL"`
	BaseInternalAPIURL string `yaml:"baseInternalApiUrl" envconfig:"BASE_INTERNAL_API_URL"`

	FetchMaxAttempts  int           `yaml:"fetchMaxAttempts" envconfig:"FETCH_MAX_ATTEMPTS"`
	FetchInitialDelay time.Duration `yaml:"fetchInitialDelay" envconfig:"FETCH_INITIAL_DELAY"`
	FetchTimeout      time.Duration `yaml:"fetchTimeout" envconfig:"FETCH_TIMEOUT"`
	SourcePause       time.Duration `yaml:"sourcePause" envconfig:"SOURCE_PAUSE"`
	StatsTimeout      time.Duration `yaml:"statsTimeout" envconfig:"STATS_TIMEOUT"`

	BaseRPCURL              string `yaml:"baseRpcUrl" envconfig:"BASE_RPC_URL"`
	EthRPCURL               string `yaml:"ethRpcUrl" envconfig:"ETH_RPC_URL"`
	BasenameRegistryAddress string `yaml:"basenameRegistryAddress" envconfig:"BASENAME_REGISTRY_ADDRESS"`
	ENSRegistryAddress      string `yaml:"ensRegistryAddress" envconfig:"ENS_REGISTRY_ADDRESS"`
	DefaultNameSuffix       string `yaml:"defaultNameSuffix" envconfig:"DEFAULT_NAME_SUFFIX"`

	SwapKeywords   []string `yaml:"swapKeywords" envconfig:"CLASSIFY_SWAP_KEYWORDS"`
	BridgeKeywords []string `yaml:"bridgeKeywords" envconfig:"CLASSIFY_BRIDGE_KEYWORDS"`
	DeFiKeywords   []string `yaml:"defiKeywords" envconfig:"CLASSIFY_DEFI_KEYWORDS"`
	NamingKeywords []string `yaml:"namingKeywords" envconfig:"CLASSIFY_NAMING_KEYWORDS"`

	RateLimitRPS       float64  `yaml:"rateLimitRps" envconfig:"RATE_LIMIT_RPS"`
	RateLimitBurst     int      `yaml:"rateLimitBurst" envconfig:"RATE_LIMIT_BURST"`
	CORSAllowedOrigins []string `yaml:"corsAllowedOrigins" envconfig:"CORS_ALLOWED_ORIGINS"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	rules := activity.DefaultClassificationRules()
	return &Config{
		Stage:                   helpers.StageLocal,
		LogLevel:                "info",
		APIPort:                 "8000",
		FetchMaxAttempts:        constants.DefaultFetchMaxAttempts,
		FetchInitialDelay:       constants.DefaultFetchInitialDelay,
		FetchTimeout:            constants.DefaultFetchTimeout,
		SourcePause:             constants.DefaultSourcePause,
		StatsTimeout:            constants.DefaultStatsTimeout,
		BaseRPCURL:              constants.DefaultBaseRPCURL,
		EthRPCURL:               constants.DefaultEthRPCURL,
		BasenameRegistryAddress: constants.BasenameRegistryAddress,
		ENSRegistryAddress:      constants.ENSRegistryAddress,
		DefaultNameSuffix:       constants.DefaultNameSuffix,
		SwapKeywords:            rules.Swap,
		BridgeKeywords:          rules.Bridge,
		DeFiKeywords:            rules.DeFi,
		NamingKeywords:          rules.Naming,
		RateLimitRPS:            5,
		RateLimitBurst:          10,
		CORSAllowedOrigins:      []string{"*"},
	}
}

// Load reads .env, the CONFIG_PATH file and the environment. When secrets is non-nil,
// explorer URLs with a matching <KEY>_ARN variable are read from it.
func Load(ctx context.Context, secrets SecretResolver) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.ForComponent(nil, logger.ComponentConfig).Warn("No .env file loaded", zap.Error(err))
	}

	cfg := Default()
	if err := readConfigFile(cfg, os.Getenv(ConfigPathEnv)); err != nil {
		return nil, err
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("error reading config from environment: %w", err)
	}
	if secrets != nil {
		if err := cfg.resolveSecrets(ctx, secrets); err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NeedsSecrets reports whether any explorer URL is configured through an ARN variable.
func NeedsSecrets() bool {
	for _, key := range secretKeys {
		if os.Getenv(key+"_ARN") != "" {
			return true
		}
	}
	return false
}

var secretKeys = []string{"BASE_API_URL", "ETH_API_URL", "BASE_INTERNAL_API_URL"}

func (c *Config) resolveSecrets(ctx context.Context, secrets SecretResolver) error {
	targets := map[string]*string{
		"BASE_API_URL":          &c.BaseAPIURL,
		"ETH_API_URL":           &c.EthAPIURL,
		"BASE_INTERNAL_API_URL": &c.BaseInternalAPIURL,
	}
	for _, key := range secretKeys {
		if os.Getenv(key+"_ARN") == "" {
			continue
		}
		value, err := secrets.GetSecretString(ctx, key+"_ARN", key)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", key, err)
		}
		*targets[key] = value
	}
	return nil
}

func readConfigFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening config file %v: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error decoding config file %v: %w", path, err)
	}
	return nil
}

// Validate checks values that would otherwise fail later in confusing ways. Explorer URLs
// are not required here; the stats service rejects requests while they are unset.
func (c *Config) Validate() error {
	if !helpers.IsValidStage(c.Stage) {
		return fmt.Errorf("invalid stage %q", c.Stage)
	}
	if c.FetchMaxAttempts < 1 {
		return fmt.Errorf("FETCH_MAX_ATTEMPTS must be at least 1, got %d", c.FetchMaxAttempts)
	}
	if c.FetchInitialDelay < 0 || c.SourcePause < 0 {
		return fmt.Errorf("FETCH_INITIAL_DELAY and SOURCE_PAUSE must not be negative")
	}
	if c.StatsTimeout <= 0 || c.FetchTimeout <= 0 {
		return fmt.Errorf("STATS_TIMEOUT and FETCH_TIMEOUT must be positive")
	}
	for key, addr := range map[string]string{
		"BASENAME_REGISTRY_ADDRESS": c.BasenameRegistryAddress,
		"ENS_REGISTRY_ADDRESS":      c.ENSRegistryAddress,
	} {
		if !common.IsHexAddress(addr) {
			return fmt.Errorf("%s is not a valid address: %q", key, addr)
		}
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative")
	}
	return nil
}

// Sources returns the explorer base URLs.
func (c *Config) Sources() services.SourceURLs {
	return services.SourceURLs{
		Base:     strings.TrimSpace(c.BaseAPIURL),
		Eth:      strings.TrimSpace(c.EthAPIURL),
		Internal: strings.TrimSpace(c.BaseInternalAPIURL),
	}
}

// ClassificationRules returns the configured keyword rules.
func (c *Config) ClassificationRules() activity.ClassificationRules {
	return activity.ClassificationRules{
		Swap:   c.SwapKeywords,
		Bridge: c.BridgeKeywords,
		DeFi:   c.DeFiKeywords,
		Naming: c.NamingKeywords,
	}
}
