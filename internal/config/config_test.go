package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/config"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/constants"
	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeSecrets struct {
	values map[string]string
	err    error
	asked  []string
}

func (f *fakeSecrets) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	f.asked = append(f.asked, secretArnEnvVar)
	if f.err != nil {
		return "", f.err
	}
	return f.values[fallbackEnvVar], nil
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, "")

	cfg, err := config.Load(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, constants.DefaultFetchMaxAttempts, cfg.FetchMaxAttempts)
	assert.Equal(t, time.Second, cfg.FetchInitialDelay)
	assert.Equal(t, 200*time.Millisecond, cfg.SourcePause)
	assert.Equal(t, ".base.eth", cfg.DefaultNameSuffix)
	assert.Equal(t, constants.BasenameRegistryAddress, cfg.BasenameRegistryAddress)
	assert.Contains(t, cfg.SwapKeywords, "multicall")
	assert.Contains(t, cfg.ClassificationRules().Naming, "settext")
}

func TestLoad_MissingDotEnvIsLogged(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, "")
	core, logs := observer.New(zap.WarnLevel)
	previous := logger.Log
	logger.Log = zap.New(core)
	t.Cleanup(func() { logger.Log = previous })

	_, err := config.Load(context.Background(), nil)

	require.NoError(t, err)
	entries := logs.FilterMessage("No .env file loaded").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "config", entries[0].ContextMap()["component"])
	assert.NotNil(t, entries[0].ContextMap()["error"])
}

func TestLoad_FileThenEnvironment(t *testing.T) {
	path := writeConfigFile(t, `
stage: dev
baseApiUrl: https://file.example/base?address=
ethApiUrl: https://file.example/eth?address=
fetchMaxAttempts: 5
fetchInitialDelay: 250ms
swapKeywords:
  - swap
  - zap
`)
	t.Setenv(config.ConfigPathEnv, path)
	t.Setenv("ETH_API_URL", "https://env.example/eth?address=")
	t.Setenv("BASE_INTERNAL_API_URL", " https://env.example/internal?address= ")
	t.Setenv("SOURCE_PAUSE", "50ms")
	t.Setenv("CLASSIFY_BRIDGE_KEYWORDS", "bridge,portal")

	cfg, err := config.Load(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Stage)
	assert.Equal(t, 5, cfg.FetchMaxAttempts)
	assert.Equal(t, 250*time.Millisecond, cfg.FetchInitialDelay)
	assert.Equal(t, 50*time.Millisecond, cfg.SourcePause)

	sources := cfg.Sources()
	assert.Equal(t, "https://file.example/base?address=", sources.Base)
	assert.Equal(t, "https://env.example/eth?address=", sources.Eth)
	assert.Equal(t, "https://env.example/internal?address=", sources.Internal)

	rules := cfg.ClassificationRules()
	assert.Equal(t, []string{"swap", "zap"}, rules.Swap)
	assert.Equal(t, []string{"bridge", "portal"}, rules.Bridge)
}

func TestLoad_Secrets(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, "")
	t.Setenv("BASE_API_URL_ARN", "arn:aws:secretsmanager:us-east-1:1:secret:base")
	t.Setenv("BASE_API_URL", "https://plain.example/")

	t.Run("secret value replaces the plain one", func(t *testing.T) {
		secrets := &fakeSecrets{values: map[string]string{"BASE_API_URL": "https://secret.example/?apikey=k&address="}}

		cfg, err := config.Load(context.Background(), secrets)

		require.NoError(t, err)
		assert.Equal(t, "https://secret.example/?apikey=k&address=", cfg.BaseAPIURL)
		assert.Equal(t, []string{"BASE_API_URL_ARN"}, secrets.asked)
		assert.True(t, config.NeedsSecrets())
	})

	t.Run("secret failure fails loading", func(t *testing.T) {
		_, err := config.Load(context.Background(), &fakeSecrets{err: errors.New("denied")})

		assert.ErrorContains(t, err, "BASE_API_URL")
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown stage", "STAGE", "staging"},
		{"zero attempts", "FETCH_MAX_ATTEMPTS", "0"},
		{"non numeric attempts", "FETCH_MAX_ATTEMPTS", "many"},
		{"bad registry", "ENS_REGISTRY_ADDRESS", "0x1234"},
		{"zero stats timeout", "STATS_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.ConfigPathEnv, "")
			t.Setenv(tt.key, tt.val)

			_, err := config.Load(context.Background(), nil)

			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingConfigFile(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := config.Load(context.Background(), nil)

	assert.ErrorContains(t, err, "error opening config file")
}

func TestLoad_EmptyConfigFile(t *testing.T) {
	t.Setenv(config.ConfigPathEnv, writeConfigFile(t, ""))

	cfg, err := config.Load(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.APIPort)
}
