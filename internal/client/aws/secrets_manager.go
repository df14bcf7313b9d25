package aws

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/Ashutosh-Ahirwar/base-activity/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// SecretsAPI is the part of the Secrets Manager client used here.
type SecretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc    SecretsAPI
	logger *zap.Logger
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API implementation.
func NewSecretsManagerClientWithAPI(svc SecretsAPI) *SecretsManagerClient {
	return &SecretsManagerClient{
		svc:    svc,
		logger: logger.ForComponent(nil, logger.ComponentConfig),
	}
}

// GetSecretString reads the secret whose ARN is in secretArnEnvVar. When that variable is
// unset or the fetch fails it falls back to the plain value of fallbackEnvVar.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		c.logger.Debug("Fetching secret from Secrets Manager", zap.String("arn_env_var", secretArnEnvVar))
		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && strings.TrimSpace(*result.SecretString) != "" {
			c.logger.Info("Loaded secret from Secrets Manager", zap.String("arn_env_var", secretArnEnvVar))
			return strings.TrimSpace(*result.SecretString), nil
		}
		c.logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arn_env_var", secretArnEnvVar),
			zap.String("fallback_env_var", fallbackEnvVar),
			zap.Error(err))
	}

	if secretValue := os.Getenv(fallbackEnvVar); secretValue != "" {
		return secretValue, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}
