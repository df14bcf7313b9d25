package aws_test

import (
	"context"
	"errors"
	"testing"

	awsclient "github.com/Ashutosh-Ahirwar/base-activity/internal/client/aws"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSecrets struct {
	values map[string]string
	err    error
	calls  int
}

func (f *fakeSecrets) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	value, ok := f.values[aws.ToString(params.SecretId)]
	if !ok {
		return nil, errors.New("ResourceNotFoundException")
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: aws.String(value)}, nil
}

func TestSecretsManagerClient_GetSecretString(t *testing.T) {
	const arn = "arn:aws:secretsmanager:us-east-1:123456789012:secret:base-api-url"

	t.Run("reads the secret referenced by the ARN variable", func(t *testing.T) {
		t.Setenv("BASE_API_URL_ARN", arn)
		t.Setenv("BASE_API_URL", "https://fallback.example/")
		fake := &fakeSecrets{values: map[string]string{arn: " https://secret.example/?apikey=k&address= \n"}}

		got, err := awsclient.NewSecretsManagerClientWithAPI(fake).GetSecretString(context.Background(), "BASE_API_URL_ARN", "BASE_API_URL")

		require.NoError(t, err)
		assert.Equal(t, "https://secret.example/?apikey=k&address=", got)
		assert.Equal(t, 1, fake.calls)
	})

	t.Run("falls back to the plain variable on fetch error", func(t *testing.T) {
		t.Setenv("BASE_API_URL_ARN", arn)
		t.Setenv("BASE_API_URL", "https://fallback.example/")
		fake := &fakeSecrets{err: errors.New("access denied")}

		got, err := awsclient.NewSecretsManagerClientWithAPI(fake).GetSecretString(context.Background(), "BASE_API_URL_ARN", "BASE_API_URL")

		require.NoError(t, err)
		assert.Equal(t, "https://fallback.example/", got)
	})

	t.Run("skips Secrets Manager without an ARN", func(t *testing.T) {
		t.Setenv("BASE_API_URL_ARN", "")
		t.Setenv("BASE_API_URL", "https://plain.example/")
		fake := &fakeSecrets{}

		got, err := awsclient.NewSecretsManagerClientWithAPI(fake).GetSecretString(context.Background(), "BASE_API_URL_ARN", "BASE_API_URL")

		require.NoError(t, err)
		assert.Equal(t, "https://plain.example/", got)
		assert.Zero(t, fake.calls)
	})

	t.Run("errors when neither source has a value", func(t *testing.T) {
		t.Setenv("BASE_API_URL_ARN", "")
		t.Setenv("BASE_API_URL", "")

		_, err := awsclient.NewSecretsManagerClientWithAPI(&fakeSecrets{}).GetSecretString(context.Background(), "BASE_API_URL_ARN", "BASE_API_URL")

		assert.Error(t, err)
	})
}
