package awsconfig

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubLoader(t *testing.T, fn func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)) {
	t.Helper()
	original := loadDefault
	loadDefault = fn
	reset()
	t.Cleanup(func() {
		loadDefault = original
		reset()
	})
}

func regionLoader(t *testing.T, calls *int) func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
	return func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		*calls++
		var opts config.LoadOptions
		for _, fn := range optFns {
			require.NoError(t, fn(&opts))
		}
		return aws.Config{Region: opts.Region}, nil
	}
}

func TestLoad_SharedPerRegion(t *testing.T) {
	calls := 0
	stubLoader(t, regionLoader(t, &calls))

	cfg, err := Load(context.Background(), "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)

	again, err := Load(context.Background(), "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", again.Region)
	assert.Equal(t, 1, calls, "a mesma região reaproveita a configuração")

	other, err := Load(context.Background(), "us-east-1")
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", other.Region)
	assert.Equal(t, 2, calls)
}

func TestLoad_EmptyRegionUsesDefaultChain(t *testing.T) {
	stubLoader(t, func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		assert.Empty(t, optFns)
		return aws.Config{}, nil
	})

	_, err := Load(context.Background(), "")
	assert.NoError(t, err)
}

func TestFromEnv_UsesRegionVariable(t *testing.T) {
	calls := 0
	stubLoader(t, regionLoader(t, &calls))
	t.Setenv(RegionEnv, "sa-east-1")

	cfg, err := FromEnv(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)

	// o mesmo cache atende quem passa a região explicitamente
	_, err = Load(context.Background(), "sa-east-1")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLoad_ErrorIsNotCached(t *testing.T) {
	boom := errors.New("no credentials")
	calls := 0
	stubLoader(t, func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		calls++
		if calls == 1 {
			return aws.Config{}, boom
		}
		return aws.Config{Region: "eu-west-1"}, nil
	})

	_, err := Load(context.Background(), "eu-west-1")
	assert.ErrorIs(t, err, boom)

	cfg, err := Load(context.Background(), "eu-west-1")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
	assert.Equal(t, 2, calls)
}
