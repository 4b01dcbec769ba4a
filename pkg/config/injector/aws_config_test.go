package injector

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInjector_LazyClientsUseSharedAWSConfig(t *testing.T) {
	original := loadAWSConfig
	t.Cleanup(func() { loadAWSConfig = original })
	t.Setenv("REGION", "sa-east-1")

	boom := errors.New("no credentials")
	var regions []string
	loadAWSConfig = func(ctx context.Context) (aws.Config, error) {
		regions = append(regions, os.Getenv("REGION"))
		return aws.Config{}, boom
	}

	inj := New()

	ssmTarget := &struct{ Table string }{Table: "${ssm./movies/table}"}
	err := inj.Inject(context.Background(), ssmTarget)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "config aws")
	assert.Equal(t, "${ssm./movies/table}", ssmTarget.Table)

	secretTarget := &struct{ Password string }{Password: "${secret.awards#password}"}
	err = inj.Inject(context.Background(), secretTarget)
	assert.ErrorIs(t, err, boom)

	assert.Equal(t, []string{"sa-east-1", "sa-east-1"}, regions)
}
