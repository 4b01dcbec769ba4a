package envloader

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tableConf struct {
	Name    string `env:"TEST_TABLE_NAME"`
	Region  string `env:"TEST_REGION" envDefault:"us-east-1"`
	HashKey string `env:"TEST_HASH_KEY" envDefault:"movieId"`
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	t.Setenv("TEST_TABLE_NAME", "MovieAwards")

	var cfg tableConf
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "MovieAwards", cfg.Name)
	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, "movieId", cfg.HashKey)
}

func TestLoad_EnvOverridesExistingValue(t *testing.T) {
	t.Setenv("TEST_REGION", "eu-west-1")

	cfg := tableConf{Name: "from-yaml", Region: "sa-east-1"}
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "from-yaml", cfg.Name, "campo sem variável definida deve ser preservado")
	assert.Equal(t, "eu-west-1", cfg.Region)
}

func TestLoad_DefaultDoesNotOverrideExistingValue(t *testing.T) {
	cfg := tableConf{HashKey: "pk"}
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "pk", cfg.HashKey)
}

func TestLoad_NumericBoolAndDuration(t *testing.T) {
	type Config struct {
		Port    int           `env:"TEST_PORT" envDefault:"8080"`
		Limit   int32         `env:"TEST_LIMIT"`
		Ratio   float64       `env:"TEST_RATIO" envDefault:"0.5"`
		Enabled bool          `env:"TEST_ENABLED"`
		Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"2s"`
		Size    uint64        `env:"TEST_SIZE"`
	}

	t.Setenv("TEST_LIMIT", "25")
	t.Setenv("TEST_ENABLED", "TRUE")
	t.Setenv("TEST_SIZE", "1048576")

	var cfg Config
	require.NoError(t, Load(&cfg))

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int32(25), cfg.Limit)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, uint64(1048576), cfg.Size)
}

func TestLoad_StringSlice(t *testing.T) {
	type Config struct {
		Tags []string `env:"TEST_TAGS"`
	}
	t.Setenv("TEST_TAGS", "env:dev, service:awards,,")

	var cfg Config
	require.NoError(t, Load(&cfg))
	assert.Equal(t, []string{"env:dev", "service:awards"}, cfg.Tags)
}

func TestLoad_NestedStructs(t *testing.T) {
	type Metrics struct {
		Addr string `env:"TEST_DD_ADDR" envDefault:"127.0.0.1:8125"`
	}
	type Config struct {
		Table   tableConf
		Metrics *Metrics
	}
	t.Setenv("TEST_TABLE_NAME", "Awards")

	var cfg Config
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "Awards", cfg.Table.Name)
	require.NotNil(t, cfg.Metrics)
	assert.Equal(t, "127.0.0.1:8125", cfg.Metrics.Addr)
}

func TestLoad_InvalidTargets(t *testing.T) {
	var cfg tableConf

	tests := []struct {
		name   string
		target interface{}
		msg    string
	}{
		{"nil", nil, "got nil"},
		{"struct by value", cfg, "got struct"},
		{"pointer to string", new(string), "got pointer to string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Load(tt.target)
			var target *InvalidConfigError
			require.ErrorAs(t, err, &target)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_FieldError(t *testing.T) {
	type Config struct {
		Port int `env:"TEST_PORT"`
	}
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg Config
	err := Load(&cfg)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Port", fieldErr.FieldName)
	assert.Equal(t, "TEST_PORT", fieldErr.EnvVar)

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
}

func TestLoad_UnsupportedType(t *testing.T) {
	type Config struct {
		Labels map[string]string `env:"TEST_LABELS"`
	}
	t.Setenv("TEST_LABELS", "a=b")

	var cfg Config
	err := Load(&cfg)

	var unsupported *UnsupportedTypeError
	require.ErrorAs(t, err, &unsupported)
}

func TestMustLoad_Panics(t *testing.T) {
	assert.Panics(t, func() { MustLoad("invalid") })
}
