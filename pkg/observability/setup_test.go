package observability

import (
	"testing"

	"github.com/raywall/movie-awards-service/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupMetrics(t *testing.T) {
	t.Run("Disabled returns Noop", func(t *testing.T) {
		provider, err := SetupMetrics("movie-awards", config.MetricsConf{})
		require.NoError(t, err)

		assert.IsType(t, &NoopProvider{}, provider)
		assert.NoError(t, provider.Count("x", 1, nil))
		assert.NoError(t, provider.Gauge("x", 1, nil))
		assert.NoError(t, provider.Histogram("x", 1, nil))
	})

	t.Run("Enabled returns Datadog", func(t *testing.T) {
		cfg := config.MetricsConf{
			Datadog: config.DatadogConf{
				Enabled:   true,
				Addr:      "localhost:8125",
				Namespace: "movie_awards.",
				Tags:      []string{"env:test"},
			},
		}

		provider, err := SetupMetrics("movie-awards", cfg)
		require.NoError(t, err)

		dd, ok := provider.(*DatadogProvider)
		require.True(t, ok, "Esperado DatadogProvider, recebido %T", provider)
		assert.NoError(t, dd.Count("award_lookup.requests", 1, []string{"outcome:ok"}))
		assert.NoError(t, dd.Close())
	})
}
