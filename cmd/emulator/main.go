package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/raywall/movie-awards-service/envloader"
	"github.com/raywall/movie-awards-service/pkg/awards"
	"github.com/raywall/movie-awards-service/pkg/config"
	"github.com/raywall/movie-awards-service/pkg/logger"
	"github.com/raywall/movie-awards-service/pkg/observability"
	"github.com/raywall/movie-awards-service/pkg/transport"
	"github.com/raywall/movie-awards-service/tools/emulator"
	"github.com/rs/zerolog/log"
)

// emulatorConfig é lido apenas de variáveis de ambiente.
type emulatorConfig struct {
	SeedPath        string        `env:"EMULATOR_SEED_PATH" envDefault:"emulator.json"`
	FilterAttribute string        `env:"DYNAMODB_FILTER_ATTRIBUTE" envDefault:"numAwards"`
	Port            int           `env:"PORT" envDefault:"8080"`
	Route           string        `env:"SERVICE_ROUTE" envDefault:"/awards/{awardBody}/movies/{movieId}"`
	Timeout         time.Duration `env:"SERVICE_TIMEOUT" envDefault:"10s"`
	Logging         config.LoggingConf
	Metrics         config.MetricsConf
}

const emulatorName = "movie-awards-emulator"

// Injetáveis para testes
var (
	serverStarter = transport.StartHTTPServer
	newMetrics    = observability.SetupMetrics
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatal().Err(err).Msg("falha no emulador")
	}
}

func run(ctx context.Context) error {
	var cfg emulatorConfig
	if err := envloader.Load(&cfg); err != nil {
		return err
	}
	logger.Configure(cfg.Logging)

	repo, err := emulator.LoadFile(cfg.SeedPath, cfg.FilterAttribute)
	if err != nil {
		return err
	}
	log.Info().Str("seed", cfg.SeedPath).Int("records", repo.Len()).Msg("dataset carregado")

	// sem DD_ENABLED o provider é noop
	provider, err := newMetrics(emulatorName, cfg.Metrics)
	if err != nil {
		return err
	}

	handler := awards.NewHandler(repo, provider)
	return serverStarter(ctx, handler, config.ServiceDetails{
		Name:    emulatorName,
		Runtime: "local",
		Port:    cfg.Port,
		Route:   cfg.Route,
		Timeout: cfg.Timeout,
		Logging: cfg.Logging,
		Metrics: cfg.Metrics,
	})
}
