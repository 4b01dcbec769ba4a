package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/raywall/movie-awards-service/dyndb"
	"github.com/raywall/movie-awards-service/pkg/awards"
	"github.com/raywall/movie-awards-service/pkg/awsconfig"
	"github.com/raywall/movie-awards-service/pkg/config"
	"github.com/raywall/movie-awards-service/pkg/logger"
	"github.com/raywall/movie-awards-service/pkg/metrics"
	"github.com/raywall/movie-awards-service/pkg/observability"
	"github.com/rs/zerolog"
)

// LoadFunc carrega a configuração a partir de uma fonte (arquivo, s3://, ...).
type LoadFunc func(ctx context.Context, source string) (*config.ServiceConfig, error)

// DefaultClientFactory usa a configuração AWS do processo e a região da tabela.
func DefaultClientFactory(ctx context.Context, table config.TableConf) (dyndb.DynamoDBClient, error) {
	awsCfg, err := awsconfig.Load(ctx, table.Region)
	if err != nil {
		return nil, fmt.Errorf("falha config aws: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg), nil
}

type ServiceEngine struct {
	mu           sync.RWMutex
	ConfigSource string
	Config       *config.ServiceConfig
	Logger       zerolog.Logger
	Metrics      metrics.Provider

	client  dyndb.DynamoDBClient
	handler *awards.Handler
	load    LoadFunc
}

type Option func(*ServiceEngine)

// WithClient injeta um cliente DynamoDB já construído.
func WithClient(c dyndb.DynamoDBClient) Option {
	return func(se *ServiceEngine) { se.client = c }
}

// WithMetrics substitui o provider configurado pelo YAML.
func WithMetrics(p metrics.Provider) Option {
	return func(se *ServiceEngine) { se.Metrics = p }
}

// WithLoader troca a função usada pelo Reload.
func WithLoader(fn LoadFunc) Option {
	return func(se *ServiceEngine) { se.load = fn }
}

// NewServiceEngine configura logger e métricas e monta o handler de prêmios.
// O cliente DynamoDB é criado uma única vez e reaproveitado nos reloads.
func NewServiceEngine(ctx context.Context, cfg *config.ServiceConfig, configSource string, opts ...Option) (*ServiceEngine, error) {
	se := &ServiceEngine{
		ConfigSource: configSource,
		Config:       cfg,
		Logger:       logger.Configure(cfg.Service.Logging),
		load:         Load,
	}
	for _, opt := range opts {
		opt(se)
	}

	if se.Metrics == nil {
		provider, err := observability.SetupMetrics(cfg.Service.Name, cfg.Service.Metrics)
		if err != nil {
			return nil, fmt.Errorf("falha métricas: %w", err)
		}
		se.Metrics = provider
	}

	if se.client == nil {
		client, err := DefaultClientFactory(ctx, cfg.Table)
		if err != nil {
			return nil, err
		}
		se.client = client
	}

	if cfg.Table.Name == "" {
		se.Logger.Warn().Msg("TABLE_NAME não configurado: as consultas vão falhar com 500")
	}

	se.handler = se.buildHandler(cfg)
	return se, nil
}

func (se *ServiceEngine) buildHandler(cfg *config.ServiceConfig) *awards.Handler {
	return awards.NewHandler(awards.NewDynamoRepository(se.client, cfg.Table), se.Metrics)
}

// Handle delega a requisição ao handler corrente.
func (se *ServiceEngine) Handle(ctx context.Context, req awards.Request) awards.Response {
	se.mu.RLock()
	h := se.handler
	se.mu.RUnlock()
	return h.Handle(ctx, req)
}

// CurrentConfig retorna a configuração em uso.
func (se *ServiceEngine) CurrentConfig() *config.ServiceConfig {
	se.mu.RLock()
	defer se.mu.RUnlock()
	return se.Config
}

// Reload relê a configuração da fonte original e troca o handler.
// Requisições em andamento terminam com o handler anterior.
func (se *ServiceEngine) Reload(ctx context.Context) error {
	se.Logger.Info().Str("source", se.ConfigSource).Msg("hot reload iniciado")

	newCfg, err := se.load(ctx, se.ConfigSource)
	if err != nil {
		_ = se.Metrics.Count(metrics.ConfigReloads, 1, []string{"outcome:error"})
		return fmt.Errorf("falha ao carregar nova configuração: %w", err)
	}

	handler := se.buildHandler(newCfg)

	se.mu.Lock()
	se.Config = newCfg
	se.handler = handler
	se.mu.Unlock()

	_ = se.Metrics.Count(metrics.ConfigReloads, 1, []string{"outcome:ok"})
	se.Logger.Info().Str("table", newCfg.Table.Name).Msg("hot reload concluído")
	return nil
}
