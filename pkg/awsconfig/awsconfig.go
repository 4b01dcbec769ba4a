package awsconfig

import (
	"context"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
)

// RegionEnv é a variável lida quando a região ainda não veio da configuração
// do serviço (ex: ao buscar o próprio YAML no S3).
const RegionEnv = "REGION"

var (
	mu    sync.Mutex
	cache = map[string]aws.Config{}

	// loadDefault é substituível nos testes.
	loadDefault = config.LoadDefaultConfig
)

// Load carrega a configuração da AWS (env vars, profile, IAM role) uma única
// vez por região e a compartilha entre todos os clientes do processo. Região
// vazia deixa a resolução para a cadeia padrão do SDK (AWS_REGION, profile).
// Falhas não ficam em cache: a próxima chamada tenta de novo.
func Load(ctx context.Context, region string) (aws.Config, error) {
	mu.Lock()
	defer mu.Unlock()

	if cfg, ok := cache[region]; ok {
		return cfg, nil
	}

	opts := []func(*config.LoadOptions) error{}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	cfg, err := loadDefault(ctx, opts...)
	if err != nil {
		return aws.Config{}, err
	}
	cache[region] = cfg
	return cfg, nil
}

// FromEnv carrega a configuração da região em REGION.
func FromEnv(ctx context.Context) (aws.Config, error) {
	return Load(ctx, os.Getenv(RegionEnv))
}

// reset é usado apenas pelos testes.
func reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = map[string]aws.Config{}
}
