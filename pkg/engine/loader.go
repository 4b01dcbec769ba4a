package engine

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/movie-awards-service/envloader"
	"github.com/raywall/movie-awards-service/pkg/awsconfig"
	"github.com/raywall/movie-awards-service/pkg/config"
	"github.com/raywall/movie-awards-service/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// Load é a função simplificada usada na inicialização e no hot reload.
func Load(ctx context.Context, source string) (*config.ServiceConfig, error) {
	return NewUniversalLoader().Load(ctx, source)
}

// loadAWSConfig resolve a config AWS das fontes remotas. A região vem de
// REGION, pois o YAML ainda não foi lido.
var loadAWSConfig = awsconfig.FromEnv

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type DynamoGetter interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// UniversalLoader monta a configuração a partir de um YAML opcional (arquivo
// local, S3 ou DynamoDB), das variáveis de ambiente e dos placeholders.
type UniversalLoader struct {
	validator *config.ConfigValidator
	injector  *injector.Injector
	s3        S3Downloader
	dynamo    DynamoGetter
}

type LoaderOption func(*UniversalLoader)

func WithS3Client(c S3Downloader) LoaderOption {
	return func(ul *UniversalLoader) { ul.s3 = c }
}

func WithDynamoClient(c DynamoGetter) LoaderOption {
	return func(ul *UniversalLoader) { ul.dynamo = c }
}

func WithInjector(i *injector.Injector) LoaderOption {
	return func(ul *UniversalLoader) { ul.injector = i }
}

// NewUniversalLoader cria uma nova instância.
func NewUniversalLoader(opts ...LoaderOption) *UniversalLoader {
	ul := &UniversalLoader{
		validator: config.NewValidator(),
		injector:  injector.New(),
	}
	for _, opt := range opts {
		opt(ul)
	}
	return ul
}

// Load detecta o esquema da fonte e carrega a configuração.
// Fonte vazia significa configuração apenas por variáveis de ambiente.
func (ul *UniversalLoader) Load(ctx context.Context, source string) (*config.ServiceConfig, error) {
	var rawData []byte
	var err error

	switch {
	case source == "":
		// nada a ler
	case strings.HasPrefix(source, "s3://"):
		if ul.s3 == nil {
			cfg, cfgErr := loadAWSConfig(ctx)
			if cfgErr != nil {
				return nil, fmt.Errorf("falha config aws: %w", cfgErr)
			}
			ul.s3 = s3.NewFromConfig(cfg)
		}
		rawData, err = ul.loadFromS3(ctx, source)

	case strings.HasPrefix(source, "dynamodb://"):
		if ul.dynamo == nil {
			cfg, cfgErr := loadAWSConfig(ctx)
			if cfgErr != nil {
				return nil, fmt.Errorf("falha config aws: %w", cfgErr)
			}
			ul.dynamo = dynamodb.NewFromConfig(cfg)
		}
		rawData, err = ul.loadFromDynamoDB(ctx, source)

	default:
		rawData, err = ul.loadFromFile(source)
	}

	if err != nil {
		return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
	}

	return ul.parseAndValidate(ctx, rawData)
}

// --- Estratégias de carregamento ---

func (ul *UniversalLoader) loadFromFile(path string) ([]byte, error) {
	// Suporta tanto "file://config.yaml" quanto apenas "config.yaml"
	return os.ReadFile(strings.TrimPrefix(path, "file://"))
}

func (ul *UniversalLoader) loadFromS3(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("URL S3 inválida: esperado s3://bucket/chave")
	}

	out, err := ul.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

// loadFromDynamoDB lê o YAML de um item: dynamodb://tabela/chave?col=config&pk=id
func (ul *UniversalLoader) loadFromDynamoDB(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL DynamoDB inválida: %w", err)
	}

	tableName := u.Host
	pkValue := strings.TrimPrefix(u.Path, "/")

	colName := u.Query().Get("col")
	if colName == "" {
		colName = "config"
	}
	pkName := u.Query().Get("pk")
	if pkName == "" {
		pkName = "id"
	}

	out, err := ul.dynamo.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &tableName,
		Key: map[string]types.AttributeValue{
			pkName: &types.AttributeValueMemberS{Value: pkValue},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("item não encontrado no DynamoDB")
	}

	var itemMap map[string]interface{}
	if err := attributevalue.UnmarshalMap(out.Item, &itemMap); err != nil {
		return nil, err
	}

	content, ok := itemMap[colName].(string)
	if !ok {
		return nil, fmt.Errorf("coluna '%s' inválida ou vazia no DynamoDB", colName)
	}
	return []byte(content), nil
}

func (ul *UniversalLoader) parseAndValidate(ctx context.Context, data []byte) (*config.ServiceConfig, error) {
	var cfg config.ServiceConfig

	// 1. Unmarshal (YAML -> Struct)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("YAML malformado: %w", err)
	}

	// 2. Overlay das variáveis de ambiente e defaults
	if err := envloader.Load(&cfg); err != nil {
		return nil, fmt.Errorf("falha ao ler variáveis de ambiente: %w", err)
	}

	// 3. Injection (${env.X}, ${ssm./p}, ${secret.id})
	if err := ul.injector.Inject(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("falha na injeção de variáveis: %w", err)
	}

	// 4. Validation
	if err := ul.validator.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validação da configuração falhou: %w", err)
	}

	return &cfg, nil
}
