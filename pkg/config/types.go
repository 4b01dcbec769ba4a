package config

import "time"

// ServiceConfig representa a estrutura raiz do arquivo YAML do serviço.
// Todos os campos podem vir do YAML, de variáveis de ambiente (tag env) ou
// de placeholders ${env.X}, ${ssm./p} e ${secret.id#campo}.
type ServiceConfig struct {
	Version string         `yaml:"version" env:"CONFIG_VERSION" envDefault:"1.0" validate:"required"`
	Service ServiceDetails `yaml:"service" validate:"required"`
	Table   TableConf      `yaml:"table"`
	Reload  ReloadConf     `yaml:"reload"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name        string        `yaml:"name" env:"SERVICE_NAME" envDefault:"movie-awards" validate:"required,hostname_rfc1123"`
	Runtime     string        `yaml:"runtime" env:"SERVICE_RUNTIME" envDefault:"lambda" validate:"required,oneof=local lambda ecs eks ec2"`
	EventFormat string        `yaml:"event_format" env:"LAMBDA_EVENT_FORMAT" envDefault:"v2" validate:"oneof=v1 v2"`
	Port        int           `yaml:"port" env:"PORT" envDefault:"8080" validate:"gte=0,lte=65535"`
	Route       string        `yaml:"route" env:"SERVICE_ROUTE" envDefault:"/awards/{awardBody}/movies/{movieId}" validate:"required,startswith=/"`
	Timeout     time.Duration `yaml:"timeout" env:"SERVICE_TIMEOUT" envDefault:"10s" validate:"gt=0"`
	Logging     LoggingConf   `yaml:"logging"`
	Metrics     MetricsConf   `yaml:"metrics"`
}

// TableConf descreve a tabela DynamoDB consultada pelo serviço.
// Name vazio não impede a inicialização: cada consulta falha com erro 500.
type TableConf struct {
	Name            string `yaml:"name" env:"TABLE_NAME"`
	Region          string `yaml:"region" env:"REGION"`
	HashKey         string `yaml:"hash_key" env:"DYNAMODB_HASH_KEY" envDefault:"movieId" validate:"required"`
	SortKey         string `yaml:"sort_key" env:"DYNAMODB_SORT_KEY" envDefault:"awardBody" validate:"required"`
	FilterAttribute string `yaml:"filter_attribute" env:"DYNAMODB_FILTER_ATTRIBUTE" envDefault:"numAwards" validate:"required"`
	ConsistentRead  bool   `yaml:"consistent_read" env:"DYNAMODB_CONSISTENT_READ"`
}

// ReloadConf habilita o recarregamento da configuração via fila SQS
// (somente fora do runtime lambda).
type ReloadConf struct {
	QueueURL    string `yaml:"queue_url" env:"RELOAD_QUEUE_URL" validate:"omitempty,url"`
	WaitSeconds int32  `yaml:"wait_seconds" env:"RELOAD_WAIT_SECONDS" envDefault:"20" validate:"gte=0,lte=20"`
}

type LoggingConf struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error disabled"`
	Format string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"movie_awards."`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
}
