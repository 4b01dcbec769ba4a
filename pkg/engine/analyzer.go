package engine

import (
	"fmt"
	"time"

	"github.com/raywall/movie-awards-service/pkg/config"
)

// apiGatewayTimeout é o limite de integração do API Gateway.
const apiGatewayTimeout = 29 * time.Second

// ValidationReport contém o resultado detalhado da análise.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Analyze inspeciona uma configuração já validada estruturalmente e aponta
// combinações que sobem sem erro mas não funcionam como esperado.
func Analyze(cfg *config.ServiceConfig) *ValidationReport {
	report := &ValidationReport{
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	// 1. Tabela
	if cfg.Table.Name == "" {
		report.Warnings = append(report.Warnings, "table.name vazio: todas as consultas vão responder 500")
	}
	if cfg.Table.Region == "" {
		report.Warnings = append(report.Warnings, "table.region vazio: a região vem da cadeia padrão do SDK (AWS_REGION)")
	}
	if cfg.Table.HashKey == cfg.Table.SortKey {
		report.Errors = append(report.Errors, fmt.Sprintf("table.hash_key e table.sort_key são iguais (%s)", cfg.Table.HashKey))
	}
	if cfg.Table.FilterAttribute == cfg.Table.HashKey || cfg.Table.FilterAttribute == cfg.Table.SortKey {
		// DynamoDB não aceita atributos de chave em FilterExpression
		report.Errors = append(report.Errors, fmt.Sprintf("table.filter_attribute '%s' não pode ser atributo de chave", cfg.Table.FilterAttribute))
	}

	// 2. Runtime
	if cfg.Service.Runtime == "lambda" && cfg.Service.Timeout > apiGatewayTimeout {
		report.Warnings = append(report.Warnings, fmt.Sprintf("service.timeout %s excede o limite de %s do API Gateway", cfg.Service.Timeout, apiGatewayTimeout))
	}
	if cfg.Service.Runtime != "lambda" && cfg.Reload.QueueURL == "" {
		report.Warnings = append(report.Warnings, "reload.queue_url vazio: hot reload desativado")
	}

	// 3. Métricas
	if cfg.Service.Metrics.Datadog.Enabled && cfg.Service.Metrics.Datadog.Namespace == "" {
		report.Warnings = append(report.Warnings, "metrics.datadog.namespace vazio: métricas sem prefixo")
	}

	report.Valid = len(report.Errors) == 0
	return report
}
