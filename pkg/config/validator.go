package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *ServiceConfig) error {
	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica (Regras de negócio da configuração)
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *ServiceConfig) error {
	// Fora da lambda o serviço sobe um servidor HTTP próprio
	if cfg.Service.Runtime != "lambda" && cfg.Service.Port <= 0 {
		return fmt.Errorf("runtime '%s' exige 'port' maior que zero", cfg.Service.Runtime)
	}

	// A rota precisa expor os dois parâmetros de caminho consultados
	for _, param := range []string{"{movieId}", "{awardBody}"} {
		if !strings.Contains(cfg.Service.Route, param) {
			return fmt.Errorf("rota '%s' não contém o parâmetro %s", cfg.Service.Route, param)
		}
	}

	if cfg.Reload.QueueURL != "" && cfg.Service.Runtime == "lambda" {
		return fmt.Errorf("reload via SQS não é suportado no runtime lambda")
	}

	return nil
}
