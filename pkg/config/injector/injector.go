package injector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/raywall/movie-awards-service/pkg/awsconfig"
)

// loadAWSConfig cria a config dos clientes preguiçosos (região de REGION).
var loadAWSConfig = awsconfig.FromEnv

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.TABLE_NAME}, ${ssm./movies/awards/table}, ${secret.awards-db#table}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// SSMClient abstrai o Parameter Store (permite Mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsClient abstrai o Secrets Manager (permite Mocking)
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Injector resolve placeholders em campos string de uma struct.
// Os clientes AWS são criados sob demanda na primeira referência.
type Injector struct {
	ssm     SSMClient
	secrets SecretsClient
}

type Option func(*Injector)

func WithSSMClient(c SSMClient) Option {
	return func(i *Injector) { i.ssm = c }
}

func WithSecretsClient(c SecretsClient) Option {
	return func(i *Injector) { i.secrets = c }
}

func New(opts ...Option) *Injector {
	i := &Injector{}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Inject percorre target (ponteiro para struct) e substitui os placeholders
// em strings, slices de string e mapas com chave string.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("injector: target deve ser um ponteiro não nulo")
	}
	return i.walk(ctx, v.Elem())
}

func (i *Injector) walk(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			if err := i.walk(ctx, v.Field(k)); err != nil {
				return err
			}
		}

	case reflect.Ptr:
		if !v.IsNil() {
			return i.walk(ctx, v.Elem())
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		resolved, err := i.interpolate(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(resolved)

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.walk(ctx, v.Index(j)); err != nil {
				return err
			}
		}

	case reflect.Map:
		if v.IsNil() || v.Type().Key().Kind() != reflect.String {
			return nil
		}
		iter := v.MapRange()
		for iter.Next() {
			elem := iter.Value()
			if elem.Kind() == reflect.Interface {
				elem = elem.Elem()
			}
			if !elem.IsValid() || elem.Kind() != reflect.String {
				continue
			}
			resolved, err := i.interpolate(ctx, elem.String())
			if err != nil {
				return err
			}
			v.SetMapIndex(iter.Key(), reflect.ValueOf(resolved).Convert(v.Type().Elem()))
		}
	}
	return nil
}

func (i *Injector) interpolate(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var firstErr error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		sub := pattern.FindStringSubmatch(match)
		val, err := i.fetch(ctx, sub[1], sub[2])
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			return match
		}
		return val
	})

	return result, firstErr
}

func (i *Injector) fetch(ctx context.Context, source, key string) (string, error) {
	switch source {
	case "env":
		return os.Getenv(key), nil
	case "ssm":
		return i.fetchParameter(ctx, key)
	case "secret":
		return i.fetchSecret(ctx, key)
	}
	return "", fmt.Errorf("injector: fonte desconhecida %q", source)
}

func (i *Injector) fetchParameter(ctx context.Context, name string) (string, error) {
	if i.ssm == nil {
		cfg, err := loadAWSConfig(ctx)
		if err != nil {
			return "", fmt.Errorf("injector: config aws: %w", err)
		}
		i.ssm = ssm.NewFromConfig(cfg)
	}

	out, err := i.ssm.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("injector: ssm GetParameter %s: %w", name, err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", fmt.Errorf("injector: parâmetro %s sem valor", name)
	}
	return *out.Parameter.Value, nil
}

// fetchSecret aceita "id" ou "id#campo"; com campo, o segredo é lido como
// objeto JSON e apenas o campo é devolvido.
func (i *Injector) fetchSecret(ctx context.Context, ref string) (string, error) {
	id, field, _ := strings.Cut(ref, "#")

	if i.secrets == nil {
		cfg, err := loadAWSConfig(ctx)
		if err != nil {
			return "", fmt.Errorf("injector: config aws: %w", err)
		}
		i.secrets = secretsmanager.NewFromConfig(cfg)
	}

	out, err := i.secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(id),
	})
	if err != nil {
		return "", fmt.Errorf("injector: secretsmanager %s: %w", id, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("injector: segredo %s sem SecretString", id)
	}
	if field == "" {
		return *out.SecretString, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(*out.SecretString), &data); err != nil {
		return "", fmt.Errorf("injector: segredo %s não é JSON: %w", id, err)
	}
	val, ok := data[field]
	if !ok {
		return "", fmt.Errorf("injector: campo %q ausente no segredo %s", field, id)
	}
	return fmt.Sprint(val), nil
}
