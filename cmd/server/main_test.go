package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/raywall/movie-awards-service/dyndb"
	"github.com/raywall/movie-awards-service/pkg/config"
	"github.com/raywall/movie-awards-service/pkg/engine"
	"github.com/raywall/movie-awards-service/pkg/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingSQS bloqueia o long polling até o contexto ser cancelado.
type blockingSQS struct{}

func (blockingSQS) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingSQS) DeleteMessage(context.Context, *sqs.DeleteMessageInput, ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	return &sqs.DeleteMessageOutput{}, nil
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// stubBoot troca os pontos de extensão do main e os restaura ao fim do teste.
func stubBoot(t *testing.T) {
	t.Helper()
	origServer, origLambda, origSQS, origOpts := serverStarter, lambdaStarter, newSQSClient, engineOptions
	engineOptions = []engine.Option{engine.WithClient(&dyndb.MockDynamoClient{})}
	t.Cleanup(func() {
		serverStarter, lambdaStarter, newSQSClient, engineOptions = origServer, origLambda, origSQS, origOpts
	})
}

func TestRun_ServerBootstrap(t *testing.T) {
	stubBoot(t)
	path := writeConfig(t, `
version: "1.0"
service:
  name: "boot-test"
  runtime: "local"
  port: 9999
  logging: {level: "error", format: "json"}
table:
  name: "movie-awards"
`)

	called := false
	serverStarter = func(ctx context.Context, svc transport.Service, cfg config.ServiceDetails) error {
		called = true
		assert.Equal(t, 9999, cfg.Port)
		assert.Equal(t, "/awards/{awardBody}/movies/{movieId}", cfg.Route)
		return nil
	}
	newSQSClient = func(context.Context, string) (transport.SQSClient, error) {
		t.Fatal("reloader não deveria ser criado sem queue_url")
		return nil, nil
	}

	require.NoError(t, run(context.Background(), path))
	assert.True(t, called, "O servidor HTTP não foi iniciado")
}

func TestRun_ServerWithReloader(t *testing.T) {
	stubBoot(t)
	path := writeConfig(t, `
service:
  runtime: "ecs"
  port: 8080
  logging: {level: "disabled"}
reload:
  queue_url: "https://sqs.us-east-1.amazonaws.com/123/awards-reload"
  wait_seconds: 1
`)

	sqsCreated := false
	newSQSClient = func(context.Context, string) (transport.SQSClient, error) {
		sqsCreated = true
		return blockingSQS{}, nil
	}
	serverStarter = func(context.Context, transport.Service, config.ServiceDetails) error {
		return errors.New("bind: address already in use")
	}

	err := run(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
	assert.True(t, sqsCreated)
}

func TestRun_LambdaEventFormats(t *testing.T) {
	tests := []struct {
		format string
		check  func(t *testing.T, handler interface{})
	}{
		{
			format: "v2",
			check: func(t *testing.T, handler interface{}) {
				_, ok := handler.(func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error))
				assert.True(t, ok, "handler inesperado: %T", handler)
			},
		},
		{
			format: "v1",
			check: func(t *testing.T, handler interface{}) {
				_, ok := handler.(func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error))
				assert.True(t, ok, "handler inesperado: %T", handler)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			stubBoot(t)
			t.Setenv("SERVICE_RUNTIME", "lambda")
			t.Setenv("LAMBDA_EVENT_FORMAT", tt.format)
			t.Setenv("LOG_LEVEL", "disabled")

			var got interface{}
			lambdaStarter = func(handler interface{}) { got = handler }
			serverStarter = func(context.Context, transport.Service, config.ServiceDetails) error {
				t.Fatal("servidor HTTP não deveria subir na lambda")
				return nil
			}

			require.NoError(t, run(context.Background(), ""))
			require.NotNil(t, got)
			tt.check(t, got)
		})
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	stubBoot(t)
	path := writeConfig(t, `
service:
  runtime: "docker"
`)

	err := run(context.Background(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validação")
}
