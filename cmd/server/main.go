package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/raywall/movie-awards-service/pkg/awsconfig"
	"github.com/raywall/movie-awards-service/pkg/engine"
	"github.com/raywall/movie-awards-service/pkg/transport"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var (
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
	newSQSClient  = defaultSQSClient
	engineOptions []engine.Option
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Sem CONFIG_FILE_PATH a configuração vem só das variáveis de ambiente
	if err := run(ctx, os.Getenv("CONFIG_FILE_PATH")); err != nil {
		log.Fatal().Err(err).Msg("falha na inicialização do serviço")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	// 1. Carrega Configuração (YAML opcional + env + placeholders)
	cfg, err := engine.NewUniversalLoader().Load(ctx, cfgPath)
	if err != nil {
		return err
	}

	// 2. Inicializa Engine (Boot Time)
	svc, err := engine.NewServiceEngine(ctx, cfg, cfgPath, engineOptions...)
	if err != nil {
		return err
	}

	// 3. Seleciona Runtime Strategy
	switch cfg.Service.Runtime {
	case "lambda":
		handler := transport.NewLambdaHandler(svc)
		if cfg.Service.EventFormat == "v1" {
			lambdaStarter(handler.HandleV1)
		} else {
			lambdaStarter(handler.HandleV2)
		}
		return nil

	case "local", "ec2", "ecs", "eks":
		g, gctx := errgroup.WithContext(ctx)

		g.Go(func() error {
			return serverStarter(gctx, svc, cfg.Service)
		})

		if cfg.Reload.QueueURL != "" {
			client, err := newSQSClient(ctx, cfg.Table.Region)
			if err != nil {
				return err
			}
			reloader := transport.NewSQSReloader(client, cfg.Reload.QueueURL, cfg.Reload.WaitSeconds, svc)
			g.Go(func() error {
				return reloader.Start(gctx)
			})
		}

		return g.Wait()

	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}

func defaultSQSClient(ctx context.Context, region string) (transport.SQSClient, error) {
	awsCfg, err := awsconfig.Load(ctx, region)
	if err != nil {
		return nil, fmt.Errorf("falha config aws: %w", err)
	}
	return sqs.NewFromConfig(awsCfg), nil
}
