package transport

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// SQSClient define a interface necessária para o reloader (permite Mocking)
type SQSClient interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

// Reloader define a interface para recarregar o engine
type Reloader interface {
	Reload(ctx context.Context) error
}

// SQSReloader gerencia o loop de verificação do SQS
type SQSReloader struct {
	client      SQSClient
	queueURL    string
	waitSeconds int32
	retryDelay  time.Duration
	reloader    Reloader
	logger      zerolog.Logger
}

// NewSQSReloader cria uma nova instância do reloader. waitSeconds é o tempo
// de long polling de cada ReceiveMessage (0 a 20).
func NewSQSReloader(client SQSClient, queueURL string, waitSeconds int32, reloader Reloader) *SQSReloader {
	return &SQSReloader{
		client:      client,
		queueURL:    queueURL,
		waitSeconds: waitSeconds,
		retryDelay:  5 * time.Second,
		reloader:    reloader,
		logger:      log.With().Str("component", "sqs_reloader").Logger(),
	}
}

// Start monitora a fila até ctx ser cancelado. Qualquer mensagem recebida
// dispara um Reload; a mensagem é removida mesmo se o reload falhar.
func (s *SQSReloader) Start(ctx context.Context) error {
	if s.queueURL == "" {
		s.logger.Warn().Msg("URL da fila SQS não configurada. Hot Reload desativado.")
		return nil
	}

	s.logger.Info().Str("queue", s.queueURL).Msg("monitorando fila SQS para hot reload")

	for {
		if ctx.Err() != nil {
			s.logger.Info().Msg("parando monitoramento SQS")
			return nil
		}

		out, err := s.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:            aws.String(s.queueURL),
			MaxNumberOfMessages: 1,
			WaitTimeSeconds:     s.waitSeconds,
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.logger.Error().Err(err).Dur("retry_in", s.retryDelay).Msg("erro no SQS")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(s.retryDelay):
			}
			continue
		}

		if len(out.Messages) == 0 {
			continue
		}

		s.logger.Info().Msg("evento de alteração recebido via SQS")
		if err := s.reloader.Reload(ctx); err != nil {
			s.logger.Error().Err(err).Msg("falha no reload")
		}

		_, err = s.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
			QueueUrl:      aws.String(s.queueURL),
			ReceiptHandle: out.Messages[0].ReceiptHandle,
		})
		if err != nil {
			s.logger.Warn().Err(err).Msg("falha ao remover mensagem do SQS")
		}
	}
}
