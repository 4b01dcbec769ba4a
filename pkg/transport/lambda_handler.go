package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/raywall/movie-awards-service/pkg/awards"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Service é o contrato consumido pelos transportes (implementado pela
// engine.ServiceEngine).
type Service interface {
	Handle(ctx context.Context, req awards.Request) awards.Response
}

// LambdaHandler adapta eventos do API Gateway para o Service
type LambdaHandler struct {
	svc Service
}

// NewLambdaHandler cria uma nova instância do adaptador
func NewLambdaHandler(svc Service) *LambdaHandler {
	return &LambdaHandler{svc: svc}
}

// HandleV2 processa eventos de HTTP API (payload 2.0).
func (h *LambdaHandler) HandleV2(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
	start := time.Now()
	corrID := correlationID(req.Headers)
	ctx, logger := withCorrelation(ctx, corrID)

	resp := h.svc.Handle(ctx, awards.Request{
		PathParameters:        req.PathParameters,
		QueryStringParameters: req.QueryStringParameters,
	})

	logCompleted(logger, req.RequestContext.HTTP.Method, req.RawPath, resp.StatusCode, start)

	return events.APIGatewayV2HTTPResponse{
		StatusCode: resp.StatusCode,
		Headers:    responseHeaders(resp, corrID),
		Body:       resp.Body,
	}, nil
}

// HandleV1 processa eventos de REST API (proxy integration).
func (h *LambdaHandler) HandleV1(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	start := time.Now()
	corrID := correlationID(req.Headers)
	ctx, logger := withCorrelation(ctx, corrID)

	resp := h.svc.Handle(ctx, awards.Request{
		PathParameters:        req.PathParameters,
		QueryStringParameters: req.QueryStringParameters,
	})

	logCompleted(logger, req.HTTPMethod, req.Path, resp.StatusCode, start)

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    responseHeaders(resp, corrID),
		Body:       resp.Body,
	}, nil
}

// correlationID busca o header em qualquer capitalização (o API Gateway v2
// normaliza para minúsculas, o v1 repassa como veio) e gera um novo se ausente.
func correlationID(headers map[string]string) string {
	if id := headers[HeaderCorrelationID]; id != "" {
		return id
	}
	if id := headers[http.CanonicalHeaderKey(HeaderCorrelationID)]; id != "" {
		return id
	}
	return uuid.NewString()
}

func withCorrelation(ctx context.Context, corrID string) (context.Context, zerolog.Logger) {
	logger := log.With().Str("correlation_id", corrID).Logger()
	ctx = logger.WithContext(ctx)
	ctx = context.WithValue(ctx, ContextKeyCorrID, corrID)
	return ctx, logger
}

func logCompleted(logger zerolog.Logger, method, path string, status int, start time.Time) {
	logger.Info().
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Int64("latency_ms", time.Since(start).Milliseconds()).
		Msg("lambda request completed")
}

func responseHeaders(resp awards.Response, corrID string) map[string]string {
	headers := make(map[string]string, len(resp.Headers)+1)
	for k, v := range resp.Headers {
		headers[k] = v
	}
	headers[HeaderCorrelationID] = corrID
	return headers
}
