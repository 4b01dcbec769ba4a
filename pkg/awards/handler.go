// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package awards

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/raywall/movie-awards-service/pkg/metrics"
	"github.com/rs/zerolog/log"
)

const contentTypeJSON = "application/json"

type messageBody struct {
	Message string `json:"Message"`
}

type errorBody struct {
	Error ErrorDetail `json:"error"`
}

// Handler responde às consultas de prêmios de um filme.
// Não guarda estado por requisição e pode ser usado concorrentemente.
type Handler struct {
	repo    Repository
	metrics metrics.Provider
}

// NewHandler cria o handler. provider pode ser nil.
func NewHandler(repo Repository, provider metrics.Provider) *Handler {
	return &Handler{repo: repo, metrics: provider}
}

// Handle valida a requisição, consulta o repositório e monta a resposta:
// 404 para identificadores ausentes, 400 sem resultados, 200 com a lista de
// registros e 500 para qualquer outra falha.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	start := time.Now()
	logger := log.Ctx(ctx)

	if raw, err := json.Marshal(req); err == nil {
		logger.Info().RawJSON("event", raw).Msg("award lookup request")
	}

	body, err := h.lookup(ctx, req)
	if err != nil {
		resp := errorResponse(err)
		if resp.StatusCode == 500 {
			logger.Error().Err(err).Msg("award lookup failed")
		}
		metrics.RecordLookup(h.metrics, outcomeFor(err), time.Since(start))
		return resp
	}

	metrics.RecordLookup(h.metrics, metrics.OutcomeOK, time.Since(start))
	return jsonResponse(200, body)
}

func (h *Handler) lookup(ctx context.Context, req Request) ([]byte, error) {
	q, err := ParseQuery(req)
	if err != nil {
		return nil, err
	}

	records, err := h.repo.FindAwards(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoMatch
	}

	body, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("awards: serialize records: %w", err)
	}
	return body, nil
}

func errorResponse(err error) Response {
	status := statusFor(err)

	var payload any
	if status == 500 {
		payload = errorBody{Error: detailFor(err)}
	} else {
		payload = messageBody{Message: err.Error()}
	}

	body, mErr := json.Marshal(payload)
	if mErr != nil {
		body = []byte(`{"error":{}}`)
		status = 500
	}
	return jsonResponse(status, body)
}

func jsonResponse(status int, body []byte) Response {
	return Response{
		StatusCode: status,
		Headers:    map[string]string{"content-type": contentTypeJSON},
		Body:       string(body),
	}
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingMovieID):
		return metrics.OutcomeMissingMovieID
	case errors.Is(err, ErrMissingAwardBody):
		return metrics.OutcomeMissingAwardBody
	case errors.Is(err, ErrNoMatch):
		return metrics.OutcomeNoMatch
	default:
		return metrics.OutcomeError
	}
}
