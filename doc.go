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

// Package movieawards implementa o serviço de consulta de prêmios de filmes:
// dado um movieId e um órgão premiador (awardBody), devolve os registros
// correspondentes da tabela DynamoDB, opcionalmente filtrados por um número
// mínimo de prêmios (query string "min").
//
// Visão Geral:
// O mesmo handler atende três formas de execução:
//  1. AWS Lambda atrás do API Gateway (eventos v1 e v2).
//  2. Servidor HTTP local/contêiner (gorilla/mux), com hot reload via SQS.
//  3. Emulador com dados semente em JSON, sem acesso à AWS.
//
// Sub-Pacotes Principais:
//
// 1. pkg/awards:
//   - Validação dos parâmetros, consulta e montagem das respostas 200/400/404/500.
//
// 2. dyndb:
//   - Camada tipada sobre o DynamoDB (Store[T], QueryBuilder) e mocks para testes.
//
// 3. envloader e pkg/config:
//   - Configuração via YAML, variáveis de ambiente e placeholders ${ssm.*}/${secret.*}.
//
// 4. pkg/engine e pkg/transport:
//   - Montagem do serviço, reload de configuração e adaptadores Lambda/HTTP/SQS.
//
// Exemplo de rota:
//
//	GET /awards/Oscar/movies/550?min=2
//
//	200 [{"movieId":550,"awardBody":"Oscar","numAwards":3}]
//	400 {"Message":"Request failed"}
//	404 {"Message":"Missing movie Id"}
//
// Binários:
//
//	cmd/server    serviço (lambda ou HTTP, conforme SERVICE_RUNTIME)
//	cmd/emulator  servidor HTTP sobre um arquivo de sementes
//	cmd/toolkit   validate -file <config> para uso em CI
package movieawards
