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
//
// Package emulator fornece um repositório de prêmios em memória, carregado de
// um dataset JSON, para rodar o serviço localmente sem uma tabela DynamoDB.
//
// Visão Geral:
// O `emulator` implementa awards.Repository com as mesmas regras da consulta
// real: igualdade exata em movieId e awardBody e, quando informado, o filtro
// numAwards >= min. Os itens passam pelo mesmo caminho de conversão do
// DynamoDB (attributevalue), então atributos extras são preservados como na
// tabela.
//
// Exemplo de dataset (emulator.json):
//
//	[
//	  { "movieId": 550, "awardBody": "Oscar", "numAwards": 3 },
//	  { "movieId": 550, "awardBody": "BAFTA", "numAwards": 1, "year": 2000 }
//	]
//
// Exemplo de Uso:
//
//	repo, err := emulator.LoadFile("emulator.json", "numAwards")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	handler := awards.NewHandler(repo, nil)
package emulator
