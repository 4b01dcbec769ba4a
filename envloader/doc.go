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
// Package envloader mapeia variáveis de ambiente para campos de uma struct
// através das tags `env` e `envDefault`.
//
// No serviço de premiações ele é aplicado depois do YAML opcional, de modo
// que TABLE_NAME e REGION definidos pela stack sempre prevalecem:
//
//	type TableConf struct {
//		Name    string `yaml:"name" env:"TABLE_NAME"`
//		Region  string `yaml:"region" env:"REGION"`
//		HashKey string `yaml:"hash_key" env:"DYNAMODB_HASH_KEY" envDefault:"movieId"`
//	}
//
//	var cfg TableConf
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// Tipos suportados: string, inteiros, uints, bool, floats, time.Duration e
// []string (separado por vírgula). Structs aninhadas e ponteiros para struct
// são percorridos recursivamente.
package envloader
