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
package dyndb_test

import (
	"context"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/raywall/movie-awards-service/dyndb"
	"github.com/stretchr/testify/mock"
)

// MockDynamoClient é um mock testify para a interface DynamoDBClient
type MockDynamoClient struct {
	mock.Mock
}

func (m *MockDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dynamodb.QueryOutput), args.Error(1)
}

// TestAward é a estrutura usada nos testes
type TestAward struct {
	MovieID   int    `dynamodbav:"movieId"`
	AwardBody string `dynamodbav:"awardBody"`
	NumAwards int    `dynamodbav:"numAwards"`
}

func createTestStore(client dyndb.DynamoDBClient) dyndb.Store[TestAward] {
	return dyndb.New(client, dyndb.TableConfig[TestAward]{
		TableName: "test-table",
		HashKey:   "movieId",
		SortKey:   "awardBody",
	})
}

// render troca os placeholders (#n, :n) pelos nomes e valores reais para que
// os testes não dependam da numeração gerada pelo expression builder.
func render(expr *string, names map[string]string, values map[string]types.AttributeValue) string {
	if expr == nil {
		return ""
	}

	repl := make(map[string]string, len(names)+len(values))
	for k, v := range names {
		repl[k] = v
	}
	for k, v := range values {
		switch av := v.(type) {
		case *types.AttributeValueMemberS:
			repl[k] = av.Value
		case *types.AttributeValueMemberN:
			repl[k] = av.Value
		}
	}

	keys := make([]string, 0, len(repl))
	for k := range repl {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	out := *expr
	for _, k := range keys {
		out = strings.ReplaceAll(out, k, repl[k])
	}
	return out
}
