// dyndb/mock.go
package dyndb

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// MockDynamoClient é um mock de DynamoDBClient baseado em função.
//
// QueryFn define o comportamento; quando nil a consulta devolve zero itens.
// Todas as entradas recebidas ficam em Inputs para inspeção nos testes.
type MockDynamoClient struct {
	QueryFn func(ctx context.Context, params *dynamodb.QueryInput) (*dynamodb.QueryOutput, error)

	mu     sync.Mutex
	Inputs []*dynamodb.QueryInput
}

func (m *MockDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	m.mu.Lock()
	m.Inputs = append(m.Inputs, params)
	m.mu.Unlock()

	if m.QueryFn != nil {
		return m.QueryFn(ctx, params)
	}
	return &dynamodb.QueryOutput{}, nil
}

// Calls devolve quantas consultas foram feitas.
func (m *MockDynamoClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Inputs)
}
