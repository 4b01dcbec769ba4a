// dyndb/types.go
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

var (
	// ErrTableNotConfigured é retornado em tempo de consulta quando o Store
	// foi criado sem nome de tabela (ex: TABLE_NAME ausente).
	ErrTableNotConfigured = errors.New("dyndb: table name not configured")

	// ErrMissingKeyCondition impede que uma Query sem condição de chave
	// degenere em leitura da tabela inteira.
	ErrMissingKeyCondition = errors.New("dyndb: query requires a key condition")
)

// DynamoDBClient é o subconjunto do cliente do SDK usado pelo Store.
// *dynamodb.Client satisfaz a interface.
type DynamoDBClient interface {
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// Store é a porta de leitura tipada sobre uma tabela.
type Store[T any] interface {
	Query() *QueryBuilder[T]
	TableName() string
}

// TableConfig descreve a tabela e o esquema de chaves.
type TableConfig[T any] struct {
	TableName string
	HashKey   string
	SortKey   string // opcional
}

// QueryBuilder é o builder fluente de consultas
type QueryBuilder[T any] struct {
	store          *dynamoStore[T]
	keyCond        *expression.KeyConditionBuilder
	filterCond     *expression.ConditionBuilder
	consistentRead *bool
}
