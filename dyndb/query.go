// dyndb/query.go
package dyndb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

// === MÉTODOS FLUENTES ===

// ByKey restringe a consulta à chave primária configurada em TableConfig.
// sortValue nil consulta a partição inteira.
func (qb *QueryBuilder[T]) ByKey(hashValue, sortValue any) *QueryBuilder[T] {
	qb.keyEqual(qb.store.cfg.HashKey, hashValue)
	if qb.store.cfg.SortKey != "" && sortValue != nil {
		qb.keyEqual(qb.store.cfg.SortKey, sortValue)
	}
	return qb
}

// FilterGreaterOrEqual adiciona "field >= value" à FilterExpression, avaliada
// pelo DynamoDB depois da leitura da partição.
func (qb *QueryBuilder[T]) FilterGreaterOrEqual(field string, value any) *QueryBuilder[T] {
	qb.andFilter(expression.GreaterThanEqual(expression.Name(field), expression.Value(value)))
	return qb
}

func (qb *QueryBuilder[T]) ConsistentRead(v bool) *QueryBuilder[T] {
	qb.consistentRead = &v
	return qb
}

func (qb *QueryBuilder[T]) keyEqual(key string, value any) {
	qb.andKey(expression.KeyEqual(expression.Key(key), expression.Value(value)))
}

func (qb *QueryBuilder[T]) andKey(cond expression.KeyConditionBuilder) {
	if qb.keyCond == nil {
		qb.keyCond = &cond
		return
	}
	tmp := qb.keyCond.And(cond)
	qb.keyCond = &tmp
}

func (qb *QueryBuilder[T]) andFilter(cond expression.ConditionBuilder) {
	if qb.filterCond == nil {
		qb.filterCond = &cond
		return
	}
	tmp := qb.filterCond.And(cond)
	qb.filterCond = &tmp
}

// Exec executa uma única página da Query. Com a chave primária completa a
// página contém todos os itens do par; has_more no log indica o contrário.
func (qb *QueryBuilder[T]) Exec(ctx context.Context) ([]T, error) {
	if qb.store.cfg.TableName == "" {
		return nil, ErrTableNotConfigured
	}
	if qb.keyCond == nil {
		return nil, ErrMissingKeyCondition
	}

	builder := expression.NewBuilder().WithKeyCondition(*qb.keyCond)
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("dyndb: build expression failed: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ConsistentRead:            qb.consistentRead,
	}

	out, err := qb.store.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("dyndb: query failed: %w", err)
	}

	logResponse(ctx, qb.store.cfg.TableName, out)

	return unmarshalResults[T](out.Items)
}

func logResponse(ctx context.Context, table string, out *dynamodb.QueryOutput) {
	logger := log.Ctx(ctx)

	var raw []map[string]any
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &raw); err != nil {
		logger.Warn().Err(err).Str("table", table).Msg("falha ao decodificar itens para log")
	}

	logger.Info().
		Str("table", table).
		Int32("count", out.Count).
		Int32("scanned_count", out.ScannedCount).
		Bool("has_more", len(out.LastEvaluatedKey) > 0).
		Interface("items", raw).
		Msg("dynamodb query response")
}

func unmarshalResults[T any](items []map[string]types.AttributeValue) ([]T, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		var t T
		if err := attributevalue.UnmarshalMap(item, &t); err != nil {
			return nil, fmt.Errorf("dyndb: unmarshal failed: %w", err)
		}
		result = append(result, t)
	}
	return result, nil
}
