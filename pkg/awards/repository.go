package awards

import (
	"context"

	"github.com/raywall/movie-awards-service/dyndb"
	"github.com/raywall/movie-awards-service/pkg/config"
)

// Repository busca os prêmios de um par (movieId, awardBody).
type Repository interface {
	FindAwards(ctx context.Context, q AwardQuery) ([]AwardRecord, error)
}

// DynamoRepository consulta a tabela via Query na chave primária; o filtro
// de quantidade mínima vai como FilterExpression.
type DynamoRepository struct {
	store           dyndb.Store[AwardRecord]
	filterAttribute string
	consistentRead  bool
}

func NewDynamoRepository(client dyndb.DynamoDBClient, cfg config.TableConf) *DynamoRepository {
	return &DynamoRepository{
		store: dyndb.New(client, dyndb.TableConfig[AwardRecord]{
			TableName: cfg.Name,
			HashKey:   cfg.HashKey,
			SortKey:   cfg.SortKey,
		}),
		filterAttribute: cfg.FilterAttribute,
		consistentRead:  cfg.ConsistentRead,
	}
}

func (r *DynamoRepository) FindAwards(ctx context.Context, q AwardQuery) ([]AwardRecord, error) {
	qb := r.store.Query().ByKey(q.MovieID, q.AwardBody)
	if q.MinAwards != nil {
		qb.FilterGreaterOrEqual(r.filterAttribute, *q.MinAwards)
	}
	if r.consistentRead {
		qb.ConsistentRead(true)
	}

	// a chave primária completa identifica no máximo um item: uma página basta
	return qb.Exec(ctx)
}
