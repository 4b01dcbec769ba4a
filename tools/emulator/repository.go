package emulator

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/raywall/movie-awards-service/pkg/awards"
)

// Repository é um awards.Repository em memória. É somente leitura após a
// criação e pode ser usado concorrentemente.
type Repository struct {
	records         []awards.AwardRecord
	filterAttribute string
}

// NewRepository converte os itens como o DynamoDB faria. filterAttribute é o
// atributo comparado com min (numAwards por padrão).
func NewRepository(items []map[string]interface{}, filterAttribute string) (*Repository, error) {
	if filterAttribute == "" {
		filterAttribute = "numAwards"
	}

	records := make([]awards.AwardRecord, 0, len(items))
	for i, item := range items {
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		var rec awards.AwardRecord
		if err := attributevalue.UnmarshalMap(av, &rec); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		records = append(records, rec)
	}

	return &Repository{records: records, filterAttribute: filterAttribute}, nil
}

// LoadFile lê o dataset JSON (array de objetos).
func LoadFile(path, filterAttribute string) (*Repository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler arquivo: %w", err)
	}

	var items []map[string]interface{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("erro ao parsear json: %w", err)
	}
	return NewRepository(items, filterAttribute)
}

func (r *Repository) FindAwards(ctx context.Context, q awards.AwardQuery) ([]awards.AwardRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var matches []awards.AwardRecord
	for _, rec := range r.records {
		if rec.MovieID != q.MovieID || rec.AwardBody != q.AwardBody {
			continue
		}
		if q.MinAwards != nil {
			n, ok := r.filterValue(rec)
			if !ok || n < float64(*q.MinAwards) {
				continue
			}
		}
		matches = append(matches, rec)
	}
	return matches, nil
}

// Len devolve o tamanho do dataset.
func (r *Repository) Len() int {
	return len(r.records)
}

func (r *Repository) filterValue(rec awards.AwardRecord) (float64, bool) {
	if r.filterAttribute == "numAwards" {
		if rec.NumAwards == nil {
			return 0, false
		}
		return float64(*rec.NumAwards), true
	}
	v, ok := rec.Attributes[r.filterAttribute].(float64)
	return v, ok
}
