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
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// AwardRecord é um item da tabela de prêmios. Atributos além dos três
// conhecidos ficam em Attributes e são devolvidos no JSON sem alteração.
// NumAwards é nil quando o item não tem o atributo.
type AwardRecord struct {
	MovieID    int            `dynamodbav:"movieId" json:"movieId"`
	AwardBody  string         `dynamodbav:"awardBody" json:"awardBody"`
	NumAwards  *int           `dynamodbav:"numAwards" json:"numAwards,omitempty"`
	Attributes map[string]any `dynamodbav:"-" json:"-"`
}

// recordFields evita recursão nos (un)marshalers customizados.
type recordFields struct {
	MovieID   int    `dynamodbav:"movieId" json:"movieId"`
	AwardBody string `dynamodbav:"awardBody" json:"awardBody"`
	NumAwards *int   `dynamodbav:"numAwards" json:"numAwards,omitempty"`
}

var knownAttributes = map[string]struct{}{
	"movieId":   {},
	"awardBody": {},
	"numAwards": {},
}

// UnmarshalDynamoDBAttributeValue implementa attributevalue.Unmarshaler.
func (r *AwardRecord) UnmarshalDynamoDBAttributeValue(av types.AttributeValue) error {
	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return fmt.Errorf("awards: item esperado como mapa, recebido %T", av)
	}

	var known recordFields
	if err := attributevalue.UnmarshalMap(m.Value, &known); err != nil {
		return err
	}

	extra := make(map[string]types.AttributeValue)
	for k, v := range m.Value {
		if _, isKnown := knownAttributes[k]; !isKnown {
			extra[k] = v
		}
	}

	var attrs map[string]any
	if len(extra) > 0 {
		if err := attributevalue.UnmarshalMap(extra, &attrs); err != nil {
			return err
		}
	}

	*r = AwardRecord{
		MovieID:    known.MovieID,
		AwardBody:  known.AwardBody,
		NumAwards:  known.NumAwards,
		Attributes: attrs,
	}
	return nil
}

// MarshalJSON emite movieId, awardBody e numAwards (se presente) primeiro,
// seguidos dos demais atributos em ordem alfabética.
func (r AwardRecord) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(recordFields{
		MovieID:   r.MovieID,
		AwardBody: r.AwardBody,
		NumAwards: r.NumAwards,
	})
	if err != nil {
		return nil, err
	}

	extra := make(map[string]any, len(r.Attributes))
	for k, v := range r.Attributes {
		if _, isKnown := knownAttributes[k]; !isKnown {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return head, nil
	}

	tail, err := json.Marshal(extra)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(head)+len(tail))
	out = append(out, head[:len(head)-1]...)
	out = append(out, ',')
	out = append(out, tail[1:]...)
	return out, nil
}
