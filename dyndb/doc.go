// Package dyndb fornece uma camada de leitura tipada sobre o AWS DynamoDB
// Go SDK (v2).
//
// O `Store[T]` expõe apenas consultas por chave (`Query`); não existe caminho
// de Scan, e `Exec` recusa uma consulta sem condição de chave. A
// `FilterExpression` é sempre avaliada pelo DynamoDB.
//
// Exemplo:
//
//	type Award struct {
//		MovieID   int    `dynamodbav:"movieId"`
//		AwardBody string `dynamodbav:"awardBody"`
//		NumAwards int    `dynamodbav:"numAwards"`
//	}
//
//	store := dyndb.New(client, dyndb.TableConfig[Award]{
//		TableName: "MovieAwards",
//		HashKey:   "movieId",
//		SortKey:   "awardBody",
//	})
//
//	awards, err := store.Query().
//		ByKey(550, "Oscar").
//		FilterGreaterOrEqual("numAwards", 2).
//		Exec(ctx)
//
// Cada `Exec` lê uma única página: consultas pela chave primária completa
// cabem nela. `MockDynamoClient` permite testar sem o SDK.
package dyndb
