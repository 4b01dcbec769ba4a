package transport

import (
	"context"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaHandler_HandleV2(t *testing.T) {
	svc := okService()
	handler := NewLambdaHandler(svc)

	req := events.APIGatewayV2HTTPRequest{
		RawPath:               "/awards/Oscar/movies/550",
		Headers:               map[string]string{"x-correlation-id": "corr-123"},
		PathParameters:        map[string]string{"movieId": "550", "awardBody": "Oscar"},
		QueryStringParameters: map[string]string{"min": "2"},
	}
	req.RequestContext.HTTP.Method = "GET"

	resp, err := handler.HandleV2(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["content-type"])
	assert.Equal(t, "corr-123", resp.Headers[HeaderCorrelationID])
	assert.JSONEq(t, `[{"movieId":550,"awardBody":"Oscar","numAwards":3}]`, resp.Body)

	got, ctx := svc.last()
	assert.Equal(t, "550", got.PathParameters["movieId"])
	assert.Equal(t, "Oscar", got.PathParameters["awardBody"])
	assert.Equal(t, "2", got.QueryStringParameters["min"])
	assert.Equal(t, "corr-123", ctx.Value(ContextKeyCorrID))
}

func TestLambdaHandler_HandleV1(t *testing.T) {
	svc := &fakeService{}
	svc.resp.StatusCode = 404
	svc.resp.Headers = map[string]string{"content-type": "application/json"}
	svc.resp.Body = `{"Message":"Missing movie Id"}`
	handler := NewLambdaHandler(svc)

	resp, err := handler.HandleV1(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: "GET",
		Path:       "/awards/Oscar/movies/abc",
		Headers:    map[string]string{"X-Correlation-Id": "corr-v1"},
		PathParameters: map[string]string{
			"movieId":   "abc",
			"awardBody": "Oscar",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 404, resp.StatusCode)
	assert.Equal(t, "corr-v1", resp.Headers[HeaderCorrelationID])
	assert.JSONEq(t, `{"Message":"Missing movie Id"}`, resp.Body)
}

func TestLambdaHandler_GeneratesCorrelationID(t *testing.T) {
	svc := okService()
	handler := NewLambdaHandler(svc)

	resp, err := handler.HandleV2(context.Background(), events.APIGatewayV2HTTPRequest{})
	require.NoError(t, err)

	assert.Len(t, resp.Headers[HeaderCorrelationID], 36)

	got, _ := svc.last()
	assert.Nil(t, got.PathParameters)
}

func TestLambdaHandler_DoesNotShareResponseHeaders(t *testing.T) {
	svc := okService()
	handler := NewLambdaHandler(svc)

	_, err := handler.HandleV2(context.Background(), events.APIGatewayV2HTTPRequest{})
	require.NoError(t, err)

	_, hasCorr := svc.resp.Headers[HeaderCorrelationID]
	assert.False(t, hasCorr, "os headers do handler não devem ser alterados")
}
