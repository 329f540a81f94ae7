package lambda

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/hello-api/internal/server"
)

func greetHandler() *server.HttpHandler {
	return server.AsHttpHandler("GET /api/greet/{name}", http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{"greeting": "Hello, " + r.PathValue("name") + "!"})
		},
	)).Handler
}

func createHandler(t *testing.T, source ProxySource) *LambdaHandler {
	return NewLambdaHandler(LambdaHandlerParams{
		Config:   Config{ProxySource: source},
		Handlers: []*server.HttpHandler{greetHandler()},
		Context:  context.Background(),
		Logger:   zaptest.NewLogger(t),
	})
}

func TestProxySource_Validate(t *testing.T) {
	assert.NoError(t, ProxySourceApiGatewayV1.Validate())
	assert.NoError(t, ProxySourceApiGatewayV2.Validate())
	assert.NoError(t, ProxySourceAlb.Validate())
	assert.Error(t, ProxySource("SQS").Validate())
	assert.Error(t, ProxySource("").Validate())
}

func TestLambdaHandler_Start_FailsInvalidProxySource(t *testing.T) {
	handler := createHandler(t, "SQS")

	assert.Error(t, handler.Start())
}

func TestLambdaHandler_ProxyApiGatewayV1(t *testing.T) {
	handler := createHandler(t, ProxySourceApiGatewayV1)

	fn, err := handler.getProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error))
	require.True(t, ok)

	res, err := proxy(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/api/greet/John",
	})
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"greeting":"Hello, John!"}`, res.Body)
}

func TestLambdaHandler_ProxyApiGatewayV2(t *testing.T) {
	handler := createHandler(t, ProxySourceApiGatewayV2)

	fn, err := handler.getProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error))
	require.True(t, ok)

	req := events.APIGatewayV2HTTPRequest{
		RawPath: "/api/greet/John",
	}
	req.RequestContext.HTTP.Method = http.MethodGet
	req.RequestContext.HTTP.Path = "/api/greet/John"

	res, err := proxy(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"greeting":"Hello, John!"}`, res.Body)
}

func TestLambdaHandler_ProxyAlb(t *testing.T) {
	handler := createHandler(t, ProxySourceAlb)

	fn, err := handler.getProxyFunction()
	require.NoError(t, err)

	_, ok := fn.(func(context.Context, events.ALBTargetGroupRequest) (events.ALBTargetGroupResponse, error))
	assert.True(t, ok)
}

func TestLambdaHandler_Shutdown_CancelsContext(t *testing.T) {
	handler := createHandler(t, ProxySourceApiGatewayV2)

	handler.Shutdown()

	assert.ErrorIs(t, handler.ctx.Err(), context.Canceled)
}
