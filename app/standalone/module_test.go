package standalone

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/hello-api/internal/server"
)

func TestModule_ServesApi(t *testing.T) {
	var srv *server.HttpServer

	app := fxtest.New(t,
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zaptest.NewLogger(t)),
		Module(Config{HttpConfig: server.HttpConfig{Host: "127.0.0.1", Port: 0}}),
		fx.Populate(&srv),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.Eventually(t, func() bool {
		return srv.Addr() != nil
	}, 5*time.Second, 10*time.Millisecond)

	res, err := http.Get("http://" + srv.Addr().String() + "/api/hello")
	require.NoError(t, err)
	defer res.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Hello from Spring Boot!", body["message"])
	assert.Equal(t, "success", body["status"])
}

func TestDefaultConfig(t *testing.T) {
	assert.Equal(t, map[string]any{
		"http.host": "localhost",
		"http.port": 8080,
		"http.h2c":  false,
	}, DefaultConfig)
}
