package handler

import (
	"net/http"

	"github.com/lambda-feedback/hello-api/internal/server"
)

func NewHelloRoute(handler *ApiHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /api/hello", http.HandlerFunc(handler.Hello))
}

// NewRootRoute matches /api/ exactly, not the /api/ subtree.
func NewRootRoute(handler *ApiHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /api/{$}", http.HandlerFunc(handler.Root))
}

func NewStatusRoute(handler *ApiHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /api/status", http.HandlerFunc(handler.Status))
}

func NewGreetRoute(handler *ApiHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /api/greet/{name}", http.HandlerFunc(handler.Greet))
}

// NewEmptyGreetRoute serves /api/greet/, since a wildcard never matches an
// empty segment.
func NewEmptyGreetRoute(handler *ApiHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("GET /api/greet/{$}", http.HandlerFunc(handler.Greet))
}

func NewEchoRoute(handler *ApiHandler) server.HttpHandlerResult {
	return server.AsHttpHandler("POST /api/echo", http.HandlerFunc(handler.Echo))
}
