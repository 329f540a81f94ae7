package handler

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/hello-api/api"
)

func Module() fx.Option {
	return fx.Module("handler",
		// provide endpoint set, using the wall clock
		fx.Provide(func() *api.Endpoints { return api.New(nil) }),
		// provide api handler
		fx.Provide(NewApiHandler),
		// provide routes
		fx.Provide(NewHelloRoute),
		fx.Provide(NewRootRoute),
		fx.Provide(NewStatusRoute),
		fx.Provide(NewGreetRoute),
		fx.Provide(NewEmptyGreetRoute),
		fx.Provide(NewEchoRoute),
	)
}
