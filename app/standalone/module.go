package standalone

import (
	"go.uber.org/fx"

	"github.com/lambda-feedback/hello-api/handler"
	"github.com/lambda-feedback/hello-api/internal/server"
	"github.com/lambda-feedback/hello-api/util/logging"
)

func Module(config Config) fx.Option {
	return fx.Module(
		"serve",
		// rename logger for module
		logging.DecorateLogger("serve"),
		// provide handlers
		handler.Module(),
		// provide server
		server.Module(config.HttpConfig),
	)
}
