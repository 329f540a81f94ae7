package standalone

import (
	"github.com/lambda-feedback/hello-api/internal/server"
	"github.com/lambda-feedback/hello-api/util/conf"
)

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:"http"`
}

// DefaultConfig holds the defaults of Config.
var DefaultConfig = conf.MergeDefaults("http", server.DefaultConfig)
