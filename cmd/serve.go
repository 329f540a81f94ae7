package cmd

import (
	"github.com/lambda-feedback/hello-api/app"
	"github.com/lambda-feedback/hello-api/app/standalone"
	"github.com/lambda-feedback/hello-api/util/conf"
	"github.com/lambda-feedback/hello-api/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	serveCmdDescription = `The serve command starts a http server exposing the API
under /api. The command blocks indefinitely, processing
incoming http requests until it receives a termination
signal.`
	serveCmd = &cli.Command{
		Name:        "serve",
		Usage:       "Start a http server serving the API.",
		Description: serveCmdDescription,
		Action:      serveAction,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "host",
				Aliases:  []string{"H"},
				Usage:    "The host to listen on.",
				Value:    "localhost",
				Category: "http",
				EnvVars:  []string{"HTTP_HOST"},
			},
			&cli.IntFlag{
				Name:     "port",
				Aliases:  []string{"P"},
				Usage:    "The port to listen on.",
				Value:    8080,
				Category: "http",
				EnvVars:  []string{"HTTP_PORT"},
			},
			&cli.BoolFlag{
				Name:     "h2c",
				Usage:    "Enable HTTP/2 cleartext upgrade.",
				Value:    false,
				Category: "http",
				EnvVars:  []string{"HTTP_H2C"},
			},
		},
	}
)

// serveCliMap maps serve flags to standalone config keys.
var serveCliMap = map[string]string{
	"host": "http.host",
	"port": "http.port",
	"h2c":  "http.h2c",
}

func serveAction(ctx *cli.Context) error {
	log, err := logging.LoggerFromContext(ctx.Context)
	if err != nil {
		return err
	}

	app, err := app.New(ctx)
	if err != nil {
		return err
	}

	cfg, err := conf.Parse[standalone.Config](conf.ParseOptions{
		Cli:      ctx,
		CliMap:   serveCliMap,
		Defaults: standalone.DefaultConfig,
		FileName: ctx.Path("config"),
		Log:      log,
	})
	if err != nil {
		return err
	}

	return app.Run(ctx.Context, standalone.Module(cfg))
}

func init() {
	rootApp.Commands = append(rootApp.Commands, serveCmd)
}
