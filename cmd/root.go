package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/lambda-feedback/hello-api/config"
	"github.com/lambda-feedback/hello-api/internal/shell"
	"github.com/lambda-feedback/hello-api/util/conf"
	"github.com/lambda-feedback/hello-api/util/logging"
	"github.com/urfave/cli/v2"
)

var (
	appName  = "hello-api"
	appUsage = `A minimal demonstration JSON API, served either as a
standalone http server or as an AWS Lambda function.`
	rootApp = &cli.App{
		Name:            appName,
		Usage:           appUsage,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "set the log level. Options: debug, info, warn, error, panic, fatal.",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "set the log format. Options: production, development.",
				EnvVars: []string{"LOG_FORMAT"},
			},
			&cli.PathFlag{
				Name:    "config",
				Usage:   "load configuration from a .json or .env file.",
				EnvVars: []string{"HELLO_API_CONFIG"},
			},
		},
		Before: func(ctx *cli.Context) error {
			// create a bootstrap logger for config parsing
			bootLog, err := logging.NewLogger(
				appName,
				ctx.String("log-level"),
				ctx.String("log-format"),
			)
			if err != nil {
				return err
			}

			// parse config using defaults, file, env and flags
			cfg, err := conf.Parse[config.Config](conf.ParseOptions{
				Cli:      ctx,
				Defaults: config.DefaultConfig,
				FileName: ctx.Path("config"),
				Log:      bootLog,
			})
			if err != nil {
				return err
			}

			// create the logger from the parsed config
			log, err := logging.NewLogger(appName, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}

			// inject logger into cli context
			ctx.Context = logging.ContextWithLogger(ctx.Context, log)

			// inject the config into the cli context
			ctx.Context = conf.ContextWithConfig(ctx.Context, cfg)

			return nil
		},
		After: func(ctx *cli.Context) error {
			// no logger is set up if Before did not run, e.g. for --help
			if log, err := logging.LoggerFromContext(ctx.Context); err == nil {
				log.Sync()
			}

			return nil
		},
	}
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Usage:              "print the version",
		DisableDefaultText: true,
	}
}

type ExecuteParams struct {
	Version  string
	Compiled time.Time
}

// Execute runs the cli with the process arguments and returns the
// exit code.
func Execute(params ExecuteParams) int {
	rootApp.Version = params.Version
	rootApp.Compiled = params.Compiled

	return run(context.Background(), os.Args)
}

// run runs the app and returns the process exit code.
func run(ctx context.Context, args []string) int {
	err := rootApp.RunContext(ctx, args)

	// if app exited without error, return
	if err == nil {
		return 0
	}

	// if the shell exited with an exit code, use it
	if exitErr, ok := shell.AsExitError(err); ok {
		return exitErr.ExitCode
	}

	fmt.Printf("exit error: %s\n", err.Error())

	// otherwise, exit with exit code 1
	return 1
}
