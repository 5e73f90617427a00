package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/umami-lab/tavolo/pkg/cli/config"
	"github.com/umami-lab/tavolo/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func Run(ctx context.Context, args []string, version string) error {
	// Load .env before flag parsing so env-sourced flags pick it up.
	if err := godotenv.Load(); err == nil {
		logging.Default().Info("Loaded environment from .env file")
	}

	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "tavolo",
		Usage:   "Retrieval-augmented QA over restaurant review documents",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting tavolo", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
			cmdIngest(),
			cmdQuery(),
			cmdAsk(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}
