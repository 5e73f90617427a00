package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/cli/config"
	httpctrl "github.com/umami-lab/tavolo/pkg/controller/http"
	"github.com/umami-lab/tavolo/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var geminiCfg config.Gemini
	var dbCfg config.VectorDB
	var appCfg config.AppConfig
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":7860",
			Sources:     cli.EnvVars("TAVOLO_ADDR"),
			Destination: &addr,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := sentryCfg.Configure(c.Root().Version); err != nil {
				return err
			}

			uc, manifest, err := buildUseCases(ctx, &geminiCfg, &dbCfg, &appCfg)
			if err != nil {
				return err
			}

			// Build manifest topics up front. Already-built collections
			// are reused, so a restart is cheap.
			if manifest != nil {
				for _, topic := range manifest.Topics {
					result := uc.Rebuild(ctx, topic.Topic(), topic.Sources)
					logging.Default().Info("startup ingestion",
						"topic", topic.Name,
						"success", result.Success,
						"message", result.Message,
						"documents", result.DocumentCount,
					)
				}
			}

			handler, err := httpctrl.New(uc, httpctrl.WithAsk(true))
			if err != nil {
				return goerr.Wrap(err, "failed to create http server")
			}
			server := &http.Server{
				Addr:              addr,
				Handler:           handler,
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "vector_db", dbCfg)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
