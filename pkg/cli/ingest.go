package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/cli/config"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdIngest() *cli.Command {
	var topic string
	var replace bool
	var geminiCfg config.Gemini
	var dbCfg config.VectorDB
	var appCfg config.AppConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "topic",
			Aliases:     []string{"t"},
			Usage:       "Topic to (re)build",
			Value:       model.DefaultTopic.String(),
			Sources:     cli.EnvVars("TAVOLO_TOPIC"),
			Destination: &topic,
		},
		&cli.BoolFlag{
			Name:        "replace",
			Usage:       "Drop an existing collection before ingesting",
			Destination: &replace,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:      "ingest",
		Aliases:   []string{"i"},
		Usage:     "Build a topic's vector collection from source files",
		ArgsUsage: "[source files...]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, manifest, err := buildUseCases(ctx, &geminiCfg, &dbCfg, &appCfg)
			if err != nil {
				return err
			}

			var opts []usecase.RebuildOption
			if replace {
				opts = append(opts, usecase.WithReplace())
			}

			sources := c.Args().Slice()
			if len(sources) == 0 && manifest != nil {
				// No explicit sources: build everything the manifest declares.
				var failed int
				for _, entry := range manifest.Topics {
					result := uc.Rebuild(ctx, entry.Topic(), entry.Sources, opts...)
					printRebuildResult(result)
					if !result.Success {
						failed++
					}
				}
				if failed > 0 {
					return goerr.New("some topics failed to build", goerr.V("failed", failed))
				}
				return nil
			}

			result := uc.Rebuild(ctx, model.Topic(topic), sources, opts...)
			printRebuildResult(result)
			if !result.Success {
				return goerr.New(result.Message)
			}
			return nil
		},
	}
}

func printRebuildResult(result *model.RebuildResult) {
	status := color.New(color.FgGreen, color.Bold)
	if !result.Success {
		status = color.New(color.FgRed, color.Bold)
	}

	status.Printf("[%s] ", result.Topic)
	fmt.Println(result.Message)
	if result.Success && !result.Reused {
		fmt.Printf("  %d document(s) ingested from %d source(s)\n", result.DocumentCount, len(result.Sources))
	}
	for _, skipped := range result.SkippedSources {
		color.Yellow("  skipped: %s", skipped)
	}
}
