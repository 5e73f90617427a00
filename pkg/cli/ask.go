package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/cli/config"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

func cmdAsk() *cli.Command {
	var topic string
	var geminiCfg config.Gemini
	var dbCfg config.VectorDB
	var appCfg config.AppConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "topic",
			Aliases:     []string{"t"},
			Usage:       "Topic to ask about",
			Value:       model.DefaultTopic.String(),
			Sources:     cli.EnvVars("TAVOLO_TOPIC"),
			Destination: &topic,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:      "ask",
		Aliases:   []string{"a"},
		Usage:     "Ask a question and get a grounded answer",
		ArgsUsage: "<question>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			question := strings.Join(c.Args().Slice(), " ")
			if question == "" {
				return goerr.New("question is required")
			}

			uc, _, err := buildUseCases(ctx, &geminiCfg, &dbCfg, &appCfg)
			if err != nil {
				return err
			}

			answer, err := uc.Ask(ctx, model.Topic(topic), question)
			if err != nil {
				return err
			}

			color.New(color.FgGreen, color.Bold).Println("Answer")
			fmt.Println(answer.Text)

			if len(answer.Sources) > 0 {
				fmt.Println()
				color.New(color.FgCyan, color.Bold).Println("Sources")
				for _, source := range answer.Sources {
					fmt.Printf("  - %s\n", source)
				}
			}
			return nil
		},
	}
}
