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

func cmdQuery() *cli.Command {
	var topic string
	var geminiCfg config.Gemini
	var dbCfg config.VectorDB
	var appCfg config.AppConfig

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "topic",
			Aliases:     []string{"t"},
			Usage:       "Topic to query",
			Value:       model.DefaultTopic.String(),
			Sources:     cli.EnvVars("TAVOLO_TOPIC"),
			Destination: &topic,
		},
	}
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, dbCfg.Flags()...)
	flags = append(flags, appCfg.Flags()...)

	return &cli.Command{
		Name:      "query",
		Aliases:   []string{"q"},
		Usage:     "Retrieve the most relevant documents for a question",
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

			docs, err := uc.Query(ctx, model.Topic(topic), question)
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				fmt.Println("No documents found.")
				return nil
			}

			header := color.New(color.FgCyan, color.Bold)
			for i, doc := range docs {
				header.Printf("[%d] %s (similarity %.3f)\n", i+1, doc.Source(), doc.Similarity)
				fmt.Println(doc.Content)
				fmt.Println()
			}
			return nil
		},
	}
}
