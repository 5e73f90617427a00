package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/cli/config"
	"github.com/umami-lab/tavolo/pkg/service/answer"
	"github.com/umami-lab/tavolo/pkg/service/embedding"
	"github.com/umami-lab/tavolo/pkg/service/loader"
	"github.com/umami-lab/tavolo/pkg/usecase"
)

// buildUseCases wires the shared embedder, the collection store, the
// document loader and the answer service into the manager facade. The
// manifest (may be nil) carries per-topic prompts and startup sources.
func buildUseCases(ctx context.Context, geminiCfg *config.Gemini, dbCfg *config.VectorDB, appCfg *config.AppConfig) (*usecase.UseCases, *config.Manifest, error) {
	llmClient, err := geminiCfg.Configure(ctx)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure LLM client")
	}

	embedder, err := embedding.New(llmClient, embedding.WithDimension(dbCfg.Dimension()))
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure embedder")
	}

	store, err := dbCfg.Configure(embedder)
	if err != nil {
		return nil, nil, err
	}

	answerSvc, err := answer.New(llmClient)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to configure answer service")
	}

	manifest, err := appCfg.Load()
	if err != nil {
		return nil, nil, err
	}

	opts := []usecase.Option{usecase.WithAnswerService(answerSvc)}
	if manifest != nil {
		for _, topic := range manifest.Topics {
			if topic.Prompt != "" {
				opts = append(opts, usecase.WithPrompt(topic.Topic(), topic.Prompt))
			}
		}
	}

	return usecase.New(store, loader.New(), opts...), manifest, nil
}
