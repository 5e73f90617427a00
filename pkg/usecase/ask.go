package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/model"
	"github.com/umami-lab/tavolo/pkg/utils/logging"
)

// Ask retrieves the most relevant documents for the question and generates
// a grounded answer. The topic's remembered source list is attached for
// citation.
func (uc *UseCases) Ask(ctx context.Context, topic model.Topic, question string) (*model.Answer, error) {
	if uc.answer == nil {
		return nil, goerr.Wrap(ErrAnswerUnavailable, "cannot answer question", goerr.V("topic", topic.String()))
	}

	docs, err := uc.Query(ctx, topic, question)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Info("retrieved documents for question",
		"topic", topic.String(),
		"count", len(docs),
	)

	text, err := uc.answer.Answer(ctx, question, docs, uc.promptFor(topic))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate answer", goerr.V("topic", topic.String()))
	}

	return &model.Answer{
		Topic:     topic,
		Question:  question,
		Text:      text,
		Documents: docs,
		Sources:   uc.Sources(topic),
	}, nil
}
