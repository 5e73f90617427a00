package usecase

import (
	"context"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/umami-lab/tavolo/pkg/domain/interfaces"
	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// RetrieverFor returns a retrieval handle for an already-built topic.
func (uc *UseCases) RetrieverFor(ctx context.Context, topic model.Topic) (interfaces.Retriever, error) {
	return uc.store.OpenExisting(ctx, topic)
}

// Query retrieves the most relevant documents of the topic for the
// question.
func (uc *UseCases) Query(ctx context.Context, topic model.Topic, question string) ([]model.RetrievedDocument, error) {
	if strings.TrimSpace(question) == "" {
		return nil, goerr.Wrap(ErrEmptyQuestion, "query rejected", goerr.V("topic", topic.String()))
	}

	retriever, err := uc.RetrieverFor(ctx, topic)
	if err != nil {
		return nil, err
	}

	return retriever.Query(ctx, question)
}
