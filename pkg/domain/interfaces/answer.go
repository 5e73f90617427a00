package interfaces

import (
	"context"

	"github.com/umami-lab/tavolo/pkg/domain/model"
)

// AnswerService generates a grounded answer from retrieved documents.
type AnswerService interface {
	Answer(ctx context.Context, question string, docs []model.RetrievedDocument, prompt string) (string, error)
}
